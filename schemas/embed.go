// Package schemas provides embedded SQL migration files.
package schemas

import "embed"

// Migrations contains the SQL migration files, one directory per driver
// (migrations/mysql, migrations/sqlite).
//
//go:embed migrations
var Migrations embed.FS
