package database

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/golang-migrate/migrate/v4"
	migratemysql "github.com/golang-migrate/migrate/v4/database/mysql"
	migratesqlite "github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/jmoiron/sqlx"

	"github.com/at-ishikawa/recall/internal/config"
	"github.com/at-ishikawa/recall/schemas"
)

// Migrate applies every pending migration for the configured driver. It
// opens and closes its own connection.
func Migrate(cfg config.DatabaseConfig) error {
	driver := cfg.Driver
	if driver == "" {
		driver = DriverSQLite
	}

	db, err := Open(cfg)
	if err != nil {
		return err
	}

	src, err := iofs.New(schemas.Migrations, "migrations/"+driver)
	if err != nil {
		_ = db.Close()
		return fmt.Errorf("load %s migrations: %w", driver, err)
	}

	m, err := newMigrate(db, driver, src)
	if err != nil {
		_ = db.Close()
		return err
	}
	defer func() {
		if srcErr, dbErr := m.Close(); srcErr != nil || dbErr != nil {
			slog.Warn("close migrations", "source_error", srcErr, "database_error", dbErr)
		}
	}()

	if err := m.Up(); err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			slog.Info("database schema is up to date", "driver", driver)
			return nil
		}
		return fmt.Errorf("apply migrations: %w", err)
	}
	version, _, err := m.Version()
	if err != nil {
		return fmt.Errorf("read migration version: %w", err)
	}
	slog.Info("migrated database schema", "driver", driver, "version", version)
	return nil
}

func newMigrate(db *sqlx.DB, driver string, src source.Driver) (*migrate.Migrate, error) {
	switch driver {
	case DriverMySQL:
		instance, err := migratemysql.WithInstance(db.DB, &migratemysql.Config{})
		if err != nil {
			return nil, fmt.Errorf("create mysql migration driver: %w", err)
		}
		return migrate.NewWithInstance("iofs", src, driver, instance)
	case DriverSQLite:
		instance, err := migratesqlite.WithInstance(db.DB, &migratesqlite.Config{})
		if err != nil {
			return nil, fmt.Errorf("create sqlite migration driver: %w", err)
		}
		return migrate.NewWithInstance("iofs", src, driver, instance)
	}
	return nil, fmt.Errorf("unsupported database driver %q", driver)
}
