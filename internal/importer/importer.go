// Package importer turns markdown deck files into cards. Each file is one
// deck named after the file. Importing again only adds the notes that are
// new; stored cards and their schedules are never touched.
package importer

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/at-ishikawa/recall/internal/card"
	"github.com/at-ishikawa/recall/internal/config"
)

// Result counts what one import did.
type Result struct {
	Files   int
	Notes   int
	Created int
	Skipped int
}

func (r *Result) add(other Result) {
	r.Files += other.Files
	r.Notes += other.Notes
	r.Created += other.Created
	r.Skipped += other.Skipped
}

type Importer struct {
	cards card.Repository
	now   func() time.Time
}

func NewImporter(cards card.Repository, now func() time.Time) *Importer {
	if now == nil {
		now = time.Now
	}
	return &Importer{cards: cards, now: now}
}

// DeckName is the deck a file's cards belong to.
func DeckName(path string) string {
	return strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
}

// ImportSources syncs the git sources in cfg and imports every source.
func (imp *Importer) ImportSources(ctx context.Context, cfg config.ImportConfig) (Result, error) {
	var total Result
	for _, src := range cfg.Sources {
		dir := src.Path
		if src.URL != "" {
			dir = filepath.Join(cfg.RepoDirectory, src.Name)
			if err := SyncRepository(ctx, src.URL, src.Branch, dir); err != nil {
				return total, fmt.Errorf("sync source %s: %w", src.Name, err)
			}
		}
		result, err := imp.ImportDir(ctx, dir)
		if err != nil {
			return total, fmt.Errorf("import source %s: %w", src.Name, err)
		}
		slog.Info("imported source", "source", src.Name, "files", result.Files, "created", result.Created, "skipped", result.Skipped)
		total.add(result)
	}
	return total, nil
}

// ImportDir imports every .md file under dir.
func (imp *Importer) ImportDir(ctx context.Context, dir string) (Result, error) {
	var files []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if d.Name() == ".git" {
				return filepath.SkipDir
			}
			return nil
		}
		if strings.EqualFold(filepath.Ext(path), ".md") {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return Result{}, fmt.Errorf("walk %s: %w", dir, err)
	}

	var total Result
	for _, path := range files {
		result, err := imp.ImportFile(ctx, path)
		if err != nil {
			return total, err
		}
		total.add(result)
	}
	return total, nil
}

// ImportFile imports one deck file.
func (imp *Importer) ImportFile(ctx context.Context, path string) (Result, error) {
	f, err := os.Open(path)
	if err != nil {
		return Result{}, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	notes, err := Parse(f)
	if err != nil {
		return Result{}, fmt.Errorf("parse %s: %w", path, err)
	}
	result, err := imp.importNotes(ctx, DeckName(path), path, notes)
	if err != nil {
		return Result{}, fmt.Errorf("import %s: %w", path, err)
	}
	result.Files = 1
	return result, nil
}

func (imp *Importer) importNotes(ctx context.Context, deck, source string, notes []Note) (Result, error) {
	result := Result{Notes: len(notes)}
	ids := make([]string, 0, len(notes))
	for _, n := range notes {
		ids = append(ids, CardID(deck, n))
	}
	existing, err := imp.cards.FindExistingIDs(ctx, ids)
	if err != nil {
		return Result{}, err
	}
	if existing == nil {
		existing = make(map[string]bool)
	}

	now := imp.now()
	var records []card.Record
	for i, n := range notes {
		id := ids[i]
		if existing[id] {
			result.Skipped++
			continue
		}
		if n.Answer == "" {
			slog.Warn("note without an answer", "source", source, "line", n.Line)
		}
		// Later notes are created later so new cards keep file order.
		rec := card.NewRecord(id, deck, n.Question, n.Answer, now.Add(time.Duration(len(records))*time.Microsecond))
		rec.Context = n.Context
		rec.Source = fmt.Sprintf("%s:%d", source, n.Line)
		records = append(records, rec)
		existing[id] = true
	}

	if err := imp.cards.BatchCreate(ctx, records); err != nil {
		return Result{}, err
	}
	result.Created = len(records)
	return result, nil
}
