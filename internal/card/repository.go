package card

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/at-ishikawa/recall/internal/database"
	"github.com/at-ishikawa/recall/internal/history"
	"github.com/at-ishikawa/recall/internal/scheduling"
)

//go:generate mockgen -source=repository.go -destination=../mocks/card/mock_repository.go -package=mock_card

var ErrNotFound = errors.New("card not found")

// Repository defines operations for managing cards.
type Repository interface {
	FindAll(ctx context.Context) ([]Record, error)
	FindByDeck(ctx context.Context, deckID string) ([]Record, error)
	FindByID(ctx context.Context, id string) (*Record, error)
	FindExistingIDs(ctx context.Context, ids []string) (map[string]bool, error)
	BatchCreate(ctx context.Context, records []Record) error
	SaveReview(ctx context.Context, rec Record, next scheduling.State, log history.ReviewLog) (Record, error)
	SaveState(ctx context.Context, rec Record, next scheduling.State, now time.Time) (Record, error)
}

// DBRepository implements Repository using sqlx.
type DBRepository struct {
	db *sqlx.DB
}

func NewDBRepository(db *sqlx.DB) *DBRepository {
	return &DBRepository{db: db}
}

var cardColumns = []string{
	"id", "deck_id", "question", "answer", "context", "source",
	"queue", "step_index", "due_at", "due_day", "interval_days", "ease",
	"lapses", "reps", "leech", "suspended", "last_review_day", "version",
	"created_at", "updated_at",
}

// FindAll returns every card, oldest first.
func (r *DBRepository) FindAll(ctx context.Context) ([]Record, error) {
	var records []Record
	if err := r.db.SelectContext(ctx, &records, "SELECT * FROM cards ORDER BY created_at, id"); err != nil {
		return nil, fmt.Errorf("load all cards: %w", err)
	}
	return records, nil
}

// FindByDeck returns the cards of a deck, oldest first.
func (r *DBRepository) FindByDeck(ctx context.Context, deckID string) ([]Record, error) {
	var records []Record
	if err := r.db.SelectContext(ctx, &records,
		"SELECT * FROM cards WHERE deck_id = ? ORDER BY created_at, id", deckID); err != nil {
		return nil, fmt.Errorf("load cards of deck %s: %w", deckID, err)
	}
	return records, nil
}

// FindByID returns ErrNotFound when there is no card with id.
func (r *DBRepository) FindByID(ctx context.Context, id string) (*Record, error) {
	var rec Record
	err := r.db.GetContext(ctx, &rec, "SELECT * FROM cards WHERE id = ?", id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("load card %s: %w", id, err)
	}
	return &rec, nil
}

// Statements stay below SQLite's limit of 32766 bound variables.
const (
	insertBatchSize = 100
	lookupBatchSize = 500
)

// FindExistingIDs reports which of ids are already stored.
func (r *DBRepository) FindExistingIDs(ctx context.Context, ids []string) (map[string]bool, error) {
	existing := make(map[string]bool)
	for i := 0; i < len(ids); i += lookupBatchSize {
		end := min(i+lookupBatchSize, len(ids))
		query, args, err := sqlx.In("SELECT id FROM cards WHERE id IN (?)", ids[i:end])
		if err != nil {
			return nil, fmt.Errorf("build card ids query: %w", err)
		}
		var found []string
		if err := r.db.SelectContext(ctx, &found, r.db.Rebind(query), args...); err != nil {
			return nil, fmt.Errorf("load card ids: %w", err)
		}
		for _, id := range found {
			existing[id] = true
		}
	}
	return existing, nil
}

// BatchCreate inserts records in a single transaction, insertBatchSize rows
// per statement.
func (r *DBRepository) BatchCreate(ctx context.Context, records []Record) error {
	if len(records) == 0 {
		return nil
	}

	return database.RunInTx(ctx, r.db, func(ctx context.Context, tx *sqlx.Tx) error {
		for i := 0; i < len(records); i += insertBatchSize {
			batch := records[i:min(i+insertBatchSize, len(records))]
			query := database.BuildMultiRowInsert("cards", cardColumns, len(batch))
			args := make([]interface{}, 0, len(batch)*len(cardColumns))
			for _, c := range batch {
				args = append(args,
					c.ID, c.DeckID, c.Question, c.Answer, c.Context, c.Source,
					c.Queue, c.StepIndex, c.DueAt, c.DueDay, c.IntervalDays, c.Ease,
					c.Lapses, c.Reps, c.Leech, c.Suspended, c.LastReviewDay, c.Version,
					c.CreatedAt, c.UpdatedAt)
			}
			if _, err := tx.ExecContext(ctx, query, args...); err != nil {
				return fmt.Errorf("insert cards %d-%d: %w", i, i+len(batch), err)
			}
		}
		return nil
	})
}

// SaveReview stores the state produced by a rating together with its log
// entry. Both are written or neither is. If rec is stale, the result is a
// *scheduling.ConcurrentModificationError.
func (r *DBRepository) SaveReview(ctx context.Context, rec Record, next scheduling.State, log history.ReviewLog) (Record, error) {
	var saved Record
	err := database.RunInTx(ctx, r.db, func(ctx context.Context, tx *sqlx.Tx) error {
		var err error
		saved, err = updateState(ctx, tx, rec, next, log.ReviewedAt)
		if err != nil {
			return err
		}
		return history.Insert(ctx, tx, log)
	})
	if err != nil {
		return Record{}, err
	}
	return saved, nil
}

// SaveState stores next without a log entry. It is used by suspend and
// unsuspend, which are not ratings.
func (r *DBRepository) SaveState(ctx context.Context, rec Record, next scheduling.State, now time.Time) (Record, error) {
	var saved Record
	err := database.RunInTx(ctx, r.db, func(ctx context.Context, tx *sqlx.Tx) error {
		var err error
		saved, err = updateState(ctx, tx, rec, next, now)
		return err
	})
	if err != nil {
		return Record{}, err
	}
	return saved, nil
}

func updateState(ctx context.Context, tx *sqlx.Tx, rec Record, next scheduling.State, now time.Time) (Record, error) {
	saved := rec.WithState(next)
	saved.Version = rec.Version + 1
	saved.UpdatedAt = now.UTC()

	result, err := tx.ExecContext(ctx, `UPDATE cards SET
		queue = ?, step_index = ?, due_at = ?, due_day = ?, interval_days = ?, ease = ?,
		lapses = ?, reps = ?, leech = ?, suspended = ?, last_review_day = ?,
		version = ?, updated_at = ?
		WHERE id = ? AND version = ?`,
		saved.Queue, saved.StepIndex, saved.DueAt, saved.DueDay, saved.IntervalDays, saved.Ease,
		saved.Lapses, saved.Reps, saved.Leech, saved.Suspended, saved.LastReviewDay,
		saved.Version, saved.UpdatedAt,
		rec.ID, rec.Version)
	if err != nil {
		return Record{}, fmt.Errorf("update card %s: %w", rec.ID, err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return Record{}, fmt.Errorf("update card %s: %w", rec.ID, err)
	}
	if affected == 0 {
		return Record{}, &scheduling.ConcurrentModificationError{CardID: rec.ID}
	}
	return saved, nil
}
