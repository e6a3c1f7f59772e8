package history

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/at-ishikawa/recall/internal/database"
	"github.com/at-ishikawa/recall/internal/scheduling"
)

//go:generate mockgen -source=repository.go -destination=../mocks/history/mock_repository.go -package=mock_history

// Repository reads the review log. Rows are only ever written through
// Insert, inside the transaction that saves the card.
type Repository interface {
	FindByCard(ctx context.Context, cardID string) ([]ReviewLog, error)
	FindByDeck(ctx context.Context, deckID string) ([]ReviewLog, error)
	UsageByDeck(ctx context.Context, day scheduling.Day) (map[string]scheduling.Usage, error)
}

// DBRepository implements Repository using sqlx.
type DBRepository struct {
	db *sqlx.DB
}

func NewDBRepository(db *sqlx.DB) *DBRepository {
	return &DBRepository{db: db}
}

var reviewLogColumns = []string{
	"id", "card_id", "deck_id", "reviewed_at", "review_day", "rating",
	"queue_before", "queue_after", "interval_before_days", "interval_days", "elapsed_days",
	"ease_before", "ease_after", "became_leech", "created_at",
}

// Insert appends logs in a single statement on tx.
func Insert(ctx context.Context, tx sqlx.ExecerContext, logs ...ReviewLog) error {
	if len(logs) == 0 {
		return nil
	}
	query := database.BuildMultiRowInsert("review_logs", reviewLogColumns, len(logs))
	args := make([]interface{}, 0, len(logs)*len(reviewLogColumns))
	for _, l := range logs {
		args = append(args,
			l.ID, l.CardID, l.DeckID, l.ReviewedAt, l.ReviewDay, l.Rating,
			l.QueueBefore, l.QueueAfter, l.IntervalBeforeDays, l.IntervalDays, l.ElapsedDays,
			l.EaseBefore, l.EaseAfter, l.BecameLeech, l.CreatedAt)
	}
	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("insert review logs: %w", err)
	}
	return nil
}

// FindByCard returns the review log of a card, oldest first.
func (r *DBRepository) FindByCard(ctx context.Context, cardID string) ([]ReviewLog, error) {
	var logs []ReviewLog
	if err := r.db.SelectContext(ctx, &logs,
		"SELECT * FROM review_logs WHERE card_id = ? ORDER BY reviewed_at, id", cardID); err != nil {
		return nil, fmt.Errorf("load review logs of card %s: %w", cardID, err)
	}
	return logs, nil
}

// FindByDeck returns the review log of a deck, oldest first. An empty
// deckID returns the log of every deck.
func (r *DBRepository) FindByDeck(ctx context.Context, deckID string) ([]ReviewLog, error) {
	var logs []ReviewLog
	var err error
	if deckID == "" {
		err = r.db.SelectContext(ctx, &logs, "SELECT * FROM review_logs ORDER BY reviewed_at, id")
	} else {
		err = r.db.SelectContext(ctx, &logs,
			"SELECT * FROM review_logs WHERE deck_id = ? ORDER BY reviewed_at, id", deckID)
	}
	if err != nil {
		return nil, fmt.Errorf("load review logs of deck %q: %w", deckID, err)
	}
	return logs, nil
}

type usageRow struct {
	DeckID         string `db:"deck_id"`
	NewStudied     int    `db:"new_studied"`
	ReviewsStudied int    `db:"reviews_studied"`
}

// UsageByDeck counts the new cards and reviews each deck served on day.
// A card counts as new or review by the queue it was in when rated.
func (r *DBRepository) UsageByDeck(ctx context.Context, day scheduling.Day) (map[string]scheduling.Usage, error) {
	var rows []usageRow
	if err := r.db.SelectContext(ctx, &rows, `SELECT deck_id,
		SUM(CASE WHEN queue_before = ? THEN 1 ELSE 0 END) AS new_studied,
		SUM(CASE WHEN queue_before = ? THEN 1 ELSE 0 END) AS reviews_studied
		FROM review_logs WHERE review_day = ? GROUP BY deck_id`,
		string(scheduling.QueueNew), string(scheduling.QueueReview), int(day)); err != nil {
		return nil, fmt.Errorf("count usage on day %d: %w", day, err)
	}

	usage := make(map[string]scheduling.Usage, len(rows))
	for _, row := range rows {
		usage[row.DeckID] = scheduling.Usage{NewStudied: row.NewStudied, ReviewsStudied: row.ReviewsStudied}
	}
	return usage, nil
}
