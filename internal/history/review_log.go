// Package history stores the review log: one append-only row per rating.
package history

import (
	"time"

	"github.com/google/uuid"

	"github.com/at-ishikawa/recall/internal/scheduling"
)

// ReviewLog is the stored form of a scheduling.LogEntry.
type ReviewLog struct {
	ID                 string    `db:"id" yaml:"id"`
	CardID             string    `db:"card_id" yaml:"card_id"`
	DeckID             string    `db:"deck_id" yaml:"deck_id"`
	ReviewedAt         time.Time `db:"reviewed_at" yaml:"reviewed_at"`
	ReviewDay          int       `db:"review_day" yaml:"review_day"`
	Rating             int       `db:"rating" yaml:"rating"`
	QueueBefore        string    `db:"queue_before" yaml:"queue_before"`
	QueueAfter         string    `db:"queue_after" yaml:"queue_after"`
	IntervalBeforeDays int       `db:"interval_before_days" yaml:"interval_before_days"`
	IntervalDays       int       `db:"interval_days" yaml:"interval_days"`
	ElapsedDays        int       `db:"elapsed_days" yaml:"elapsed_days"`
	EaseBefore         int       `db:"ease_before" yaml:"ease_before"`
	EaseAfter          int       `db:"ease_after" yaml:"ease_after"`
	BecameLeech        bool      `db:"became_leech" yaml:"became_leech"`
	CreatedAt          time.Time `db:"created_at" yaml:"created_at"`
}

// NewReviewLog assigns an id to entry and prepares it for storage.
func NewReviewLog(deckID string, entry scheduling.LogEntry) ReviewLog {
	return ReviewLog{
		ID:                 uuid.NewString(),
		CardID:             entry.CardID,
		DeckID:             deckID,
		ReviewedAt:         entry.Timestamp.UTC(),
		ReviewDay:          int(entry.Day),
		Rating:             int(entry.Rating),
		QueueBefore:        string(entry.QueueBefore),
		QueueAfter:         string(entry.QueueAfter),
		IntervalBeforeDays: entry.IntervalBeforeDays,
		IntervalDays:       entry.IntervalDays,
		ElapsedDays:        entry.ElapsedDays,
		EaseBefore:         int(entry.EaseBefore),
		EaseAfter:          int(entry.EaseAfter),
		BecameLeech:        entry.BecameLeech,
		CreatedAt:          entry.Timestamp.UTC(),
	}
}
