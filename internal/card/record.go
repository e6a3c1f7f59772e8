// Package card stores cards: their content and their schedule state.
package card

import (
	"database/sql"
	"time"

	"github.com/at-ishikawa/recall/internal/scheduling"
)

// Record is a row of the cards table. Version increases on every write and
// guards against lost updates.
type Record struct {
	ID            string       `db:"id"`
	DeckID        string       `db:"deck_id"`
	Question      string       `db:"question"`
	Answer        string       `db:"answer"`
	Context       string       `db:"context"`
	Source        string       `db:"source"`
	Queue         string       `db:"queue"`
	StepIndex     int          `db:"step_index"`
	DueAt         sql.NullTime `db:"due_at"`
	DueDay        int          `db:"due_day"`
	IntervalDays  int          `db:"interval_days"`
	Ease          int          `db:"ease"`
	Lapses        int          `db:"lapses"`
	Reps          int          `db:"reps"`
	Leech         bool         `db:"leech"`
	Suspended     bool         `db:"suspended"`
	LastReviewDay int          `db:"last_review_day"`
	Version       int64        `db:"version"`
	CreatedAt     time.Time    `db:"created_at"`
	UpdatedAt     time.Time    `db:"updated_at"`
}

// NewRecord returns a record for a card that has never been studied.
func NewRecord(id, deckID, question, answer string, now time.Time) Record {
	r := Record{
		ID:        id,
		DeckID:    deckID,
		Question:  question,
		Answer:    answer,
		Version:   1,
		CreatedAt: now.UTC(),
		UpdatedAt: now.UTC(),
	}
	return r.WithState(scheduling.NewState())
}

// State returns the schedule stored in r.
func (r Record) State() scheduling.State {
	s := scheduling.State{
		Queue:         scheduling.Queue(r.Queue),
		StepIndex:     r.StepIndex,
		DueDay:        scheduling.Day(r.DueDay),
		IntervalDays:  r.IntervalDays,
		Ease:          scheduling.Factor(r.Ease),
		Lapses:        r.Lapses,
		Reps:          r.Reps,
		Leech:         r.Leech,
		Suspended:     r.Suspended,
		LastReviewDay: scheduling.Day(r.LastReviewDay),
	}
	if r.DueAt.Valid {
		s.DueAt = r.DueAt.Time
	}
	return s
}

// WithState returns a copy of r holding s.
func (r Record) WithState(s scheduling.State) Record {
	r.Queue = string(s.Queue)
	r.StepIndex = s.StepIndex
	r.DueAt = sql.NullTime{}
	if !s.DueAt.IsZero() {
		r.DueAt = sql.NullTime{Time: s.DueAt.UTC(), Valid: true}
	}
	r.DueDay = int(s.DueDay)
	r.IntervalDays = s.IntervalDays
	r.Ease = int(s.Ease)
	r.Lapses = s.Lapses
	r.Reps = s.Reps
	r.Leech = s.Leech
	r.Suspended = s.Suspended
	r.LastReviewDay = int(s.LastReviewDay)
	return r
}

// Card returns the scheduler's view of r.
func (r Record) Card() scheduling.Card {
	return scheduling.Card{
		ID:        r.ID,
		DeckID:    r.DeckID,
		CreatedAt: r.CreatedAt,
		State:     r.State(),
	}
}

// Cards converts records for the queue builder.
func Cards(records []Record) []scheduling.Card {
	cards := make([]scheduling.Card, 0, len(records))
	for _, r := range records {
		cards = append(cards, r.Card())
	}
	return cards
}
