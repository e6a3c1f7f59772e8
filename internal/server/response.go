package server

import (
	"time"

	"github.com/at-ishikawa/recall/internal/card"
	"github.com/at-ishikawa/recall/internal/history"
	"github.com/at-ishikawa/recall/internal/scheduling"
	"github.com/at-ishikawa/recall/internal/study"
)

type cardResponse struct {
	ID           string     `json:"id"`
	Deck         string     `json:"deck"`
	Question     string     `json:"question"`
	Answer       string     `json:"answer"`
	Context      string     `json:"context,omitempty"`
	Queue        string     `json:"queue"`
	DueAt        *time.Time `json:"due_at,omitempty"`
	DueDay       int        `json:"due_day,omitempty"`
	Due          string     `json:"due"`
	IntervalDays int        `json:"interval_days"`
	Ease         float64    `json:"ease"`
	Lapses       int        `json:"lapses"`
	Reps         int        `json:"reps"`
	Leech        bool       `json:"leech"`
	Suspended    bool       `json:"suspended"`
}

func newCardResponse(r card.Record, now scheduling.Moment) cardResponse {
	resp := cardResponse{
		ID:           r.ID,
		Deck:         r.DeckID,
		Question:     r.Question,
		Answer:       r.Answer,
		Context:      r.Context,
		Queue:        r.Queue,
		DueDay:       r.DueDay,
		Due:          study.DueLabel(r.State(), now),
		IntervalDays: r.IntervalDays,
		Ease:         scheduling.Factor(r.Ease).Float(),
		Lapses:       r.Lapses,
		Reps:         r.Reps,
		Leech:        r.Leech,
		Suspended:    r.Suspended,
	}
	if r.DueAt.Valid {
		t := r.DueAt.Time
		resp.DueAt = &t
	}
	return resp
}

func newCardResponses(records []card.Record, now scheduling.Moment) []cardResponse {
	resp := make([]cardResponse, 0, len(records))
	for _, r := range records {
		resp = append(resp, newCardResponse(r, now))
	}
	return resp
}

type previewResponse struct {
	Rating       string  `json:"rating"`
	Queue        string  `json:"queue"`
	Due          string  `json:"due"`
	IntervalDays int     `json:"interval_days"`
	Ease         float64 `json:"ease"`
}

type gradeRequest struct {
	Rating string `json:"rating" binding:"required"`
}

type gradeResponse struct {
	Card        cardResponse `json:"card"`
	ReviewID    string       `json:"review_id"`
	BecameLeech bool         `json:"became_leech"`
}

type summaryResponse struct {
	New      int `json:"new"`
	Learning int `json:"learning"`
	Review   int `json:"review"`
	Due      int `json:"due"`
}

type reviewResponse struct {
	ID                 string    `json:"id"`
	ReviewedAt         time.Time `json:"reviewed_at"`
	Rating             string    `json:"rating"`
	QueueBefore        string    `json:"queue_before"`
	QueueAfter         string    `json:"queue_after"`
	IntervalBeforeDays int       `json:"interval_before_days"`
	IntervalDays       int       `json:"interval_days"`
	ElapsedDays        int       `json:"elapsed_days"`
	EaseBefore         float64   `json:"ease_before"`
	EaseAfter          float64   `json:"ease_after"`
	BecameLeech        bool      `json:"became_leech"`
}

func newReviewResponse(l history.ReviewLog) reviewResponse {
	return reviewResponse{
		ID:                 l.ID,
		ReviewedAt:         l.ReviewedAt,
		Rating:             scheduling.Rating(l.Rating).String(),
		QueueBefore:        l.QueueBefore,
		QueueAfter:         l.QueueAfter,
		IntervalBeforeDays: l.IntervalBeforeDays,
		IntervalDays:       l.IntervalDays,
		ElapsedDays:        l.ElapsedDays,
		EaseBefore:         scheduling.Factor(l.EaseBefore).Float(),
		EaseAfter:          scheduling.Factor(l.EaseAfter).Float(),
		BecameLeech:        l.BecameLeech,
	}
}
