// Package server exposes study sessions over a JSON HTTP API.
package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/at-ishikawa/recall/internal/card"
	"github.com/at-ishikawa/recall/internal/history"
	"github.com/at-ishikawa/recall/internal/scheduling"
	"github.com/at-ishikawa/recall/internal/study"
)

//go:generate mockgen -source=handler.go -destination=../mocks/server/mock_study_service.go -package=mock_server StudyService

// StudyService is implemented by study.Service.
type StudyService interface {
	Now() scheduling.Moment
	Queue(ctx context.Context, deck string) ([]card.Record, error)
	Next(ctx context.Context, deck string) (*card.Record, error)
	Grade(ctx context.Context, cardID string, rating scheduling.Rating) (study.GradeResult, error)
	Previews(ctx context.Context, cardID string) ([]scheduling.Preview, error)
	Summary(ctx context.Context, deck string) (scheduling.Summary, error)
	Suspend(ctx context.Context, cardID string) (card.Record, error)
	Unsuspend(ctx context.Context, cardID string) (card.Record, error)
	History(ctx context.Context, cardID string) ([]history.ReviewLog, error)
}

type StudyHandler struct {
	service StudyService
}

func NewStudyHandler(service StudyService) *StudyHandler {
	return &StudyHandler{service: service}
}

// GetQueue lists the cards due now. ?deck= narrows it to one deck.
func (h *StudyHandler) GetQueue(c *gin.Context) {
	records, err := h.service.Queue(c.Request.Context(), c.Query("deck"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"cards": newCardResponses(records, h.service.Now())})
}

func (h *StudyHandler) GetNext(c *gin.Context) {
	rec, err := h.service.Next(c.Request.Context(), c.Query("deck"))
	if err != nil {
		writeError(c, err)
		return
	}
	if rec == nil {
		c.Status(http.StatusNoContent)
		return
	}
	c.JSON(http.StatusOK, newCardResponse(*rec, h.service.Now()))
}

func (h *StudyHandler) GetSummary(c *gin.Context) {
	sum, err := h.service.Summary(c.Request.Context(), c.Query("deck"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, summaryResponse{
		New:      sum.New,
		Learning: sum.Learning,
		Review:   sum.Review,
		Due:      sum.Due(),
	})
}

func (h *StudyHandler) GetPreviews(c *gin.Context) {
	previews, err := h.service.Previews(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	now := h.service.Now()
	resp := make([]previewResponse, 0, len(previews))
	for _, p := range previews {
		resp = append(resp, previewResponse{
			Rating:       p.Rating.String(),
			Queue:        string(p.State.Queue),
			Due:          study.DueLabel(p.State, now),
			IntervalDays: p.State.IntervalDays,
			Ease:         p.State.Ease.Float(),
		})
	}
	c.JSON(http.StatusOK, gin.H{"previews": resp})
}

// PostGrade records a rating given as a name or a number.
func (h *StudyHandler) PostGrade(c *gin.Context) {
	var req gradeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	rating, err := scheduling.ParseRating(req.Rating)
	if err != nil {
		writeError(c, err)
		return
	}
	result, err := h.service.Grade(c.Request.Context(), c.Param("id"), rating)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gradeResponse{
		Card:        newCardResponse(result.Card, h.service.Now()),
		ReviewID:    result.Log.ID,
		BecameLeech: result.Log.BecameLeech,
	})
}

func (h *StudyHandler) PostSuspend(c *gin.Context) {
	h.changeSuspension(c, h.service.Suspend)
}

func (h *StudyHandler) PostUnsuspend(c *gin.Context) {
	h.changeSuspension(c, h.service.Unsuspend)
}

func (h *StudyHandler) changeSuspension(c *gin.Context, change func(context.Context, string) (card.Record, error)) {
	rec, err := change(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, newCardResponse(rec, h.service.Now()))
}

func (h *StudyHandler) GetHistory(c *gin.Context) {
	logs, err := h.service.History(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	resp := make([]reviewResponse, 0, len(logs))
	for _, l := range logs {
		resp = append(resp, newReviewResponse(l))
	}
	c.JSON(http.StatusOK, gin.H{"reviews": resp})
}

func writeError(c *gin.Context, err error) {
	var (
		stateErr      *scheduling.InvalidStateError
		paramsErr     *scheduling.InvalidParametersError
		concurrentErr *scheduling.ConcurrentModificationError
	)
	switch {
	case errors.Is(err, card.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	case errors.Is(err, scheduling.ErrInvalidRating):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	case errors.As(err, &stateErr), errors.As(err, &concurrentErr):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		return
	case errors.As(err, &paramsErr):
		slog.Error("deck is misconfigured", "deck", paramsErr.Deck, "error", err)
	default:
		slog.Error("request failed", "path", c.FullPath(), "error", err)
	}
	// Internal errors carry storage details that stay in the log.
	c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
}
