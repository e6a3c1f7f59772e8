// Package study runs study sessions on top of the stored cards: it builds
// the queue, records ratings and changes suspension.
package study

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/avast/retry-go"

	"github.com/at-ishikawa/recall/internal/card"
	"github.com/at-ishikawa/recall/internal/history"
	"github.com/at-ishikawa/recall/internal/scheduling"
)

// ParametersProvider returns the scheduling parameters of a deck.
type ParametersProvider interface {
	ParametersFor(deck string) scheduling.Parameters
}

// GradeResult is the outcome of rating a card.
type GradeResult struct {
	Card card.Record
	Log  history.ReviewLog
}

type Service struct {
	cards       card.Repository
	logs        history.Repository
	params      ParametersProvider
	boundary    scheduling.DayBoundary
	metrics     *Metrics
	now         func() time.Time
	maxAttempts uint
	retryDelay  time.Duration
}

type Option func(*Service)

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// WithRetry sets how often Grade tries again after a concurrent modification.
func WithRetry(attempts uint, delay time.Duration) Option {
	return func(s *Service) {
		s.maxAttempts = attempts
		s.retryDelay = delay
	}
}

func NewService(
	cards card.Repository,
	logs history.Repository,
	params ParametersProvider,
	boundary scheduling.DayBoundary,
	metrics *Metrics,
	opts ...Option,
) *Service {
	s := &Service{
		cards:       cards,
		logs:        logs,
		params:      params,
		boundary:    boundary,
		metrics:     metrics,
		now:         time.Now,
		maxAttempts: 3,
		retryDelay:  10 * time.Millisecond,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Now returns the current moment on the configured day boundary.
func (s *Service) Now() scheduling.Moment {
	return s.boundary.Moment(s.now())
}

// NextDay returns when the next study day starts and the daily caps reset.
func (s *Service) NextDay() time.Time {
	return s.boundary.Start(s.Now().Today + 1)
}

func (s *Service) load(ctx context.Context, deck string) ([]card.Record, error) {
	if deck == "" {
		return s.cards.FindAll(ctx)
	}
	return s.cards.FindByDeck(ctx, deck)
}

// Queue returns the cards to study now, in order. An empty deck means every
// deck. Daily caps are reduced by what each deck already served today.
func (s *Service) Queue(ctx context.Context, deck string) ([]card.Record, error) {
	now := s.Now()
	records, err := s.load(ctx, deck)
	if err != nil {
		return nil, fmt.Errorf("load cards: %w", err)
	}
	usage, err := s.logs.UsageByDeck(ctx, now.Today)
	if err != nil {
		return nil, fmt.Errorf("load today's usage: %w", err)
	}

	byID := make(map[string]card.Record, len(records))
	limits := make(map[string]scheduling.Limits)
	for _, r := range records {
		byID[r.ID] = r
		if _, ok := limits[r.DeckID]; !ok {
			limits[r.DeckID] = s.params.ParametersFor(r.DeckID).Limits().Remaining(usage[r.DeckID])
		}
	}

	queue := scheduling.Build(card.Cards(records), limits, now)
	result := make([]card.Record, 0, len(queue))
	for _, c := range queue {
		result = append(result, byID[c.ID])
	}
	slog.Debug("built study queue", "deck", deck, "cards", len(records), "queued", len(result))
	return result, nil
}

// Next returns the first card of the queue, or nil when nothing is due.
func (s *Service) Next(ctx context.Context, deck string) (*card.Record, error) {
	queue, err := s.Queue(ctx, deck)
	if err != nil {
		return nil, err
	}
	if len(queue) == 0 {
		return nil, nil
	}
	return &queue[0], nil
}

// Grade records rating for a card. When another writer saved the card in
// between, the card is reloaded and the rating applied again.
func (s *Service) Grade(ctx context.Context, cardID string, rating scheduling.Rating) (GradeResult, error) {
	if !rating.Valid() {
		return GradeResult{}, fmt.Errorf("%w: %d", scheduling.ErrInvalidRating, rating)
	}

	var result GradeResult
	if err := retry.Do(
		func() error {
			r, err := s.grade(ctx, cardID, rating)
			if err != nil {
				var concurrentErr *scheduling.ConcurrentModificationError
				if !errors.As(err, &concurrentErr) {
					return retry.Unrecoverable(err)
				}
				s.metrics.conflicts.Inc()
				slog.Warn("card changed while grading, retrying", "card_id", cardID)
				return err
			}
			result = r
			return nil
		},
		retry.Context(ctx),
		retry.Attempts(s.maxAttempts),
		retry.Delay(s.retryDelay),
		retry.LastErrorOnly(true),
	); err != nil {
		return GradeResult{}, err
	}

	deck := result.Card.DeckID
	s.metrics.reviews.WithLabelValues(deck, rating.String()).Inc()
	if result.Log.QueueBefore == string(scheduling.QueueReview) && rating == scheduling.Again {
		s.metrics.lapses.WithLabelValues(deck).Inc()
	}
	if result.Log.BecameLeech {
		s.metrics.leeches.WithLabelValues(deck).Inc()
		slog.Info("card became a leech", "card_id", cardID, "deck", deck, "suspended", result.Card.Suspended)
	}
	return result, nil
}

func (s *Service) grade(ctx context.Context, cardID string, rating scheduling.Rating) (GradeResult, error) {
	rec, err := s.cards.FindByID(ctx, cardID)
	if err != nil {
		return GradeResult{}, err
	}
	now := s.Now()
	next, entry, err := scheduling.Advance(rec.Card(), rating, s.params.ParametersFor(rec.DeckID), now)
	if err != nil {
		return GradeResult{}, err
	}
	log := history.NewReviewLog(rec.DeckID, entry)
	saved, err := s.cards.SaveReview(ctx, *rec, next, log)
	if err != nil {
		return GradeResult{}, err
	}
	slog.Debug("graded card", "card_id", cardID, "rating", rating.String(),
		"queue", saved.Queue, "interval_days", saved.IntervalDays)
	return GradeResult{Card: saved, Log: log}, nil
}

// Previews shows the schedule each rating would give the card. Nothing is stored.
func (s *Service) Previews(ctx context.Context, cardID string) ([]scheduling.Preview, error) {
	rec, err := s.cards.FindByID(ctx, cardID)
	if err != nil {
		return nil, err
	}
	return scheduling.PreviewAll(rec.Card(), s.params.ParametersFor(rec.DeckID), s.Now())
}

// Summary counts the new, learning and review cards waiting now.
func (s *Service) Summary(ctx context.Context, deck string) (scheduling.Summary, error) {
	records, err := s.load(ctx, deck)
	if err != nil {
		return scheduling.Summary{}, fmt.Errorf("load cards: %w", err)
	}
	return scheduling.Summarize(card.Cards(records), s.Now()), nil
}

// Suspend takes a card out of every queue.
func (s *Service) Suspend(ctx context.Context, cardID string) (card.Record, error) {
	return s.changeState(ctx, cardID, scheduling.Suspend)
}

// Unsuspend puts a suspended card back where it was.
func (s *Service) Unsuspend(ctx context.Context, cardID string) (card.Record, error) {
	return s.changeState(ctx, cardID, scheduling.Unsuspend)
}

func (s *Service) changeState(ctx context.Context, cardID string, change func(scheduling.State) scheduling.State) (card.Record, error) {
	rec, err := s.cards.FindByID(ctx, cardID)
	if err != nil {
		return card.Record{}, err
	}
	next := change(rec.State())
	if next == rec.State() {
		return *rec, nil
	}
	saved, err := s.cards.SaveState(ctx, *rec, next, s.now())
	if err != nil {
		return card.Record{}, err
	}
	slog.Info("changed card suspension", "card_id", cardID, "queue", saved.Queue)
	return saved, nil
}

// History returns the review log of a card, oldest first.
func (s *Service) History(ctx context.Context, cardID string) ([]history.ReviewLog, error) {
	if _, err := s.cards.FindByID(ctx, cardID); err != nil {
		return nil, err
	}
	return s.logs.FindByCard(ctx, cardID)
}
