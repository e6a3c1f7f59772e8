package study

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/at-ishikawa/recall/internal/card"
	"github.com/at-ishikawa/recall/internal/history"
	mock_card "github.com/at-ishikawa/recall/internal/mocks/card"
	mock_history "github.com/at-ishikawa/recall/internal/mocks/history"
	"github.com/at-ishikawa/recall/internal/scheduling"
)

var (
	testNow      = time.Date(2025, 1, 10, 9, 0, 0, 0, time.UTC)
	testBoundary = scheduling.DayBoundary{Location: time.UTC, StartHour: 4}
	testToday    = testBoundary.Today(testNow)
)

type fixedParameters map[string]scheduling.Parameters

func (f fixedParameters) ParametersFor(deck string) scheduling.Parameters {
	if p, ok := f[deck]; ok {
		return p
	}
	p := scheduling.DefaultParameters()
	p.Fuzz = false
	return p
}

type testService struct {
	service *Service
	cards   *mock_card.MockRepository
	logs    *mock_history.MockRepository
	metrics *Metrics
}

func newTestService(t *testing.T, params fixedParameters) testService {
	t.Helper()
	ctrl := gomock.NewController(t)
	cards := mock_card.NewMockRepository(ctrl)
	logs := mock_history.NewMockRepository(ctrl)
	metrics := NewMetrics(prometheus.NewRegistry())
	service := NewService(cards, logs, params, testBoundary, metrics,
		WithClock(func() time.Time { return testNow }),
		WithRetry(3, time.Millisecond))
	return testService{service: service, cards: cards, logs: logs, metrics: metrics}
}

func reviewRecord(id, deck string, dueDay scheduling.Day, interval int) card.Record {
	return card.NewRecord(id, deck, "q-"+id, "a-"+id, testNow.Add(-30*24*time.Hour)).WithState(scheduling.State{
		Queue:         scheduling.QueueReview,
		DueDay:        dueDay,
		IntervalDays:  interval,
		Ease:          2500,
		Reps:          4,
		LastReviewDay: dueDay - scheduling.Day(interval),
	})
}

func ids(records []card.Record) []string {
	result := make([]string, 0, len(records))
	for _, r := range records {
		result = append(result, r.ID)
	}
	return result
}

func TestService_Queue(t *testing.T) {
	learning := card.NewRecord("learn", "kanji", "q", "a", testNow.Add(-time.Hour)).WithState(scheduling.State{
		Queue: scheduling.QueueLearning, DueAt: testNow.Add(-time.Minute), Ease: 2500, Reps: 1, LastReviewDay: testToday,
	})
	records := []card.Record{
		card.NewRecord("new1", "kanji", "q", "a", testNow.Add(-2*time.Hour)),
		card.NewRecord("new2", "kanji", "q", "a", testNow.Add(-time.Hour)),
		reviewRecord("rev1", "kanji", testToday-1, 3),
		reviewRecord("rev2", "kanji", testToday, 3),
		reviewRecord("later", "kanji", testToday+1, 3),
		learning,
		card.NewRecord("verb1", "verbs", "q", "a", testNow.Add(-3*time.Hour)),
	}

	tests := []struct {
		name    string
		deck    string
		params  fixedParameters
		usage   map[string]scheduling.Usage
		setup   func(ts testService)
		wantIDs []string
		wantErr bool
	}{
		{
			name: "orders learning, reviews then new cards across decks",
			setup: func(ts testService) {
				ts.cards.EXPECT().FindAll(gomock.Any()).Return(records, nil)
			},
			usage:   map[string]scheduling.Usage{},
			wantIDs: []string{"learn", "rev1", "rev2", "verb1", "new1", "new2"},
		},
		{
			name: "today's usage reduces the caps",
			deck: "kanji",
			params: fixedParameters{"kanji": func() scheduling.Parameters {
				p := scheduling.DefaultParameters()
				p.NewPerDay = 2
				p.ReviewPerDay = 2
				return p
			}()},
			setup: func(ts testService) {
				ts.cards.EXPECT().FindByDeck(gomock.Any(), "kanji").Return(records[:6], nil)
			},
			usage:   map[string]scheduling.Usage{"kanji": {NewStudied: 1, ReviewsStudied: 2}},
			wantIDs: []string{"learn", "new1"},
		},
		{
			name: "repository error",
			setup: func(ts testService) {
				ts.cards.EXPECT().FindAll(gomock.Any()).Return(nil, errors.New("connection refused"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := newTestService(t, tt.params)
			tt.setup(ts)
			if tt.usage != nil {
				ts.logs.EXPECT().UsageByDeck(gomock.Any(), testToday).Return(tt.usage, nil)
			}

			got, err := ts.service.Queue(context.Background(), tt.deck)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantIDs, ids(got))
		})
	}
}

func TestService_Next(t *testing.T) {
	ts := newTestService(t, nil)
	ts.cards.EXPECT().FindAll(gomock.Any()).Return([]card.Record{reviewRecord("later", "kanji", testToday+3, 3)}, nil)
	ts.logs.EXPECT().UsageByDeck(gomock.Any(), testToday).Return(nil, nil)

	got, err := ts.service.Next(context.Background(), "")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func saveAsStored(_ context.Context, rec card.Record, next scheduling.State, _ history.ReviewLog) (card.Record, error) {
	saved := rec.WithState(next)
	saved.Version = rec.Version + 1
	return saved, nil
}

func TestService_Grade(t *testing.T) {
	t.Run("new card rated good enters learning", func(t *testing.T) {
		ts := newTestService(t, nil)
		rec := card.NewRecord("c1", "kanji", "水", "water", testNow)
		ts.cards.EXPECT().FindByID(gomock.Any(), "c1").Return(&rec, nil)
		ts.cards.EXPECT().SaveReview(gomock.Any(), rec, gomock.Any(), gomock.Any()).DoAndReturn(saveAsStored)

		got, err := ts.service.Grade(context.Background(), "c1", scheduling.Good)
		require.NoError(t, err)
		assert.Equal(t, "learning", got.Card.Queue)
		assert.Equal(t, 1, got.Card.StepIndex)
		assert.Equal(t, testNow.Add(10*time.Minute), got.Card.DueAt.Time)
		assert.Equal(t, "new", got.Log.QueueBefore)
		assert.Equal(t, int(testToday), got.Log.ReviewDay)
		assert.Equal(t, 1.0, testutil.ToFloat64(ts.metrics.reviews.WithLabelValues("kanji", "good")))
	})

	t.Run("lapse and leech are counted", func(t *testing.T) {
		p := scheduling.DefaultParameters()
		p.LeechThreshold = 1
		p.LeechAction = scheduling.LeechActionSuspend
		ts := newTestService(t, fixedParameters{"kanji": p})
		rec := reviewRecord("c1", "kanji", testToday, 10)
		ts.cards.EXPECT().FindByID(gomock.Any(), "c1").Return(&rec, nil)
		ts.cards.EXPECT().SaveReview(gomock.Any(), rec, gomock.Any(), gomock.Any()).DoAndReturn(saveAsStored)

		got, err := ts.service.Grade(context.Background(), "c1", scheduling.Again)
		require.NoError(t, err)
		assert.True(t, got.Card.Suspended)
		assert.True(t, got.Log.BecameLeech)
		assert.Equal(t, 1.0, testutil.ToFloat64(ts.metrics.lapses.WithLabelValues("kanji")))
		assert.Equal(t, 1.0, testutil.ToFloat64(ts.metrics.leeches.WithLabelValues("kanji")))
	})

	t.Run("retries after a concurrent modification", func(t *testing.T) {
		ts := newTestService(t, nil)
		stale := card.NewRecord("c1", "kanji", "水", "water", testNow)
		fresh := stale
		fresh.Version = 2
		gomock.InOrder(
			ts.cards.EXPECT().FindByID(gomock.Any(), "c1").Return(&stale, nil),
			ts.cards.EXPECT().SaveReview(gomock.Any(), stale, gomock.Any(), gomock.Any()).
				Return(card.Record{}, &scheduling.ConcurrentModificationError{CardID: "c1"}),
			ts.cards.EXPECT().FindByID(gomock.Any(), "c1").Return(&fresh, nil),
			ts.cards.EXPECT().SaveReview(gomock.Any(), fresh, gomock.Any(), gomock.Any()).DoAndReturn(saveAsStored),
		)

		got, err := ts.service.Grade(context.Background(), "c1", scheduling.Easy)
		require.NoError(t, err)
		assert.Equal(t, int64(3), got.Card.Version)
		assert.Equal(t, "review", got.Card.Queue)
		assert.Equal(t, 1.0, testutil.ToFloat64(ts.metrics.conflicts))
	})

	t.Run("gives up after the last attempt", func(t *testing.T) {
		ts := newTestService(t, nil)
		rec := card.NewRecord("c1", "kanji", "水", "water", testNow)
		ts.cards.EXPECT().FindByID(gomock.Any(), "c1").Return(&rec, nil).Times(3)
		ts.cards.EXPECT().SaveReview(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(card.Record{}, &scheduling.ConcurrentModificationError{CardID: "c1"}).Times(3)

		_, err := ts.service.Grade(context.Background(), "c1", scheduling.Good)
		var concurrentErr *scheduling.ConcurrentModificationError
		assert.True(t, errors.As(err, &concurrentErr))
	})

	t.Run("suspended card is rejected without saving", func(t *testing.T) {
		ts := newTestService(t, nil)
		rec := card.NewRecord("c1", "kanji", "水", "water", testNow)
		rec = rec.WithState(scheduling.Suspend(rec.State()))
		ts.cards.EXPECT().FindByID(gomock.Any(), "c1").Return(&rec, nil).Times(1)

		_, err := ts.service.Grade(context.Background(), "c1", scheduling.Good)
		var stateErr *scheduling.InvalidStateError
		assert.True(t, errors.As(err, &stateErr))
	})

	t.Run("unknown card", func(t *testing.T) {
		ts := newTestService(t, nil)
		ts.cards.EXPECT().FindByID(gomock.Any(), "nope").Return(nil, card.ErrNotFound).Times(1)

		_, err := ts.service.Grade(context.Background(), "nope", scheduling.Good)
		assert.ErrorIs(t, err, card.ErrNotFound)
	})

	t.Run("invalid rating", func(t *testing.T) {
		ts := newTestService(t, nil)

		_, err := ts.service.Grade(context.Background(), "c1", scheduling.Rating(9))
		assert.ErrorIs(t, err, scheduling.ErrInvalidRating)
	})
}

func TestService_Previews(t *testing.T) {
	ts := newTestService(t, nil)
	rec := reviewRecord("c1", "kanji", testToday, 5)
	ts.cards.EXPECT().FindByID(gomock.Any(), "c1").Return(&rec, nil)

	got, err := ts.service.Previews(context.Background(), "c1")
	require.NoError(t, err)
	require.Len(t, got, 4)
	assert.Equal(t, scheduling.QueueRelearning, got[0].State.Queue)
	assert.Equal(t, 13, got[2].State.IntervalDays)
}

func TestService_NextDay(t *testing.T) {
	ts := newTestService(t, nil)
	assert.Equal(t, time.Date(2025, 1, 11, 4, 0, 0, 0, time.UTC), ts.service.NextDay())

	early := NewService(nil, nil, nil, testBoundary, ts.metrics,
		WithClock(func() time.Time { return time.Date(2025, 1, 11, 3, 0, 0, 0, time.UTC) }))
	assert.Equal(t, time.Date(2025, 1, 11, 4, 0, 0, 0, time.UTC), early.NextDay())
}

func TestService_Summary(t *testing.T) {
	ts := newTestService(t, nil)
	ts.cards.EXPECT().FindByDeck(gomock.Any(), "kanji").Return([]card.Record{
		card.NewRecord("n", "kanji", "q", "a", testNow),
		reviewRecord("due", "kanji", testToday, 3),
		reviewRecord("later", "kanji", testToday+2, 3),
	}, nil)

	got, err := ts.service.Summary(context.Background(), "kanji")
	require.NoError(t, err)
	assert.Equal(t, scheduling.Summary{New: 1, Review: 1}, got)
}

func TestService_SuspendAndUnsuspend(t *testing.T) {
	t.Run("suspend stores the new state", func(t *testing.T) {
		ts := newTestService(t, nil)
		rec := reviewRecord("c1", "kanji", testToday, 3)
		ts.cards.EXPECT().FindByID(gomock.Any(), "c1").Return(&rec, nil)
		ts.cards.EXPECT().SaveState(gomock.Any(), rec, scheduling.Suspend(rec.State()), testNow).
			Return(rec.WithState(scheduling.Suspend(rec.State())), nil)

		got, err := ts.service.Suspend(context.Background(), "c1")
		require.NoError(t, err)
		assert.True(t, got.Suspended)
	})

	t.Run("suspending twice does not write", func(t *testing.T) {
		ts := newTestService(t, nil)
		rec := reviewRecord("c1", "kanji", testToday, 3)
		rec = rec.WithState(scheduling.Suspend(rec.State()))
		ts.cards.EXPECT().FindByID(gomock.Any(), "c1").Return(&rec, nil)

		got, err := ts.service.Suspend(context.Background(), "c1")
		require.NoError(t, err)
		assert.Equal(t, rec, got)
	})

	t.Run("unsuspend restores the review queue", func(t *testing.T) {
		ts := newTestService(t, nil)
		rec := reviewRecord("c1", "kanji", testToday, 3)
		suspended := rec.WithState(scheduling.Suspend(rec.State()))
		ts.cards.EXPECT().FindByID(gomock.Any(), "c1").Return(&suspended, nil)
		ts.cards.EXPECT().SaveState(gomock.Any(), suspended, rec.State(), testNow).Return(rec, nil)

		got, err := ts.service.Unsuspend(context.Background(), "c1")
		require.NoError(t, err)
		assert.Equal(t, "review", got.Queue)
	})
}

func TestService_History(t *testing.T) {
	ts := newTestService(t, nil)
	rec := reviewRecord("c1", "kanji", testToday, 3)
	logs := []history.ReviewLog{{ID: "l1", CardID: "c1"}}
	ts.cards.EXPECT().FindByID(gomock.Any(), "c1").Return(&rec, nil)
	ts.logs.EXPECT().FindByCard(gomock.Any(), "c1").Return(logs, nil)

	got, err := ts.service.History(context.Background(), "c1")
	require.NoError(t, err)
	assert.Equal(t, logs, got)
}
