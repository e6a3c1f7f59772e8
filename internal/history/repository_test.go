package history

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/at-ishikawa/recall/internal/scheduling"
)

var reviewLogRowColumns = []string{
	"id", "card_id", "deck_id", "reviewed_at", "review_day", "rating",
	"queue_before", "queue_after", "interval_before_days", "interval_days", "elapsed_days",
	"ease_before", "ease_after", "became_leech", "created_at",
}

func TestNewReviewLog(t *testing.T) {
	now := time.Date(2025, 1, 10, 9, 0, 0, 0, time.FixedZone("JST", 9*60*60))
	entry := scheduling.LogEntry{
		CardID:             "c1",
		Timestamp:          now,
		Day:                20098,
		Rating:             scheduling.Again,
		QueueBefore:        scheduling.QueueReview,
		QueueAfter:         scheduling.QueueRelearning,
		IntervalBeforeDays: 10,
		IntervalDays:       5,
		ElapsedDays:        10,
		EaseBefore:         2500,
		EaseAfter:          2300,
		BecameLeech:        true,
	}

	got := NewReviewLog("kanji", entry)

	assert.NotEmpty(t, got.ID)
	assert.Equal(t, "kanji", got.DeckID)
	assert.Equal(t, time.UTC, got.ReviewedAt.Location())
	assert.Equal(t, 20098, got.ReviewDay)
	assert.Equal(t, "relearning", got.QueueAfter)
	assert.NotEqual(t, got.ID, NewReviewLog("kanji", entry).ID)
	assert.Equal(t, 1, got.Rating)
	assert.Equal(t, 10, got.IntervalBeforeDays)
	assert.Equal(t, 5, got.IntervalDays)
	assert.Equal(t, 2300, got.EaseAfter)
	assert.True(t, got.BecameLeech)
}

func TestInsert(t *testing.T) {
	now := time.Date(2025, 1, 10, 9, 0, 0, 0, time.UTC)
	logs := []ReviewLog{
		{ID: "l1", CardID: "c1", DeckID: "d", ReviewedAt: now, ReviewDay: 20098, Rating: 3, QueueBefore: "new", QueueAfter: "learning", EaseAfter: 2500, CreatedAt: now},
		{ID: "l2", CardID: "c2", DeckID: "d", ReviewedAt: now, ReviewDay: 20098, Rating: 1, QueueBefore: "review", QueueAfter: "relearning", IntervalBeforeDays: 4, IntervalDays: 4, EaseBefore: 2500, EaseAfter: 2300, CreatedAt: now},
	}

	tests := []struct {
		name      string
		logs      []ReviewLog
		setupMock func(mock sqlmock.Sqlmock)
		wantErr   bool
	}{
		{
			name: "inserts all logs in one statement",
			logs: logs,
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec("INSERT INTO review_logs \\(id, card_id, .*\\) VALUES \\(.*\\), \\(.*\\)").
					WithArgs(
						"l1", "c1", "d", now, 20098, 3, "new", "learning", 0, 0, 0, 0, 2500, false, now,
						"l2", "c2", "d", now, 20098, 1, "review", "relearning", 4, 4, 0, 2500, 2300, false, now,
					).
					WillReturnResult(sqlmock.NewResult(0, 2))
			},
		},
		{
			name:      "nothing to insert",
			setupMock: func(mock sqlmock.Sqlmock) {},
		},
		{
			name: "db error",
			logs: logs[:1],
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec("INSERT INTO review_logs").WillReturnError(fmt.Errorf("connection refused"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			sqlxDB := sqlx.NewDb(db, "mysql")
			tt.setupMock(mock)

			err = Insert(context.Background(), sqlxDB, tt.logs...)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				require.NoError(t, err)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestDBRepository_FindByCard(t *testing.T) {
	now := time.Date(2025, 1, 10, 9, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		setupMock func(mock sqlmock.Sqlmock)
		want      []ReviewLog
		wantErr   bool
	}{
		{
			name: "returns logs in order",
			setupMock: func(mock sqlmock.Sqlmock) {
				rows := sqlmock.NewRows(reviewLogRowColumns).
					AddRow("l1", "c1", "d", now, 20098, 3, "new", "learning", 0, 0, 0, 0, 2500, false, now).
					AddRow("l2", "c1", "d", now.Add(time.Minute), 20098, 3, "learning", "learning", 0, 0, 0, 2500, 2500, false, now)
				mock.ExpectQuery("SELECT \\* FROM review_logs WHERE card_id = \\? ORDER BY reviewed_at, id").
					WithArgs("c1").
					WillReturnRows(rows)
			},
			want: []ReviewLog{
				{ID: "l1", CardID: "c1", DeckID: "d", ReviewedAt: now, ReviewDay: 20098, Rating: 3, QueueBefore: "new", QueueAfter: "learning", EaseAfter: 2500, CreatedAt: now},
				{ID: "l2", CardID: "c1", DeckID: "d", ReviewedAt: now.Add(time.Minute), ReviewDay: 20098, Rating: 3, QueueBefore: "learning", QueueAfter: "learning", EaseBefore: 2500, EaseAfter: 2500, CreatedAt: now},
			},
		},
		{
			name: "db error",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("SELECT \\* FROM review_logs").
					WithArgs("c1").
					WillReturnError(fmt.Errorf("connection refused"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			repo := NewDBRepository(sqlx.NewDb(db, "mysql"))
			tt.setupMock(mock)

			got, err := repo.FindByCard(context.Background(), "c1")
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestDBRepository_FindByDeck(t *testing.T) {
	now := time.Date(2025, 1, 10, 9, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		deckID    string
		setupMock func(mock sqlmock.Sqlmock)
		wantIDs   []string
		wantErr   bool
	}{
		{
			name:   "one deck",
			deckID: "kanji",
			setupMock: func(mock sqlmock.Sqlmock) {
				rows := sqlmock.NewRows(reviewLogRowColumns).
					AddRow("l1", "c1", "kanji", now, 20098, 3, "new", "learning", 0, 0, 0, 0, 2500, false, now)
				mock.ExpectQuery("SELECT \\* FROM review_logs WHERE deck_id = \\? ORDER BY reviewed_at, id").
					WithArgs("kanji").
					WillReturnRows(rows)
			},
			wantIDs: []string{"l1"},
		},
		{
			name:   "every deck",
			deckID: "",
			setupMock: func(mock sqlmock.Sqlmock) {
				rows := sqlmock.NewRows(reviewLogRowColumns).
					AddRow("l1", "c1", "kanji", now, 20098, 3, "new", "learning", 0, 0, 0, 0, 2500, false, now).
					AddRow("l2", "c9", "verbs", now, 20098, 4, "new", "review", 0, 4, 0, 0, 2500, false, now)
				mock.ExpectQuery("SELECT \\* FROM review_logs ORDER BY reviewed_at, id").
					WillReturnRows(rows)
			},
			wantIDs: []string{"l1", "l2"},
		},
		{
			name:   "db error",
			deckID: "kanji",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("SELECT \\* FROM review_logs").
					WithArgs("kanji").
					WillReturnError(fmt.Errorf("connection refused"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			repo := NewDBRepository(sqlx.NewDb(db, "mysql"))
			tt.setupMock(mock)

			got, err := repo.FindByDeck(context.Background(), tt.deckID)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			var ids []string
			for _, l := range got {
				ids = append(ids, l.ID)
			}
			assert.Equal(t, tt.wantIDs, ids)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestDBRepository_UsageByDeck(t *testing.T) {
	tests := []struct {
		name      string
		setupMock func(mock sqlmock.Sqlmock)
		want      map[string]scheduling.Usage
		wantErr   bool
	}{
		{
			name: "counts per deck",
			setupMock: func(mock sqlmock.Sqlmock) {
				rows := sqlmock.NewRows([]string{"deck_id", "new_studied", "reviews_studied"}).
					AddRow("kanji", 3, 10).
					AddRow("verbs", 0, 2)
				mock.ExpectQuery("SELECT deck_id,.*FROM review_logs WHERE review_day = \\? GROUP BY deck_id").
					WithArgs("new", "review", 20098).
					WillReturnRows(rows)
			},
			want: map[string]scheduling.Usage{
				"kanji": {NewStudied: 3, ReviewsStudied: 10},
				"verbs": {NewStudied: 0, ReviewsStudied: 2},
			},
		},
		{
			name: "nothing studied",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("SELECT deck_id").
					WithArgs("new", "review", 20098).
					WillReturnRows(sqlmock.NewRows([]string{"deck_id", "new_studied", "reviews_studied"}))
			},
			want: map[string]scheduling.Usage{},
		},
		{
			name: "db error",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("SELECT deck_id").WillReturnError(fmt.Errorf("connection refused"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			repo := NewDBRepository(sqlx.NewDb(db, "mysql"))
			tt.setupMock(mock)

			got, err := repo.UsageByDeck(context.Background(), 20098)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
