package cli

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/at-ishikawa/recall/internal/card"
	"github.com/at-ishikawa/recall/internal/history"
	mock_cli "github.com/at-ishikawa/recall/internal/mocks/cli"
	"github.com/at-ishikawa/recall/internal/scheduling"
	"github.com/at-ishikawa/recall/internal/study"
)

var (
	testBoundary = scheduling.DayBoundary{Location: time.UTC, StartHour: 4}
	testNow      = testBoundary.Moment(time.Date(2025, 1, 10, 9, 0, 0, 0, time.UTC))
)

func testRecord() *card.Record {
	rec := card.NewRecord("c1", "japanese", "猫", "cat", testNow.Time.Add(-time.Hour))
	rec.Context = "猫が好きです"
	return &rec
}

func testPreviews() []scheduling.Preview {
	learning := func(d time.Duration) scheduling.State {
		return scheduling.State{Queue: scheduling.QueueLearning, DueAt: testNow.Time.Add(d), Ease: 2500}
	}
	return []scheduling.Preview{
		{Rating: scheduling.Again, State: learning(time.Minute)},
		{Rating: scheduling.Hard, State: learning(time.Minute)},
		{Rating: scheduling.Good, State: learning(10 * time.Minute)},
		{Rating: scheduling.Easy, State: scheduling.State{Queue: scheduling.QueueReview, DueDay: testNow.Today + 4, IntervalDays: 4, Ease: 2500}},
	}
}

func gradeResult(rec *card.Record, rating scheduling.Rating, leech bool) study.GradeResult {
	next := rec.WithState(scheduling.State{
		Queue: scheduling.QueueLearning,
		DueAt: testNow.Time.Add(10 * time.Minute),
		Ease:  2500,
		Reps:  1,
	})
	return study.GradeResult{
		Card: next,
		Log:  history.ReviewLog{CardID: rec.ID, Rating: int(rating), BecameLeech: leech},
	}
}

func TestStudySession_Session(t *testing.T) {
	color.NoColor = true

	tests := []struct {
		name         string
		input        string
		setupMock    func(m *mock_cli.MockStudier)
		wantErr      error
		wantErrMsg   string
		wantOutput   []string
		wantReviewed int
	}{
		{
			name:  "no more cards",
			input: "",
			setupMock: func(m *mock_cli.MockStudier) {
				m.EXPECT().Next(gomock.Any(), "japanese").Return(nil, nil)
				m.EXPECT().Summary(gomock.Any(), "japanese").Return(scheduling.Summary{New: 3}, nil)
			},
			wantErr:    errEnd,
			wantOutput: []string{"No more cards due. Reviewed 0, 3 new cards waiting."},
		},
		{
			name:  "grade with a number",
			input: "\n3\n",
			setupMock: func(m *mock_cli.MockStudier) {
				rec := testRecord()
				m.EXPECT().Next(gomock.Any(), "japanese").Return(rec, nil)
				m.EXPECT().Previews(gomock.Any(), "c1").Return(testPreviews(), nil)
				m.EXPECT().Now().Return(testNow).AnyTimes()
				m.EXPECT().Grade(gomock.Any(), "c1", scheduling.Good).Return(gradeResult(rec, scheduling.Good, false), nil)
			},
			wantOutput: []string{
				"[japanese] new",
				"猫",
				"cat",
				"猫が好きです",
				"1 again 1 minute from now",
				"3 good  10 minutes from now",
				"4 easy  4 days from now",
				"Next review 10 minutes from now",
			},
			wantReviewed: 1,
		},
		{
			name:  "unknown rating is asked again",
			input: "\nmaybe\nagain\n",
			setupMock: func(m *mock_cli.MockStudier) {
				rec := testRecord()
				m.EXPECT().Next(gomock.Any(), "japanese").Return(rec, nil)
				m.EXPECT().Previews(gomock.Any(), "c1").Return(testPreviews(), nil)
				m.EXPECT().Now().Return(testNow).AnyTimes()
				m.EXPECT().Grade(gomock.Any(), "c1", scheduling.Again).Return(gradeResult(rec, scheduling.Again, true), nil)
			},
			wantOutput: []string{
				`Unknown rating "maybe"`,
				"This card is now a leech.",
			},
			wantReviewed: 1,
		},
		{
			name:  "suspend",
			input: "\ns\n",
			setupMock: func(m *mock_cli.MockStudier) {
				rec := testRecord()
				m.EXPECT().Next(gomock.Any(), "japanese").Return(rec, nil)
				m.EXPECT().Previews(gomock.Any(), "c1").Return(testPreviews(), nil)
				m.EXPECT().Now().Return(testNow).AnyTimes()
				m.EXPECT().Suspend(gomock.Any(), "c1").Return(rec.WithState(scheduling.Suspend(rec.State())), nil)
			},
			wantOutput: []string{"Suspended."},
		},
		{
			name:  "quit",
			input: "\nq\n",
			setupMock: func(m *mock_cli.MockStudier) {
				m.EXPECT().Next(gomock.Any(), "japanese").Return(testRecord(), nil)
				m.EXPECT().Previews(gomock.Any(), "c1").Return(testPreviews(), nil)
				m.EXPECT().Now().Return(testNow).AnyTimes()
			},
			wantErr: errEnd,
		},
		{
			name:  "input closed before the answer",
			input: "",
			setupMock: func(m *mock_cli.MockStudier) {
				m.EXPECT().Next(gomock.Any(), "japanese").Return(testRecord(), nil)
			},
			wantErr: errEnd,
		},
		{
			name:  "grade fails",
			input: "\ngood\n",
			setupMock: func(m *mock_cli.MockStudier) {
				m.EXPECT().Next(gomock.Any(), "japanese").Return(testRecord(), nil)
				m.EXPECT().Previews(gomock.Any(), "c1").Return(testPreviews(), nil)
				m.EXPECT().Now().Return(testNow).AnyTimes()
				m.EXPECT().Grade(gomock.Any(), "c1", scheduling.Good).Return(study.GradeResult{}, errors.New("db down"))
			},
			wantErrMsg: "grade card c1: db down",
		},
		{
			name:  "next fails",
			input: "",
			setupMock: func(m *mock_cli.MockStudier) {
				m.EXPECT().Next(gomock.Any(), "japanese").Return(nil, errors.New("db down"))
			},
			wantErrMsg: "find next card: db down",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			studier := mock_cli.NewMockStudier(ctrl)
			tt.setupMock(studier)

			var out bytes.Buffer
			session := NewStudySession(NewInteractiveCLI(strings.NewReader(tt.input), &out), studier, "japanese")

			err := session.Session(t.Context())
			switch {
			case tt.wantErr != nil:
				assert.ErrorIs(t, err, tt.wantErr)
			case tt.wantErrMsg != "":
				require.Error(t, err)
				assert.Equal(t, tt.wantErrMsg, err.Error())
			default:
				assert.NoError(t, err)
			}
			for _, want := range tt.wantOutput {
				assert.Contains(t, out.String(), want)
			}
			assert.Equal(t, tt.wantReviewed, session.Reviewed())
		})
	}
}
