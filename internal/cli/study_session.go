package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/at-ishikawa/recall/internal/card"
	"github.com/at-ishikawa/recall/internal/scheduling"
	"github.com/at-ishikawa/recall/internal/study"
)

//go:generate mockgen -source=study_session.go -destination=../mocks/cli/mock_studier.go -package=mock_cli Studier

// Studier is the part of study.Service a terminal session needs.
type Studier interface {
	Now() scheduling.Moment
	Next(ctx context.Context, deck string) (*card.Record, error)
	Previews(ctx context.Context, cardID string) ([]scheduling.Preview, error)
	Grade(ctx context.Context, cardID string, rating scheduling.Rating) (study.GradeResult, error)
	Suspend(ctx context.Context, cardID string) (card.Record, error)
	Summary(ctx context.Context, deck string) (scheduling.Summary, error)
}

// StudySession shows one due card per call: the question, then the answer
// with what each rating would do, then records the chosen rating.
type StudySession struct {
	*InteractiveCLI
	studier  Studier
	deck     string
	reviewed int
}

func NewStudySession(cli *InteractiveCLI, studier Studier, deck string) *StudySession {
	return &StudySession{InteractiveCLI: cli, studier: studier, deck: deck}
}

// Reviewed returns how many ratings the session recorded.
func (s *StudySession) Reviewed() int {
	return s.reviewed
}

func (s *StudySession) Session(ctx context.Context) error {
	rec, err := s.studier.Next(ctx, s.deck)
	if err != nil {
		return fmt.Errorf("find next card: %w", err)
	}
	if rec == nil {
		summary, err := s.studier.Summary(ctx, s.deck)
		if err != nil {
			return fmt.Errorf("summarize: %w", err)
		}
		_, _ = fmt.Fprintf(s.stdoutWriter, "No more cards due. Reviewed %d, %d new cards waiting.\n", s.reviewed, summary.New)
		return errEnd
	}

	_, _ = s.faint.Fprintf(s.stdoutWriter, "[%s] %s\n", rec.DeckID, rec.Queue)
	_, _ = s.bold.Fprintln(s.stdoutWriter, rec.Question)
	_, _ = fmt.Fprint(s.stdoutWriter, "Press Enter to show the answer...")
	if _, err := s.readLine(); err != nil {
		return err
	}

	_, _ = fmt.Fprintln(s.stdoutWriter, rec.Answer)
	if rec.Context != "" {
		_, _ = s.italic.Fprintln(s.stdoutWriter, rec.Context)
	}

	previews, err := s.studier.Previews(ctx, rec.ID)
	if err != nil {
		return fmt.Errorf("preview ratings: %w", err)
	}
	now := s.studier.Now()
	for _, p := range previews {
		c := s.ratingColors[p.Rating.String()]
		_, _ = c.Fprintf(s.stdoutWriter, "  %d %-5s", int(p.Rating), p.Rating)
		_, _ = fmt.Fprintf(s.stdoutWriter, " %s\n", study.DueLabel(p.State, now))
	}

	for {
		_, _ = fmt.Fprint(s.stdoutWriter, "Rating (1-4, s to suspend, q to quit): ")
		line, err := s.readLine()
		if err != nil {
			return err
		}
		input := strings.ToLower(strings.TrimSpace(line))
		switch input {
		case "q", "quit":
			return errEnd
		case "s", "suspend":
			if _, err := s.studier.Suspend(ctx, rec.ID); err != nil {
				return fmt.Errorf("suspend card %s: %w", rec.ID, err)
			}
			_, _ = fmt.Fprintln(s.stdoutWriter, "Suspended.")
			return nil
		}

		rating, err := scheduling.ParseRating(input)
		if err != nil {
			if errors.Is(err, scheduling.ErrInvalidRating) {
				_, _ = fmt.Fprintf(s.stdoutWriter, "Unknown rating %q\n", input)
				continue
			}
			return err
		}
		result, err := s.studier.Grade(ctx, rec.ID, rating)
		if err != nil {
			return fmt.Errorf("grade card %s: %w", rec.ID, err)
		}
		s.reviewed++
		_, _ = fmt.Fprintf(s.stdoutWriter, "Next review %s\n\n", study.DueLabel(result.Card.State(), now))
		if result.Log.BecameLeech {
			_, _ = s.bold.Fprintln(s.stdoutWriter, "This card is now a leech.")
		}
		return nil
	}
}
