package scheduling

import (
	"fmt"
	"time"
)

// State is the scheduling data attached to one card. Which due field is
// meaningful depends on Queue:
//
//	New                   neither
//	Learning, Relearning  DueAt (a moment), StepIndex
//	Review                DueDay (a day), IntervalDays, Ease
//	Suspended             fields of the queue the card resumes into
type State struct {
	Queue        Queue
	StepIndex    int
	DueAt        time.Time
	DueDay       Day
	IntervalDays int
	Ease         Factor
	Lapses       int
	Reps         int
	Leech        bool
	Suspended    bool

	// LastReviewDay is 0 until the first rating.
	LastReviewDay Day
}

// Card pairs a card identity with its schedule. DeckID and CreatedAt are
// only read by the queue builder.
type Card struct {
	ID        string
	DeckID    string
	CreatedAt time.Time
	State     State
}

// NewState returns the schedule of a card that has never been studied.
func NewState() State {
	return State{Queue: QueueNew}
}

// Validate checks the invariants of s against the steps implied by p.
func (s State) Validate(p Parameters) error {
	if _, err := ParseQueue(string(s.Queue)); err != nil {
		return err
	}
	if s.Suspended != (s.Queue == QueueSuspended) {
		return fmt.Errorf("suspended flag %t does not match queue %s", s.Suspended, s.Queue)
	}
	if s.Lapses < 0 || s.Reps < 0 || s.IntervalDays < 0 {
		return fmt.Errorf("negative counter")
	}

	switch s.Queue {
	case QueueNew:
		if s.IntervalDays != 0 || s.Lapses != 0 {
			return fmt.Errorf("new card with interval %d and %d lapses", s.IntervalDays, s.Lapses)
		}
		if s.Leech {
			return fmt.Errorf("new card flagged as leech")
		}
		if !s.DueAt.IsZero() || s.DueDay != 0 || s.StepIndex != 0 {
			return fmt.Errorf("new card with a due value")
		}
	case QueueLearning, QueueRelearning:
		steps := p.steps(s.Queue)
		if s.StepIndex < 0 || s.StepIndex >= len(steps) {
			return fmt.Errorf("step index %d out of range for %d %s steps", s.StepIndex, len(steps), s.Queue)
		}
		if s.DueAt.IsZero() || s.DueDay != 0 {
			return fmt.Errorf("%s card must be due at a moment", s.Queue)
		}
		if s.Queue == QueueRelearning && s.IntervalDays < 1 {
			return fmt.Errorf("relearning card without a previous interval")
		}
	case QueueReview:
		if s.IntervalDays < 1 {
			return fmt.Errorf("review card with interval %d", s.IntervalDays)
		}
		if s.Ease < p.MinimumEase {
			return fmt.Errorf("ease %s below minimum %s", s.Ease, p.MinimumEase)
		}
		if !s.DueAt.IsZero() || s.DueDay == 0 || s.StepIndex != 0 {
			return fmt.Errorf("review card must be due on a day")
		}
	}
	return nil
}

// Suspend takes a card out of every queue until Unsuspend is called. The
// fields of its current queue are kept so it can resume where it was.
func Suspend(s State) State {
	if s.Suspended {
		return s
	}
	s.Suspended = true
	s.Queue = QueueSuspended
	return s
}

// Unsuspend returns a suspended card to the queue its fields describe.
func Unsuspend(s State) State {
	if !s.Suspended {
		return s
	}
	s.Suspended = false
	switch {
	case !s.DueAt.IsZero() && s.IntervalDays > 0:
		s.Queue = QueueRelearning
	case !s.DueAt.IsZero():
		s.Queue = QueueLearning
	case s.DueDay != 0:
		s.Queue = QueueReview
	default:
		s.Queue = QueueNew
	}
	return s
}
