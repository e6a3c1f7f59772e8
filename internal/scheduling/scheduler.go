package scheduling

import (
	"fmt"
	"time"
)

// LogEntry is the record of one rating. Advance produces exactly one per
// call; it is never changed afterwards.
type LogEntry struct {
	CardID             string
	Timestamp          time.Time
	Day                Day
	Rating             Rating
	QueueBefore        Queue
	QueueAfter         Queue
	IntervalBeforeDays int
	IntervalDays       int
	ElapsedDays        int
	EaseBefore         Factor
	EaseAfter          Factor
	BecameLeech        bool
}

// Advance computes the schedule that follows rating card at now. The input
// is never modified. The returned state and log entry belong together and
// must be persisted in one transaction.
func Advance(card Card, rating Rating, params Parameters, now Moment) (State, LogEntry, error) {
	if !rating.Valid() {
		return State{}, LogEntry{}, fmt.Errorf("%w: %d", ErrInvalidRating, rating)
	}
	if len(params.LearningSteps) == 0 {
		return State{}, LogEntry{}, &InvalidParametersError{Deck: card.DeckID, Problems: []string{"learning_steps must not be empty"}}
	}
	prev := card.State
	if prev.Suspended {
		return State{}, LogEntry{}, &InvalidStateError{CardID: card.ID, Reason: "card is suspended"}
	}
	if err := prev.Validate(params); err != nil {
		return State{}, LogEntry{}, &InvalidStateError{CardID: card.ID, Reason: err.Error()}
	}

	next := prev
	switch prev.Queue {
	case QueueNew:
		next.Queue = QueueLearning
		next.StepIndex = 0
		next.Ease = params.StartingEase
		next = advanceStep(next, rating, params, now)
	case QueueLearning, QueueRelearning:
		next = advanceStep(next, rating, params, now)
	case QueueReview:
		next = advanceReview(card.ID, next, rating, params, now)
	}
	next.Reps++
	next.LastReviewDay = now.Today

	elapsed := 0
	if prev.LastReviewDay != 0 {
		elapsed = max(0, int(now.Today-prev.LastReviewDay))
	}
	entry := LogEntry{
		CardID:             card.ID,
		Timestamp:          now.Time,
		Day:                now.Today,
		Rating:             rating,
		QueueBefore:        prev.Queue,
		QueueAfter:         next.Queue,
		IntervalBeforeDays: prev.IntervalDays,
		IntervalDays:       next.IntervalDays,
		ElapsedDays:        elapsed,
		EaseBefore:         prev.Ease,
		EaseAfter:          next.Ease,
		BecameLeech:        next.Leech && !prev.Leech,
	}
	return next, entry, nil
}

func advanceStep(s State, rating Rating, p Parameters, now Moment) State {
	steps := p.steps(s.Queue)
	switch rating {
	case Again:
		s.StepIndex = 0
		s.DueAt = now.Time.Add(steps[0])
	case Hard:
		s.DueAt = now.Time.Add(steps[s.StepIndex])
	case Good:
		s.StepIndex++
		if s.StepIndex >= len(steps) {
			return graduate(s, p.GraduatingIntervalDays, p, now)
		}
		s.DueAt = now.Time.Add(steps[s.StepIndex])
	case Easy:
		return graduate(s, p.EasyIntervalDays, p, now)
	}
	return s
}

func graduate(s State, days int, p Parameters, now Moment) State {
	interval := days
	if s.Queue == QueueRelearning {
		interval = max(s.IntervalDays, days)
	}
	if s.Ease == 0 {
		s.Ease = p.StartingEase
	}
	s.Ease = maxFactor(s.Ease, p.MinimumEase)
	s.Queue = QueueReview
	s.StepIndex = 0
	s.DueAt = time.Time{}
	s.IntervalDays = p.clampInterval(interval)
	s.DueDay = now.Today + Day(s.IntervalDays)
	return s
}

func advanceReview(cardID string, s State, rating Rating, p Parameters, now Moment) State {
	if rating == Again {
		return lapse(s, p, now)
	}

	switch rating {
	case Hard:
		s.IntervalDays = max(s.IntervalDays+1, mulDays(s.IntervalDays, p.HardIntervalMultiplier))
		s.Ease = maxFactor(p.MinimumEase, s.Ease-p.HardEasePenalty)
	case Good:
		s.IntervalDays = mulDays(s.IntervalDays, s.Ease)
	case Easy:
		s.IntervalDays = mulDays(s.IntervalDays, s.Ease, p.EasyBonus)
		s.Ease += p.EasyEaseBonus
	}
	s.IntervalDays = fuzzInterval(cardID, p.clampInterval(s.IntervalDays), now.Today, p)
	s.Lapses = 0
	s.DueDay = now.Today + Day(s.IntervalDays)
	return s
}

func lapse(s State, p Parameters, now Moment) State {
	s.Lapses++
	s.Ease = maxFactor(p.MinimumEase, s.Ease-p.LapseEasePenalty)
	if len(p.RelearningSteps) > 0 {
		s.Queue = QueueRelearning
		s.StepIndex = 0
		s.DueDay = 0
		s.DueAt = now.Time.Add(p.RelearningSteps[0])
	} else {
		s.IntervalDays = p.clampInterval(s.IntervalDays * int(p.LapseIntervalMultiplier) / factorScale)
		s.DueDay = now.Today + Day(s.IntervalDays)
	}

	if p.LeechThreshold > 0 && s.Lapses%p.LeechThreshold == 0 {
		s.Leech = true
		if p.LeechAction == LeechActionSuspend {
			s = Suspend(s)
		}
	}
	return s
}
