package scheduling

import (
	"cmp"
	"slices"
)

// Limits caps how many new cards and reviews a deck may serve per day.
type Limits struct {
	NewPerDay    int
	ReviewPerDay int
}

// Usage counts what a deck has already served today.
type Usage struct {
	NewStudied     int
	ReviewsStudied int
}

// Remaining subtracts today's usage from the caps.
func (l Limits) Remaining(u Usage) Limits {
	return Limits{
		NewPerDay:    max(0, l.NewPerDay-u.NewStudied),
		ReviewPerDay: max(0, l.ReviewPerDay-u.ReviewsStudied),
	}
}

// Build orders the cards that are due for study at now:
//
//  1. learning and relearning cards due at or before now.Time, earliest first
//  2. review cards due on or before now.Today, earliest day first, capped per deck
//  3. new cards in creation order, capped per deck
//
// Suspended cards are never returned and no card is returned twice. Decks
// missing from limits get no reviews and no new cards. Build only reads its
// input.
func Build(cards []Card, limits map[string]Limits, now Moment) []Card {
	var learning, review, fresh []Card
	seen := make(map[string]bool, len(cards))
	for _, c := range cards {
		if seen[c.ID] {
			continue
		}
		seen[c.ID] = true

		s := c.State
		if s.Suspended {
			continue
		}
		switch s.Queue {
		case QueueLearning, QueueRelearning:
			if !s.DueAt.After(now.Time) {
				learning = append(learning, c)
			}
		case QueueReview:
			if s.DueDay <= now.Today {
				review = append(review, c)
			}
		case QueueNew:
			fresh = append(fresh, c)
		}
	}

	slices.SortFunc(learning, func(a, b Card) int {
		if c := a.State.DueAt.Compare(b.State.DueAt); c != 0 {
			return c
		}
		return cmp.Compare(a.ID, b.ID)
	})
	slices.SortFunc(review, func(a, b Card) int {
		if c := cmp.Compare(a.State.DueDay, b.State.DueDay); c != 0 {
			return c
		}
		return cmp.Compare(a.ID, b.ID)
	})
	slices.SortFunc(fresh, func(a, b Card) int {
		if c := a.CreatedAt.Compare(b.CreatedAt); c != 0 {
			return c
		}
		return cmp.Compare(a.ID, b.ID)
	})

	out := make([]Card, 0, len(learning)+len(review)+len(fresh))
	out = append(out, learning...)
	out = appendCapped(out, review, limits, func(l Limits) int { return l.ReviewPerDay })
	out = appendCapped(out, fresh, limits, func(l Limits) int { return l.NewPerDay })
	return out
}

func appendCapped(out, cards []Card, limits map[string]Limits, limit func(Limits) int) []Card {
	taken := make(map[string]int)
	for _, c := range cards {
		if taken[c.DeckID] >= limit(limits[c.DeckID]) {
			continue
		}
		taken[c.DeckID]++
		out = append(out, c)
	}
	return out
}

// Summary counts what is waiting in a set of cards.
type Summary struct {
	New      int
	Learning int
	Review   int
}

// Due is the number of cards that must be studied now.
func (s Summary) Due() int {
	return s.Learning + s.Review
}

// Summarize counts new cards, learning cards due now and reviews due today.
// Caps are not applied.
func Summarize(cards []Card, now Moment) Summary {
	var sum Summary
	for _, c := range cards {
		s := c.State
		switch s.Queue {
		case QueueNew:
			sum.New++
		case QueueLearning, QueueRelearning:
			if !s.DueAt.After(now.Time) {
				sum.Learning++
			}
		case QueueReview:
			if s.DueDay <= now.Today {
				sum.Review++
			}
		}
	}
	return sum
}
