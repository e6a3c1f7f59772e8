package scheduling

import (
	"fmt"
	"strings"
)

// InvalidStateError reports a card state that cannot be advanced, either
// because it is suspended or because its persisted fields are malformed.
type InvalidStateError struct {
	CardID string
	Reason string
}

func (e *InvalidStateError) Error() string {
	return fmt.Sprintf("invalid state for card %s: %s", e.CardID, e.Reason)
}

// InvalidParametersError reports deck parameters that violate their invariants.
type InvalidParametersError struct {
	Deck     string
	Problems []string
}

func (e *InvalidParametersError) Error() string {
	deck := e.Deck
	if deck == "" {
		deck = "(default)"
	}
	return fmt.Sprintf("invalid scheduling parameters for deck %s: %s", deck, strings.Join(e.Problems, ", "))
}

// ConcurrentModificationError is returned by persistence when another writer
// saved the same card first. Callers reload the card and try again.
type ConcurrentModificationError struct {
	CardID string
}

func (e *ConcurrentModificationError) Error() string {
	return fmt.Sprintf("card %s was modified concurrently", e.CardID)
}
