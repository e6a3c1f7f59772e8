package scheduling

// Preview is the schedule a card would get for one rating.
type Preview struct {
	Rating Rating
	State  State
}

// PreviewAll simulates every rating on card without recording anything.
func PreviewAll(card Card, params Parameters, now Moment) ([]Preview, error) {
	previews := make([]Preview, 0, len(Ratings))
	for _, r := range Ratings {
		next, _, err := Advance(card, r, params, now)
		if err != nil {
			return nil, err
		}
		previews = append(previews, Preview{Rating: r, State: next})
	}
	return previews, nil
}
