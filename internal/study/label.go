package study

import (
	"github.com/dustin/go-humanize"

	"github.com/at-ishikawa/recall/internal/scheduling"
)

// DueLabel describes when a card in state s comes back, relative to now,
// such as "10 minutes from now" or "4 days from now".
func DueLabel(s scheduling.State, now scheduling.Moment) string {
	switch {
	case s.Suspended:
		return "suspended"
	case !s.DueAt.IsZero():
		if !s.DueAt.After(now.Time) {
			return "now"
		}
		return humanize.RelTime(s.DueAt, now.Time, "ago", "from now")
	case s.DueDay != 0:
		days := int(s.DueDay - now.Today)
		if days <= 0 {
			return "today"
		}
		return humanize.RelTime(now.Time.AddDate(0, 0, days), now.Time, "ago", "from now")
	}
	return "new"
}
