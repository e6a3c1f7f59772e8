package scheduling

import "time"

// Day is a calendar day counted from 1970-01-01, after the day boundary has
// been applied. Day 0 doubles as "never".
type Day int

// DayBoundary decides which calendar day an instant belongs to. A StartHour
// of 4 means reviews done at 02:00 still count towards the previous day.
type DayBoundary struct {
	Location  *time.Location
	StartHour int
}

// Moment is an instant together with the day it falls on.
type Moment struct {
	Time  time.Time
	Today Day
}

func (b DayBoundary) location() *time.Location {
	if b.Location == nil {
		return time.UTC
	}
	return b.Location
}

// Today returns the day t falls on. The boundary is read from the wall clock,
// so days that are 23 or 25 hours long still start at StartHour.
func (b DayBoundary) Today(t time.Time) Day {
	local := t.In(b.location())
	y, m, d := local.Date()
	if local.Hour() < b.StartHour {
		d--
	}
	return Day(time.Date(y, m, d, 0, 0, 0, 0, time.UTC).Unix() / 86400)
}

// Start returns the first instant of day d.
func (b DayBoundary) Start(d Day) time.Time {
	y, m, dd := time.Unix(int64(d)*86400, 0).UTC().Date()
	return time.Date(y, m, dd, b.StartHour, 0, 0, 0, b.location())
}

func (b DayBoundary) Moment(t time.Time) Moment {
	return Moment{Time: t, Today: b.Today(t)}
}
