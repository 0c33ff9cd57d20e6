package gtfs

import (
	"errors"
	"strconv"
	"strings"
	"time"
)

// TimeOfDay is a GTFS wall-clock time. Hours may legitimately exceed 23 for
// stop times of trips that cross midnight: "25:10:00" means 01:10:00 on the
// day after the service date.
type TimeOfDay struct {
	Hours   int
	Minutes int
	Seconds int
}

var errBadClock = errors.New("malformed wall-clock time")

// ParseTimeOfDay parses "HH:MM:SS". Minutes and seconds may be omitted and
// default to zero; hours may exceed 23.
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	parts := strings.Split(s, ":")
	if len(parts) > 3 || parts[0] == "" {
		return TimeOfDay{}, errBadClock
	}
	td := TimeOfDay{}
	h, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil || h < 0 {
		return TimeOfDay{}, errBadClock
	}
	td.Hours = h
	if len(parts) > 1 && parts[1] != "" {
		td.Minutes, err = strconv.Atoi(parts[1])
		if err != nil || td.Minutes < 0 || td.Minutes > 59 {
			return TimeOfDay{}, errBadClock
		}
	}
	if len(parts) > 2 && parts[2] != "" {
		td.Seconds, err = strconv.Atoi(parts[2])
		if err != nil || td.Seconds < 0 || td.Seconds > 59 {
			return TimeOfDay{}, errBadClock
		}
	}
	return td, nil
}

// ClockOf extracts the wall-clock component of an already-anchored timestamp.
// The result is always in the 0..23 hour range.
func ClockOf(t time.Time) TimeOfDay {
	return TimeOfDay{Hours: t.Hour(), Minutes: t.Minute(), Seconds: t.Second()}
}

// DayOffset returns how many whole days past the service date this wall-clock
// value falls (1 for "25:10:00").
func (td TimeOfDay) DayOffset() int { return td.Hours / 24 }

// AnchorTo produces an absolute timestamp with this wall-clock on ref's
// calendar date. An hour of 24 or more rolls forward into the following
// day(s) the way ordinary clock arithmetic would.
func (td TimeOfDay) AnchorTo(ref time.Time) time.Time {
	year, month, day := ref.Date()
	return time.Date(year, month, day, td.Hours, td.Minutes, td.Seconds, 0, ref.Location())
}

// AnchorSubtractTo is AnchorTo with the day rollover cancelled out: the day
// offset baked into the hour value is subtracted from ref before the
// remaining 0..23 wall-clock is applied. Use it to re-base a value whose hour
// already encodes how many days past its reference it falls.
func (td TimeOfDay) AnchorSubtractTo(ref time.Time) time.Time {
	offset := td.DayOffset()
	year, month, day := ref.Date()
	return time.Date(year, month, day-offset, td.Hours-offset*24, td.Minutes, td.Seconds, 0, ref.Location())
}

// AddTo ignores date-setting semantics entirely and adds this value onto ref
// as a duration.
func (td TimeOfDay) AddTo(ref time.Time) time.Time {
	return ref.Add(time.Duration(td.Hours)*time.Hour +
		time.Duration(td.Minutes)*time.Minute +
		time.Duration(td.Seconds)*time.Second)
}

// sameDate reports whether two timestamps fall on the same calendar day.
func sameDate(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// midnightOf truncates a timestamp to the start of its calendar day.
func midnightOf(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}

// daysBetween returns the count of calendar-day boundaries from a to b.
// Rounding keeps daylight-saving transitions from shifting the count.
func daysBetween(a, b time.Time) int {
	d := midnightOf(b).Sub(midnightOf(a))
	return int(d.Round(24*time.Hour) / (24 * time.Hour))
}
