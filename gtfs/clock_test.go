package gtfs

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTimeOfDay(t *testing.T) {
	tests := []struct {
		in   string
		want TimeOfDay
		bad  bool
	}{
		{in: "08:30:15", want: TimeOfDay{8, 30, 15}},
		{in: "25:10:00", want: TimeOfDay{25, 10, 0}},
		{in: "7:05:00", want: TimeOfDay{7, 5, 0}},
		{in: "12", want: TimeOfDay{12, 0, 0}},
		{in: "12:45", want: TimeOfDay{12, 45, 0}},
		{in: "", bad: true},
		{in: "12:60:00", bad: true},
		{in: "12:00:61", bad: true},
		{in: "-1:00:00", bad: true},
		{in: "noon", bad: true},
		{in: "1:2:3:4", bad: true},
	}
	for _, tc := range tests {
		td, err := ParseTimeOfDay(tc.in)
		if tc.bad {
			assert.Error(t, err, "input %q", tc.in)
			continue
		}
		require.NoError(t, err, "input %q", tc.in)
		assert.Equal(t, tc.want, td, "input %q", tc.in)
	}
}

func TestAnchorToRollsPastMidnight(t *testing.T) {
	ref := utc(2026, time.August, 3, 0, 0, 0)

	td := TimeOfDay{Hours: 25, Minutes: 10}
	assert.Equal(t, 1, td.DayOffset())
	assert.Equal(t, utc(2026, time.August, 4, 1, 10, 0), td.AnchorTo(ref))

	// Two whole days past the service date.
	td = TimeOfDay{Hours: 49, Minutes: 5}
	assert.Equal(t, 2, td.DayOffset())
	assert.Equal(t, utc(2026, time.August, 5, 1, 5, 0), td.AnchorTo(ref))

	td = TimeOfDay{Hours: 23, Minutes: 59, Seconds: 59}
	assert.Equal(t, utc(2026, time.August, 3, 23, 59, 59), td.AnchorTo(ref))
}

func TestAnchorSubtractToCancelsRollover(t *testing.T) {
	ref := utc(2026, time.August, 4, 0, 0, 0)

	// The hour encodes "one day past the service date", so subtracting lands
	// the wall clock back on the day before ref.
	td := TimeOfDay{Hours: 25, Minutes: 10}
	assert.Equal(t, utc(2026, time.August, 3, 1, 10, 0), td.AnchorSubtractTo(ref))

	td = TimeOfDay{Hours: 8, Minutes: 30}
	assert.Equal(t, utc(2026, time.August, 4, 8, 30, 0), td.AnchorSubtractTo(ref))
}

func TestAddToTreatsValueAsDuration(t *testing.T) {
	ref := utc(2026, time.August, 3, 22, 0, 0)
	td := TimeOfDay{Hours: 3, Minutes: 30}
	assert.Equal(t, utc(2026, time.August, 4, 1, 30, 0), td.AddTo(ref))
}

func TestClockOf(t *testing.T) {
	assert.Equal(t, TimeOfDay{1, 10, 0}, ClockOf(utc(2026, time.August, 4, 1, 10, 0)))
}

func TestDaysBetween(t *testing.T) {
	a := utc(2026, time.August, 3, 23, 0, 0)
	b := utc(2026, time.August, 4, 1, 0, 0)
	assert.Equal(t, 1, daysBetween(a, b))
	assert.Equal(t, -1, daysBetween(b, a))
	assert.Equal(t, 0, daysBetween(a, a))
	assert.Equal(t, 7, daysBetween(a, utc(2026, time.August, 10, 0, 0, 0)))
}
