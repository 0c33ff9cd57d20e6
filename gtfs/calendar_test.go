package gtfs

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func calendarFixture(t *testing.T) *Feed {
	t.Helper()
	return importFixture(t, map[string][]string{
		"calendar.txt": {
			"service_id,monday,tuesday,wednesday,thursday,friday,saturday,sunday,start_date,end_date",
			"WK,1,1,1,1,1,0,0,20260801,20260831",
			"WE,0,0,0,0,0,1,1,20260801,20260831",
		},
		"calendar_dates.txt": {
			"service_id,date,exception_type",
			// Monday the 3rd is a holiday: weekday service pulled, weekend
			// pattern and a special service added instead.
			"WK,20260803,2",
			"WE,20260803,1",
			"HOLIDAY,20260803,1",
			// An added row never beats a removal on the same date.
			"WK,20260810,1",
			"WK,20260810,2",
		},
	})
}

func TestActiveServiceIDsWeeklyPattern(t *testing.T) {
	feed := calendarFixture(t)

	// An ordinary Tuesday.
	assert.Equal(t, []string{"WK"}, feed.ActiveServiceIDs(utc(2026, time.August, 4, 0, 0, 0)))
	// An ordinary Saturday.
	assert.Equal(t, []string{"WE"}, feed.ActiveServiceIDs(utc(2026, time.August, 8, 0, 0, 0)))
	// The time component is ignored.
	assert.Equal(t, []string{"WK"}, feed.ActiveServiceIDs(utc(2026, time.August, 4, 23, 45, 0)))
}

func TestActiveServiceIDsOutsideRange(t *testing.T) {
	feed := calendarFixture(t)
	assert.Empty(t, feed.ActiveServiceIDs(utc(2026, time.July, 27, 0, 0, 0)))
	assert.Empty(t, feed.ActiveServiceIDs(utc(2026, time.September, 1, 0, 0, 0)))
	// Range bounds are inclusive: 2026-08-31 is a Monday.
	assert.Equal(t, []string{"WK"}, feed.ActiveServiceIDs(utc(2026, time.August, 31, 0, 0, 0)))
}

func TestActiveServiceIDsExceptions(t *testing.T) {
	feed := calendarFixture(t)

	// The holiday Monday: WK removed, WE and HOLIDAY added.
	assert.Equal(t, []string{"HOLIDAY", "WE"},
		feed.ActiveServiceIDs(utc(2026, time.August, 3, 0, 0, 0)))
}

func TestActiveServiceIDsRemovalWins(t *testing.T) {
	feed := calendarFixture(t)

	// 2026-08-10 is a Monday: WK runs by pattern and has both an added and a
	// removed exception. Removal wins.
	assert.Empty(t, feed.ActiveServiceIDs(utc(2026, time.August, 10, 0, 0, 0)))
}

func TestActiveServiceIDsDeduplicated(t *testing.T) {
	feed := importFixture(t, map[string][]string{
		"calendar_dates.txt": {
			"service_id,date,exception_type",
			"SPECIAL,20260803,1",
			"SPECIAL,20260803,1",
		},
	})
	assert.Equal(t, []string{"SPECIAL"}, feed.ActiveServiceIDs(testRefDate))
}
