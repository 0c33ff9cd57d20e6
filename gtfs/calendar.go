package gtfs

import (
	"sort"
	"time"
)

// ActiveServiceIDs resolves which services run on a calendar date. The time
// component of date is ignored.
//
// A service is active when its weekly pattern covers the date's weekday
// inside the pattern's date range, or when a calendar_dates row adds it for
// that exact date. A "removed" exception always wins: a service removed for
// the date is excluded even if another row adds it. The result is sorted and
// free of duplicates.
func (f *Feed) ActiveServiceIDs(date time.Time) []string {
	day := midnightOf(date)
	weekday := day.Weekday()

	active := make(map[string]bool)
	for _, cal := range f.Calendars {
		if day.Before(midnightOf(cal.Start)) || day.After(midnightOf(cal.End)) {
			continue
		}
		if cal.RunsOn(weekday) {
			active[cal.ServiceID] = true
		}
	}

	removed := make(map[string]bool)
	for _, cd := range f.CalendarDates {
		if !sameDate(cd.Date, day) {
			continue
		}
		switch cd.ExceptionType {
		case ExceptionAdded:
			active[cd.ServiceID] = true
		case ExceptionRemoved:
			removed[cd.ServiceID] = true
		}
	}
	for id := range removed {
		delete(active, id)
	}

	ids := make([]string, 0, len(active))
	for id := range active {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
