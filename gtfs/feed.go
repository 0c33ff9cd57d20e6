package gtfs

import (
	"sort"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/maps"
)

// Feed is a fully validated GTFS schedule. It is immutable once Import
// returns, so any number of goroutines may query it without locking.
//
// The exported collections are the normalized tables; the unexported maps are
// derived lookup indexes rebuilt whenever a Feed is constructed or restored
// from a snapshot.
type Feed struct {
	Agencies       []Agency
	Stops          []Stop
	Routes         []Route
	Trips          []Trip
	StopTimes      []StopTime
	Calendars      []Calendar
	CalendarDates  []CalendarDate
	FareAttributes []FareAttribute
	FareRules      []FareRule
	Shapes         map[string][]ShapePoint
	Frequencies    []Frequency
	Transfers      []Transfer
	Pathways       []Pathway
	Levels         []Level
	FeedInfos      []FeedInfo
	Translations   Translations

	// ReferenceDate is the calendar date every stop time was anchored onto.
	ReferenceDate time.Time

	stopsByID       map[string]*Stop
	routesByID      map[string]*Route
	tripsByID       map[string]*Trip
	tripsByRoute    map[string][]*Trip
	stopTimesByTrip map[string][]StopTime
}

// ImportOptions controls how a feed is built.
type ImportOptions struct {
	// ReferenceDate is the service date stop times are anchored onto. Its
	// location is also used to interpret the feed's calendar dates. When
	// zero, the import day in local time is used.
	ReferenceDate time.Time
}

// ImportZip builds a Feed from a zip bundle held in memory.
func ImportZip(data []byte, opts ImportOptions) (*Feed, error) {
	archive, err := OpenZipBytes(data)
	if err != nil {
		return nil, err
	}
	return Import(archive, opts)
}

// Import builds a Feed from an archive. The import is all or nothing: a
// missing required table, a missing calendar source, or any malformed field
// value fails the whole import and no Feed is returned.
func Import(archive FeedArchive, opts ImportOptions) (*Feed, error) {
	present := make(map[string]bool)
	for _, name := range archive.EntryNames() {
		present[strings.ToLower(name)] = true
	}

	var missing []string
	for _, name := range requiredFiles {
		if !present[name] {
			missing = append(missing, name)
		}
	}
	if !present[fileCalendar] && !present[fileCalendarDates] {
		missing = append(missing, fileCalendar+" (or "+fileCalendarDates+")")
	}
	if len(missing) > 0 {
		return nil, &MalformedFeedError{MissingFiles: missing}
	}

	ref := opts.ReferenceDate
	if ref.IsZero() {
		ref = time.Now()
	}
	ref = midnightOf(ref)
	loc := ref.Location()

	feed := &Feed{ReferenceDate: ref}

	rawAgencies, err := decodeTable[rawAgency](archive, fileAgency)
	if err != nil {
		return nil, err
	}
	if feed.Agencies, err = normalizeAgencies(rawAgencies); err != nil {
		return nil, err
	}

	rawStops, err := decodeTable[rawStop](archive, fileStops)
	if err != nil {
		return nil, err
	}
	if feed.Stops, err = normalizeStops(rawStops); err != nil {
		return nil, err
	}

	rawRoutes, err := decodeTable[rawRoute](archive, fileRoutes)
	if err != nil {
		return nil, err
	}
	if feed.Routes, err = normalizeRoutes(rawRoutes); err != nil {
		return nil, err
	}

	rawTrips, err := decodeTable[rawTrip](archive, fileTrips)
	if err != nil {
		return nil, err
	}
	if feed.Trips, err = normalizeTrips(rawTrips); err != nil {
		return nil, err
	}

	rawStopTimes, err := decodeTable[rawStopTime](archive, fileStopTimes)
	if err != nil {
		return nil, err
	}
	if feed.StopTimes, err = normalizeStopTimes(rawStopTimes, ref); err != nil {
		return nil, err
	}

	if present[fileCalendar] {
		rows, err := decodeTable[rawCalendar](archive, fileCalendar)
		if err != nil {
			return nil, err
		}
		if feed.Calendars, err = normalizeCalendars(rows, loc); err != nil {
			return nil, err
		}
	}
	if present[fileCalendarDates] {
		rows, err := decodeTable[rawCalendarDate](archive, fileCalendarDates)
		if err != nil {
			return nil, err
		}
		if feed.CalendarDates, err = normalizeCalendarDates(rows, loc); err != nil {
			return nil, err
		}
	}

	if present[fileFareAttributes] {
		rows, err := decodeTable[rawFareAttribute](archive, fileFareAttributes)
		if err != nil {
			return nil, err
		}
		if feed.FareAttributes, err = normalizeFareAttributes(rows); err != nil {
			return nil, err
		}
	}
	if present[fileFareRules] {
		rows, err := decodeTable[rawFareRule](archive, fileFareRules)
		if err != nil {
			return nil, err
		}
		if feed.FareRules, err = normalizeFareRules(rows); err != nil {
			return nil, err
		}
	}
	if present[fileShapes] {
		rows, err := decodeTable[rawShapePoint](archive, fileShapes)
		if err != nil {
			return nil, err
		}
		if feed.Shapes, err = normalizeShapes(rows); err != nil {
			return nil, err
		}
	}
	if present[fileFrequencies] {
		rows, err := decodeTable[rawFrequency](archive, fileFrequencies)
		if err != nil {
			return nil, err
		}
		if feed.Frequencies, err = normalizeFrequencies(rows); err != nil {
			return nil, err
		}
	}
	if present[fileTransfers] {
		rows, err := decodeTable[rawTransfer](archive, fileTransfers)
		if err != nil {
			return nil, err
		}
		if feed.Transfers, err = normalizeTransfers(rows); err != nil {
			return nil, err
		}
	}
	if present[filePathways] {
		rows, err := decodeTable[rawPathway](archive, filePathways)
		if err != nil {
			return nil, err
		}
		if feed.Pathways, err = normalizePathways(rows); err != nil {
			return nil, err
		}
	}
	if present[fileLevels] {
		rows, err := decodeTable[rawLevel](archive, fileLevels)
		if err != nil {
			return nil, err
		}
		if feed.Levels, err = normalizeLevels(rows); err != nil {
			return nil, err
		}
	}
	if present[fileFeedInfo] {
		rows, err := decodeTable[rawFeedInfo](archive, fileFeedInfo)
		if err != nil {
			return nil, err
		}
		if feed.FeedInfos, err = normalizeFeedInfos(rows, loc); err != nil {
			return nil, err
		}
	}
	if present[fileTranslations] {
		rows, err := decodeTable[rawTranslation](archive, fileTranslations)
		if err != nil {
			return nil, err
		}
		if feed.Translations, err = normalizeTranslations(rows); err != nil {
			return nil, err
		}
	}

	feed.buildIndexes()

	log.Info().
		Str("reference_date", ref.Format("2006-01-02")).
		Int("agencies", len(feed.Agencies)).
		Int("stops", len(feed.Stops)).
		Int("routes", len(feed.Routes)).
		Int("trips", len(feed.Trips)).
		Int("stop_times", len(feed.StopTimes)).
		Int("shapes", len(feed.Shapes)).
		Msg("GTFS feed imported")

	return feed, nil
}

// buildIndexes derives the lookup maps from the exported collections. Stop
// times for each trip end up sorted by stop sequence regardless of the order
// the table listed them in.
func (f *Feed) buildIndexes() {
	f.stopsByID = make(map[string]*Stop, len(f.Stops))
	for i := range f.Stops {
		f.stopsByID[f.Stops[i].ID] = &f.Stops[i]
	}
	f.routesByID = make(map[string]*Route, len(f.Routes))
	for i := range f.Routes {
		f.routesByID[f.Routes[i].ID] = &f.Routes[i]
	}
	f.tripsByID = make(map[string]*Trip, len(f.Trips))
	f.tripsByRoute = make(map[string][]*Trip)
	for i := range f.Trips {
		trip := &f.Trips[i]
		f.tripsByID[trip.ID] = trip
		f.tripsByRoute[trip.RouteID] = append(f.tripsByRoute[trip.RouteID], trip)
	}
	f.stopTimesByTrip = make(map[string][]StopTime)
	for _, st := range f.StopTimes {
		f.stopTimesByTrip[st.TripID] = append(f.stopTimesByTrip[st.TripID], st)
	}
	for _, times := range f.stopTimesByTrip {
		sort.Slice(times, func(i, j int) bool { return times[i].Sequence < times[j].Sequence })
	}
}

// StopIDs returns every stop id, sorted.
func (f *Feed) StopIDs() []string {
	ids := maps.Keys(f.stopsByID)
	sort.Strings(ids)
	return ids
}

// RouteIDs returns every route id, sorted.
func (f *Feed) RouteIDs() []string {
	ids := maps.Keys(f.routesByID)
	sort.Strings(ids)
	return ids
}

// TripIDs returns every trip id, sorted.
func (f *Feed) TripIDs() []string {
	ids := maps.Keys(f.tripsByID)
	sort.Strings(ids)
	return ids
}
