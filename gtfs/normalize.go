package gtfs

import (
	"strconv"
	"time"
)

// Field normalizers, one per table. Input is the raw rows of one table,
// output is the typed records - or a *FieldError that fails the whole feed.
// There is no per-row recovery: a schedule with one bad row is a schedule
// nobody should be routed with.

const dateLayout = "20060102"

// requireField rejects a blank value in a required field.
func requireField(file, field, value string) error {
	if value == "" {
		return newMissingField(file, field)
	}
	return nil
}

// floatField parses a required numeric field.
func floatField(file, field, value string) (float64, error) {
	if value == "" {
		return 0, newMissingField(file, field)
	}
	v, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, newFieldError(file, field, value)
	}
	return v, nil
}

// optFloatField parses an optional numeric field, nil when blank.
func optFloatField(file, field, value string) (*float64, error) {
	if value == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return nil, newFieldError(file, field, value)
	}
	return &v, nil
}

// intField parses a required integer field.
func intField(file, field, value string) (int, error) {
	if value == "" {
		return 0, newMissingField(file, field)
	}
	v, err := strconv.Atoi(value)
	if err != nil {
		return 0, newFieldError(file, field, value)
	}
	return v, nil
}

// optIntField parses an optional integer field, nil when blank.
func optIntField(file, field, value string) (*int, error) {
	if value == "" {
		return nil, nil
	}
	v, err := strconv.Atoi(value)
	if err != nil {
		return nil, newFieldError(file, field, value)
	}
	return &v, nil
}

// codeField parses an enumerated integer field with blank defaulting to def.
func codeField(file, field, value string, def, lo, hi int) (int, error) {
	v, err := parseCode(value, def, lo, hi)
	if err != nil {
		return 0, newFieldError(file, field, value)
	}
	return v, nil
}

// dateField parses a required YYYYMMDD date in the feed's location.
func dateField(file, field, value string, loc *time.Location) (time.Time, error) {
	if value == "" {
		return time.Time{}, newMissingField(file, field)
	}
	t, err := time.ParseInLocation(dateLayout, value, loc)
	if err != nil {
		return time.Time{}, newFieldError(file, field, value)
	}
	return t, nil
}

// clockField parses a required HH:MM:SS wall-clock value.
func clockField(file, field, value string) (TimeOfDay, error) {
	if value == "" {
		return TimeOfDay{}, newMissingField(file, field)
	}
	td, err := ParseTimeOfDay(value)
	if err != nil {
		return TimeOfDay{}, newFieldError(file, field, value)
	}
	return td, nil
}

func normalizeAgencies(rows []rawAgency) ([]Agency, error) {
	if len(rows) == 0 {
		return nil, &MalformedFeedError{Reason: "agency.txt must declare at least one agency"}
	}
	agencies := make([]Agency, 0, len(rows))
	for _, row := range rows {
		// A multi-agency feed needs explicit ids to disambiguate
		// route->agency references.
		if len(rows) > 1 && row.ID == "" {
			return nil, newMissingField(fileAgency, "agency_id")
		}
		if err := requireField(fileAgency, "agency_name", row.Name); err != nil {
			return nil, err
		}
		if err := requireField(fileAgency, "agency_url", row.URL); err != nil {
			return nil, err
		}
		if err := requireField(fileAgency, "agency_timezone", row.Timezone); err != nil {
			return nil, err
		}
		agencies = append(agencies, Agency{
			ID:       row.ID,
			Name:     row.Name,
			URL:      row.URL,
			Timezone: row.Timezone,
			Language: row.Language,
			Phone:    row.Phone,
			FareURL:  row.FareURL,
			Email:    row.Email,
		})
	}
	return agencies, nil
}

func normalizeStops(rows []rawStop) ([]Stop, error) {
	stops := make([]Stop, 0, len(rows))
	for _, row := range rows {
		if err := requireField(fileStops, "stop_id", row.ID); err != nil {
			return nil, err
		}
		if err := requireField(fileStops, "stop_name", row.Name); err != nil {
			return nil, err
		}
		lat, err := floatField(fileStops, "stop_lat", row.Latitude)
		if err != nil {
			return nil, err
		}
		lon, err := floatField(fileStops, "stop_lon", row.Longitude)
		if err != nil {
			return nil, err
		}
		locationType, err := codeField(fileStops, "location_type", row.LocationType, 0, 0, 2)
		if err != nil {
			return nil, err
		}
		parentStation, err := codeField(fileStops, "parent_station", row.ParentStation, 0, 0, 1)
		if err != nil {
			return nil, err
		}
		wheelchair, err := codeField(fileStops, "wheelchair_boarding", row.WheelchairBoarding, 0, 0, 2)
		if err != nil {
			return nil, err
		}
		stops = append(stops, Stop{
			ID:          row.ID,
			Code:        row.Code,
			Name:        row.Name,
			Description: row.Description,
			Location: StopLocation{
				Type:     LocationType(locationType),
				Location: Location{Latitude: lat, Longitude: lon},
			},
			ZoneID:             row.ZoneID,
			URL:                row.URL,
			ParentStation:      ParentStation(parentStation),
			Timezone:           row.Timezone,
			WheelchairBoarding: WheelchairBoarding(wheelchair),
			LevelID:            row.LevelID,
			PlatformCode:       row.PlatformCode,
		})
	}
	return stops, nil
}

func normalizeRoutes(rows []rawRoute) ([]Route, error) {
	routes := make([]Route, 0, len(rows))
	for _, row := range rows {
		if err := requireField(fileRoutes, "route_id", row.ID); err != nil {
			return nil, err
		}
		if row.ShortName == "" && row.LongName == "" {
			return nil, newMissingField(fileRoutes, "route_short_name/route_long_name")
		}
		if row.Type == "" {
			return nil, newMissingField(fileRoutes, "route_type")
		}
		routeType, err := codeField(fileRoutes, "route_type", row.Type, 0, 0, 7)
		if err != nil {
			return nil, err
		}
		sortOrder := 0
		if row.SortOrder != "" {
			sortOrder, err = intField(fileRoutes, "route_sort_order", row.SortOrder)
			if err != nil || sortOrder < 0 {
				return nil, newFieldError(fileRoutes, "route_sort_order", row.SortOrder)
			}
		}
		routes = append(routes, Route{
			ID:       row.ID,
			AgencyID: row.AgencyID,
			Name: RouteName{
				Short: toHalfWidth(row.ShortName),
				Long:  toHalfWidth(row.LongName),
			},
			Description: toHalfWidth(row.Desc),
			Type:        RouteType(routeType),
			URL:         row.URL,
			Color:       row.Color,
			TextColor:   row.TextColor,
			SortOrder:   sortOrder,
		})
	}
	return routes, nil
}

func normalizeTrips(rows []rawTrip) ([]Trip, error) {
	trips := make([]Trip, 0, len(rows))
	for _, row := range rows {
		if err := requireField(fileTrips, "trip_id", row.ID); err != nil {
			return nil, err
		}
		if err := requireField(fileTrips, "route_id", row.RouteID); err != nil {
			return nil, err
		}
		if err := requireField(fileTrips, "service_id", row.ServiceID); err != nil {
			return nil, err
		}
		var direction *DirectionID
		if row.DirectionID != "" {
			code, err := codeField(fileTrips, "direction_id", row.DirectionID, 0, 0, 1)
			if err != nil {
				return nil, err
			}
			d := DirectionID(code)
			direction = &d
		}
		wheelchair, err := codeField(fileTrips, "wheelchair_accessible", row.WheelchairAccessible, 0, 0, 2)
		if err != nil {
			return nil, err
		}
		bikes, err := codeField(fileTrips, "bikes_allowed", row.BikesAllowed, 0, 0, 2)
		if err != nil {
			return nil, err
		}
		trips = append(trips, Trip{
			RouteID:              row.RouteID,
			ServiceID:            row.ServiceID,
			ID:                   row.ID,
			Headsign:             toHalfWidth(row.Headsign),
			ShortName:            toHalfWidth(row.ShortName),
			DirectionID:          direction,
			BlockID:              row.BlockID,
			ShapeID:              row.ShapeID,
			WheelchairAccessible: WheelchairBoarding(wheelchair),
			BikesAllowed:         BikesAllowed(bikes),
		})
	}
	return trips, nil
}

// normalizeStopTimes anchors every wall-clock value onto ref; values past
// 24:00:00 roll forward onto the following calendar day(s).
func normalizeStopTimes(rows []rawStopTime, ref time.Time) ([]StopTime, error) {
	stopTimes := make([]StopTime, 0, len(rows))
	for _, row := range rows {
		if err := requireField(fileStopTimes, "trip_id", row.TripID); err != nil {
			return nil, err
		}
		if err := requireField(fileStopTimes, "stop_id", row.StopID); err != nil {
			return nil, err
		}
		arrival, err := clockField(fileStopTimes, "arrival_time", row.ArrivalTime)
		if err != nil {
			return nil, err
		}
		departure, err := clockField(fileStopTimes, "departure_time", row.DepartureTime)
		if err != nil {
			return nil, err
		}
		sequence, err := intField(fileStopTimes, "stop_sequence", row.StopSequence)
		if err != nil {
			return nil, err
		}
		pickup, err := codeField(fileStopTimes, "pickup_type", row.PickupType, 0, 0, 3)
		if err != nil {
			return nil, err
		}
		dropOff, err := codeField(fileStopTimes, "drop_off_type", row.DropOffType, 0, 0, 3)
		if err != nil {
			return nil, err
		}
		timepoint, err := codeField(fileStopTimes, "timepoint", row.Timepoint, 1, 0, 1)
		if err != nil {
			return nil, err
		}
		distTraveled, err := optFloatField(fileStopTimes, "shape_dist_traveled", row.ShapeDistTraveled)
		if err != nil {
			return nil, err
		}
		stopTimes = append(stopTimes, StopTime{
			TripID:            row.TripID,
			Arrival:           arrival.AnchorTo(ref),
			Departure:         departure.AnchorTo(ref),
			StopID:            row.StopID,
			Sequence:          sequence,
			Headsign:          toHalfWidth(row.Headsign),
			PickupType:        PickupType(pickup),
			DropOffType:       DropOffType(dropOff),
			ShapeDistTraveled: distTraveled,
			Timepoint:         Timepoint(timepoint),
		})
	}
	return stopTimes, nil
}

func normalizeCalendars(rows []rawCalendar, loc *time.Location) ([]Calendar, error) {
	calendars := make([]Calendar, 0, len(rows))
	for _, row := range rows {
		if err := requireField(fileCalendar, "service_id", row.ServiceID); err != nil {
			return nil, err
		}
		cal := Calendar{ServiceID: row.ServiceID}
		dayFields := []struct {
			name  string
			value string
			day   time.Weekday
		}{
			{"monday", row.Monday, time.Monday},
			{"tuesday", row.Tuesday, time.Tuesday},
			{"wednesday", row.Wednesday, time.Wednesday},
			{"thursday", row.Thursday, time.Thursday},
			{"friday", row.Friday, time.Friday},
			{"saturday", row.Saturday, time.Saturday},
			{"sunday", row.Sunday, time.Sunday},
		}
		for _, f := range dayFields {
			if f.value == "" {
				return nil, newMissingField(fileCalendar, f.name)
			}
			flag, err := codeField(fileCalendar, f.name, f.value, 0, 0, 1)
			if err != nil {
				return nil, err
			}
			cal.Days[f.day] = flag == 1
		}
		var err error
		if cal.Start, err = dateField(fileCalendar, "start_date", row.StartDate, loc); err != nil {
			return nil, err
		}
		if cal.End, err = dateField(fileCalendar, "end_date", row.EndDate, loc); err != nil {
			return nil, err
		}
		if cal.End.Before(cal.Start) {
			return nil, newFieldError(fileCalendar, "end_date", row.EndDate)
		}
		calendars = append(calendars, cal)
	}
	return calendars, nil
}

func normalizeCalendarDates(rows []rawCalendarDate, loc *time.Location) ([]CalendarDate, error) {
	dates := make([]CalendarDate, 0, len(rows))
	for _, row := range rows {
		if err := requireField(fileCalendarDates, "service_id", row.ServiceID); err != nil {
			return nil, err
		}
		date, err := dateField(fileCalendarDates, "date", row.Date, loc)
		if err != nil {
			return nil, err
		}
		if row.ExceptionType == "" {
			return nil, newMissingField(fileCalendarDates, "exception_type")
		}
		exception, err := codeField(fileCalendarDates, "exception_type", row.ExceptionType, 1, 1, 2)
		if err != nil {
			return nil, err
		}
		dates = append(dates, CalendarDate{
			ServiceID:     row.ServiceID,
			Date:          date,
			ExceptionType: ExceptionType(exception),
		})
	}
	return dates, nil
}
