package gtfs

import (
	"sort"
	"time"
)

// FindStop returns the stop with the given id.
func (f *Feed) FindStop(id string) (Stop, error) {
	stop, ok := f.stopsByID[id]
	if !ok {
		return Stop{}, notFound("stop", id)
	}
	return *stop, nil
}

// FindRoute returns the route with the given id.
func (f *Feed) FindRoute(id string) (Route, error) {
	route, ok := f.routesByID[id]
	if !ok {
		return Route{}, notFound("route", id)
	}
	return *route, nil
}

// FindTrip returns the trip with the given id.
func (f *Feed) FindTrip(id string) (Trip, error) {
	trip, ok := f.tripsByID[id]
	if !ok {
		return Trip{}, notFound("trip", id)
	}
	return *trip, nil
}

// FindTripsByRoute returns every trip of a route, in table order.
func (f *Feed) FindTripsByRoute(routeID string) ([]Trip, error) {
	if _, ok := f.routesByID[routeID]; !ok {
		return nil, notFound("route", routeID)
	}
	trips := make([]Trip, 0, len(f.tripsByRoute[routeID]))
	for _, trip := range f.tripsByRoute[routeID] {
		trips = append(trips, *trip)
	}
	return trips, nil
}

// FindTranslation returns the per-language translations recorded for a value.
func (f *Feed) FindTranslation(id string) (Translation, error) {
	tr, ok := f.Translations[id]
	if !ok {
		return nil, notFound("translation", id)
	}
	return tr, nil
}

// RouteStop is one stop call of an itinerary. Headsign is the stop time's own
// headsign, falling back to the trip's.
type RouteStop struct {
	Stop      Stop
	Sequence  int
	Arrival   time.Time
	Departure time.Time
	Headsign  string
	Pickup    PickupType
	DropOff   DropOffType
}

// Itinerary is a trip with its stop calls in sequence order, anchored onto a
// concrete service date.
type Itinerary struct {
	Trip  Trip
	Stops []RouteStop
}

// rebase moves an anchored timestamp onto the service date that starts at
// standard, keeping its wall clock and its day offset from the feed's
// reference date. Rebasing onto the reference date itself reproduces the
// stored timestamp.
func (f *Feed) rebase(t, standard time.Time) time.Time {
	offset := daysBetween(f.ReferenceDate, t)
	base := midnightOf(standard).AddDate(0, 0, offset)
	return ClockOf(t).AnchorTo(base)
}

func (f *Feed) itineraryOf(trip *Trip, standard time.Time) (*Itinerary, error) {
	times := f.stopTimesByTrip[trip.ID]
	if len(times) == 0 {
		return nil, notFound("stop times for trip", trip.ID)
	}
	it := &Itinerary{Trip: *trip, Stops: make([]RouteStop, 0, len(times))}
	for _, st := range times {
		stop, ok := f.stopsByID[st.StopID]
		if !ok {
			return nil, notFound("stop", st.StopID)
		}
		headsign := st.Headsign
		if headsign == "" {
			headsign = trip.Headsign
		}
		it.Stops = append(it.Stops, RouteStop{
			Stop:      *stop,
			Sequence:  st.Sequence,
			Arrival:   f.rebase(st.Arrival, standard),
			Departure: f.rebase(st.Departure, standard),
			Headsign:  headsign,
			Pickup:    st.PickupType,
			DropOff:   st.DropOffType,
		})
	}
	return it, nil
}

// TripItinerary returns one trip's stop calls anchored onto the service date
// that starts at standard. A zero standard keeps the stored timestamps, which
// sit on the feed's reference date.
func (f *Feed) TripItinerary(tripID string, standard time.Time) (*Itinerary, error) {
	trip, ok := f.tripsByID[tripID]
	if !ok {
		return nil, notFound("trip", tripID)
	}
	if standard.IsZero() {
		standard = f.ReferenceDate
	}
	return f.itineraryOf(trip, standard)
}

// RouteItineraries returns the itineraries of a route's trips that run on the
// given service date, each anchored onto that date and ordered by first
// arrival.
//
// With dayOnly set, trips are selected through the service calendar: a trip
// is included when its service id is active on date. Without it, trips are
// matched by the stored calendar date of their first stop call, which is only
// meaningful when date is the feed's reference date.
func (f *Feed) RouteItineraries(routeID string, date time.Time, dayOnly bool) ([]Itinerary, error) {
	if _, ok := f.routesByID[routeID]; !ok {
		return nil, notFound("route", routeID)
	}

	var wanted map[string]bool
	if dayOnly {
		wanted = make(map[string]bool)
		for _, id := range f.ActiveServiceIDs(date) {
			wanted[id] = true
		}
	}

	var itineraries []Itinerary
	for _, trip := range f.tripsByRoute[routeID] {
		// Every trip of the route must have stop calls, qualifying or not.
		times := f.stopTimesByTrip[trip.ID]
		if len(times) == 0 {
			return nil, notFound("stop times for trip", trip.ID)
		}
		if dayOnly {
			if !wanted[trip.ServiceID] {
				continue
			}
		} else if !sameDate(times[0].Arrival, date) {
			continue
		}
		it, err := f.itineraryOf(trip, date)
		if err != nil {
			return nil, err
		}
		itineraries = append(itineraries, *it)
	}
	if len(itineraries) == 0 {
		return nil, notFound("itineraries for route", routeID)
	}

	sort.Slice(itineraries, func(i, j int) bool {
		a, b := itineraries[i], itineraries[j]
		if !a.Stops[0].Arrival.Equal(b.Stops[0].Arrival) {
			return a.Stops[0].Arrival.Before(b.Stops[0].Arrival)
		}
		return a.Trip.ID < b.Trip.ID
	})
	return itineraries, nil
}
