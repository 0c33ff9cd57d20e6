package gtfs

import "time"

// Location is a geographical coordinate.
type Location struct {
	Latitude  float64 `json:"lat"`
	Longitude float64 `json:"lon"`
}

// Agency corresponds to a row in agency.txt. ID is blank only when the feed
// declares a single agency; a multi-agency feed must carry explicit ids so
// that route->agency references stay unambiguous.
type Agency struct {
	ID       string
	Name     string
	URL      string
	Timezone string
	Language string
	Phone    string
	FareURL  string
	Email    string
}

// StopLocation is a stop's coordinate together with its location_type code.
type StopLocation struct {
	Type LocationType
	Location
}

// Stop corresponds to a row in stops.txt.
type Stop struct {
	ID                 string
	Code               string
	Name               string
	Description        string
	Location           StopLocation
	ZoneID             string
	URL                string
	ParentStation      ParentStation
	Timezone           string
	WheelchairBoarding WheelchairBoarding
	LevelID            string
	PlatformCode       string
}

// RouteName holds the short and/or long name of a route. The normalizer
// guarantees at least one of the two is set.
type RouteName struct {
	Short string
	Long  string
}

// Display returns the short name, falling back to the long name.
func (n RouteName) Display() string {
	if n.Short != "" {
		return n.Short
	}
	return n.Long
}

// Route corresponds to a row in routes.txt.
type Route struct {
	ID          string
	AgencyID    string
	Name        RouteName
	Description string
	Type        RouteType
	URL         string
	Color       string
	TextColor   string
	SortOrder   int
}

// Trip corresponds to a row in trips.txt. DirectionID is nil when the feed
// leaves direction_id blank.
type Trip struct {
	RouteID              string
	ServiceID            string
	ID                   string
	Headsign             string
	ShortName            string
	DirectionID          *DirectionID
	BlockID              string
	ShapeID              string
	WheelchairAccessible WheelchairBoarding
	BikesAllowed         BikesAllowed
}

// StopTime corresponds to a row in stop_times.txt. Arrival and Departure are
// absolute timestamps anchored onto the feed's reference date at import; a
// raw value past 24:00:00 has already rolled forward onto the following day.
type StopTime struct {
	TripID            string
	Arrival           time.Time
	Departure         time.Time
	StopID            string
	Sequence          int
	Headsign          string
	PickupType        PickupType
	DropOffType       DropOffType
	ShapeDistTraveled *float64
	Timepoint         Timepoint
}

// Calendar corresponds to a row in calendar.txt. Days is indexed by
// time.Weekday, so Days[time.Sunday] is the sunday flag.
type Calendar struct {
	ServiceID string
	Days      [7]bool
	Start     time.Time
	End       time.Time
}

// RunsOn reports whether the weekly pattern includes the given weekday.
func (c Calendar) RunsOn(day time.Weekday) bool { return c.Days[day] }

// CalendarDate corresponds to a row in calendar_dates.txt and overrides a
// service's weekly pattern for a single date.
type CalendarDate struct {
	ServiceID     string
	Date          time.Time
	ExceptionType ExceptionType
}

// FareAttribute corresponds to a row in fare_attributes.txt. Transfers is nil
// when the field is blank, meaning unlimited transfers are permitted.
type FareAttribute struct {
	FareID           string
	Price            float64
	CurrencyType     string
	PaymentMethod    PaymentMethod
	Transfers        *int
	AgencyID         string
	TransferDuration *int
}

// FareRule corresponds to a row in fare_rules.txt.
type FareRule struct {
	FareID        string
	RouteID       string
	OriginID      string
	DestinationID string
	ContainsID    string
}

// ShapePoint is a single point of a shape polyline. Points for one shape id
// are always held in ascending sequence order.
type ShapePoint struct {
	ShapeID      string
	Location     Location
	Sequence     int
	DistTraveled *float64
}

// Frequency corresponds to a row in frequencies.txt. Start and End are
// wall-clock times, not anchored timestamps.
type Frequency struct {
	TripID      string
	Start       TimeOfDay
	End         TimeOfDay
	HeadwaySecs int
	ExactTimes  ExactTimes
}

// Transfer corresponds to a row in transfers.txt. MinTransferTime is non-nil
// exactly when Type is TransferTypeMinTime.
type Transfer struct {
	FromStopID      string
	ToStopID        string
	Type            TransferType
	MinTransferTime *int
}

// Pathway corresponds to a row in pathways.txt.
type Pathway struct {
	ID                   string
	FromStopID           string
	ToStopID             string
	Mode                 PathwayMode
	IsBidirectional      Bidirectional
	Length               *float64
	TraversalTime        *int
	StairCount           *int
	MaxSlope             *float64
	MinWidth             *float64
	SignpostedAs         string
	ReversedSignpostedAs string
}

// Level corresponds to a row in levels.txt.
type Level struct {
	ID    string
	Index float64
	Name  string
}

// FeedInfo corresponds to a row in feed_info.txt. Start and End are nil when
// the feed omits the date range.
type FeedInfo struct {
	PublisherName string
	PublisherURL  string
	Language      string
	Start         *time.Time
	End           *time.Time
	Version       string
	ContactEmail  string
	ContactURL    string
}

// Translation maps a language code to the translated text of one record.
type Translation map[string]string

// Translations maps a record id to its per-language translations.
type Translations map[string]Translation
