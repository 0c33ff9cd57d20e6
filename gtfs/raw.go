package gtfs

// Raw rows as decoded from the tables, one struct per recognized file. Every
// field is a string so that the normalizers can tell a blank value from a
// zero one; all typing happens in the normalizers.

type rawAgency struct {
	ID       string `csv:"agency_id"`
	Name     string `csv:"agency_name"`
	URL      string `csv:"agency_url"`
	Timezone string `csv:"agency_timezone"`
	Language string `csv:"agency_lang"`
	Phone    string `csv:"agency_phone"`
	FareURL  string `csv:"agency_fare_url"`
	Email    string `csv:"agency_email"`
}

type rawStop struct {
	ID                 string `csv:"stop_id"`
	Code               string `csv:"stop_code"`
	Name               string `csv:"stop_name"`
	Description        string `csv:"stop_desc"`
	Latitude           string `csv:"stop_lat"`
	Longitude          string `csv:"stop_lon"`
	ZoneID             string `csv:"zone_id"`
	URL                string `csv:"stop_url"`
	LocationType       string `csv:"location_type"`
	ParentStation      string `csv:"parent_station"`
	Timezone           string `csv:"stop_timezone"`
	WheelchairBoarding string `csv:"wheelchair_boarding"`
	LevelID            string `csv:"level_id"`
	PlatformCode       string `csv:"platform_code"`
}

type rawRoute struct {
	ID        string `csv:"route_id"`
	AgencyID  string `csv:"agency_id"`
	ShortName string `csv:"route_short_name"`
	LongName  string `csv:"route_long_name"`
	Desc      string `csv:"route_desc"`
	Type      string `csv:"route_type"`
	URL       string `csv:"route_url"`
	Color     string `csv:"route_color"`
	TextColor string `csv:"route_text_color"`
	SortOrder string `csv:"route_sort_order"`
}

type rawTrip struct {
	RouteID              string `csv:"route_id"`
	ServiceID            string `csv:"service_id"`
	ID                   string `csv:"trip_id"`
	Headsign             string `csv:"trip_headsign"`
	ShortName            string `csv:"trip_short_name"`
	DirectionID          string `csv:"direction_id"`
	BlockID              string `csv:"block_id"`
	ShapeID              string `csv:"shape_id"`
	WheelchairAccessible string `csv:"wheelchair_accessible"`
	BikesAllowed         string `csv:"bikes_allowed"`
}

type rawStopTime struct {
	TripID            string `csv:"trip_id"`
	ArrivalTime       string `csv:"arrival_time"`
	DepartureTime     string `csv:"departure_time"`
	StopID            string `csv:"stop_id"`
	StopSequence      string `csv:"stop_sequence"`
	Headsign          string `csv:"stop_headsign"`
	PickupType        string `csv:"pickup_type"`
	DropOffType       string `csv:"drop_off_type"`
	ShapeDistTraveled string `csv:"shape_dist_traveled"`
	Timepoint         string `csv:"timepoint"`
}

type rawCalendar struct {
	ServiceID string `csv:"service_id"`
	Monday    string `csv:"monday"`
	Tuesday   string `csv:"tuesday"`
	Wednesday string `csv:"wednesday"`
	Thursday  string `csv:"thursday"`
	Friday    string `csv:"friday"`
	Saturday  string `csv:"saturday"`
	Sunday    string `csv:"sunday"`
	StartDate string `csv:"start_date"`
	EndDate   string `csv:"end_date"`
}

type rawCalendarDate struct {
	ServiceID     string `csv:"service_id"`
	Date          string `csv:"date"`
	ExceptionType string `csv:"exception_type"`
}

type rawFareAttribute struct {
	FareID           string `csv:"fare_id"`
	Price            string `csv:"price"`
	CurrencyType     string `csv:"currency_type"`
	PaymentMethod    string `csv:"payment_method"`
	Transfers        string `csv:"transfers"`
	AgencyID         string `csv:"agency_id"`
	TransferDuration string `csv:"transfer_duration"`
}

type rawFareRule struct {
	FareID        string `csv:"fare_id"`
	RouteID       string `csv:"route_id"`
	OriginID      string `csv:"origin_id"`
	DestinationID string `csv:"destination_id"`
	ContainsID    string `csv:"contains_id"`
}

type rawShapePoint struct {
	ShapeID      string `csv:"shape_id"`
	Latitude     string `csv:"shape_pt_lat"`
	Longitude    string `csv:"shape_pt_lon"`
	Sequence     string `csv:"shape_pt_sequence"`
	DistTraveled string `csv:"shape_dist_traveled"`
}

type rawFrequency struct {
	TripID      string `csv:"trip_id"`
	StartTime   string `csv:"start_time"`
	EndTime     string `csv:"end_time"`
	HeadwaySecs string `csv:"headway_secs"`
	ExactTimes  string `csv:"exact_times"`
}

type rawTransfer struct {
	FromStopID      string `csv:"from_stop_id"`
	ToStopID        string `csv:"to_stop_id"`
	TransferType    string `csv:"transfer_type"`
	MinTransferTime string `csv:"min_transfer_time"`
}

type rawPathway struct {
	ID                   string `csv:"pathway_id"`
	FromStopID           string `csv:"from_stop_id"`
	ToStopID             string `csv:"to_stop_id"`
	Mode                 string `csv:"pathway_mode"`
	IsBidirectional      string `csv:"is_bidirectional"`
	Length               string `csv:"length"`
	TraversalTime        string `csv:"traversal_time"`
	StairCount           string `csv:"stair_count"`
	MaxSlope             string `csv:"max_slope"`
	MinWidth             string `csv:"min_width"`
	SignpostedAs         string `csv:"signposted_as"`
	ReversedSignpostedAs string `csv:"reversed_signposted_as"`
}

type rawLevel struct {
	ID    string `csv:"level_id"`
	Index string `csv:"level_index"`
	Name  string `csv:"level_name"`
}

type rawFeedInfo struct {
	PublisherName string `csv:"feed_publisher_name"`
	PublisherURL  string `csv:"feed_publisher_url"`
	Language      string `csv:"feed_lang"`
	StartDate     string `csv:"feed_start_date"`
	EndDate       string `csv:"feed_end_date"`
	Version       string `csv:"feed_version"`
	ContactEmail  string `csv:"feed_contact_email"`
	ContactURL    string `csv:"feed_contact_url"`
}

type rawTranslation struct {
	ID          string `csv:"trans_id"`
	Language    string `csv:"lang"`
	Translation string `csv:"translation"`
}
