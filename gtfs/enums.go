package gtfs

import (
	"errors"
	"strconv"
)

// Every bounded integer code of the format is a closed enumeration with an
// explicit parse-or-fail conversion. Blank values take the field's documented
// default; non-numeric or out-of-domain values reject the whole feed.

// LocationType describes the location_type code of a stop.
type LocationType int8

const (
	LocationTypeStop     LocationType = 0
	LocationTypeStation  LocationType = 1
	LocationTypeEntrance LocationType = 2
)

// ParentStation describes the parent_station flag of a stop.
type ParentStation int8

const (
	ParentStationNone ParentStation = 0
	ParentStationSet  ParentStation = 1
)

// WheelchairBoarding describes wheelchair_boarding and
// wheelchair_accessible codes.
type WheelchairBoarding int8

const (
	WheelchairBoardingUnknown WheelchairBoarding = 0
	WheelchairBoardingAllowed WheelchairBoarding = 1
	WheelchairBoardingNone    WheelchairBoarding = 2
)

// BikesAllowed describes the bikes_allowed code of a trip.
type BikesAllowed int8

const (
	BikesAllowedUnknown BikesAllowed = 0
	BikesAllowedYes     BikesAllowed = 1
	BikesAllowedNo      BikesAllowed = 2
)

// RouteType describes the route_type code of a route.
type RouteType int8

const (
	RouteTypeTram       RouteType = 0
	RouteTypeSubway     RouteType = 1
	RouteTypeRail       RouteType = 2
	RouteTypeBus        RouteType = 3
	RouteTypeFerry      RouteType = 4
	RouteTypeCableTram  RouteType = 5
	RouteTypeAerialLift RouteType = 6
	RouteTypeFunicular  RouteType = 7
)

func (t RouteType) String() string {
	switch t {
	case RouteTypeTram:
		return "TRAM"
	case RouteTypeSubway:
		return "SUBWAY"
	case RouteTypeRail:
		return "RAIL"
	case RouteTypeBus:
		return "BUS"
	case RouteTypeFerry:
		return "FERRY"
	case RouteTypeCableTram:
		return "CABLE_TRAM"
	case RouteTypeAerialLift:
		return "AERIAL_LIFT"
	case RouteTypeFunicular:
		return "FUNICULAR"
	}
	return "UNKNOWN"
}

// DirectionID describes the direction_id code of a trip.
type DirectionID int8

const (
	DirectionOutbound DirectionID = 0
	DirectionInbound  DirectionID = 1
)

// PickupType describes the pickup_type code of a stop time.
type PickupType int8

const (
	PickupTypeRegular    PickupType = 0
	PickupTypeNone       PickupType = 1
	PickupTypePhone      PickupType = 2
	PickupTypeCoordinate PickupType = 3
)

// DropOffType describes the drop_off_type code of a stop time.
type DropOffType int8

const (
	DropOffTypeRegular    DropOffType = 0
	DropOffTypeNone       DropOffType = 1
	DropOffTypePhone      DropOffType = 2
	DropOffTypeCoordinate DropOffType = 3
)

// Timepoint describes the timepoint code of a stop time.
type Timepoint int8

const (
	TimepointApproximate Timepoint = 0
	TimepointExact       Timepoint = 1
)

// ExceptionType describes the exception_type code of a calendar date.
type ExceptionType int8

const (
	ExceptionAdded   ExceptionType = 1
	ExceptionRemoved ExceptionType = 2
)

func (t ExceptionType) String() string {
	switch t {
	case ExceptionAdded:
		return "ADDED"
	case ExceptionRemoved:
		return "REMOVED"
	}
	return "UNKNOWN"
}

// PaymentMethod describes the payment_method code of a fare attribute.
type PaymentMethod int8

const (
	PaymentOnBoard        PaymentMethod = 0
	PaymentBeforeBoarding PaymentMethod = 1
)

// TransferType describes the transfer_type code of a transfer.
type TransferType int8

const (
	TransferTypeRecommended TransferType = 0
	TransferTypeTimed       TransferType = 1
	TransferTypeMinTime     TransferType = 2
	TransferTypeNone        TransferType = 3
)

// PathwayMode describes the pathway_mode code of a pathway.
type PathwayMode int8

// Bidirectional describes the is_bidirectional code of a pathway.
type Bidirectional int8

const (
	BidirectionalNo  Bidirectional = 0
	BidirectionalYes Bidirectional = 1
)

// ExactTimes describes the exact_times code of a frequency.
type ExactTimes int8

const (
	FrequencyBased ExactTimes = 0
	ScheduleBased  ExactTimes = 1
)

// errBadCode marks a value outside its enumerated domain. Normalizers wrap it
// into a *FieldError naming the table and the field.
var errBadCode = errors.New("value outside enumerated domain")

// parseCode parses an enumerated integer field. A blank value yields def;
// a non-numeric value or one outside [lo, hi] yields errBadCode.
func parseCode(s string, def, lo, hi int) (int, error) {
	if s == "" {
		return def, nil
	}
	v, err := strconv.Atoi(s)
	if err != nil || v < lo || v > hi {
		return 0, errBadCode
	}
	return v, nil
}
