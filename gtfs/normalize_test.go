package gtfs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func requireFieldError(t *testing.T, err error, file, field string) *FieldError {
	t.Helper()
	var fe *FieldError
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, file, fe.File)
	assert.Equal(t, field, fe.Field)
	return fe
}

func TestRouteWithoutAnyNameRejected(t *testing.T) {
	err := importErr(t, map[string][]string{
		"routes.txt": {
			"route_id,agency_id,route_short_name,route_long_name,route_type",
			"R1,A1,,,3",
		},
	})
	fe := requireFieldError(t, err, "routes.txt", "route_short_name/route_long_name")
	assert.True(t, fe.Missing)
}

func TestEnumValuesOutsideDomainRejected(t *testing.T) {
	tests := []struct {
		name  string
		files map[string][]string
		file  string
		field string
		value string
	}{
		{
			name: "location_type",
			files: map[string][]string{
				"stops.txt": {
					"stop_id,stop_name,stop_lat,stop_lon,location_type",
					"S1,First,1.0,2.0,9",
				},
			},
			file: "stops.txt", field: "location_type", value: "9",
		},
		{
			name: "route_type",
			files: map[string][]string{
				"routes.txt": {
					"route_id,route_short_name,route_type",
					"R1,10,12",
				},
			},
			file: "routes.txt", field: "route_type", value: "12",
		},
		{
			name: "exception_type",
			files: map[string][]string{
				"calendar_dates.txt": {
					"service_id,date,exception_type",
					"WK,20260803,3",
				},
			},
			file: "calendar_dates.txt", field: "exception_type", value: "3",
		},
		{
			name: "non-numeric direction_id",
			files: map[string][]string{
				"trips.txt": {
					"route_id,service_id,trip_id,direction_id",
					"R1,WK,T1,north",
				},
			},
			file: "trips.txt", field: "direction_id", value: "north",
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := importErr(t, tc.files)
			fe := requireFieldError(t, err, tc.file, tc.field)
			assert.Equal(t, tc.value, fe.Value)
		})
	}
}

func TestBlankEnumFieldsTakeDefaults(t *testing.T) {
	feed := importFixture(t, map[string][]string{
		"trips.txt": {
			"route_id,service_id,trip_id,direction_id,wheelchair_accessible,bikes_allowed",
			"R1,WK,T1,,,",
		},
	})
	trip := feed.Trips[0]
	assert.Nil(t, trip.DirectionID)
	assert.Equal(t, WheelchairBoardingUnknown, trip.WheelchairAccessible)
	assert.Equal(t, BikesAllowedUnknown, trip.BikesAllowed)

	// timepoint defaults to exact when the column is absent.
	assert.Equal(t, TimepointExact, feed.StopTimes[0].Timepoint)
}

func TestStopRequiresCoordinates(t *testing.T) {
	err := importErr(t, map[string][]string{
		"stops.txt": {
			"stop_id,stop_name,stop_lat,stop_lon",
			"S1,First,,2.0",
		},
	})
	fe := requireFieldError(t, err, "stops.txt", "stop_lat")
	assert.True(t, fe.Missing)
}

func TestCalendarEndBeforeStartRejected(t *testing.T) {
	err := importErr(t, map[string][]string{
		"calendar.txt": {
			"service_id,monday,tuesday,wednesday,thursday,friday,saturday,sunday,start_date,end_date",
			"WK,1,1,1,1,1,0,0,20260831,20260801",
		},
	})
	requireFieldError(t, err, "calendar.txt", "end_date")
}

func TestFareAttributeCurrencyValidated(t *testing.T) {
	err := importErr(t, map[string][]string{
		"fare_attributes.txt": {
			"fare_id,price,currency_type,payment_method",
			"F1,2.40,ZZZ,0",
		},
	})
	fe := requireFieldError(t, err, "fare_attributes.txt", "currency_type")
	assert.Equal(t, "ZZZ", fe.Value)
}

func TestFareAttributeAccepted(t *testing.T) {
	feed := importFixture(t, map[string][]string{
		"fare_attributes.txt": {
			"fare_id,price,currency_type,payment_method,transfers",
			"F1,2.40,EUR,1,0",
		},
	})
	require.Len(t, feed.FareAttributes, 1)
	fare := feed.FareAttributes[0]
	assert.Equal(t, 2.40, fare.Price)
	assert.Equal(t, PaymentBeforeBoarding, fare.PaymentMethod)
	require.NotNil(t, fare.Transfers)
	assert.Equal(t, 0, *fare.Transfers)
}

func TestMinTimeTransferRequiresDuration(t *testing.T) {
	err := importErr(t, map[string][]string{
		"transfers.txt": {
			"from_stop_id,to_stop_id,transfer_type,min_transfer_time",
			"S1,S2,2,",
		},
	})
	fe := requireFieldError(t, err, "transfers.txt", "min_transfer_time")
	assert.True(t, fe.Missing)
}

func TestTransferDurationOnlyKeptForMinTimeType(t *testing.T) {
	feed := importFixture(t, map[string][]string{
		"transfers.txt": {
			"from_stop_id,to_stop_id,transfer_type,min_transfer_time",
			"S1,S2,2,180",
			"S2,S1,0,",
		},
	})
	require.Len(t, feed.Transfers, 2)
	require.NotNil(t, feed.Transfers[0].MinTransferTime)
	assert.Equal(t, 180, *feed.Transfers[0].MinTransferTime)
	assert.Nil(t, feed.Transfers[1].MinTransferTime)
}

func TestFeedInfoDateRangeValidated(t *testing.T) {
	err := importErr(t, map[string][]string{
		"feed_info.txt": {
			"feed_publisher_name,feed_publisher_url,feed_lang,feed_start_date,feed_end_date",
			"Metro,http://metro.example,en,20260831,20260801",
		},
	})
	requireFieldError(t, err, "feed_info.txt", "feed_end_date")
}

func TestFullWidthTextNormalized(t *testing.T) {
	feed := importFixture(t, map[string][]string{
		"routes.txt": {
			"route_id,agency_id,route_short_name,route_long_name,route_type",
			"R1,A1,ＡＢＣ１２３,Ｌｏｏｐ（Ｅａｓｔ）,3",
		},
		"trips.txt": {
			"route_id,service_id,trip_id,trip_headsign",
			"R1,WK,T1,Ｃｅｎｔｒａｌ",
		},
	})
	route := feed.Routes[0]
	assert.Equal(t, "ABC123", route.Name.Short)
	assert.Equal(t, "Loop (East)", route.Name.Long)
	assert.Equal(t, "Central", feed.Trips[0].Headsign)
}

func TestToHalfWidthSpacing(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"", ""},
		{"plain", "plain"},
		{"Ａ１", "A1"},
		{"ターミナル（北）", "ターミナル (北)"},
		{"Gate(2)", "Gate (2)"},
		{"(2)East", "(2) East"},
		{"already (spaced)", "already (spaced)"},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, toHalfWidth(tc.in), "input %q", tc.in)
	}
}

func TestTranslationsLoaded(t *testing.T) {
	feed := importFixture(t, map[string][]string{
		"translations.txt": {
			"trans_id,lang,translation",
			"Downtown,bg,Център",
			"Downtown,fr,Centre-ville",
		},
	})
	tr, err := feed.FindTranslation("Downtown")
	require.NoError(t, err)
	assert.Equal(t, "Център", tr["bg"])
	assert.Equal(t, "Centre-ville", tr["fr"])

	_, err = feed.FindTranslation("nowhere")
	assert.True(t, IsNotFound(err))
}

func TestValidCurrencyCode(t *testing.T) {
	assert.True(t, ValidCurrencyCode("EUR"))
	assert.True(t, ValidCurrencyCode("JPY"))
	assert.False(t, ValidCurrencyCode("eur"))
	assert.False(t, ValidCurrencyCode(""))
	assert.False(t, ValidCurrencyCode("ZZZ"))
}
