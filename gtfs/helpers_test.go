package gtfs

import (
	"archive/zip"
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// Monday 2026-08-03, inside the fixture calendar's range.
var testRefDate = time.Date(2026, time.August, 3, 0, 0, 0, 0, time.UTC)

// buildZip assembles an in-memory GTFS bundle. Missing required tables get a
// minimal valid default so tests only spell out what they exercise.
func buildZip(t *testing.T, files map[string][]string) []byte {
	t.Helper()

	if files["agency.txt"] == nil {
		files["agency.txt"] = []string{
			"agency_id,agency_name,agency_url,agency_timezone",
			"A1,Metro,http://metro.example,UTC",
		}
	}
	if files["stops.txt"] == nil {
		files["stops.txt"] = []string{
			"stop_id,stop_name,stop_lat,stop_lon",
			"S1,First,1.0,2.0",
			"S2,Second,1.5,2.5",
		}
	}
	if files["routes.txt"] == nil {
		files["routes.txt"] = []string{
			"route_id,agency_id,route_short_name,route_type",
			"R1,A1,10,3",
		}
	}
	if files["trips.txt"] == nil {
		files["trips.txt"] = []string{
			"route_id,service_id,trip_id,trip_headsign,shape_id",
			"R1,WK,T1,Downtown,SH1",
		}
	}
	if files["stop_times.txt"] == nil {
		files["stop_times.txt"] = []string{
			"trip_id,arrival_time,departure_time,stop_id,stop_sequence",
			"T1,08:00:00,08:00:00,S1,1",
			"T1,08:05:00,08:10:00,S2,2",
		}
	}
	if files["calendar.txt"] == nil && files["calendar_dates.txt"] == nil {
		files["calendar.txt"] = []string{
			"service_id,monday,tuesday,wednesday,thursday,friday,saturday,sunday,start_date,end_date",
			"WK,1,1,1,1,1,0,0,20260801,20260831",
		}
	}

	buf := &bytes.Buffer{}
	w := zip.NewWriter(buf)
	for name, content := range files {
		f, err := w.Create(name)
		require.NoError(t, err)
		_, err = f.Write([]byte(strings.Join(content, "\n")))
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())
	return buf.Bytes()
}

// importFixture imports a bundle built by buildZip, anchored on testRefDate.
func importFixture(t *testing.T, files map[string][]string) *Feed {
	t.Helper()
	feed, err := ImportZip(buildZip(t, files), ImportOptions{ReferenceDate: testRefDate})
	require.NoError(t, err)
	return feed
}

// importErr imports a bundle and returns the expected failure.
func importErr(t *testing.T, files map[string][]string) error {
	t.Helper()
	_, err := ImportZip(buildZip(t, files), ImportOptions{ReferenceDate: testRefDate})
	require.Error(t, err)
	return err
}

// utc is shorthand for a UTC timestamp in assertions.
func utc(year int, month time.Month, day, hour, min, sec int) time.Time {
	return time.Date(year, month, day, hour, min, sec, 0, time.UTC)
}
