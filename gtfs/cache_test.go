package gtfs

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFeedSnapshotRoundTrip(t *testing.T) {
	feed := importFixture(t, map[string][]string{
		"shapes.txt": {
			"shape_id,shape_pt_lat,shape_pt_lon,shape_pt_sequence",
			"SH1,1.0,2.0,1",
			"SH1,1.5,2.5,2",
		},
		"translations.txt": {
			"trans_id,lang,translation",
			"Downtown,bg,Център",
		},
	})

	data, err := SerializeFeed(feed)
	require.NoError(t, err)

	restored, err := DeserializeFeed(data)
	require.NoError(t, err)

	assert.Equal(t, feed.ReferenceDate, restored.ReferenceDate)
	assert.Equal(t, feed.StopIDs(), restored.StopIDs())
	tr, err := restored.FindTranslation("Downtown")
	require.NoError(t, err)
	assert.Equal(t, "Център", tr["bg"])

	// The derived indexes are rebuilt, so queries behave identically.
	want, err := feed.TripItinerary("T1", testRefDate)
	require.NoError(t, err)
	got, err := restored.TripItinerary("T1", testRefDate)
	require.NoError(t, err)
	assert.Equal(t, want, got)

	line, err := restored.GeoRoute("R1")
	require.NoError(t, err)
	assert.Len(t, line.Coordinates, 2)
}

func TestFeedSnapshotFile(t *testing.T) {
	feed := importFixture(t, map[string][]string{})
	path := filepath.Join(t.TempDir(), "feed.gob")

	require.NoError(t, SerializeFeedToFile(feed, path))

	restored, err := DeserializeFeedFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, feed.TripIDs(), restored.TripIDs())
}

func TestDeserializeFeedRejectsGarbage(t *testing.T) {
	_, err := DeserializeFeed([]byte("not a gob stream"))
	assert.Error(t, err)
}
