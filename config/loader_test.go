package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	return path
}

func TestLoadAppConfig(t *testing.T) {
	path := writeConfig(t, `
feeds:
  - name: sofia
    path: testdata/sofia.zip
    timezone: Europe/Sofia
    referenceDate: 2026-08-03
  - name: tokyo
    url: https://feeds.example/tokyo.zip
    timezone: Asia/Tokyo
log:
  level: debug
`)
	require.NoError(t, LoadAppConfig(path))
	assert.Len(t, Config.Feeds, 2)
	assert.Equal(t, "debug", Config.Log.Level)

	feed, err := SelectFeed("tokyo")
	require.NoError(t, err)
	assert.Equal(t, "https://feeds.example/tokyo.zip", feed.URL)

	// No name selects the first feed.
	feed, err = SelectFeed("")
	require.NoError(t, err)
	assert.Equal(t, "sofia", feed.Name)

	_, err = SelectFeed("missing")
	assert.Error(t, err)
}

func TestLoadAppConfigRejectsBadValues(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{
			name: "feed without name",
			body: "feeds:\n  - path: testdata/sofia.zip\n",
		},
		{
			name: "malformed url",
			body: "feeds:\n  - name: x\n    url: not-a-url\n",
		},
		{
			name: "malformed reference date",
			body: "feeds:\n  - name: x\n    path: a.zip\n    referenceDate: 03-08-2026\n",
		},
		{
			name: "unknown log level",
			body: "log:\n  level: loud\n",
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Error(t, LoadAppConfig(writeConfig(t, tc.body)))
		})
	}
}

func TestFeedConfigReference(t *testing.T) {
	feed := FeedConfig{Name: "sofia", Timezone: "Europe/Sofia", ReferenceDate: "2026-08-03"}
	ref, err := feed.Reference()
	require.NoError(t, err)
	assert.Equal(t, 2026, ref.Year())
	assert.Equal(t, time.August, ref.Month())
	assert.Equal(t, 3, ref.Day())
	assert.Equal(t, "Europe/Sofia", ref.Location().String())

	// Blank timezone falls back to UTC.
	loc, err := FeedConfig{}.Location()
	require.NoError(t, err)
	assert.Equal(t, time.UTC, loc)

	_, err = FeedConfig{Timezone: "Mars/Olympus"}.Location()
	assert.Error(t, err)
}
