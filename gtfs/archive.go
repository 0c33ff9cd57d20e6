package gtfs

import (
	"archive/zip"
	"bytes"
	"fmt"
	"io"
	"strings"
)

// Recognized table names. Entries with any other name are ignored.
const (
	fileAgency         = "agency.txt"
	fileStops          = "stops.txt"
	fileRoutes         = "routes.txt"
	fileTrips          = "trips.txt"
	fileStopTimes      = "stop_times.txt"
	fileCalendar       = "calendar.txt"
	fileCalendarDates  = "calendar_dates.txt"
	fileFareAttributes = "fare_attributes.txt"
	fileFareRules      = "fare_rules.txt"
	fileShapes         = "shapes.txt"
	fileFrequencies    = "frequencies.txt"
	fileTransfers      = "transfers.txt"
	filePathways       = "pathways.txt"
	fileLevels         = "levels.txt"
	fileFeedInfo       = "feed_info.txt"
	fileTranslations   = "translations.txt"
)

// requiredFiles must all be present before any row is decoded.
var requiredFiles = []string{fileAgency, fileStops, fileRoutes, fileTrips, fileStopTimes}

// FeedArchive supplies named, already-decompressed table entries from a GTFS
// bundle. Implementations only need to hand out byte streams; decoding and
// validation stay in this package.
type FeedArchive interface {
	// EntryNames lists every entry of the bundle.
	EntryNames() []string
	// Open returns the decompressed contents of one entry.
	Open(name string) (io.ReadCloser, error)
}

// ZipArchive is a FeedArchive over a zip bundle, the format feeds are
// published in.
type ZipArchive struct {
	reader *zip.Reader
}

// OpenZipBytes opens a zip bundle held in memory.
func OpenZipBytes(data []byte) (*ZipArchive, error) {
	reader, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("open feed archive: %w", err)
	}
	return &ZipArchive{reader: reader}, nil
}

// OpenZipReader opens a zip bundle from any io.ReaderAt.
func OpenZipReader(r io.ReaderAt, size int64) (*ZipArchive, error) {
	reader, err := zip.NewReader(r, size)
	if err != nil {
		return nil, fmt.Errorf("open feed archive: %w", err)
	}
	return &ZipArchive{reader: reader}, nil
}

func (a *ZipArchive) EntryNames() []string {
	names := make([]string, 0, len(a.reader.File))
	for _, f := range a.reader.File {
		names = append(names, f.Name)
	}
	return names
}

func (a *ZipArchive) Open(name string) (io.ReadCloser, error) {
	for _, f := range a.reader.File {
		if strings.EqualFold(f.Name, name) {
			return f.Open()
		}
	}
	return nil, fmt.Errorf("no entry %s in feed archive", name)
}
