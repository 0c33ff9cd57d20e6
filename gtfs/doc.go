/*
Package gtfs loads a GTFS static feed into an immutable in-memory model and
answers queries about scheduled service.

This package is data-source agnostic - it accepts raw zip bytes, an io.ReaderAt
or any FeedArchive implementation and builds a validated Feed. It does NOT
handle HTTP downloads or presentation formats.

# Basic Usage

Import from raw bytes:

	// Fetch the GTFS zip from your source (HTTP, object storage, files, ...)
	zipBytes := fetchFeedFromYourSource()

	feed, err := gtfs.ImportZip(zipBytes, gtfs.ImportOptions{})
	if err != nil {
	    log.Fatal(err)
	}

	// Query the model
	ids := feed.ActiveServiceIDs(time.Now())
	itinerary, err := feed.TripItinerary("trip_123", time.Time{})

Import is all-or-nothing: a missing required table or a single invalid field
value fails the whole import with an error naming the table, the field and the
offending value. No partial model is ever returned.

# Performance: Cache the Feed

Parse the feed once at startup and keep it in memory. The Feed never mutates
after construction, so any number of goroutines may query it concurrently
without synchronization. SerializeFeed/DeserializeFeed provide a gob snapshot
for disk-based caching to avoid re-parsing on restart.

# Times

GTFS wall-clock times may exceed 24:00:00 for trips crossing midnight.
Stop times are anchored onto an absolute reference date at import
(ImportOptions.ReferenceDate, defaulting to the import moment) and re-based
onto the query date by the itinerary operations. See TimeOfDay for the
anchoring modes.
*/
package gtfs
