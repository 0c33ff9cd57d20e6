package gtfs

import (
	"bytes"
	"encoding/gob"
	"fmt"
	"io"
	"os"
)

// SerializeFeed encodes a Feed to bytes using gob encoding. This is useful
// for disk-based caching to avoid re-importing a GTFS bundle.
//
// Example:
//
//	feed, _ := gtfs.ImportZip(zipBytes, opts)
//	data, err := gtfs.SerializeFeed(feed)
//	if err != nil {
//	    // handle error
//	}
//	os.WriteFile("/path/to/cache/feed.gob", data, 0644)
//
// Thread safety: safe for concurrent use once the feed is fully constructed.
func SerializeFeed(feed *Feed) ([]byte, error) {
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(feed); err != nil {
		return nil, fmt.Errorf("failed to encode feed: %w", err)
	}
	return buf.Bytes(), nil
}

// DeserializeFeed decodes a Feed from bytes produced by SerializeFeed. The
// derived lookup indexes are rebuilt, so the result behaves exactly like a
// freshly imported feed.
//
// Example:
//
//	data, _ := os.ReadFile("/path/to/cache/feed.gob")
//	feed, err := gtfs.DeserializeFeed(data)
//	if err != nil {
//	    // Cache is corrupted or invalid, re-import from the bundle
//	    feed, _ = gtfs.ImportZip(freshZipBytes, opts)
//	}
func DeserializeFeed(data []byte) (*Feed, error) {
	return DeserializeFeedFromReader(bytes.NewReader(data))
}

// SerializeFeedToFile writes a Feed to a file using gob encoding.
func SerializeFeedToFile(feed *Feed, filepath string) error {
	data, err := SerializeFeed(feed)
	if err != nil {
		return err
	}
	return os.WriteFile(filepath, data, 0644)
}

// DeserializeFeedFromFile reads a Feed from a file written by
// SerializeFeedToFile.
func DeserializeFeedFromFile(filepath string) (*Feed, error) {
	data, err := os.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("failed to read cache file: %w", err)
	}
	return DeserializeFeed(data)
}

// SerializeFeedToWriter writes a Feed to an io.Writer using gob encoding,
// for custom storage backends (S3, MinIO, etc.).
func SerializeFeedToWriter(feed *Feed, w io.Writer) error {
	if err := gob.NewEncoder(w).Encode(feed); err != nil {
		return fmt.Errorf("failed to encode feed: %w", err)
	}
	return nil
}

// DeserializeFeedFromReader reads a Feed from an io.Reader, for custom
// storage backends.
func DeserializeFeedFromReader(r io.Reader) (*Feed, error) {
	var feed Feed
	if err := gob.NewDecoder(r).Decode(&feed); err != nil {
		return nil, fmt.Errorf("failed to decode feed: %w", err)
	}
	// Gob only carries exported fields; the lookup maps are derived state.
	feed.buildIndexes()
	return &feed, nil
}
