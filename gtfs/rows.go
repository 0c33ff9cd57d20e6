package gtfs

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"

	"github.com/gocarina/gocsv"
)

func init() {
	// Tolerate rows with missing trailing columns, which real feeds are full
	// of. Validation of individual values happens in the normalizers.
	gocsv.SetCSVReader(func(in io.Reader) gocsv.CSVReader {
		r := csv.NewReader(in)
		r.FieldsPerRecord = -1
		return r
	})
}

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// decodeTable reads one table entry and decodes its rows. The byte-order mark
// some publishers prepend is stripped before the header row is read.
func decodeTable[T any](archive FeedArchive, name string) ([]T, error) {
	entry, err := archive.Open(name)
	if err != nil {
		return nil, err
	}
	defer entry.Close()

	data, err := io.ReadAll(entry)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", name, err)
	}
	data = bytes.TrimPrefix(data, utf8BOM)

	var rows []T
	if err := gocsv.UnmarshalBytes(data, &rows); err != nil {
		return nil, fmt.Errorf("parse %s: %w", name, err)
	}
	return rows, nil
}
