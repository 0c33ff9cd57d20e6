package gtfs

import (
	"errors"
	"fmt"
	"strings"
)

// FieldError rejects an import because a row's field value is absent where
// required or outside its domain. It names the table, the field and the
// offending value.
type FieldError struct {
	File    string
	Field   string
	Value   string
	Missing bool
}

func (e *FieldError) Error() string {
	if e.Missing {
		return fmt.Sprintf("%s: missing required value for %s", e.File, e.Field)
	}
	return fmt.Sprintf("%s: cannot use %q for %s", e.File, e.Value, e.Field)
}

func newFieldError(file, field, value string) *FieldError {
	return &FieldError{File: file, Field: field, Value: value}
}

func newMissingField(file, field string) *FieldError {
	return &FieldError{File: file, Field: field, Missing: true}
}

// MalformedFeedError rejects an import before any row is decoded: a required
// table is missing, both calendar sources are missing, or the agency table is
// structurally unusable.
type MalformedFeedError struct {
	MissingFiles []string
	Reason       string
}

func (e *MalformedFeedError) Error() string {
	if len(e.MissingFiles) > 0 {
		return "not a valid GTFS feed: missing " + strings.Join(e.MissingFiles, ", ")
	}
	return "not a valid GTFS feed: " + e.Reason
}

// NotFoundError fails a single query call when an id matches no record or a
// trip has no stop times. It never invalidates the Feed.
type NotFoundError struct {
	Resource string
	ID       string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("no such %s: %s", e.Resource, e.ID)
}

func notFound(resource, id string) *NotFoundError {
	return &NotFoundError{Resource: resource, ID: id}
}

// IsNotFound reports whether err is a query-time not-found error.
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}
