// Package uuid wraps github.com/google/uuid with the binding interface gin
// needs so that UUIDs can be used directly in uri and query binding structs.
package uuid

import (
	google_uuid "github.com/google/uuid"
)

type UUID struct {
	google_uuid.UUID
}

// Nil is the zero UUID.
var Nil UUID

// New returns a random UUID.
func New() UUID {
	return UUID{google_uuid.New()}
}

// NewString returns a random UUID as a string.
func NewString() string {
	return google_uuid.NewString()
}

// UnmarshalParam parses a UUID from a request parameter. An empty parameter
// parses to Nil so that optional query parameters work.
func (u *UUID) UnmarshalParam(p string) error {
	if p == "" {
		*u = Nil
		return nil
	}

	parsed, err := google_uuid.Parse(p)
	if err != nil {
		return err
	}

	*u = UUID{parsed}
	return nil
}
