// Package id provides UUIDv7 generation for report passes.
// UUIDv7 is time-ordered, so pass ids sort in the order the passes ran.
package id

import (
	"github.com/google/uuid"
)

// ID is a type alias for UUID.
type ID = uuid.UUID

// New generates a new UUIDv7 (time-ordered UUID).
func New() ID {
	id, err := uuid.NewV7()
	if err != nil {
		// Fallback to V4 if V7 fails (should never happen)
		return uuid.New()
	}
	return id
}

// NewString is New formatted as a string.
func NewString() string {
	return New().String()
}
