package testutil

import "github.com/google/uuid"

// RunIDs produces identifiers for harness runs.
type RunIDs interface {
	Generate() string
}

// UUIDv7RunIDs issues time-ordered UUIDv7 identifiers.
type UUIDv7RunIDs struct{}

// Generate returns a new UUIDv7 string.
func (UUIDv7RunIDs) Generate() string {
	return uuid.Must(uuid.NewV7()).String()
}

// FixedRunID always returns the same identifier, for golden comparisons.
type FixedRunID string

// Generate returns f, or "run-default" when f is empty.
func (f FixedRunID) Generate() string {
	if f == "" {
		return "run-default"
	}
	return string(f)
}
