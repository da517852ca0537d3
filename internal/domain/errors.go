package domain

import "errors"

var (
	// ErrDataLoad is returned when the reference dataset is missing,
	// unreadable, or lacks required columns. Fatal at startup.
	ErrDataLoad = errors.New("failed to load reference dataset")

	// ErrInvalidRequest is returned when request parameters are invalid
	ErrInvalidRequest = errors.New("invalid request parameters")

	// ErrNoMatch is returned when no resolution strategy clears its
	// threshold for a token
	ErrNoMatch = errors.New("no match found in reference catalog")

	// ErrEmptyVector is returned when a token has no indexable terms after
	// stop-word removal. Recovered inside the resolver, never surfaced.
	ErrEmptyVector = errors.New("token produced an empty vector")
)
