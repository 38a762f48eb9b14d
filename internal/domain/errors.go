package domain

import "errors"

// Domain errors represent error conditions in the driptweet domain.
// These errors are returned by the public API and can be checked with errors.Is.
var (
	// ErrStoreIntegrity is returned when the message store violates the
	// unique/contiguous label invariant. Selection behavior would be
	// undefined, so loading refuses to proceed.
	ErrStoreIntegrity = errors.New("driptweet: store integrity violation")

	// ErrEmptyStore is returned when the message store contains no entries.
	ErrEmptyStore = errors.New("driptweet: store has no entries")

	// ErrInvalidConfig is returned when configuration validation fails.
	ErrInvalidConfig = errors.New("driptweet: invalid configuration")
)
