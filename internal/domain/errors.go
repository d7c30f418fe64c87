package domain

import "errors"

var (
	// ErrNotFound signals a missing catalog entry.
	ErrNotFound = errors.New("not found")
	// ErrInvalidLabel signals a detail label that cannot be stored.
	ErrInvalidLabel = errors.New("invalid detail label")
	// ErrInvalidVocabulary signals vocabulary tables that break token invariants.
	ErrInvalidVocabulary = errors.New("invalid vocabulary")
	// ErrBatchTooLarge signals an import with more labels than allowed.
	ErrBatchTooLarge = errors.New("batch too large")
)
