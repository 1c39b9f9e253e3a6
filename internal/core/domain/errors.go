package domain

import "errors"

// Domain errors - used across all layers
var (
	// ErrRegistryIncomplete indicates the pattern registry does not cover
	// the canonical expected-document list. Fatal at construction time.
	ErrRegistryIncomplete = errors.New("pattern registry incomplete")

	// ErrInvalidPatternTable indicates the embedded pattern table failed
	// schema validation or regex compilation. Fatal at construction time.
	ErrInvalidPatternTable = errors.New("invalid pattern table")

	// ErrNotRegistered indicates the document has no registry entry.
	ErrNotRegistered = errors.New("document not registered")

	// ErrMalformedHeader indicates the header block is missing, out of
	// order, or the document is implausibly short. Non-fatal.
	ErrMalformedHeader = errors.New("malformed header")

	// ErrNoExtractableContent indicates every extraction tier failed.
	// Non-fatal terminal: callers treat it as "no wisdom available" and
	// should pick a different document.
	ErrNoExtractableContent = errors.New("no extractable content")

	// ErrInvalidInput indicates empty or non-text input.
	ErrInvalidInput = errors.New("invalid input")
)
