package driving

import (
	"context"

	"github.com/mygurukul/wisdom-core/internal/core/domain"
)

// WisdomService is the primary driving port: one call turns a raw corpus
// document into a citation-accurate excerpt.
type WisdomService interface {
	// Extract classifies the document, dispatches to the matching
	// type-specific extractor and degrades through generic fallbacks.
	// Returns domain.ErrNoExtractableContent when every tier fails;
	// callers treat that as "no wisdom available", not as a crash.
	Extract(ctx context.Context, name, text string) (*domain.ExtractedWisdom, error)

	// Classify exposes the classification step on its own.
	Classify(name, text string) domain.ClassificationResult

	// ParseHeader exposes the header parse step on its own. Returns
	// domain.ErrMalformedHeader when the block is absent or out of order.
	ParseHeader(name, text string) (*domain.HeaderMetadata, error)
}
