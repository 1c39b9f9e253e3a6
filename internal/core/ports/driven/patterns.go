package driven

import "github.com/mygurukul/wisdom-core/internal/core/domain"

// PatternRegistry is the validated per-document catalog of citation
// marker patterns. Implementations must fail at construction, not first
// use, when the canonical expected-document list is not fully covered.
type PatternRegistry interface {
	// ExtractVerseText applies the document's marker patterns to one
	// line and returns the residual verse text. HTML tags, entities and
	// bracketed citations are stripped first. Returns "" when the line
	// is prose with no Sanskrit-range code points (the header/license/
	// TOC defense) or the document is unknown.
	ExtractVerseText(line, documentName string) string

	// Strategy returns the extraction strategy assigned to a document.
	Strategy(documentName string) (string, error)

	// Abbreviation returns the citation abbreviation for a document.
	Abbreviation(documentName string) (string, error)

	// Documents returns every registered document name, sorted.
	Documents() []string
}

// Classifier scores a document into a literary type. Classification is a
// pure function of (name, text): repeated calls yield identical results.
type Classifier interface {
	Classify(name, text string) domain.ClassificationResult
}

// UnitExtractor assembles a logical unit for one literary type.
// Extract returns (nil, nil) when the document has fewer parsed verses
// than the type's minimum.
type UnitExtractor interface {
	// TextType reports which literary type this extractor serves.
	TextType() domain.TextType

	// Extract parses verses and runs the type's ranked strategies.
	Extract(doc *domain.RawDocument) (*domain.LogicalUnit, error)
}
