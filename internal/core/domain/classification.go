package domain

// TextType is the literary type of a corpus document.
// Types are mutually exclusive; every document classifies to exactly one.
type TextType int

const (
	// Epic covers long narrative poems (Ramayana, Mahabharata).
	Epic TextType = iota

	// Hymnal covers collections of ritual hymns (the Vedas).
	Hymnal

	// Philosophical covers teaching texts (Upanishads, sutras).
	Philosophical

	// Dialogue covers speaker-exchange texts (Bhagavad Gita).
	Dialogue

	// Narrative covers story and genealogy texts (Puranas). It is also
	// the default type when classification is uncertain.
	Narrative
)

// String returns the lowercase type name.
func (t TextType) String() string {
	switch t {
	case Epic:
		return "epic"
	case Hymnal:
		return "hymnal"
	case Philosophical:
		return "philosophical"
	case Dialogue:
		return "dialogue"
	case Narrative:
		return "narrative"
	}
	return "unknown"
}

// Confidence is the coarse certainty band of a classification.
// High and Medium gate type-specific extraction; Low and Uncertain route
// to generic fallback extraction instead.
type Confidence int

const (
	// ConfidenceUncertain means no signal dominated; the default type applies.
	ConfidenceUncertain Confidence = iota

	// ConfidenceLow means the top type leads but without a strong score.
	ConfidenceLow

	// ConfidenceMedium means the top score cleared the medium threshold.
	ConfidenceMedium

	// ConfidenceHigh means the top score cleared the high threshold or an
	// unambiguous filename shortcut fired.
	ConfidenceHigh
)

// String returns the lowercase band name.
func (c Confidence) String() string {
	switch c {
	case ConfidenceHigh:
		return "high"
	case ConfidenceMedium:
		return "medium"
	case ConfidenceLow:
		return "low"
	}
	return "uncertain"
}

// ClassificationResult is the outcome of classifying one document.
// It is produced once per document and never mutated.
type ClassificationResult struct {
	TextType   TextType   `json:"text_type"`
	Confidence Confidence `json:"confidence"`

	// MatchedPatterns names the rules that contributed to the score.
	MatchedPatterns []string `json:"matched_patterns"`

	// Rationale is a short human-readable explanation of the decision.
	Rationale string `json:"rationale"`
}
