package domain

// RawDocument represents a digitized corpus document as fetched by a
// collaborator. The core never reads it from disk or network itself.
type RawDocument struct {
	// Name is the corpus file name, e.g. "Bhagvad_Gita.txt".
	// It is the single most reliable classification signal.
	Name string

	// Text is the full UTF-8 document body, header block included.
	Text string
}

// ExtractedWisdom is the terminal output of an extraction call.
// Once returned it is owned solely by the caller; nothing aliases back
// into the core.
type ExtractedWisdom struct {
	// ID uniquely identifies this extraction result.
	ID string `json:"id"`

	// SanskritText is the clean, marker-free excerpt.
	SanskritText string `json:"sanskrit_text"`

	// Reference is the citation for the excerpt, e.g. "R_2,1.10–R_2,1.12".
	Reference string `json:"reference"`

	// TextName is the human-readable scripture title, derived from the
	// document file name.
	TextName string `json:"text_name"`

	// Category is the literary type the document classified as.
	Category string `json:"category"`

	// EstimatedVerses is the verse count of the unit, or the candidate
	// count when a generic fallback produced the excerpt.
	EstimatedVerses int `json:"estimated_verses"`

	// Metadata carries header provenance when the document had a
	// parseable header block. Nil otherwise.
	Metadata *HeaderMetadata `json:"metadata,omitempty"`
}
