package domain

// HeaderMetadata is document provenance parsed from the conventional
// header block between "# Header" and "# Text".
type HeaderMetadata struct {
	// Title is derived primarily from the file name; the header's own
	// title, when present, lands in Transformation instead.
	Title string `json:"title"`

	// Source names where the digitization came from.
	Source string `json:"source,omitempty"`

	// Date is the digitization or edition date, verbatim.
	Date string `json:"date,omitempty"`

	// Transformation is the in-header title annotation, kept as a
	// secondary signal only.
	Transformation string `json:"transformation,omitempty"`

	// Fields holds every "## Field: value" line found, known or not.
	Fields map[string]string `json:"fields,omitempty"`
}
