package domain

// VerseMarker is one recognized inline citation token.
// Markers are ephemeral: computed per parse, positions strictly
// increasing by discovery order after deduplication.
type VerseMarker struct {
	// RawMatch is the marker exactly as it appears in the text,
	// delimiters included, e.g. "// ram_2,1.10 //".
	RawMatch string

	// Abbreviation is the scripture abbreviation, e.g. "ram".
	Abbreviation string

	// NumericPath holds the citation numbers in order, e.g. [2, 1, 10].
	// Arity encodes depth: 3 parts mean book+chapter+verse, 2 parts
	// chapter+verse, 1 part verse only.
	NumericPath []int

	// StartPos and EndPos are byte offsets of the match in the text.
	StartPos int
	EndPos   int
}

// ParsedVerse is one recognized or synthesized verse line.
type ParsedVerse struct {
	// Reference is the verse citation, or "Verse_<lineNo>" when the
	// line carried no recognizable reference.
	Reference string

	// Text is the clean verse text, markers stripped.
	Text string

	// Ordinal is the 1-based position among the document's parsed verses.
	Ordinal int
}

// VerseRange describes the span a logical unit covers.
type VerseRange struct {
	Start int `json:"start"`
	End   int `json:"end"`
	Count int `json:"count"`
}

// UnitContext carries optional provenance for a logical unit.
type UnitContext struct {
	Book    string `json:"book,omitempty"`
	Chapter string `json:"chapter,omitempty"`
	Section string `json:"section,omitempty"`
	Theme   string `json:"theme,omitempty"`
}

// LogicalUnit is a contiguous run of verses judged to form one coherent
// dialogue, hymn, teaching or episode.
type LogicalUnit struct {
	SanskritText string        `json:"sanskrit_text"`
	Reference    string        `json:"reference"`
	UnitType     TextType      `json:"unit_type"`
	Verses       []ParsedVerse `json:"verses"`
	VerseRange   VerseRange    `json:"verse_range"`
	Context      UnitContext   `json:"context"`
}

// BoundaryMetadata is citation provenance derived from the first marker's
// numeric-path arity.
type BoundaryMetadata struct {
	Source  string `json:"source,omitempty"`
	Book    string `json:"book,omitempty"`
	Chapter string `json:"chapter,omitempty"`
	Verse   string `json:"verse,omitempty"`
}

// Boundaries records the raw markers an excerpt was cut between.
type Boundaries struct {
	StartVerse string `json:"start_verse,omitempty"`
	EndVerse   string `json:"end_verse,omitempty"`
}

// BoundaryResult is the outcome of boundary extraction. It is always
// populated for non-empty input; with zero markers CleanText holds the
// generically cleaned whole text.
type BoundaryResult struct {
	CleanText  string           `json:"clean_text"`
	Metadata   BoundaryMetadata `json:"metadata"`
	Boundaries Boundaries       `json:"boundaries"`
}
