package domain

import "time"

// Chapter is one book/chapter unit split out of a whole-scripture text.
type Chapter struct {
	// Book is the 1-based book (kanda, canto) number, 0 when the
	// scripture has no book level.
	Book int `json:"book,omitempty" yaml:"book,omitempty"`

	// BookName is the traditional book name when known, e.g. "Bala_Kanda".
	BookName string `json:"book_name,omitempty" yaml:"book_name,omitempty"`

	// Number is the 1-based chapter (sarga, adhyaya) number.
	Number int `json:"number" yaml:"number"`

	// Text is the chapter body with original formatting preserved.
	Text string `json:"text" yaml:"text"`

	// VerseCount is the number of marker-bearing lines in the chapter.
	VerseCount int `json:"verse_count" yaml:"verse_count"`
}

// ManifestEntry describes one chapter file in a corpus tree.
type ManifestEntry struct {
	ID      string `json:"id" yaml:"id"`
	Path    string `json:"path" yaml:"path"`
	Title   string `json:"title" yaml:"title"`
	Chapter int    `json:"chapter,omitempty" yaml:"chapter,omitempty"`
	Section string `json:"section,omitempty" yaml:"section,omitempty"`

	// Digest is the blake3 hex digest of the file content.
	Digest string `json:"digest" yaml:"digest"`

	// Size is the file size in bytes.
	Size int64 `json:"size" yaml:"size"`
}

// ChapterManifest is the catalog of a scripture's chapter files.
type ChapterManifest struct {
	ScriptureID   string          `json:"scripture_id" yaml:"scripture_id"`
	ScriptureName string          `json:"scripture_name" yaml:"scripture_name"`
	GeneratedAt   time.Time       `json:"generated_at" yaml:"generated_at"`
	Entries       []ManifestEntry `json:"entries" yaml:"entries"`
}
