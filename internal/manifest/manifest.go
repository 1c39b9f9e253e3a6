// Package manifest holds the corpus-prep text processing: chapter
// number/title derivation for manifest entries and whole-scripture
// chapterization.
package manifest

import (
	"encoding/hex"
	"path"
	"regexp"
	"strings"

	"github.com/zeebo/blake3"
)

var (
	arabicChapterPattern = regexp.MustCompile(`(?i)chapter\s+(\d+)`)
	romanChapterPattern  = regexp.MustCompile(`(?i)chapter\s+([ivx]+)\b`)
	titleChapterPrefix   = regexp.MustCompile(`(?i)^chapter\s+(?:\d+|[ivx]+)\s*`)
)

var romanNumerals = map[string]int{
	"i": 1, "ii": 2, "iii": 3, "iv": 4, "v": 5,
	"vi": 6, "vii": 7, "viii": 8, "ix": 9, "x": 10,
	"xi": 11, "xii": 12, "xiii": 13, "xiv": 14, "xv": 15,
}

// ChapterNumber derives the chapter number from a corpus file name.
// Handles "CHAPTER 10 ..." and "CHAPTER IV ..." forms; returns 0 when no
// form matches.
func ChapterNumber(filename string) int {
	if m := arabicChapterPattern.FindStringSubmatch(filename); m != nil {
		n := 0
		for _, c := range m[1] {
			n = n*10 + int(c-'0')
		}
		return n
	}
	if m := romanChapterPattern.FindStringSubmatch(filename); m != nil {
		return romanNumerals[strings.ToLower(m[1])]
	}
	return 0
}

// FallbackTitle builds a human-readable title from a file name: the
// extension and any chapter prefix go, separators become spaces.
func FallbackTitle(filename string) string {
	base := path.Base(filename)
	if i := strings.LastIndexByte(base, '.'); i > 0 {
		base = base[:i]
	}
	base = strings.NewReplacer("_", " ", "-", " ").Replace(base)
	base = titleChapterPrefix.ReplaceAllString(base, "")
	base = strings.Join(strings.Fields(base), " ")
	if base == "" {
		return "Untitled Chapter"
	}
	return base
}

// Digest returns the blake3 hex digest of a file's content.
func Digest(content []byte) string {
	sum := blake3.Sum256(content)
	return hex.EncodeToString(sum[:])
}
