// Package boundary recognizes inline citation markers in raw corpus text
// and extracts the excerpt strictly between two markers.
package boundary

import (
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/mygurukul/wisdom-core/internal/core/domain"
)

// markerFamily is one universal marker shape. Families are ordered most
// specific first; deduplication prefers the longest span on overlap.
type markerFamily struct {
	name string
	re   *regexp.Regexp
}

// Each family captures (abbreviation, numeric path). The space-separated
// family requires at least two numeric components so that ordinary
// numbered prose ("chapter 10", "page 23") never matches.
var markerFamilies = []markerFamily{
	{"comment", regexp.MustCompile(`//\s*([A-Za-z]{2,8})[_ ]?((?:\d{1,3}[.,])*\d{1,3})\s*//`)},
	{"pipe", regexp.MustCompile(`\|\|?\s*([A-Za-z]{2,8})[_ ]?((?:\d{1,3}[.,])*\d{1,3})\s*\|\|?`)},
	{"slash", regexp.MustCompile(`/([A-Za-z]{2,8})[_ ]((?:\d{1,3}[.,])*\d{1,3})/`)},
	{"space", regexp.MustCompile(`\b([A-Za-z]{2,8})\s+((?:\d{1,3}[.,])+\d{1,3})\b`)},
	{"bare", regexp.MustCompile(`\b([A-Za-z]{2,8})_((?:\d{1,3}[.,])*\d{1,3})\b`)},
}

var (
	bracketRefPattern = regexp.MustCompile(`\[[^\]]*\]`)
	lineNumberPrefix  = regexp.MustCompile(`^\s*\d{1,4}[.):]?\s+`)
	ordinalPrefix     = regexp.MustCompile(`(?i)^\s*(first|second|third|fourth|fifth|sixth|seventh|eighth|ninth|tenth)\s*[:.-]\s*`)
	residualArtifacts = regexp.MustCompile(`//|\|\||\|`)
	whitespaceRun     = regexp.MustCompile(`\s+`)
)

// Extractor recognizes verse markers and cuts clean excerpts between them.
// It is stateless and safe for concurrent use.
type Extractor struct{}

// NewExtractor creates a boundary extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// FindMarkers scans the whole text with every marker family, validates
// candidates, deduplicates overlaps preferring the longest span, and
// returns markers sorted by position.
func (e *Extractor) FindMarkers(text string) []domain.VerseMarker {
	var candidates []domain.VerseMarker

	for _, family := range markerFamilies {
		for _, m := range family.re.FindAllStringSubmatchIndex(text, -1) {
			marker, ok := buildMarker(text, m)
			if !ok {
				continue
			}
			candidates = append(candidates, marker)
		}
	}

	// Longest span first, so the greedy pass below keeps the most
	// complete form of an overlapping pair (the comment form subsumes
	// the bare form it contains).
	sort.Slice(candidates, func(i, j int) bool {
		li := candidates[i].EndPos - candidates[i].StartPos
		lj := candidates[j].EndPos - candidates[j].StartPos
		if li != lj {
			return li > lj
		}
		return candidates[i].StartPos < candidates[j].StartPos
	})

	var kept []domain.VerseMarker
	for _, c := range candidates {
		if overlapsAny(c, kept) {
			continue
		}
		kept = append(kept, c)
	}

	sort.Slice(kept, func(i, j int) bool {
		return kept[i].StartPos < kept[j].StartPos
	})
	return kept
}

// Extract returns the clean excerpt for the text. With two or more
// markers the excerpt is strictly between the first pair; with one,
// everything after it; with none, the whole text generically cleaned.
// Never errors on non-empty input.
func (e *Extractor) Extract(text string) (*domain.BoundaryResult, error) {
	if strings.TrimSpace(text) == "" {
		return nil, domain.ErrInvalidInput
	}

	markers := e.FindMarkers(text)
	result := &domain.BoundaryResult{}

	switch {
	case len(markers) >= 2:
		result.CleanText = cleanExcerpt(text[markers[0].EndPos:markers[1].StartPos])
		result.Boundaries = domain.Boundaries{
			StartVerse: markers[0].RawMatch,
			EndVerse:   markers[1].RawMatch,
		}
		result.Metadata = metadataFromMarker(markers[0])
	case len(markers) == 1:
		result.CleanText = cleanExcerpt(text[markers[0].EndPos:])
		result.Boundaries = domain.Boundaries{StartVerse: markers[0].RawMatch}
		result.Metadata = metadataFromMarker(markers[0])
	default:
		result.CleanText = cleanExcerpt(text)
	}

	return result, nil
}

// buildMarker validates a raw regex match. Abbreviation length is bounded
// by the pattern; every numeric component must lie in [1,999].
func buildMarker(text string, idx []int) (domain.VerseMarker, bool) {
	raw := text[idx[0]:idx[1]]
	abbr := text[idx[2]:idx[3]]
	numeric := text[idx[4]:idx[5]]

	path, ok := parseNumericPath(numeric)
	if !ok {
		return domain.VerseMarker{}, false
	}

	return domain.VerseMarker{
		RawMatch:     raw,
		Abbreviation: strings.ToLower(abbr),
		NumericPath:  path,
		StartPos:     idx[0],
		EndPos:       idx[1],
	}, true
}

func parseNumericPath(numeric string) ([]int, bool) {
	parts := strings.FieldsFunc(numeric, func(r rune) bool {
		return r == ',' || r == '.'
	})
	if len(parts) == 0 {
		return nil, false
	}

	path := make([]int, 0, len(parts))
	for _, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil || n < 1 || n > 999 {
			return nil, false
		}
		path = append(path, n)
	}
	return path, true
}

func overlapsAny(c domain.VerseMarker, kept []domain.VerseMarker) bool {
	for _, k := range kept {
		if c.StartPos < k.EndPos && k.StartPos < c.EndPos {
			return true
		}
	}
	return false
}

// metadataFromMarker derives citation provenance from the numeric-path
// arity: 3 parts mean book+chapter+verse, 2 chapter+verse, 1 verse only.
func metadataFromMarker(m domain.VerseMarker) domain.BoundaryMetadata {
	meta := domain.BoundaryMetadata{Source: m.Abbreviation}
	switch len(m.NumericPath) {
	case 3:
		meta.Book = strconv.Itoa(m.NumericPath[0])
		meta.Chapter = strconv.Itoa(m.NumericPath[1])
		meta.Verse = strconv.Itoa(m.NumericPath[2])
	case 2:
		meta.Chapter = strconv.Itoa(m.NumericPath[0])
		meta.Verse = strconv.Itoa(m.NumericPath[1])
	case 1:
		meta.Verse = strconv.Itoa(m.NumericPath[0])
	}
	return meta
}

// cleanExcerpt strips marker artifacts, bracketed citations and leading
// line-number/ordinal-word prefixes, then collapses whitespace.
func cleanExcerpt(s string) string {
	s = residualArtifacts.ReplaceAllString(s, " ")
	s = bracketRefPattern.ReplaceAllString(s, " ")
	s = lineNumberPrefix.ReplaceAllString(s, "")
	s = ordinalPrefix.ReplaceAllString(s, "")
	s = whitespaceRun.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}
