// Package extractors assembles logical units: contiguous runs of verses
// forming one coherent dialogue, hymn, teaching or episode. One generic
// extractor serves all five literary types, parameterized by a Profile.
package extractors

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/mygurukul/wisdom-core/internal/core/domain"
	"github.com/mygurukul/wisdom-core/internal/core/ports/driven"
)

// CleanFunc turns one raw line into verse text. The service layer wires
// the pattern registry here; nil falls back to generic marker stripping.
type CleanFunc func(line, documentName string) string

// Strategy detects a trigger in a verse and greedily extends the unit
// while its continuation predicate holds. Strategies are ranked: the
// first one (in profile order) that meets its MinVerses wins and later
// ones are not tried.
type Strategy struct {
	Name      string
	MinVerses int
	MaxVerses int

	// Detects reports whether a verse triggers this strategy.
	Detects func(v domain.ParsedVerse) bool

	// Continues reports whether next extends the unit started before it.
	Continues func(prev, next domain.ParsedVerse) bool
}

// Profile parameterizes the generic extractor for one literary type.
type Profile struct {
	Type domain.TextType

	// ReferencePatterns is the type's citation grammar, most specific
	// first. Lines matching none get a synthesized Verse_<lineNo>.
	ReferencePatterns []*regexp.Regexp

	// MinLineLen is the minimum meaningful line length in runes.
	MinLineLen int

	// MinVerses and MaxVerses bound every unit this profile produces,
	// random fallback included.
	MinVerses int
	MaxVerses int

	Strategies []Strategy
}

// verseTextFloor is the absolute minimum verse text length; profiles may
// demand more via MinLineLen but never less.
const verseTextFloor = 10

var (
	genericMarker  = regexp.MustCompile(`^[A-Za-z]{0,8}[_ ]?(?:\d{1,3}[.,])*\d{1,3}[.):]?\s*`)
	trailingDandas = regexp.MustCompile(`[॥|]+\s*[०-९\d]*\s*[॥|]*\s*$`)
)

// Verify interface compliance
var _ driven.UnitExtractor = (*Extractor)(nil)

// Extractor is the generic logical-unit extractor. Stateless apart from
// the injected random source; safe for concurrent use across documents.
type Extractor struct {
	profile Profile
	random  driven.RandomSource
	clean   CleanFunc
}

// New creates an extractor for one profile. random must not be nil:
// fallback window selection depends on it.
func New(profile Profile, random driven.RandomSource, clean CleanFunc) *Extractor {
	return &Extractor{profile: profile, random: random, clean: clean}
}

// TextType reports the literary type this extractor serves.
func (e *Extractor) TextType() domain.TextType {
	return e.profile.Type
}

// Extract parses verses and runs the ranked strategies. When every
// strategy fails, a uniformly random contiguous window bounded by the
// profile's verse range is returned. Returns (nil, nil) only when the
// document has fewer parsed verses than the profile's minimum.
func (e *Extractor) Extract(doc *domain.RawDocument) (*domain.LogicalUnit, error) {
	if doc == nil || strings.TrimSpace(doc.Text) == "" {
		return nil, domain.ErrInvalidInput
	}

	verses := e.ParseVerses(doc)
	if len(verses) < e.profile.MinVerses {
		return nil, nil
	}

	for _, st := range e.profile.Strategies {
		if unit := e.runStrategy(st, verses); unit != nil {
			return unit, nil
		}
	}

	return e.randomWindow(verses), nil
}

// ParseVerses walks the document line by line, deriving references from
// the profile's citation grammar and synthesizing Verse_<lineNo> for
// lines without one. Header lines and short fragments are dropped.
func (e *Extractor) ParseVerses(doc *domain.RawDocument) []domain.ParsedVerse {
	var verses []domain.ParsedVerse
	ordinal := 0

	for i, raw := range strings.Split(doc.Text, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		var ref string
		for _, re := range e.profile.ReferencePatterns {
			if m := re.FindString(line); m != "" {
				ref = m
				break
			}
		}

		text := e.cleanLine(line, doc.Name)
		if text == "" {
			continue
		}
		if n := len([]rune(text)); n <= verseTextFloor || n < e.profile.MinLineLen {
			continue
		}

		if ref == "" {
			ref = fmt.Sprintf("Verse_%d", i+1)
		}

		ordinal++
		verses = append(verses, domain.ParsedVerse{
			Reference: ref,
			Text:      text,
			Ordinal:   ordinal,
		})
	}
	return verses
}

func (e *Extractor) cleanLine(line, documentName string) string {
	if e.clean != nil {
		return e.clean(line, documentName)
	}
	return GenericClean(line)
}

// GenericClean strips a leading citation marker and trailing danda
// punctuation from a line. Used when no registry entry covers the
// document.
func GenericClean(line string) string {
	line = genericMarker.ReplaceAllString(line, "")
	line = trailingDandas.ReplaceAllString(line, "")
	return strings.Join(strings.Fields(line), " ")
}

// runStrategy scans for the first trigger whose greedy extension meets
// the strategy's minimum.
func (e *Extractor) runStrategy(st Strategy, verses []domain.ParsedVerse) *domain.LogicalUnit {
	maxLen := st.MaxVerses
	if maxLen <= 0 || maxLen > e.profile.MaxVerses {
		maxLen = e.profile.MaxVerses
	}
	minLen := st.MinVerses
	if minLen < e.profile.MinVerses {
		minLen = e.profile.MinVerses
	}

	for i := range verses {
		if !st.Detects(verses[i]) {
			continue
		}

		j := i + 1
		for j < len(verses) && j-i < maxLen && st.Continues(verses[j-1], verses[j]) {
			j++
		}

		if j-i >= minLen {
			return e.buildUnit(verses[i:j], st.Name)
		}
	}
	return nil
}

// randomWindow returns a uniformly random contiguous window within the
// profile's verse bounds. The draw comes from the injected source, so
// tests can pin it.
func (e *Extractor) randomWindow(verses []domain.ParsedVerse) *domain.LogicalUnit {
	length := e.profile.MinVerses + e.random.Intn(e.profile.MaxVerses-e.profile.MinVerses+1)
	if length > len(verses) {
		length = len(verses)
	}

	start := 0
	if len(verses) > length {
		start = e.random.Intn(len(verses) - length + 1)
	}

	return e.buildUnit(verses[start:start+length], "random-window")
}

var bookChapterRef = regexp.MustCompile(`(\d{1,3}),(\d{1,3})\.\d{1,3}|(\d{1,3})\.(\d{1,3})\.\d{1,3}`)

func (e *Extractor) buildUnit(verses []domain.ParsedVerse, theme string) *domain.LogicalUnit {
	texts := make([]string, len(verses))
	for i, v := range verses {
		texts[i] = v.Text
	}

	first, last := verses[0], verses[len(verses)-1]
	reference := first.Reference
	if len(verses) > 1 {
		reference = fmt.Sprintf("%s–%s", first.Reference, last.Reference)
	}

	ctx := domain.UnitContext{Theme: theme}
	if m := bookChapterRef.FindStringSubmatch(first.Reference); m != nil {
		if m[1] != "" {
			ctx.Book = m[1]
			ctx.Chapter = m[2]
		} else {
			ctx.Book = m[3]
			ctx.Chapter = m[4]
		}
	}

	return &domain.LogicalUnit{
		SanskritText: strings.Join(texts, "\n"),
		Reference:    reference,
		UnitType:     e.profile.Type,
		Verses:       verses,
		VerseRange: domain.VerseRange{
			Start: first.Ordinal,
			End:   last.Ordinal,
			Count: len(verses),
		},
		Context: ctx,
	}
}
