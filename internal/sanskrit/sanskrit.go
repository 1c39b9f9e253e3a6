// Package sanskrit detects Sanskrit-range text in either of the two
// corpus scripts: IAST Latin transliteration and Devanagari.
package sanskrit

import "unicode"

// Devanagari block: U+0900–U+097F, plus the Vedic extensions used by
// some digitizations (U+1CD0–U+1CFF).
var devanagari = &unicode.RangeTable{
	R16: []unicode.Range16{
		{Lo: 0x0900, Hi: 0x097F, Stride: 1},
		{Lo: 0x1CD0, Hi: 0x1CFF, Stride: 1},
	},
}

// IAST diacritic code points. Plain ASCII letters are deliberately
// excluded: only the diacritics distinguish transliterated Sanskrit from
// ordinary English prose.
var iastDiacritics = map[rune]struct{}{
	'ā': {}, 'Ā': {}, 'ī': {}, 'Ī': {}, 'ū': {}, 'Ū': {},
	'ṛ': {}, 'Ṛ': {}, 'ṝ': {}, 'Ṝ': {}, 'ḷ': {}, 'Ḷ': {}, 'ḹ': {}, 'Ḹ': {},
	'ṃ': {}, 'Ṃ': {}, 'ḥ': {}, 'Ḥ': {}, 'ṅ': {}, 'Ṅ': {}, 'ñ': {}, 'Ñ': {},
	'ṭ': {}, 'Ṭ': {}, 'ḍ': {}, 'Ḍ': {}, 'ṇ': {}, 'Ṇ': {}, 'ś': {}, 'Ś': {},
	'ṣ': {}, 'Ṣ': {},
}

// ContainsRange reports whether s holds at least one Sanskrit-range code
// point: an IAST diacritic or a Devanagari character.
func ContainsRange(s string) bool {
	for _, r := range s {
		if IsRange(r) {
			return true
		}
	}
	return false
}

// IsRange reports whether r is a Sanskrit-range code point.
func IsRange(r rune) bool {
	if unicode.Is(devanagari, r) {
		return true
	}
	_, ok := iastDiacritics[r]
	return ok
}

// CountRange returns the number of Sanskrit-range code points in s.
func CountRange(s string) int {
	n := 0
	for _, r := range s {
		if IsRange(r) {
			n++
		}
	}
	return n
}
