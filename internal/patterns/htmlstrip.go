package patterns

import (
	"strings"

	"golang.org/x/net/html"
)

// skipElements are containers whose text never carries verse content.
var skipElements = map[string]struct{}{
	"script": {},
	"style":  {},
	"head":   {},
}

// looksLikeHTML reports whether a line plausibly carries markup. A tag
// pair or an entity reference is enough; corpus HTML is line-oriented
// fragments, not full documents.
func looksLikeHTML(s string) bool {
	if lt := strings.IndexByte(s, '<'); lt >= 0 && strings.IndexByte(s[lt:], '>') > 0 {
		return true
	}
	if amp := strings.IndexByte(s, '&'); amp >= 0 && strings.IndexByte(s[amp:], ';') > 0 {
		return true
	}
	return false
}

// stripHTML drops tags and resolves entities, keeping text content only.
// The tokenizer never fails on malformed fragments; it degrades to
// treating the remainder as text.
func stripHTML(s string) string {
	tok := html.NewTokenizer(strings.NewReader(s))
	var b strings.Builder
	skipDepth := 0

	for {
		switch tok.Next() {
		case html.ErrorToken:
			return b.String()
		case html.StartTagToken:
			name, _ := tok.TagName()
			if _, skip := skipElements[string(name)]; skip {
				skipDepth++
			}
		case html.EndTagToken:
			name, _ := tok.TagName()
			if _, skip := skipElements[string(name)]; skip && skipDepth > 0 {
				skipDepth--
			}
		case html.TextToken:
			if skipDepth == 0 {
				b.WriteString(tok.Token().Data)
				b.WriteByte(' ')
			}
		}
	}
}
