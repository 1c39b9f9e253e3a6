package services

import (
	"fmt"
	"path"
	"regexp"
	"strings"

	"github.com/mygurukul/wisdom-core/internal/core/domain"
)

// Plausibility floor for a document that claims to carry a header block.
const (
	minHeaderDocChars = 100
	minHeaderDocLines = 5
)

const (
	headerMarker = "# Header"
	textMarker   = "# Text"
)

var headerFieldPattern = regexp.MustCompile(`^##\s*([A-Za-z][A-Za-z _-]*?)\s*:\s*(.+)$`)

// parseHeader extracts provenance from the conventional block between
// "# Header" and "# Text". The title comes primarily from the file name,
// the one reliable signal; an in-header Transformation title is kept as
// a secondary annotation only. Unknown fields are retained verbatim.
func parseHeader(name, text string) (*domain.HeaderMetadata, error) {
	if len(text) < minHeaderDocChars || strings.Count(text, "\n")+1 < minHeaderDocLines {
		return nil, fmt.Errorf("%w: document implausibly short", domain.ErrMalformedHeader)
	}

	headerIdx := strings.Index(text, headerMarker)
	textIdx := strings.Index(text, textMarker)
	if headerIdx < 0 || textIdx < 0 || textIdx < headerIdx {
		return nil, fmt.Errorf("%w: header/text markers missing or out of order", domain.ErrMalformedHeader)
	}

	fields := make(map[string]string)
	block := text[headerIdx+len(headerMarker) : textIdx]
	for _, line := range strings.Split(block, "\n") {
		m := headerFieldPattern.FindStringSubmatch(strings.TrimSpace(line))
		if m == nil {
			continue
		}
		fields[strings.TrimSpace(m[1])] = strings.TrimSpace(m[2])
	}

	meta := &domain.HeaderMetadata{
		Title:  titleFromFilename(name),
		Fields: fields,
	}
	meta.Source = fields["Source"]
	meta.Date = fields["Date"]
	meta.Transformation = fields["Transformation"]

	return meta, nil
}

// titleFromFilename turns "Bhagvad_Gita.txt" into "Bhagvad Gita".
func titleFromFilename(name string) string {
	base := path.Base(name)
	if i := strings.LastIndexByte(base, '.'); i > 0 {
		base = base[:i]
	}
	base = strings.NewReplacer("_", " ", "-", " ").Replace(base)
	return strings.Join(strings.Fields(base), " ")
}
