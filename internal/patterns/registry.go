// Package patterns holds the validated per-document catalog of citation
// marker regexes. Coverage gaps against the canonical expected-document
// list are a fatal configuration error at construction time, never a
// silent mis-extraction at first use.
package patterns

import (
	_ "embed"
	"fmt"
	"log/slog"
	"path"
	"regexp"
	"sort"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"gopkg.in/yaml.v3"

	"github.com/mygurukul/wisdom-core/internal/core/domain"
	"github.com/mygurukul/wisdom-core/internal/core/ports/driven"
	"github.com/mygurukul/wisdom-core/internal/sanskrit"
)

//go:embed table.yaml
var tableYAML []byte

//go:embed table.schema.json
var tableSchema string

// proseLimit is the residual length beyond which marker-free,
// Sanskrit-free text is assumed to be header/license/TOC prose.
const proseLimit = 50

var bracketCitation = regexp.MustCompile(`\[[^\]]*\]`)

// Verify interface compliance
var _ driven.PatternRegistry = (*Registry)(nil)

// tableDoc mirrors the embedded YAML structure.
type tableDoc struct {
	Expected   []string              `yaml:"expected"`
	Scriptures map[string]tableEntry `yaml:"scriptures"`
}

type tableEntry struct {
	Abbreviation string   `yaml:"abbreviation"`
	Strategy     string   `yaml:"strategy"`
	Markers      []string `yaml:"markers"`
}

type entry struct {
	abbreviation string
	strategy     string
	markers      []*regexp.Regexp
}

// Registry is the compiled, validated pattern catalog. Immutable after
// construction and safe for concurrent use.
type Registry struct {
	entries map[string]entry
	logger  *slog.Logger
}

// NewRegistry parses and validates the embedded pattern table. It
// returns domain.ErrInvalidPatternTable when the table fails schema
// validation or a marker regex does not compile, and
// domain.ErrRegistryIncomplete when the table's key set differs from the
// canonical expected-document list.
func NewRegistry(logger *slog.Logger) (*Registry, error) {
	if logger == nil {
		logger = slog.Default()
	}

	if err := validateTable(tableYAML); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidPatternTable, err)
	}

	var doc tableDoc
	if err := yaml.Unmarshal(tableYAML, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidPatternTable, err)
	}

	if err := diffCoverage(doc); err != nil {
		return nil, err
	}

	entries := make(map[string]entry, len(doc.Scriptures))
	for name, te := range doc.Scriptures {
		e := entry{abbreviation: te.Abbreviation, strategy: te.Strategy}
		for _, raw := range te.Markers {
			re, err := regexp.Compile(raw)
			if err != nil {
				return nil, fmt.Errorf("%w: document %q marker %q: %v",
					domain.ErrInvalidPatternTable, name, raw, err)
			}
			e.markers = append(e.markers, re)
		}
		entries[name] = e
	}

	logger.Debug("pattern registry validated", "documents", len(entries))
	return &Registry{entries: entries, logger: logger}, nil
}

// validateTable checks the YAML document against the embedded JSON Schema.
func validateTable(raw []byte) error {
	sch, err := jsonschema.CompileString("table.schema.json", tableSchema)
	if err != nil {
		return fmt.Errorf("compile schema: %w", err)
	}

	var v interface{}
	if err := yaml.Unmarshal(raw, &v); err != nil {
		return fmt.Errorf("parse table: %w", err)
	}
	return sch.Validate(v)
}

// diffCoverage compares the expected-document list against the table's
// key set in both directions.
func diffCoverage(doc tableDoc) error {
	var missing, extra []string

	for _, name := range doc.Expected {
		if _, ok := doc.Scriptures[name]; !ok {
			missing = append(missing, name)
		}
	}

	expected := make(map[string]struct{}, len(doc.Expected))
	for _, name := range doc.Expected {
		expected[name] = struct{}{}
	}
	for name := range doc.Scriptures {
		if _, ok := expected[name]; !ok {
			extra = append(extra, name)
		}
	}

	if len(missing) == 0 && len(extra) == 0 {
		return nil
	}
	sort.Strings(missing)
	sort.Strings(extra)
	return fmt.Errorf("%w: missing=%v extra=%v",
		domain.ErrRegistryIncomplete, missing, extra)
}

// resolve maps a document name to its registry key, tolerating an
// .html/.htm alias of the .txt key.
func (r *Registry) resolve(documentName string) (entry, bool) {
	name := path.Base(strings.TrimSpace(documentName))

	lower := strings.ToLower(name)
	if strings.HasSuffix(lower, ".html") {
		name = name[:len(name)-len(".html")] + ".txt"
	} else if strings.HasSuffix(lower, ".htm") {
		name = name[:len(name)-len(".htm")] + ".txt"
	}

	e, ok := r.entries[name]
	return e, ok
}

// ExtractVerseText applies the document's marker regexes to one line and
// returns the residual verse text. HTML tags/entities and bracketed
// citation forms are stripped first. Marker-free prose with no
// Sanskrit-range code points is rejected outright: that is the primary
// defense against header, license and TOC text leaking into output.
func (r *Registry) ExtractVerseText(line, documentName string) string {
	e, ok := r.resolve(documentName)
	if !ok {
		return ""
	}

	wasHTML := looksLikeHTML(line)
	if wasHTML {
		line = stripHTML(line)
	}
	line = bracketCitation.ReplaceAllString(line, " ")

	for _, re := range e.markers {
		line = re.ReplaceAllString(line, " ")
	}
	line = strings.Join(strings.Fields(line), " ")

	if !sanskrit.ContainsRange(line) && (wasHTML || len([]rune(line)) > proseLimit) {
		return ""
	}
	return line
}

// Strategy returns the extraction strategy assigned to a document.
func (r *Registry) Strategy(documentName string) (string, error) {
	e, ok := r.resolve(documentName)
	if !ok {
		return "", fmt.Errorf("%w: %s", domain.ErrNotRegistered, documentName)
	}
	return e.strategy, nil
}

// Abbreviation returns the citation abbreviation for a document.
func (r *Registry) Abbreviation(documentName string) (string, error) {
	e, ok := r.resolve(documentName)
	if !ok {
		return "", fmt.Errorf("%w: %s", domain.ErrNotRegistered, documentName)
	}
	return e.abbreviation, nil
}

// Documents returns every registered document name, sorted.
func (r *Registry) Documents() []string {
	names := make([]string, 0, len(r.entries))
	for name := range r.entries {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
