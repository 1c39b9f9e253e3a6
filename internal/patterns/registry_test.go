package patterns

import (
	"errors"
	"strings"
	"testing"

	"github.com/mygurukul/wisdom-core/internal/core/domain"
)

func TestNewRegistry(t *testing.T) {
	r, err := NewRegistry(nil)
	if err != nil {
		t.Fatalf("registry construction failed: %v", err)
	}
	if len(r.Documents()) == 0 {
		t.Fatal("expected registered documents")
	}
}

func TestRegistry_Lookup(t *testing.T) {
	r, err := NewRegistry(nil)
	if err != nil {
		t.Fatalf("registry construction failed: %v", err)
	}

	abbr, err := r.Abbreviation("Bhagvad_Gita.txt")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if abbr != "bhg" {
		t.Errorf("abbreviation = %q, want bhg", abbr)
	}

	strategy, err := r.Strategy("Valmiki-Ramayana_Sanskrit.txt")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strategy != "epic" {
		t.Errorf("strategy = %q, want epic", strategy)
	}

	if _, err := r.Strategy("Unknown_Text.txt"); !errors.Is(err, domain.ErrNotRegistered) {
		t.Errorf("expected ErrNotRegistered, got %v", err)
	}
}

func TestRegistry_HTMLAlias(t *testing.T) {
	r, err := NewRegistry(nil)
	if err != nil {
		t.Fatalf("registry construction failed: %v", err)
	}

	for _, name := range []string{"Bhagvad_Gita.html", "Bhagvad_Gita.htm"} {
		abbr, err := r.Abbreviation(name)
		if err != nil {
			t.Fatalf("alias %s not resolved: %v", name, err)
		}
		if abbr != "bhg" {
			t.Errorf("alias %s resolved to %q", name, abbr)
		}
	}
}

func TestExtractVerseText_StripsMarkers(t *testing.T) {
	r, err := NewRegistry(nil)
	if err != nil {
		t.Fatalf("registry construction failed: %v", err)
	}

	got := r.ExtractVerseText("bhg 2.15 yadā yadā hi dharmasya glānir bhavati bhārata", "Bhagvad_Gita.txt")
	if strings.Contains(got, "bhg") || strings.Contains(got, "2.15") {
		t.Errorf("marker survived: %q", got)
	}
	if !strings.Contains(got, "dharmasya") {
		t.Errorf("verse text lost: %q", got)
	}
}

func TestExtractVerseText_RejectsHTMLProse(t *testing.T) {
	r, err := NewRegistry(nil)
	if err != nil {
		t.Fatalf("registry construction failed: %v", err)
	}

	got := r.ExtractVerseText("<p>A note about the publisher and license</p>", "Bhagvad_Gita.html")
	if got != "" {
		t.Errorf("HTML prose leaked through: %q", got)
	}
}

func TestExtractVerseText_RejectsLongPlainProse(t *testing.T) {
	r, err := NewRegistry(nil)
	if err != nil {
		t.Fatalf("registry construction failed: %v", err)
	}

	line := "This electronic edition was prepared by volunteers and is distributed under open license terms."
	if got := r.ExtractVerseText(line, "Bhagvad_Gita.txt"); got != "" {
		t.Errorf("long prose leaked through: %q", got)
	}
}

func TestExtractVerseText_KeepsShortPlainLines(t *testing.T) {
	r, err := NewRegistry(nil)
	if err != nil {
		t.Fatalf("registry construction failed: %v", err)
	}

	if got := r.ExtractVerseText("Chapter two begins", "Bhagvad_Gita.txt"); got == "" {
		t.Error("short non-Sanskrit line should survive the prose defense")
	}
}

func TestExtractVerseText_KeepsSanskritHTML(t *testing.T) {
	r, err := NewRegistry(nil)
	if err != nil {
		t.Fatalf("registry construction failed: %v", err)
	}

	got := r.ExtractVerseText("<p>dhṛtarāṣṭra uvāca</p>", "Bhagvad_Gita.html")
	if !strings.Contains(got, "dhṛtarāṣṭra") {
		t.Errorf("Sanskrit HTML content lost: %q", got)
	}
	if strings.Contains(got, "<") {
		t.Errorf("tag survived: %q", got)
	}
}

func TestExtractVerseText_UnknownDocument(t *testing.T) {
	r, err := NewRegistry(nil)
	if err != nil {
		t.Fatalf("registry construction failed: %v", err)
	}

	if got := r.ExtractVerseText("yadā yadā hi dharmasya", "Nowhere.txt"); got != "" {
		t.Errorf("unknown document must yield nothing, got %q", got)
	}
}

func TestDiffCoverage(t *testing.T) {
	doc := tableDoc{
		Expected: []string{"A.txt", "B.txt"},
		Scriptures: map[string]tableEntry{
			"A.txt": {Abbreviation: "aa", Strategy: "epic", Markers: []string{`x`}},
		},
	}
	err := diffCoverage(doc)
	if !errors.Is(err, domain.ErrRegistryIncomplete) {
		t.Fatalf("expected ErrRegistryIncomplete, got %v", err)
	}
	if !strings.Contains(err.Error(), "B.txt") {
		t.Errorf("error should name the missing document: %v", err)
	}

	doc.Scriptures["B.txt"] = tableEntry{Abbreviation: "bb", Strategy: "epic", Markers: []string{`y`}}
	if err := diffCoverage(doc); err != nil {
		t.Errorf("complete table should pass, got %v", err)
	}
}

func TestValidateTable_RejectsMalformed(t *testing.T) {
	if err := validateTable([]byte("expected: []\nscriptures: {}\n")); err == nil {
		t.Fatal("empty table should fail schema validation")
	}
	if err := validateTable([]byte("scriptures: {}\n")); err == nil {
		t.Fatal("missing expected list should fail schema validation")
	}
}
