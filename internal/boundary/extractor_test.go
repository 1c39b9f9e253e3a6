package boundary

import (
	"strings"
	"testing"

	"github.com/mygurukul/wisdom-core/internal/core/domain"
)

func TestExtract_BetweenTwoMarkers(t *testing.T) {
	e := NewExtractor()

	result, err := e.Extract("intro // ram_2,1.10 // body one // ram_2,1.11 // more")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.CleanText != "body one" {
		t.Errorf("clean text = %q, want %q", result.CleanText, "body one")
	}
	if result.Boundaries.StartVerse != "// ram_2,1.10 //" {
		t.Errorf("start verse = %q", result.Boundaries.StartVerse)
	}
	if result.Boundaries.EndVerse != "// ram_2,1.11 //" {
		t.Errorf("end verse = %q", result.Boundaries.EndVerse)
	}
}

func TestExtract_MetadataFromPathArity(t *testing.T) {
	e := NewExtractor()

	cases := []struct {
		name string
		text string
		want domain.BoundaryMetadata
	}{
		{
			"three-part path",
			"x // ram_2,1.10 // y // ram_2,1.11 // z",
			domain.BoundaryMetadata{Source: "ram", Book: "2", Chapter: "1", Verse: "10"},
		},
		{
			"two-part path",
			"x || bhg 2.15 || y || bhg 2.16 || z",
			domain.BoundaryMetadata{Source: "bhg", Chapter: "2", Verse: "15"},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			result, err := e.Extract(tc.text)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if result.Metadata != tc.want {
				t.Errorf("metadata = %+v, want %+v", result.Metadata, tc.want)
			}
		})
	}
}

func TestExtract_SingleMarkerTakesTail(t *testing.T) {
	e := NewExtractor()

	result, err := e.Extract("preamble // bhg_2.15 // the verse text follows here")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.CleanText != "the verse text follows here" {
		t.Errorf("clean text = %q", result.CleanText)
	}
	if result.Boundaries.EndVerse != "" {
		t.Errorf("end verse should be empty, got %q", result.Boundaries.EndVerse)
	}
}

func TestExtract_NoMarkersCleansWholeText(t *testing.T) {
	e := NewExtractor()

	result, err := e.Extract("  just   some [ed. note] prose  ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.CleanText != "just some prose" {
		t.Errorf("clean text = %q", result.CleanText)
	}
	if result.Boundaries.StartVerse != "" {
		t.Errorf("unexpected boundary %q", result.Boundaries.StartVerse)
	}
}

func TestExtract_EmptyInput(t *testing.T) {
	e := NewExtractor()
	if _, err := e.Extract("   "); err == nil {
		t.Fatal("expected error for blank input")
	}
}

func TestExtract_NoResidualArtifacts(t *testing.T) {
	e := NewExtractor()

	texts := []string{
		"a // ram_1,2.3 // between [1.2] text // ram_1,2.4 // b",
		"a || yv_3.7 || between || text here || yv_3.8 || b",
		"a /up_4.4/ middle section /up_4.5/ b",
	}

	for _, text := range texts {
		result, err := e.Extract(text)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		for _, bad := range []string{"//", "||", "[", "]"} {
			if strings.Contains(result.CleanText, bad) {
				t.Errorf("clean text %q contains artifact %q (input %q)", result.CleanText, bad, text)
			}
		}
	}
}

func TestFindMarkers_RejectsInvalidComponents(t *testing.T) {
	e := NewExtractor()

	// Component 0 and component 1000 are both outside [1,999].
	if got := e.FindMarkers("x // ram_0,1.10 // y"); len(got) != 0 {
		t.Errorf("expected 0 markers for zero component, got %d", len(got))
	}
	// Ordinary numbered prose: single bare number after a word must not
	// become a marker.
	if got := e.FindMarkers("see chapter 10 and page 23 for details"); len(got) != 0 {
		t.Errorf("expected 0 markers in numbered prose, got %d: %v", len(got), got)
	}
}

func TestFindMarkers_DedupPrefersLongestSpan(t *testing.T) {
	e := NewExtractor()

	markers := e.FindMarkers("x // ram_2,1.10 // y")
	if len(markers) != 1 {
		t.Fatalf("expected 1 marker after dedup, got %d", len(markers))
	}
	if markers[0].RawMatch != "// ram_2,1.10 //" {
		t.Errorf("kept %q, want the full comment form", markers[0].RawMatch)
	}
	if markers[0].Abbreviation != "ram" {
		t.Errorf("abbreviation = %q", markers[0].Abbreviation)
	}
}

func TestFindMarkers_SortedByPosition(t *testing.T) {
	e := NewExtractor()

	markers := e.FindMarkers("a Ram_1,1.5 b // ram_1,1.6 // c Ram_1,1.7 d")
	if len(markers) != 3 {
		t.Fatalf("expected 3 markers, got %d", len(markers))
	}
	for i := 1; i < len(markers); i++ {
		if markers[i].StartPos <= markers[i-1].StartPos {
			t.Errorf("markers not strictly increasing at %d: %+v", i, markers)
		}
	}
}
