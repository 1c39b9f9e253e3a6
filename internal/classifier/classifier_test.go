package classifier

import (
	"testing"

	"github.com/mygurukul/wisdom-core/internal/core/domain"
)

func TestClassify_GitaFilenameShortcut(t *testing.T) {
	c := New()

	result := c.Classify("Bhagvad_Gita.txt", "")
	if result.TextType != domain.Dialogue {
		t.Errorf("text type = %s, want dialogue", result.TextType)
	}
	if result.Confidence != domain.ConfidenceHigh {
		t.Errorf("confidence = %s, want high", result.Confidence)
	}
}

func TestClassify_FilenameShortcuts(t *testing.T) {
	c := New()

	cases := []struct {
		filename string
		want     domain.TextType
	}{
		{"Rig_Veda.txt", domain.Hymnal},
		{"Valmiki-Ramayana_Sanskrit.txt", domain.Epic},
		{"Mahabharata.txt", domain.Epic},
		{"Isha_Upanishad.txt", domain.Philosophical},
		{"Bhagvata_Purana.txt", domain.Narrative},
	}

	for _, tc := range cases {
		t.Run(tc.filename, func(t *testing.T) {
			result := c.Classify(tc.filename, "")
			if result.TextType != tc.want {
				t.Errorf("text type = %s, want %s", result.TextType, tc.want)
			}
			if result.Confidence != domain.ConfidenceHigh {
				t.Errorf("confidence = %s, want high", result.Confidence)
			}
		})
	}
}

func TestClassify_ContentAndStructureScoreEpic(t *testing.T) {
	c := New()

	text := "R_1,1.1 tapaḥsvādhyāyanirataṃ tapasvī\n" +
		"R_1,1.2 nāradaṃ paripapraccha vālmīkir munipuṅgavam\n" +
		"the sage of ayodhyā asks about rāma and sītā in this sarga\n"

	result := c.Classify("corpus_fragment_17.txt", text)
	if result.TextType != domain.Epic {
		t.Fatalf("text type = %s, want epic (matched %v)", result.TextType, result.MatchedPatterns)
	}
	// Content (100×0.7) plus structural (100×0.5) clears the high bar.
	if result.Confidence != domain.ConfidenceHigh {
		t.Errorf("confidence = %s, want high (rationale: %s)", result.Confidence, result.Rationale)
	}
}

func TestClassify_UncertainDefaultsToNarrative(t *testing.T) {
	c := New()

	result := c.Classify("notes.txt", "hello world\nnothing scriptural here\n")
	if result.Confidence != domain.ConfidenceUncertain {
		t.Errorf("confidence = %s, want uncertain", result.Confidence)
	}
	if result.TextType != domain.Narrative {
		t.Errorf("text type = %s, want narrative default", result.TextType)
	}
}

func TestClassify_LowConfidenceLead(t *testing.T) {
	c := New()

	// A single structural philosophical hit: 80×0.5 = 40, under the
	// medium bar but a clear lead over a zero runner-up.
	result := c.Classify("fragment.txt", "1.2 on the ordering of things\nplain line\n")
	if result.Confidence != domain.ConfidenceLow {
		t.Fatalf("confidence = %s, want low (rationale: %s)", result.Confidence, result.Rationale)
	}
	if result.TextType != domain.Philosophical {
		t.Errorf("text type = %s, want philosophical", result.TextType)
	}
}

func TestClassify_Deterministic(t *testing.T) {
	c := New()

	name := "Unknown_Samhita.txt"
	text := "agni and indra receive the soma offering\n1.1.1 hymn text line\n"

	first := c.Classify(name, text)
	for i := 0; i < 5; i++ {
		again := c.Classify(name, text)
		if again.TextType != first.TextType || again.Confidence != first.Confidence {
			t.Fatalf("classification not deterministic: %+v vs %+v", first, again)
		}
	}
}
