package manifest

import (
	"strings"
	"testing"

	"github.com/mygurukul/wisdom-core/internal/core/domain"
)

func TestChapterNumber(t *testing.T) {
	cases := []struct {
		filename string
		want     int
	}{
		{"CHAPTER 10 He describes the city.txt", 10},
		{"chapter 3.txt", 3},
		{"CHAPTER IV The sage arrives.txt", 4},
		{"Chapter XII.txt", 12},
		{"Preface.txt", 0},
	}
	for _, tc := range cases {
		if got := ChapterNumber(tc.filename); got != tc.want {
			t.Errorf("ChapterNumber(%q) = %d, want %d", tc.filename, got, tc.want)
		}
	}
}

func TestFallbackTitle(t *testing.T) {
	cases := []struct {
		filename string
		want     string
	}{
		{"CHAPTER 10 He describes the city.txt", "He describes the city"},
		{"CHAPTER IV The sage arrives.txt", "The sage arrives"},
		{"Bala_Kanda-Intro.txt", "Bala Kanda Intro"},
		{"CHAPTER 7.txt", "Untitled Chapter"},
	}
	for _, tc := range cases {
		if got := FallbackTitle(tc.filename); got != tc.want {
			t.Errorf("FallbackTitle(%q) = %q, want %q", tc.filename, got, tc.want)
		}
	}
}

func TestDigest(t *testing.T) {
	a := Digest([]byte("nārāyaṇaṃ namaskṛtya"))
	b := Digest([]byte("nārāyaṇaṃ namaskṛtya"))
	c := Digest([]byte("naraṃ caiva narottamam"))

	if len(a) != 64 {
		t.Errorf("digest length = %d, want 64 hex chars", len(a))
	}
	if a != b {
		t.Error("digest not stable for identical content")
	}
	if a == c {
		t.Error("distinct content produced identical digests")
	}
}

func TestChapterize(t *testing.T) {
	text := "# Header\n" +
		"## Source: test\n" +
		"# Text\n" +
		"R_1,1.1 tapaḥsvādhyāyanirataṃ tapasvī vāgvidāṃ varam\n" +
		"R_1,1.2 nāradaṃ paripapraccha vālmīkir munipuṅgavam\n" +
		"R_1,2.1 sa muhūrtaṃ gate tasmin devalokaṃ munis tadā\n" +
		"R_2,1.1 gacchatā mātulakulaṃ bharatena tadānagham\n" +
		"a continuation line without any reference\n"

	chapters := Chapterize(&domain.RawDocument{Name: "Valmiki-Ramayana_Sanskrit.txt", Text: text}, RamayanaBooks)
	if len(chapters) != 3 {
		t.Fatalf("expected 3 chapters, got %d: %+v", len(chapters), chapters)
	}

	first := chapters[0]
	if first.Book != 1 || first.Number != 1 {
		t.Errorf("first chapter = book %d, number %d", first.Book, first.Number)
	}
	if first.BookName != "Bala_Kanda" {
		t.Errorf("book name = %q", first.BookName)
	}
	if first.VerseCount != 2 {
		t.Errorf("verse count = %d, want 2", first.VerseCount)
	}
	if !strings.Contains(first.Text, "R_1,1.2") {
		t.Errorf("chapter text lost a verse line: %q", first.Text)
	}

	second := chapters[1]
	if second.Book != 1 || second.Number != 2 {
		t.Errorf("second chapter = book %d, number %d", second.Book, second.Number)
	}

	third := chapters[2]
	if third.Book != 2 || third.Number != 1 {
		t.Errorf("third chapter = book %d, number %d", third.Book, third.Number)
	}
	if third.BookName != "Ayodhya_Kanda" {
		t.Errorf("book name = %q", third.BookName)
	}
	if !strings.Contains(third.Text, "a continuation line") {
		t.Errorf("continuation line dropped: %q", third.Text)
	}
}

func TestChapterize_ChapterOnlyGrammar(t *testing.T) {
	text := "bhg_1.1 dhṛtarāṣṭra uvāca\n" +
		"bhg_1.2 sañjaya uvāca\n" +
		"bhg_2.1 taṃ tathā kṛpayāviṣṭam\n"

	chapters := Chapterize(&domain.RawDocument{Name: "Bhagvad_Gita.txt", Text: text}, nil)
	if len(chapters) != 2 {
		t.Fatalf("expected 2 chapters, got %d", len(chapters))
	}
	if chapters[0].Book != 0 || chapters[0].Number != 1 {
		t.Errorf("first chapter = %+v", chapters[0])
	}
	if chapters[0].BookName != "" {
		t.Errorf("unexpected book name %q", chapters[0].BookName)
	}
	if chapters[1].Number != 2 {
		t.Errorf("second chapter number = %d", chapters[1].Number)
	}
}
