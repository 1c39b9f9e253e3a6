package manifest

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/mygurukul/wisdom-core/internal/core/domain"
)

// RamayanaBooks maps kanda numbers to their traditional names.
var RamayanaBooks = map[int]string{
	1: "Bala_Kanda",
	2: "Ayodhya_Kanda",
	3: "Aranya_Kanda",
	4: "Kishkindha_Kanda",
	5: "Sundara_Kanda",
	6: "Yuddha_Kanda",
	7: "Uttara_Kanda",
}

// Whole-scripture citation grammars, book+chapter form first. Single
// letter abbreviations occur here ("R_1,1.1" in the Valmiki
// digitization), unlike inline quotation markers.
var (
	bookChapterVerse = regexp.MustCompile(`\b[A-Za-z]{1,8}_(\d{1,2}),(\d{1,3})\.(\d{1,3})\b`)
	chapterVerse     = regexp.MustCompile(`\b[A-Za-z]{1,8}_(\d{1,3})\.(\d{1,3})\b`)
)

// Chapterize splits a whole-scripture text into book/chapter units,
// keyed by the citation references on its lines. Original line
// formatting is preserved inside each chapter; header lines are skipped.
// bookNames may be nil when the scripture has no named book level.
func Chapterize(doc *domain.RawDocument, bookNames map[int]string) []domain.Chapter {
	var chapters []domain.Chapter
	var current *domain.Chapter
	var body strings.Builder

	flush := func() {
		if current == nil {
			return
		}
		current.Text = body.String()
		chapters = append(chapters, *current)
		current = nil
		body.Reset()
	}

	for _, line := range strings.Split(doc.Text, "\n") {
		stripped := strings.TrimSpace(line)
		if strings.HasPrefix(stripped, "#") {
			continue
		}

		book, chapter, ok := referenceOf(line)
		if !ok {
			// Continuation line: belongs to the open chapter.
			if current != nil {
				body.WriteString(line)
				body.WriteByte('\n')
			}
			continue
		}

		if current == nil || current.Book != book || current.Number != chapter {
			flush()
			current = &domain.Chapter{
				Book:     book,
				BookName: bookNames[book],
				Number:   chapter,
			}
		}

		body.WriteString(line)
		body.WriteByte('\n')
		current.VerseCount++
	}
	flush()

	return chapters
}

// referenceOf finds the line's citation reference. Three numeric parts
// carry book+chapter, two carry chapter only.
func referenceOf(line string) (book, chapter int, ok bool) {
	if m := bookChapterVerse.FindStringSubmatch(line); m != nil {
		book, _ = strconv.Atoi(m[1])
		chapter, _ = strconv.Atoi(m[2])
		return book, chapter, true
	}
	if m := chapterVerse.FindStringSubmatch(line); m != nil {
		chapter, _ = strconv.Atoi(m[1])
		return 0, chapter, true
	}
	return 0, 0, false
}
