package classifier

import (
	"regexp"

	"github.com/mygurukul/wisdom-core/internal/core/domain"
)

// evidenceKind selects which pass a rule runs in. Each pass carries its
// own weight; filename evidence is empirically the most reliable.
type evidenceKind int

const (
	filenameEvidence evidenceKind = iota
	contentEvidence
	structuralEvidence
)

// Rule priorities. Specific signatures outrank generic ones on ties:
// a Gita-specific dialogue signature must beat the generic speech-verb
// dialogue signature.
const (
	priorityEpic          = 100
	priorityHymnal        = 90
	priorityGitaDialogue  = 85
	priorityPhilosophical = 80
	priorityDialogue      = 70
	priorityNarrative     = 60
)

// Pass weights.
const (
	weightFilename   = 1.0
	weightContent    = 0.7
	weightStructural = 0.5
)

// Scan windows: content rules see the first 10 KB, structural rules the
// first 100 lines.
const (
	contentWindow   = 10 * 1024
	structuralLines = 100
)

type rule struct {
	textType domain.TextType
	priority int
	kind     evidenceKind
	re       *regexp.Regexp
	label    string
}

// shortcut is a filename substring that is, empirically, a 100% reliable
// type signal. Checked before the general scorer because it is far
// cheaper than content scanning.
type shortcut struct {
	substring string
	textType  domain.TextType
}

var shortcuts = []shortcut{
	{"ramayana", domain.Epic},
	{"mahabharata", domain.Epic},
	{"veda", domain.Hymnal},
	{"gita", domain.Dialogue},
	{"upanishad", domain.Philosophical},
	{"purana", domain.Narrative},
}

var rules = []rule{
	// Filename evidence.
	{domain.Epic, priorityEpic, filenameEvidence,
		regexp.MustCompile(`(?i)ramayana|mahabharata|valmiki`), "filename:epic"},
	{domain.Hymnal, priorityHymnal, filenameEvidence,
		regexp.MustCompile(`(?i)veda|samhita_hymns|sukta`), "filename:hymnal"},
	{domain.Dialogue, priorityGitaDialogue, filenameEvidence,
		regexp.MustCompile(`(?i)gita`), "filename:gita"},
	{domain.Philosophical, priorityPhilosophical, filenameEvidence,
		regexp.MustCompile(`(?i)upanishad|sutra|smriti|samhita`), "filename:philosophical"},
	{domain.Narrative, priorityNarrative, filenameEvidence,
		regexp.MustCompile(`(?i)purana|panchatantra|arthasastra|katha`), "filename:narrative"},

	// Content evidence over the first window.
	{domain.Epic, priorityEpic, contentEvidence,
		regexp.MustCompile(`(?i)rāma|sītā|hanumān|rāvaṇa|kāṇḍa|sarga|ayodhyā`), "content:epic-lexicon"},
	{domain.Hymnal, priorityHymnal, contentEvidence,
		regexp.MustCompile(`(?i)agni|indra|soma|maṇḍala|sūkta|ṛṣi|stoma`), "content:hymnal-lexicon"},
	{domain.Dialogue, priorityGitaDialogue, contentEvidence,
		regexp.MustCompile(`(?i)arjuna|kṛṣṇa|bhagavad|kurukṣetra|pārtha`), "content:gita-lexicon"},
	{domain.Philosophical, priorityPhilosophical, contentEvidence,
		regexp.MustCompile(`(?i)brahman|ātman|mokṣa|vidyā|tat tvam asi|neti neti`), "content:philosophical-lexicon"},
	{domain.Dialogue, priorityDialogue, contentEvidence,
		regexp.MustCompile(`(?i)uvāca|abravīt|spoke|replied|asked`), "content:speech-verbs"},
	{domain.Narrative, priorityNarrative, contentEvidence,
		regexp.MustCompile(`(?i)purā|rājā|vaṃśa|putra|kathā|dynasty`), "content:narrative-lexicon"},

	// Structural evidence, matched per line over the first lines.
	{domain.Epic, priorityEpic, structuralEvidence,
		regexp.MustCompile(`^[A-Za-z]{1,3}_\d{1,2},\d{1,3}\.\d{1,3}`), "structural:book-chapter-verse"},
	{domain.Hymnal, priorityHymnal, structuralEvidence,
		regexp.MustCompile(`^\d{1,2}\.\d{1,3}\.\d{1,3}[a-c]?\b|॥`), "structural:mandala-hymn-verse"},
	{domain.Dialogue, priorityGitaDialogue, structuralEvidence,
		regexp.MustCompile(`(?i)^bhg[_ ]?\d{1,2}\.\d{1,3}`), "structural:gita-marker"},
	{domain.Philosophical, priorityPhilosophical, structuralEvidence,
		regexp.MustCompile(`^\d{1,2}\.\d{1,3}\.?\s`), "structural:sutra-numbering"},
	{domain.Dialogue, priorityDialogue, structuralEvidence,
		regexp.MustCompile(`(?i)uvāca\s*$`), "structural:speaker-turn"},
	{domain.Narrative, priorityNarrative, structuralEvidence,
		regexp.MustCompile(`(?i)^ap[_ ]?\d{1,2}\.\d{1,3}|^story\s+\d`), "structural:narrative-marker"},
}
