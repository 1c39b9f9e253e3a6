package extractors

import (
	"regexp"
	"strings"

	"github.com/mygurukul/wisdom-core/internal/core/domain"
)

// connectors are the structural linking words that let a unit continue
// across verses even when the trigger lexicon does not repeat.
var connectors = regexp.MustCompile(`(?i)\b(atha|tataḥ|tatas|tadā|evaṃ|evam|tathā|iti|caiva)\b`)

// lexicon builds a trigger predicate from a lexical field.
func lexicon(pattern string) func(domain.ParsedVerse) bool {
	re := regexp.MustCompile(pattern)
	return func(v domain.ParsedVerse) bool {
		return re.MatchString(v.Text)
	}
}

// sameField builds a continuation predicate: the next verse must follow
// immediately and either stay in the lexical field or open with a
// connector word.
func sameField(pattern string) func(prev, next domain.ParsedVerse) bool {
	re := regexp.MustCompile(pattern)
	return func(prev, next domain.ParsedVerse) bool {
		if next.Ordinal != prev.Ordinal+1 {
			return false
		}
		return re.MatchString(next.Text) || connectors.MatchString(next.Text)
	}
}

// sharedTail continues while consecutive verses end on the same word,
// the refrain shape of hymn runs.
func sharedTail(prev, next domain.ParsedVerse) bool {
	if next.Ordinal != prev.Ordinal+1 {
		return false
	}
	p := strings.Fields(prev.Text)
	n := strings.Fields(next.Text)
	if len(p) == 0 || len(n) == 0 {
		return false
	}
	return strings.EqualFold(p[len(p)-1], n[len(n)-1])
}

// Lexical fields per tradition. These drive both triggers and
// continuation checks.
const (
	speechField    = `(?i)uvāca|abravīt|provāca|pratyuvāca|vacaḥ`
	battleField    = `(?i)yuddha|śara|bāṇa|saṃgrāma|jaghāna|dhanuḥ|astra`
	journeyField   = `(?i)vana|gaccha|yayau|prayayau|āśrama|mārga|parvata`
	deityField     = `(?i)agni|indra|soma|uṣas|varuṇa|marut|mitra|aśvin`
	ritualField    = `(?i)yajña|havis|svāhā|ghṛta|barhis|hotṛ|stoma`
	mahavakyaField = `(?i)tat tvam asi|ahaṃ brahmāsmi|prajñānaṃ brahma|neti neti|ayam ātmā`
	questionField  = `(?i)kasmāt|kathaṃ|kutaḥ|kiṃ\s|kena`
	teachingField  = `(?i)brahman|ātman|mokṣa|vidyā|satya|jñāna|avidyā`
	discourseField = `(?i)yoga|dharma|karma|bhakti|saṃnyāsa|buddhi`
	refrainField   = `(?i)śrībhagavān|bhagavān|śrī-bhagavān`
	genealogyField = `(?i)putra|vaṃśa|jajñe|janayām|suta|kanyā`
	episodeField   = `(?i)^atha|purā|rājā|nagara|deśa|ṛṣi`
	moralField     = `(?i)tasmāt|evaṃ|nītir|iti\s*$`
)

// EpicProfile covers long narrative poems. References follow the
// book,chapter.verse grammar (R_2,1.10).
func EpicProfile() Profile {
	return Profile{
		Type: domain.Epic,
		ReferencePatterns: []*regexp.Regexp{
			regexp.MustCompile(`^[A-Za-z]{1,3}_\d{1,2},\d{1,3}\.\d{1,3}`),
			regexp.MustCompile(`(?i)^ram[_ ]\d{1,2},\d{1,3}\.\d{1,3}`),
		},
		MinLineLen: 15,
		MinVerses:  2,
		MaxVerses:  6,
		Strategies: []Strategy{
			{Name: "speech-exchange", MinVerses: 2, MaxVerses: 6,
				Detects: lexicon(speechField), Continues: sameField(speechField)},
			{Name: "battle-sequence", MinVerses: 2, MaxVerses: 5,
				Detects: lexicon(battleField), Continues: sameField(battleField)},
			{Name: "journey-episode", MinVerses: 2, MaxVerses: 4,
				Detects: lexicon(journeyField), Continues: sameField(journeyField)},
		},
	}
}

// HymnalProfile covers Vedic hymn collections. Single verses are
// acceptable units: hymn verses stand alone liturgically.
func HymnalProfile() Profile {
	return Profile{
		Type: domain.Hymnal,
		ReferencePatterns: []*regexp.Regexp{
			regexp.MustCompile(`^\d{1,2}\.\d{1,3}\.\d{1,3}[a-c]?`),
			regexp.MustCompile(`(?i)^[rsya]v[_ ]\d{1,2}\.\d{1,3}`),
		},
		MinLineLen: 12,
		MinVerses:  1,
		MaxVerses:  4,
		Strategies: []Strategy{
			{Name: "deity-invocation", MinVerses: 1, MaxVerses: 4,
				Detects: lexicon(deityField), Continues: sameField(deityField)},
			{Name: "ritual-formula", MinVerses: 1, MaxVerses: 3,
				Detects: lexicon(ritualField), Continues: sameField(ritualField)},
			{Name: "refrain-run", MinVerses: 2, MaxVerses: 4,
				Detects: lexicon(`॥`), Continues: sharedTail},
		},
	}
}

// PhilosophicalProfile covers Upanishads and sutra literature.
func PhilosophicalProfile() Profile {
	return Profile{
		Type: domain.Philosophical,
		ReferencePatterns: []*regexp.Regexp{
			regexp.MustCompile(`^\d{1,2}\.\d{1,3}\.\d{1,3}`),
			regexp.MustCompile(`^\d{1,2}\.\d{1,3}`),
			regexp.MustCompile(`(?i)^(up|ys|ca|ms)[_ ]?\d{1,2}\.\d{1,3}`),
		},
		MinLineLen: 12,
		MinVerses:  2,
		MaxVerses:  8,
		Strategies: []Strategy{
			{Name: "mahavakya", MinVerses: 2, MaxVerses: 4,
				Detects: lexicon(mahavakyaField), Continues: sameField(teachingField)},
			{Name: "question-answer", MinVerses: 2, MaxVerses: 6,
				Detects: lexicon(questionField), Continues: sameField(teachingField)},
			{Name: "teaching-sequence", MinVerses: 2, MaxVerses: 8,
				Detects: lexicon(teachingField), Continues: sameField(teachingField)},
		},
	}
}

// DialogueProfile covers speaker-exchange texts, the Bhagavad Gita above
// all.
func DialogueProfile() Profile {
	return Profile{
		Type: domain.Dialogue,
		ReferencePatterns: []*regexp.Regexp{
			regexp.MustCompile(`(?i)^bhg[_ ]?\d{1,2}\.\d{1,3}`),
			regexp.MustCompile(`^\d{1,2}\.\d{1,3}`),
		},
		MinLineLen: 12,
		MinVerses:  2,
		MaxVerses:  10,
		Strategies: []Strategy{
			{Name: "speaker-turn", MinVerses: 2, MaxVerses: 10,
				Detects: lexicon(speechField), Continues: sameField(discourseField)},
			{Name: "teaching-discourse", MinVerses: 2, MaxVerses: 8,
				Detects: lexicon(discourseField), Continues: sameField(discourseField)},
			{Name: "bhagavan-refrain", MinVerses: 2, MaxVerses: 6,
				Detects: lexicon(refrainField), Continues: sameField(discourseField)},
		},
	}
}

// NarrativeProfile covers Puranas and story literature. It is also the
// default profile for uncertain documents.
func NarrativeProfile() Profile {
	return Profile{
		Type: domain.Narrative,
		ReferencePatterns: []*regexp.Regexp{
			regexp.MustCompile(`(?i)^(ap|bp|vp|pt)[_ ]?\d{1,2}(\.\d{1,3}){1,2}`),
			regexp.MustCompile(`^\d{1,2}\.\d{1,3}\.\d{1,3}`),
		},
		MinLineLen: 15,
		MinVerses:  2,
		MaxVerses:  7,
		Strategies: []Strategy{
			{Name: "genealogy-run", MinVerses: 2, MaxVerses: 6,
				Detects: lexicon(genealogyField), Continues: sameField(genealogyField)},
			{Name: "episode", MinVerses: 2, MaxVerses: 7,
				Detects: lexicon(episodeField), Continues: sameField(episodeField)},
			{Name: "moral-close", MinVerses: 2, MaxVerses: 5,
				Detects: lexicon(moralField), Continues: sameField(moralField)},
		},
	}
}

// Defaults returns one profile per literary type.
func Defaults() map[domain.TextType]Profile {
	return map[domain.TextType]Profile{
		domain.Epic:          EpicProfile(),
		domain.Hymnal:        HymnalProfile(),
		domain.Philosophical: PhilosophicalProfile(),
		domain.Dialogue:      DialogueProfile(),
		domain.Narrative:     NarrativeProfile(),
	}
}
