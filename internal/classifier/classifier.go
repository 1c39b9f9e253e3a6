// Package classifier scores a corpus document into one of the five
// literary types using weighted filename, content and structural
// evidence. Classification is a pure function of (name, text).
package classifier

import (
	"fmt"
	"strings"

	"github.com/mygurukul/wisdom-core/internal/core/domain"
	"github.com/mygurukul/wisdom-core/internal/core/ports/driven"
)

// Confidence thresholds over the summed weighted score.
const (
	highThreshold   = 100.0
	mediumThreshold = 50.0

	// lowLeadRatio: Low confidence requires the top score to exceed the
	// runner-up by at least 50%.
	lowLeadRatio = 1.5
)

// Verify interface compliance
var _ driven.Classifier = (*Classifier)(nil)

// Classifier holds the declarative rule table. Stateless and safe for
// concurrent use.
type Classifier struct{}

// New creates a classifier.
func New() *Classifier {
	return &Classifier{}
}

// Classify runs the filename shortcut, then the three weighted evidence
// passes, and bands the top score into a confidence level. Uncertain
// documents default to Narrative.
func (c *Classifier) Classify(name, text string) domain.ClassificationResult {
	lower := strings.ToLower(name)
	for _, s := range shortcuts {
		if strings.Contains(lower, s.substring) {
			return domain.ClassificationResult{
				TextType:        s.textType,
				Confidence:      domain.ConfidenceHigh,
				MatchedPatterns: []string{"shortcut:" + s.substring},
				Rationale:       fmt.Sprintf("filename contains %q", s.substring),
			}
		}
	}

	scores := make(map[domain.TextType]float64)
	var matched []string

	content := text
	if len(content) > contentWindow {
		content = content[:contentWindow]
	}
	lines := headLines(text, structuralLines)

	for _, r := range rules {
		var hit bool
		switch r.kind {
		case filenameEvidence:
			hit = r.re.MatchString(name)
		case contentEvidence:
			hit = r.re.MatchString(content)
		case structuralEvidence:
			hit = anyLineMatches(lines, r)
		}
		if hit {
			scores[r.textType] += float64(r.priority) * weightFor(r.kind)
			matched = append(matched, r.label)
		}
	}

	top, runnerUp, topType := rank(scores)

	result := domain.ClassificationResult{
		TextType:        topType,
		MatchedPatterns: matched,
	}

	switch {
	case top >= highThreshold:
		result.Confidence = domain.ConfidenceHigh
	case top >= mediumThreshold:
		result.Confidence = domain.ConfidenceMedium
	case top > 0 && top >= runnerUp*lowLeadRatio:
		result.Confidence = domain.ConfidenceLow
	default:
		result.Confidence = domain.ConfidenceUncertain
		result.TextType = domain.Narrative
	}

	result.Rationale = fmt.Sprintf("top score %.1f (runner-up %.1f) from %d matched rules",
		top, runnerUp, len(matched))
	return result
}

func weightFor(kind evidenceKind) float64 {
	switch kind {
	case filenameEvidence:
		return weightFilename
	case contentEvidence:
		return weightContent
	default:
		return weightStructural
	}
}

// rank returns the best and second-best scores and the winning type.
// Iteration is over the fixed type order so equal scores resolve
// deterministically.
func rank(scores map[domain.TextType]float64) (top, runnerUp float64, topType domain.TextType) {
	order := []domain.TextType{
		domain.Epic, domain.Hymnal, domain.Philosophical, domain.Dialogue, domain.Narrative,
	}
	topType = domain.Narrative
	first := true
	for _, t := range order {
		s := scores[t]
		if first || s > top {
			if !first {
				runnerUp = top
			}
			top = s
			topType = t
			first = false
			continue
		}
		if s > runnerUp {
			runnerUp = s
		}
	}
	return top, runnerUp, topType
}

func headLines(text string, n int) []string {
	lines := strings.Split(text, "\n")
	if len(lines) > n {
		lines = lines[:n]
	}
	return lines
}

func anyLineMatches(lines []string, r rule) bool {
	for _, line := range lines {
		if r.re.MatchString(strings.TrimSpace(line)) {
			return true
		}
	}
	return false
}
