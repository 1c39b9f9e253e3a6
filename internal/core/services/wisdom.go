package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"unicode"

	"github.com/google/uuid"

	"github.com/mygurukul/wisdom-core/internal/core/domain"
	"github.com/mygurukul/wisdom-core/internal/core/ports/driven"
	"github.com/mygurukul/wisdom-core/internal/core/ports/driving"
	"github.com/mygurukul/wisdom-core/internal/sanskrit"
)

// Generic stanza fallback bounds: a candidate line must carry
// Sanskrit-range characters and fall inside this length window.
const (
	stanzaMinLen = 15
	stanzaMaxLen = 300

	// paragraphMinLetters is the "meaningful characters" floor of the
	// last fallback tier.
	paragraphMinLetters = 30
)

// Ensure wisdomService implements WisdomService
var _ driving.WisdomService = (*wisdomService)(nil)

// wisdomService composes classification, type-specific extraction and
// layered generic fallbacks into one call. Precise extraction when
// confidence is high, broad coverage otherwise, never a hard failure on
// non-empty, non-corrupt input.
type wisdomService struct {
	registry   driven.PatternRegistry
	classifier driven.Classifier
	extractors map[domain.TextType]driven.UnitExtractor
	random     driven.RandomSource
	logger     *slog.Logger
}

// WisdomConfig holds the orchestrator's collaborators. Registry
// validation has already happened by the time one of these exists: a
// PatternRegistry cannot be constructed over an incomplete table.
type WisdomConfig struct {
	Registry   driven.PatternRegistry
	Classifier driven.Classifier
	Extractors map[domain.TextType]driven.UnitExtractor
	Random     driven.RandomSource
	Logger     *slog.Logger
}

// NewWisdomService creates the extraction orchestrator.
func NewWisdomService(cfg WisdomConfig) driving.WisdomService {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &wisdomService{
		registry:   cfg.Registry,
		classifier: cfg.Classifier,
		extractors: cfg.Extractors,
		random:     cfg.Random,
		logger:     logger,
	}
}

// Extract runs the full pipeline for one document. Tiers, in order:
// type-specific extraction (High/Medium confidence only), generic
// Sanskrit stanza scan, any meaningful paragraph. Returns
// domain.ErrNoExtractableContent only after exhausting all three.
func (s *wisdomService) Extract(ctx context.Context, name, text string) (*domain.ExtractedWisdom, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("%w: empty document", domain.ErrInvalidInput)
	}

	logger := s.logger.With("document", name)

	// Best-effort header parse; a malformed header never blocks
	// extraction, metadata just falls back to the filename.
	meta, err := parseHeader(name, text)
	if err != nil {
		logger.Debug("header parse failed", "error", err)
		meta = nil
	}

	result := s.classifier.Classify(name, text)
	logger.Debug("classified",
		"type", result.TextType.String(),
		"confidence", result.Confidence.String(),
	)

	if result.Confidence >= domain.ConfidenceMedium {
		if extractor, ok := s.extractors[result.TextType]; ok {
			unit, err := extractor.Extract(&domain.RawDocument{Name: name, Text: text})
			if err != nil {
				return nil, err
			}
			if unit != nil {
				return s.fromUnit(name, result, unit, meta), nil
			}
			logger.Debug("type extractor produced no unit, degrading")
		}
	}

	if w := s.genericStanza(name, text, result, meta); w != nil {
		logger.Debug("generic stanza fallback used", "estimated_verses", w.EstimatedVerses)
		return w, nil
	}

	if w := s.meaningfulParagraph(name, text, result, meta); w != nil {
		logger.Debug("paragraph fallback used")
		return w, nil
	}

	return nil, fmt.Errorf("%w: %s", domain.ErrNoExtractableContent, name)
}

// Classify exposes the classification step on its own.
func (s *wisdomService) Classify(name, text string) domain.ClassificationResult {
	return s.classifier.Classify(name, text)
}

// ParseHeader exposes the header parse step on its own.
func (s *wisdomService) ParseHeader(name, text string) (*domain.HeaderMetadata, error) {
	return parseHeader(name, text)
}

func (s *wisdomService) fromUnit(name string, result domain.ClassificationResult, unit *domain.LogicalUnit, meta *domain.HeaderMetadata) *domain.ExtractedWisdom {
	return &domain.ExtractedWisdom{
		ID:              uuid.NewString(),
		SanskritText:    unit.SanskritText,
		Reference:       unit.Reference,
		TextName:        titleFromFilename(name),
		Category:        result.TextType.String(),
		EstimatedVerses: unit.VerseRange.Count,
		Metadata:        meta,
	}
}

// genericStanza scans for any Sanskrit-bearing line in the stanza length
// window and picks one at random, reporting the candidate count.
func (s *wisdomService) genericStanza(name, text string, result domain.ClassificationResult, meta *domain.HeaderMetadata) *domain.ExtractedWisdom {
	type candidate struct {
		text   string
		lineNo int
	}

	registered := false
	if s.registry != nil {
		if _, err := s.registry.Abbreviation(name); err == nil {
			registered = true
		}
	}

	var candidates []candidate
	for i, raw := range strings.Split(text, "\n") {
		var line string
		if registered {
			// Registered documents get the registry's marker stripping
			// and prose defense even on the fallback path.
			line = s.registry.ExtractVerseText(raw, name)
		} else {
			line = strings.Join(strings.Fields(raw), " ")
		}
		n := len([]rune(line))
		if n < stanzaMinLen || n > stanzaMaxLen {
			continue
		}
		if !sanskrit.ContainsRange(line) {
			continue
		}
		candidates = append(candidates, candidate{text: line, lineNo: i + 1})
	}
	if len(candidates) == 0 {
		return nil
	}

	picked := candidates[s.random.Intn(len(candidates))]
	return &domain.ExtractedWisdom{
		ID:              uuid.NewString(),
		SanskritText:    picked.text,
		Reference:       fmt.Sprintf("Verse_%d", picked.lineNo),
		TextName:        titleFromFilename(name),
		Category:        result.TextType.String(),
		EstimatedVerses: len(candidates),
		Metadata:        meta,
	}
}

// meaningfulParagraph is the last tier: the first paragraph with enough
// letters to plausibly be content rather than markup or numbering.
func (s *wisdomService) meaningfulParagraph(name, text string, result domain.ClassificationResult, meta *domain.HeaderMetadata) *domain.ExtractedWisdom {
	for i, block := range strings.Split(text, "\n\n") {
		para := strings.Join(strings.Fields(block), " ")
		if letterCount(para) < paragraphMinLetters {
			continue
		}
		return &domain.ExtractedWisdom{
			ID:              uuid.NewString(),
			SanskritText:    para,
			Reference:       fmt.Sprintf("Paragraph_%d", i+1),
			TextName:        titleFromFilename(name),
			Category:        result.TextType.String(),
			EstimatedVerses: 1,
			Metadata:        meta,
		}
	}
	return nil
}

func letterCount(s string) int {
	n := 0
	for _, r := range s {
		if unicode.IsLetter(r) {
			n++
		}
	}
	return n
}
