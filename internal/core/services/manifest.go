package services

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/mygurukul/wisdom-core/internal/core/domain"
	"github.com/mygurukul/wisdom-core/internal/core/ports/driven"
	"github.com/mygurukul/wisdom-core/internal/core/ports/driving"
	"github.com/mygurukul/wisdom-core/internal/manifest"
)

// Ensure manifestService implements ManifestService
var _ driving.ManifestService = (*manifestService)(nil)

// manifestService builds chapter catalogs over a corpus store.
type manifestService struct {
	store    driven.CorpusStore
	registry driven.PatternRegistry
	logger   *slog.Logger
}

// NewManifestService creates a manifest service.
func NewManifestService(store driven.CorpusStore, registry driven.PatternRegistry, logger *slog.Logger) driving.ManifestService {
	if logger == nil {
		logger = slog.Default()
	}
	return &manifestService{store: store, registry: registry, logger: logger}
}

// Build walks the corpus store and produces a manifest entry per
// document: chapter number and title derived from the file name, blake3
// content digest, size.
func (s *manifestService) Build(ctx context.Context, scriptureID, scriptureName string) (*domain.ChapterManifest, error) {
	names, err := s.store.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list corpus: %w", err)
	}
	sort.Strings(names)

	out := &domain.ChapterManifest{
		ScriptureID:   scriptureID,
		ScriptureName: scriptureName,
		GeneratedAt:   time.Now().UTC(),
	}

	for _, name := range names {
		doc, err := s.store.Get(ctx, name)
		if err != nil {
			return nil, fmt.Errorf("get %s: %w", name, err)
		}

		out.Entries = append(out.Entries, domain.ManifestEntry{
			ID:      uuid.NewString(),
			Path:    name,
			Title:   manifest.FallbackTitle(name),
			Chapter: manifest.ChapterNumber(name),
			Digest:  manifest.Digest([]byte(doc.Text)),
			Size:    int64(len(doc.Text)),
		})
	}

	s.logger.Info("manifest built",
		"scripture", scriptureID,
		"entries", len(out.Entries),
	)
	return out, nil
}

// Chapterize splits one whole-scripture document into chapters. Epic
// scriptures with a named book level get their traditional book names.
func (s *manifestService) Chapterize(ctx context.Context, doc *domain.RawDocument) ([]domain.Chapter, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if doc == nil || doc.Text == "" {
		return nil, domain.ErrInvalidInput
	}

	var bookNames map[int]string
	if abbr, err := s.registry.Abbreviation(doc.Name); err == nil && abbr == "ram" {
		bookNames = manifest.RamayanaBooks
	}

	chapters := manifest.Chapterize(doc, bookNames)
	s.logger.Info("chapterized",
		"document", doc.Name,
		"chapters", len(chapters),
	)
	return chapters, nil
}
