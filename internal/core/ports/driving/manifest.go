package driving

import (
	"context"

	"github.com/mygurukul/wisdom-core/internal/core/domain"
)

// ManifestService builds chapter catalogs for a corpus tree and splits
// whole-scripture texts into chapter units.
type ManifestService interface {
	// Build walks the corpus store and produces a chapter manifest with
	// content digests for every document.
	Build(ctx context.Context, scriptureID, scriptureName string) (*domain.ChapterManifest, error)

	// Chapterize splits one whole-scripture document into chapters using
	// its registered marker grammar.
	Chapterize(ctx context.Context, doc *domain.RawDocument) ([]domain.Chapter, error)
}
