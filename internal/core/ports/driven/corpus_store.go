package driven

import (
	"context"

	"github.com/mygurukul/wisdom-core/internal/core/domain"
)

// CorpusStore fetches raw corpus documents. The extraction core itself
// performs no I/O; only the CLI and manifest tooling drive this port.
type CorpusStore interface {
	// Get fetches one document by corpus-relative name.
	Get(ctx context.Context, name string) (*domain.RawDocument, error)

	// List returns corpus-relative names of all documents under the store.
	List(ctx context.Context) ([]string, error)
}
