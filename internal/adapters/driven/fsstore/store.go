// Package fsstore is a local-directory corpus store. It backs the CLI
// and manifest tooling; the extraction core itself never touches it.
package fsstore

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/mygurukul/wisdom-core/internal/core/domain"
	"github.com/mygurukul/wisdom-core/internal/core/ports/driven"
)

// Verify interface compliance
var _ driven.CorpusStore = (*Store)(nil)

// corpusExtensions are the file types a corpus tree may contain.
var corpusExtensions = map[string]struct{}{
	".txt":  {},
	".html": {},
	".htm":  {},
}

// Store reads corpus documents from a directory tree.
type Store struct {
	root string
}

// New creates a store rooted at dir.
func New(dir string) *Store {
	return &Store{root: dir}
}

// Get reads one document by corpus-relative name.
func (s *Store) Get(ctx context.Context, name string) (*domain.RawDocument, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	full := filepath.Join(s.root, filepath.FromSlash(name))
	rel, err := filepath.Rel(s.root, full)
	if err != nil || strings.HasPrefix(rel, "..") {
		return nil, fmt.Errorf("%w: name escapes corpus root: %s", domain.ErrInvalidInput, name)
	}

	data, err := os.ReadFile(full)
	if err != nil {
		return nil, fmt.Errorf("read corpus document: %w", err)
	}

	return &domain.RawDocument{Name: filepath.Base(name), Text: string(data)}, nil
}

// List walks the tree and returns corpus-relative names of every
// document with a corpus extension.
func (s *Store) List(ctx context.Context) ([]string, error) {
	var names []string

	err := filepath.WalkDir(s.root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		if d.IsDir() {
			return nil
		}
		if _, ok := corpusExtensions[strings.ToLower(filepath.Ext(p))]; !ok {
			return nil
		}
		rel, err := filepath.Rel(s.root, p)
		if err != nil {
			return err
		}
		names = append(names, filepath.ToSlash(rel))
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk corpus root: %w", err)
	}

	return names, nil
}
