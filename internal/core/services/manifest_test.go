package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/mygurukul/wisdom-core/internal/core/domain"
)

// MockCorpusStore is a mock implementation of driven.CorpusStore
type MockCorpusStore struct {
	mock.Mock
}

func (m *MockCorpusStore) Get(ctx context.Context, name string) (*domain.RawDocument, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RawDocument), args.Error(1)
}

func (m *MockCorpusStore) List(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func TestManifestBuild(t *testing.T) {
	store := new(MockCorpusStore)
	store.On("List", mock.Anything).Return([]string{
		"CHAPTER 2 The second sarga.txt",
		"CHAPTER 1 The first sarga.txt",
	}, nil)
	store.On("Get", mock.Anything, "CHAPTER 1 The first sarga.txt").
		Return(&domain.RawDocument{Name: "CHAPTER 1 The first sarga.txt", Text: "first body"}, nil)
	store.On("Get", mock.Anything, "CHAPTER 2 The second sarga.txt").
		Return(&domain.RawDocument{Name: "CHAPTER 2 The second sarga.txt", Text: "second body"}, nil)

	svc := NewManifestService(store, nil, nil)
	m, err := svc.Build(context.Background(), "valmiki-ramayana", "Valmiki Ramayana")
	require.NoError(t, err)

	assert.Equal(t, "valmiki-ramayana", m.ScriptureID)
	require.Len(t, m.Entries, 2)

	// Entries follow sorted path order regardless of store order.
	assert.Equal(t, 1, m.Entries[0].Chapter)
	assert.Equal(t, "The first sarga", m.Entries[0].Title)
	assert.Equal(t, int64(len("first body")), m.Entries[0].Size)
	assert.Len(t, m.Entries[0].Digest, 64)
	assert.NotEmpty(t, m.Entries[0].ID)
	assert.Equal(t, 2, m.Entries[1].Chapter)

	store.AssertExpectations(t)
}

func TestManifestChapterize_RamayanaBookNames(t *testing.T) {
	registry := new(MockPatternRegistry)
	registry.On("Abbreviation", "Valmiki-Ramayana_Sanskrit.txt").Return("ram", nil)

	svc := NewManifestService(new(MockCorpusStore), registry, nil)
	chapters, err := svc.Chapterize(context.Background(), &domain.RawDocument{
		Name: "Valmiki-Ramayana_Sanskrit.txt",
		Text: "R_5,1.1 tato rāvaṇanītāyāḥ sītāyāḥ śatrukarśanaḥ\n",
	})
	require.NoError(t, err)
	require.Len(t, chapters, 1)

	assert.Equal(t, 5, chapters[0].Book)
	assert.Equal(t, "Sundara_Kanda", chapters[0].BookName)
	registry.AssertExpectations(t)
}

func TestManifestChapterize_EmptyDocument(t *testing.T) {
	svc := NewManifestService(new(MockCorpusStore), new(MockPatternRegistry), nil)

	_, err := svc.Chapterize(context.Background(), &domain.RawDocument{Name: "x.txt"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
