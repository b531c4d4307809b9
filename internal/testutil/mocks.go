package testutil

import (
	"context"

	"flashcards/internal/domain"
	"flashcards/internal/speech"

	"github.com/stretchr/testify/mock"
)

// MockAssetRepository is a mock for AssetRepository
type MockAssetRepository struct {
	mock.Mock
}

func (m *MockAssetRepository) Match(ctx context.Context, cacheName, path string) (*domain.CachedResponse, error) {
	args := m.Called(ctx, cacheName, path)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CachedResponse), args.Error(1)
}

func (m *MockAssetRepository) PutAll(ctx context.Context, cacheName string, responses []domain.CachedResponse) error {
	args := m.Called(ctx, cacheName, responses)
	return args.Error(0)
}

// MockEngine is a mock for speech.Engine
type MockEngine struct {
	mock.Mock
}

func (m *MockEngine) Synthesize(ctx context.Context, u speech.Utterance) ([]byte, error) {
	args := m.Called(ctx, u)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

// MockVocabularyLoader is a mock for the vocabulary loader
type MockVocabularyLoader struct {
	mock.Mock
}

func (m *MockVocabularyLoader) Load(ctx context.Context) ([]domain.Entry, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Entry), args.Error(1)
}
