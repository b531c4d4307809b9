package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"flashcards/internal/domain"

	"go.uber.org/zap"
)

// VocabularyService loads the word list from the asset origin
type VocabularyService struct {
	client *http.Client
	url    string
	logger *zap.Logger
}

// NewVocabularyService creates a loader for the vocabulary document at url.
// Requests go through client, so its transport decides caching.
func NewVocabularyService(client *http.Client, url string, logger *zap.Logger) *VocabularyService {
	return &VocabularyService{
		client: client,
		url:    url,
		logger: logger,
	}
}

// Load fetches and decodes the vocabulary list.
// Every failure is a *domain.DataLoadError.
func (s *VocabularyService) Load(ctx context.Context) ([]domain.Entry, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return nil, s.fail(&domain.DataLoadError{Path: s.url, Err: err})
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, s.fail(&domain.DataLoadError{Path: s.url, Err: err})
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, s.fail(&domain.DataLoadError{Path: s.url, Status: resp.StatusCode})
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, s.fail(&domain.DataLoadError{Path: s.url, Err: fmt.Errorf("read body: %w", err)})
	}

	entries, err := decodeEntries(body)
	if err != nil {
		return nil, s.fail(&domain.DataLoadError{Path: s.url, Err: err})
	}

	s.logger.Info("Vocabulary loaded",
		zap.String("url", s.url),
		zap.Int("entries", len(entries)),
	)
	return entries, nil
}

func (s *VocabularyService) fail(err *domain.DataLoadError) error {
	s.logger.Error("Error loading vocabulary", zap.Error(err))
	return err
}

func decodeEntries(body []byte) ([]domain.Entry, error) {
	body = bytes.TrimSpace(body)
	if len(body) == 0 || body[0] != '[' {
		return nil, fmt.Errorf("expected a JSON array: %w", domain.ErrNoVocabulary)
	}

	var raw []*domain.Entry
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, fmt.Errorf("decode vocabulary: %w", err)
	}
	if len(raw) == 0 {
		return nil, domain.ErrNoVocabulary
	}

	entries := make([]domain.Entry, 0, len(raw))
	for i, e := range raw {
		if e == nil || e.Word == "" {
			return nil, fmt.Errorf("entry %d has no word", i)
		}
		entries = append(entries, *e)
	}
	return entries, nil
}
