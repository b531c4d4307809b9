package testutil

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"flashcards/internal/domain"

	"go.uber.org/zap"
)

// NewTestLogger creates a no-op logger for tests
func NewTestLogger() *zap.Logger {
	return zap.NewNop()
}

// NewTestEntries creates n distinct vocabulary entries
func NewTestEntries(n int) []domain.Entry {
	entries := make([]domain.Entry, n)
	for i := range entries {
		entries[i] = domain.Entry{
			Word:        fmt.Sprintf("word%d", i),
			Definition:  fmt.Sprintf("definition %d", i),
			Translation: fmt.Sprintf("ترجمه %d", i),
		}
	}
	return entries
}

// VocabularyJSON encodes entries the way the vocabulary file stores them
func VocabularyJSON(entries []domain.Entry) []byte {
	data, err := json.Marshal(entries)
	if err != nil {
		panic(err)
	}
	return data
}

// Origin is a fake asset origin that counts requests per path
type Origin struct {
	*httptest.Server

	mu     sync.Mutex
	assets map[string]string
	hits   map[string]int
}

// NewOrigin starts an origin serving assets (path -> body); unknown paths are 404
func NewOrigin(t *testing.T, assets map[string]string) *Origin {
	t.Helper()
	o := &Origin{assets: assets, hits: make(map[string]int)}
	o.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		o.mu.Lock()
		o.hits[r.URL.Path]++
		body, ok := o.assets[r.URL.Path]
		o.mu.Unlock()

		if !ok {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		fmt.Fprint(w, body)
	}))
	t.Cleanup(o.Close)
	return o
}

// Hits returns how many times path was requested
func (o *Origin) Hits(path string) int {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.hits[path]
}

// Set replaces or adds an asset
func (o *Origin) Set(path, body string) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.assets[path] = body
}
