package cache

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"flashcards/internal/domain"
	"flashcards/internal/repository"

	"go.uber.org/zap"
)

// ErrInstallFailed is returned when the install-time snapshot could not be taken
var ErrInstallFailed = errors.New("cache install failed")

// Default cache configuration
const DefaultName = "gre-flashcards-v1"

// DefaultAssets are cached at install
var DefaultAssets = []string{
	"/",
	"/index.html",
	"/styles.css",
	"/script.js",
	"/vocabulary_persian_final.json",
}

// Config is set once and never changes at runtime.
// Bumping Name is the only way to take a fresh snapshot alongside an old one.
type Config struct {
	Name   string
	Assets []string
}

// Policy is a cache-first asset policy.
// Install snapshots a fixed asset list; every later request is served
// from that snapshot when present and from the network otherwise.
type Policy struct {
	name    string
	assets  []string
	repo    repository.AssetRepository
	network *HTTPNetwork
	logger  *zap.Logger
}

// NewPolicy creates a cache policy over repo and network
func NewPolicy(cfg Config, repo repository.AssetRepository, network *HTTPNetwork, logger *zap.Logger) *Policy {
	name := cfg.Name
	if name == "" {
		name = DefaultName
	}

	seen := make(map[string]bool, len(cfg.Assets))
	assets := make([]string, 0, len(cfg.Assets))
	for _, path := range cfg.Assets {
		if path == "" || seen[path] {
			continue
		}
		seen[path] = true
		assets = append(assets, path)
	}

	return &Policy{
		name:    name,
		assets:  assets,
		repo:    repo,
		network: network,
		logger:  logger,
	}
}

// Name returns the cache name
func (p *Policy) Name() string {
	return p.name
}

// Assets returns the install-time asset list
func (p *Policy) Assets() []string {
	return append([]string(nil), p.assets...)
}

// Install fetches every asset and stores them all, or stores nothing
func (p *Policy) Install(ctx context.Context) error {
	p.logger.Info("Installing asset cache",
		zap.String("cache", p.name),
		zap.Int("assets", len(p.assets)),
	)

	responses := make([]domain.CachedResponse, 0, len(p.assets))
	for _, path := range p.assets {
		resp, err := p.fetchAsset(ctx, path)
		if err != nil {
			p.logger.Error("Failed to fetch asset for cache",
				zap.String("cache", p.name),
				zap.String("path", path),
				zap.Error(err),
			)
			return fmt.Errorf("%w: %v", ErrInstallFailed, err)
		}
		responses = append(responses, *resp)
	}

	if err := p.repo.PutAll(ctx, p.name, responses); err != nil {
		p.logger.Error("Failed to store asset cache",
			zap.String("cache", p.name),
			zap.Error(err),
		)
		return fmt.Errorf("%w: %v", ErrInstallFailed, err)
	}

	p.logger.Info("Asset cache installed", zap.String("cache", p.name))
	return nil
}

func (p *Policy) fetchAsset(ctx context.Context, path string) (*domain.CachedResponse, error) {
	req, err := p.network.NewRequest(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("build request for %s: %w", path, err)
	}

	resp, err := p.network.RoundTrip(req)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("fetch %s: HTTP %d", path, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	return &domain.CachedResponse{
		Path:   path,
		Status: resp.StatusCode,
		Header: resp.Header.Clone(),
		Body:   body,
	}, nil
}

// Fetch answers req from the cache when possible, else from the network.
// Network responses are returned as-is and never stored.
func (p *Policy) Fetch(req *http.Request) (*http.Response, error) {
	if cached := p.match(req); cached != nil {
		return toHTTPResponse(req, cached), nil
	}
	return p.network.RoundTrip(req)
}

func (p *Policy) match(req *http.Request) *domain.CachedResponse {
	if req.Method != http.MethodGet && req.Method != "" {
		return nil
	}
	path, ok := p.network.AssetPath(req.URL)
	if !ok {
		return nil
	}

	cached, err := p.repo.Match(req.Context(), p.name, path)
	if err != nil {
		// lookup errors fall through to the network
		p.logger.Warn("Asset cache lookup failed",
			zap.String("cache", p.name),
			zap.String("path", path),
			zap.Error(err),
		)
		return nil
	}
	if cached != nil {
		p.logger.Debug("Serving asset from cache",
			zap.String("cache", p.name),
			zap.String("path", path),
		)
	}
	return cached
}

// RoundTrip makes the policy usable as an http.Client transport
func (p *Policy) RoundTrip(req *http.Request) (*http.Response, error) {
	return p.Fetch(req)
}

func toHTTPResponse(req *http.Request, cached *domain.CachedResponse) *http.Response {
	header := cached.Header.Clone()
	if header == nil {
		header = http.Header{}
	}
	header.Set("Content-Length", strconv.Itoa(len(cached.Body)))

	return &http.Response{
		Status:        fmt.Sprintf("%d %s", cached.Status, http.StatusText(cached.Status)),
		StatusCode:    cached.Status,
		Proto:         "HTTP/1.1",
		ProtoMajor:    1,
		ProtoMinor:    1,
		Header:        header,
		Body:          io.NopCloser(bytes.NewReader(cached.Body)),
		ContentLength: int64(len(cached.Body)),
		Request:       req,
	}
}
