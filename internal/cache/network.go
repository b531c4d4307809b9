package cache

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// HTTPNetwork sends asset requests to a fixed origin
type HTTPNetwork struct {
	origin    *url.URL
	transport http.RoundTripper
}

// NewHTTPNetwork creates a network bound to origin, e.g. "http://localhost:8001"
func NewHTTPNetwork(origin string, transport http.RoundTripper) (*HTTPNetwork, error) {
	u, err := url.Parse(origin)
	if err != nil {
		return nil, fmt.Errorf("parse origin: %w", err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("origin %q must be an absolute URL", origin)
	}
	if transport == nil {
		transport = &http.Transport{
			Proxy:                 http.ProxyFromEnvironment,
			ResponseHeaderTimeout: 10 * time.Second,
		}
	}
	return &HTTPNetwork{origin: u, transport: transport}, nil
}

// URL resolves an asset path against the origin
func (n *HTTPNetwork) URL(path string) string {
	u := *n.origin
	u.Path = strings.TrimSuffix(n.origin.Path, "/") + "/" + strings.TrimPrefix(path, "/")
	return u.String()
}

// NewRequest builds a GET request for an asset path
func (n *HTTPNetwork) NewRequest(ctx context.Context, path string) (*http.Request, error) {
	return http.NewRequestWithContext(ctx, http.MethodGet, n.URL(path), nil)
}

// RoundTrip forwards req to the origin
func (n *HTTPNetwork) RoundTrip(req *http.Request) (*http.Response, error) {
	return n.transport.RoundTrip(req)
}

// AssetPath returns the cache key for u, or false when u is not served by the origin.
// The query string is part of the key.
func (n *HTTPNetwork) AssetPath(u *url.URL) (string, bool) {
	if u.Host != "" && (u.Scheme != n.origin.Scheme || u.Host != n.origin.Host) {
		return "", false
	}

	path := u.Path
	if prefix := strings.TrimSuffix(n.origin.Path, "/"); prefix != "" {
		if path != prefix && !strings.HasPrefix(path, prefix+"/") {
			return "", false
		}
		path = strings.TrimPrefix(path, prefix)
	}
	if path == "" {
		path = "/"
	}
	if u.RawQuery != "" {
		path += "?" + u.RawQuery
	}
	return path, true
}
