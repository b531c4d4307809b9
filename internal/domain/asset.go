package domain

import (
	"net/http"
	"time"
)

// CachedResponse is a stored copy of an asset response
type CachedResponse struct {
	Path     string
	Status   int
	Header   http.Header
	Body     []byte
	StoredAt time.Time
}

// Clone returns a deep copy, so callers never share header maps or bodies
func (r CachedResponse) Clone() CachedResponse {
	out := r
	out.Header = r.Header.Clone()
	if r.Body != nil {
		out.Body = append([]byte(nil), r.Body...)
	}
	return out
}
