// Package intake accepts product images for a draft submission and hands out
// object-reference URIs for them. A reference stays servable until it is released.
package intake

import (
	"strings"
	"sync"

	"github.com/google/uuid"
)

// RefPrefix is the URL path references are served under.
const RefPrefix = "/media/blob/"

type Blob struct {
	ContentType string
	Data        []byte
}

type Registry struct {
	mu    sync.RWMutex
	blobs map[string]Blob
}

func NewRegistry() *Registry {
	return &Registry{blobs: map[string]Blob{}}
}

// Acquire stores b and returns its reference URI.
func (r *Registry) Acquire(b Blob) string {
	id := uuid.NewString()
	r.mu.Lock()
	r.blobs[id] = b
	r.mu.Unlock()
	return RefPrefix + id
}

// Open accepts either the full URI or the bare id.
func (r *Registry) Open(ref string) (Blob, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	b, ok := r.blobs[strings.TrimPrefix(ref, RefPrefix)]
	return b, ok
}

// Release drops the given references. Unknown refs and placeholder paths are ignored.
func (r *Registry) Release(refs ...string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, ref := range refs {
		if !strings.HasPrefix(ref, RefPrefix) {
			continue
		}
		delete(r.blobs, strings.TrimPrefix(ref, RefPrefix))
	}
}

func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.blobs)
}
