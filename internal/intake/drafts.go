package intake

import (
	"sync"
	"time"
)

// Drafts keeps one draft per browser session. Drafts idle longer than ttl are
// torn down, releasing their references, the next time the table is touched.
type Drafts struct {
	mu    sync.Mutex
	reg   *Registry
	ttl   time.Duration
	items map[string]*Draft
	Now   func() time.Time
}

func NewDrafts(reg *Registry, ttl time.Duration) *Drafts {
	return &Drafts{reg: reg, ttl: ttl, items: map[string]*Draft{}, Now: time.Now}
}

func (t *Drafts) Registry() *Registry { return t.reg }

// Get returns the session's draft, creating it when missing.
func (t *Drafts) Get(sid string) *Draft {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.sweepLocked()
	d, ok := t.items[sid]
	if !ok {
		d = NewDraft(t.reg)
		d.now = t.Now
		d.touched = t.Now()
		t.items[sid] = d
	}
	return d
}

// Peek returns the draft without creating one.
func (t *Drafts) Peek(sid string) (*Draft, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.sweepLocked()
	d, ok := t.items[sid]
	return d, ok
}

// Discard releases the session's images and forgets the draft. While the
// draft is submitting it stays in place and ErrBusy is returned.
func (t *Drafts) Discard(sid string) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	d, ok := t.items[sid]
	if !ok {
		return nil
	}
	if err := d.Discard(); err != nil {
		return err
	}
	delete(t.items, sid)
	return nil
}

// Forget drops the draft without releasing anything; used after a handoff.
func (t *Drafts) Forget(sid string) {
	t.mu.Lock()
	delete(t.items, sid)
	t.mu.Unlock()
}

func (t *Drafts) Sweep() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.sweepLocked()
}

func (t *Drafts) sweepLocked() int {
	if t.ttl <= 0 {
		return 0
	}
	now := t.Now()
	n := 0
	for sid, d := range t.items {
		if d.idleSince(now) > t.ttl && d.Discard() == nil {
			delete(t.items, sid)
			n++
		}
	}
	return n
}

func (t *Drafts) Len() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.items)
}
