package http

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"phone-loan/domain"
	"phone-loan/service"
)

const draftSweepInterval = 5 * time.Minute

type draftEntry struct {
	draft    *service.ApplicationDraft
	lastUsed time.Time
}

// DraftRegistry keeps the open drafts, one per applicant session. Drafts not
// touched for idleTTL are dropped by a background sweep.
type DraftRegistry struct {
	mu        sync.RWMutex
	drafts    map[string]*draftEntry
	newDraft  func() *service.ApplicationDraft
	idleTTL   time.Duration
	now       func() time.Time
	stopSweep chan struct{}
	stopOnce  sync.Once
}

// NewDraftRegistry creates a registry. A zero idleTTL keeps drafts until
// they are deleted.
func NewDraftRegistry(newDraft func() *service.ApplicationDraft, idleTTL time.Duration) *DraftRegistry {
	r := newDraftRegistry(newDraft, idleTTL, time.Now)
	if idleTTL > 0 {
		go r.sweepLoop()
	}
	return r
}

func newDraftRegistry(newDraft func() *service.ApplicationDraft, idleTTL time.Duration, now func() time.Time) *DraftRegistry {
	return &DraftRegistry{
		drafts:    make(map[string]*draftEntry),
		newDraft:  newDraft,
		idleTTL:   idleTTL,
		now:       now,
		stopSweep: make(chan struct{}),
	}
}

func (r *DraftRegistry) sweepLoop() {
	ticker := time.NewTicker(min(draftSweepInterval, r.idleTTL))
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			r.sweep()
		case <-r.stopSweep:
			return
		}
	}
}

func (r *DraftRegistry) sweep() {
	if r.idleTTL <= 0 {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	for id, entry := range r.drafts {
		if now.Sub(entry.lastUsed) > r.idleTTL {
			delete(r.drafts, id)
		}
	}
}

// Stop ends the background sweep. It is safe to call more than once.
func (r *DraftRegistry) Stop() {
	r.stopOnce.Do(func() { close(r.stopSweep) })
}

// Create opens a new draft and returns its session id.
func (r *DraftRegistry) Create() (string, *service.ApplicationDraft) {
	id := uuid.NewString()
	draft := r.newDraft()

	r.mu.Lock()
	defer r.mu.Unlock()
	r.drafts[id] = &draftEntry{draft: draft, lastUsed: r.now()}
	return id, draft
}

// Get returns the draft and marks it as used.
func (r *DraftRegistry) Get(id string) (*service.ApplicationDraft, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	entry, ok := r.drafts[id]
	if !ok {
		return nil, domain.ErrDraftNotFound
	}
	entry.lastUsed = r.now()
	return entry.draft, nil
}

func (r *DraftRegistry) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.drafts[id]; !ok {
		return domain.ErrDraftNotFound
	}
	delete(r.drafts, id)
	return nil
}

func (r *DraftRegistry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.drafts)
}
