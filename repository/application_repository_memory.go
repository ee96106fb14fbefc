package repository

import (
	"context"
	"fmt"
	"sync"

	"phone-loan/domain"
)

// ApplicationStoreMemory is an in-memory implementation of ApplicationStore.
type ApplicationStoreMemory struct {
	mu         sync.RWMutex
	nextID     int64
	records    map[int64]domain.ApplicationPayload
	byIdentity map[string]int64
}

// NewApplicationStoreMemory creates an empty in-memory application store.
func NewApplicationStoreMemory() *ApplicationStoreMemory {
	return &ApplicationStoreMemory{
		records:    make(map[int64]domain.ApplicationPayload),
		byIdentity: make(map[string]int64),
	}
}

func (r *ApplicationStoreMemory) FindApplicationIDByIdentity(
	_ context.Context,
	identity string,
) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.byIdentity[identity]
	if !ok {
		return 0, domain.ErrNotFound
	}
	return id, nil
}

func (r *ApplicationStoreMemory) InsertApplication(
	_ context.Context,
	payload domain.ApplicationPayload,
) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	r.records[r.nextID] = payload
	r.byIdentity[payload.SAIDNumber] = r.nextID
	return r.nextID, nil
}

func (r *ApplicationStoreMemory) UpdateApplication(
	_ context.Context,
	id int64,
	payload domain.ApplicationPayload,
) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	prev, ok := r.records[id]
	if !ok {
		return fmt.Errorf("update application %d: %w", id, domain.ErrNotFound)
	}
	if prev.SAIDNumber != payload.SAIDNumber && r.byIdentity[prev.SAIDNumber] == id {
		delete(r.byIdentity, prev.SAIDNumber)
	}
	r.records[id] = payload
	r.byIdentity[payload.SAIDNumber] = id
	return nil
}

// Application returns the stored payload for id.
func (r *ApplicationStoreMemory) Application(id int64) (domain.ApplicationPayload, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.records[id]
	return p, ok
}

// Len reports how many applications are stored.
func (r *ApplicationStoreMemory) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.records)
}
