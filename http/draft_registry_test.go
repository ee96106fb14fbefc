package http

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"phone-loan/domain"
	"phone-loan/repository"
	"phone-loan/service"
)

func TestDraftRegistry_SweepDropsIdleDrafts(t *testing.T) {
	now := time.Date(2025, time.June, 15, 12, 0, 0, 0, time.UTC)
	newDraft := func() *service.ApplicationDraft {
		return service.NewApplicationDraft(repository.NewApplicationStoreMemory(), repository.NewDeviceCatalogMemory(nil))
	}
	drafts := newDraftRegistry(newDraft, 30*time.Minute, func() time.Time { return now })

	idle, _ := drafts.Create()
	active, _ := drafts.Create()

	now = now.Add(20 * time.Minute)
	_, err := drafts.Get(active)
	require.NoError(t, err)

	now = now.Add(20 * time.Minute)
	drafts.sweep()

	assert.Equal(t, 1, drafts.Len())
	_, err = drafts.Get(idle)
	assert.ErrorIs(t, err, domain.ErrDraftNotFound)
	_, err = drafts.Get(active)
	assert.NoError(t, err)
}

func TestDraftRegistry_ZeroTTLKeepsDrafts(t *testing.T) {
	now := time.Date(2025, time.June, 15, 12, 0, 0, 0, time.UTC)
	newDraft := func() *service.ApplicationDraft {
		return service.NewApplicationDraft(repository.NewApplicationStoreMemory(), repository.NewDeviceCatalogMemory(nil))
	}
	drafts := newDraftRegistry(newDraft, 0, func() time.Time { return now })
	drafts.Create()

	now = now.Add(48 * time.Hour)
	drafts.sweep()

	assert.Equal(t, 1, drafts.Len())
}

func TestDraftRegistry_StopIsIdempotent(t *testing.T) {
	drafts := NewDraftRegistry(nil, time.Minute)
	drafts.Stop()
	assert.NotPanics(t, drafts.Stop)
}
