package repository_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"phone-loan/repository"
	"phone-loan/repository/mocks"
)

func TestCachedDeviceCatalog(t *testing.T) {
	ctx := context.Background()

	t.Run("second listing is served from cache", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		inner := mocks.NewMockDeviceCatalog(ctrl)
		inner.EXPECT().ListDevices(gomock.Any()).Return(repository.DefaultDevices(), nil).Times(1)

		catalog := repository.NewCachedDeviceCatalog(inner, repository.NewMemoryCache(), time.Minute, nil)

		first, err := catalog.ListDevices(ctx)
		require.NoError(t, err)
		second, err := catalog.ListDevices(ctx)
		require.NoError(t, err)

		require.Len(t, second, len(first))
		for i := range first {
			assert.Equal(t, first[i].ID, second[i].ID)
			assert.Equal(t, first[i].ModelName, second[i].ModelName)
			assert.True(t, first[i].CashPrice.Equal(second[i].CashPrice))
		}
	})

	t.Run("invalidate forces a reload", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		inner := mocks.NewMockDeviceCatalog(ctrl)
		inner.EXPECT().ListDevices(gomock.Any()).Return(repository.DefaultDevices(), nil).Times(2)

		catalog := repository.NewCachedDeviceCatalog(inner, repository.NewMemoryCache(), 0, nil)

		_, err := catalog.ListDevices(ctx)
		require.NoError(t, err)
		require.NoError(t, catalog.Invalidate(ctx))
		_, err = catalog.ListDevices(ctx)
		require.NoError(t, err)
	})

	t.Run("unreadable cache entry falls through", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		inner := mocks.NewMockDeviceCatalog(ctrl)
		inner.EXPECT().ListDevices(gomock.Any()).Return(repository.DefaultDevices(), nil)

		cache := repository.NewMemoryCache()
		require.NoError(t, cache.Set(ctx, "phone-loan:devices", "{not json", 0))
		catalog := repository.NewCachedDeviceCatalog(inner, cache, 0, nil)

		devices, err := catalog.ListDevices(ctx)
		require.NoError(t, err)
		assert.Len(t, devices, len(repository.DefaultDevices()))
	})

	t.Run("inner failure is returned and not cached", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		inner := mocks.NewMockDeviceCatalog(ctrl)
		gomock.InOrder(
			inner.EXPECT().ListDevices(gomock.Any()).Return(nil, errors.New("db down")),
			inner.EXPECT().ListDevices(gomock.Any()).Return(repository.DefaultDevices(), nil),
		)

		catalog := repository.NewCachedDeviceCatalog(inner, repository.NewMemoryCache(), time.Minute, nil)

		_, err := catalog.ListDevices(ctx)
		require.Error(t, err)
		devices, err := catalog.ListDevices(ctx)
		require.NoError(t, err)
		assert.NotEmpty(t, devices)
	})
}
