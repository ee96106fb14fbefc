package repository

import (
	"context"
	"slices"

	"github.com/shopspring/decimal"

	"phone-loan/domain"
)

// DeviceCatalogMemory serves a fixed device list.
type DeviceCatalogMemory struct {
	devices []domain.Device
}

// NewDeviceCatalogMemory creates a catalog over devices. A nil slice
// serves DefaultDevices.
func NewDeviceCatalogMemory(devices []domain.Device) *DeviceCatalogMemory {
	if devices == nil {
		devices = DefaultDevices()
	}
	return &DeviceCatalogMemory{devices: devices}
}

func (c *DeviceCatalogMemory) ListDevices(_ context.Context) ([]domain.Device, error) {
	return slices.Clone(c.devices), nil
}

// DefaultDevices is the catalog used when no database is configured.
func DefaultDevices() []domain.Device {
	device := func(id int64, name, price, deposit, rate string) domain.Device {
		return domain.Device{
			ID:                 id,
			ModelName:          name,
			CashPrice:          decimal.RequireFromString(price),
			DepositPercent:     decimal.RequireFromString(deposit),
			AnnualInterestRate: decimal.RequireFromString(rate),
		}
	}
	return []domain.Device{
		device(1, "Samsung Galaxy A05", "1999", "10", "20"),
		device(2, "Xiaomi Redmi 13C", "2499", "10", "20"),
		device(3, "Samsung Galaxy A15", "3999", "15", "18"),
		device(4, "Apple iPhone 13", "10000", "15", "18"),
		device(5, "Samsung Galaxy S24", "17999", "20", "22"),
	}
}
