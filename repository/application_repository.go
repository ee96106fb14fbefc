package repository

import (
	"context"

	"phone-loan/domain"
)

//go:generate mockgen -source=application_repository.go -destination=mocks/repository_mocks.go -package=mocks

// ApplicationStore persists submitted applications.
type ApplicationStore interface {
	// FindApplicationIDByIdentity returns domain.ErrNotFound when no
	// application exists for the identity number.
	FindApplicationIDByIdentity(ctx context.Context, identity string) (int64, error)
	InsertApplication(ctx context.Context, payload domain.ApplicationPayload) (int64, error)
	UpdateApplication(ctx context.Context, id int64, payload domain.ApplicationPayload) error
}

// DeviceCatalog lists the devices available for financing.
type DeviceCatalog interface {
	ListDevices(ctx context.Context) ([]domain.Device, error)
}
