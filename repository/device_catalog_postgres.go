package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"phone-loan/domain"
)

// DeviceCatalogPostgres reads the phone_models table.
type DeviceCatalogPostgres struct {
	pool *pgxpool.Pool
}

func NewDeviceCatalogPostgres(pool *pgxpool.Pool) *DeviceCatalogPostgres {
	return &DeviceCatalogPostgres{pool: pool}
}

func (c *DeviceCatalogPostgres) ListDevices(ctx context.Context) ([]domain.Device, error) {
	query := `
		SELECT id, model_name, cash_price, deposit_percent, annual_interest_rate
		FROM phone_models
		ORDER BY id
	`
	rows, err := c.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query phone models: %w", err)
	}
	defer rows.Close()

	devices := []domain.Device{}
	for rows.Next() {
		var d domain.Device
		if err := rows.Scan(&d.ID, &d.ModelName, &d.CashPrice, &d.DepositPercent, &d.AnnualInterestRate); err != nil {
			return nil, fmt.Errorf("scan phone model: %w", err)
		}
		devices = append(devices, d)
	}
	return devices, rows.Err()
}
