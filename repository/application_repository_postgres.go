package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"phone-loan/domain"
)

// ApplicationStorePostgres implements ApplicationStore on the
// loan_applications table.
type ApplicationStorePostgres struct {
	pool *pgxpool.Pool
}

// NewApplicationStorePostgres creates a store backed by PostgreSQL.
func NewApplicationStorePostgres(pool *pgxpool.Pool) *ApplicationStorePostgres {
	return &ApplicationStorePostgres{pool: pool}
}

func (r *ApplicationStorePostgres) FindApplicationIDByIdentity(ctx context.Context, identity string) (int64, error) {
	query := `
		SELECT id
		FROM loan_applications
		WHERE sa_id_number = $1
		ORDER BY id DESC
		LIMIT 1
	`
	var id int64
	if err := r.pool.QueryRow(ctx, query, identity).Scan(&id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, domain.ErrNotFound
		}
		return 0, fmt.Errorf("find application by identity: %w", err)
	}
	return id, nil
}

func (r *ApplicationStorePostgres) InsertApplication(ctx context.Context, p domain.ApplicationPayload) (int64, error) {
	query := `
		INSERT INTO loan_applications (
			full_name, sa_id_number, birthday, monthly_income, phone_id,
			loan_principal, total_loan_amount, daily_payment, status
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
		RETURNING id
	`
	var id int64
	err := r.pool.QueryRow(ctx, query,
		p.FullName, p.SAIDNumber, p.Birthday, p.MonthlyIncome, p.PhoneID,
		p.LoanPrincipal, p.TotalLoanAmount, p.DailyPayment, string(p.Status),
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("insert application: %w", err)
	}
	return id, nil
}

func (r *ApplicationStorePostgres) UpdateApplication(ctx context.Context, id int64, p domain.ApplicationPayload) error {
	query := `
		UPDATE loan_applications SET
			full_name         = $2,
			sa_id_number      = $3,
			birthday          = $4,
			monthly_income    = $5,
			phone_id          = $6,
			loan_principal    = $7,
			total_loan_amount = $8,
			daily_payment     = $9,
			status            = $10
		WHERE id = $1
	`
	tag, err := r.pool.Exec(ctx, query, id,
		p.FullName, p.SAIDNumber, p.Birthday, p.MonthlyIncome, p.PhoneID,
		p.LoanPrincipal, p.TotalLoanAmount, p.DailyPayment, string(p.Status),
	)
	if err != nil {
		return fmt.Errorf("update application %d: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("update application %d: %w", id, domain.ErrNotFound)
	}
	return nil
}
