package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/iho/finacct/internal/domain"
)

// PaymentApplicationRepository implements usecase.PaymentApplicationRepository.
type PaymentApplicationRepository struct {
	pool *pgxpool.Pool
}

// NewPaymentApplicationRepository creates a new PaymentApplicationRepository.
func NewPaymentApplicationRepository(pool *pgxpool.Pool) *PaymentApplicationRepository {
	return &PaymentApplicationRepository{pool: pool}
}

// ListByPayment retrieves all applications of a payment.
func (r *PaymentApplicationRepository) ListByPayment(ctx context.Context, paymentID string) ([]*domain.PaymentApplication, error) {
	return r.list(ctx, `payment_id`, paymentID)
}

// ListByInvoice retrieves all applications toward an invoice.
func (r *PaymentApplicationRepository) ListByInvoice(ctx context.Context, invoiceID string) ([]*domain.PaymentApplication, error) {
	return r.list(ctx, `invoice_id`, invoiceID)
}

func (r *PaymentApplicationRepository) list(ctx context.Context, column, id string) ([]*domain.PaymentApplication, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, payment_id, invoice_id, amount_applied, amount_applied_actual, created_at
		 FROM payment_applications
		 WHERE `+column+` = $1
		 ORDER BY created_at`, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var apps []*domain.PaymentApplication
	for rows.Next() {
		app, err := scanPaymentApplication(rows)
		if err != nil {
			return nil, err
		}
		apps = append(apps, app)
	}

	return apps, rows.Err()
}

func scanPaymentApplication(row pgx.Row) (*domain.PaymentApplication, error) {
	var (
		app          domain.PaymentApplication
		amount       pgtype.Numeric
		amountActual pgtype.Numeric
		createdAt    pgtype.Timestamptz
	)

	err := row.Scan(
		&app.ID,
		&app.PaymentID,
		&app.InvoiceID,
		&amount,
		&amountActual,
		&createdAt,
	)
	if err != nil {
		return nil, err
	}

	app.AmountApplied = numericToDecimal(amount)
	app.AmountAppliedActual = numericToDecimalPtr(amountActual)
	app.CreatedAt = createdAt.Time

	return &app, nil
}
