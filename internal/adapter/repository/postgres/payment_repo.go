package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/iho/finacct/internal/domain"
	"github.com/iho/finacct/internal/usecase"
)

const paymentColumns = `
	id, status, amount, currency, actual_amount, actual_currency,
	fin_account_trans_id, party_id_from, party_id_to, effective_date,
	created_at, updated_at
`

// PaymentRepository implements usecase.PaymentRepository and
// usecase.PaymentUpdater against the payments table.
type PaymentRepository struct {
	pool *pgxpool.Pool
}

// NewPaymentRepository creates a new PaymentRepository.
func NewPaymentRepository(pool *pgxpool.Pool) *PaymentRepository {
	return &PaymentRepository{pool: pool}
}

// GetByID retrieves a payment by ID.
func (r *PaymentRepository) GetByID(ctx context.Context, id string) (*domain.Payment, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT `+paymentColumns+` FROM payments WHERE id = $1`, id)

	payment, err := scanPayment(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrPaymentNotFound
		}

		return nil, err
	}

	return payment, nil
}

// GetByIDs retrieves multiple payments by IDs. Missing ids simply produce
// a shorter result; the caller decides whether that is an error.
func (r *PaymentRepository) GetByIDs(ctx context.Context, ids []string) ([]*domain.Payment, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+paymentColumns+` FROM payments WHERE id = ANY($1)`, ids)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	byID := make(map[string]*domain.Payment, len(ids))
	for rows.Next() {
		payment, err := scanPayment(rows)
		if err != nil {
			return nil, err
		}
		byID[payment.ID] = payment
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	// Preserve the caller's ordering.
	payments := make([]*domain.Payment, 0, len(byID))
	for _, id := range ids {
		if payment, ok := byID[id]; ok {
			payments = append(payments, payment)
		}
	}

	return payments, nil
}

// UpdatePayment updates a payment's status and transaction link within a
// transaction and returns the updated record.
func (r *PaymentRepository) UpdatePayment(ctx context.Context, tx usecase.Transaction, input usecase.UpdatePaymentInput) (*domain.Payment, error) {
	pgxTx := tx.(*Tx).PgxTx()

	row := pgxTx.QueryRow(ctx,
		`UPDATE payments
		 SET status = $2, fin_account_trans_id = $3, updated_at = $4
		 WHERE id = $1
		 RETURNING `+paymentColumns,
		input.PaymentID,
		string(input.Status),
		stringPtrToText(input.FinAccountTransID),
		timeToPgTimestamptz(time.Now().UTC()),
	)

	payment, err := scanPayment(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrPaymentNotFound
		}

		return nil, err
	}

	return payment, nil
}

func scanPayment(row pgx.Row) (*domain.Payment, error) {
	var (
		p                 domain.Payment
		status            string
		amount            pgtype.Numeric
		actualAmount      pgtype.Numeric
		actualCurrency    pgtype.Text
		finAccountTransID pgtype.Text
		effectiveDate     pgtype.Timestamptz
		createdAt         pgtype.Timestamptz
		updatedAt         pgtype.Timestamptz
	)

	err := row.Scan(
		&p.ID,
		&status,
		&amount,
		&p.Currency,
		&actualAmount,
		&actualCurrency,
		&finAccountTransID,
		&p.PartyIDFrom,
		&p.PartyIDTo,
		&effectiveDate,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	p.Status = domain.PaymentStatus(status)
	p.Amount = numericToDecimal(amount)
	p.ActualAmount = numericToDecimalPtr(actualAmount)
	if actualCurrency.Valid {
		p.ActualCurrency = actualCurrency.String
	}
	p.FinAccountTransID = textToStringPtr(finAccountTransID)
	p.EffectiveDate = effectiveDate.Time
	p.CreatedAt = createdAt.Time
	p.UpdatedAt = updatedAt.Time

	return &p, nil
}
