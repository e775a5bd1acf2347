package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/iho/finacct/internal/domain"
)

// PaymentClassifier implements usecase.PaymentClassifier by resolving a
// payment's type to its parent in the payment type hierarchy.
type PaymentClassifier struct {
	pool *pgxpool.Pool
}

// NewPaymentClassifier creates a new PaymentClassifier.
func NewPaymentClassifier(pool *pgxpool.Pool) *PaymentClassifier {
	return &PaymentClassifier{pool: pool}
}

// ParentType returns the payment's parent type id, RECEIPT or
// DISBURSEMENT for the types this core cares about.
func (c *PaymentClassifier) ParentType(ctx context.Context, paymentID string) (string, error) {
	var parentTypeID string

	err := c.pool.QueryRow(ctx,
		`SELECT pt.parent_type_id
		 FROM payments p
		 JOIN payment_types pt ON pt.id = p.payment_type_id
		 WHERE p.id = $1`, paymentID).Scan(&parentTypeID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", domain.ErrPaymentNotFound
		}

		return "", err
	}

	return parentTypeID, nil
}
