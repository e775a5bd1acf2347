package postgres

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/oklog/ulid/v2"

	"github.com/iho/finacct/internal/usecase"
)

// PaymentGroupRepository implements usecase.PaymentGroupCreator.
type PaymentGroupRepository struct {
	pool *pgxpool.Pool
}

// NewPaymentGroupRepository creates a new PaymentGroupRepository.
func NewPaymentGroupRepository(pool *pgxpool.Pool) *PaymentGroupRepository {
	return &PaymentGroupRepository{pool: pool}
}

// CreatePaymentGroup creates a payment group and its member rows within a
// transaction.
func (r *PaymentGroupRepository) CreatePaymentGroup(ctx context.Context, tx usecase.Transaction, paymentIDs []string) (string, error) {
	pgxTx := tx.(*Tx).PgxTx()

	groupID := "PG-" + ulid.Make().String()
	now := time.Now().UTC()

	_, err := pgxTx.Exec(ctx,
		`INSERT INTO payment_groups (id, created_at) VALUES ($1, $2)`,
		groupID, timeToPgTimestamptz(now))
	if err != nil {
		return "", err
	}

	for _, paymentID := range paymentIDs {
		_, err := pgxTx.Exec(ctx,
			`INSERT INTO payment_group_members (group_id, payment_id, created_at)
			 VALUES ($1, $2, $3)`,
			groupID, paymentID, timeToPgTimestamptz(now))
		if err != nil {
			return "", err
		}
	}

	return groupID, nil
}
