package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/iho/finacct/internal/domain"
	"github.com/iho/finacct/internal/usecase"
)

// FinAccountRepository implements usecase.FinAccountRepository.
type FinAccountRepository struct {
	pool *pgxpool.Pool
}

// NewFinAccountRepository creates a new FinAccountRepository.
func NewFinAccountRepository(pool *pgxpool.Pool) *FinAccountRepository {
	return &FinAccountRepository{pool: pool}
}

// GetByID retrieves a financial account by ID.
func (r *FinAccountRepository) GetByID(ctx context.Context, id string) (*domain.FinAccount, error) {
	var (
		acc       domain.FinAccount
		status    string
		createdAt pgtype.Timestamptz
		updatedAt pgtype.Timestamptz
	)

	err := r.pool.QueryRow(ctx,
		`SELECT id, status, owner_party_id, currency, name, created_at, updated_at
		 FROM fin_accounts
		 WHERE id = $1`, id).Scan(
		&acc.ID,
		&status,
		&acc.OwnerPartyID,
		&acc.Currency,
		&acc.Name,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrFinAccountNotFound
		}

		return nil, err
	}

	acc.Status = domain.FinAccountStatus(status)
	acc.CreatedAt = createdAt.Time
	acc.UpdatedAt = updatedAt.Time

	return &acc, nil
}

// FinAccountTransRepository implements usecase.FinAccountTransRepository.
type FinAccountTransRepository struct {
	pool *pgxpool.Pool
}

// NewFinAccountTransRepository creates a new FinAccountTransRepository.
func NewFinAccountTransRepository(pool *pgxpool.Pool) *FinAccountTransRepository {
	return &FinAccountTransRepository{pool: pool}
}

// Create inserts a transaction row within a transaction.
func (r *FinAccountTransRepository) Create(ctx context.Context, tx usecase.Transaction, trans *domain.FinAccountTrans) error {
	pgxTx := tx.(*Tx).PgxTx()

	_, err := pgxTx.Exec(ctx,
		`INSERT INTO fin_account_trans (
			id, fin_account_id, type, status, party_id, payment_id,
			amount, transaction_date, entry_date, comments
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		trans.ID,
		trans.FinAccountID,
		string(trans.Type),
		string(trans.Status),
		trans.PartyID,
		stringPtrToText(trans.PaymentID),
		decimalToNumeric(trans.Amount),
		timeToPgTimestamptz(trans.TransactionDate),
		timeToPgTimestamptz(trans.EntryDate),
		trans.Comments,
	)

	return err
}

// GetByID retrieves a transaction by ID.
func (r *FinAccountTransRepository) GetByID(ctx context.Context, id string) (*domain.FinAccountTrans, error) {
	var (
		trans           domain.FinAccountTrans
		transType       string
		status          string
		paymentID       pgtype.Text
		amount          pgtype.Numeric
		transactionDate pgtype.Timestamptz
		entryDate       pgtype.Timestamptz
	)

	err := r.pool.QueryRow(ctx,
		`SELECT id, fin_account_id, type, status, party_id, payment_id,
		        amount, transaction_date, entry_date, comments
		 FROM fin_account_trans
		 WHERE id = $1`, id).Scan(
		&trans.ID,
		&trans.FinAccountID,
		&transType,
		&status,
		&trans.PartyID,
		&paymentID,
		&amount,
		&transactionDate,
		&entryDate,
		&trans.Comments,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrFinAccountTransNotFound
		}

		return nil, err
	}

	trans.Type = domain.FinAccountTransType(transType)
	trans.Status = domain.FinAccountTransStatus(status)
	trans.PaymentID = textToStringPtr(paymentID)
	trans.Amount = numericToDecimal(amount)
	trans.TransactionDate = transactionDate.Time
	trans.EntryDate = entryDate.Time

	return &trans, nil
}
