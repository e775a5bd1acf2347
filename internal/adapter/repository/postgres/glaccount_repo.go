package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/iho/finacct/internal/domain"
)

// GlAccountRepository implements usecase.GlAccountRepository.
type GlAccountRepository struct {
	pool *pgxpool.Pool
}

// NewGlAccountRepository creates a new GlAccountRepository.
func NewGlAccountRepository(pool *pgxpool.Pool) *GlAccountRepository {
	return &GlAccountRepository{pool: pool}
}

// GetAccount retrieves a GL account by ID.
func (r *GlAccountRepository) GetAccount(ctx context.Context, id string) (*domain.GlAccount, error) {
	var acc domain.GlAccount

	err := r.pool.QueryRow(ctx,
		`SELECT id, account_class_id, name FROM gl_accounts WHERE id = $1`, id).Scan(
		&acc.ID,
		&acc.AccountClassID,
		&acc.Name,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrGlAccountNotFound
		}

		return nil, err
	}

	return &acc, nil
}

// GetClass retrieves a GL account classification node by ID.
func (r *GlAccountRepository) GetClass(ctx context.Context, id string) (*domain.GlAccountClass, error) {
	var (
		class         domain.GlAccountClass
		parentClassID pgtype.Text
	)

	err := r.pool.QueryRow(ctx,
		`SELECT id, parent_class_id, name FROM gl_account_classes WHERE id = $1`, id).Scan(
		&class.ID,
		&parentClassID,
		&class.Name,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrGlAccountClassNotFound
		}

		return nil, err
	}

	class.ParentClassID = textToStringPtr(parentClassID)

	return &class, nil
}
