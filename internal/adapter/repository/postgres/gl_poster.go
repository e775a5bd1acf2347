package postgres

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/oklog/ulid/v2"

	"github.com/iho/finacct/internal/usecase"
)

// GlPoster implements usecase.GlPoster by queuing a posting request for
// the accounting system that owns the ledger tables. Posted ledger rows
// themselves are never written from here.
type GlPoster struct {
	pool *pgxpool.Pool
}

// NewGlPoster creates a new GlPoster.
func NewGlPoster(pool *pgxpool.Pool) *GlPoster {
	return &GlPoster{pool: pool}
}

// PostFinAccountTrans records a posting request for a financial account
// transaction against a target GL account.
func (p *GlPoster) PostFinAccountTrans(ctx context.Context, req usecase.PostGlRequest) error {
	_, err := p.pool.Exec(ctx,
		`INSERT INTO gl_posting_requests (id, fin_account_trans_id, gl_account_id, status, requested_at)
		 VALUES ($1, $2, $3, $4, $5)`,
		"GLPR-"+ulid.Make().String(),
		req.FinAccountTransID,
		req.GlAccountID,
		"requested",
		timeToPgTimestamptz(time.Now().UTC()),
	)

	return err
}
