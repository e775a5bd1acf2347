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

// LedgerRepository implements usecase.LedgerRepository against posted
// ledger transactions. This adapter only ever reads; posting happens in
// the accounting system that owns these tables.
type LedgerRepository struct {
	pool *pgxpool.Pool
}

// NewLedgerRepository creates a new LedgerRepository.
func NewLedgerRepository(pool *pgxpool.Pool) *LedgerRepository {
	return &LedgerRepository{pool: pool}
}

// FindEntry looks up a single entry line matching the filter, joining the
// transaction header for the invoice/payment link and the type tag. When
// several lines match, the oldest posted one wins. Returns (nil, nil)
// when nothing matches.
func (r *LedgerRepository) FindEntry(ctx context.Context, f usecase.LedgerEntryFilter) (*domain.AcctgTransEntry, error) {
	query := `
		SELECT e.id, e.acctg_trans_id, e.gl_account_id, e.gl_account_type_id,
		       e.debit_credit_flag, e.orig_amount, e.amount
		FROM acctg_trans_entries e
		JOIN acctg_trans t ON t.id = e.acctg_trans_id
		WHERE e.gl_account_type_id = $1
		  AND e.debit_credit_flag = $2
		  AND t.trans_type = $3
	`
	args := []any{f.GlAccountTypeID, f.DebitCreditFlag, f.AcctgTransTypeID}

	switch {
	case f.InvoiceID != "":
		query += ` AND t.invoice_id = $4`
		args = append(args, f.InvoiceID)
	case f.PaymentID != "":
		query += ` AND t.payment_id = $4`
		args = append(args, f.PaymentID)
	}

	query += ` ORDER BY t.posted_date LIMIT 1`

	var (
		entry      domain.AcctgTransEntry
		origAmount pgtype.Numeric
		amount     pgtype.Numeric
	)

	err := r.pool.QueryRow(ctx, query, args...).Scan(
		&entry.ID,
		&entry.AcctgTransID,
		&entry.GlAccountID,
		&entry.GlAccountTypeID,
		&entry.DebitCreditFlag,
		&origAmount,
		&amount,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}

		return nil, err
	}

	entry.OrigAmount = numericToDecimalPtr(origAmount)
	entry.Amount = numericToDecimalPtr(amount)

	return &entry, nil
}
