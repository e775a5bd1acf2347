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

const invoiceColumns = `
	id, status, currency, party_id_from, party_id, invoice_date,
	paid_date, created_at, updated_at
`

// InvoiceRepository implements usecase.InvoiceRepository.
type InvoiceRepository struct {
	pool *pgxpool.Pool
}

// NewInvoiceRepository creates a new InvoiceRepository.
func NewInvoiceRepository(pool *pgxpool.Pool) *InvoiceRepository {
	return &InvoiceRepository{pool: pool}
}

// GetByID retrieves an invoice by ID.
func (r *InvoiceRepository) GetByID(ctx context.Context, id string) (*domain.Invoice, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT `+invoiceColumns+` FROM invoices WHERE id = $1`, id)

	invoice, err := scanInvoice(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrInvoiceNotFound
		}

		return nil, err
	}

	return invoice, nil
}

// ListOpen retrieves open invoices for a party pair and currency, oldest
// invoice date first.
func (r *InvoiceRepository) ListOpen(ctx context.Context, q usecase.OpenInvoiceQuery) ([]*domain.Invoice, error) {
	statuses := make([]string, 0, len(domain.OpenInvoiceStatuses))
	for _, s := range domain.OpenInvoiceStatuses {
		statuses = append(statuses, string(s))
	}

	rows, err := r.pool.Query(ctx,
		`SELECT `+invoiceColumns+`
		 FROM invoices
		 WHERE party_id_from = $1 AND party_id = $2 AND currency = $3
		   AND status = ANY($4)
		 ORDER BY invoice_date`,
		q.PartyIDFrom, q.PartyID, q.Currency, statuses)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var invoices []*domain.Invoice
	for rows.Next() {
		invoice, err := scanInvoice(rows)
		if err != nil {
			return nil, err
		}
		invoices = append(invoices, invoice)
	}

	return invoices, rows.Err()
}

// MarkPaid transitions an invoice to paid within a transaction. Already
// paid invoices keep their original paid date.
func (r *InvoiceRepository) MarkPaid(ctx context.Context, tx usecase.Transaction, id string, paidDate, updatedAt time.Time) error {
	pgxTx := tx.(*Tx).PgxTx()

	tag, err := pgxTx.Exec(ctx,
		`UPDATE invoices
		 SET status = $2, paid_date = $3, updated_at = $4
		 WHERE id = $1 AND status <> $2`,
		id,
		string(domain.InvoiceStatusPaid),
		timeToPgTimestamptz(paidDate),
		timeToPgTimestamptz(updatedAt),
	)
	if err != nil {
		return err
	}

	// Zero rows means either an absent invoice or one already paid; the
	// second is fine, so verify existence only on the slow path.
	if tag.RowsAffected() == 0 {
		var exists bool
		if err := pgxTx.QueryRow(ctx,
			`SELECT EXISTS (SELECT 1 FROM invoices WHERE id = $1)`, id).Scan(&exists); err != nil {
			return err
		}
		if !exists {
			return domain.ErrInvoiceNotFound
		}
	}

	return nil
}

func scanInvoice(row pgx.Row) (*domain.Invoice, error) {
	var (
		inv         domain.Invoice
		status      string
		invoiceDate pgtype.Timestamptz
		paidDate    pgtype.Timestamptz
		createdAt   pgtype.Timestamptz
		updatedAt   pgtype.Timestamptz
	)

	err := row.Scan(
		&inv.ID,
		&status,
		&inv.Currency,
		&inv.PartyIDFrom,
		&inv.PartyID,
		&invoiceDate,
		&paidDate,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	inv.Status = domain.InvoiceStatus(status)
	inv.InvoiceDate = invoiceDate.Time
	inv.PaidDate = timestamptzToTimePtr(paidDate)
	inv.CreatedAt = createdAt.Time
	inv.UpdatedAt = updatedAt.Time

	return &inv, nil
}
