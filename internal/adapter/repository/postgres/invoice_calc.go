package postgres

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

// InvoiceCalculator implements usecase.InvoiceCalculator by summing
// invoice line items and payment applications in SQL. The actual flag
// switches both sums to the settlement-currency columns, falling back to
// the nominal amount for rows that never recorded one.
type InvoiceCalculator struct {
	pool *pgxpool.Pool
}

// NewInvoiceCalculator creates a new InvoiceCalculator.
func NewInvoiceCalculator(pool *pgxpool.Pool) *InvoiceCalculator {
	return &InvoiceCalculator{pool: pool}
}

// Total computes the invoice total from its line items.
func (c *InvoiceCalculator) Total(ctx context.Context, invoiceID string, actual bool) (decimal.Decimal, error) {
	column := `amount`
	if actual {
		column = `COALESCE(amount_actual, amount)`
	}

	var total pgtype.Numeric
	err := c.pool.QueryRow(ctx,
		`SELECT COALESCE(SUM(`+column+`), 0)
		 FROM invoice_items
		 WHERE invoice_id = $1`, invoiceID).Scan(&total)
	if err != nil {
		return decimal.Zero, err
	}

	return numericToDecimal(total), nil
}

// Applied computes how much of the invoice is covered by applications
// created up to asOf.
func (c *InvoiceCalculator) Applied(ctx context.Context, invoiceID string, asOf time.Time, actual bool) (decimal.Decimal, error) {
	column := `amount_applied`
	if actual {
		column = `COALESCE(amount_applied_actual, amount_applied)`
	}

	var applied pgtype.Numeric
	err := c.pool.QueryRow(ctx,
		`SELECT COALESCE(SUM(`+column+`), 0)
		 FROM payment_applications
		 WHERE invoice_id = $1 AND created_at <= $2`,
		invoiceID, timeToPgTimestamptz(asOf)).Scan(&applied)
	if err != nil {
		return decimal.Zero, err
	}

	return numericToDecimal(applied), nil
}
