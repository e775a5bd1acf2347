package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentStatus is the payment's position in its status workflow. Statuses
// outside the named set pass through this core untouched.
type PaymentStatus string

const (
	PaymentStatusSent      PaymentStatus = "sent"
	PaymentStatusReceived  PaymentStatus = "received"
	PaymentStatusConfirmed PaymentStatus = "confirmed"
	PaymentStatusCancelled PaymentStatus = "cancelled"
)

// Payment parent types as reported by the payment classifier.
const (
	PaymentParentReceipt      = "RECEIPT"
	PaymentParentDisbursement = "DISBURSEMENT"
)

// Payment is a money movement between two parties. ActualAmount and
// ActualCurrency are set when the settlement currency differs from the
// nominal one. FinAccountTransID is set at most once; a linked payment can
// never be linked to another financial account transaction.
type Payment struct {
	ID                string
	Status            PaymentStatus
	Amount            decimal.Decimal
	Currency          string
	ActualAmount      *decimal.Decimal
	ActualCurrency    string
	FinAccountTransID *string
	PartyIDFrom       string
	PartyIDTo         string
	EffectiveDate     time.Time
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// IsLinked reports whether the payment is already tied to a financial
// account transaction.
func (p *Payment) IsLinked() bool {
	return p.FinAccountTransID != nil && *p.FinAccountTransID != ""
}

// IsDepositable reports whether the payment may enter a deposit/withdraw
// workflow at all.
func (p *Payment) IsDepositable() bool {
	return p.Status == PaymentStatusSent || p.Status == PaymentStatusReceived
}

// SettlementAmount returns the actual-currency amount when one is recorded,
// else the nominal amount.
func (p *Payment) SettlementAmount() decimal.Decimal {
	if p.ActualAmount != nil {
		return *p.ActualAmount
	}
	return p.Amount
}

// PaymentApplication allocates part of a payment's amount toward a single
// invoice. AmountAppliedActual carries the same allocation expressed in the
// payment's settlement currency when that differs from the nominal one.
type PaymentApplication struct {
	ID                  string
	PaymentID           string
	InvoiceID           string
	AmountApplied       decimal.Decimal
	AmountAppliedActual *decimal.Decimal
	CreatedAt           time.Time
}

// Applied returns the applied amount in nominal or actual-currency terms.
// An application without a recorded actual amount contributes its nominal
// amount either way.
func (a *PaymentApplication) Applied(actual bool) decimal.Decimal {
	if actual && a.AmountAppliedActual != nil {
		return *a.AmountAppliedActual
	}
	return a.AmountApplied
}

// AppliedTotal sums a payment's existing applications. The invariant that
// the total never exceeds the payment's amount is owned by the store; this
// core only reads it.
func AppliedTotal(apps []*PaymentApplication, actual bool) decimal.Decimal {
	total := decimal.Zero
	for _, app := range apps {
		total = total.Add(app.Applied(actual))
	}
	return total
}
