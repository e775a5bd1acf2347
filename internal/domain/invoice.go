package domain

import (
	"time"
)

// InvoiceStatus is the invoice's position in its approval workflow.
type InvoiceStatus string

const (
	InvoiceStatusInProcess InvoiceStatus = "in-process"
	InvoiceStatusApproved  InvoiceStatus = "approved"
	InvoiceStatusSent      InvoiceStatus = "sent"
	InvoiceStatusReady     InvoiceStatus = "ready"
	InvoiceStatusReceived  InvoiceStatus = "received"
	InvoiceStatusPaid      InvoiceStatus = "paid"
	InvoiceStatusCancelled InvoiceStatus = "cancelled"
)

// OpenInvoiceStatuses are the statuses an invoice may hold while payments
// can still be proposed against it.
var OpenInvoiceStatuses = []InvoiceStatus{
	InvoiceStatusApproved,
	InvoiceStatusSent,
	InvoiceStatusReady,
	InvoiceStatusReceived,
}

// Invoice is a payable/receivable document. Its total is computed
// externally from line items and never stored here. PartyIDFrom is the
// party the invoice is from (the biller), PartyID the party billed.
type Invoice struct {
	ID          string
	Status      InvoiceStatus
	Currency    string
	PartyIDFrom string
	PartyID     string
	InvoiceDate time.Time
	PaidDate    *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// IsOpen reports whether payments can still be proposed against the invoice.
func (i *Invoice) IsOpen() bool {
	for _, s := range OpenInvoiceStatuses {
		if i.Status == s {
			return true
		}
	}
	return false
}

// MarkPaid transitions the invoice to paid. The transition is monotonic:
// an invoice already paid stays paid and keeps its original paid date.
func (i *Invoice) MarkPaid(paidDate time.Time, now time.Time) {
	if i.Status == InvoiceStatusPaid {
		return
	}
	i.Status = InvoiceStatusPaid
	i.PaidDate = &paidDate
	i.UpdatedAt = now
}
