package domain

import "time"

// Event types
const (
	EventTypeFinAccountTransCreated = "finaccounttrans.created"
	EventTypePaymentStatusChanged   = "payment.status_changed"
	EventTypePaymentGroupCreated    = "paymentgroup.created"
	EventTypeInvoicePaid            = "invoice.paid"
)

// Aggregate types
const (
	AggregateTypeFinAccountTrans = "finaccounttrans"
	AggregateTypePayment         = "payment"
	AggregateTypeInvoice         = "invoice"
)

// OutboxEvent represents an event to be published
type OutboxEvent struct {
	ID            string
	AggregateID   string
	AggregateType string
	EventType     string
	Payload       map[string]any
	CreatedAt     time.Time
	PublishedAt   *time.Time
	Published     bool
}

// FinAccountTransCreatedEvent payload
type FinAccountTransCreatedEvent struct {
	FinAccountTransID string `json:"fin_account_trans_id"`
	FinAccountID      string `json:"fin_account_id"`
	Type              string `json:"type"`
	Amount            string `json:"amount"`
	PaymentID         string `json:"payment_id,omitempty"`
}

// PaymentStatusChangedEvent payload
type PaymentStatusChangedEvent struct {
	PaymentID string `json:"payment_id"`
	OldStatus string `json:"old_status"`
	NewStatus string `json:"new_status"`
}

// InvoicePaidEvent payload
type InvoicePaidEvent struct {
	InvoiceID string `json:"invoice_id"`
	PaidDate  string `json:"paid_date"`
	Total     string `json:"total"`
}
