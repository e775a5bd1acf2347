package usecase

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/finacct/internal/domain"
)

// PaymentRepository defines data access for payments.
type PaymentRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Payment, error)
	GetByIDs(ctx context.Context, ids []string) ([]*domain.Payment, error)
}

// PaymentApplicationRepository defines data access for payment applications.
type PaymentApplicationRepository interface {
	ListByPayment(ctx context.Context, paymentID string) ([]*domain.PaymentApplication, error)
	ListByInvoice(ctx context.Context, invoiceID string) ([]*domain.PaymentApplication, error)
}

// OpenInvoiceQuery selects open invoices whose party pair mirrors a
// payment's payer/payee and whose currency matches.
type OpenInvoiceQuery struct {
	PartyIDFrom string
	PartyID     string
	Currency    string
}

// InvoiceRepository defines data access for invoices. ListOpen returns
// invoices in one of the open statuses, ordered by invoice date ascending.
type InvoiceRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Invoice, error)
	ListOpen(ctx context.Context, q OpenInvoiceQuery) ([]*domain.Invoice, error)
	MarkPaid(ctx context.Context, tx Transaction, id string, paidDate, updatedAt time.Time) error
}

// FinAccountRepository defines data access for financial accounts.
type FinAccountRepository interface {
	GetByID(ctx context.Context, id string) (*domain.FinAccount, error)
}

// FinAccountTransRepository defines data access for financial account
// transactions.
type FinAccountTransRepository interface {
	Create(ctx context.Context, tx Transaction, trans *domain.FinAccountTrans) error
	GetByID(ctx context.Context, id string) (*domain.FinAccountTrans, error)
}

// LedgerEntryFilter narrows a ledger entry line lookup to a fixed account
// type tag, debit/credit flag and transaction type tag, joined on an
// invoice or payment id.
type LedgerEntryFilter struct {
	GlAccountTypeID  string
	DebitCreditFlag  string
	AcctgTransTypeID string
	InvoiceID        string
	PaymentID        string
}

// LedgerRepository reads posted ledger entry lines. FindEntry is a point
// lookup: when several lines match the filter, the first in the store's
// natural ordering wins. Returns (nil, nil) when nothing matches.
type LedgerRepository interface {
	FindEntry(ctx context.Context, f LedgerEntryFilter) (*domain.AcctgTransEntry, error)
}

// GlAccountRepository resolves GL accounts and their classification nodes.
// GetAccount reports domain.ErrGlAccountNotFound for an absent account;
// GetClass reports domain.ErrGlAccountClassNotFound for an absent class.
type GlAccountRepository interface {
	GetAccount(ctx context.Context, id string) (*domain.GlAccount, error)
	GetClass(ctx context.Context, id string) (*domain.GlAccountClass, error)
}

// OutboxRepository defines data access for outbox events.
type OutboxRepository interface {
	Create(ctx context.Context, tx Transaction, event *domain.OutboxEvent) error
	GetUnpublished(ctx context.Context, limit int) ([]*domain.OutboxEvent, error)
	MarkPublished(ctx context.Context, id string, publishedAt time.Time) error
	GetByAggregate(ctx context.Context, aggregateType, aggregateID string, limit, offset int) ([]*domain.OutboxEvent, error)
	DeletePublished(ctx context.Context, before time.Time) error
}

// AuditRepository defines data access for audit logs.
type AuditRepository interface {
	Create(ctx context.Context, log *domain.AuditLog) error
	CreateTx(ctx context.Context, tx Transaction, log *domain.AuditLog) error
	List(ctx context.Context, filter domain.AuditFilter) ([]*domain.AuditLog, error)
	GetByResourceID(ctx context.Context, resourceType, resourceID string) ([]*domain.AuditLog, error)
}

// Transaction represents a database transaction.
type Transaction interface {
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}

// TransactionManager handles transaction lifecycle.
type TransactionManager interface {
	Begin(ctx context.Context) (Transaction, error)
}

// SequenceGenerator hands out ids for new entities, namespaced by entity
// name. Sequence generation itself lives outside this core.
type SequenceGenerator interface {
	NextSequence(entity string) string
}

// UpdatePaymentInput carries a payment mutation request to the external
// payment store.
type UpdatePaymentInput struct {
	PaymentID         string
	Status            domain.PaymentStatus
	FinAccountTransID *string
}

// PaymentUpdater applies payment mutations through the external payment
// store. A nil payment without an error also counts as a failed update.
type PaymentUpdater interface {
	UpdatePayment(ctx context.Context, tx Transaction, input UpdatePaymentInput) (*domain.Payment, error)
}

// PaymentGroupCreator batches processed payments into a payment group.
// An empty id without an error counts as a failed creation.
type PaymentGroupCreator interface {
	CreatePaymentGroup(ctx context.Context, tx Transaction, paymentIDs []string) (string, error)
}

// PostGlRequest asks the GL-posting collaborator to post a financial
// account transaction against a target GL account.
type PostGlRequest struct {
	FinAccountTransID string
	GlAccountID       string
}

// GlPoster posts financial account transactions to the general ledger.
type GlPoster interface {
	PostFinAccountTrans(ctx context.Context, req PostGlRequest) error
}

// InvoiceCalculator computes invoice totals and applied amounts from line
// items held by the external invoice store. The actual flag switches the
// computation to the settlement currency.
type InvoiceCalculator interface {
	Total(ctx context.Context, invoiceID string, actual bool) (decimal.Decimal, error)
	Applied(ctx context.Context, invoiceID string, asOf time.Time, actual bool) (decimal.Decimal, error)
}

// PaymentClassifier resolves a payment's parent type (receipt vs.
// disbursement) from the payment type hierarchy.
type PaymentClassifier interface {
	ParentType(ctx context.Context, paymentID string) (string, error)
}

// PendingPayments exposes not-yet-committed payment mutations of the
// current unit of work, so reconciliation reads its own writes before
// falling back to the persisted record.
type PendingPayments interface {
	Pending(paymentID string) (*domain.Payment, bool)
}

// Cache defines caching operations.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}

// IdempotencyStore handles idempotency key storage.
type IdempotencyStore interface {
	// CheckAndSet atomically checks if key exists, sets if not.
	// Returns (exists, existingValue, error).
	CheckAndSet(ctx context.Context, key string, response []byte, ttl time.Duration) (bool, []byte, error)
	// Update updates an existing key with the final response.
	Update(ctx context.Context, key string, response []byte, ttl time.Duration) error
}
