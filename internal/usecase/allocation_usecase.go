package usecase

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/finacct/internal/domain"
	"github.com/iho/finacct/internal/infrastructure/metrics"
)

// AllocationUseCase matches payments against open invoices: it proposes
// how much of a payment can be applied to each candidate invoice, and it
// moves an invoice to paid once enough consistent applications cover its
// total. Committing a proposed application is a separate external
// operation.
type AllocationUseCase struct {
	txManager   TransactionManager
	paymentRepo PaymentRepository
	appRepo     PaymentApplicationRepository
	invoiceRepo InvoiceRepository
	calc        InvoiceCalculator
	classifier  PaymentClassifier
	pending     PendingPayments
	outboxRepo  OutboxRepository
	seqGen      SequenceGenerator
	metrics     *metrics.Metrics
}

// NewAllocationUseCase creates a new AllocationUseCase. pending and
// metrics are optional.
func NewAllocationUseCase(
	txManager TransactionManager,
	paymentRepo PaymentRepository,
	appRepo PaymentApplicationRepository,
	invoiceRepo InvoiceRepository,
	calc InvoiceCalculator,
	classifier PaymentClassifier,
	pending PendingPayments,
	outboxRepo OutboxRepository,
	seqGen SequenceGenerator,
	m *metrics.Metrics,
) *AllocationUseCase {
	return &AllocationUseCase{
		txManager:   txManager,
		paymentRepo: paymentRepo,
		appRepo:     appRepo,
		invoiceRepo: invoiceRepo,
		calc:        calc,
		classifier:  classifier,
		pending:     pending,
		outboxRepo:  outboxRepo,
		seqGen:      seqGen,
		metrics:     m,
	}
}

// ProposedAllocation is an advisory allocation of part of a payment toward
// one invoice. AmountApplied is what earlier applications already cover;
// AmountToApply is the proposal for this payment.
type ProposedAllocation struct {
	Invoice       *domain.Invoice
	AmountApplied decimal.Decimal
	AmountToApply decimal.Decimal
}

// InvoiceAllocationResult carries the two independently computed candidate
// sets: invoices in the payment's nominal currency and invoices in its
// actual settlement currency.
type InvoiceAllocationResult struct {
	Invoices              []ProposedAllocation
	InvoicesOtherCurrency []ProposedAllocation
}

// ListUnappliedInvoices finds the open invoices a payment could still be
// applied to. Candidates mirror the payment's party pair, are in an open
// status, and match the payment's nominal currency (primary set) or its
// actual settlement currency (secondary set). Within one set, every
// invoice's proposed amount is capped by the same total remaining on the
// payment; the cap is deliberately not decremented from invoice to
// invoice, because this is a listing of possibilities, not a committed
// allocation.
func (uc *AllocationUseCase) ListUnappliedInvoices(ctx context.Context, paymentID string) (*InvoiceAllocationResult, error) {
	payment, err := uc.paymentRepo.GetByID(ctx, paymentID)
	if err != nil {
		return nil, err
	}

	apps, err := uc.appRepo.ListByPayment(ctx, paymentID)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	result := &InvoiceAllocationResult{}

	// The invoice's biller is the payment's payee and the billed party
	// the payer.
	query := OpenInvoiceQuery{
		PartyIDFrom: payment.PartyIDTo,
		PartyID:     payment.PartyIDFrom,
	}

	query.Currency = payment.Currency
	result.Invoices, err = uc.proposeForCurrency(ctx, query, payment, apps, now, false)
	if err != nil {
		return nil, err
	}

	if payment.ActualCurrency != "" && payment.ActualCurrency != payment.Currency {
		query.Currency = payment.ActualCurrency
		result.InvoicesOtherCurrency, err = uc.proposeForCurrency(ctx, query, payment, apps, now, true)
		if err != nil {
			return nil, err
		}
	}

	if uc.metrics != nil {
		uc.metrics.AllocationListings.Inc()
	}

	return result, nil
}

func (uc *AllocationUseCase) proposeForCurrency(
	ctx context.Context,
	query OpenInvoiceQuery,
	payment *domain.Payment,
	apps []*domain.PaymentApplication,
	now time.Time,
	actual bool,
) ([]ProposedAllocation, error) {
	paymentAmount := payment.Amount
	if actual && payment.ActualAmount != nil {
		paymentAmount = *payment.ActualAmount
	}

	paymentRemaining := paymentAmount.Sub(domain.AppliedTotal(apps, actual))
	if paymentRemaining.LessThanOrEqual(decimal.Zero) {
		return nil, nil
	}

	invoices, err := uc.invoiceRepo.ListOpen(ctx, query)
	if err != nil {
		return nil, err
	}

	var proposals []ProposedAllocation
	for _, invoice := range invoices {
		total, err := uc.calc.Total(ctx, invoice.ID, actual)
		if err != nil {
			return nil, err
		}

		applied, err := uc.calc.Applied(ctx, invoice.ID, now, actual)
		if err != nil {
			return nil, err
		}

		invoiceRemaining := total.Sub(applied)
		if invoiceRemaining.LessThanOrEqual(decimal.Zero) {
			continue
		}

		proposals = append(proposals, ProposedAllocation{
			Invoice:       invoice,
			AmountApplied: applied,
			AmountToApply: decimal.Min(paymentRemaining, invoiceRemaining),
		})
	}

	return proposals, nil
}

// ReconcileInvoicePayments moves an invoice from ready to paid once its
// applications cover its total. Only applications whose payment status is
// consistent with the payment's parent type count toward the threshold: a
// received payment must be a receipt, a sent payment a disbursement.
// Inconsistent applications stay attached to the invoice but are excluded
// from the paid total. The paid date, however, is the latest payment
// effective date across ALL applications, filtered or not.
func (uc *AllocationUseCase) ReconcileInvoicePayments(ctx context.Context, invoiceID string) error {
	invoice, err := uc.invoiceRepo.GetByID(ctx, invoiceID)
	if err != nil {
		return err
	}

	if invoice.Status != domain.InvoiceStatusReady {
		return nil
	}

	apps, err := uc.appRepo.ListByInvoice(ctx, invoiceID)
	if err != nil {
		return err
	}
	if len(apps) == 0 {
		return nil
	}

	var filtered []*domain.PaymentApplication
	var latestPaymentDate time.Time

	for _, app := range apps {
		payment, err := uc.resolvePayment(ctx, app.PaymentID)
		if err != nil {
			return err
		}

		if payment.EffectiveDate.After(latestPaymentDate) {
			latestPaymentDate = payment.EffectiveDate
		}

		parentType, err := uc.classifier.ParentType(ctx, payment.ID)
		if err != nil {
			return err
		}

		consistent := (payment.Status == domain.PaymentStatusReceived && parentType == domain.PaymentParentReceipt) ||
			(payment.Status == domain.PaymentStatusSent && parentType == domain.PaymentParentDisbursement)
		if consistent {
			filtered = append(filtered, app)
		}
	}

	filteredTotal := domain.AppliedTotal(filtered, false)
	if !filteredTotal.IsPositive() {
		return nil
	}

	total, err := uc.calc.Total(ctx, invoiceID, false)
	if err != nil {
		return err
	}

	if filteredTotal.LessThan(total) {
		return nil
	}

	now := time.Now().UTC()
	if latestPaymentDate.IsZero() {
		latestPaymentDate = now
	}

	txCtx, cancel := context.WithTimeout(ctx, DefaultTransactionTimeout)
	defer cancel()

	tx, err := uc.txManager.Begin(txCtx)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(txCtx) }()

	if err := uc.invoiceRepo.MarkPaid(txCtx, tx, invoiceID, latestPaymentDate, now); err != nil {
		return err
	}

	if uc.outboxRepo != nil {
		event := &domain.OutboxEvent{
			ID:            uc.seqGen.NextSequence(SeqOutboxEvent),
			AggregateID:   invoiceID,
			AggregateType: domain.AggregateTypeInvoice,
			EventType:     domain.EventTypeInvoicePaid,
			Payload: map[string]any{
				"invoice_id": invoiceID,
				"paid_date":  latestPaymentDate.Format(time.RFC3339),
				"total":      total.String(),
			},
			CreatedAt: now,
			Published: false,
		}
		if err := uc.outboxRepo.Create(txCtx, tx, event); err != nil {
			return err
		}
	}

	if err := tx.Commit(txCtx); err != nil {
		return err
	}

	if uc.metrics != nil {
		uc.metrics.InvoicesPaid.Inc()
	}

	return nil
}

// resolvePayment prefers an in-flight uncommitted mutation of the payment
// over the persisted record.
func (uc *AllocationUseCase) resolvePayment(ctx context.Context, paymentID string) (*domain.Payment, error) {
	if uc.pending != nil {
		if payment, ok := uc.pending.Pending(paymentID); ok {
			return payment, nil
		}
	}

	return uc.paymentRepo.GetByID(ctx, paymentID)
}
