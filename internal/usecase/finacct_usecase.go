package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/finacct/internal/domain"
	"github.com/iho/finacct/internal/infrastructure/metrics"
)

// FinAccountUseCase creates financial account transactions from payments:
// either one grouped deposit for a batch of received payments, or one
// deposit/withdrawal per payment. Created rows may additionally be posted
// to the general ledger through the GL-posting collaborator.
type FinAccountUseCase struct {
	txManager      TransactionManager
	finAccountRepo FinAccountRepository
	transRepo      FinAccountTransRepository
	paymentRepo    PaymentRepository
	paymentUpdater PaymentUpdater
	groupCreator   PaymentGroupCreator
	glPoster       GlPoster
	outboxRepo     OutboxRepository
	auditRepo      AuditRepository
	seqGen         SequenceGenerator
	pending        *PendingPaymentSet
	arithmetic     domain.ArithmeticSettings
	metrics        *metrics.Metrics
}

// NewFinAccountUseCase creates a new FinAccountUseCase. outboxRepo,
// auditRepo, pending and metrics are optional. When pending is shared with
// the allocation engine, reconciliation sees payment updates from an open
// unit of work before they commit.
func NewFinAccountUseCase(
	txManager TransactionManager,
	finAccountRepo FinAccountRepository,
	transRepo FinAccountTransRepository,
	paymentRepo PaymentRepository,
	paymentUpdater PaymentUpdater,
	groupCreator PaymentGroupCreator,
	glPoster GlPoster,
	outboxRepo OutboxRepository,
	auditRepo AuditRepository,
	seqGen SequenceGenerator,
	pending *PendingPaymentSet,
	arithmetic domain.ArithmeticSettings,
	m *metrics.Metrics,
) *FinAccountUseCase {
	return &FinAccountUseCase{
		txManager:      txManager,
		finAccountRepo: finAccountRepo,
		transRepo:      transRepo,
		paymentRepo:    paymentRepo,
		paymentUpdater: paymentUpdater,
		groupCreator:   groupCreator,
		glPoster:       glPoster,
		outboxRepo:     outboxRepo,
		auditRepo:      auditRepo,
		seqGen:         seqGen,
		pending:        pending,
		arithmetic:     arithmetic,
		metrics:        m,
	}
}

// CreateTransInput represents input for creating a financial account
// transaction.
type CreateTransInput struct {
	FinAccountID    string
	Type            domain.FinAccountTransType
	PartyID         string
	PaymentID       *string
	Amount          decimal.Decimal
	TransactionDate time.Time
	Comments        string
}

// CreateTrans creates a transaction row with no account or payment
// validation. It is the low-level primitive behind the validated
// operations and is safe only for callers that validated already.
func (uc *FinAccountUseCase) CreateTrans(ctx context.Context, tx Transaction, input CreateTransInput) (string, error) {
	now := time.Now().UTC()

	transactionDate := input.TransactionDate
	if transactionDate.IsZero() {
		transactionDate = now
	}

	trans := &domain.FinAccountTrans{
		ID:              uc.seqGen.NextSequence(SeqFinAccountTrans),
		FinAccountID:    input.FinAccountID,
		Type:            input.Type,
		Status:          domain.FinAccountTransCreated,
		PartyID:         input.PartyID,
		PaymentID:       input.PaymentID,
		Amount:          input.Amount,
		TransactionDate: transactionDate,
		EntryDate:       now,
		Comments:        input.Comments,
	}

	if err := uc.transRepo.Create(ctx, tx, trans); err != nil {
		return "", err
	}

	if uc.outboxRepo != nil {
		paymentID := ""
		if input.PaymentID != nil {
			paymentID = *input.PaymentID
		}
		event := &domain.OutboxEvent{
			ID:            uc.seqGen.NextSequence(SeqOutboxEvent),
			AggregateID:   trans.ID,
			AggregateType: domain.AggregateTypeFinAccountTrans,
			EventType:     domain.EventTypeFinAccountTransCreated,
			Payload: map[string]any{
				"fin_account_trans_id": trans.ID,
				"fin_account_id":       trans.FinAccountID,
				"type":                 string(trans.Type),
				"amount":               trans.Amount.String(),
				"payment_id":           paymentID,
			},
			CreatedAt: now,
			Published: false,
		}
		if err := uc.outboxRepo.Create(ctx, tx, event); err != nil {
			return "", err
		}
	}

	return trans.ID, nil
}

// CreateTransValidatedInput represents input for the validated create.
type CreateTransValidatedInput struct {
	CreateTransInput

	// GlAccountID, when set, requests a GL posting for the created
	// transaction.
	GlAccountID string
}

// CreateTransValidated checks the account exists and may transact, rounds
// the amount under the configured arithmetic settings, creates the
// transaction and optionally posts it to the GL. The transaction row is
// committed before posting; a posting failure fails the operation and the
// caller owns cleanup across the persistence boundary.
func (uc *FinAccountUseCase) CreateTransValidated(ctx context.Context, input CreateTransValidatedInput) (string, error) {
	if err := domain.ValidateID(input.FinAccountID); err != nil {
		return "", err
	}
	if err := domain.ValidateAmount(input.Amount); err != nil {
		return "", err
	}

	account, err := uc.finAccountRepo.GetByID(ctx, input.FinAccountID)
	if err != nil {
		return "", err
	}
	if err := account.CanTransact(); err != nil {
		return "", err
	}

	amount, err := uc.arithmetic.Round(input.Amount)
	if err != nil {
		return "", err
	}
	input.Amount = amount

	if input.PartyID == "" {
		input.PartyID = account.OwnerPartyID
	}

	txCtx, cancel := context.WithTimeout(ctx, DefaultTransactionTimeout)
	defer cancel()

	tx, err := uc.txManager.Begin(txCtx)
	if err != nil {
		return "", err
	}
	defer func() { _ = tx.Rollback(txCtx) }()

	transID, err := uc.CreateTrans(txCtx, tx, input.CreateTransInput)
	if err != nil {
		return "", err
	}

	if err := tx.Commit(txCtx); err != nil {
		return "", err
	}

	if input.GlAccountID != "" {
		err := uc.glPoster.PostFinAccountTrans(ctx, PostGlRequest{
			FinAccountTransID: transID,
			GlAccountID:       input.GlAccountID,
		})
		if err != nil {
			if uc.metrics != nil {
				uc.metrics.GlPostingErrors.Inc()
			}
			return "", fmt.Errorf("%w: %v", domain.ErrGlPostingFailed, err)
		}
		if uc.metrics != nil {
			uc.metrics.GlPostings.Inc()
		}
	}

	return transID, nil
}

// DepositWithdrawInput represents input for processing a batch of payments
// against one financial account.
type DepositWithdrawInput struct {
	FinAccountID string
	PaymentIDs   []string

	// GroupInOneTransaction, when "Y" (case-insensitive), creates a single
	// grouped deposit for the whole batch instead of one transaction per
	// payment.
	GroupInOneTransaction string
}

// DepositWithdrawResult carries the ids created by DepositOrWithdraw.
type DepositWithdrawResult struct {
	// FinAccountTransID is the single grouped deposit, grouped mode only.
	FinAccountTransID string
	// PaymentGroupID is the created payment group, grouped mode only.
	PaymentGroupID string
	// TransIDs are the per-payment transactions, per-payment mode only.
	TransIDs []string
}

// DepositOrWithdraw turns a batch of payments into financial account
// transactions. All validation happens before any write; the writes run in
// one store transaction, so a failure partway leaves nothing behind.
func (uc *FinAccountUseCase) DepositOrWithdraw(ctx context.Context, input DepositWithdrawInput) (*DepositWithdrawResult, error) {
	if len(input.PaymentIDs) == 0 {
		return nil, domain.ErrNoPaymentIDs
	}
	if err := domain.ValidateID(input.FinAccountID); err != nil {
		return nil, err
	}
	for _, id := range input.PaymentIDs {
		if err := domain.ValidateID(id); err != nil {
			return nil, fmt.Errorf("%w: payment id %q", domain.ErrInvalidIDFormat, id)
		}
	}

	account, err := uc.finAccountRepo.GetByID(ctx, input.FinAccountID)
	if err != nil {
		return nil, err
	}
	if err := account.CanTransact(); err != nil {
		return nil, err
	}

	payments, err := uc.paymentRepo.GetByIDs(ctx, input.PaymentIDs)
	if err != nil {
		return nil, err
	}
	if len(payments) != len(input.PaymentIDs) {
		return nil, fmt.Errorf("%w: expected %d payments, found %d",
			domain.ErrPaymentNotFound, len(input.PaymentIDs), len(payments))
	}

	total := decimal.Zero
	for _, payment := range payments {
		if payment.IsLinked() {
			return nil, fmt.Errorf("%w: payment %s", domain.ErrPaymentAlreadyLinked, payment.ID)
		}
		if !payment.IsDepositable() {
			return nil, fmt.Errorf("%w: payment %s has status %s",
				domain.ErrPaymentWrongStatus, payment.ID, payment.Status)
		}
		total = total.Add(payment.Amount)
	}

	grouped := strings.EqualFold(input.GroupInOneTransaction, GroupInOneTransaction)
	if grouped {
		for _, payment := range payments {
			if payment.Status != domain.PaymentStatusReceived {
				return nil, fmt.Errorf("%w: payment %s has status %s",
					domain.ErrGroupRequiresReceived, payment.ID, payment.Status)
			}
		}
	}

	txCtx, cancel := context.WithTimeout(ctx, DefaultTransactionTimeout)
	defer cancel()

	tx, err := uc.txManager.Begin(txCtx)
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback(txCtx) }()

	// In-flight payment updates registered below are only valid while this
	// unit of work is open. Drop them once it commits or rolls back.
	if uc.pending != nil {
		defer func() {
			for _, payment := range payments {
				uc.pending.Remove(payment.ID)
			}
		}()
	}

	var result *DepositWithdrawResult
	if grouped {
		result, err = uc.groupedDeposit(txCtx, tx, account, payments, total)
	} else {
		result, err = uc.perPayment(txCtx, tx, account, payments)
	}
	if err != nil {
		return nil, err
	}

	if uc.auditRepo != nil {
		uc.auditBatch(txCtx, tx, input, result)
	}

	if err := tx.Commit(txCtx); err != nil {
		return nil, err
	}

	if uc.metrics != nil {
		for _, payment := range payments {
			if payment.Status == domain.PaymentStatusReceived {
				uc.metrics.DepositsCreated.Inc()
			} else {
				uc.metrics.WithdrawalsCreated.Inc()
			}
		}
		if grouped {
			uc.metrics.PaymentGroupsCreated.Inc()
		}
	}

	return result, nil
}

// GetTrans fetches a financial account transaction by id.
func (uc *FinAccountUseCase) GetTrans(ctx context.Context, id string) (*domain.FinAccountTrans, error) {
	return uc.transRepo.GetByID(ctx, id)
}

// groupedDeposit creates one deposit transaction for the full batch total
// and a payment group tying the batch together.
func (uc *FinAccountUseCase) groupedDeposit(
	ctx context.Context,
	tx Transaction,
	account *domain.FinAccount,
	payments []*domain.Payment,
	total decimal.Decimal,
) (*DepositWithdrawResult, error) {
	amount, err := uc.arithmetic.Round(total)
	if err != nil {
		return nil, err
	}

	transID, err := uc.CreateTrans(ctx, tx, CreateTransInput{
		FinAccountID: account.ID,
		Type:         domain.FinAccountTransDeposit,
		PartyID:      account.OwnerPartyID,
		Amount:       amount,
	})
	if err != nil {
		return nil, err
	}

	paymentIDs := make([]string, 0, len(payments))
	for _, payment := range payments {
		if err := uc.confirmPayment(ctx, tx, payment, transID); err != nil {
			return nil, err
		}
		paymentIDs = append(paymentIDs, payment.ID)
	}

	groupID, err := uc.groupCreator.CreatePaymentGroup(ctx, tx, paymentIDs)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrPaymentGroupFailed, err)
	}
	if groupID == "" {
		return nil, domain.ErrPaymentGroupFailed
	}

	return &DepositWithdrawResult{
		FinAccountTransID: transID,
		PaymentGroupID:    groupID,
	}, nil
}

// perPayment creates one transaction per payment, deposit for received and
// withdrawal for sent.
func (uc *FinAccountUseCase) perPayment(
	ctx context.Context,
	tx Transaction,
	account *domain.FinAccount,
	payments []*domain.Payment,
) (*DepositWithdrawResult, error) {
	transIDs := make([]string, 0, len(payments))

	for _, payment := range payments {
		transType := domain.FinAccountTransWithdrawal
		if payment.Status == domain.PaymentStatusReceived {
			transType = domain.FinAccountTransDeposit
		}

		amount, err := uc.arithmetic.Round(payment.Amount)
		if err != nil {
			return nil, err
		}

		paymentID := payment.ID
		transID, err := uc.CreateTrans(ctx, tx, CreateTransInput{
			FinAccountID: account.ID,
			Type:         transType,
			PartyID:      account.OwnerPartyID,
			PaymentID:    &paymentID,
			Amount:       amount,
		})
		if err != nil {
			return nil, err
		}

		if err := uc.confirmPayment(ctx, tx, payment, transID); err != nil {
			return nil, err
		}

		transIDs = append(transIDs, transID)
	}

	return &DepositWithdrawResult{TransIDs: transIDs}, nil
}

// confirmPayment moves a processed payment to confirmed and links it to
// its financial account transaction through the external payment store.
func (uc *FinAccountUseCase) confirmPayment(ctx context.Context, tx Transaction, payment *domain.Payment, transID string) error {
	updated, err := uc.paymentUpdater.UpdatePayment(ctx, tx, UpdatePaymentInput{
		PaymentID:         payment.ID,
		Status:            domain.PaymentStatusConfirmed,
		FinAccountTransID: &transID,
	})
	if err != nil {
		return fmt.Errorf("%w: payment %s: %v", domain.ErrPaymentUpdateFailed, payment.ID, err)
	}
	if updated == nil {
		return fmt.Errorf("%w: payment %s", domain.ErrPaymentUpdateFailed, payment.ID)
	}

	if uc.pending != nil {
		uc.pending.Put(updated)
	}

	if uc.outboxRepo != nil {
		event := &domain.OutboxEvent{
			ID:            uc.seqGen.NextSequence(SeqOutboxEvent),
			AggregateID:   payment.ID,
			AggregateType: domain.AggregateTypePayment,
			EventType:     domain.EventTypePaymentStatusChanged,
			Payload: map[string]any{
				"payment_id": payment.ID,
				"old_status": string(payment.Status),
				"new_status": string(domain.PaymentStatusConfirmed),
			},
			CreatedAt: time.Now().UTC(),
			Published: false,
		}
		if err := uc.outboxRepo.Create(ctx, tx, event); err != nil {
			return err
		}
	}

	return nil
}

func (uc *FinAccountUseCase) auditBatch(ctx context.Context, tx Transaction, input DepositWithdrawInput, result *DepositWithdrawResult) {
	userID := "system"
	if user, ok := domain.UserFromContext(ctx); ok {
		userID = user.ID
	}

	resourceID := result.FinAccountTransID
	if resourceID == "" && len(result.TransIDs) > 0 {
		resourceID = result.TransIDs[0]
	}

	log := &domain.AuditLog{
		ID:           uc.seqGen.NextSequence(SeqAuditLog),
		UserID:       userID,
		Action:       string(domain.AuditActionDepositWithdraw),
		ResourceType: "finaccounttrans",
		ResourceID:   resourceID,
		AfterState:   domain.MarshalState(result),
		Status:       string(domain.AuditStatusSuccess),
		CreatedAt:    time.Now().UTC(),
	}

	// Audit must not fail the workflow.
	_ = uc.auditRepo.CreateTx(ctx, tx, log)
}
