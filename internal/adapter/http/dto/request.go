package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/finacct/internal/domain"
	"github.com/iho/finacct/internal/usecase"
)

// DepositWithdrawRequest represents a request to turn a batch of payments
// into financial account transactions.
type DepositWithdrawRequest struct {
	PaymentIDs            []string `json:"payment_ids"`
	GroupInOneTransaction string   `json:"group_in_one_transaction,omitempty"`
}

// ToUseCaseInput converts to use case input.
func (r *DepositWithdrawRequest) ToUseCaseInput(finAccountID string) usecase.DepositWithdrawInput {
	return usecase.DepositWithdrawInput{
		FinAccountID:          finAccountID,
		PaymentIDs:            r.PaymentIDs,
		GroupInOneTransaction: r.GroupInOneTransaction,
	}
}

// CreateFinAccountTransRequest represents a request to create a single
// financial account transaction.
type CreateFinAccountTransRequest struct {
	Type            string          `json:"type"`
	PartyID         string          `json:"party_id,omitempty"`
	PaymentID       *string         `json:"payment_id,omitempty"`
	Amount          decimal.Decimal `json:"amount"`
	TransactionDate *time.Time      `json:"transaction_date,omitempty"`
	Comments        string          `json:"comments,omitempty"`
	GlAccountID     string          `json:"gl_account_id,omitempty"`
}

// ToUseCaseInput converts to use case input.
func (r *CreateFinAccountTransRequest) ToUseCaseInput(finAccountID string) usecase.CreateTransValidatedInput {
	input := usecase.CreateTransValidatedInput{
		CreateTransInput: usecase.CreateTransInput{
			FinAccountID: finAccountID,
			Type:         domain.FinAccountTransType(r.Type),
			PartyID:      r.PartyID,
			PaymentID:    r.PaymentID,
			Amount:       r.Amount,
			Comments:     r.Comments,
		},
		GlAccountID: r.GlAccountID,
	}
	if r.TransactionDate != nil {
		input.TransactionDate = *r.TransactionDate
	}
	return input
}

// RateRequest carries the payment application a settlement rate is derived
// for.
type RateRequest struct {
	PaymentID           string           `json:"payment_id"`
	InvoiceID           string           `json:"invoice_id"`
	AmountApplied       decimal.Decimal  `json:"amount_applied"`
	AmountAppliedActual *decimal.Decimal `json:"amount_applied_actual,omitempty"`
}

// ToApplication converts to a domain payment application.
func (r *RateRequest) ToApplication() *domain.PaymentApplication {
	return &domain.PaymentApplication{
		PaymentID:           r.PaymentID,
		InvoiceID:           r.InvoiceID,
		AmountApplied:       r.AmountApplied,
		AmountAppliedActual: r.AmountAppliedActual,
	}
}
