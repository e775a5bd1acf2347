package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/finacct/internal/domain"
	"github.com/iho/finacct/internal/usecase"
)

// FinAccountTransResponse represents a financial account transaction in API
// responses.
type FinAccountTransResponse struct {
	ID              string          `json:"id"`
	FinAccountID    string          `json:"fin_account_id"`
	Type            string          `json:"type"`
	Status          string          `json:"status"`
	PartyID         string          `json:"party_id"`
	PaymentID       *string         `json:"payment_id,omitempty"`
	Amount          decimal.Decimal `json:"amount"`
	TransactionDate time.Time       `json:"transaction_date"`
	EntryDate       time.Time       `json:"entry_date"`
	Comments        string          `json:"comments,omitempty"`
}

// FinAccountTransFromDomain converts a domain transaction to a response.
func FinAccountTransFromDomain(t *domain.FinAccountTrans) *FinAccountTransResponse {
	return &FinAccountTransResponse{
		ID:              t.ID,
		FinAccountID:    t.FinAccountID,
		Type:            string(t.Type),
		Status:          string(t.Status),
		PartyID:         t.PartyID,
		PaymentID:       t.PaymentID,
		Amount:          t.Amount,
		TransactionDate: t.TransactionDate,
		EntryDate:       t.EntryDate,
		Comments:        t.Comments,
	}
}

// DepositWithdrawResponse reports the ids created by a deposit/withdraw
// batch.
type DepositWithdrawResponse struct {
	FinAccountTransID string   `json:"fin_account_trans_id,omitempty"`
	PaymentGroupID    string   `json:"payment_group_id,omitempty"`
	TransIDs          []string `json:"fin_account_trans_ids,omitempty"`
}

// DepositWithdrawFromResult converts a use case result to a response.
func DepositWithdrawFromResult(r *usecase.DepositWithdrawResult) *DepositWithdrawResponse {
	return &DepositWithdrawResponse{
		FinAccountTransID: r.FinAccountTransID,
		PaymentGroupID:    r.PaymentGroupID,
		TransIDs:          r.TransIDs,
	}
}

// InvoiceResponse represents an invoice in API responses.
type InvoiceResponse struct {
	ID          string     `json:"id"`
	Status      string     `json:"status"`
	Currency    string     `json:"currency"`
	PartyIDFrom string     `json:"party_id_from"`
	PartyID     string     `json:"party_id"`
	InvoiceDate time.Time  `json:"invoice_date"`
	PaidDate    *time.Time `json:"paid_date,omitempty"`
}

// InvoiceFromDomain converts a domain invoice to a response.
func InvoiceFromDomain(i *domain.Invoice) *InvoiceResponse {
	return &InvoiceResponse{
		ID:          i.ID,
		Status:      string(i.Status),
		Currency:    i.Currency,
		PartyIDFrom: i.PartyIDFrom,
		PartyID:     i.PartyID,
		InvoiceDate: i.InvoiceDate,
		PaidDate:    i.PaidDate,
	}
}

// ProposedAllocationResponse pairs an open invoice with the amount a
// payment could still apply to it.
type ProposedAllocationResponse struct {
	Invoice       *InvoiceResponse `json:"invoice"`
	AmountApplied decimal.Decimal  `json:"amount_applied"`
	AmountToApply decimal.Decimal  `json:"amount_to_apply"`
}

// AllocationResultResponse carries both candidate invoice sets for a
// payment.
type AllocationResultResponse struct {
	Invoices              []*ProposedAllocationResponse `json:"invoices"`
	InvoicesOtherCurrency []*ProposedAllocationResponse `json:"invoices_other_currency,omitempty"`
}

// AllocationResultFromUseCase converts a use case result to a response.
func AllocationResultFromUseCase(r *usecase.InvoiceAllocationResult) *AllocationResultResponse {
	return &AllocationResultResponse{
		Invoices:              proposalsFromUseCase(r.Invoices),
		InvoicesOtherCurrency: proposalsFromUseCase(r.InvoicesOtherCurrency),
	}
}

func proposalsFromUseCase(proposals []usecase.ProposedAllocation) []*ProposedAllocationResponse {
	if len(proposals) == 0 {
		return nil
	}
	result := make([]*ProposedAllocationResponse, len(proposals))
	for i, p := range proposals {
		result[i] = &ProposedAllocationResponse{
			Invoice:       InvoiceFromDomain(p.Invoice),
			AmountApplied: p.AmountApplied,
			AmountToApply: p.AmountToApply,
		}
	}
	return result
}

// RateResponse reports a derived settlement exchange rate.
type RateResponse struct {
	Rate decimal.Decimal `json:"rate"`
}

// ClassCheckResponse reports whether a GL account belongs to a class.
type ClassCheckResponse struct {
	GlAccountID string `json:"gl_account_id"`
	ClassID     string `json:"class_id"`
	IsOfClass   bool   `json:"is_of_class"`
}

// DebitCheckResponse reports whether a GL account is debit-natured.
type DebitCheckResponse struct {
	GlAccountID string `json:"gl_account_id"`
	IsDebit     bool   `json:"is_debit"`
}

// ErrorResponse represents an error in API responses.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
