package dto

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/finacct/internal/domain"
	"github.com/iho/finacct/internal/usecase"
)

func TestFinAccountTransFromDomain(t *testing.T) {
	now := time.Now()
	paymentID := "pay-1"
	trans := &domain.FinAccountTrans{
		ID:              "fat-1",
		FinAccountID:    "fa-1",
		Type:            domain.FinAccountTransDeposit,
		Status:          domain.FinAccountTransCreated,
		PartyID:         "party-1",
		PaymentID:       &paymentID,
		Amount:          decimal.RequireFromString("123.45"),
		TransactionDate: now,
		EntryDate:       now,
		Comments:        "initial deposit",
	}

	resp := FinAccountTransFromDomain(trans)
	if resp.ID != "fat-1" || resp.Type != "deposit" || resp.Status != "created" {
		t.Fatalf("unexpected response: %+v", resp)
	}
	if resp.PaymentID == nil || *resp.PaymentID != paymentID {
		t.Fatalf("PaymentID = %v, want %q", resp.PaymentID, paymentID)
	}
	if !resp.Amount.Equal(trans.Amount) {
		t.Fatalf("Amount = %s, want %s", resp.Amount, trans.Amount)
	}
}

func TestDepositWithdrawFromResult(t *testing.T) {
	grouped := DepositWithdrawFromResult(&usecase.DepositWithdrawResult{
		FinAccountTransID: "fat-1",
		PaymentGroupID:    "pg-1",
	})
	if grouped.FinAccountTransID != "fat-1" || grouped.PaymentGroupID != "pg-1" || grouped.TransIDs != nil {
		t.Fatalf("unexpected grouped response: %+v", grouped)
	}

	perPayment := DepositWithdrawFromResult(&usecase.DepositWithdrawResult{
		TransIDs: []string{"fat-1", "fat-2"},
	})
	if len(perPayment.TransIDs) != 2 || perPayment.FinAccountTransID != "" {
		t.Fatalf("unexpected per-payment response: %+v", perPayment)
	}
}

func TestAllocationResultFromUseCase(t *testing.T) {
	invoice := &domain.Invoice{
		ID:          "inv-1",
		Status:      domain.InvoiceStatusReady,
		Currency:    "USD",
		PartyIDFrom: "vendor",
		PartyID:     "customer",
		InvoiceDate: time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
	}

	result := AllocationResultFromUseCase(&usecase.InvoiceAllocationResult{
		Invoices: []usecase.ProposedAllocation{
			{
				Invoice:       invoice,
				AmountApplied: decimal.RequireFromString("10"),
				AmountToApply: decimal.RequireFromString("40"),
			},
		},
	})

	if len(result.Invoices) != 1 {
		t.Fatalf("expected one proposal, got %d", len(result.Invoices))
	}
	proposal := result.Invoices[0]
	if proposal.Invoice.ID != "inv-1" || proposal.Invoice.Status != "ready" {
		t.Fatalf("unexpected invoice: %+v", proposal.Invoice)
	}
	if !proposal.AmountToApply.Equal(decimal.RequireFromString("40")) {
		t.Fatalf("AmountToApply = %s, want 40", proposal.AmountToApply)
	}
	if result.InvoicesOtherCurrency != nil {
		t.Fatalf("expected empty other-currency set, got %+v", result.InvoicesOtherCurrency)
	}
}
