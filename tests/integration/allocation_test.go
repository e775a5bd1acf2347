package integration

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/iho/finacct/internal/adapter/http/dto"
	"github.com/iho/finacct/internal/domain"
	"github.com/iho/finacct/tests/testutil"
)

func TestListUnappliedInvoices(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	ctx := context.Background()
	testDB := testutil.NewTestDB(t)
	defer testDB.Cleanup()
	testDB.TruncateAll(ctx)

	router := newTestRouter(t, testDB)

	payment := testDB.CreateTestPayment(ctx, domain.PaymentStatusReceived,
		decimal.RequireFromString("100"), "USD", "buyer-1", "seller-1")

	// The candidate mirrors the payment's party pair.
	candidate := testDB.CreateTestInvoice(ctx, domain.InvoiceStatusReady,
		decimal.RequireFromString("40"), "USD", "seller-1", "buyer-1")

	// A non-matching invoice must not show up.
	testDB.CreateTestInvoice(ctx, domain.InvoiceStatusReady,
		decimal.RequireFromString("40"), "USD", "someone-else", "buyer-1")

	r := httptest.NewRequest(http.MethodGet, "/api/v1/payments/"+payment.ID+"/unapplied-invoices", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, r)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d: %s", http.StatusOK, w.Code, w.Body.String())
	}

	var resp dto.AllocationResultResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to parse response: %v", err)
	}

	if len(resp.Invoices) != 1 {
		t.Fatalf("expected one candidate invoice, got %+v", resp.Invoices)
	}
	proposal := resp.Invoices[0]
	if proposal.Invoice.ID != candidate.ID {
		t.Fatalf("expected candidate %s, got %s", candidate.ID, proposal.Invoice.ID)
	}
	if !proposal.AmountToApply.Equal(decimal.RequireFromString("40")) {
		t.Fatalf("expected proposal capped at the invoice total, got %s", proposal.AmountToApply)
	}
}

func TestListUnappliedInvoicesUnknownPayment(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	ctx := context.Background()
	testDB := testutil.NewTestDB(t)
	defer testDB.Cleanup()
	testDB.TruncateAll(ctx)

	router := newTestRouter(t, testDB)

	r := httptest.NewRequest(http.MethodGet, "/api/v1/payments/does-not-exist/unapplied-invoices", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, r)

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for unknown payment, got %d", w.Code)
	}
}
