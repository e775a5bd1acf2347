package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/iho/finacct/internal/adapter/http/dto"
	"github.com/iho/finacct/internal/usecase"
)

// AllocationHandler handles invoice allocation HTTP requests.
type AllocationHandler struct {
	allocationUC *usecase.AllocationUseCase
}

// NewAllocationHandler creates a new AllocationHandler.
func NewAllocationHandler(allocationUC *usecase.AllocationUseCase) *AllocationHandler {
	return &AllocationHandler{allocationUC: allocationUC}
}

// ListUnappliedInvoices lists open invoices a payment could still be
// applied to.
func (h *AllocationHandler) ListUnappliedInvoices(w http.ResponseWriter, r *http.Request) {
	paymentID := chi.URLParam(r, "id")
	if paymentID == "" {
		writeError(w, http.StatusBadRequest, "missing payment ID", "")
		return
	}

	result, err := h.allocationUC.ListUnappliedInvoices(r.Context(), paymentID)
	if err != nil {
		status := mapDomainError(err)
		writeError(w, status, "failed to list unapplied invoices", err.Error())

		return
	}

	writeJSON(w, http.StatusOK, dto.AllocationResultFromUseCase(result))
}

// Reconcile re-derives an invoice's paid state from its applications.
func (h *AllocationHandler) Reconcile(w http.ResponseWriter, r *http.Request) {
	invoiceID := chi.URLParam(r, "id")
	if invoiceID == "" {
		writeError(w, http.StatusBadRequest, "missing invoice ID", "")
		return
	}

	if err := h.allocationUC.ReconcileInvoicePayments(r.Context(), invoiceID); err != nil {
		status := mapDomainError(err)
		writeError(w, status, "failed to reconcile invoice", err.Error())

		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "reconciled"})
}
