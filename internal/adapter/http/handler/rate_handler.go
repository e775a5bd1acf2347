package handler

import (
	"encoding/json"
	"net/http"

	"github.com/iho/finacct/internal/adapter/http/dto"
	"github.com/iho/finacct/internal/usecase"
)

// RateHandler handles exchange rate derivation HTTP requests.
type RateHandler struct {
	rateUC *usecase.ExchangeRateUseCase
}

// NewRateHandler creates a new RateHandler.
func NewRateHandler(rateUC *usecase.ExchangeRateUseCase) *RateHandler {
	return &RateHandler{rateUC: rateUC}
}

// PurchaseInvoiceRate derives the settlement rate for a purchase invoice
// application.
func (h *RateHandler) PurchaseInvoiceRate(w http.ResponseWriter, r *http.Request) {
	var req dto.RateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	rate, err := h.rateUC.PurchaseInvoiceRate(r.Context(), req.ToApplication())
	if err != nil {
		status := mapDomainError(err)
		writeError(w, status, "failed to derive rate", err.Error())

		return
	}

	writeJSON(w, http.StatusOK, dto.RateResponse{Rate: rate})
}

// OutgoingPaymentRate derives the settlement rate for an outgoing payment
// application.
func (h *RateHandler) OutgoingPaymentRate(w http.ResponseWriter, r *http.Request) {
	var req dto.RateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	rate, err := h.rateUC.OutgoingPaymentRate(r.Context(), req.ToApplication())
	if err != nil {
		status := mapDomainError(err)
		writeError(w, status, "failed to derive rate", err.Error())

		return
	}

	writeJSON(w, http.StatusOK, dto.RateResponse{Rate: rate})
}
