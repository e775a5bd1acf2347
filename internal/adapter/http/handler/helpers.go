package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/iho/finacct/internal/adapter/http/dto"
	"github.com/iho/finacct/internal/domain"
)

// writeJSON writes a JSON response.
func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// writeError writes an error response.
func writeError(w http.ResponseWriter, status int, message, details string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(dto.ErrorResponse{
		Error:   message,
		Message: details,
	})
}

// mapDomainError maps domain errors to HTTP status codes.
func mapDomainError(err error) int {
	switch {
	case errors.Is(err, domain.ErrPaymentNotFound),
		errors.Is(err, domain.ErrInvoiceNotFound),
		errors.Is(err, domain.ErrFinAccountNotFound),
		errors.Is(err, domain.ErrGlAccountNotFound),
		errors.Is(err, domain.ErrFinAccountTransNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrFinAccountFrozen),
		errors.Is(err, domain.ErrFinAccountCancelled),
		errors.Is(err, domain.ErrPaymentAlreadyLinked),
		errors.Is(err, domain.ErrPaymentWrongStatus),
		errors.Is(err, domain.ErrGroupRequiresReceived):
		return http.StatusConflict
	case errors.Is(err, domain.ErrNoPaymentIDs),
		errors.Is(err, domain.ErrInvalidAmount),
		errors.Is(err, domain.ErrAmountTooSmall),
		errors.Is(err, domain.ErrAmountTooLarge),
		errors.Is(err, domain.ErrInvalidIDFormat),
		errors.Is(err, domain.ErrNegativeScale):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrGlPostingFailed),
		errors.Is(err, domain.ErrPaymentUpdateFailed),
		errors.Is(err, domain.ErrPaymentGroupFailed):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
