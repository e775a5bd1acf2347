package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/iho/finacct/internal/adapter/http/dto"
	"github.com/iho/finacct/internal/usecase"
)

// GlClassHandler handles GL account class HTTP requests.
type GlClassHandler struct {
	glClassUC *usecase.GlClassUseCase
}

// NewGlClassHandler creates a new GlClassHandler.
func NewGlClassHandler(glClassUC *usecase.GlClassUseCase) *GlClassHandler {
	return &GlClassHandler{glClassUC: glClassUC}
}

// CheckClass reports whether an account belongs to a class, directly or
// through its class ancestry.
func (h *GlClassHandler) CheckClass(w http.ResponseWriter, r *http.Request) {
	accountID := chi.URLParam(r, "id")
	classID := chi.URLParam(r, "classID")
	if accountID == "" || classID == "" {
		writeError(w, http.StatusBadRequest, "missing account or class ID", "")
		return
	}

	isOfClass, err := h.glClassUC.IsAccountOfClass(r.Context(), accountID, classID)
	if err != nil {
		status := mapDomainError(err)
		writeError(w, status, "failed to check account class", err.Error())

		return
	}

	writeJSON(w, http.StatusOK, dto.ClassCheckResponse{
		GlAccountID: accountID,
		ClassID:     classID,
		IsOfClass:   isOfClass,
	})
}

// CheckDebit reports whether an account is debit-natured.
func (h *GlClassHandler) CheckDebit(w http.ResponseWriter, r *http.Request) {
	accountID := chi.URLParam(r, "id")
	if accountID == "" {
		writeError(w, http.StatusBadRequest, "missing account ID", "")
		return
	}

	isDebit, err := h.glClassUC.IsDebitAccount(r.Context(), accountID)
	if err != nil {
		status := mapDomainError(err)
		writeError(w, status, "failed to check account nature", err.Error())

		return
	}

	writeJSON(w, http.StatusOK, dto.DebitCheckResponse{
		GlAccountID: accountID,
		IsDebit:     isDebit,
	})
}
