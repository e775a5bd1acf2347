package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/iho/finacct/internal/adapter/http/dto"
	"github.com/iho/finacct/internal/usecase"
)

// FinAccountHandler handles financial account transaction HTTP requests.
type FinAccountHandler struct {
	finAccountUC *usecase.FinAccountUseCase
}

// NewFinAccountHandler creates a new FinAccountHandler.
func NewFinAccountHandler(finAccountUC *usecase.FinAccountUseCase) *FinAccountHandler {
	return &FinAccountHandler{finAccountUC: finAccountUC}
}

// DepositOrWithdraw turns a batch of payments into transactions on the
// account.
func (h *FinAccountHandler) DepositOrWithdraw(w http.ResponseWriter, r *http.Request) {
	finAccountID := chi.URLParam(r, "id")
	if finAccountID == "" {
		writeError(w, http.StatusBadRequest, "missing financial account ID", "")
		return
	}

	var req dto.DepositWithdrawRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	result, err := h.finAccountUC.DepositOrWithdraw(r.Context(), req.ToUseCaseInput(finAccountID))
	if err != nil {
		status := mapDomainError(err)
		writeError(w, status, "failed to process payments", err.Error())

		return
	}

	writeJSON(w, http.StatusCreated, dto.DepositWithdrawFromResult(result))
}

// CreateTrans creates a single validated transaction on the account.
func (h *FinAccountHandler) CreateTrans(w http.ResponseWriter, r *http.Request) {
	finAccountID := chi.URLParam(r, "id")
	if finAccountID == "" {
		writeError(w, http.StatusBadRequest, "missing financial account ID", "")
		return
	}

	var req dto.CreateFinAccountTransRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	transID, err := h.finAccountUC.CreateTransValidated(r.Context(), req.ToUseCaseInput(finAccountID))
	if err != nil {
		status := mapDomainError(err)
		writeError(w, status, "failed to create transaction", err.Error())

		return
	}

	writeJSON(w, http.StatusCreated, map[string]string{"fin_account_trans_id": transID})
}

// GetTrans retrieves a transaction by ID.
func (h *FinAccountHandler) GetTrans(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing transaction ID", "")
		return
	}

	trans, err := h.finAccountUC.GetTrans(r.Context(), id)
	if err != nil {
		status := mapDomainError(err)
		writeError(w, status, "failed to get transaction", err.Error())

		return
	}

	writeJSON(w, http.StatusOK, dto.FinAccountTransFromDomain(trans))
}
