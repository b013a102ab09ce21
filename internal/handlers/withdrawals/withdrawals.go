package withdrawals

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/shopspring/decimal"

	"github.com/janisar-hyder/backend/internal/domain"
	"github.com/janisar-hyder/backend/internal/dto"
	"github.com/janisar-hyder/backend/internal/service/withdrawalservice"
	"github.com/janisar-hyder/backend/pkg/auth"
	"github.com/janisar-hyder/backend/pkg/utils"
)

type Service interface {
	Request(ctx context.Context, accountID int, amount decimal.Decimal, method, address string) (*domain.Withdrawal, error)
	GetWithdrawals(ctx context.Context, accountID int) ([]domain.Withdrawal, error)
}

type WithdrawalHandler struct {
	withdrawalService Service
}

func New(withdrawalService Service) *WithdrawalHandler {
	return &WithdrawalHandler{
		withdrawalService: withdrawalService,
	}
}

// Request godoc
//
//	@Summary		Request a withdrawal
//	@Description	Create a pending withdrawal request. The amount is debited only when an admin approves it.
//	@Tags			Withdrawals
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.WithdrawalRequestDTO	true	"Withdrawal payload"
//	@Success		200		{object}	dto.WithdrawalResponseDTO	"Request created"
//	@Failure		400		{object}	utils.Response				"Invalid amount or address"
//	@Failure		401		{object}	utils.Response				"User not authorized"
//	@Failure		403		{object}	utils.Response				"KYC verification required"
//	@Failure		409		{object}	utils.Response				"A pending request already exists"
//	@Failure		500		{object}	utils.Response				"Internal server error"
//	@Router			/api/withdrawals [post]
func (h *WithdrawalHandler) Request(w http.ResponseWriter, r *http.Request) {
	accountID := r.Context().Value(auth.UserIDKey).(int)

	var req dto.WithdrawalRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	wd, err := h.withdrawalService.Request(r.Context(), accountID, decimal.NewFromFloat(req.Amount), req.Method, req.Address)
	if err != nil {
		switch {
		case errors.Is(err, withdrawalservice.ErrBelowMinimum),
			errors.Is(err, withdrawalservice.ErrInvalidAddress):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, withdrawalservice.ErrKycRequired):
			utils.RespondWithError(w, http.StatusForbidden, err.Error())
		case errors.Is(err, withdrawalservice.ErrPendingExists):
			utils.RespondWithError(w, http.StatusConflict, err.Error())
		case errors.Is(err, withdrawalservice.ErrAccountNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toResponseDTO(*wd))
}

// GetWithdrawals godoc
//
//	@Summary		Withdrawal history
//	@Description	List the authenticated user's withdrawal requests, newest first.
//	@Tags			Withdrawals
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.WithdrawalResponseDTO	"Withdrawals"
//	@Success		204	{object}	utils.Response				"No withdrawals"
//	@Failure		401	{object}	utils.Response				"User not authorized"
//	@Failure		500	{object}	utils.Response				"Internal server error"
//	@Router			/api/withdrawals [get]
func (h *WithdrawalHandler) GetWithdrawals(w http.ResponseWriter, r *http.Request) {
	accountID := r.Context().Value(auth.UserIDKey).(int)

	withdrawals, err := h.withdrawalService.GetWithdrawals(r.Context(), accountID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch withdrawals")
		return
	}
	if len(withdrawals) == 0 {
		utils.RespondWithError(w, http.StatusNoContent, "Withdrawals not found")
		return
	}

	response := make([]dto.WithdrawalResponseDTO, len(withdrawals))
	for i, wd := range withdrawals {
		response[i] = toResponseDTO(wd)
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

func toResponseDTO(wd domain.Withdrawal) dto.WithdrawalResponseDTO {
	resp := dto.WithdrawalResponseDTO{
		ID:        wd.ID,
		Gross:     wd.Gross.InexactFloat64(),
		Fee:       wd.Fee.InexactFloat64(),
		Net:       wd.Net.InexactFloat64(),
		Method:    wd.Method,
		Address:   wd.Address,
		Status:    wd.Status,
		CreatedAt: wd.CreatedAt.Format(time.RFC3339),
	}
	if wd.Reason != nil {
		resp.Reason = *wd.Reason
	}
	if wd.ResolvedAt != nil {
		resp.ResolvedAt = wd.ResolvedAt.Format(time.RFC3339)
	}
	return resp
}
