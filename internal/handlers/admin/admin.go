package admin

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/janisar-hyder/backend/internal/domain"
	"github.com/janisar-hyder/backend/internal/dto"
	"github.com/janisar-hyder/backend/internal/service/accountservice"
	"github.com/janisar-hyder/backend/internal/service/withdrawalservice"
	"github.com/janisar-hyder/backend/pkg/auth"
	"github.com/janisar-hyder/backend/pkg/utils"
)

type AccountService interface {
	SetKycStatus(ctx context.Context, accountID int, verified bool) error
	ListAccounts(ctx context.Context) ([]domain.Account, error)
	GetPlanOverview(ctx context.Context) (*accountservice.PlanOverview, error)
}

type WithdrawalService interface {
	Resolve(ctx context.Context, withdrawalID int, decision string, adminID int, reason string) (*domain.Withdrawal, error)
	GetAllWithdrawals(ctx context.Context, status string) ([]domain.Withdrawal, error)
}

type AdminHandler struct {
	accountService    AccountService
	withdrawalService WithdrawalService
}

func New(accountService AccountService, withdrawalService WithdrawalService) *AdminHandler {
	return &AdminHandler{
		accountService:    accountService,
		withdrawalService: withdrawalService,
	}
}

// ListAccounts godoc
//
//	@Summary		List accounts
//	@Tags			Admin
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.AccountSummaryDTO	"Accounts"
//	@Failure		401	{object}	utils.Response			"User not authorized"
//	@Failure		403	{object}	utils.Response			"Admin role required"
//	@Failure		500	{object}	utils.Response			"Internal server error"
//	@Router			/api/admin/accounts [get]
func (h *AdminHandler) ListAccounts(w http.ResponseWriter, r *http.Request) {
	accounts, err := h.accountService.ListAccounts(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch accounts")
		return
	}

	response := make([]dto.AccountSummaryDTO, len(accounts))
	for i, acc := range accounts {
		response[i] = toSummaryDTO(acc)
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// SetKycStatus godoc
//
//	@Summary		Set KYC status
//	@Description	Mark an account as KYC verified or revoke verification.
//	@Tags			Admin
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int					true	"Account ID"
//	@Param			request	body		dto.SetKycRequestDTO	true	"KYC payload"
//	@Success		200		{object}	utils.Response		"Status updated"
//	@Failure		401		{object}	utils.Response		"User not authorized"
//	@Failure		403		{object}	utils.Response		"Admin role required"
//	@Failure		404		{object}	utils.Response		"Account not found"
//	@Failure		500		{object}	utils.Response		"Internal server error"
//	@Router			/api/admin/accounts/{id}/kyc [put]
func (h *AdminHandler) SetKycStatus(w http.ResponseWriter, r *http.Request) {
	accountID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid account id")
		return
	}

	var req dto.SetKycRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.accountService.SetKycStatus(r.Context(), accountID, req.Verified); err != nil {
		if errors.Is(err, accountservice.ErrAccountNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "kyc status updated"})
}

// GetPlanOverview godoc
//
//	@Summary		Plans overview
//	@Description	Aggregate view of every account's plan for the admin dashboard.
//	@Tags			Admin
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.PlanOverviewResponseDTO	"Overview"
//	@Failure		401	{object}	utils.Response				"User not authorized"
//	@Failure		403	{object}	utils.Response				"Admin role required"
//	@Failure		500	{object}	utils.Response				"Internal server error"
//	@Router			/api/admin/plans [get]
func (h *AdminHandler) GetPlanOverview(w http.ResponseWriter, r *http.Request) {
	overview, err := h.accountService.GetPlanOverview(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to build overview")
		return
	}

	accounts := make([]dto.AccountSummaryDTO, len(overview.Accounts))
	for i, acc := range overview.Accounts {
		accounts[i] = toSummaryDTO(acc)
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.PlanOverviewResponseDTO{
		TotalUsers:      overview.TotalUsers,
		ActivePlanCount: overview.ActivePlanCount,
		TotalInvestment: overview.TotalInvestment.InexactFloat64(),
		Accounts:        accounts,
	})
}

// ListWithdrawals godoc
//
//	@Summary		List withdrawal requests
//	@Description	List all withdrawal requests, optionally filtered by status.
//	@Tags			Admin
//	@Security		BearerAuth
//	@Produce		json
//	@Param			status	query		string						false	"Filter by status"	Enums(pending, approved, rejected)
//	@Success		200		{array}		dto.WithdrawalResponseDTO	"Withdrawals"
//	@Failure		401		{object}	utils.Response				"User not authorized"
//	@Failure		403		{object}	utils.Response				"Admin role required"
//	@Failure		500		{object}	utils.Response				"Internal server error"
//	@Router			/api/admin/withdrawals [get]
func (h *AdminHandler) ListWithdrawals(w http.ResponseWriter, r *http.Request) {
	status := r.URL.Query().Get("status")

	withdrawals, err := h.withdrawalService.GetAllWithdrawals(r.Context(), status)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch withdrawals")
		return
	}

	response := make([]dto.WithdrawalResponseDTO, len(withdrawals))
	for i, wd := range withdrawals {
		item := dto.WithdrawalResponseDTO{
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
			item.Reason = *wd.Reason
		}
		if wd.ResolvedAt != nil {
			item.ResolvedAt = wd.ResolvedAt.Format(time.RFC3339)
		}
		response[i] = item
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// ResolveWithdrawal godoc
//
//	@Summary		Approve or reject a withdrawal
//	@Description	Approving debits the user's balance; rejecting requires a reason and leaves the balance untouched. Each request resolves exactly once.
//	@Tags			Admin
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int								true	"Withdrawal ID"
//	@Param			request	body		dto.ResolveWithdrawalRequestDTO	true	"Decision payload"
//	@Success		200		{object}	utils.Response					"Request resolved"
//	@Failure		400		{object}	utils.Response					"Invalid decision or missing reason"
//	@Failure		401		{object}	utils.Response					"User not authorized"
//	@Failure		402		{object}	utils.Response					"Insufficient balance"
//	@Failure		403		{object}	utils.Response					"Admin role required"
//	@Failure		404		{object}	utils.Response					"Request not found"
//	@Failure		409		{object}	utils.Response					"Already resolved"
//	@Failure		500		{object}	utils.Response					"Internal server error"
//	@Router			/api/admin/withdrawals/{id} [put]
func (h *AdminHandler) ResolveWithdrawal(w http.ResponseWriter, r *http.Request) {
	adminID := r.Context().Value(auth.UserIDKey).(int)

	withdrawalID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid withdrawal id")
		return
	}

	var req dto.ResolveWithdrawalRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	_, err = h.withdrawalService.Resolve(r.Context(), withdrawalID, req.Decision, adminID, req.Reason)
	if err != nil {
		switch {
		case errors.Is(err, withdrawalservice.ErrWithdrawalNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, withdrawalservice.ErrAlreadyResolved):
			utils.RespondWithError(w, http.StatusConflict, err.Error())
		case errors.Is(err, withdrawalservice.ErrInsufficientBalance):
			utils.RespondWithError(w, http.StatusPaymentRequired, err.Error())
		case errors.Is(err, withdrawalservice.ErrInvalidDecision),
			errors.Is(err, withdrawalservice.ErrReasonRequired):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "withdrawal resolved"})
}

func toSummaryDTO(acc domain.Account) dto.AccountSummaryDTO {
	summary := dto.AccountSummaryDTO{
		ID:          acc.ID,
		Email:       acc.Email,
		KycVerified: acc.KycVerified,
		Balance:     acc.Balance.InexactFloat64(),
		Flagged:     acc.Flagged,
		CreatedAt:   acc.CreatedAt.Format(time.RFC3339),
	}
	if acc.Plan != nil {
		summary.PlanID = acc.Plan.PlanID
	}
	return summary
}
