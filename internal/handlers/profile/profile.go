package profile

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/janisar-hyder/backend/internal/domain"
	"github.com/janisar-hyder/backend/internal/dto"
	"github.com/janisar-hyder/backend/internal/service/accountservice"
	"github.com/janisar-hyder/backend/pkg/auth"
	"github.com/janisar-hyder/backend/pkg/utils"
)

type Service interface {
	GetAccount(ctx context.Context, accountID int) (*domain.Account, error)
	UpdateProfile(ctx context.Context, accountID int, firstName, lastName, phone string) error
	ActivePlan(ctx context.Context, accountID int) (*accountservice.PlanStatus, error)
	GetReferralInfo(ctx context.Context, accountID int) (*accountservice.ReferralInfo, error)
	GetROIHistory(ctx context.Context, accountID int) ([]domain.AccrualEvent, error)
	GetReferralEarnings(ctx context.Context, accountID int) ([]domain.ReferralCredit, error)
}

type ProfileHandler struct {
	accountService Service
}

func New(accountService Service) *ProfileHandler {
	return &ProfileHandler{
		accountService: accountService,
	}
}

// GetProfile godoc
//
//	@Summary		Get profile
//	@Description	Return the authenticated user's profile and balances.
//	@Tags			Profile
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.ProfileResponseDTO	"Profile"
//	@Failure		401	{object}	utils.Response			"User not authorized"
//	@Failure		500	{object}	utils.Response			"Internal server error"
//	@Router			/api/user/profile [get]
func (h *ProfileHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	accountID := r.Context().Value(auth.UserIDKey).(int)

	acc, err := h.accountService.GetAccount(r.Context(), accountID)
	if err != nil {
		if errors.Is(err, accountservice.ErrAccountNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dto.ProfileResponseDTO{
		ID:               acc.ID,
		Email:            acc.Email,
		FirstName:        acc.FirstName,
		LastName:         acc.LastName,
		Phone:            acc.Phone,
		KycVerified:      acc.KycVerified,
		ReferralCode:     acc.ReferralCode,
		Balance:          acc.Balance.InexactFloat64(),
		ROIEarnings:      acc.ROIEarnings.InexactFloat64(),
		ReferralEarnings: acc.ReferralEarnings.InexactFloat64(),
		CreatedAt:        acc.CreatedAt.Format(time.RFC3339),
	})
}

// UpdateProfile godoc
//
//	@Summary		Update profile
//	@Description	Update the authenticated user's name and phone number.
//	@Tags			Profile
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.UpdateProfileRequestDTO	true	"Profile payload"
//	@Success		200		{object}	utils.Response				"Profile updated"
//	@Failure		400		{object}	utils.Response				"Invalid payload"
//	@Failure		401		{object}	utils.Response				"User not authorized"
//	@Failure		500		{object}	utils.Response				"Internal server error"
//	@Router			/api/user/profile [put]
func (h *ProfileHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	accountID := r.Context().Value(auth.UserIDKey).(int)

	var req dto.UpdateProfileRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	err := h.accountService.UpdateProfile(r.Context(), accountID, req.FirstName, req.LastName, req.Phone)
	if err != nil {
		switch {
		case errors.Is(err, accountservice.ErrInvalidProfile),
			errors.Is(err, accountservice.ErrInvalidPhone):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "profile updated"})
}

// GetActivePlan godoc
//
//	@Summary		Active plan status
//	@Description	Return the state of the user's investment plan. A plan past its end date is settled on read.
//	@Tags			Profile
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.ActivePlanResponseDTO	"Plan status"
//	@Failure		401	{object}	utils.Response				"User not authorized"
//	@Failure		500	{object}	utils.Response				"Internal server error"
//	@Router			/api/user/plan [get]
func (h *ProfileHandler) GetActivePlan(w http.ResponseWriter, r *http.Request) {
	accountID := r.Context().Value(auth.UserIDKey).(int)

	status, err := h.accountService.ActivePlan(r.Context(), accountID)
	if err != nil {
		if errors.Is(err, accountservice.ErrAccountNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dto.ActivePlanResponseDTO{
		HasPlan:       status.HasPlan,
		Status:        status.Status,
		PlanID:        status.PlanID,
		Price:         status.Price.InexactFloat64(),
		DaysRemaining: status.DaysRemaining,
		TotalEarned:   status.TotalEarned.InexactFloat64(),
		Balance:       status.Balance.InexactFloat64(),
	})
}

// GetReferrals godoc
//
//	@Summary		Referral info
//	@Description	Return the user's referral code, earnings and referred accounts.
//	@Tags			Profile
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.ReferralInfoResponseDTO	"Referral info"
//	@Failure		401	{object}	utils.Response				"User not authorized"
//	@Failure		500	{object}	utils.Response				"Internal server error"
//	@Router			/api/user/referrals [get]
func (h *ProfileHandler) GetReferrals(w http.ResponseWriter, r *http.Request) {
	accountID := r.Context().Value(auth.UserIDKey).(int)

	info, err := h.accountService.GetReferralInfo(r.Context(), accountID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch referral info")
		return
	}

	referred := make([]dto.ReferredAccountDTO, len(info.Referred))
	for i, acc := range info.Referred {
		item := dto.ReferredAccountDTO{
			Email:    acc.Email,
			JoinedAt: acc.CreatedAt.Format(time.RFC3339),
		}
		if acc.Plan != nil {
			item.PlanID = acc.Plan.PlanID
		}
		referred[i] = item
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.ReferralInfoResponseDTO{
		Code:     info.Code,
		Earnings: info.Earnings.InexactFloat64(),
		Count:    info.Count,
		Referred: referred,
	})
}

// GetROIHistory godoc
//
//	@Summary		ROI accrual history
//	@Description	List the user's credited ROI periods, newest first.
//	@Tags			Profile
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.AccrualEventDTO	"Accrual events"
//	@Success		204	{object}	utils.Response		"No accruals yet"
//	@Failure		401	{object}	utils.Response		"User not authorized"
//	@Failure		500	{object}	utils.Response		"Internal server error"
//	@Router			/api/user/roi [get]
func (h *ProfileHandler) GetROIHistory(w http.ResponseWriter, r *http.Request) {
	accountID := r.Context().Value(auth.UserIDKey).(int)

	events, err := h.accountService.GetROIHistory(r.Context(), accountID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch ROI history")
		return
	}
	if len(events) == 0 {
		utils.RespondWithError(w, http.StatusNoContent, "No accruals found")
		return
	}

	response := make([]dto.AccrualEventDTO, len(events))
	for i, e := range events {
		response[i] = dto.AccrualEventDTO{
			PlanID:      e.PlanID,
			FirstPeriod: e.FirstPeriod,
			LastPeriod:  e.LastPeriod,
			Amount:      e.Amount.InexactFloat64(),
			CreatedAt:   e.CreatedAt.Format(time.RFC3339),
		}
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// GetReferralEarnings godoc
//
//	@Summary		Referral earnings history
//	@Description	List the user's referral bonus credits, newest first.
//	@Tags			Profile
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.ReferralCreditDTO	"Referral credits"
//	@Success		204	{object}	utils.Response			"No referral earnings yet"
//	@Failure		401	{object}	utils.Response			"User not authorized"
//	@Failure		500	{object}	utils.Response			"Internal server error"
//	@Router			/api/user/referrals/earnings [get]
func (h *ProfileHandler) GetReferralEarnings(w http.ResponseWriter, r *http.Request) {
	accountID := r.Context().Value(auth.UserIDKey).(int)

	credits, err := h.accountService.GetReferralEarnings(r.Context(), accountID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch referral earnings")
		return
	}
	if len(credits) == 0 {
		utils.RespondWithError(w, http.StatusNoContent, "No referral earnings found")
		return
	}

	response := make([]dto.ReferralCreditDTO, len(credits))
	for i, c := range credits {
		response[i] = dto.ReferralCreditDTO{
			ReferredID:  c.ReferredID,
			PlanID:      c.PlanID,
			Source:      c.Source,
			PeriodIndex: c.PeriodIndex,
			Amount:      c.Amount.InexactFloat64(),
			CreatedAt:   c.CreatedAt.Format(time.RFC3339),
		}
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}
