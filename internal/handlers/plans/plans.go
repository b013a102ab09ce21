package plans

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/janisar-hyder/backend/internal/domain"
	"github.com/janisar-hyder/backend/internal/dto"
	planlist "github.com/janisar-hyder/backend/internal/plans"
	"github.com/janisar-hyder/backend/internal/service/planservice"
	"github.com/janisar-hyder/backend/pkg/auth"
	"github.com/janisar-hyder/backend/pkg/utils"
)

type Service interface {
	Catalog(ctx context.Context) []planlist.Definition
	Purchase(ctx context.Context, accountID int, planID string) (*domain.Purchase, error)
	Purchases(ctx context.Context, accountID int) ([]domain.Purchase, error)
}

type PlanHandler struct {
	planService Service
}

func New(planService Service) *PlanHandler {
	return &PlanHandler{
		planService: planService,
	}
}

// GetPlans godoc
//
//	@Summary		List investment plans
//	@Description	Return the catalog of purchasable plans with their terms.
//	@Tags			Plans
//	@Produce		json
//	@Success		200	{array}	dto.PlanDTO	"Available plans"
//	@Router			/api/plans [get]
func (h *PlanHandler) GetPlans(w http.ResponseWriter, r *http.Request) {
	defs := h.planService.Catalog(r.Context())

	response := make([]dto.PlanDTO, len(defs))
	for i, d := range defs {
		response[i] = dto.PlanDTO{
			ID:           d.ID,
			Name:         d.Name,
			Price:        d.Price.InexactFloat64(),
			Rate:         d.Rate.InexactFloat64(),
			Periods:      d.Periods,
			ReferralRate: d.ReferralRate.InexactFloat64(),
		}
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// Purchase godoc
//
//	@Summary		Start a plan purchase
//	@Description	Create a payment invoice for the selected plan. The plan activates once the payment provider confirms the transaction.
//	@Tags			Plans
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.PurchaseRequestDTO	true	"Purchase payload"
//	@Success		200		{object}	dto.PurchaseResponseDTO	"Invoice created"
//	@Failure		400		{object}	utils.Response			"Unknown plan"
//	@Failure		401		{object}	utils.Response			"User not authorized"
//	@Failure		409		{object}	utils.Response			"A plan is already active"
//	@Failure		500		{object}	utils.Response			"Internal server error"
//	@Router			/api/plans/purchase [post]
func (h *PlanHandler) Purchase(w http.ResponseWriter, r *http.Request) {
	accountID := r.Context().Value(auth.UserIDKey).(int)

	var req dto.PurchaseRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	purchase, err := h.planService.Purchase(r.Context(), accountID, req.PlanID)
	if err != nil {
		switch {
		case errors.Is(err, planservice.ErrInvalidPlan):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, planservice.ErrPlanAlreadyActive):
			utils.RespondWithError(w, http.StatusConflict, err.Error())
		case errors.Is(err, planservice.ErrAccountNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dto.PurchaseResponseDTO{
		TxID:       purchase.TxID,
		PaymentURL: purchase.PaymentURL,
	})
}

// GetPurchases godoc
//
//	@Summary		Purchase history
//	@Description	List the authenticated user's plan purchases, newest first.
//	@Tags			Plans
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.PurchaseHistoryDTO	"Purchases"
//	@Success		204	{object}	utils.Response			"No purchases"
//	@Failure		401	{object}	utils.Response			"User not authorized"
//	@Failure		500	{object}	utils.Response			"Internal server error"
//	@Router			/api/plans/purchases [get]
func (h *PlanHandler) GetPurchases(w http.ResponseWriter, r *http.Request) {
	accountID := r.Context().Value(auth.UserIDKey).(int)

	purchases, err := h.planService.Purchases(r.Context(), accountID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch purchases")
		return
	}
	if len(purchases) == 0 {
		utils.RespondWithError(w, http.StatusNoContent, "No purchases found")
		return
	}

	response := make([]dto.PurchaseHistoryDTO, len(purchases))
	for i, p := range purchases {
		item := dto.PurchaseHistoryDTO{
			TxID:       p.TxID,
			PlanID:     p.PlanID,
			PaidAmount: p.PaidAmount.InexactFloat64(),
			Status:     p.Status,
			CreatedAt:  p.CreatedAt.Format(time.RFC3339),
		}
		if p.ConfirmedAt != nil {
			item.ConfirmedAt = p.ConfirmedAt.Format(time.RFC3339)
		}
		response[i] = item
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}
