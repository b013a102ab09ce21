package payments

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/janisar-hyder/backend/internal/dto"
	"github.com/janisar-hyder/backend/internal/service/planservice"
	"github.com/janisar-hyder/backend/pkg/utils"
)

type Service interface {
	Confirm(ctx context.Context, accountID int, planID string, paidAmount decimal.Decimal, txID string) error
}

// PaymentHandler receives provider callbacks. The webhook is unauthenticated
// on the user side; the shared secret in the X-Api-Key header gates it.
type PaymentHandler struct {
	planService Service
	apiKey      string
}

func New(planService Service, apiKey string) *PaymentHandler {
	return &PaymentHandler{
		planService: planService,
		apiKey:      apiKey,
	}
}

// Webhook godoc
//
//	@Summary		Payment confirmation webhook
//	@Description	Called by the payment provider when an invoice settles. Confirms the purchase and activates the plan. Replays of a settled transaction are acknowledged without effect.
//	@Tags			Payments
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.PaymentWebhookDTO	true	"Settlement payload"
//	@Success		200		{object}	utils.Response			"Purchase confirmed"
//	@Failure		400		{object}	utils.Response			"Invalid payload"
//	@Failure		401		{object}	utils.Response			"Bad API key"
//	@Failure		402		{object}	utils.Response			"Paid amount below plan price"
//	@Failure		404		{object}	utils.Response			"Unknown transaction"
//	@Failure		409		{object}	utils.Response			"A plan is already active"
//	@Failure		500		{object}	utils.Response			"Internal server error"
//	@Router			/api/payments/webhook [post]
func (h *PaymentHandler) Webhook(w http.ResponseWriter, r *http.Request) {
	if h.apiKey != "" && r.Header.Get("X-Api-Key") != h.apiKey {
		utils.RespondWithError(w, http.StatusUnauthorized, "invalid api key")
		return
	}

	var req dto.PaymentWebhookDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.TxID == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "tx_id is required")
		return
	}

	err := h.planService.Confirm(r.Context(), req.AccountID, req.PlanID, decimal.NewFromFloat(req.PaidAmount), req.TxID)
	if err != nil {
		switch {
		case errors.Is(err, planservice.ErrUnknownTransaction):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, planservice.ErrUnderfundedPayment):
			utils.RespondWithError(w, http.StatusPaymentRequired, err.Error())
		case errors.Is(err, planservice.ErrInvalidPlan):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, planservice.ErrPlanAlreadyActive):
			utils.RespondWithError(w, http.StatusConflict, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "purchase confirmed"})
}
