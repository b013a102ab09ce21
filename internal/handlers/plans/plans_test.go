package plans

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/janisar-hyder/backend/internal/domain"
	"github.com/janisar-hyder/backend/internal/dto"
	planlist "github.com/janisar-hyder/backend/internal/plans"
	"github.com/janisar-hyder/backend/internal/service/planservice"
	"github.com/janisar-hyder/backend/pkg/auth"
	"github.com/janisar-hyder/backend/pkg/utils"
)

func NewMock(t *testing.T) (*PlanHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	defer ctrl.Finish()
	return handler, service
}

func authedRequest(method, target, body string) *http.Request {
	req := httptest.NewRequest(method, target, bytes.NewReader([]byte(body)))
	ctx := context.WithValue(req.Context(), auth.UserIDKey, 1)
	return req.WithContext(ctx)
}

func TestGetPlansHandler(t *testing.T) {
	handler, service := NewMock(t)

	service.EXPECT().Catalog(gomock.Any()).Return([]planlist.Definition{
		{
			ID:           "PlanA",
			Name:         "Plan A",
			Price:        decimal.NewFromInt(500),
			Rate:         decimal.NewFromFloat(0.05),
			Periods:      5,
			ReferralRate: decimal.NewFromFloat(0.01),
		},
	})

	req := httptest.NewRequest("GET", "/api/plans", nil)
	rr := httptest.NewRecorder()

	handler.GetPlans(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	var resp []dto.PlanDTO
	assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	assert.Len(t, resp, 1)
	assert.Equal(t, "PlanA", resp[0].ID)
	assert.Equal(t, 500.0, resp[0].Price)
	assert.Equal(t, 0.05, resp[0].Rate)
}

func TestPurchaseHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name          string
		body          string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name: "Creates an invoice",
			body: `{"plan_id":"PlanA"}`,
			prepareMock: func() {
				service.EXPECT().Purchase(gomock.Any(), 1, "PlanA").Return(&domain.Purchase{
					TxID:       "tx-1",
					PaymentURL: "https://pay/tx-1",
				}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Unknown plan",
			body: `{"plan_id":"PlanX"}`,
			prepareMock: func() {
				service.EXPECT().Purchase(gomock.Any(), 1, "PlanX").
					Return(nil, planservice.ErrInvalidPlan)
			},
			expectedCode:  http.StatusBadRequest,
			expectedError: planservice.ErrInvalidPlan.Error(),
		},
		{
			name: "Plan already active",
			body: `{"plan_id":"PlanA"}`,
			prepareMock: func() {
				service.EXPECT().Purchase(gomock.Any(), 1, "PlanA").
					Return(nil, planservice.ErrPlanAlreadyActive)
			},
			expectedCode:  http.StatusConflict,
			expectedError: planservice.ErrPlanAlreadyActive.Error(),
		},
		{
			name:          "Invalid request body",
			body:          `{invalid json`,
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "invalid request body",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			req := authedRequest("POST", "/api/plans/purchase", tt.body)
			rr := httptest.NewRecorder()

			handler.Purchase(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			if tt.expectedError != "" {
				var resp utils.Response
				err := json.NewDecoder(rr.Body).Decode(&resp)
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedError, resp.Message)
			} else {
				var resp dto.PurchaseResponseDTO
				err := json.NewDecoder(rr.Body).Decode(&resp)
				assert.NoError(t, err)
				assert.Equal(t, "tx-1", resp.TxID)
				assert.Equal(t, "https://pay/tx-1", resp.PaymentURL)
			}
		})
	}
}

func TestGetPurchasesHandler(t *testing.T) {
	handler, service := NewMock(t)

	createdAt := time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC)
	confirmedAt := createdAt.Add(time.Minute)

	t.Run("Returns history", func(t *testing.T) {
		service.EXPECT().Purchases(gomock.Any(), 1).Return([]domain.Purchase{
			{
				TxID:        "tx-1",
				PlanID:      "PlanA",
				PaidAmount:  decimal.NewFromInt(500),
				Status:      domain.PurchaseConfirmed,
				CreatedAt:   createdAt,
				ConfirmedAt: &confirmedAt,
			},
		}, nil)

		req := authedRequest("GET", "/api/plans/purchases", "")
		rr := httptest.NewRecorder()

		handler.GetPurchases(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		var resp []dto.PurchaseHistoryDTO
		assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
		assert.Len(t, resp, 1)
		assert.Equal(t, "tx-1", resp[0].TxID)
		assert.Equal(t, confirmedAt.Format(time.RFC3339), resp[0].ConfirmedAt)
	})

	t.Run("No purchases", func(t *testing.T) {
		service.EXPECT().Purchases(gomock.Any(), 1).Return(nil, nil)

		req := authedRequest("GET", "/api/plans/purchases", "")
		rr := httptest.NewRecorder()

		handler.GetPurchases(rr, req)

		assert.Equal(t, http.StatusNoContent, rr.Code)
	})
}
