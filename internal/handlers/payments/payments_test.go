package payments

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/janisar-hyder/backend/internal/service/planservice"
	"github.com/janisar-hyder/backend/pkg/utils"
)

const testAPIKey = "provider-secret"

func NewMock(t *testing.T) (*PaymentHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service, testAPIKey)
	defer ctrl.Finish()
	return handler, service
}

func TestWebhookHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name          string
		apiKey        string
		body          string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name:   "Confirms the purchase",
			apiKey: testAPIKey,
			body:   `{"tx_id":"inv_1","account_id":42,"plan_id":"PlanA","paid_amount":500}`,
			prepareMock: func() {
				service.EXPECT().
					Confirm(gomock.Any(), 42, "PlanA", gomock.Any(), "inv_1").
					DoAndReturn(func(_ interface{}, _ int, _ string, paid decimal.Decimal, _ string) error {
						assert.True(t, decimal.NewFromInt(500).Equal(paid))
						return nil
					})
			},
			expectedCode: http.StatusOK,
		},
		{
			name:          "Bad api key",
			apiKey:        "wrong",
			body:          `{"tx_id":"inv_1","account_id":42,"plan_id":"PlanA","paid_amount":500}`,
			prepareMock:   func() {},
			expectedCode:  http.StatusUnauthorized,
			expectedError: "invalid api key",
		},
		{
			name:   "Unknown transaction",
			apiKey: testAPIKey,
			body:   `{"tx_id":"inv_missing","account_id":42,"plan_id":"PlanA","paid_amount":500}`,
			prepareMock: func() {
				service.EXPECT().
					Confirm(gomock.Any(), 42, "PlanA", gomock.Any(), "inv_missing").
					Return(planservice.ErrUnknownTransaction)
			},
			expectedCode:  http.StatusNotFound,
			expectedError: planservice.ErrUnknownTransaction.Error(),
		},
		{
			name:   "Underfunded payment",
			apiKey: testAPIKey,
			body:   `{"tx_id":"inv_1","account_id":42,"plan_id":"PlanA","paid_amount":400}`,
			prepareMock: func() {
				service.EXPECT().
					Confirm(gomock.Any(), 42, "PlanA", gomock.Any(), "inv_1").
					Return(planservice.ErrUnderfundedPayment)
			},
			expectedCode:  http.StatusPaymentRequired,
			expectedError: planservice.ErrUnderfundedPayment.Error(),
		},
		{
			name:   "Unknown plan in payload",
			apiKey: testAPIKey,
			body:   `{"tx_id":"inv_1","account_id":42,"plan_id":"PlanX","paid_amount":500}`,
			prepareMock: func() {
				service.EXPECT().
					Confirm(gomock.Any(), 42, "PlanX", gomock.Any(), "inv_1").
					Return(planservice.ErrInvalidPlan)
			},
			expectedCode:  http.StatusBadRequest,
			expectedError: planservice.ErrInvalidPlan.Error(),
		},
		{
			name:   "Late confirmation while a plan is active",
			apiKey: testAPIKey,
			body:   `{"tx_id":"inv_1","account_id":42,"plan_id":"PlanA","paid_amount":500}`,
			prepareMock: func() {
				service.EXPECT().
					Confirm(gomock.Any(), 42, "PlanA", gomock.Any(), "inv_1").
					Return(planservice.ErrPlanAlreadyActive)
			},
			expectedCode:  http.StatusConflict,
			expectedError: planservice.ErrPlanAlreadyActive.Error(),
		},
		{
			name:   "Service error",
			apiKey: testAPIKey,
			body:   `{"tx_id":"inv_1","account_id":42,"plan_id":"PlanA","paid_amount":500}`,
			prepareMock: func() {
				service.EXPECT().
					Confirm(gomock.Any(), 42, "PlanA", gomock.Any(), "inv_1").
					Return(errors.New("db down"))
			},
			expectedCode:  http.StatusInternalServerError,
			expectedError: "Internal server error",
		},
		{
			name:          "Missing tx_id",
			apiKey:        testAPIKey,
			body:          `{"account_id":42,"plan_id":"PlanA","paid_amount":500}`,
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "tx_id is required",
		},
		{
			name:          "Invalid request body",
			apiKey:        testAPIKey,
			body:          `{invalid`,
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "invalid request body",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			req := httptest.NewRequest("POST", "/api/payments/webhook", bytes.NewReader([]byte(tt.body)))
			req.Header.Set("X-Api-Key", tt.apiKey)
			rr := httptest.NewRecorder()

			handler.Webhook(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			var resp utils.Response
			assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
			if tt.expectedError != "" {
				assert.Equal(t, tt.expectedError, resp.Message)
			} else {
				assert.Equal(t, "purchase confirmed", resp.Message)
			}
		})
	}
}

func TestWebhookHandler_NoKeyConfigured(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service, "")
	defer ctrl.Finish()

	service.EXPECT().
		Confirm(gomock.Any(), 42, "PlanA", gomock.Any(), "inv_1").
		Return(nil)

	body := `{"tx_id":"inv_1","account_id":42,"plan_id":"PlanA","paid_amount":500}`
	req := httptest.NewRequest("POST", "/api/payments/webhook", bytes.NewReader([]byte(body)))
	rr := httptest.NewRecorder()

	handler.Webhook(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
}
