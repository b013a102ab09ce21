package withdrawals

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
	"github.com/janisar-hyder/backend/internal/service/withdrawalservice"
	"github.com/janisar-hyder/backend/pkg/auth"
	"github.com/janisar-hyder/backend/pkg/utils"
)

func NewMock(t *testing.T) (*WithdrawalHandler, *MockService) {
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

func TestRequestHandler(t *testing.T) {
	handler, service := NewMock(t)

	createdAt := time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name          string
		body          string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name: "Successful request",
			body: `{"amount":200,"method":"card","address":"4561261212345467"}`,
			prepareMock: func() {
				service.EXPECT().
					Request(gomock.Any(), 1, gomock.Any(), "card", "4561261212345467").
					Return(&domain.Withdrawal{
						ID:        10,
						AccountID: 1,
						Gross:     decimal.NewFromInt(200),
						Fee:       decimal.NewFromInt(5),
						Net:       decimal.NewFromInt(195),
						Method:    "card",
						Address:   "4561261212345467",
						Status:    domain.WithdrawalPending,
						CreatedAt: createdAt,
					}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Below minimum",
			body: `{"amount":10,"method":"card","address":"4561261212345467"}`,
			prepareMock: func() {
				service.EXPECT().
					Request(gomock.Any(), 1, gomock.Any(), "card", "4561261212345467").
					Return(nil, withdrawalservice.ErrBelowMinimum)
			},
			expectedCode:  http.StatusBadRequest,
			expectedError: withdrawalservice.ErrBelowMinimum.Error(),
		},
		{
			name: "KYC required",
			body: `{"amount":200,"method":"card","address":"4561261212345467"}`,
			prepareMock: func() {
				service.EXPECT().
					Request(gomock.Any(), 1, gomock.Any(), "card", "4561261212345467").
					Return(nil, withdrawalservice.ErrKycRequired)
			},
			expectedCode:  http.StatusForbidden,
			expectedError: withdrawalservice.ErrKycRequired.Error(),
		},
		{
			name: "Pending request already exists",
			body: `{"amount":200,"method":"card","address":"4561261212345467"}`,
			prepareMock: func() {
				service.EXPECT().
					Request(gomock.Any(), 1, gomock.Any(), "card", "4561261212345467").
					Return(nil, withdrawalservice.ErrPendingExists)
			},
			expectedCode:  http.StatusConflict,
			expectedError: withdrawalservice.ErrPendingExists.Error(),
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

			req := authedRequest("POST", "/api/withdrawals", tt.body)
			rr := httptest.NewRecorder()

			handler.Request(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			if tt.expectedError != "" {
				var resp utils.Response
				err := json.NewDecoder(rr.Body).Decode(&resp)
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedError, resp.Message)
			} else {
				var resp dto.WithdrawalResponseDTO
				err := json.NewDecoder(rr.Body).Decode(&resp)
				assert.NoError(t, err)
				assert.Equal(t, 10, resp.ID)
				assert.Equal(t, 200.0, resp.Gross)
				assert.Equal(t, 5.0, resp.Fee)
				assert.Equal(t, 195.0, resp.Net)
				assert.Equal(t, domain.WithdrawalPending, resp.Status)
			}
		})
	}
}

func TestGetWithdrawalsHandler(t *testing.T) {
	handler, service := NewMock(t)

	createdAt := time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC)
	resolvedAt := createdAt.Add(time.Hour)
	reason := "address mismatch"

	t.Run("Returns history", func(t *testing.T) {
		service.EXPECT().GetWithdrawals(gomock.Any(), 1).Return([]domain.Withdrawal{
			{
				ID:         10,
				AccountID:  1,
				Gross:      decimal.NewFromInt(200),
				Fee:        decimal.NewFromInt(5),
				Net:        decimal.NewFromInt(195),
				Method:     "card",
				Status:     domain.WithdrawalRejected,
				Reason:     &reason,
				CreatedAt:  createdAt,
				ResolvedAt: &resolvedAt,
			},
		}, nil)

		req := authedRequest("GET", "/api/withdrawals", "")
		rr := httptest.NewRecorder()

		handler.GetWithdrawals(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		var resp []dto.WithdrawalResponseDTO
		assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
		assert.Len(t, resp, 1)
		assert.Equal(t, "address mismatch", resp[0].Reason)
		assert.Equal(t, resolvedAt.Format(time.RFC3339), resp[0].ResolvedAt)
	})

	t.Run("No withdrawals", func(t *testing.T) {
		service.EXPECT().GetWithdrawals(gomock.Any(), 1).Return(nil, nil)

		req := authedRequest("GET", "/api/withdrawals", "")
		rr := httptest.NewRecorder()

		handler.GetWithdrawals(rr, req)

		assert.Equal(t, http.StatusNoContent, rr.Code)
	})
}
