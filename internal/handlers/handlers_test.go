package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	_ "github.com/janisar-hyder/backend/docs"
	"github.com/janisar-hyder/backend/internal/config"
	"github.com/janisar-hyder/backend/internal/service"
	"github.com/janisar-hyder/backend/pkg/auth"
)

func TestNew(t *testing.T) {
	cfg := &config.Config{PaymentAPIKey: "provider-secret"}

	h := New(cfg, &service.Services{})
	assert.NotNil(t, h, "Handlers should not be nil")
	assert.NotNil(t, h.AuthHandler)
	assert.NotNil(t, h.AdminHandler)
}

func TestInitRoutes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAuthHandler := NewMockAuthHandler(ctrl)
	mockProfileHandler := NewMockProfileHandler(ctrl)
	mockPlanHandler := NewMockPlanHandler(ctrl)
	mockWithdrawalHandler := NewMockWithdrawalHandler(ctrl)
	mockReviewHandler := NewMockReviewHandler(ctrl)
	mockPaymentHandler := NewMockPaymentHandler(ctrl)
	mockAdminHandler := NewMockAdminHandler(ctrl)

	mockAuthHandler.EXPECT().Register(gomock.Any(), gomock.Any()).AnyTimes()
	mockAuthHandler.EXPECT().VerifyOTP(gomock.Any(), gomock.Any()).AnyTimes()
	mockAuthHandler.EXPECT().Login(gomock.Any(), gomock.Any()).AnyTimes()
	mockPlanHandler.EXPECT().GetPlans(gomock.Any(), gomock.Any()).AnyTimes()
	mockReviewHandler.EXPECT().List(gomock.Any(), gomock.Any()).AnyTimes()
	mockPaymentHandler.EXPECT().Webhook(gomock.Any(), gomock.Any()).AnyTimes()

	h := &Handlers{
		AuthHandler:       mockAuthHandler,
		ProfileHandler:    mockProfileHandler,
		PlanHandler:       mockPlanHandler,
		WithdrawalHandler: mockWithdrawalHandler,
		ReviewHandler:     mockReviewHandler,
		PaymentHandler:    mockPaymentHandler,
		AdminHandler:      mockAdminHandler,
		jwtService:        auth.NewJWTService("test-secret"),
	}

	router := chi.NewRouter()
	h.InitRoutes(router)

	tests := []struct {
		method string
		url    string
		status int
	}{
		{"POST", "/api/auth/register", http.StatusOK},
		{"POST", "/api/auth/verify", http.StatusOK},
		{"POST", "/api/auth/login", http.StatusOK},
		{"POST", "/api/payments/webhook", http.StatusOK},
		{"GET", "/api/plans/", http.StatusOK},
		{"GET", "/api/reviews/", http.StatusOK},
		{"GET", "/api/user/profile", http.StatusUnauthorized},
		{"PUT", "/api/user/profile", http.StatusUnauthorized},
		{"GET", "/api/user/plan", http.StatusUnauthorized},
		{"GET", "/api/user/roi", http.StatusUnauthorized},
		{"GET", "/api/user/referrals/", http.StatusUnauthorized},
		{"GET", "/api/user/referrals/earnings", http.StatusUnauthorized},
		{"POST", "/api/plans/purchase", http.StatusUnauthorized},
		{"GET", "/api/plans/purchases", http.StatusUnauthorized},
		{"POST", "/api/withdrawals/", http.StatusUnauthorized},
		{"GET", "/api/withdrawals/", http.StatusUnauthorized},
		{"POST", "/api/reviews/", http.StatusUnauthorized},
		{"PUT", "/api/reviews/3", http.StatusUnauthorized},
		{"DELETE", "/api/reviews/3", http.StatusUnauthorized},
		{"GET", "/api/admin/accounts", http.StatusUnauthorized},
		{"PUT", "/api/admin/withdrawals/10", http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.url, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.url, nil)
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.status, rec.Code)
		})
	}
}

func TestInitRoutesAdminRole(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	jwtService := auth.NewJWTService("test-secret")
	mockAdminHandler := NewMockAdminHandler(ctrl)
	mockAdminHandler.EXPECT().ListAccounts(gomock.Any(), gomock.Any()).AnyTimes()

	h := &Handlers{
		AuthHandler:       NewMockAuthHandler(ctrl),
		ProfileHandler:    NewMockProfileHandler(ctrl),
		PlanHandler:       NewMockPlanHandler(ctrl),
		WithdrawalHandler: NewMockWithdrawalHandler(ctrl),
		ReviewHandler:     NewMockReviewHandler(ctrl),
		PaymentHandler:    NewMockPaymentHandler(ctrl),
		AdminHandler:      mockAdminHandler,
		jwtService:        jwtService,
	}

	router := chi.NewRouter()
	h.InitRoutes(router)

	tokenFor := func(id int, role string) string {
		token, err := jwtService.GenerateJWT(id, role, time.Now().Add(time.Hour))
		assert.NoError(t, err)
		return token
	}

	t.Run("admin token passes", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/api/admin/accounts", nil)
		req.Header.Set("Authorization", "Bearer "+tokenFor(1, auth.RoleAdmin))
		rec := httptest.NewRecorder()

		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("user token is rejected", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/api/admin/accounts", nil)
		req.Header.Set("Authorization", "Bearer "+tokenFor(2, auth.RoleUser))
		rec := httptest.NewRecorder()

		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusForbidden, rec.Code)
	})
}
