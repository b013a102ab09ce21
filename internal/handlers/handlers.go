package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/janisar-hyder/backend/docs"
	"github.com/janisar-hyder/backend/internal/config"
	adminhandlers "github.com/janisar-hyder/backend/internal/handlers/admin"
	authhandlers "github.com/janisar-hyder/backend/internal/handlers/auth"
	paymenthandlers "github.com/janisar-hyder/backend/internal/handlers/payments"
	planhandlers "github.com/janisar-hyder/backend/internal/handlers/plans"
	profilehandlers "github.com/janisar-hyder/backend/internal/handlers/profile"
	reviewhandlers "github.com/janisar-hyder/backend/internal/handlers/reviews"
	withdrawalhandlers "github.com/janisar-hyder/backend/internal/handlers/withdrawals"
	"github.com/janisar-hyder/backend/internal/service"
	"github.com/janisar-hyder/backend/pkg/auth"
)

type AuthHandler interface {
	Register(w http.ResponseWriter, r *http.Request)
	VerifyOTP(w http.ResponseWriter, r *http.Request)
	Login(w http.ResponseWriter, r *http.Request)
}

type ProfileHandler interface {
	GetProfile(w http.ResponseWriter, r *http.Request)
	UpdateProfile(w http.ResponseWriter, r *http.Request)
	GetActivePlan(w http.ResponseWriter, r *http.Request)
	GetReferrals(w http.ResponseWriter, r *http.Request)
	GetROIHistory(w http.ResponseWriter, r *http.Request)
	GetReferralEarnings(w http.ResponseWriter, r *http.Request)
}

type PlanHandler interface {
	GetPlans(w http.ResponseWriter, r *http.Request)
	Purchase(w http.ResponseWriter, r *http.Request)
	GetPurchases(w http.ResponseWriter, r *http.Request)
}

type WithdrawalHandler interface {
	Request(w http.ResponseWriter, r *http.Request)
	GetWithdrawals(w http.ResponseWriter, r *http.Request)
}

type ReviewHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type PaymentHandler interface {
	Webhook(w http.ResponseWriter, r *http.Request)
}

type AdminHandler interface {
	ListAccounts(w http.ResponseWriter, r *http.Request)
	SetKycStatus(w http.ResponseWriter, r *http.Request)
	GetPlanOverview(w http.ResponseWriter, r *http.Request)
	ListWithdrawals(w http.ResponseWriter, r *http.Request)
	ResolveWithdrawal(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	AuthHandler       AuthHandler
	ProfileHandler    ProfileHandler
	PlanHandler       PlanHandler
	WithdrawalHandler WithdrawalHandler
	ReviewHandler     ReviewHandler
	PaymentHandler    PaymentHandler
	AdminHandler      AdminHandler

	jwtService auth.JWTServiceInterface
}

func New(cfg *config.Config, s *service.Services) *Handlers {
	return &Handlers{
		AuthHandler:       authhandlers.New(s.AuthService),
		ProfileHandler:    profilehandlers.New(s.AccountService),
		PlanHandler:       planhandlers.New(s.PlanService),
		WithdrawalHandler: withdrawalhandlers.New(s.WithdrawalService),
		ReviewHandler:     reviewhandlers.New(s.ReviewService),
		PaymentHandler:    paymenthandlers.New(s.PlanService, cfg.PaymentAPIKey),
		AdminHandler:      adminhandlers.New(s.AccountService, s.WithdrawalService),
		jwtService:        s.JWTService,
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
	)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))

	authMW := auth.AuthMiddleware(h.jwtService)

	r.Route("/api", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", h.AuthHandler.Register)
			r.Post("/verify", h.AuthHandler.VerifyOTP)
			r.Post("/login", h.AuthHandler.Login)
		})

		// Provider-facing; gated by API key, not user auth.
		r.Post("/payments/webhook", h.PaymentHandler.Webhook)

		r.Route("/user", func(r chi.Router) {
			r.Use(authMW)
			r.Get("/profile", h.ProfileHandler.GetProfile)
			r.Put("/profile", h.ProfileHandler.UpdateProfile)
			r.Get("/plan", h.ProfileHandler.GetActivePlan)
			r.Get("/roi", h.ProfileHandler.GetROIHistory)
			r.Route("/referrals", func(r chi.Router) {
				r.Get("/", h.ProfileHandler.GetReferrals)
				r.Get("/earnings", h.ProfileHandler.GetReferralEarnings)
			})
		})

		r.Route("/plans", func(r chi.Router) {
			r.Get("/", h.PlanHandler.GetPlans)
			r.Group(func(r chi.Router) {
				r.Use(authMW)
				r.Post("/purchase", h.PlanHandler.Purchase)
				r.Get("/purchases", h.PlanHandler.GetPurchases)
			})
		})

		r.Route("/withdrawals", func(r chi.Router) {
			r.Use(authMW)
			r.Post("/", h.WithdrawalHandler.Request)
			r.Get("/", h.WithdrawalHandler.GetWithdrawals)
		})

		r.Route("/reviews", func(r chi.Router) {
			r.Get("/", h.ReviewHandler.List)
			r.Group(func(r chi.Router) {
				r.Use(authMW)
				r.Post("/", h.ReviewHandler.Create)
				r.Put("/{id}", h.ReviewHandler.Update)
				r.Delete("/{id}", h.ReviewHandler.Delete)
			})
		})

		r.Route("/admin", func(r chi.Router) {
			r.Use(authMW, auth.AdminMiddleware)
			r.Get("/accounts", h.AdminHandler.ListAccounts)
			r.Put("/accounts/{id}/kyc", h.AdminHandler.SetKycStatus)
			r.Get("/plans", h.AdminHandler.GetPlanOverview)
			r.Get("/withdrawals", h.AdminHandler.ListWithdrawals)
			r.Put("/withdrawals/{id}", h.AdminHandler.ResolveWithdrawal)
		})
	})

	return r
}
