package service

import (
	"github.com/shopspring/decimal"

	"github.com/janisar-hyder/backend/internal/accrual"
	"github.com/janisar-hyder/backend/internal/config"
	"github.com/janisar-hyder/backend/internal/pg"
	"github.com/janisar-hyder/backend/internal/plans"
	"github.com/janisar-hyder/backend/internal/repo"
	"github.com/janisar-hyder/backend/internal/service/accountservice"
	"github.com/janisar-hyder/backend/internal/service/authservice"
	"github.com/janisar-hyder/backend/internal/service/planservice"
	"github.com/janisar-hyder/backend/internal/service/reviewservice"
	"github.com/janisar-hyder/backend/internal/service/withdrawalservice"
	pkgauth "github.com/janisar-hyder/backend/pkg/auth"
	"github.com/janisar-hyder/backend/pkg/clients"
)

type Services struct {
	AuthService       *authservice.Service
	AccountService    *accountservice.Service
	PlanService       *planservice.Service
	WithdrawalService *withdrawalservice.Service
	ReviewService     *reviewservice.Service
	AccrualService    *accrual.Service

	JWTService *pkgauth.JWTService
}

func New(cfg *config.Config, repos *repo.Repositories, txManager pg.TXManager) *Services {
	catalog := plans.Default(cfg.AccrualPeriod)
	payment := clients.NewPaymentClient(cfg.PaymentAddress, cfg.PaymentAPIKey)
	notifier := clients.NewNotifier(cfg.NotifyAddress)
	jwtService := pkgauth.NewJWTService(cfg.JWTSecret)

	authService := authservice.New(repos.AccountRepo, repos.OTPRepo, &pkgauth.HashService{}, jwtService, notifier)
	accrualService := accrual.New(cfg, repos.AccountRepo, repos.LedgerRepo, txManager, notifier)
	accountService := accountservice.New(repos.AccountRepo, repos.LedgerRepo, accrualService)
	planService := planservice.New(repos.AccountRepo, repos.PurchaseRepo, repos.LedgerRepo, txManager, catalog, payment)
	withdrawalService := withdrawalservice.New(repos.WithdrawalRepo, repos.AccountRepo, txManager, notifier,
		decimal.NewFromFloat(cfg.MinWithdrawal), decimal.NewFromFloat(cfg.WithdrawalFee))
	reviewService := reviewservice.New(repos.ReviewRepo)

	return &Services{
		AuthService:       authService,
		AccountService:    accountService,
		PlanService:       planService,
		WithdrawalService: withdrawalService,
		ReviewService:     reviewService,
		AccrualService:    accrualService,
		JWTService:        jwtService,
	}
}
