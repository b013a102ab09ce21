package planservice

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/janisar-hyder/backend/internal/domain"
	"github.com/janisar-hyder/backend/internal/pg"
	"github.com/janisar-hyder/backend/internal/plans"
	"github.com/janisar-hyder/backend/pkg/clients"
)

type AccountRepo interface {
	FindByID(ctx context.Context, accountID int) (*domain.Account, error)
	ActivatePlan(ctx context.Context, accountID int, snap *domain.PlanSnapshot) (bool, error)
	CreditReferrer(ctx context.Context, referrerID int, amount decimal.Decimal, countDelta int) error
}

type PurchaseRepo interface {
	Create(ctx context.Context, p *domain.Purchase) (*domain.Purchase, error)
	FindByTxID(ctx context.Context, txID string) (*domain.Purchase, error)
	MarkConfirmed(ctx context.Context, txID string, paidAmount decimal.Decimal, confirmedAt time.Time) (bool, error)
	ListByAccount(ctx context.Context, accountID int) ([]domain.Purchase, error)
}

type LedgerRepo interface {
	AppendReferral(ctx context.Context, credit *domain.ReferralCredit) error
}

type PaymentProvider interface {
	CreateInvoice(planID string, amount decimal.Decimal) (*clients.Invoice, error)
}

var (
	ErrInvalidPlan        = errors.New("invalid plan type")
	ErrPlanAlreadyActive  = errors.New("plan already active")
	ErrAccountNotFound    = errors.New("account not found")
	ErrUnderfundedPayment = errors.New("paid amount is below plan price")
	ErrUnknownTransaction = errors.New("unknown payment transaction")
)

type Service struct {
	accountRepo  AccountRepo
	purchaseRepo PurchaseRepo
	ledgerRepo   LedgerRepo
	txManager    pg.TXManager
	catalog      *plans.Catalog
	payment      PaymentProvider
	now          func() time.Time
}

func New(accountRepo AccountRepo, purchaseRepo PurchaseRepo, ledgerRepo LedgerRepo, txManager pg.TXManager, catalog *plans.Catalog, payment PaymentProvider) *Service {
	return &Service{
		accountRepo:  accountRepo,
		purchaseRepo: purchaseRepo,
		ledgerRepo:   ledgerRepo,
		txManager:    txManager,
		catalog:      catalog,
		payment:      payment,
		now:          time.Now,
	}
}

func (s *Service) Catalog(ctx context.Context) []plans.Definition {
	return s.catalog.List()
}

// Purchase validates eligibility and returns a payment-initiation handle.
// The ledger is untouched until the provider confirms through Confirm.
func (s *Service) Purchase(ctx context.Context, accountID int, planID string) (*domain.Purchase, error) {
	def, ok := s.catalog.Get(planID)
	if !ok {
		return nil, ErrInvalidPlan
	}

	acc, err := s.accountRepo.FindByID(ctx, accountID)
	if err != nil {
		zap.L().Error("failed to load account for purchase", zap.Int("accountID", accountID), zap.Error(err))
		return nil, err
	}
	if acc == nil {
		return nil, ErrAccountNotFound
	}
	if acc.Plan != nil && acc.Plan.End.After(s.now()) {
		return nil, ErrPlanAlreadyActive
	}

	invoice, err := s.payment.CreateInvoice(planID, def.Price)
	if err != nil {
		zap.L().Error("failed to create payment invoice", zap.String("planID", planID), zap.Error(err))
		return nil, fmt.Errorf("failed to create payment invoice: %w", err)
	}

	purchase := &domain.Purchase{
		TxID:       invoice.TxID,
		AccountID:  accountID,
		PlanID:     planID,
		PaymentURL: invoice.PaymentURL,
		Status:     domain.PurchaseCreated,
	}
	if _, err := s.purchaseRepo.Create(ctx, purchase); err != nil {
		zap.L().Error("can't save purchase", zap.Error(err))
		return nil, err
	}

	zap.L().Info("purchase initiated",
		zap.Int("accountID", accountID), zap.String("planID", planID), zap.String("txID", purchase.TxID))
	return purchase, nil
}

// Confirm is invoked by the payment webhook. It activates the plan with a
// frozen snapshot of the catalog terms and pays the one-time purchase
// referral bonus, all in one transaction. Redelivered confirmations are
// no-ops.
func (s *Service) Confirm(ctx context.Context, accountID int, planID string, paidAmount decimal.Decimal, txID string) error {
	def, ok := s.catalog.Get(planID)
	if !ok {
		return ErrInvalidPlan
	}
	if paidAmount.LessThan(def.Price) {
		return ErrUnderfundedPayment
	}

	purchase, err := s.purchaseRepo.FindByTxID(ctx, txID)
	if err != nil {
		return err
	}
	if purchase == nil {
		return ErrUnknownTransaction
	}
	if purchase.Status == domain.PurchaseConfirmed {
		zap.L().Info("purchase already confirmed, ignoring duplicate webhook", zap.String("txID", txID))
		return nil
	}

	acc, err := s.accountRepo.FindByID(ctx, accountID)
	if err != nil {
		return err
	}
	if acc == nil {
		return ErrAccountNotFound
	}

	now := s.now()
	snap := &domain.PlanSnapshot{
		PlanID:       def.ID,
		Instance:     uuid.New(),
		Price:        def.Price,
		Rate:         def.Rate,
		Periods:      def.Periods,
		ReferralRate: def.ReferralRate,
		Start:        now,
		End:          now.Add(s.catalog.Duration(def)),
		LastAccrual:  now,
	}

	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		confirmed, err := s.purchaseRepo.MarkConfirmed(ctx, txID, paidAmount, now)
		if err != nil {
			return err
		}
		if !confirmed {
			// Lost the race with a concurrent delivery of the same webhook.
			return nil
		}

		activated, err := s.accountRepo.ActivatePlan(ctx, accountID, snap)
		if err != nil {
			return err
		}
		if !activated {
			// A plan is already running, so this confirmation belongs to
			// an older purchase that was paid too late. Roll everything
			// back rather than overwrite the active plan.
			return ErrPlanAlreadyActive
		}

		if acc.ReferredBy != nil {
			bonus := def.Price.Mul(def.ReferralRate)
			credit := &domain.ReferralCredit{
				ReferrerID:  *acc.ReferredBy,
				ReferredID:  accountID,
				PlanID:      def.ID,
				Instance:    snap.Instance,
				Source:      domain.ReferralSourcePurchase,
				PeriodIndex: 0,
				Amount:      bonus,
			}
			if err := s.ledgerRepo.AppendReferral(ctx, credit); err != nil {
				return err
			}
			if err := s.accountRepo.CreditReferrer(ctx, *acc.ReferredBy, bonus, 1); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		zap.L().Error("failed to confirm purchase",
			zap.Int("accountID", accountID), zap.String("txID", txID), zap.Error(err))
		return err
	}

	zap.L().Info("plan activated",
		zap.Int("accountID", accountID), zap.String("planID", planID), zap.String("instance", snap.Instance.String()))
	return nil
}

func (s *Service) Purchases(ctx context.Context, accountID int) ([]domain.Purchase, error) {
	purchases, err := s.purchaseRepo.ListByAccount(ctx, accountID)
	if err != nil {
		zap.L().Error("failed to get purchases", zap.Error(err))
		return nil, err
	}
	return purchases, nil
}
