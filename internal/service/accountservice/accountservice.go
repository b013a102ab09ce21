package accountservice

import (
	"context"
	"errors"
	"regexp"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/janisar-hyder/backend/internal/domain"
)

type AccountRepo interface {
	FindByID(ctx context.Context, accountID int) (*domain.Account, error)
	UpdateProfile(ctx context.Context, accountID int, firstName, lastName, phone string) error
	SetKycVerified(ctx context.Context, accountID int, verified bool) error
	ListReferred(ctx context.Context, referrerID int) ([]domain.Account, error)
	ListAll(ctx context.Context) ([]domain.Account, error)
}

type LedgerRepo interface {
	AccrualsByAccount(ctx context.Context, accountID int) ([]domain.AccrualEvent, error)
	ReferralsByReferrer(ctx context.Context, referrerID int) ([]domain.ReferralCredit, error)
}

// PlanSettler credits any outstanding accrual periods and returns the
// principal for an account whose plan has ended. The accrual engine
// implements it; going through it keeps the read path from settling a
// plan whose final periods are still uncredited.
type PlanSettler interface {
	Settle(ctx context.Context, acc domain.Account) error
}

var (
	ErrAccountNotFound = errors.New("account not found")
	ErrInvalidProfile  = errors.New("first name and last name are required")
	ErrInvalidPhone    = errors.New("invalid phone number format")
)

var phoneRe = regexp.MustCompile(`^[\d\s+\-()]{10,20}$`)

// PlanStatus is the active-plan view returned to the user.
type PlanStatus struct {
	HasPlan       bool
	Active        bool
	Status        string
	PlanID        string
	Price         decimal.Decimal
	DaysRemaining int
	TotalEarned   decimal.Decimal
	Balance       decimal.Decimal
}

type ReferralInfo struct {
	Code     string
	Earnings decimal.Decimal
	Count    int
	Referred []domain.Account
}

type Service struct {
	accountRepo AccountRepo
	ledgerRepo  LedgerRepo
	settler     PlanSettler
	now         func() time.Time
}

func New(accountRepo AccountRepo, ledgerRepo LedgerRepo, settler PlanSettler) *Service {
	return &Service{
		accountRepo: accountRepo,
		ledgerRepo:  ledgerRepo,
		settler:     settler,
		now:         time.Now,
	}
}

func (s *Service) GetAccount(ctx context.Context, accountID int) (*domain.Account, error) {
	acc, err := s.accountRepo.FindByID(ctx, accountID)
	if err != nil {
		zap.L().Error("failed to get account", zap.Int("accountID", accountID), zap.Error(err))
		return nil, err
	}
	if acc == nil {
		return nil, ErrAccountNotFound
	}
	return acc, nil
}

func (s *Service) UpdateProfile(ctx context.Context, accountID int, firstName, lastName, phone string) error {
	if firstName == "" || lastName == "" {
		return ErrInvalidProfile
	}
	if phone != "" && !phoneRe.MatchString(phone) {
		return ErrInvalidPhone
	}
	if err := s.accountRepo.UpdateProfile(ctx, accountID, firstName, lastName, phone); err != nil {
		zap.L().Error("failed to update profile", zap.Int("accountID", accountID), zap.Error(err))
		return err
	}
	return nil
}

// ActivePlan reports the state of the user's plan. An ended plan whose
// principal is still outstanding is settled here, lazily, through the
// accrual engine so the final uncredited periods are paid out first;
// whichever of this path and the sweep runs first wins and the other
// observes the already-settled state.
func (s *Service) ActivePlan(ctx context.Context, accountID int) (*PlanStatus, error) {
	acc, err := s.GetAccount(ctx, accountID)
	if err != nil {
		return nil, err
	}

	if acc.Plan == nil {
		return &PlanStatus{
			HasPlan: false,
			Status:  "none",
			Balance: acc.Balance,
		}, nil
	}

	now := s.now()
	if now.After(acc.Plan.End) {
		if err := s.settler.Settle(ctx, *acc); err != nil {
			zap.L().Error("failed to settle matured plan on read", zap.Int("accountID", accountID), zap.Error(err))
			return nil, err
		}
		refreshed, err := s.GetAccount(ctx, accountID)
		if err != nil {
			return nil, err
		}
		return &PlanStatus{
			HasPlan:     true,
			Active:      false,
			Status:      "completed",
			PlanID:      acc.Plan.PlanID,
			Price:       acc.Plan.Price,
			TotalEarned: refreshed.ROIEarnings,
			Balance:     refreshed.Balance,
		}, nil
	}

	daysRemaining := int(acc.Plan.End.Sub(now).Hours()/24) + 1
	return &PlanStatus{
		HasPlan:       true,
		Active:        true,
		Status:        "active",
		PlanID:        acc.Plan.PlanID,
		Price:         acc.Plan.Price,
		DaysRemaining: daysRemaining,
		TotalEarned:   acc.ROIEarnings,
		Balance:       acc.Balance,
	}, nil
}

func (s *Service) SetKycStatus(ctx context.Context, accountID int, verified bool) error {
	if _, err := s.GetAccount(ctx, accountID); err != nil {
		return err
	}
	if err := s.accountRepo.SetKycVerified(ctx, accountID, verified); err != nil {
		return err
	}
	zap.L().Info("kyc status updated", zap.Int("accountID", accountID), zap.Bool("verified", verified))
	return nil
}

func (s *Service) GetReferralInfo(ctx context.Context, accountID int) (*ReferralInfo, error) {
	acc, err := s.GetAccount(ctx, accountID)
	if err != nil {
		return nil, err
	}
	referred, err := s.accountRepo.ListReferred(ctx, accountID)
	if err != nil {
		zap.L().Error("failed to list referred accounts", zap.Error(err))
		return nil, err
	}
	return &ReferralInfo{
		Code:     acc.ReferralCode,
		Earnings: acc.ReferralEarnings,
		Count:    acc.ReferredCount,
		Referred: referred,
	}, nil
}

func (s *Service) GetROIHistory(ctx context.Context, accountID int) ([]domain.AccrualEvent, error) {
	events, err := s.ledgerRepo.AccrualsByAccount(ctx, accountID)
	if err != nil {
		zap.L().Error("failed to fetch roi history", zap.Error(err))
		return nil, err
	}
	return events, nil
}

func (s *Service) GetReferralEarnings(ctx context.Context, accountID int) ([]domain.ReferralCredit, error) {
	credits, err := s.ledgerRepo.ReferralsByReferrer(ctx, accountID)
	if err != nil {
		zap.L().Error("failed to fetch referral earnings", zap.Error(err))
		return nil, err
	}
	return credits, nil
}

func (s *Service) ListAccounts(ctx context.Context) ([]domain.Account, error) {
	accounts, err := s.accountRepo.ListAll(ctx)
	if err != nil {
		zap.L().Error("failed to list accounts", zap.Error(err))
		return nil, err
	}
	return accounts, nil
}

// PlanOverview aggregates every account's plan for the admin dashboard.
type PlanOverview struct {
	TotalUsers      int
	ActivePlanCount int
	TotalInvestment decimal.Decimal
	Accounts        []domain.Account
}

func (s *Service) GetPlanOverview(ctx context.Context) (*PlanOverview, error) {
	accounts, err := s.accountRepo.ListAll(ctx)
	if err != nil {
		zap.L().Error("failed to build plan overview", zap.Error(err))
		return nil, err
	}

	overview := &PlanOverview{
		TotalUsers:      len(accounts),
		TotalInvestment: decimal.Zero,
		Accounts:        accounts,
	}
	for _, acc := range accounts {
		if acc.Plan != nil {
			overview.ActivePlanCount++
			overview.TotalInvestment = overview.TotalInvestment.Add(acc.Plan.Price)
		}
	}
	return overview, nil
}
