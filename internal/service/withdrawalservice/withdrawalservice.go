package withdrawalservice

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/janisar-hyder/backend/internal/domain"
	"github.com/janisar-hyder/backend/internal/pg"
	"github.com/janisar-hyder/backend/pkg/validate"
)

type WithdrawalRepo interface {
	Create(ctx context.Context, wd *domain.Withdrawal) (*domain.Withdrawal, error)
	FindByID(ctx context.Context, withdrawalID int) (*domain.Withdrawal, error)
	HasPending(ctx context.Context, accountID int) (bool, error)
	Resolve(ctx context.Context, withdrawalID int, status string, adminID int, reason *string, resolvedAt time.Time) (bool, error)
	ListByAccount(ctx context.Context, accountID int) ([]domain.Withdrawal, error)
	ListAll(ctx context.Context, status string) ([]domain.Withdrawal, error)
}

type AccountRepo interface {
	FindByID(ctx context.Context, accountID int) (*domain.Account, error)
	DebitBalance(ctx context.Context, accountID int, amount decimal.Decimal) (bool, error)
}

type Notifier interface {
	Notify(event string, accountID int, payload any)
}

var (
	ErrAccountNotFound     = errors.New("account not found")
	ErrBelowMinimum        = errors.New("amount is below the withdrawal minimum")
	ErrKycRequired         = errors.New("kyc verification required")
	ErrPendingExists       = errors.New("a pending withdrawal already exists")
	ErrInvalidAddress      = errors.New("invalid destination address")
	ErrWithdrawalNotFound  = errors.New("withdrawal not found")
	ErrAlreadyResolved     = errors.New("withdrawal already resolved")
	ErrInsufficientBalance = errors.New("insufficient balance")
	ErrReasonRequired      = errors.New("rejection reason required")
	ErrInvalidDecision     = errors.New("invalid decision")
)

const (
	DecisionApprove = "approve"
	DecisionReject  = "reject"

	methodCard = "card"
)

const (
	eventApproved = "withdrawal.approved"
	eventRejected = "withdrawal.rejected"
)

type Service struct {
	withdrawalRepo WithdrawalRepo
	accountRepo    AccountRepo
	txManager      pg.TXManager
	notifier       Notifier
	minWithdrawal  decimal.Decimal
	feePercent     decimal.Decimal
	now            func() time.Time
}

func New(withdrawalRepo WithdrawalRepo, accountRepo AccountRepo, txManager pg.TXManager, notifier Notifier, minWithdrawal, feePercent decimal.Decimal) *Service {
	return &Service{
		withdrawalRepo: withdrawalRepo,
		accountRepo:    accountRepo,
		txManager:      txManager,
		notifier:       notifier,
		minWithdrawal:  minWithdrawal,
		feePercent:     feePercent,
		now:            time.Now,
	}
}

// Request creates a pending withdrawal. The balance is not debited until an
// admin approves.
func (s *Service) Request(ctx context.Context, accountID int, amount decimal.Decimal, method, address string) (*domain.Withdrawal, error) {
	if amount.LessThan(s.minWithdrawal) {
		return nil, ErrBelowMinimum
	}

	acc, err := s.accountRepo.FindByID(ctx, accountID)
	if err != nil {
		zap.L().Error("failed to load account for withdrawal", zap.Int("accountID", accountID), zap.Error(err))
		return nil, err
	}
	if acc == nil {
		return nil, ErrAccountNotFound
	}
	if !acc.KycVerified {
		return nil, ErrKycRequired
	}

	if method == methodCard && !validate.IsLuhn(address) {
		return nil, ErrInvalidAddress
	}

	pending, err := s.withdrawalRepo.HasPending(ctx, accountID)
	if err != nil {
		return nil, err
	}
	if pending {
		return nil, ErrPendingExists
	}

	fee := amount.Mul(s.feePercent).Div(decimal.NewFromInt(100))
	wd := &domain.Withdrawal{
		AccountID: accountID,
		Gross:     amount,
		Fee:       fee,
		Net:       amount.Sub(fee),
		Method:    method,
		Address:   address,
		Status:    domain.WithdrawalPending,
	}

	if _, err := s.withdrawalRepo.Create(ctx, wd); err != nil {
		zap.L().Error("failed to create withdrawal request", zap.Int("accountID", accountID), zap.Error(err))
		return nil, err
	}

	zap.L().Info("withdrawal requested",
		zap.Int("accountID", accountID), zap.String("gross", wd.Gross.String()))
	return wd, nil
}

// Resolve moves a pending request into a terminal state. Approval debits
// the gross amount in the same transaction as the status flip; a rejected
// request never touches the balance.
func (s *Service) Resolve(ctx context.Context, withdrawalID int, decision string, adminID int, reason string) (*domain.Withdrawal, error) {
	wd, err := s.withdrawalRepo.FindByID(ctx, withdrawalID)
	if err != nil {
		return nil, err
	}
	if wd == nil {
		return nil, ErrWithdrawalNotFound
	}
	if wd.Status != domain.WithdrawalPending {
		return nil, ErrAlreadyResolved
	}

	resolvedAt := s.now()

	switch decision {
	case DecisionApprove:
		err = s.txManager.Begin(ctx, func(ctx context.Context) error {
			resolved, err := s.withdrawalRepo.Resolve(ctx, withdrawalID, domain.WithdrawalApproved, adminID, nil, resolvedAt)
			if err != nil {
				return err
			}
			if !resolved {
				return ErrAlreadyResolved
			}
			debited, err := s.accountRepo.DebitBalance(ctx, wd.AccountID, wd.Gross)
			if err != nil {
				return err
			}
			if !debited {
				return ErrInsufficientBalance
			}
			return nil
		})
		if err != nil {
			return nil, err
		}
		wd.Status = domain.WithdrawalApproved

	case DecisionReject:
		if reason == "" {
			return nil, ErrReasonRequired
		}
		resolved, err := s.withdrawalRepo.Resolve(ctx, withdrawalID, domain.WithdrawalRejected, adminID, &reason, resolvedAt)
		if err != nil {
			return nil, err
		}
		if !resolved {
			return nil, ErrAlreadyResolved
		}
		wd.Status = domain.WithdrawalRejected
		wd.Reason = &reason

	default:
		return nil, ErrInvalidDecision
	}

	wd.AdminID = &adminID
	wd.ResolvedAt = &resolvedAt

	event := eventApproved
	if wd.Status == domain.WithdrawalRejected {
		event = eventRejected
	}
	s.notifier.Notify(event, wd.AccountID, map[string]string{
		"gross": wd.Gross.String(),
		"net":   wd.Net.String(),
	})

	zap.L().Info("withdrawal resolved",
		zap.Int("withdrawalID", withdrawalID), zap.String("status", wd.Status), zap.Int("adminID", adminID))
	return wd, nil
}

func (s *Service) GetWithdrawals(ctx context.Context, accountID int) ([]domain.Withdrawal, error) {
	withdrawals, err := s.withdrawalRepo.ListByAccount(ctx, accountID)
	if err != nil {
		zap.L().Error("failed to fetch withdrawals", zap.Error(err))
		return nil, err
	}
	return withdrawals, nil
}

func (s *Service) GetAllWithdrawals(ctx context.Context, status string) ([]domain.Withdrawal, error) {
	withdrawals, err := s.withdrawalRepo.ListAll(ctx, status)
	if err != nil {
		zap.L().Error("failed to fetch all withdrawals", zap.Error(err))
		return nil, err
	}
	return withdrawals, nil
}
