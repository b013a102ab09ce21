package accrual

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/janisar-hyder/backend/internal/config"
	"github.com/janisar-hyder/backend/internal/domain"
	"github.com/janisar-hyder/backend/internal/pg"
	ledgerrepo "github.com/janisar-hyder/backend/internal/repo/ledger-repo"
)

type AccountRepo interface {
	FindDue(ctx context.Context, accrualCutoff, now time.Time, limit uint32) ([]domain.Account, error)
	CreditAccrual(ctx context.Context, accountID int, instance uuid.UUID, amount decimal.Decimal, newLastAccrual time.Time) (bool, error)
	CreditReferrer(ctx context.Context, referrerID int, amount decimal.Decimal, countDelta int) error
	SettleMaturity(ctx context.Context, accountID int, instance uuid.UUID, principal decimal.Decimal) (bool, error)
	SetFlagged(ctx context.Context, accountID int) error
}

type LedgerRepo interface {
	AppendAccrual(ctx context.Context, event *domain.AccrualEvent) error
	AppendReferral(ctx context.Context, credit *domain.ReferralCredit) error
}

type Notifier interface {
	Notify(event string, accountID int, payload any)
}

const eventPlanMatured = "plan.matured"

// ErrInconsistentState means the persisted account contradicts the plan
// lifecycle (principal returned but plan fields still set). Retrying could
// double-credit, so the account is flagged for manual reconciliation and
// excluded from future sweeps.
var ErrInconsistentState = errors.New("account plan state inconsistent")

// errStalePlan: the account's plan changed between read and write; another
// writer got there first. The next sweep re-evaluates from persisted state.
var errStalePlan = errors.New("plan changed during accrual")

// Report is returned to the scheduler after each sweep.
type Report struct {
	Processed int
	Skipped   int
	Failed    int
}

type Service struct {
	accountRepo AccountRepo
	ledgerRepo  LedgerRepo
	txManager   pg.TXManager
	notifier    Notifier

	limit         uint32
	workerPool    WorkerPoolI
	sweepInterval time.Duration
	period        time.Duration
	now           func() time.Time

	processing sync.Map
}

func New(cfg *config.Config, accountRepo AccountRepo, ledgerRepo LedgerRepo, txManager pg.TXManager, notifier Notifier) *Service {
	return &Service{
		accountRepo:   accountRepo,
		ledgerRepo:    ledgerRepo,
		txManager:     txManager,
		notifier:      notifier,
		limit:         1000,
		workerPool:    NewWorkerPool(10),
		sweepInterval: cfg.SweepInterval,
		period:        cfg.AccrualPeriod,
		now:           time.Now,
	}
}

func (s *Service) Start(ctx context.Context) {
	zap.L().Info("ROI accrual service started", zap.Duration("interval", s.sweepInterval))
	go s.run(ctx)
}

func (s *Service) run(ctx context.Context) {
	ticker := time.NewTicker(s.sweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			zap.L().Info("Context canceled, stopping accrual service")
			return
		case <-ticker.C:
			report, err := s.Sweep(ctx)
			if err != nil {
				zap.L().Error("Accrual sweep finished with errors", zap.Error(err))
			}
			zap.L().Info("Accrual sweep finished",
				zap.Int("processed", report.Processed),
				zap.Int("skipped", report.Skipped),
				zap.Int("failed", report.Failed))
		}
	}
}

// Sweep runs one pass over all due accounts. Accounts are processed
// independently; one account's failure never aborts the others. The sweep
// keeps no state across runs, so a killed process simply re-evaluates
// everything from the store on the next tick.
func (s *Service) Sweep(ctx context.Context) (Report, error) {
	now := s.now()
	accounts, err := s.accountRepo.FindDue(ctx, now.Add(-s.period), now, atomic.LoadUint32(&s.limit))
	if err != nil {
		zap.L().Error("Failed to fetch accounts for accrual", zap.Error(err))
		return Report{}, err
	}

	var processed, skipped, failed int64
	var g errgroup.Group

	for _, acc := range accounts {
		acc := acc

		if _, loaded := s.processing.LoadOrStore(acc.ID, struct{}{}); loaded {
			atomic.AddInt64(&skipped, 1)
			continue
		}

		g.Go(func() error {
			// The pool only bounds concurrency; the task hands its result
			// back here so failed accounts surface in Wait and the report.
			done := make(chan error, 1)
			if err := s.workerPool.AddTask(ctx, func() error {
				defer s.processing.Delete(acc.ID)
				done <- s.processAccount(ctx, acc)
				return nil
			}); err != nil {
				s.processing.Delete(acc.ID)
				atomic.AddInt64(&failed, 1)
				return err
			}

			switch err := <-done; {
			case err == nil:
				atomic.AddInt64(&processed, 1)
				return nil
			case errors.Is(err, errStalePlan), errors.Is(err, ledgerrepo.ErrDuplicateEvent):
				atomic.AddInt64(&skipped, 1)
				return nil
			default:
				atomic.AddInt64(&failed, 1)
				zap.L().Error("Failed to process account accrual",
					zap.Int("accountID", acc.ID), zap.Error(err))
				return err
			}
		})
	}

	err = g.Wait()

	return Report{
		Processed: int(atomic.LoadInt64(&processed)),
		Skipped:   int(atomic.LoadInt64(&skipped)),
		Failed:    int(atomic.LoadInt64(&failed)),
	}, err
}

// Settle runs the same accrue-then-settle sequence as the sweep for one
// account, on demand. The read path calls it when it observes an ended
// plan, so outstanding periods are credited before the principal comes
// back. Losing the race to the sweep is not an error here.
func (s *Service) Settle(ctx context.Context, acc domain.Account) error {
	if _, loaded := s.processing.LoadOrStore(acc.ID, struct{}{}); loaded {
		// The sweep is already working on this account.
		return nil
	}
	defer s.processing.Delete(acc.ID)

	err := s.processAccount(ctx, acc)
	if errors.Is(err, errStalePlan) || errors.Is(err, ledgerrepo.ErrDuplicateEvent) {
		return nil
	}
	return err
}

// processAccount applies every due accrual period and, when the plan end
// has passed, settles the principal. Each step is a single transaction;
// partial progress inside a step rolls back as a unit.
func (s *Service) processAccount(ctx context.Context, acc domain.Account) error {
	plan := acc.Plan
	if plan == nil {
		return nil
	}
	if acc.PrincipalReturned {
		// Principal paid out but plan fields still present: must never
		// happen with the single-statement settle. Do not retry.
		if err := s.accountRepo.SetFlagged(ctx, acc.ID); err != nil {
			return err
		}
		return ErrInconsistentState
	}

	now := s.now()
	if now.Before(plan.Start) {
		return nil
	}

	if err := s.accrueDue(ctx, acc, now); err != nil {
		return err
	}

	if now.After(plan.End) {
		settled, err := s.accountRepo.SettleMaturity(ctx, acc.ID, plan.Instance, plan.Price)
		if err != nil {
			return err
		}
		if settled {
			zap.L().Info("plan matured, principal returned",
				zap.Int("accountID", acc.ID), zap.String("planID", plan.PlanID))
			s.notifier.Notify(eventPlanMatured, acc.ID, map[string]string{
				"plan":      plan.PlanID,
				"principal": plan.Price.String(),
			})
		}
	}
	return nil
}

func (s *Service) accrueDue(ctx context.Context, acc domain.Account, now time.Time) error {
	plan := acc.Plan

	// last_accrual always sits on a period boundary, so the credited count
	// divides exactly.
	credited := int(plan.LastAccrual.Sub(plan.Start) / s.period)
	elapsed := int(now.Sub(plan.LastAccrual) / s.period)
	remaining := plan.Periods - credited
	periods := elapsed
	if periods > remaining {
		periods = remaining
	}
	if periods < 1 {
		return nil
	}

	amount := plan.Price.Mul(plan.Rate).Mul(decimal.NewFromInt(int64(periods)))
	// Advance by whole periods, not to now, so the schedule never drifts.
	newLastAccrual := plan.LastAccrual.Add(time.Duration(periods) * s.period)

	return s.txManager.Begin(ctx, func(ctx context.Context) error {
		event := &domain.AccrualEvent{
			AccountID:   acc.ID,
			PlanID:      plan.PlanID,
			Instance:    plan.Instance,
			FirstPeriod: credited + 1,
			LastPeriod:  credited + periods,
			Amount:      amount,
		}
		if err := s.ledgerRepo.AppendAccrual(ctx, event); err != nil {
			return err
		}

		ok, err := s.accountRepo.CreditAccrual(ctx, acc.ID, plan.Instance, amount, newLastAccrual)
		if err != nil {
			return err
		}
		if !ok {
			return errStalePlan
		}

		if acc.ReferredBy != nil {
			bonus := amount.Mul(plan.ReferralRate)
			credit := &domain.ReferralCredit{
				ReferrerID:  *acc.ReferredBy,
				ReferredID:  acc.ID,
				PlanID:      plan.PlanID,
				Instance:    plan.Instance,
				Source:      domain.ReferralSourceAccrual,
				PeriodIndex: credited + periods,
				Amount:      bonus,
			}
			if err := s.ledgerRepo.AppendReferral(ctx, credit); err != nil {
				return err
			}
			if err := s.accountRepo.CreditReferrer(ctx, *acc.ReferredBy, bonus, 0); err != nil {
				return err
			}
		}

		zap.L().Info("ROI credited",
			zap.Int("accountID", acc.ID),
			zap.String("planID", plan.PlanID),
			zap.Int("periods", periods),
			zap.String("amount", amount.String()))
		return nil
	})
}
