package ledgerrepo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"

	"github.com/janisar-hyder/backend/internal/domain"
	"github.com/janisar-hyder/backend/internal/pg"
)

const uniqueViolation = "23505"

// ErrDuplicateEvent means the idempotency key already exists: the period
// (or purchase bonus) was credited by an earlier run.
var ErrDuplicateEvent = errors.New("ledger event already recorded")

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}

func (r *Repository) AppendAccrual(ctx context.Context, event *domain.AccrualEvent) error {
	query := `
        INSERT INTO accrual_events (account_id, plan_id, plan_instance, first_period, last_period, amount)
        VALUES ($1, $2, $3, $4, $5, $6)
        RETURNING id, created_at
    `
	err := r.db.QueryRow(ctx, query,
		event.AccountID, event.PlanID, event.Instance,
		event.FirstPeriod, event.LastPeriod, event.Amount,
	).Scan(&event.ID, &event.CreatedAt)
	if isUniqueViolation(err) {
		return ErrDuplicateEvent
	}
	if err != nil {
		zap.L().Error("failed to append accrual event", zap.Int("accountID", event.AccountID), zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) AppendReferral(ctx context.Context, credit *domain.ReferralCredit) error {
	query := `
        INSERT INTO referral_credits (referrer_id, referred_id, plan_id, plan_instance, source, period_index, amount)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
        RETURNING id, created_at
    `
	err := r.db.QueryRow(ctx, query,
		credit.ReferrerID, credit.ReferredID, credit.PlanID, credit.Instance,
		credit.Source, credit.PeriodIndex, credit.Amount,
	).Scan(&credit.ID, &credit.CreatedAt)
	if isUniqueViolation(err) {
		return ErrDuplicateEvent
	}
	if err != nil {
		zap.L().Error("failed to append referral credit", zap.Int("referrerID", credit.ReferrerID), zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) AccrualsByAccount(ctx context.Context, accountID int) ([]domain.AccrualEvent, error) {
	query := `
        SELECT id, account_id, plan_id, plan_instance, first_period, last_period, amount, created_at
        FROM accrual_events
        WHERE account_id = $1
        ORDER BY created_at DESC
    `
	rows, err := r.db.Query(ctx, query, accountID)
	if err != nil {
		zap.L().Error("failed to fetch accrual events", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var events []domain.AccrualEvent
	for rows.Next() {
		var e domain.AccrualEvent
		err := rows.Scan(&e.ID, &e.AccountID, &e.PlanID, &e.Instance, &e.FirstPeriod, &e.LastPeriod, &e.Amount, &e.CreatedAt)
		if err != nil {
			zap.L().Error("failed to scan accrual event row", zap.Error(err))
			return nil, err
		}
		events = append(events, e)
	}
	return events, rows.Err()
}

func (r *Repository) ReferralsByReferrer(ctx context.Context, referrerID int) ([]domain.ReferralCredit, error) {
	query := `
        SELECT id, referrer_id, referred_id, plan_id, plan_instance, source, period_index, amount, created_at
        FROM referral_credits
        WHERE referrer_id = $1
        ORDER BY created_at DESC
    `
	rows, err := r.db.Query(ctx, query, referrerID)
	if err != nil {
		zap.L().Error("failed to fetch referral credits", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var credits []domain.ReferralCredit
	for rows.Next() {
		var c domain.ReferralCredit
		err := rows.Scan(&c.ID, &c.ReferrerID, &c.ReferredID, &c.PlanID, &c.Instance, &c.Source, &c.PeriodIndex, &c.Amount, &c.CreatedAt)
		if err != nil {
			zap.L().Error("failed to scan referral credit row", zap.Error(err))
			return nil, err
		}
		credits = append(credits, c)
	}
	return credits, rows.Err()
}
