package accountrepo

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/janisar-hyder/backend/internal/domain"
	"github.com/janisar-hyder/backend/internal/pg"
)

const accountColumns = `
        id, email, firstname, lastname, phone, password_hash, role, kyc_verified,
        referral_code, referred_by, referred_count, balance, roi_earnings, referral_earnings,
        plan_id, plan_instance, plan_price, plan_rate, plan_periods, plan_referral_rate,
        plan_start, plan_end, last_accrual, principal_returned, flagged, created_at, updated_at`

type Repository struct {
	db        pg.Database
	txManager pg.TXManager
}

func New(db pg.Database, txManager pg.TXManager) *Repository {
	return &Repository{
		db:        db,
		txManager: txManager,
	}
}

func scanAccount(row pgx.Row) (*domain.Account, error) {
	var acc domain.Account
	var planID *string
	var instance *uuid.UUID
	var price, rate, refRate *decimal.Decimal
	var periods *int
	var start, end, lastAccrual *time.Time

	err := row.Scan(
		&acc.ID, &acc.Email, &acc.FirstName, &acc.LastName, &acc.Phone,
		&acc.PasswordHash, &acc.Role, &acc.KycVerified,
		&acc.ReferralCode, &acc.ReferredBy, &acc.ReferredCount,
		&acc.Balance, &acc.ROIEarnings, &acc.ReferralEarnings,
		&planID, &instance, &price, &rate, &periods, &refRate,
		&start, &end, &lastAccrual,
		&acc.PrincipalReturned, &acc.Flagged, &acc.CreatedAt, &acc.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if planID != nil {
		acc.Plan = &domain.PlanSnapshot{
			PlanID:       *planID,
			Instance:     *instance,
			Price:        *price,
			Rate:         *rate,
			Periods:      *periods,
			ReferralRate: *refRate,
			Start:        *start,
			End:          *end,
			LastAccrual:  *lastAccrual,
		}
	}
	return &acc, nil
}

func (r *Repository) Create(ctx context.Context, acc *domain.Account) (*domain.Account, error) {
	query := `
        INSERT INTO accounts (email, firstname, lastname, phone, password_hash, role, referral_code, referred_by)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
        RETURNING id, created_at, updated_at
    `
	err := r.db.QueryRow(ctx, query,
		acc.Email, acc.FirstName, acc.LastName, acc.Phone,
		acc.PasswordHash, acc.Role, acc.ReferralCode, acc.ReferredBy,
	).Scan(&acc.ID, &acc.CreatedAt, &acc.UpdatedAt)
	if err != nil {
		zap.L().Error("failed to create account", zap.Error(err))
		return nil, err
	}
	return acc, nil
}

func (r *Repository) FindByID(ctx context.Context, accountID int) (*domain.Account, error) {
	query := `SELECT` + accountColumns + `
        FROM accounts
        WHERE id = $1
    `
	acc, err := scanAccount(r.db.QueryRow(ctx, query, accountID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("failed to find account by id", zap.Int("accountID", accountID), zap.Error(err))
		return nil, err
	}
	return acc, nil
}

func (r *Repository) FindByEmail(ctx context.Context, email string) (*domain.Account, error) {
	query := `SELECT` + accountColumns + `
        FROM accounts
        WHERE email = $1
    `
	acc, err := scanAccount(r.db.QueryRow(ctx, query, email))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("failed to find account by email", zap.Error(err))
		return nil, err
	}
	return acc, nil
}

func (r *Repository) FindByReferralCode(ctx context.Context, code string) (*domain.Account, error) {
	query := `SELECT` + accountColumns + `
        FROM accounts
        WHERE referral_code = $1
    `
	acc, err := scanAccount(r.db.QueryRow(ctx, query, code))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("failed to find account by referral code", zap.Error(err))
		return nil, err
	}
	return acc, nil
}

func (r *Repository) UpdateProfile(ctx context.Context, accountID int, firstName, lastName, phone string) error {
	query := `
        UPDATE accounts
        SET firstname = $1, lastname = $2, phone = $3, updated_at = NOW()
        WHERE id = $4
    `
	_, err := r.db.Exec(ctx, query, firstName, lastName, phone, accountID)
	if err != nil {
		zap.L().Error("failed to update profile", zap.Int("accountID", accountID), zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) SetKycVerified(ctx context.Context, accountID int, verified bool) error {
	query := `
        UPDATE accounts
        SET kyc_verified = $1, updated_at = NOW()
        WHERE id = $2
    `
	_, err := r.db.Exec(ctx, query, verified, accountID)
	if err != nil {
		zap.L().Error("failed to set kyc status", zap.Int("accountID", accountID), zap.Error(err))
		return err
	}
	return nil
}

// SetFlagged marks the account for manual reconciliation; flagged accounts
// are excluded from the accrual sweep.
func (r *Repository) SetFlagged(ctx context.Context, accountID int) error {
	query := `
        UPDATE accounts
        SET flagged = TRUE, updated_at = NOW()
        WHERE id = $1
    `
	_, err := r.db.Exec(ctx, query, accountID)
	if err != nil {
		zap.L().Error("failed to flag account", zap.Int("accountID", accountID), zap.Error(err))
		return err
	}
	return nil
}

// ActivatePlan snapshots the purchased terms onto the account and resets
// the accrual bookkeeping for the new plan instance. The update only
// matches while no plan is running, so a late confirmation of an older
// purchase cannot overwrite an active plan. Returns false when the
// precondition failed.
func (r *Repository) ActivatePlan(ctx context.Context, accountID int, snap *domain.PlanSnapshot) (bool, error) {
	query := `
        UPDATE accounts
        SET plan_id = $1, plan_instance = $2, plan_price = $3, plan_rate = $4,
            plan_periods = $5, plan_referral_rate = $6, plan_start = $7, plan_end = $8,
            last_accrual = $9, roi_earnings = 0, principal_returned = FALSE, updated_at = NOW()
        WHERE id = $10 AND (plan_id IS NULL OR plan_end < NOW())
    `
	var activated bool
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		tag, err := r.db.Exec(ctx, query,
			snap.PlanID, snap.Instance, snap.Price, snap.Rate,
			snap.Periods, snap.ReferralRate, snap.Start, snap.End,
			snap.LastAccrual, accountID,
		)
		if err != nil {
			zap.L().Error("failed to activate plan", zap.Int("accountID", accountID), zap.Error(err))
			return err
		}
		activated = tag.RowsAffected() > 0
		return nil
	})
	return activated, err
}

// CreditAccrual applies one accrual tick. The plan_instance predicate makes
// the update conditional: if the plan changed since the account was read,
// no row matches and the caller sees false.
func (r *Repository) CreditAccrual(ctx context.Context, accountID int, instance uuid.UUID, amount decimal.Decimal, newLastAccrual time.Time) (bool, error) {
	query := `
        UPDATE accounts
        SET balance = balance + $1, roi_earnings = roi_earnings + $1,
            last_accrual = $2, updated_at = NOW()
        WHERE id = $3 AND plan_instance = $4 AND last_accrual < $2
    `
	tag, err := r.db.Exec(ctx, query, amount, newLastAccrual, accountID, instance)
	if err != nil {
		zap.L().Error("failed to credit accrual", zap.Int("accountID", accountID), zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

// CreditReferrer credits a referral bonus. countDelta is 1 on purchase
// confirmation (a new referred purchase) and 0 on accrual ticks.
func (r *Repository) CreditReferrer(ctx context.Context, referrerID int, amount decimal.Decimal, countDelta int) error {
	query := `
        UPDATE accounts
        SET balance = balance + $1, referral_earnings = referral_earnings + $1,
            referred_count = referred_count + $2, updated_at = NOW()
        WHERE id = $3
    `
	_, err := r.db.Exec(ctx, query, amount, countDelta, referrerID)
	if err != nil {
		zap.L().Error("failed to credit referrer", zap.Int("referrerID", referrerID), zap.Error(err))
		return err
	}
	return nil
}

// SettleMaturity returns the principal and clears the plan in one
// statement, so no intermediate credited-but-not-cleared state can ever be
// observed or persisted.
func (r *Repository) SettleMaturity(ctx context.Context, accountID int, instance uuid.UUID, principal decimal.Decimal) (bool, error) {
	query := `
        UPDATE accounts
        SET balance = balance + $1, principal_returned = TRUE,
            plan_id = NULL, plan_instance = NULL, plan_price = NULL, plan_rate = NULL,
            plan_periods = NULL, plan_referral_rate = NULL, plan_start = NULL, plan_end = NULL,
            last_accrual = NULL, updated_at = NOW()
        WHERE id = $2 AND plan_instance = $3 AND principal_returned = FALSE
    `
	tag, err := r.db.Exec(ctx, query, principal, accountID, instance)
	if err != nil {
		zap.L().Error("failed to settle maturity", zap.Int("accountID", accountID), zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

// DebitBalance subtracts amount iff the balance covers it.
func (r *Repository) DebitBalance(ctx context.Context, accountID int, amount decimal.Decimal) (bool, error) {
	query := `
        UPDATE accounts
        SET balance = balance - $1, updated_at = NOW()
        WHERE id = $2 AND balance >= $1
    `
	tag, err := r.db.Exec(ctx, query, amount, accountID)
	if err != nil {
		zap.L().Error("failed to debit balance", zap.Int("accountID", accountID), zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

// FindDue returns accounts whose plan has at least one uncredited period or
// has passed its end date. accrualCutoff is now minus one period length.
func (r *Repository) FindDue(ctx context.Context, accrualCutoff, now time.Time, limit uint32) ([]domain.Account, error) {
	query := `SELECT` + accountColumns + `
        FROM accounts
        WHERE plan_id IS NOT NULL AND flagged = FALSE
          AND (last_accrual <= $1 OR plan_end < $2)
        ORDER BY last_accrual ASC
        LIMIT $3
    `
	rows, err := r.db.Query(ctx, query, accrualCutoff, now, int(limit))
	if err != nil {
		zap.L().Error("failed to find due accounts", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var accounts []domain.Account
	for rows.Next() {
		acc, err := scanAccount(rows)
		if err != nil {
			zap.L().Error("failed to scan due account row", zap.Error(err))
			return nil, err
		}
		accounts = append(accounts, *acc)
	}
	return accounts, rows.Err()
}

func (r *Repository) ListReferred(ctx context.Context, referrerID int) ([]domain.Account, error) {
	query := `SELECT` + accountColumns + `
        FROM accounts
        WHERE referred_by = $1
        ORDER BY created_at DESC
    `
	rows, err := r.db.Query(ctx, query, referrerID)
	if err != nil {
		zap.L().Error("failed to list referred accounts", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var accounts []domain.Account
	for rows.Next() {
		acc, err := scanAccount(rows)
		if err != nil {
			zap.L().Error("failed to scan referred account row", zap.Error(err))
			return nil, err
		}
		accounts = append(accounts, *acc)
	}
	return accounts, rows.Err()
}

func (r *Repository) ListAll(ctx context.Context) ([]domain.Account, error) {
	query := `SELECT` + accountColumns + `
        FROM accounts
        ORDER BY updated_at DESC
    `
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		zap.L().Error("failed to list accounts", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var accounts []domain.Account
	for rows.Next() {
		acc, err := scanAccount(rows)
		if err != nil {
			zap.L().Error("failed to scan account row", zap.Error(err))
			return nil, err
		}
		accounts = append(accounts, *acc)
	}
	return accounts, rows.Err()
}
