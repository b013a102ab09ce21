package withdrawalrepo

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/janisar-hyder/backend/internal/domain"
	"github.com/janisar-hyder/backend/internal/pg"
)

const withdrawalColumns = `
        id, account_id, gross_amount, fee, net_amount, method, address,
        status, admin_id, reason, created_at, resolved_at`

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func scanWithdrawal(row pgx.Row) (*domain.Withdrawal, error) {
	var wd domain.Withdrawal
	err := row.Scan(
		&wd.ID, &wd.AccountID, &wd.Gross, &wd.Fee, &wd.Net, &wd.Method, &wd.Address,
		&wd.Status, &wd.AdminID, &wd.Reason, &wd.CreatedAt, &wd.ResolvedAt,
	)
	if err != nil {
		return nil, err
	}
	return &wd, nil
}

func (r *Repository) Create(ctx context.Context, wd *domain.Withdrawal) (*domain.Withdrawal, error) {
	query := `
        INSERT INTO withdrawals (account_id, gross_amount, fee, net_amount, method, address, status)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
        RETURNING id, created_at
    `
	err := r.db.QueryRow(ctx, query,
		wd.AccountID, wd.Gross, wd.Fee, wd.Net, wd.Method, wd.Address, wd.Status,
	).Scan(&wd.ID, &wd.CreatedAt)
	if err != nil {
		zap.L().Error("can't save withdrawal", zap.Error(err))
		return nil, err
	}
	return wd, nil
}

func (r *Repository) FindByID(ctx context.Context, withdrawalID int) (*domain.Withdrawal, error) {
	query := `SELECT` + withdrawalColumns + `
        FROM withdrawals
        WHERE id = $1
    `
	wd, err := scanWithdrawal(r.db.QueryRow(ctx, query, withdrawalID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("failed to find withdrawal", zap.Int("withdrawalID", withdrawalID), zap.Error(err))
		return nil, err
	}
	return wd, nil
}

func (r *Repository) HasPending(ctx context.Context, accountID int) (bool, error) {
	query := `
        SELECT EXISTS (
            SELECT 1 FROM withdrawals WHERE account_id = $1 AND status = 'pending'
        )
    `
	var exists bool
	err := r.db.QueryRow(ctx, query, accountID).Scan(&exists)
	if err != nil {
		zap.L().Error("failed to check pending withdrawals", zap.Error(err))
		return false, err
	}
	return exists, nil
}

// Resolve flips a pending request into a terminal state. The status
// predicate makes double resolution impossible: the second resolver matches
// no row and gets false.
func (r *Repository) Resolve(ctx context.Context, withdrawalID int, status string, adminID int, reason *string, resolvedAt time.Time) (bool, error) {
	query := `
        UPDATE withdrawals
        SET status = $1, admin_id = $2, reason = $3, resolved_at = $4
        WHERE id = $5 AND status = 'pending'
    `
	tag, err := r.db.Exec(ctx, query, status, adminID, reason, resolvedAt, withdrawalID)
	if err != nil {
		zap.L().Error("failed to resolve withdrawal", zap.Int("withdrawalID", withdrawalID), zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (r *Repository) ListByAccount(ctx context.Context, accountID int) ([]domain.Withdrawal, error) {
	query := `SELECT` + withdrawalColumns + `
        FROM withdrawals
        WHERE account_id = $1
        ORDER BY created_at DESC
    `
	rows, err := r.db.Query(ctx, query, accountID)
	if err != nil {
		zap.L().Error("failed to fetch withdrawals", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var withdrawals []domain.Withdrawal
	for rows.Next() {
		wd, err := scanWithdrawal(rows)
		if err != nil {
			zap.L().Error("failed to scan withdrawal row", zap.Error(err))
			return nil, err
		}
		withdrawals = append(withdrawals, *wd)
	}
	return withdrawals, rows.Err()
}

// ListAll returns every withdrawal, optionally filtered by status.
func (r *Repository) ListAll(ctx context.Context, status string) ([]domain.Withdrawal, error) {
	query := `SELECT` + withdrawalColumns + `
        FROM withdrawals
        WHERE ($1 = '' OR status = $1)
        ORDER BY created_at DESC
    `
	rows, err := r.db.Query(ctx, query, status)
	if err != nil {
		zap.L().Error("failed to fetch all withdrawals", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var withdrawals []domain.Withdrawal
	for rows.Next() {
		wd, err := scanWithdrawal(rows)
		if err != nil {
			zap.L().Error("failed to scan withdrawal row", zap.Error(err))
			return nil, err
		}
		withdrawals = append(withdrawals, *wd)
	}
	return withdrawals, rows.Err()
}
