package purchaserepo

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/janisar-hyder/backend/internal/domain"
	"github.com/janisar-hyder/backend/internal/pg"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) Create(ctx context.Context, p *domain.Purchase) (*domain.Purchase, error) {
	query := `
        INSERT INTO purchases (tx_id, account_id, plan_id, payment_url, status)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING id, created_at
    `
	err := r.db.QueryRow(ctx, query, p.TxID, p.AccountID, p.PlanID, p.PaymentURL, p.Status).
		Scan(&p.ID, &p.CreatedAt)
	if err != nil {
		zap.L().Error("can't save purchase", zap.Error(err))
		return nil, err
	}
	return p, nil
}

func (r *Repository) FindByTxID(ctx context.Context, txID string) (*domain.Purchase, error) {
	query := `
        SELECT id, tx_id, account_id, plan_id, paid_amount, payment_url, status, created_at, confirmed_at
        FROM purchases
        WHERE tx_id = $1
    `
	var p domain.Purchase
	err := r.db.QueryRow(ctx, query, txID).Scan(
		&p.ID, &p.TxID, &p.AccountID, &p.PlanID, &p.PaidAmount,
		&p.PaymentURL, &p.Status, &p.CreatedAt, &p.ConfirmedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find purchase", zap.Error(err))
		return nil, err
	}
	return &p, nil
}

// MarkConfirmed is conditional on the created state, so a redelivered
// webhook confirms at most once.
func (r *Repository) MarkConfirmed(ctx context.Context, txID string, paidAmount decimal.Decimal, confirmedAt time.Time) (bool, error) {
	query := `
        UPDATE purchases
        SET status = 'confirmed', paid_amount = $1, confirmed_at = $2
        WHERE tx_id = $3 AND status = 'created'
    `
	tag, err := r.db.Exec(ctx, query, paidAmount, confirmedAt, txID)
	if err != nil {
		zap.L().Error("failed to confirm purchase", zap.String("txID", txID), zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (r *Repository) ListByAccount(ctx context.Context, accountID int) ([]domain.Purchase, error) {
	query := `
        SELECT id, tx_id, account_id, plan_id, paid_amount, payment_url, status, created_at, confirmed_at
        FROM purchases
        WHERE account_id = $1
        ORDER BY created_at DESC
    `
	rows, err := r.db.Query(ctx, query, accountID)
	if err != nil {
		zap.L().Error("failed to fetch purchases", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var purchases []domain.Purchase
	for rows.Next() {
		var p domain.Purchase
		err := rows.Scan(&p.ID, &p.TxID, &p.AccountID, &p.PlanID, &p.PaidAmount,
			&p.PaymentURL, &p.Status, &p.CreatedAt, &p.ConfirmedAt)
		if err != nil {
			zap.L().Error("failed to scan purchase row", zap.Error(err))
			return nil, err
		}
		purchases = append(purchases, p)
	}
	return purchases, rows.Err()
}
