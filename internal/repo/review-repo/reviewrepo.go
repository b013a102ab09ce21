package reviewrepo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
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

func (r *Repository) Create(ctx context.Context, review *domain.Review) (*domain.Review, error) {
	query := `
        INSERT INTO reviews (account_id, rating, title, body)
        VALUES ($1, $2, $3, $4)
        RETURNING id, created_at, updated_at
    `
	err := r.db.QueryRow(ctx, query, review.AccountID, review.Rating, review.Title, review.Body).
		Scan(&review.ID, &review.CreatedAt, &review.UpdatedAt)
	if err != nil {
		zap.L().Error("can't save review", zap.Error(err))
		return nil, err
	}
	return review, nil
}

func (r *Repository) FindByID(ctx context.Context, reviewID int) (*domain.Review, error) {
	query := `
        SELECT id, account_id, rating, title, body, created_at, updated_at
        FROM reviews
        WHERE id = $1
    `
	var review domain.Review
	err := r.db.QueryRow(ctx, query, reviewID).Scan(
		&review.ID, &review.AccountID, &review.Rating, &review.Title,
		&review.Body, &review.CreatedAt, &review.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find review", zap.Error(err))
		return nil, err
	}
	return &review, nil
}

func (r *Repository) ListAll(ctx context.Context) ([]domain.Review, error) {
	query := `
        SELECT id, account_id, rating, title, body, created_at, updated_at
        FROM reviews
        ORDER BY created_at DESC
    `
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		zap.L().Error("failed to fetch reviews", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var reviews []domain.Review
	for rows.Next() {
		var review domain.Review
		err := rows.Scan(&review.ID, &review.AccountID, &review.Rating, &review.Title,
			&review.Body, &review.CreatedAt, &review.UpdatedAt)
		if err != nil {
			zap.L().Error("failed to scan review row", zap.Error(err))
			return nil, err
		}
		reviews = append(reviews, review)
	}
	return reviews, rows.Err()
}

func (r *Repository) Update(ctx context.Context, review *domain.Review) (bool, error) {
	query := `
        UPDATE reviews
        SET rating = $1, title = $2, body = $3, updated_at = NOW()
        WHERE id = $4
    `
	tag, err := r.db.Exec(ctx, query, review.Rating, review.Title, review.Body, review.ID)
	if err != nil {
		zap.L().Error("failed to update review", zap.Int("reviewID", review.ID), zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (r *Repository) Delete(ctx context.Context, reviewID int) (bool, error) {
	query := `
        DELETE FROM reviews
        WHERE id = $1
    `
	tag, err := r.db.Exec(ctx, query, reviewID)
	if err != nil {
		zap.L().Error("failed to delete review", zap.Int("reviewID", reviewID), zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}
