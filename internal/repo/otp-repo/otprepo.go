package otprepo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/janisar-hyder/backend/internal/domain"
	"github.com/janisar-hyder/backend/internal/pg"
)

// Repository stores pending registration challenges. One row per email;
// re-registering overwrites the previous challenge.
type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) Save(ctx context.Context, ch *domain.OTPChallenge) error {
	query := `
        INSERT INTO otp_challenges (email, code_hash, firstname, lastname, phone, password_hash, referred_by, expires_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
        ON CONFLICT (email) DO UPDATE
        SET code_hash = EXCLUDED.code_hash, firstname = EXCLUDED.firstname,
            lastname = EXCLUDED.lastname, phone = EXCLUDED.phone,
            password_hash = EXCLUDED.password_hash, referred_by = EXCLUDED.referred_by,
            expires_at = EXCLUDED.expires_at
    `
	_, err := r.db.Exec(ctx, query,
		ch.Email, ch.CodeHash, ch.FirstName, ch.LastName,
		ch.Phone, ch.PasswordHash, ch.ReferredBy, ch.ExpiresAt,
	)
	if err != nil {
		zap.L().Error("can't save otp challenge", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) Find(ctx context.Context, email string) (*domain.OTPChallenge, error) {
	query := `
        SELECT email, code_hash, firstname, lastname, phone, password_hash, referred_by, expires_at
        FROM otp_challenges
        WHERE email = $1
    `
	var ch domain.OTPChallenge
	err := r.db.QueryRow(ctx, query, email).Scan(
		&ch.Email, &ch.CodeHash, &ch.FirstName, &ch.LastName,
		&ch.Phone, &ch.PasswordHash, &ch.ReferredBy, &ch.ExpiresAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find otp challenge", zap.Error(err))
		return nil, err
	}
	return &ch, nil
}

func (r *Repository) Delete(ctx context.Context, email string) error {
	query := `
        DELETE FROM otp_challenges
        WHERE email = $1
    `
	_, err := r.db.Exec(ctx, query, email)
	if err != nil {
		zap.L().Error("can't delete otp challenge", zap.Error(err))
		return err
	}
	return nil
}
