package otprepo

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"

	"github.com/janisar-hyder/backend/internal/domain"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB)
	defer mockDB.Close()

	return repo, mockDB
}

func TestRepository_Save(t *testing.T) {
	repo, mock := NewMock(t)

	expiresAt := time.Date(2026, 7, 1, 0, 10, 0, 0, time.UTC)
	ch := &domain.OTPChallenge{
		Email:        "jane@example.com",
		CodeHash:     "code-hash",
		FirstName:    "Jane",
		LastName:     "Doe",
		Phone:        "+1 234 567 8901",
		PasswordHash: "password-hash",
		ExpiresAt:    expiresAt,
	}

	mock.ExpectExec(`INSERT INTO otp_challenges`).
		WithArgs("jane@example.com", "code-hash", "Jane", "Doe",
			"+1 234 567 8901", "password-hash", (*int)(nil), expiresAt).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	assert.NoError(t, repo.Save(context.Background(), ch))

	mock.ExpectExec(`INSERT INTO otp_challenges`).
		WithArgs("jane@example.com", "code-hash", "Jane", "Doe",
			"+1 234 567 8901", "password-hash", (*int)(nil), expiresAt).
		WillReturnError(errors.New("database error"))

	assert.Error(t, repo.Save(context.Background(), ch))
}

func TestRepository_Find(t *testing.T) {
	repo, mock := NewMock(t)

	expiresAt := time.Date(2026, 7, 1, 0, 10, 0, 0, time.UTC)
	columns := []string{"email", "code_hash", "firstname", "lastname", "phone", "password_hash", "referred_by", "expires_at"}

	mock.ExpectQuery(`FROM otp_challenges\s+WHERE email = \$1`).
		WithArgs("jane@example.com").
		WillReturnRows(pgxmock.NewRows(columns).AddRow(
			"jane@example.com", "code-hash", "Jane", "Doe",
			"+1 234 567 8901", "password-hash", (*int)(nil), expiresAt,
		))

	ch, err := repo.Find(context.Background(), "jane@example.com")
	assert.NoError(t, err)
	assert.Equal(t, "code-hash", ch.CodeHash)
	assert.Equal(t, expiresAt, ch.ExpiresAt)

	mock.ExpectQuery(`FROM otp_challenges\s+WHERE email = \$1`).
		WithArgs("missing@example.com").
		WillReturnError(pgx.ErrNoRows)

	ch, err = repo.Find(context.Background(), "missing@example.com")
	assert.NoError(t, err)
	assert.Nil(t, ch)
}

func TestRepository_Delete(t *testing.T) {
	repo, mock := NewMock(t)

	mock.ExpectExec(`DELETE FROM otp_challenges`).
		WithArgs("jane@example.com").
		WillReturnResult(pgxmock.NewResult("DELETE", 1))

	assert.NoError(t, repo.Delete(context.Background(), "jane@example.com"))

	mock.ExpectExec(`DELETE FROM otp_challenges`).
		WithArgs("jane@example.com").
		WillReturnError(errors.New("database error"))

	assert.Error(t, repo.Delete(context.Background(), "jane@example.com"))
}
