package reviewrepo

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

var reviewColumns = []string{"id", "account_id", "rating", "title", "body", "created_at", "updated_at"}

func TestRepository_Create(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`INSERT INTO reviews`).
		WithArgs(1, 5, "great", "really solid returns").
		WillReturnRows(pgxmock.NewRows([]string{"id", "created_at", "updated_at"}).AddRow(10, now, now))

	review, err := repo.Create(context.Background(), &domain.Review{
		AccountID: 1, Rating: 5, Title: "great", Body: "really solid returns",
	})
	assert.NoError(t, err)
	assert.Equal(t, 10, review.ID)

	mock.ExpectQuery(`INSERT INTO reviews`).
		WithArgs(1, 5, "great", "really solid returns").
		WillReturnError(errors.New("database error"))

	review, err = repo.Create(context.Background(), &domain.Review{
		AccountID: 1, Rating: 5, Title: "great", Body: "really solid returns",
	})
	assert.Error(t, err)
	assert.Nil(t, review)
}

func TestRepository_FindByID(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`FROM reviews\s+WHERE id = \$1`).
		WithArgs(10).
		WillReturnRows(pgxmock.NewRows(reviewColumns).
			AddRow(10, 1, 5, "great", "really solid returns", now, now))

	review, err := repo.FindByID(context.Background(), 10)
	assert.NoError(t, err)
	assert.Equal(t, 5, review.Rating)

	mock.ExpectQuery(`FROM reviews\s+WHERE id = \$1`).
		WithArgs(99).
		WillReturnError(pgx.ErrNoRows)

	review, err = repo.FindByID(context.Background(), 99)
	assert.NoError(t, err)
	assert.Nil(t, review)
}

func TestRepository_ListAll(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`FROM reviews\s+ORDER BY created_at DESC`).
		WillReturnRows(pgxmock.NewRows(reviewColumns).
			AddRow(11, 2, 4, "good", "steady payouts", now, now).
			AddRow(10, 1, 5, "great", "really solid returns", now.Add(-time.Hour), now.Add(-time.Hour)))

	reviews, err := repo.ListAll(context.Background())
	assert.NoError(t, err)
	assert.Len(t, reviews, 2)
	assert.Equal(t, 11, reviews[0].ID)
}

func TestRepository_Update(t *testing.T) {
	repo, mock := NewMock(t)

	review := &domain.Review{ID: 10, Rating: 4, Title: "updated", Body: "still good"}

	mock.ExpectExec(`UPDATE reviews\s+SET rating = \$1`).
		WithArgs(4, "updated", "still good", 10).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	ok, err := repo.Update(context.Background(), review)
	assert.NoError(t, err)
	assert.True(t, ok)

	mock.ExpectExec(`UPDATE reviews\s+SET rating = \$1`).
		WithArgs(4, "updated", "still good", 10).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	ok, err = repo.Update(context.Background(), review)
	assert.NoError(t, err)
	assert.False(t, ok)
}

func TestRepository_Delete(t *testing.T) {
	repo, mock := NewMock(t)

	mock.ExpectExec(`DELETE FROM reviews`).
		WithArgs(10).
		WillReturnResult(pgxmock.NewResult("DELETE", 1))

	ok, err := repo.Delete(context.Background(), 10)
	assert.NoError(t, err)
	assert.True(t, ok)

	mock.ExpectExec(`DELETE FROM reviews`).
		WithArgs(99).
		WillReturnResult(pgxmock.NewResult("DELETE", 0))

	ok, err = repo.Delete(context.Background(), 99)
	assert.NoError(t, err)
	assert.False(t, ok)
}
