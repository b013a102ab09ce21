package withdrawalrepo

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/shopspring/decimal"
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

var withdrawalRowColumns = []string{
	"id", "account_id", "gross_amount", "fee", "net_amount", "method", "address",
	"status", "admin_id", "reason", "created_at", "resolved_at",
}

func pendingRow(id int, createdAt time.Time) *pgxmock.Rows {
	return pgxmock.NewRows(withdrawalRowColumns).AddRow(
		id, 1, decimal.NewFromInt(200), decimal.NewFromInt(5), decimal.NewFromInt(195),
		"card", "4561261212345467", domain.WithdrawalPending,
		(*int)(nil), (*string)(nil), createdAt, (*time.Time)(nil),
	)
}

func TestRepository_Create(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC)

	wd := &domain.Withdrawal{
		AccountID: 1,
		Gross:     decimal.NewFromInt(200),
		Fee:       decimal.NewFromInt(5),
		Net:       decimal.NewFromInt(195),
		Method:    "card",
		Address:   "4561261212345467",
		Status:    domain.WithdrawalPending,
	}

	mock.ExpectQuery(`INSERT INTO withdrawals`).
		WithArgs(1, wd.Gross, wd.Fee, wd.Net, "card", "4561261212345467", domain.WithdrawalPending).
		WillReturnRows(pgxmock.NewRows([]string{"id", "created_at"}).AddRow(10, now))

	got, err := repo.Create(context.Background(), wd)
	assert.NoError(t, err)
	assert.Equal(t, 10, got.ID)
	assert.Equal(t, now, got.CreatedAt)

	mock.ExpectQuery(`INSERT INTO withdrawals`).
		WithArgs(1, wd.Gross, wd.Fee, wd.Net, "card", "4561261212345467", domain.WithdrawalPending).
		WillReturnError(errors.New("database error"))

	got, err = repo.Create(context.Background(), wd)
	assert.Error(t, err)
	assert.Nil(t, got)
}

func TestRepository_FindByID(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`FROM withdrawals\s+WHERE id = \$1`).
		WithArgs(10).
		WillReturnRows(pendingRow(10, now))

	wd, err := repo.FindByID(context.Background(), 10)
	assert.NoError(t, err)
	assert.Equal(t, 10, wd.ID)
	assert.Equal(t, domain.WithdrawalPending, wd.Status)
	assert.Nil(t, wd.AdminID)

	mock.ExpectQuery(`FROM withdrawals\s+WHERE id = \$1`).
		WithArgs(99).
		WillReturnError(pgx.ErrNoRows)

	wd, err = repo.FindByID(context.Background(), 99)
	assert.NoError(t, err)
	assert.Nil(t, wd)
}

func TestRepository_HasPending(t *testing.T) {
	repo, mock := NewMock(t)

	mock.ExpectQuery(`SELECT EXISTS`).
		WithArgs(1).
		WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(true))

	pending, err := repo.HasPending(context.Background(), 1)
	assert.NoError(t, err)
	assert.True(t, pending)

	mock.ExpectQuery(`SELECT EXISTS`).
		WithArgs(2).
		WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(false))

	pending, err = repo.HasPending(context.Background(), 2)
	assert.NoError(t, err)
	assert.False(t, pending)
}

func TestRepository_Resolve(t *testing.T) {
	repo, mock := NewMock(t)

	resolvedAt := time.Date(2026, 7, 1, 12, 0, 0, 0, time.UTC)
	reason := "address mismatch"

	tests := []struct {
		name      string
		status    string
		reason    *string
		mockSetup func()
		resolved  bool
		expectErr bool
	}{
		{
			name:   "Approves pending withdrawal",
			status: domain.WithdrawalApproved,
			mockSetup: func() {
				mock.ExpectExec(`UPDATE withdrawals\s+SET status = \$1`).
					WithArgs(domain.WithdrawalApproved, 99, (*string)(nil), resolvedAt, 10).
					WillReturnResult(pgxmock.NewResult("UPDATE", 1))
			},
			resolved: true,
		},
		{
			name:   "Rejects with reason",
			status: domain.WithdrawalRejected,
			reason: &reason,
			mockSetup: func() {
				mock.ExpectExec(`UPDATE withdrawals\s+SET status = \$1`).
					WithArgs(domain.WithdrawalRejected, 99, &reason, resolvedAt, 10).
					WillReturnResult(pgxmock.NewResult("UPDATE", 1))
			},
			resolved: true,
		},
		{
			name:   "Already resolved matches no row",
			status: domain.WithdrawalApproved,
			mockSetup: func() {
				mock.ExpectExec(`UPDATE withdrawals\s+SET status = \$1`).
					WithArgs(domain.WithdrawalApproved, 99, (*string)(nil), resolvedAt, 10).
					WillReturnResult(pgxmock.NewResult("UPDATE", 0))
			},
		},
		{
			name:   "Database error",
			status: domain.WithdrawalApproved,
			mockSetup: func() {
				mock.ExpectExec(`UPDATE withdrawals\s+SET status = \$1`).
					WithArgs(domain.WithdrawalApproved, 99, (*string)(nil), resolvedAt, 10).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			ok, err := repo.Resolve(context.Background(), 10, tt.status, 99, tt.reason, resolvedAt)

			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.resolved, ok)
		})
	}
}

func TestRepository_ListByAccount(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`FROM withdrawals\s+WHERE account_id = \$1`).
		WithArgs(1).
		WillReturnRows(pendingRow(10, now))

	withdrawals, err := repo.ListByAccount(context.Background(), 1)
	assert.NoError(t, err)
	assert.Len(t, withdrawals, 1)
	assert.Equal(t, 10, withdrawals[0].ID)
}

func TestRepository_ListAll(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`WHERE \(\$1 = '' OR status = \$1\)`).
		WithArgs("pending").
		WillReturnRows(pendingRow(10, now))

	withdrawals, err := repo.ListAll(context.Background(), "pending")
	assert.NoError(t, err)
	assert.Len(t, withdrawals, 1)

	adminID := 99
	mock.ExpectQuery(`WHERE \(\$1 = '' OR status = \$1\)`).
		WithArgs("").
		WillReturnRows(pendingRow(10, now).AddRow(
			11, 2, decimal.NewFromInt(100), decimal.NewFromInt(2), decimal.NewFromInt(98),
			"usdt", "TX9fqhoasw3pfJmkXjcsvg8wMN7zyp1hH5", domain.WithdrawalApproved,
			&adminID, (*string)(nil), now, &now,
		))

	withdrawals, err = repo.ListAll(context.Background(), "")
	assert.NoError(t, err)
	assert.Len(t, withdrawals, 2)
}
