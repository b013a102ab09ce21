package ledgerrepo

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
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

func TestRepository_AppendAccrual(t *testing.T) {
	repo, mock := NewMock(t)

	now := time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC)
	instance := uuid.New()
	event := func() *domain.AccrualEvent {
		return &domain.AccrualEvent{
			AccountID:   1,
			PlanID:      "PlanA",
			Instance:    instance,
			FirstPeriod: 1,
			LastPeriod:  2,
			Amount:      decimal.NewFromInt(50),
		}
	}

	tests := []struct {
		name      string
		mockSetup func()
		wantErr   error
	}{
		{
			name: "Appends event",
			mockSetup: func() {
				mock.ExpectQuery(`INSERT INTO accrual_events`).
					WithArgs(1, "PlanA", instance, 1, 2, decimal.NewFromInt(50)).
					WillReturnRows(pgxmock.NewRows([]string{"id", "created_at"}).AddRow(10, now))
			},
		},
		{
			name: "Unique violation maps to ErrDuplicateEvent",
			mockSetup: func() {
				mock.ExpectQuery(`INSERT INTO accrual_events`).
					WithArgs(1, "PlanA", instance, 1, 2, decimal.NewFromInt(50)).
					WillReturnError(&pgconn.PgError{Code: uniqueViolation})
			},
			wantErr: ErrDuplicateEvent,
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(`INSERT INTO accrual_events`).
					WithArgs(1, "PlanA", instance, 1, 2, decimal.NewFromInt(50)).
					WillReturnError(errors.New("database error"))
			},
			wantErr: errors.New("database error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			e := event()
			err := repo.AppendAccrual(context.Background(), e)

			if tt.wantErr != nil {
				assert.EqualError(t, err, tt.wantErr.Error())
			} else {
				assert.NoError(t, err)
				assert.Equal(t, 10, e.ID)
				assert.Equal(t, now, e.CreatedAt)
			}
		})
	}
}

func TestRepository_AppendReferral(t *testing.T) {
	repo, mock := NewMock(t)

	now := time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC)
	instance := uuid.New()
	credit := &domain.ReferralCredit{
		ReferrerID:  7,
		ReferredID:  1,
		PlanID:      "PlanA",
		Instance:    instance,
		Source:      domain.ReferralSourcePurchase,
		PeriodIndex: 0,
		Amount:      decimal.NewFromInt(5),
	}

	mock.ExpectQuery(`INSERT INTO referral_credits`).
		WithArgs(7, 1, "PlanA", instance, domain.ReferralSourcePurchase, 0, decimal.NewFromInt(5)).
		WillReturnRows(pgxmock.NewRows([]string{"id", "created_at"}).AddRow(20, now))

	err := repo.AppendReferral(context.Background(), credit)
	assert.NoError(t, err)
	assert.Equal(t, 20, credit.ID)

	mock.ExpectQuery(`INSERT INTO referral_credits`).
		WithArgs(7, 1, "PlanA", instance, domain.ReferralSourcePurchase, 0, decimal.NewFromInt(5)).
		WillReturnError(&pgconn.PgError{Code: uniqueViolation})

	err = repo.AppendReferral(context.Background(), credit)
	assert.ErrorIs(t, err, ErrDuplicateEvent)
}

func TestRepository_AccrualsByAccount(t *testing.T) {
	repo, mock := NewMock(t)

	now := time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC)
	instance := uuid.New()

	rows := pgxmock.NewRows([]string{
		"id", "account_id", "plan_id", "plan_instance", "first_period", "last_period", "amount", "created_at",
	}).
		AddRow(2, 1, "PlanA", instance, 3, 3, decimal.NewFromInt(25), now).
		AddRow(1, 1, "PlanA", instance, 1, 2, decimal.NewFromInt(50), now.Add(-time.Hour))
	mock.ExpectQuery(`FROM accrual_events\s+WHERE account_id = \$1`).
		WithArgs(1).
		WillReturnRows(rows)

	events, err := repo.AccrualsByAccount(context.Background(), 1)
	assert.NoError(t, err)
	assert.Len(t, events, 2)
	assert.Equal(t, 3, events[0].FirstPeriod)
	assert.Equal(t, 1, events[1].FirstPeriod)
}

func TestRepository_ReferralsByReferrer(t *testing.T) {
	repo, mock := NewMock(t)

	now := time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC)
	instance := uuid.New()

	rows := pgxmock.NewRows([]string{
		"id", "referrer_id", "referred_id", "plan_id", "plan_instance", "source", "period_index", "amount", "created_at",
	}).
		AddRow(1, 7, 1, "PlanA", instance, domain.ReferralSourceAccrual, 2, decimal.NewFromInt(1), now)
	mock.ExpectQuery(`FROM referral_credits\s+WHERE referrer_id = \$1`).
		WithArgs(7).
		WillReturnRows(rows)

	credits, err := repo.ReferralsByReferrer(context.Background(), 7)
	assert.NoError(t, err)
	assert.Len(t, credits, 1)
	assert.Equal(t, domain.ReferralSourceAccrual, credits[0].Source)

	mock.ExpectQuery(`FROM referral_credits\s+WHERE referrer_id = \$1`).
		WithArgs(8).
		WillReturnError(errors.New("database error"))

	credits, err = repo.ReferralsByReferrer(context.Background(), 8)
	assert.Error(t, err)
	assert.Nil(t, credits)
}
