package service

import (
	"testing"
	"time"

	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/janisar-hyder/backend/internal/config"
	"github.com/janisar-hyder/backend/internal/pg"
	"github.com/janisar-hyder/backend/internal/repo"
)

func TestNew(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	defer mockDB.Close()

	mockTxManager := pg.NewMockTXManager(ctrl)
	repos := repo.New(mockDB, mockTxManager)

	cfg := &config.Config{
		JWTSecret:     "test-secret",
		SweepInterval: time.Minute,
		AccrualPeriod: time.Hour,
		MinWithdrawal: 50,
		WithdrawalFee: 2.5,
	}

	services := New(cfg, repos, mockTxManager)

	assert.NotNil(t, services.AuthService)
	assert.NotNil(t, services.AccountService)
	assert.NotNil(t, services.PlanService)
	assert.NotNil(t, services.WithdrawalService)
	assert.NotNil(t, services.ReviewService)
	assert.NotNil(t, services.AccrualService)
	assert.NotNil(t, services.JWTService)
}
