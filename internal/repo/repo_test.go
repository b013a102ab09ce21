package repo

import (
	"testing"

	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/janisar-hyder/backend/internal/pg"
	accountrepo "github.com/janisar-hyder/backend/internal/repo/account-repo"
	ledgerrepo "github.com/janisar-hyder/backend/internal/repo/ledger-repo"
	otprepo "github.com/janisar-hyder/backend/internal/repo/otp-repo"
	purchaserepo "github.com/janisar-hyder/backend/internal/repo/purchase-repo"
	reviewrepo "github.com/janisar-hyder/backend/internal/repo/review-repo"
	withdrawalrepo "github.com/janisar-hyder/backend/internal/repo/withdrawal-repo"
)

func NewMock(t *testing.T) (*Repositories, pgxmock.PgxPoolIface) {
	ctrl := gomock.NewController(t)
	mockDB, err := pgxmock.NewPool()
	mockTxManager := pg.NewMockTXManager(ctrl)
	assert.NoError(t, err)
	repo := New(mockDB, mockTxManager)
	defer mockDB.Close()

	return repo, mockDB
}

func TestNew(t *testing.T) {
	repo, mock := NewMock(t)

	assert.NotNil(t, repo.AccountRepo)
	assert.NotNil(t, repo.LedgerRepo)
	assert.NotNil(t, repo.PurchaseRepo)
	assert.NotNil(t, repo.WithdrawalRepo)
	assert.NotNil(t, repo.OTPRepo)
	assert.NotNil(t, repo.ReviewRepo)

	assert.IsType(t, &accountrepo.Repository{}, repo.AccountRepo)
	assert.IsType(t, &ledgerrepo.Repository{}, repo.LedgerRepo)
	assert.IsType(t, &purchaserepo.Repository{}, repo.PurchaseRepo)
	assert.IsType(t, &withdrawalrepo.Repository{}, repo.WithdrawalRepo)
	assert.IsType(t, &otprepo.Repository{}, repo.OTPRepo)
	assert.IsType(t, &reviewrepo.Repository{}, repo.ReviewRepo)

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("there were unmet expectations: %v", err)
	}
}
