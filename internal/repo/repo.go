package repo

import (
	"github.com/janisar-hyder/backend/internal/pg"
	accountrepo "github.com/janisar-hyder/backend/internal/repo/account-repo"
	ledgerrepo "github.com/janisar-hyder/backend/internal/repo/ledger-repo"
	otprepo "github.com/janisar-hyder/backend/internal/repo/otp-repo"
	purchaserepo "github.com/janisar-hyder/backend/internal/repo/purchase-repo"
	reviewrepo "github.com/janisar-hyder/backend/internal/repo/review-repo"
	withdrawalrepo "github.com/janisar-hyder/backend/internal/repo/withdrawal-repo"
)

// Repositories holds the concrete repository set. Each service narrows a
// repository to the interface it consumes.
type Repositories struct {
	AccountRepo    *accountrepo.Repository
	LedgerRepo     *ledgerrepo.Repository
	PurchaseRepo   *purchaserepo.Repository
	WithdrawalRepo *withdrawalrepo.Repository
	OTPRepo        *otprepo.Repository
	ReviewRepo     *reviewrepo.Repository
}

func New(conn pg.Database, txManager pg.TXManager) *Repositories {
	return &Repositories{
		AccountRepo:    accountrepo.New(conn, txManager),
		LedgerRepo:     ledgerrepo.New(conn),
		PurchaseRepo:   purchaserepo.New(conn),
		WithdrawalRepo: withdrawalrepo.New(conn),
		OTPRepo:        otprepo.New(conn),
		ReviewRepo:     reviewrepo.New(conn),
	}
}
