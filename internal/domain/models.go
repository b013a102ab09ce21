package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Account struct {
	ID                int             `db:"id"`
	Email             string          `db:"email"`
	FirstName         string          `db:"firstname"`
	LastName          string          `db:"lastname"`
	Phone             string          `db:"phone"`
	PasswordHash      string          `db:"password_hash"`
	Role              string          `db:"role"`
	KycVerified       bool            `db:"kyc_verified"`
	ReferralCode      string          `db:"referral_code"`
	ReferredBy        *int            `db:"referred_by"`
	ReferredCount     int             `db:"referred_count"`
	Balance           decimal.Decimal `db:"balance"`
	ROIEarnings       decimal.Decimal `db:"roi_earnings"`
	ReferralEarnings  decimal.Decimal `db:"referral_earnings"`
	Plan              *PlanSnapshot
	PrincipalReturned bool      `db:"principal_returned"`
	Flagged           bool      `db:"flagged"`
	CreatedAt         time.Time `db:"created_at"`
	UpdatedAt         time.Time `db:"updated_at"`
}

// PlanSnapshot freezes the purchased plan's terms on the account so later
// catalog changes never alter an in-progress plan.
type PlanSnapshot struct {
	PlanID       string          `db:"plan_id"`
	Instance     uuid.UUID       `db:"plan_instance"`
	Price        decimal.Decimal `db:"plan_price"`
	Rate         decimal.Decimal `db:"plan_rate"`
	Periods      int             `db:"plan_periods"`
	ReferralRate decimal.Decimal `db:"plan_referral_rate"`
	Start        time.Time       `db:"plan_start"`
	End          time.Time       `db:"plan_end"`
	LastAccrual  time.Time       `db:"last_accrual"`
}

// AccrualEvent is an append-only audit record. One row covers the
// contiguous period range [FirstPeriod, LastPeriod]; the unique key on
// (account, plan instance, last period) rejects re-crediting.
type AccrualEvent struct {
	ID          int             `db:"id"`
	AccountID   int             `db:"account_id"`
	PlanID      string          `db:"plan_id"`
	Instance    uuid.UUID       `db:"plan_instance"`
	FirstPeriod int             `db:"first_period"`
	LastPeriod  int             `db:"last_period"`
	Amount      decimal.Decimal `db:"amount"`
	CreatedAt   time.Time       `db:"created_at"`
}

const (
	ReferralSourcePurchase = "purchase"
	ReferralSourceAccrual  = "accrual"
)

type ReferralCredit struct {
	ID          int             `db:"id"`
	ReferrerID  int             `db:"referrer_id"`
	ReferredID  int             `db:"referred_id"`
	PlanID      string          `db:"plan_id"`
	Instance    uuid.UUID       `db:"plan_instance"`
	Source      string          `db:"source"`
	PeriodIndex int             `db:"period_index"`
	Amount      decimal.Decimal `db:"amount"`
	CreatedAt   time.Time       `db:"created_at"`
}

const (
	WithdrawalPending  = "pending"
	WithdrawalApproved = "approved"
	WithdrawalRejected = "rejected"
)

type Withdrawal struct {
	ID         int             `db:"id"`
	AccountID  int             `db:"account_id"`
	Gross      decimal.Decimal `db:"gross_amount"`
	Fee        decimal.Decimal `db:"fee"`
	Net        decimal.Decimal `db:"net_amount"`
	Method     string          `db:"method"`
	Address    string          `db:"address"`
	Status     string          `db:"status"`
	AdminID    *int            `db:"admin_id"`
	Reason     *string         `db:"reason"`
	CreatedAt  time.Time       `db:"created_at"`
	ResolvedAt *time.Time      `db:"resolved_at"`
}

const (
	PurchaseCreated   = "created"
	PurchaseConfirmed = "confirmed"
)

type Purchase struct {
	ID          int             `db:"id"`
	TxID        string          `db:"tx_id"`
	AccountID   int             `db:"account_id"`
	PlanID      string          `db:"plan_id"`
	PaidAmount  decimal.Decimal `db:"paid_amount"`
	PaymentURL  string          `db:"payment_url"`
	Status      string          `db:"status"`
	CreatedAt   time.Time       `db:"created_at"`
	ConfirmedAt *time.Time      `db:"confirmed_at"`
}

type Review struct {
	ID        int       `db:"id"`
	AccountID int       `db:"account_id"`
	Rating    int       `db:"rating"`
	Title     string    `db:"title"`
	Body      string    `db:"body"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

// OTPChallenge holds a pending registration until the emailed code is
// verified. Persisted so verification survives a restart and works across
// instances.
type OTPChallenge struct {
	Email        string    `db:"email"`
	CodeHash     string    `db:"code_hash"`
	FirstName    string    `db:"firstname"`
	LastName     string    `db:"lastname"`
	Phone        string    `db:"phone"`
	PasswordHash string    `db:"password_hash"`
	ReferredBy   *int      `db:"referred_by"`
	ExpiresAt    time.Time `db:"expires_at"`
}
