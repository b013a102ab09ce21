package withdrawalservice

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/janisar-hyder/backend/internal/domain"
	"github.com/janisar-hyder/backend/internal/pg"
)

func NewMock(t *testing.T) (*Service, *MockWithdrawalRepo, *MockAccountRepo, *pg.MockTXManager, *MockNotifier) {
	ctrl := gomock.NewController(t)
	withdrawalRepo := NewMockWithdrawalRepo(ctrl)
	accountRepo := NewMockAccountRepo(ctrl)
	txManager := pg.NewMockTXManager(ctrl)
	notifier := NewMockNotifier(ctrl)

	service := New(withdrawalRepo, accountRepo, txManager, notifier,
		decimal.NewFromInt(50), decimal.NewFromFloat(2.5))
	defer ctrl.Finish()
	return service, withdrawalRepo, accountRepo, txManager, notifier
}

func TestRequest(t *testing.T) {
	service, withdrawalRepo, accountRepo, _, _ := NewMock(t)
	ctx := context.Background()

	verified := &domain.Account{ID: 1, KycVerified: true}

	tests := []struct {
		name        string
		amount      decimal.Decimal
		method      string
		address     string
		prepareMock func()
		wantErr     error
	}{
		{
			name:        "below minimum",
			amount:      decimal.NewFromInt(49),
			method:      "card",
			address:     "4561261212345467",
			prepareMock: func() {},
			wantErr:     ErrBelowMinimum,
		},
		{
			name:    "account not found",
			amount:  decimal.NewFromInt(100),
			method:  "card",
			address: "4561261212345467",
			prepareMock: func() {
				accountRepo.EXPECT().FindByID(ctx, 1).Return(nil, nil)
			},
			wantErr: ErrAccountNotFound,
		},
		{
			name:    "kyc not verified",
			amount:  decimal.NewFromInt(100),
			method:  "card",
			address: "4561261212345467",
			prepareMock: func() {
				accountRepo.EXPECT().FindByID(ctx, 1).Return(&domain.Account{ID: 1}, nil)
			},
			wantErr: ErrKycRequired,
		},
		{
			name:    "card address fails luhn",
			amount:  decimal.NewFromInt(100),
			method:  "card",
			address: "4561261212345464",
			prepareMock: func() {
				accountRepo.EXPECT().FindByID(ctx, 1).Return(verified, nil)
			},
			wantErr: ErrInvalidAddress,
		},
		{
			name:    "pending request exists",
			amount:  decimal.NewFromInt(100),
			method:  "card",
			address: "4561261212345467",
			prepareMock: func() {
				accountRepo.EXPECT().FindByID(ctx, 1).Return(verified, nil)
				withdrawalRepo.EXPECT().HasPending(ctx, 1).Return(true, nil)
			},
			wantErr: ErrPendingExists,
		},
		{
			name:    "success with fee",
			amount:  decimal.NewFromInt(200),
			method:  "card",
			address: "4561261212345467",
			prepareMock: func() {
				accountRepo.EXPECT().FindByID(ctx, 1).Return(verified, nil)
				withdrawalRepo.EXPECT().HasPending(ctx, 1).Return(false, nil)
				withdrawalRepo.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(
					func(_ context.Context, wd *domain.Withdrawal) (*domain.Withdrawal, error) {
						assert.True(t, decimal.NewFromInt(200).Equal(wd.Gross))
						assert.True(t, decimal.NewFromInt(5).Equal(wd.Fee))
						assert.True(t, decimal.NewFromInt(195).Equal(wd.Net))
						assert.Equal(t, domain.WithdrawalPending, wd.Status)
						return wd, nil
					})
			},
		},
		{
			name:    "crypto address skips luhn",
			amount:  decimal.NewFromInt(100),
			method:  "usdt",
			address: "TX9fqhoasw3pfJmkXjcsvg8wMN7zyp1hH5",
			prepareMock: func() {
				accountRepo.EXPECT().FindByID(ctx, 1).Return(verified, nil)
				withdrawalRepo.EXPECT().HasPending(ctx, 1).Return(false, nil)
				withdrawalRepo.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(
					func(_ context.Context, wd *domain.Withdrawal) (*domain.Withdrawal, error) {
						return wd, nil
					})
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			wd, err := service.Request(ctx, 1, tt.amount, tt.method, tt.address)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, wd)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, wd)
			}
		})
	}
}

func TestResolve(t *testing.T) {
	service, withdrawalRepo, accountRepo, txManager, notifier := NewMock(t)
	ctx := context.Background()

	now := time.Date(2026, 4, 1, 10, 0, 0, 0, time.UTC)
	service.now = func() time.Time { return now }

	passthrough := func() {
		txManager.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(
			func(ctx context.Context, fn func(ctx context.Context) error) error {
				return fn(ctx)
			})
	}
	pending := func() *domain.Withdrawal {
		return &domain.Withdrawal{
			ID:        10,
			AccountID: 1,
			Gross:     decimal.NewFromInt(200),
			Fee:       decimal.NewFromInt(5),
			Net:       decimal.NewFromInt(195),
			Status:    domain.WithdrawalPending,
		}
	}

	tests := []struct {
		name        string
		decision    string
		reason      string
		prepareMock func()
		wantErr     error
		wantStatus  string
	}{
		{
			name:     "not found",
			decision: DecisionApprove,
			prepareMock: func() {
				withdrawalRepo.EXPECT().FindByID(ctx, 10).Return(nil, nil)
			},
			wantErr: ErrWithdrawalNotFound,
		},
		{
			name:     "already resolved",
			decision: DecisionApprove,
			prepareMock: func() {
				wd := pending()
				wd.Status = domain.WithdrawalApproved
				withdrawalRepo.EXPECT().FindByID(ctx, 10).Return(wd, nil)
			},
			wantErr: ErrAlreadyResolved,
		},
		{
			name:     "invalid decision",
			decision: "maybe",
			prepareMock: func() {
				withdrawalRepo.EXPECT().FindByID(ctx, 10).Return(pending(), nil)
			},
			wantErr: ErrInvalidDecision,
		},
		{
			name:     "approve debits gross",
			decision: DecisionApprove,
			prepareMock: func() {
				withdrawalRepo.EXPECT().FindByID(ctx, 10).Return(pending(), nil)
				passthrough()
				withdrawalRepo.EXPECT().Resolve(gomock.Any(), 10, domain.WithdrawalApproved, 99, nil, now).Return(true, nil)
				accountRepo.EXPECT().DebitBalance(gomock.Any(), 1, gomock.Any()).DoAndReturn(
					func(_ context.Context, _ int, amount decimal.Decimal) (bool, error) {
						assert.True(t, decimal.NewFromInt(200).Equal(amount))
						return true, nil
					})
				notifier.EXPECT().Notify(eventApproved, 1, gomock.Any())
			},
			wantStatus: domain.WithdrawalApproved,
		},
		{
			name:     "approve with insufficient balance rolls back",
			decision: DecisionApprove,
			prepareMock: func() {
				withdrawalRepo.EXPECT().FindByID(ctx, 10).Return(pending(), nil)
				passthrough()
				withdrawalRepo.EXPECT().Resolve(gomock.Any(), 10, domain.WithdrawalApproved, 99, nil, now).Return(true, nil)
				accountRepo.EXPECT().DebitBalance(gomock.Any(), 1, gomock.Any()).Return(false, nil)
			},
			wantErr: ErrInsufficientBalance,
		},
		{
			name:     "approve loses resolve race",
			decision: DecisionApprove,
			prepareMock: func() {
				withdrawalRepo.EXPECT().FindByID(ctx, 10).Return(pending(), nil)
				passthrough()
				withdrawalRepo.EXPECT().Resolve(gomock.Any(), 10, domain.WithdrawalApproved, 99, nil, now).Return(false, nil)
			},
			wantErr: ErrAlreadyResolved,
		},
		{
			name:     "reject requires reason",
			decision: DecisionReject,
			prepareMock: func() {
				withdrawalRepo.EXPECT().FindByID(ctx, 10).Return(pending(), nil)
			},
			wantErr: ErrReasonRequired,
		},
		{
			name:     "reject never debits",
			decision: DecisionReject,
			reason:   "address mismatch",
			prepareMock: func() {
				withdrawalRepo.EXPECT().FindByID(ctx, 10).Return(pending(), nil)
				withdrawalRepo.EXPECT().Resolve(ctx, 10, domain.WithdrawalRejected, 99, gomock.Any(), now).DoAndReturn(
					func(_ context.Context, _ int, _ string, _ int, reason *string, _ time.Time) (bool, error) {
						assert.Equal(t, "address mismatch", *reason)
						return true, nil
					})
				notifier.EXPECT().Notify(eventRejected, 1, gomock.Any())
			},
			wantStatus: domain.WithdrawalRejected,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			wd, err := service.Resolve(ctx, 10, tt.decision, 99, tt.reason)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, wd)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.wantStatus, wd.Status)
				assert.Equal(t, 99, *wd.AdminID)
				assert.Equal(t, now, *wd.ResolvedAt)
			}
		})
	}
}

func TestGetWithdrawals(t *testing.T) {
	service, withdrawalRepo, _, _, _ := NewMock(t)
	ctx := context.Background()

	want := []domain.Withdrawal{{ID: 1, AccountID: 1}}
	withdrawalRepo.EXPECT().ListByAccount(ctx, 1).Return(want, nil)

	got, err := service.GetWithdrawals(ctx, 1)
	assert.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestGetAllWithdrawals(t *testing.T) {
	service, withdrawalRepo, _, _, _ := NewMock(t)
	ctx := context.Background()

	want := []domain.Withdrawal{{ID: 1}, {ID: 2}}
	withdrawalRepo.EXPECT().ListAll(ctx, "pending").Return(want, nil)

	got, err := service.GetAllWithdrawals(ctx, "pending")
	assert.NoError(t, err)
	assert.Equal(t, want, got)
}
