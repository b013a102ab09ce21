package authservice

import (
	"context"
	"crypto/rand"
	"errors"
	"math/big"
	"regexp"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/janisar-hyder/backend/internal/domain"
	"github.com/janisar-hyder/backend/pkg/auth"
)

type AccountRepo interface {
	Create(ctx context.Context, acc *domain.Account) (*domain.Account, error)
	FindByEmail(ctx context.Context, email string) (*domain.Account, error)
	FindByReferralCode(ctx context.Context, code string) (*domain.Account, error)
}

type OTPRepo interface {
	Save(ctx context.Context, ch *domain.OTPChallenge) error
	Find(ctx context.Context, email string) (*domain.OTPChallenge, error)
	Delete(ctx context.Context, email string) error
}

type Notifier interface {
	Notify(event string, accountID int, payload any)
}

type HashService interface {
	HashPassword(password string) (string, error)
	ComparePassword(hashedPassword, password string) error
}

type JWTService interface {
	GenerateJWT(userID int, role string, expirationTime time.Time) (string, error)
}

const (
	eventOTPIssued = "otp.issued"

	otpTTL        = 10 * time.Minute
	otpLength     = 6
	tokenLifetime = 24 * time.Hour
)

var (
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidEmail       = errors.New("invalid email format")
	ErrWeakPassword       = errors.New("password must be at least 8 characters")
	ErrInvalidReferral    = errors.New("referral code not found")
	ErrChallengeNotFound  = errors.New("no pending verification for this email")
	ErrChallengeExpired   = errors.New("verification code expired")
	ErrInvalidCode        = errors.New("invalid verification code")
	ErrInvalidCredentials = errors.New("invalid email or password")
)

var emailRe = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

type Service struct {
	accountRepo AccountRepo
	otpRepo     OTPRepo
	hashService HashService
	jwtService  JWTService
	notifier    Notifier
	now         func() time.Time
}

func New(accountRepo AccountRepo, otpRepo OTPRepo, hashService HashService, jwtService JWTService, notifier Notifier) *Service {
	return &Service{
		accountRepo: accountRepo,
		otpRepo:     otpRepo,
		hashService: hashService,
		jwtService:  jwtService,
		notifier:    notifier,
		now:         time.Now,
	}
}

// Register validates the signup request and issues an OTP challenge. No
// account row exists until the challenge is completed; the referral code is
// resolved to a concrete referrer here so the code can be rejected up front.
func (s *Service) Register(ctx context.Context, email, password, firstName, lastName, phone, referralCode string) error {
	email = strings.ToLower(strings.TrimSpace(email))
	if !emailRe.MatchString(email) {
		return ErrInvalidEmail
	}
	if len(password) < 8 {
		return ErrWeakPassword
	}

	existing, err := s.accountRepo.FindByEmail(ctx, email)
	if err != nil {
		zap.L().Error("failed to check email", zap.Error(err))
		return err
	}
	if existing != nil {
		return ErrEmailTaken
	}

	var referredBy *int
	if referralCode != "" {
		referrer, err := s.accountRepo.FindByReferralCode(ctx, referralCode)
		if err != nil {
			return err
		}
		if referrer == nil {
			return ErrInvalidReferral
		}
		referredBy = &referrer.ID
	}

	passwordHash, err := s.hashService.HashPassword(password)
	if err != nil {
		return err
	}

	code, err := generateCode(otpLength)
	if err != nil {
		return err
	}
	codeHash, err := s.hashService.HashPassword(code)
	if err != nil {
		return err
	}

	challenge := &domain.OTPChallenge{
		Email:        email,
		CodeHash:     codeHash,
		FirstName:    firstName,
		LastName:     lastName,
		Phone:        phone,
		PasswordHash: passwordHash,
		ReferredBy:   referredBy,
		ExpiresAt:    s.now().Add(otpTTL),
	}
	if err := s.otpRepo.Save(ctx, challenge); err != nil {
		zap.L().Error("failed to save otp challenge", zap.Error(err))
		return err
	}

	s.notifier.Notify(eventOTPIssued, 0, map[string]string{"email": email, "code": code})
	zap.L().Info("otp challenge issued", zap.String("email", email))
	return nil
}

// CompleteSignup verifies the OTP and creates the account.
func (s *Service) CompleteSignup(ctx context.Context, email, code string) (*domain.Account, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	challenge, err := s.otpRepo.Find(ctx, email)
	if err != nil {
		return nil, err
	}
	if challenge == nil {
		return nil, ErrChallengeNotFound
	}
	if s.now().After(challenge.ExpiresAt) {
		_ = s.otpRepo.Delete(ctx, email)
		return nil, ErrChallengeExpired
	}
	if err := s.hashService.ComparePassword(challenge.CodeHash, code); err != nil {
		return nil, ErrInvalidCode
	}

	refCode, err := s.newReferralCode(ctx)
	if err != nil {
		return nil, err
	}

	acc, err := s.accountRepo.Create(ctx, &domain.Account{
		Email:        email,
		FirstName:    challenge.FirstName,
		LastName:     challenge.LastName,
		Phone:        challenge.Phone,
		PasswordHash: challenge.PasswordHash,
		Role:         auth.RoleUser,
		ReferralCode: refCode,
		ReferredBy:   challenge.ReferredBy,
	})
	if err != nil {
		zap.L().Error("failed to create account", zap.Error(err))
		return nil, err
	}

	if err := s.otpRepo.Delete(ctx, email); err != nil {
		zap.L().Warn("failed to delete otp challenge", zap.String("email", email), zap.Error(err))
	}

	zap.L().Info("account created", zap.Int("accountID", acc.ID), zap.String("email", email))
	return acc, nil
}

func (s *Service) Login(ctx context.Context, email, password string) (*domain.Account, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	acc, err := s.accountRepo.FindByEmail(ctx, email)
	if err != nil {
		zap.L().Error("failed to find account", zap.Error(err))
		return nil, err
	}
	if acc == nil {
		return nil, ErrInvalidCredentials
	}
	if err := s.hashService.ComparePassword(acc.PasswordHash, password); err != nil {
		return nil, ErrInvalidCredentials
	}
	return acc, nil
}

func (s *Service) GenerateToken(accountID int, role string) (string, error) {
	return s.jwtService.GenerateJWT(accountID, role, s.now().Add(tokenLifetime))
}

// newReferralCode generates REF-prefixed codes and retries on the rare
// collision with an existing account.
func (s *Service) newReferralCode(ctx context.Context) (string, error) {
	for i := 0; i < 5; i++ {
		digits, err := generateCode(6)
		if err != nil {
			return "", err
		}
		code := "REF" + digits
		existing, err := s.accountRepo.FindByReferralCode(ctx, code)
		if err != nil {
			return "", err
		}
		if existing == nil {
			return code, nil
		}
	}
	return "", errors.New("failed to generate unique referral code")
}

func generateCode(length int) (string, error) {
	var sb strings.Builder
	for i := 0; i < length; i++ {
		n, err := rand.Int(rand.Reader, big.NewInt(10))
		if err != nil {
			return "", err
		}
		sb.WriteByte(byte('0' + n.Int64()))
	}
	return sb.String(), nil
}
