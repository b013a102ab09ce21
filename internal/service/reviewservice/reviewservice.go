package reviewservice

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"

	"github.com/janisar-hyder/backend/internal/domain"
)

type ReviewRepo interface {
	Create(ctx context.Context, review *domain.Review) (*domain.Review, error)
	FindByID(ctx context.Context, reviewID int) (*domain.Review, error)
	ListAll(ctx context.Context) ([]domain.Review, error)
	Update(ctx context.Context, review *domain.Review) (bool, error)
	Delete(ctx context.Context, reviewID int) (bool, error)
}

var (
	ErrInvalidRating  = errors.New("rating must be between 1 and 5")
	ErrEmptyBody      = errors.New("review body is required")
	ErrReviewNotFound = errors.New("review not found")
	ErrNotOwner       = errors.New("review belongs to another account")
)

type Service struct {
	reviewRepo ReviewRepo
}

func New(reviewRepo ReviewRepo) *Service {
	return &Service{
		reviewRepo: reviewRepo,
	}
}

func (s *Service) Create(ctx context.Context, accountID, rating int, title, body string) (*domain.Review, error) {
	if rating < 1 || rating > 5 {
		return nil, ErrInvalidRating
	}
	if strings.TrimSpace(body) == "" {
		return nil, ErrEmptyBody
	}
	review, err := s.reviewRepo.Create(ctx, &domain.Review{
		AccountID: accountID,
		Rating:    rating,
		Title:     title,
		Body:      body,
	})
	if err != nil {
		zap.L().Error("failed to create review", zap.Int("accountID", accountID), zap.Error(err))
		return nil, err
	}
	return review, nil
}

func (s *Service) List(ctx context.Context) ([]domain.Review, error) {
	return s.reviewRepo.ListAll(ctx)
}

// Update modifies the caller's own review. Admins may not edit other users'
// reviews, only remove them.
func (s *Service) Update(ctx context.Context, accountID, reviewID, rating int, title, body string) (*domain.Review, error) {
	if rating < 1 || rating > 5 {
		return nil, ErrInvalidRating
	}
	if strings.TrimSpace(body) == "" {
		return nil, ErrEmptyBody
	}

	review, err := s.reviewRepo.FindByID(ctx, reviewID)
	if err != nil {
		return nil, err
	}
	if review == nil {
		return nil, ErrReviewNotFound
	}
	if review.AccountID != accountID {
		return nil, ErrNotOwner
	}

	review.Rating = rating
	review.Title = title
	review.Body = body
	ok, err := s.reviewRepo.Update(ctx, review)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrReviewNotFound
	}
	return review, nil
}

// Delete removes a review. The owner may delete their own; an admin may
// delete anyone's.
func (s *Service) Delete(ctx context.Context, accountID, reviewID int, isAdmin bool) error {
	review, err := s.reviewRepo.FindByID(ctx, reviewID)
	if err != nil {
		return err
	}
	if review == nil {
		return ErrReviewNotFound
	}
	if !isAdmin && review.AccountID != accountID {
		return ErrNotOwner
	}

	ok, err := s.reviewRepo.Delete(ctx, reviewID)
	if err != nil {
		return err
	}
	if !ok {
		return ErrReviewNotFound
	}
	zap.L().Info("review deleted", zap.Int("reviewID", reviewID), zap.Int("by", accountID))
	return nil
}
