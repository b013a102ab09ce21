package reviews

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/janisar-hyder/backend/internal/domain"
	"github.com/janisar-hyder/backend/internal/dto"
	"github.com/janisar-hyder/backend/internal/service/reviewservice"
	"github.com/janisar-hyder/backend/pkg/auth"
	"github.com/janisar-hyder/backend/pkg/utils"
)

type Service interface {
	Create(ctx context.Context, accountID, rating int, title, body string) (*domain.Review, error)
	List(ctx context.Context) ([]domain.Review, error)
	Update(ctx context.Context, accountID, reviewID, rating int, title, body string) (*domain.Review, error)
	Delete(ctx context.Context, accountID, reviewID int, isAdmin bool) error
}

type ReviewHandler struct {
	reviewService Service
}

func New(reviewService Service) *ReviewHandler {
	return &ReviewHandler{
		reviewService: reviewService,
	}
}

// Create godoc
//
//	@Summary		Post a review
//	@Tags			Reviews
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.ReviewRequestDTO	true	"Review payload"
//	@Success		201		{object}	dto.ReviewResponseDTO	"Review created"
//	@Failure		400		{object}	utils.Response			"Invalid rating or body"
//	@Failure		401		{object}	utils.Response			"User not authorized"
//	@Failure		500		{object}	utils.Response			"Internal server error"
//	@Router			/api/reviews [post]
func (h *ReviewHandler) Create(w http.ResponseWriter, r *http.Request) {
	accountID := r.Context().Value(auth.UserIDKey).(int)

	var req dto.ReviewRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	review, err := h.reviewService.Create(r.Context(), accountID, req.Rating, req.Title, req.Body)
	if err != nil {
		switch {
		case errors.Is(err, reviewservice.ErrInvalidRating),
			errors.Is(err, reviewservice.ErrEmptyBody):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, toResponseDTO(*review))
}

// List godoc
//
//	@Summary		List reviews
//	@Tags			Reviews
//	@Produce		json
//	@Success		200	{array}		dto.ReviewResponseDTO	"Reviews"
//	@Failure		500	{object}	utils.Response			"Internal server error"
//	@Router			/api/reviews [get]
func (h *ReviewHandler) List(w http.ResponseWriter, r *http.Request) {
	reviews, err := h.reviewService.List(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch reviews")
		return
	}

	response := make([]dto.ReviewResponseDTO, len(reviews))
	for i, review := range reviews {
		response[i] = toResponseDTO(review)
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// Update godoc
//
//	@Summary		Edit own review
//	@Tags			Reviews
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int						true	"Review ID"
//	@Param			request	body		dto.ReviewRequestDTO	true	"Review payload"
//	@Success		200		{object}	dto.ReviewResponseDTO	"Review updated"
//	@Failure		400		{object}	utils.Response			"Invalid payload"
//	@Failure		401		{object}	utils.Response			"User not authorized"
//	@Failure		403		{object}	utils.Response			"Not the review owner"
//	@Failure		404		{object}	utils.Response			"Review not found"
//	@Failure		500		{object}	utils.Response			"Internal server error"
//	@Router			/api/reviews/{id} [put]
func (h *ReviewHandler) Update(w http.ResponseWriter, r *http.Request) {
	accountID := r.Context().Value(auth.UserIDKey).(int)

	reviewID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid review id")
		return
	}

	var req dto.ReviewRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	review, err := h.reviewService.Update(r.Context(), accountID, reviewID, req.Rating, req.Title, req.Body)
	if err != nil {
		switch {
		case errors.Is(err, reviewservice.ErrInvalidRating),
			errors.Is(err, reviewservice.ErrEmptyBody):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, reviewservice.ErrReviewNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, reviewservice.ErrNotOwner):
			utils.RespondWithError(w, http.StatusForbidden, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toResponseDTO(*review))
}

// Delete godoc
//
//	@Summary		Delete a review
//	@Description	Owners delete their own review; admins may delete any review.
//	@Tags			Reviews
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		int				true	"Review ID"
//	@Success		200	{object}	utils.Response	"Review deleted"
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		403	{object}	utils.Response	"Not the review owner"
//	@Failure		404	{object}	utils.Response	"Review not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/reviews/{id} [delete]
func (h *ReviewHandler) Delete(w http.ResponseWriter, r *http.Request) {
	accountID := r.Context().Value(auth.UserIDKey).(int)
	role, _ := r.Context().Value(auth.RoleKey).(string)

	reviewID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid review id")
		return
	}

	err = h.reviewService.Delete(r.Context(), accountID, reviewID, role == auth.RoleAdmin)
	if err != nil {
		switch {
		case errors.Is(err, reviewservice.ErrReviewNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, reviewservice.ErrNotOwner):
			utils.RespondWithError(w, http.StatusForbidden, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "review deleted"})
}

func toResponseDTO(review domain.Review) dto.ReviewResponseDTO {
	return dto.ReviewResponseDTO{
		ID:        review.ID,
		AccountID: review.AccountID,
		Rating:    review.Rating,
		Title:     review.Title,
		Body:      review.Body,
		CreatedAt: review.CreatedAt.Format(time.RFC3339),
		UpdatedAt: review.UpdatedAt.Format(time.RFC3339),
	}
}
