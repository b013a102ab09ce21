package reviews

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/janisar-hyder/backend/internal/domain"
	"github.com/janisar-hyder/backend/internal/dto"
	"github.com/janisar-hyder/backend/internal/service/reviewservice"
	"github.com/janisar-hyder/backend/pkg/auth"
	"github.com/janisar-hyder/backend/pkg/utils"
)

func NewMock(t *testing.T) (*ReviewHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	defer ctrl.Finish()
	return handler, service
}

func authedRequest(method, target, body, role string) *http.Request {
	req := httptest.NewRequest(method, target, bytes.NewReader([]byte(body)))
	ctx := context.WithValue(req.Context(), auth.UserIDKey, 1)
	if role != "" {
		ctx = context.WithValue(ctx, auth.RoleKey, role)
	}
	return req.WithContext(ctx)
}

func withURLParam(req *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

func sampleReview() *domain.Review {
	return &domain.Review{
		ID:        3,
		AccountID: 1,
		Rating:    5,
		Title:     "Solid returns",
		Body:      "Payouts arrived on schedule.",
		CreatedAt: time.Date(2026, 7, 1, 10, 0, 0, 0, time.UTC),
		UpdatedAt: time.Date(2026, 7, 1, 10, 0, 0, 0, time.UTC),
	}
}

func TestCreateHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name          string
		body          string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name: "Creates a review",
			body: `{"rating":5,"title":"Solid returns","body":"Payouts arrived on schedule."}`,
			prepareMock: func() {
				service.EXPECT().Create(gomock.Any(), 1, 5, "Solid returns", "Payouts arrived on schedule.").
					Return(sampleReview(), nil)
			},
			expectedCode: http.StatusCreated,
		},
		{
			name: "Rating out of range",
			body: `{"rating":9,"body":"way too good"}`,
			prepareMock: func() {
				service.EXPECT().Create(gomock.Any(), 1, 9, "", "way too good").
					Return(nil, reviewservice.ErrInvalidRating)
			},
			expectedCode:  http.StatusBadRequest,
			expectedError: reviewservice.ErrInvalidRating.Error(),
		},
		{
			name: "Empty body",
			body: `{"rating":4,"body":""}`,
			prepareMock: func() {
				service.EXPECT().Create(gomock.Any(), 1, 4, "", "").
					Return(nil, reviewservice.ErrEmptyBody)
			},
			expectedCode:  http.StatusBadRequest,
			expectedError: reviewservice.ErrEmptyBody.Error(),
		},
		{
			name:          "Invalid request body",
			body:          `{invalid`,
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "invalid request body",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			req := authedRequest("POST", "/api/reviews", tt.body, "")
			rr := httptest.NewRecorder()

			handler.Create(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			if tt.expectedError != "" {
				var resp utils.Response
				assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
				assert.Equal(t, tt.expectedError, resp.Message)
			} else {
				var resp dto.ReviewResponseDTO
				assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
				assert.Equal(t, 3, resp.ID)
				assert.Equal(t, 5, resp.Rating)
			}
		})
	}
}

func TestListHandler(t *testing.T) {
	handler, service := NewMock(t)

	t.Run("Returns reviews", func(t *testing.T) {
		service.EXPECT().List(gomock.Any()).Return([]domain.Review{*sampleReview()}, nil)

		req := httptest.NewRequest("GET", "/api/reviews", nil)
		rr := httptest.NewRecorder()

		handler.List(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		var resp []dto.ReviewResponseDTO
		assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
		assert.Len(t, resp, 1)
		assert.Equal(t, "Solid returns", resp[0].Title)
	})

	t.Run("Service error", func(t *testing.T) {
		service.EXPECT().List(gomock.Any()).Return(nil, errors.New("db down"))

		req := httptest.NewRequest("GET", "/api/reviews", nil)
		rr := httptest.NewRecorder()

		handler.List(rr, req)

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
	})
}

func TestUpdateHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name          string
		reviewID      string
		body          string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name:     "Updates own review",
			reviewID: "3",
			body:     `{"rating":4,"title":"Updated","body":"Still good."}`,
			prepareMock: func() {
				updated := sampleReview()
				updated.Rating = 4
				updated.Title = "Updated"
				service.EXPECT().Update(gomock.Any(), 1, 3, 4, "Updated", "Still good.").
					Return(updated, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:     "Not the owner",
			reviewID: "7",
			body:     `{"rating":4,"body":"Still good."}`,
			prepareMock: func() {
				service.EXPECT().Update(gomock.Any(), 1, 7, 4, "", "Still good.").
					Return(nil, reviewservice.ErrNotOwner)
			},
			expectedCode:  http.StatusForbidden,
			expectedError: reviewservice.ErrNotOwner.Error(),
		},
		{
			name:     "Review not found",
			reviewID: "99",
			body:     `{"rating":4,"body":"Still good."}`,
			prepareMock: func() {
				service.EXPECT().Update(gomock.Any(), 1, 99, 4, "", "Still good.").
					Return(nil, reviewservice.ErrReviewNotFound)
			},
			expectedCode:  http.StatusNotFound,
			expectedError: reviewservice.ErrReviewNotFound.Error(),
		},
		{
			name:          "Invalid review id",
			reviewID:      "abc",
			body:          `{"rating":4,"body":"Still good."}`,
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "invalid review id",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			req := authedRequest("PUT", "/api/reviews/"+tt.reviewID, tt.body, "")
			req = withURLParam(req, "id", tt.reviewID)
			rr := httptest.NewRecorder()

			handler.Update(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
			if tt.expectedError != "" {
				var resp utils.Response
				assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
				assert.Equal(t, tt.expectedError, resp.Message)
			}
		})
	}
}

func TestDeleteHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name          string
		reviewID      string
		role          string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name:     "Owner deletes own review",
			reviewID: "3",
			role:     auth.RoleUser,
			prepareMock: func() {
				service.EXPECT().Delete(gomock.Any(), 1, 3, false).Return(nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:     "Admin deletes any review",
			reviewID: "7",
			role:     auth.RoleAdmin,
			prepareMock: func() {
				service.EXPECT().Delete(gomock.Any(), 1, 7, true).Return(nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:     "Not the owner",
			reviewID: "7",
			role:     auth.RoleUser,
			prepareMock: func() {
				service.EXPECT().Delete(gomock.Any(), 1, 7, false).
					Return(reviewservice.ErrNotOwner)
			},
			expectedCode:  http.StatusForbidden,
			expectedError: reviewservice.ErrNotOwner.Error(),
		},
		{
			name:     "Review not found",
			reviewID: "99",
			role:     auth.RoleUser,
			prepareMock: func() {
				service.EXPECT().Delete(gomock.Any(), 1, 99, false).
					Return(reviewservice.ErrReviewNotFound)
			},
			expectedCode:  http.StatusNotFound,
			expectedError: reviewservice.ErrReviewNotFound.Error(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			req := authedRequest("DELETE", "/api/reviews/"+tt.reviewID, "", tt.role)
			req = withURLParam(req, "id", tt.reviewID)
			rr := httptest.NewRecorder()

			handler.Delete(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
			if tt.expectedError != "" {
				var resp utils.Response
				assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
				assert.Equal(t, tt.expectedError, resp.Message)
			}
		})
	}
}
