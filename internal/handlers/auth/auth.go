package auth

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/janisar-hyder/backend/internal/domain"
	"github.com/janisar-hyder/backend/internal/dto"
	"github.com/janisar-hyder/backend/internal/service/authservice"
	"github.com/janisar-hyder/backend/pkg/utils"
)

type Service interface {
	Register(ctx context.Context, email, password, firstName, lastName, phone, referralCode string) error
	CompleteSignup(ctx context.Context, email, code string) (*domain.Account, error)
	Login(ctx context.Context, email, password string) (*domain.Account, error)
	GenerateToken(accountID int, role string) (string, error)
}

type AuthHandler struct {
	authService Service
}

func New(authService Service) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

// Register godoc
//
//	@Summary		Start registration
//	@Description	Validate the signup request and email a one-time verification code. The account is created once the code is confirmed.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.RegisterRequestDTO	true	"Registration payload"
//	@Success		200		{object}	dto.RegisterResponseDTO	"Verification code sent"
//	@Failure		400		{object}	utils.Response			"Invalid request payload"
//	@Failure		409		{object}	utils.Response			"Email already registered"
//	@Failure		500		{object}	utils.Response			"Internal server error"
//	@Router			/api/auth/register [post]
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req dto.RegisterRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	err := h.authService.Register(r.Context(), req.Email, req.Password, req.FirstName, req.LastName, req.Phone, req.ReferralCode)
	if err != nil {
		switch {
		case errors.Is(err, authservice.ErrEmailTaken):
			utils.RespondWithError(w, http.StatusConflict, err.Error())
		case errors.Is(err, authservice.ErrInvalidEmail),
			errors.Is(err, authservice.ErrWeakPassword),
			errors.Is(err, authservice.ErrInvalidReferral):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.RegisterResponseDTO{Message: "verification code sent"})
}

// VerifyOTP godoc
//
//	@Summary		Complete registration
//	@Description	Confirm the emailed verification code, create the account and return an auth token.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.VerifyOTPRequestDTO	true	"Verification payload"
//	@Success		200		{object}	dto.TokenResponseDTO	"Account created"
//	@Failure		400		{object}	utils.Response			"Invalid or expired code"
//	@Failure		404		{object}	utils.Response			"No pending verification"
//	@Failure		500		{object}	utils.Response			"Internal server error"
//	@Router			/api/auth/verify [post]
func (h *AuthHandler) VerifyOTP(w http.ResponseWriter, r *http.Request) {
	var req dto.VerifyOTPRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	acc, err := h.authService.CompleteSignup(r.Context(), req.Email, req.Code)
	if err != nil {
		switch {
		case errors.Is(err, authservice.ErrChallengeNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, authservice.ErrChallengeExpired),
			errors.Is(err, authservice.ErrInvalidCode):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	token, err := h.authService.GenerateToken(acc.ID, acc.Role)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to generate token")
		return
	}
	w.Header().Set("Authorization", "Bearer "+token)
	utils.RespondWithJSON(w, http.StatusOK, dto.TokenResponseDTO{Token: token})
}

// Login godoc
//
//	@Summary		Log in
//	@Description	Authenticate with email and password and return an auth token.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.LoginRequestDTO		true	"Login payload"
//	@Success		200		{object}	dto.TokenResponseDTO	"Authenticated"
//	@Failure		400		{object}	utils.Response			"Invalid request payload"
//	@Failure		401		{object}	utils.Response			"Invalid credentials"
//	@Failure		500		{object}	utils.Response			"Internal server error"
//	@Router			/api/auth/login [post]
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	acc, err := h.authService.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, authservice.ErrInvalidCredentials):
			utils.RespondWithError(w, http.StatusUnauthorized, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	token, err := h.authService.GenerateToken(acc.ID, acc.Role)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to generate token")
		return
	}
	w.Header().Set("Authorization", "Bearer "+token)
	utils.RespondWithJSON(w, http.StatusOK, dto.TokenResponseDTO{Token: token})
}
