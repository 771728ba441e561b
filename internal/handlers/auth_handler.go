package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/mywallet/backend/internal/audit"
	"github.com/mywallet/backend/internal/models"
	"github.com/mywallet/backend/internal/services"
	log "github.com/sirupsen/logrus"
)

type credentialStore interface {
	Register(ctx context.Context, req services.SignUpRequest) (string, error)
	Authenticate(ctx context.Context, email, password string) (*models.User, string, error)
}

type AuthHandler struct {
	credentials credentialStore
	validator   *services.ValidationHelper
	audit       audit.Logger
}

func NewAuthHandler(credentials credentialStore, auditor audit.Logger) *AuthHandler {
	return &AuthHandler{
		credentials: credentials,
		validator:   services.NewValidationHelper(),
		audit:       auditor,
	}
}

// SignUp handles user registration
// @Summary Register a new user
// @Description Register a user with an alphanumeric name, an email and a password
// @Tags auth
// @Accept json
// @Produce json
// @Param request body services.SignUpRequest true "Sign-up request"
// @Success 201 {object} map[string]string "Created"
// @Failure 400 {object} services.ErrorResponse "Invalid request"
// @Failure 409 {object} services.ErrorResponse "Name or email already exists"
// @Failure 422 {array} string "Validation messages"
// @Failure 500 {object} services.ErrorResponse "Internal server error"
// @Router /auth/sign-up [post]
func (h *AuthHandler) SignUp(w http.ResponseWriter, r *http.Request) {
	logger := log.WithField("handler", "sign-up").WithField("remote_addr", r.RemoteAddr)

	body, err := readBody(w, r)
	if err != nil {
		logger.WithError(err).Debug("unreadable body")
		sendPayloadError(w, err)
		return
	}

	req, err := h.validator.ValidateSignUp(body)
	if err != nil {
		logger.WithError(err).Debug("sign-up rejected")
		sendPayloadError(w, err)
		return
	}

	userID, err := h.credentials.Register(r.Context(), req)
	if errors.Is(err, services.ErrConflict) {
		h.audit.LogFailure(audit.SignUp, "", "", err)
		services.SendErrorResponse(w, "Name or email already exists", http.StatusConflict)
		return
	}
	if err != nil {
		sendInternalError(w, logger, err)
		return
	}

	h.audit.LogSuccess(audit.SignUp, userID, userID)
	services.SendStatus(w, http.StatusCreated)
}

// SignIn handles user authentication
// @Summary Sign in
// @Description Exchange email and password for an opaque session token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body services.SignInRequest true "Sign-in request"
// @Success 200 {object} models.Profile "User profile and token"
// @Failure 400 {object} services.ErrorResponse "Invalid request"
// @Failure 409 {object} services.ErrorResponse "Invalid credentials"
// @Failure 500 {object} services.ErrorResponse "Internal server error"
// @Router /auth/sign-in [post]
func (h *AuthHandler) SignIn(w http.ResponseWriter, r *http.Request) {
	logger := log.WithField("handler", "sign-in").WithField("remote_addr", r.RemoteAddr)

	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	var req services.SignInRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.WithError(err).Debug("invalid sign-in body")
		services.SendErrorResponse(w, "Invalid request", http.StatusBadRequest)
		return
	}

	user, token, err := h.credentials.Authenticate(r.Context(), req.Email, req.Password)
	if errors.Is(err, services.ErrInvalidCredentials) {
		h.audit.LogFailure(audit.SignIn, "", "", err)
		services.SendErrorResponse(w, "Invalid credentials", http.StatusConflict)
		return
	}
	if err != nil {
		sendInternalError(w, logger, err)
		return
	}

	h.audit.LogSuccess(audit.SignIn, user.ID, "")
	writeJSON(w, http.StatusOK, user.Profile(token))
}
