package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/mywallet/backend/internal/audit"
	"github.com/mywallet/backend/internal/models"
	"github.com/mywallet/backend/internal/services"
	log "github.com/sirupsen/logrus"
)

type sessionResolver interface {
	Resolve(ctx context.Context, header string) (string, error)
}

type entryStore interface {
	Create(ctx context.Context, userID string, in models.EntryInput) (*models.Entry, error)
	ListByUser(ctx context.Context, userID string) ([]models.Entry, error)
	Update(ctx context.Context, userID, entryID string, in models.EntryInput) error
	Delete(ctx context.Context, userID, entryID string) error
}

type ValueHandler struct {
	sessions  sessionResolver
	entries   entryStore
	validator *services.ValidationHelper
	audit     audit.Logger
}

func NewValueHandler(sessions sessionResolver, entries entryStore, auditor audit.Logger) *ValueHandler {
	return &ValueHandler{
		sessions:  sessions,
		entries:   entries,
		validator: services.NewValidationHelper(),
		audit:     auditor,
	}
}

// resolve maps a session failure to invalidStatus, or 500 for storage errors.
func (h *ValueHandler) resolve(w http.ResponseWriter, r *http.Request, logger *log.Entry, invalidStatus int) (string, bool) {
	userID, err := h.sessions.Resolve(r.Context(), r.Header.Get("Authorization"))
	switch {
	case err == nil:
		return userID, true
	case errors.Is(err, services.ErrUnauthorized):
		services.SendErrorResponse(w, "Unauthorized", http.StatusUnauthorized)
	case errors.Is(err, services.ErrInvalidSession):
		services.SendErrorResponse(w, "Invalid session", invalidStatus)
	default:
		sendInternalError(w, logger, err)
	}
	return "", false
}

func (h *ValueHandler) readEntry(w http.ResponseWriter, r *http.Request, logger *log.Entry) (models.EntryInput, bool) {
	body, err := readBody(w, r)
	if err == nil {
		var in models.EntryInput
		in, err = h.validator.ValidateEntry(body)
		if err == nil {
			return in, true
		}
	}
	logger.WithError(err).Debug("entry payload rejected")
	sendPayloadError(w, err)
	return models.EntryInput{}, false
}

// CreateValue stores a new entry for the session's user
// @Summary Create entry
// @Description Create a credit (entry) or debit (out) for the signed-in user
// @Tags values
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body services.EntryRequest true "Entry"
// @Success 201 {object} map[string]string "Created"
// @Failure 401 {object} services.ErrorResponse "No token"
// @Failure 402 {object} services.ErrorResponse "Token not bound to a session"
// @Failure 422 {array} string "Validation messages"
// @Failure 500 {object} services.ErrorResponse "Internal server error"
// @Router /values [post]
func (h *ValueHandler) CreateValue(w http.ResponseWriter, r *http.Request) {
	logger := log.WithField("handler", "create-value")

	in, ok := h.readEntry(w, r, logger)
	if !ok {
		return
	}

	// an unknown token is answered with 402 here, unlike the other value routes
	userID, ok := h.resolve(w, r, logger, http.StatusPaymentRequired)
	if !ok {
		return
	}

	entry, err := h.entries.Create(r.Context(), userID, in)
	if err != nil {
		sendInternalError(w, logger.WithField("user_id", userID), err)
		return
	}

	h.audit.LogSuccess(audit.EntryCreated, userID, entry.ID)
	services.SendStatus(w, http.StatusCreated)
}

// ListValues returns every entry of the session's user
// @Summary List entries
// @Description List the signed-in user's entries in insertion order
// @Tags values
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.Entry
// @Failure 401 {object} services.ErrorResponse "Unauthorized"
// @Failure 500 {object} services.ErrorResponse "Internal server error"
// @Router /values [get]
func (h *ValueHandler) ListValues(w http.ResponseWriter, r *http.Request) {
	logger := log.WithField("handler", "list-values")

	userID, ok := h.resolve(w, r, logger, http.StatusUnauthorized)
	if !ok {
		return
	}

	entries, err := h.entries.ListByUser(r.Context(), userID)
	if errors.Is(err, services.ErrUnauthorized) {
		logger.WithField("user_id", userID).Warn("session bound to a missing user")
		services.SendErrorResponse(w, "Unauthorized", http.StatusUnauthorized)
		return
	}
	if err != nil {
		sendInternalError(w, logger.WithField("user_id", userID), err)
		return
	}

	writeJSON(w, http.StatusOK, entries)
}

// UpdateValue replaces an entry's amount, description and direction
// @Summary Update entry
// @Description Replace value, text and type of an entry
// @Tags values
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Entry ID"
// @Param request body services.EntryRequest true "Entry"
// @Success 200 {object} map[string]string "OK"
// @Failure 401 {object} services.ErrorResponse "Unauthorized"
// @Failure 404 {object} services.ErrorResponse "Entry not found"
// @Failure 422 {array} string "Validation messages"
// @Failure 500 {object} services.ErrorResponse "Internal server error"
// @Router /values/{id} [put]
func (h *ValueHandler) UpdateValue(w http.ResponseWriter, r *http.Request) {
	entryID := chi.URLParam(r, "id")
	logger := log.WithField("handler", "update-value").WithField("entry_id", entryID)

	in, ok := h.readEntry(w, r, logger)
	if !ok {
		return
	}

	userID, ok := h.resolve(w, r, logger, http.StatusUnauthorized)
	if !ok {
		return
	}

	err := h.entries.Update(r.Context(), userID, entryID, in)
	if errors.Is(err, services.ErrNotFound) {
		h.audit.LogFailure(audit.EntryUpdated, userID, entryID, err)
		services.SendErrorResponse(w, "Entry not found", http.StatusNotFound)
		return
	}
	if err != nil {
		sendInternalError(w, logger.WithField("user_id", userID), err)
		return
	}

	h.audit.LogSuccess(audit.EntryUpdated, userID, entryID)
	services.SendStatus(w, http.StatusOK)
}

// DeleteValue removes an entry
// @Summary Delete entry
// @Description Delete an entry by id
// @Tags values
// @Produce json
// @Security BearerAuth
// @Param id path string true "Entry ID"
// @Success 200 {object} map[string]string "OK"
// @Failure 401 {object} services.ErrorResponse "Unauthorized"
// @Failure 404 {object} services.ErrorResponse "Entry not found"
// @Failure 500 {object} services.ErrorResponse "Internal server error"
// @Router /values/{id} [delete]
func (h *ValueHandler) DeleteValue(w http.ResponseWriter, r *http.Request) {
	entryID := chi.URLParam(r, "id")
	logger := log.WithField("handler", "delete-value").WithField("entry_id", entryID)

	userID, ok := h.resolve(w, r, logger, http.StatusUnauthorized)
	if !ok {
		return
	}

	err := h.entries.Delete(r.Context(), userID, entryID)
	if errors.Is(err, services.ErrNotFound) {
		h.audit.LogFailure(audit.EntryDeleted, userID, entryID, err)
		services.SendErrorResponse(w, "Entry not found", http.StatusNotFound)
		return
	}
	if err != nil {
		sendInternalError(w, logger.WithField("user_id", userID), err)
		return
	}

	h.audit.LogSuccess(audit.EntryDeleted, userID, entryID)
	services.SendStatus(w, http.StatusOK)
}
