package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/mywallet/backend/internal/services"
	log "github.com/sirupsen/logrus"
)

const maxBodyBytes = 1_048_576 // 1 MB

func readBody(w http.ResponseWriter, r *http.Request) ([]byte, error) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	return io.ReadAll(r.Body)
}

// writeJSON encodes v before the status line goes out so an unencodable
// value turns into a 500 instead of an empty 200.
func writeJSON(w http.ResponseWriter, statusCode int, v any) {
	body, err := json.Marshal(v)
	if err != nil {
		sendInternalError(w, log.WithField("status", statusCode), fmt.Errorf("encode response: %w", err))
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if _, err := w.Write(append(body, '\n')); err != nil {
		log.WithError(err).Debug("response write failed")
	}
}

// sendPayloadError answers a body that failed to read, parse or validate.
func sendPayloadError(w http.ResponseWriter, err error) {
	var verr *services.ValidationError
	if errors.As(err, &verr) {
		services.SendValidationErrors(w, verr)
		return
	}
	services.SendErrorResponse(w, "Invalid request", http.StatusBadRequest)
}

// sendInternalError logs the cause and keeps it out of the response.
func sendInternalError(w http.ResponseWriter, entry *log.Entry, err error) {
	entry.WithError(err).Error("request failed")
	services.SendErrorResponse(w, "An Internal Error Occurred", http.StatusInternalServerError)
}
