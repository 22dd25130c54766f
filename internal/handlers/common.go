package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/cfbdynasty/roster-stats/internal/logic"
	"github.com/cfbdynasty/roster-stats/internal/models"
	"github.com/cfbdynasty/roster-stats/internal/workbook"
)

// Health check endpoint
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	h.jsonResponse(w, http.StatusOK, map[string]interface{}{
		"status":    "ok",
		"timestamp": time.Now().UTC(),
	})
}

// Ready check endpoint
func (h *Handler) Ready(w http.ResponseWriter, r *http.Request) {
	checks := map[string]bool{}
	if h.cache != nil {
		checks["redis"] = h.cache.Ping(r.Context()) == nil
	}

	allHealthy := true
	for _, ok := range checks {
		if !ok {
			allHealthy = false
			break
		}
	}

	status := http.StatusOK
	if !allHealthy {
		status = http.StatusServiceUnavailable
	}
	h.jsonResponse(w, status, map[string]interface{}{
		"ready":  allHealthy,
		"checks": checks,
	})
}

func (h *Handler) jsonResponse(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func (h *Handler) errorResponse(w http.ResponseWriter, status int, message string) {
	h.jsonResponse(w, status, map[string]string{"error": message})
}

// failure maps service errors to a status code and logs the unexpected ones.
func (h *Handler) failure(w http.ResponseWriter, r *http.Request, msg string, err error) {
	switch {
	case errors.Is(err, workbook.ErrUnknownUniversity), errors.Is(err, workbook.ErrSheetNotFound):
		h.errorResponse(w, http.StatusNotFound, err.Error())
	case errors.Is(err, logic.ErrUnknownAttribute), errors.Is(err, models.ErrInvalidDomain):
		h.errorResponse(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, workbook.ErrInvalidValue), errors.Is(err, workbook.ErrMissingColumn):
		h.logger.Warnw(msg, "path", r.URL.Path, "error", err)
		h.errorResponse(w, http.StatusUnprocessableEntity, err.Error())
	default:
		h.logger.Errorw(msg, "path", r.URL.Path, "error", err)
		h.errorResponse(w, http.StatusInternalServerError, msg)
	}
}
