package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/prabhatravib/infflow-calendar-sub000/internal/domain"
	applog "github.com/prabhatravib/infflow-calendar-sub000/internal/log"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		applog.Error("failed to write JSON response", err)
	}
}

type errorBody struct {
	Error string `json:"error"`
}

// writeError renders a localized error body for the given message key.
func (s *Server) writeError(w http.ResponseWriter, r *http.Request, status int, key string) {
	writeJSON(w, status, errorBody{Error: s.t.T(requestLocale(r), key, nil)})
}

// writeDomainError maps domain sentinels onto status codes and localized
// messages. Anything unrecognized is an internal error: logged in full,
// surfaced generically.
func (s *Server) writeDomainError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrEventNotFound):
		s.writeError(w, r, http.StatusNotFound, "error_event_not_found")
	case errors.Is(err, domain.ErrMissingEventID):
		s.writeError(w, r, http.StatusBadRequest, "error_event_id_required")
	case errors.Is(err, domain.ErrMissingUserID):
		s.writeError(w, r, http.StatusBadRequest, "error_user_id_required")
	case errors.Is(err, domain.ErrMissingFields):
		s.writeError(w, r, http.StatusBadRequest, "error_missing_fields")
	case errors.Is(err, domain.ErrInvalidDateRange):
		s.writeError(w, r, http.StatusBadRequest, "error_invalid_date_range")
	case errors.Is(err, domain.ErrEmptyUpdate):
		s.writeError(w, r, http.StatusBadRequest, "error_empty_update")
	case errors.Is(err, domain.ErrEchoAlreadyExists):
		s.writeError(w, r, http.StatusConflict, "error_echo_exists")
	default:
		applog.Error("internal error", err, "path", r.URL.Path)
		s.writeError(w, r, http.StatusInternalServerError, "error_internal")
	}
}

// requestLocale extracts the preferred language tag from Accept-Language.
// The i18n bundle handles fallback, so a rough first-tag cut is enough.
func requestLocale(r *http.Request) string {
	header := r.Header.Get("Accept-Language")
	if header == "" {
		return ""
	}
	first := strings.TrimSpace(strings.Split(header, ",")[0])
	if i := strings.Index(first, ";"); i >= 0 {
		first = first[:i]
	}
	return first
}
