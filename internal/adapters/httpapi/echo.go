package httpapi

import (
	"encoding/json"
	"net/http"
)

type echoRequest struct {
	UserID string `json:"user_id"`
}

// handleGenerateEcho creates two follow-up events for the parent and
// returns the Mermaid diagram plus the created children.
func (s *Server) handleGenerateEcho(w http.ResponseWriter, r *http.Request) {
	var req echoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, r, http.StatusBadRequest, "error_user_id_required")
		return
	}

	result, err := s.echo.Generate(r.Context(), r.PathValue("id"), req.UserID)
	if err != nil {
		s.writeDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{
		"mermaid": result.Mermaid,
		"events":  toEventDTOs(result.Events),
	})
}

// handleResetEcho clears the diagram and the parent/child linkage; the
// generated event rows themselves stay on the calendar.
func (s *Server) handleResetEcho(w http.ResponseWriter, r *http.Request) {
	var req echoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, r, http.StatusBadRequest, "error_user_id_required")
		return
	}

	if err := s.echo.Reset(r.Context(), r.PathValue("id"), req.UserID); err != nil {
		s.writeDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"message": s.t.T(requestLocale(r), "echo_reset", nil),
	})
}
