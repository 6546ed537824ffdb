package httpapi

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/prabhatravib/infflow-calendar-sub000/internal/domain/entities"
	"github.com/prabhatravib/infflow-calendar-sub000/internal/ports/input"
)

type createEventRequest struct {
	CalendarID  string `json:"calendar_id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Start       string `json:"start"`
	End         string `json:"end"`
	TZ          string `json:"tz"`
	EventType   string `json:"eventType"`
	Location    string `json:"location"`
}

type updateEventRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Start       *string `json:"start"`
	End         *string `json:"end"`
	TZ          *string `json:"tz"`
	EventType   *string `json:"eventType"`
	Location    *string `json:"location"`
}

func (s *Server) handleListEvents(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	calendarID := q.Get("calendarId")
	if calendarID == "" {
		calendarID = s.defaultCalendarID
	}

	from, errFrom := parseTimestamp(q.Get("from"))
	to, errTo := parseTimestamp(q.Get("to"))
	if errFrom != nil || errTo != nil {
		s.writeError(w, r, http.StatusBadRequest, "error_invalid_date_range")
		return
	}

	events, err := s.events.ListEvents(r.Context(), calendarID, from, to)
	if err != nil {
		s.writeDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"events": toEventDTOs(events)})
}

func (s *Server) handleGetEvent(w http.ResponseWriter, r *http.Request) {
	event, err := s.events.GetEvent(r.Context(), r.PathValue("id"))
	if err != nil {
		s.writeDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"event": toEventDTO(event)})
}

func (s *Server) handleCreateEvent(w http.ResponseWriter, r *http.Request) {
	var req createEventRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, r, http.StatusBadRequest, "error_missing_fields")
		return
	}

	start, errStart := parseTimestamp(req.Start)
	end, errEnd := parseTimestamp(req.End)
	if errStart != nil || errEnd != nil {
		s.writeError(w, r, http.StatusBadRequest, "error_invalid_date_range")
		return
	}

	event := entities.Event{
		CalendarID:  req.CalendarID,
		Title:       req.Title,
		Description: req.Description,
		Start:       start,
		End:         end,
		TZ:          req.TZ,
		Category:    req.EventType,
		Location:    req.Location,
	}
	if err := s.events.CreateEvent(r.Context(), &event); err != nil {
		s.writeDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{"event": toEventDTO(&event)})
}

func (s *Server) handleUpdateEvent(w http.ResponseWriter, r *http.Request) {
	var req updateEventRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, r, http.StatusBadRequest, "error_missing_fields")
		return
	}

	update := input.EventUpdate{
		Title:       req.Title,
		Description: req.Description,
		TZ:          req.TZ,
		Category:    req.EventType,
		Location:    req.Location,
	}
	if req.Start != nil {
		start, err := parseTimestamp(*req.Start)
		if err != nil {
			s.writeError(w, r, http.StatusBadRequest, "error_invalid_date_range")
			return
		}
		update.Start = &start
	}
	if req.End != nil {
		end, err := parseTimestamp(*req.End)
		if err != nil {
			s.writeError(w, r, http.StatusBadRequest, "error_invalid_date_range")
			return
		}
		update.End = &end
	}

	event, err := s.events.UpdateEvent(r.Context(), r.PathValue("id"), update)
	if err != nil {
		s.writeDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"event": toEventDTO(event)})
}

func (s *Server) handleDeleteEvent(w http.ResponseWriter, r *http.Request) {
	if err := s.events.DeleteEvent(r.Context(), r.PathValue("id")); err != nil {
		s.writeDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"message": s.t.T(requestLocale(r), "event_deleted", nil),
	})
}

func (s *Server) handleClearEvents(w http.ResponseWriter, r *http.Request) {
	calendarID := r.URL.Query().Get("calendarId")
	if calendarID == "" {
		calendarID = s.defaultCalendarID
	}
	if err := s.events.ClearEvents(r.Context(), calendarID); err != nil {
		s.writeDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"message": s.t.T(requestLocale(r), "events_cleared", nil),
	})
}

func (s *Server) handleSeed(w http.ResponseWriter, r *http.Request) {
	if err := s.events.SeedDemoData(r.Context(), s.defaultUserID, s.defaultCalendarID); err != nil {
		s.writeDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"message": s.t.T(requestLocale(r), "demo_seeded", nil),
	})
}

// parseTimestamp accepts RFC3339 timestamps, with or without fractional
// seconds.
func parseTimestamp(s string) (time.Time, error) {
	return time.Parse(time.RFC3339, s)
}
