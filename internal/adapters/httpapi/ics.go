package httpapi

import (
	"fmt"
	"net/http"
	"time"

	ical "github.com/arran4/golang-ical"
)

// handleICSExport serves all of a user's events as a published VCALENDAR
// attachment.
func (s *Server) handleICSExport(w http.ResponseWriter, r *http.Request) {
	userID := r.PathValue("user")

	events, err := s.events.GetUserEvents(r.Context(), userID)
	if err != nil {
		s.writeDomainError(w, r, err)
		return
	}
	if len(events) == 0 {
		s.writeError(w, r, http.StatusNotFound, "error_no_events_for_user")
		return
	}

	cal := ical.NewCalendar()
	cal.SetMethod(ical.MethodPublish)
	cal.SetProductId("-//Infflow Calendar//EN")
	cal.SetCalscale("GREGORIAN")

	now := time.Now().UTC()
	for _, event := range events {
		ve := cal.AddEvent(event.ID)
		ve.SetDtStampTime(now)
		ve.SetStartAt(event.Start)
		ve.SetEndAt(event.End)
		ve.SetSummary(event.Title)
		if event.Description != "" {
			ve.SetDescription(event.Description)
		}
		if event.Location != "" {
			ve.SetLocation(event.Location)
		}
	}

	w.Header().Set("Content-Type", "text/calendar; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", "calendar-"+userID+".ics"))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(cal.Serialize()))
}
