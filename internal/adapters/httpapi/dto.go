package httpapi

import (
	"time"

	"github.com/prabhatravib/infflow-calendar-sub000/internal/domain/entities"
)

// eventDTO is the wire form of an event; field names match the original
// SPA contract (start/end/tz/eventType/type/echo_event_ids).
type eventDTO struct {
	ID            string   `json:"id"`
	CalendarID    string   `json:"calendar_id"`
	Title         string   `json:"title"`
	Description   string   `json:"description,omitempty"`
	Start         string   `json:"start"`
	End           string   `json:"end"`
	TZ            string   `json:"tz"`
	EventType     string   `json:"eventType"`
	Location      string   `json:"location,omitempty"`
	Type          string   `json:"type"`
	Flowchart     string   `json:"flowchart,omitempty"`
	EchoEventIDs  []string `json:"echo_event_ids,omitempty"`
	ParentEventID string   `json:"parent_event_id,omitempty"`
	UserID        string   `json:"user_id,omitempty"`
	CreatedAt     string   `json:"created_at"`
	UpdatedAt     string   `json:"updated_at"`
}

func toEventDTO(e *entities.Event) eventDTO {
	return eventDTO{
		ID:            e.ID,
		CalendarID:    e.CalendarID,
		Title:         e.Title,
		Description:   e.Description,
		Start:         e.Start.UTC().Format(time.RFC3339),
		End:           e.End.UTC().Format(time.RFC3339),
		TZ:            e.TZ,
		EventType:     e.Category,
		Location:      e.Location,
		Type:          e.Kind,
		Flowchart:     e.Flowchart,
		EchoEventIDs:  e.EchoChildIDs,
		ParentEventID: e.ParentEventID,
		UserID:        e.UserID,
		CreatedAt:     e.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:     e.UpdatedAt.UTC().Format(time.RFC3339),
	}
}

func toEventDTOs(events []entities.Event) []eventDTO {
	out := make([]eventDTO, len(events))
	for i := range events {
		out[i] = toEventDTO(&events[i])
	}
	return out
}
