package input

import (
	"context"
	"time"

	"github.com/prabhatravib/infflow-calendar-sub000/internal/domain/entities"
)

// EventUpdate carries a partial event edit. Nil fields are left untouched.
type EventUpdate struct {
	Title       *string
	Description *string
	Start       *time.Time
	End         *time.Time
	TZ          *string
	Category    *string
	Location    *string
}

// Empty reports whether the update would change nothing.
func (u EventUpdate) Empty() bool {
	return u.Title == nil && u.Description == nil && u.Start == nil &&
		u.End == nil && u.TZ == nil && u.Category == nil && u.Location == nil
}

type EventUseCase interface {
	ListEvents(ctx context.Context, calendarID string, from, to time.Time) ([]entities.Event, error)
	GetEvent(ctx context.Context, id string) (*entities.Event, error)
	CreateEvent(ctx context.Context, event *entities.Event) error
	UpdateEvent(ctx context.Context, id string, update EventUpdate) (*entities.Event, error)
	DeleteEvent(ctx context.Context, id string) error
	ClearEvents(ctx context.Context, calendarID string) error
	GetUserEvents(ctx context.Context, userID string) ([]entities.Event, error)
	SeedDemoData(ctx context.Context, userID, calendarID string) error
}
