package output

import (
	"context"
	"time"

	"github.com/prabhatravib/infflow-calendar-sub000/internal/domain/entities"
)

type EventRepository interface {
	Create(ctx context.Context, event *entities.Event) error
	// FindByID returns domain.ErrEventNotFound for unknown ids; callers
	// must treat that as a normal outcome, not a failure.
	FindByID(ctx context.Context, id string) (*entities.Event, error)
	FindByCalendarAndRange(ctx context.Context, calendarID string, from, to time.Time) ([]entities.Event, error)
	FindByUserID(ctx context.Context, userID string) ([]entities.Event, error)
	CountByCalendarID(ctx context.Context, calendarID string) (int64, error)
	Update(ctx context.Context, event *entities.Event) error
	Delete(ctx context.Context, id string) error
	DeleteByCalendarID(ctx context.Context, calendarID string) error

	// CreateEchoChildren persists the two generated follow-ups as echo
	// events linked to parent, copying its calendar id and timezone.
	CreateEchoChildren(ctx context.Context, parent *entities.Event, proposals []entities.FollowupProposal, flowchart, userID string) ([]entities.Event, error)
	// StampParentEcho sets flowchart and child ids on the parent, but only
	// while the parent has no flowchart yet. It reports whether the stamp
	// was applied.
	StampParentEcho(ctx context.Context, parentID, flowchart string, childIDs []string) (bool, error)
	// ResetEcho clears the echo linkage on the parent and on every event
	// pointing back at it, in a single transaction (children first).
	ResetEcho(ctx context.Context, parentID string) error
}
