package output

import (
	"context"

	"github.com/prabhatravib/infflow-calendar-sub000/internal/domain/entities"
)

type CalendarRepository interface {
	// EnsureUser and EnsureCalendar insert the record when it does not
	// exist yet and are no-ops otherwise.
	EnsureUser(ctx context.Context, user *entities.User) error
	EnsureCalendar(ctx context.Context, cal *entities.Calendar) error
	FindByUserID(ctx context.Context, userID string) ([]entities.Calendar, error)
}
