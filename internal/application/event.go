package application

import (
	"context"
	"fmt"
	"time"

	"github.com/prabhatravib/infflow-calendar-sub000/internal/domain"
	"github.com/prabhatravib/infflow-calendar-sub000/internal/domain/entities"
	"github.com/prabhatravib/infflow-calendar-sub000/internal/ports/input"
	"github.com/prabhatravib/infflow-calendar-sub000/internal/ports/output"
	"github.com/prabhatravib/infflow-calendar-sub000/pkg/tz"
)

var _ input.EventUseCase = (*EventService)(nil)

type EventService struct {
	eventRepo    output.EventRepository
	calendarRepo output.CalendarRepository
	now          func() time.Time
}

type EventServiceOption func(*EventService)

// WithClock overrides the service clock, mainly for tests.
func WithClock(now func() time.Time) EventServiceOption {
	return func(s *EventService) { s.now = now }
}

func NewEventService(eventRepo output.EventRepository, calendarRepo output.CalendarRepository, opts ...EventServiceOption) *EventService {
	s := &EventService{
		eventRepo:    eventRepo,
		calendarRepo: calendarRepo,
		now:          time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *EventService) ListEvents(ctx context.Context, calendarID string, from, to time.Time) ([]entities.Event, error) {
	if to.Before(from) {
		return nil, domain.ErrInvalidDateRange
	}
	return s.eventRepo.FindByCalendarAndRange(ctx, calendarID, from, to)
}

func (s *EventService) GetEvent(ctx context.Context, id string) (*entities.Event, error) {
	if id == "" {
		return nil, domain.ErrMissingEventID
	}
	return s.eventRepo.FindByID(ctx, id)
}

func (s *EventService) CreateEvent(ctx context.Context, event *entities.Event) error {
	if event.CalendarID == "" || event.Title == "" || event.Start.IsZero() || event.End.IsZero() || event.TZ == "" {
		return domain.ErrMissingFields
	}
	if event.Category == "" {
		event.Category = domain.CategoryOther
	}
	if !domain.ValidCategory(event.Category) {
		return domain.ErrMissingFields
	}
	event.Kind = domain.KindRegular
	return s.eventRepo.Create(ctx, event)
}

func (s *EventService) UpdateEvent(ctx context.Context, id string, update input.EventUpdate) (*entities.Event, error) {
	if id == "" {
		return nil, domain.ErrMissingEventID
	}
	if update.Empty() {
		return nil, domain.ErrEmptyUpdate
	}

	event, err := s.eventRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if update.Title != nil {
		event.Title = *update.Title
	}
	if update.Description != nil {
		event.Description = *update.Description
	}
	if update.Start != nil {
		event.Start = *update.Start
	}
	if update.End != nil {
		event.End = *update.End
	}
	if update.TZ != nil {
		event.TZ = *update.TZ
	}
	if update.Category != nil {
		if !domain.ValidCategory(*update.Category) {
			return nil, domain.ErrMissingFields
		}
		event.Category = *update.Category
	}
	if update.Location != nil {
		event.Location = *update.Location
	}

	if err := s.eventRepo.Update(ctx, event); err != nil {
		return nil, err
	}
	return event, nil
}

func (s *EventService) DeleteEvent(ctx context.Context, id string) error {
	if id == "" {
		return domain.ErrMissingEventID
	}
	// Deleting a parent never cascades to its echo children; reset is the
	// only operation that touches the linkage.
	return s.eventRepo.Delete(ctx, id)
}

func (s *EventService) ClearEvents(ctx context.Context, calendarID string) error {
	return s.eventRepo.DeleteByCalendarID(ctx, calendarID)
}

func (s *EventService) GetUserEvents(ctx context.Context, userID string) ([]entities.Event, error) {
	if userID == "" {
		return nil, domain.ErrMissingUserID
	}
	return s.eventRepo.FindByUserID(ctx, userID)
}

// SeedDemoData makes sure the user and calendar rows exist and, when the
// calendar is still empty, inserts a handful of demo events.
func (s *EventService) SeedDemoData(ctx context.Context, userID, calendarID string) error {
	if err := s.calendarRepo.EnsureUser(ctx, &entities.User{
		ID:    userID,
		Email: fmt.Sprintf("%s@example.com", userID),
	}); err != nil {
		return err
	}
	if err := s.calendarRepo.EnsureCalendar(ctx, &entities.Calendar{
		ID:     calendarID,
		UserID: userID,
		Name:   "My Calendar",
	}); err != nil {
		return err
	}

	count, err := s.eventRepo.CountByCalendarID(ctx, calendarID)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	for _, event := range s.demoEvents(calendarID) {
		if err := s.eventRepo.Create(ctx, &event); err != nil {
			return fmt.Errorf("seed demo event %q: %w", event.Title, err)
		}
	}
	return nil
}

func (s *EventService) demoEvents(calendarID string) []entities.Event {
	now := s.now()
	tomorrow := now.Add(24 * time.Hour)
	dayAfter := tomorrow.Add(24 * time.Hour)

	return []entities.Event{
		{
			CalendarID:  calendarID,
			Title:       "doctor appointment",
			Description: "Annual checkup and consultation",
			Start:       tomorrow.Add(14 * time.Hour),
			End:         tomorrow.Add(15 * time.Hour),
			TZ:          tz.NewYork.String(),
			Category:    domain.CategoryOther,
			Location:    "Medical Center",
			Kind:        domain.KindRegular,
		},
		{
			CalendarID:  calendarID,
			Title:       "Team Meeting",
			Description: "Weekly team sync",
			Start:       tomorrow.Add(9 * time.Hour),
			End:         tomorrow.Add(10 * time.Hour),
			TZ:          tz.NewYork.String(),
			Category:    domain.CategoryWork,
			Kind:        domain.KindRegular,
		},
		{
			CalendarID:  calendarID,
			Title:       "Lunch with Client",
			Description: "Discuss project requirements",
			Start:       tomorrow.Add(12 * time.Hour),
			End:         tomorrow.Add(13 * time.Hour),
			TZ:          tz.NewYork.String(),
			Category:    domain.CategoryWork,
			Kind:        domain.KindRegular,
		},
		{
			CalendarID:  calendarID,
			Title:       "Product Review",
			Description: "Review new features",
			Start:       dayAfter.Add(14 * time.Hour),
			End:         dayAfter.Add(15 * time.Hour),
			TZ:          tz.NewYork.String(),
			Category:    domain.CategoryWork,
			Kind:        domain.KindRegular,
		},
	}
}
