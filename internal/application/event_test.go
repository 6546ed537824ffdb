package application

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/prabhatravib/infflow-calendar-sub000/internal/domain"
	"github.com/prabhatravib/infflow-calendar-sub000/internal/domain/entities"
	"github.com/prabhatravib/infflow-calendar-sub000/internal/ports/input"
	"github.com/prabhatravib/infflow-calendar-sub000/internal/ports/output"
)

type fakeCalendarRepo struct {
	users     map[string]entities.User
	calendars map[string]entities.Calendar
}

var _ output.CalendarRepository = (*fakeCalendarRepo)(nil)

func newFakeCalendarRepo() *fakeCalendarRepo {
	return &fakeCalendarRepo{
		users:     map[string]entities.User{},
		calendars: map[string]entities.Calendar{},
	}
}

func (f *fakeCalendarRepo) EnsureUser(_ context.Context, user *entities.User) error {
	if _, ok := f.users[user.ID]; !ok {
		f.users[user.ID] = *user
	}
	return nil
}

func (f *fakeCalendarRepo) EnsureCalendar(_ context.Context, cal *entities.Calendar) error {
	if _, ok := f.calendars[cal.ID]; !ok {
		f.calendars[cal.ID] = *cal
	}
	return nil
}

func (f *fakeCalendarRepo) FindByUserID(_ context.Context, userID string) ([]entities.Calendar, error) {
	out := []entities.Calendar{}
	for _, c := range f.calendars {
		if c.UserID == userID {
			out = append(out, c)
		}
	}
	return out, nil
}

func strptr(s string) *string { return &s }

func TestCreateEventValidatesRequiredFields(t *testing.T) {
	svc := NewEventService(newFakeEventRepo(), newFakeCalendarRepo())

	err := svc.CreateEvent(context.Background(), &entities.Event{Title: "no calendar"})
	if !errors.Is(err, domain.ErrMissingFields) {
		t.Fatalf("err = %v, want ErrMissingFields", err)
	}
}

func TestCreateEventDefaultsCategoryAndKind(t *testing.T) {
	repo := newFakeEventRepo()
	svc := NewEventService(repo, newFakeCalendarRepo())

	event := entities.Event{
		CalendarID: "cal-1",
		Title:      "Team Meeting",
		Start:      time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC),
		End:        time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC),
		TZ:         "America/New_York",
	}
	if err := svc.CreateEvent(context.Background(), &event); err != nil {
		t.Fatalf("CreateEvent: %v", err)
	}
	if event.ID == "" {
		t.Fatal("event id not assigned")
	}
	if event.Category != domain.CategoryOther {
		t.Fatalf("category = %q, want other", event.Category)
	}
	if event.Kind != domain.KindRegular {
		t.Fatalf("kind = %q, want regular", event.Kind)
	}
}

func TestUpdateEventAppliesPartialPatch(t *testing.T) {
	repo := newFakeEventRepo()
	seedParentEvent(repo)
	svc := NewEventService(repo, newFakeCalendarRepo())

	updated, err := svc.UpdateEvent(context.Background(), "p1", input.EventUpdate{
		Title:    strptr("Specialist Visit"),
		Category: strptr(domain.CategoryFun),
	})
	if err != nil {
		t.Fatalf("UpdateEvent: %v", err)
	}
	if updated.Title != "Specialist Visit" {
		t.Fatalf("title = %q", updated.Title)
	}
	if updated.Category != domain.CategoryFun {
		t.Fatalf("category = %q", updated.Category)
	}
	// Untouched fields survive.
	if updated.Description != "Annual checkup and consultation" {
		t.Fatalf("description mutated: %q", updated.Description)
	}
}

func TestUpdateEventRejectsEmptyPatch(t *testing.T) {
	repo := newFakeEventRepo()
	seedParentEvent(repo)
	svc := NewEventService(repo, newFakeCalendarRepo())

	_, err := svc.UpdateEvent(context.Background(), "p1", input.EventUpdate{})
	if !errors.Is(err, domain.ErrEmptyUpdate) {
		t.Fatalf("err = %v, want ErrEmptyUpdate", err)
	}
}

func TestUpdateEventRejectsUnknownCategory(t *testing.T) {
	repo := newFakeEventRepo()
	seedParentEvent(repo)
	svc := NewEventService(repo, newFakeCalendarRepo())

	_, err := svc.UpdateEvent(context.Background(), "p1", input.EventUpdate{
		Category: strptr("party"),
	})
	if !errors.Is(err, domain.ErrMissingFields) {
		t.Fatalf("err = %v, want ErrMissingFields", err)
	}
}

func TestListEventsRejectsInvertedRange(t *testing.T) {
	svc := NewEventService(newFakeEventRepo(), newFakeCalendarRepo())

	from := time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)
	_, err := svc.ListEvents(context.Background(), "cal-1", from, from.Add(-time.Hour))
	if !errors.Is(err, domain.ErrInvalidDateRange) {
		t.Fatalf("err = %v, want ErrInvalidDateRange", err)
	}
}

func TestSeedDemoDataIsIdempotent(t *testing.T) {
	repo := newFakeEventRepo()
	calendars := newFakeCalendarRepo()
	fixed := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	svc := NewEventService(repo, calendars, WithClock(func() time.Time { return fixed }))

	if err := svc.SeedDemoData(context.Background(), "demo-user", "cal-1"); err != nil {
		t.Fatalf("SeedDemoData: %v", err)
	}

	if _, ok := calendars.users["demo-user"]; !ok {
		t.Fatal("user row not created")
	}
	if _, ok := calendars.calendars["cal-1"]; !ok {
		t.Fatal("calendar row not created")
	}
	count, _ := repo.CountByCalendarID(context.Background(), "cal-1")
	if count != 4 {
		t.Fatalf("seeded %d events, want 4", count)
	}

	// Second run must not duplicate anything.
	if err := svc.SeedDemoData(context.Background(), "demo-user", "cal-1"); err != nil {
		t.Fatalf("second SeedDemoData: %v", err)
	}
	count, _ = repo.CountByCalendarID(context.Background(), "cal-1")
	if count != 4 {
		t.Fatalf("second seed changed count to %d", count)
	}

	// The demo calendar carries the lowercase medical appointment used by
	// the echo walkthrough.
	found := false
	for _, e := range repo.events {
		if e.Title == "doctor appointment" {
			found = true
			if e.Location != "Medical Center" {
				t.Fatalf("doctor appointment location = %q", e.Location)
			}
		}
	}
	if !found {
		t.Fatal("doctor appointment demo event missing")
	}
}

func TestDeleteParentDoesNotCascadeToChildren(t *testing.T) {
	repo := newFakeEventRepo()
	parent := seedParentEvent(repo)
	echoSvc := newEchoService(repo, &fakeCompletion{err: errors.New("down")})
	result, err := echoSvc.Generate(context.Background(), parent.ID, "user-1")
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	svc := NewEventService(repo, newFakeCalendarRepo())
	if err := svc.DeleteEvent(context.Background(), parent.ID); err != nil {
		t.Fatalf("DeleteEvent: %v", err)
	}

	for _, child := range result.Events {
		if _, err := repo.FindByID(context.Background(), child.ID); err != nil {
			t.Fatalf("child %s deleted with parent: %v", child.ID, err)
		}
	}
}
