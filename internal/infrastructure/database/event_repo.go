package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/prabhatravib/infflow-calendar-sub000/internal/domain"
	"github.com/prabhatravib/infflow-calendar-sub000/internal/domain/entities"
	"github.com/prabhatravib/infflow-calendar-sub000/internal/ports/output"
)

var _ output.EventRepository = (*EventRepository)(nil)

type EventRepository struct {
	pool *pgxpool.Pool
}

func NewEventRepository(pool *pgxpool.Pool) *EventRepository {
	return &EventRepository{pool: pool}
}

func (r *EventRepository) Create(ctx context.Context, event *entities.Event) error {
	id := uuid.NewString()
	now := time.Now().UTC()
	_, err := r.pool.Exec(ctx, `
		INSERT INTO events (id, calendar_id, title, description, start_at, end_at, tz, category, location, kind, user_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`,
		id,
		event.CalendarID,
		event.Title,
		event.Description,
		event.Start,
		event.End,
		event.TZ,
		event.Category,
		event.Location,
		event.Kind,
		textOrNull(event.UserID),
		now,
		now,
	)
	if err != nil {
		return fmt.Errorf("create event: %w", err)
	}
	event.ID = id
	event.CreatedAt = now
	event.UpdatedAt = now
	return nil
}

func (r *EventRepository) FindByID(ctx context.Context, id string) (*entities.Event, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+eventColumns+` FROM events WHERE id = $1`, id)
	e, err := scanEvent(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrEventNotFound
		}
		return nil, fmt.Errorf("get event by id: %w", err)
	}
	return &e, nil
}

func (r *EventRepository) FindByCalendarAndRange(ctx context.Context, calendarID string, from, to time.Time) ([]entities.Event, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+eventColumns+` FROM events
		WHERE calendar_id = $1 AND start_at >= $2 AND start_at <= $3
		ORDER BY start_at ASC`,
		calendarID, from, to,
	)
	if err != nil {
		return nil, fmt.Errorf("get events by calendar and range: %w", err)
	}
	defer rows.Close()
	return collectEvents(rows)
}

func (r *EventRepository) FindByUserID(ctx context.Context, userID string) ([]entities.Event, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+prefixedEventColumns("e")+` FROM events e
		JOIN calendars c ON e.calendar_id = c.id
		WHERE c.user_id = $1
		ORDER BY e.start_at ASC`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("get events by user id: %w", err)
	}
	defer rows.Close()
	return collectEvents(rows)
}

func (r *EventRepository) CountByCalendarID(ctx context.Context, calendarID string) (int64, error) {
	var count int64
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM events WHERE calendar_id = $1`, calendarID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count events by calendar id: %w", err)
	}
	return count, nil
}

func (r *EventRepository) Update(ctx context.Context, event *entities.Event) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE events
		SET title = $2, description = $3, start_at = $4, end_at = $5, tz = $6, category = $7, location = $8, updated_at = $9
		WHERE id = $1`,
		event.ID,
		event.Title,
		event.Description,
		event.Start,
		event.End,
		event.TZ,
		event.Category,
		event.Location,
		time.Now().UTC(),
	)
	if err != nil {
		return fmt.Errorf("update event: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrEventNotFound
	}
	return nil
}

func (r *EventRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM events WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete event: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrEventNotFound
	}
	return nil
}

func (r *EventRepository) DeleteByCalendarID(ctx context.Context, calendarID string) error {
	if _, err := r.pool.Exec(ctx, `DELETE FROM events WHERE calendar_id = $1`, calendarID); err != nil {
		return fmt.Errorf("delete events by calendar id: %w", err)
	}
	return nil
}

func (r *EventRepository) CreateEchoChildren(ctx context.Context, parent *entities.Event, proposals []entities.FollowupProposal, flowchart, userID string) ([]entities.Event, error) {
	children := make([]entities.Event, 0, len(proposals))
	now := time.Now().UTC()
	for _, p := range proposals {
		child := entities.Event{
			ID:            uuid.NewString(),
			CalendarID:    parent.CalendarID,
			Title:         p.Title,
			Description:   p.Description,
			Start:         p.Start,
			End:           p.End,
			TZ:            parent.TZ,
			Category:      domain.CategoryOther,
			Kind:          domain.KindEcho,
			Flowchart:     flowchart,
			ParentEventID: parent.ID,
			UserID:        userID,
			CreatedAt:     now,
			UpdatedAt:     now,
		}
		_, err := r.pool.Exec(ctx, `
			INSERT INTO events (id, calendar_id, title, description, start_at, end_at, tz, category, location, kind, flowchart, parent_event_id, user_id, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`,
			child.ID,
			child.CalendarID,
			child.Title,
			child.Description,
			child.Start,
			child.End,
			child.TZ,
			child.Category,
			child.Location,
			child.Kind,
			child.Flowchart,
			child.ParentEventID,
			textOrNull(child.UserID),
			child.CreatedAt,
			child.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("create echo child: %w", err)
		}
		children = append(children, child)
	}
	return children, nil
}

func (r *EventRepository) StampParentEcho(ctx context.Context, parentID, flowchart string, childIDs []string) (bool, error) {
	// Conditional stamp: only the first generation claims the parent. A
	// concurrent generate that lost the claim sees zero affected rows.
	tag, err := r.pool.Exec(ctx, `
		UPDATE events
		SET flowchart = $2, echo_child_ids = $3, updated_at = $4
		WHERE id = $1 AND flowchart IS NULL`,
		parentID,
		flowchart,
		childIDs,
		time.Now().UTC(),
	)
	if err != nil {
		return false, fmt.Errorf("stamp parent echo: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

func (r *EventRepository) ResetEcho(ctx context.Context, parentID string) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("reset echo begin: %w", err)
	}
	defer tx.Rollback(ctx)

	now := time.Now().UTC()

	// Children first: if anything goes wrong after this point the rollback
	// undoes it, and a committed state never has a child pointing at a
	// still-stamped parent.
	if _, err := tx.Exec(ctx, `
		UPDATE events
		SET flowchart = NULL, parent_event_id = NULL, updated_at = $2
		WHERE parent_event_id = $1`,
		parentID, now,
	); err != nil {
		return fmt.Errorf("reset echo children: %w", err)
	}

	if _, err := tx.Exec(ctx, `
		UPDATE events
		SET flowchart = NULL, echo_child_ids = NULL, updated_at = $2
		WHERE id = $1`,
		parentID, now,
	); err != nil {
		return fmt.Errorf("reset echo parent: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("reset echo commit: %w", err)
	}
	return nil
}

func collectEvents(rows pgx.Rows) ([]entities.Event, error) {
	out := make([]entities.Event, 0)
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, fmt.Errorf("scan event: %w", err)
		}
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate events: %w", err)
	}
	return out, nil
}
