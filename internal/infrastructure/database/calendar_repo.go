package database

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/prabhatravib/infflow-calendar-sub000/internal/domain/entities"
	"github.com/prabhatravib/infflow-calendar-sub000/internal/ports/output"
)

var _ output.CalendarRepository = (*CalendarRepository)(nil)

type CalendarRepository struct {
	pool *pgxpool.Pool
}

func NewCalendarRepository(pool *pgxpool.Pool) *CalendarRepository {
	return &CalendarRepository{pool: pool}
}

func (r *CalendarRepository) EnsureUser(ctx context.Context, user *entities.User) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO users (id, email) VALUES ($1, $2)
		ON CONFLICT (id) DO NOTHING`,
		user.ID, user.Email,
	)
	if err != nil {
		return fmt.Errorf("ensure user: %w", err)
	}
	return nil
}

func (r *CalendarRepository) EnsureCalendar(ctx context.Context, cal *entities.Calendar) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO calendars (id, user_id, name) VALUES ($1, $2, $3)
		ON CONFLICT (id) DO NOTHING`,
		cal.ID, cal.UserID, cal.Name,
	)
	if err != nil {
		return fmt.Errorf("ensure calendar: %w", err)
	}
	return nil
}

func (r *CalendarRepository) FindByUserID(ctx context.Context, userID string) ([]entities.Calendar, error) {
	rows, err := r.pool.Query(ctx, `SELECT id, user_id, name FROM calendars WHERE user_id = $1`, userID)
	if err != nil {
		return nil, fmt.Errorf("get calendars by user id: %w", err)
	}
	defer rows.Close()

	out := make([]entities.Calendar, 0)
	for rows.Next() {
		var c entities.Calendar
		if err := rows.Scan(&c.ID, &c.UserID, &c.Name); err != nil {
			return nil, fmt.Errorf("scan calendar: %w", err)
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate calendars: %w", err)
	}
	return out, nil
}
