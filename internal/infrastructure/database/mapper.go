package database

import (
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/prabhatravib/infflow-calendar-sub000/internal/domain/entities"
)

// pgtypeTimestamptzToTime returns t.Time when Valid, else zero time.
func pgtypeTimestamptzToTime(t pgtype.Timestamptz) time.Time {
	if !t.Valid {
		return time.Time{}
	}
	return t.Time
}

// pgtypeTextToString returns t.String when Valid, else "".
func pgtypeTextToString(t pgtype.Text) string {
	if !t.Valid {
		return ""
	}
	return t.String
}

// textOrNull maps "" to a NULL text parameter.
func textOrNull(s string) pgtype.Text {
	if s == "" {
		return pgtype.Text{}
	}
	return pgtype.Text{String: s, Valid: true}
}

// eventColumns is the column list every event query selects, in scanEvent
// order.
const eventColumns = `id, calendar_id, title, description, start_at, end_at, tz, category, location, kind, flowchart, echo_child_ids, parent_event_id, user_id, created_at, updated_at`

// prefixedEventColumns qualifies eventColumns with a table alias for joins.
func prefixedEventColumns(alias string) string {
	return alias + "." + strings.ReplaceAll(eventColumns, ", ", ", "+alias+".")
}

func scanEvent(row pgx.Row) (entities.Event, error) {
	var (
		e                           entities.Event
		startAt, endAt              pgtype.Timestamptz
		createdAt, updatedAt        pgtype.Timestamptz
		flowchart, parentID, userID pgtype.Text
	)
	err := row.Scan(
		&e.ID,
		&e.CalendarID,
		&e.Title,
		&e.Description,
		&startAt,
		&endAt,
		&e.TZ,
		&e.Category,
		&e.Location,
		&e.Kind,
		&flowchart,
		&e.EchoChildIDs,
		&parentID,
		&userID,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return entities.Event{}, err
	}
	e.Start = pgtypeTimestamptzToTime(startAt)
	e.End = pgtypeTimestamptzToTime(endAt)
	e.CreatedAt = pgtypeTimestamptzToTime(createdAt)
	e.UpdatedAt = pgtypeTimestamptzToTime(updatedAt)
	e.Flowchart = pgtypeTextToString(flowchart)
	e.ParentEventID = pgtypeTextToString(parentID)
	e.UserID = pgtypeTextToString(userID)
	return e, nil
}
