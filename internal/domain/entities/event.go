package entities

import "time"

// Event is a single calendar occurrence. Echo-specific fields (Flowchart,
// EchoChildIDs, ParentEventID) stay empty on regular events and are only
// populated by the echo workflow.
type Event struct {
	ID          string
	CalendarID  string
	Title       string
	Description string
	Start       time.Time
	End         time.Time
	TZ          string // IANA timezone name
	Category    string // work | fun | other
	Location    string
	Kind        string // regular | echo

	// Flowchart and EchoChildIDs are set together on a parent event that
	// has generated follow-ups; ParentEventID is the back-reference set on
	// the generated children.
	Flowchart     string
	EchoChildIDs  []string
	ParentEventID string

	UserID    string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// HasEcho reports whether e currently holds an active echo linkage.
func (e *Event) HasEcho() bool {
	return e.Flowchart != ""
}

// IsEcho reports whether e itself is a generated follow-up.
func (e *Event) IsEcho() bool {
	return e.Kind == "echo"
}

// FollowupProposal is a generated follow-up before it is persisted.
// Proposals are always produced in pairs.
type FollowupProposal struct {
	Title       string
	Description string
	Start       time.Time
	End         time.Time
}
