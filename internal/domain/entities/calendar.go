package entities

// User owns one or more calendars.
type User struct {
	ID    string
	Email string
}

// Calendar groups events for one user.
type Calendar struct {
	ID     string
	UserID string
	Name   string
}
