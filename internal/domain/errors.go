package domain

import "errors"

// Domain errors.
var (
	ErrEventNotFound     = errors.New("event not found")
	ErrCalendarNotFound  = errors.New("calendar not found")
	ErrUserNotFound      = errors.New("user not found")
	ErrMissingEventID    = errors.New("event id is required")
	ErrMissingUserID     = errors.New("user id is required")
	ErrMissingFields     = errors.New("missing required fields")
	ErrInvalidDateRange  = errors.New("invalid date range")
	ErrEmptyUpdate       = errors.New("no fields to update")
	ErrEchoAlreadyExists = errors.New("event already has generated follow-ups")
)
