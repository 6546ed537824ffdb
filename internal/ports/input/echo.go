package input

import (
	"context"

	"github.com/prabhatravib/infflow-calendar-sub000/internal/domain/entities"
)

// EchoResult is what a successful generation returns to the caller: the
// rendered diagram plus the two persisted follow-up events.
type EchoResult struct {
	Mermaid string
	Events  []entities.Event
}

type EchoUseCase interface {
	Generate(ctx context.Context, eventID, userID string) (*EchoResult, error)
	Reset(ctx context.Context, eventID, userID string) error
}
