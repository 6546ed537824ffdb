package application

import (
	"context"

	"github.com/prabhatravib/infflow-calendar-sub000/internal/domain"
	applog "github.com/prabhatravib/infflow-calendar-sub000/internal/log"
	"github.com/prabhatravib/infflow-calendar-sub000/internal/ports/input"
	"github.com/prabhatravib/infflow-calendar-sub000/internal/ports/output"
)

var _ input.EchoUseCase = (*EchoService)(nil)

// EchoService drives the follow-up workflow: generate runs the generator,
// the flowchart renderer and the store in sequence; reset clears the
// linkage again. At most one active echo linkage exists per parent.
type EchoService struct {
	events    output.EventRepository
	generator *FollowupGenerator
}

func NewEchoService(events output.EventRepository, generator *FollowupGenerator) *EchoService {
	return &EchoService{
		events:    events,
		generator: generator,
	}
}

// Generate produces two follow-up events for the given parent, persists
// them as echo children and stamps the parent with the rendered flowchart
// and the child id list.
func (s *EchoService) Generate(ctx context.Context, eventID, userID string) (*input.EchoResult, error) {
	if eventID == "" {
		return nil, domain.ErrMissingEventID
	}
	if userID == "" {
		return nil, domain.ErrMissingUserID
	}

	parent, err := s.events.FindByID(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if parent.HasEcho() {
		return nil, domain.ErrEchoAlreadyExists
	}

	followups := s.generator.Generate(ctx, parent)
	mermaid := RenderFlowchart(parent, followups)

	children, err := s.events.CreateEchoChildren(ctx, parent, followups, mermaid, userID)
	if err != nil {
		return nil, err
	}

	childIDs := make([]string, len(children))
	for i := range children {
		childIDs[i] = children[i].ID
	}

	stamped, err := s.events.StampParentEcho(ctx, parent.ID, mermaid, childIDs)
	if err != nil {
		return nil, err
	}
	if !stamped {
		// A concurrent generate claimed the parent first. Remove the
		// children written above so the loser leaves no orphans behind.
		for _, id := range childIDs {
			if derr := s.events.Delete(ctx, id); derr != nil {
				applog.Error("failed to clean up echo child after lost claim", derr, "event_id", id)
			}
		}
		return nil, domain.ErrEchoAlreadyExists
	}

	applog.Info("echo generated", "event_id", parent.ID, "child_count", len(children))
	return &input.EchoResult{
		Mermaid: mermaid,
		Events:  children,
	}, nil
}

// Reset clears the flowchart and child id list on the parent and the
// back-references on its children. The child event rows themselves stay on
// the calendar as ordinary events.
func (s *EchoService) Reset(ctx context.Context, eventID, userID string) error {
	if eventID == "" {
		return domain.ErrMissingEventID
	}
	if userID == "" {
		return domain.ErrMissingUserID
	}

	// Reject unknown parents before touching anything.
	if _, err := s.events.FindByID(ctx, eventID); err != nil {
		return err
	}

	if err := s.events.ResetEcho(ctx, eventID); err != nil {
		return err
	}
	applog.Info("echo reset", "event_id", eventID)
	return nil
}
