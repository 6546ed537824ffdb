package application

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/prabhatravib/infflow-calendar-sub000/internal/domain/entities"
	applog "github.com/prabhatravib/infflow-calendar-sub000/internal/log"
	"github.com/prabhatravib/infflow-calendar-sub000/internal/ports/output"
)

// Follow-up scheduling is fixed regardless of what the model proposes:
// the first follow-up lands two weeks after the parent, the second one a
// year after, both lasting one hour.
const (
	firstFollowupOffset  = 14 * 24 * time.Hour
	secondFollowupOffset = 365 * 24 * time.Hour
	followupDuration     = time.Hour
)

// medicalKeywords classifies a parent title for the heuristic fallback.
var medicalKeywords = []string{"doctor", "appointment", "checkup", "visit"}

const followupSystemPrompt = "You are an expert personal assistant and event planner. " +
	"Generate realistic follow-up calendar events based on the context provided. Always return valid JSON."

// FollowupGenerator produces exactly two follow-up proposals for a parent
// event, preferring the completion service and falling back to fixed
// heuristic templates on any failure.
type FollowupGenerator struct {
	client output.CompletionClient
}

// NewFollowupGenerator builds a generator around the given completion
// client. A nil client is allowed; generation then always takes the
// heuristic path.
func NewFollowupGenerator(client output.CompletionClient) *FollowupGenerator {
	return &FollowupGenerator{client: client}
}

// aiFollowup mirrors one element of the JSON array the model is asked for.
type aiFollowup struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Start       string `json:"start"`
	End         string `json:"end"`
}

// Generate never fails outward: it always returns exactly two proposals.
func (g *FollowupGenerator) Generate(ctx context.Context, parent *entities.Event) []entities.FollowupProposal {
	proposals, err := g.generateFromModel(ctx, parent)
	if err != nil {
		applog.Error("followup generation fell back to heuristic", err, "event_id", parent.ID)
		return heuristicFollowups(parent)
	}
	return proposals
}

func (g *FollowupGenerator) generateFromModel(ctx context.Context, parent *entities.Event) ([]entities.FollowupProposal, error) {
	if g.client == nil {
		return nil, fmt.Errorf("no completion client configured")
	}

	content, err := g.client.Complete(ctx, followupSystemPrompt, buildFollowupPrompt(parent))
	if err != nil {
		return nil, fmt.Errorf("completion call: %w", err)
	}

	var raw []aiFollowup
	if err := json.Unmarshal([]byte(content), &raw); err != nil {
		return nil, fmt.Errorf("parse completion: %w", err)
	}
	if len(raw) < 2 {
		return nil, fmt.Errorf("completion returned %d follow-ups, need 2", len(raw))
	}

	out := make([]entities.FollowupProposal, 2)
	for i := 0; i < 2; i++ {
		start, end := followupWindow(parent.Start, i)
		title := raw[i].Title
		if title == "" {
			title = fmt.Sprintf("Follow-up %d", i+1)
		}
		description := raw[i].Description
		if description == "" {
			description = "Follow-up event"
		}
		out[i] = entities.FollowupProposal{
			Title:       title,
			Description: description,
			Start:       start,
			End:         end,
		}
	}
	return out, nil
}

func buildFollowupPrompt(parent *entities.Event) string {
	description := parent.Description
	if description == "" {
		description = "No description"
	}
	return fmt.Sprintf(`Generate 2 follow-up events for this calendar event:
Title: %s
Description: %s
Date: %s

Generate realistic follow-up events that would naturally occur after this event. Consider:
- Project timelines and milestones
- Follow-up meetings or check-ins
- Review sessions or evaluations
- Next steps or continuation activities
- For medical appointments: follow-up visits, annual checkups, specialist referrals
- For work events: progress reviews, milestone check-ins, final presentations

Format as JSON array with exactly 2 events:
[{"title": "Event Title", "description": "Brief description", "start": "ISO_DATE", "end": "ISO_DATE"}]`,
		parent.Title, description, parent.Start.UTC().Format(time.RFC3339))
}

// followupWindow computes the fixed start/end for the i-th follow-up
// (i = 0 or 1) relative to the parent start.
func followupWindow(parentStart time.Time, i int) (time.Time, time.Time) {
	offset := firstFollowupOffset
	if i == 1 {
		offset = secondFollowupOffset
	}
	start := parentStart.Add(offset)
	return start, start.Add(followupDuration)
}

// heuristicFollowups is the deterministic, AI-free rule set.
func heuristicFollowups(parent *entities.Event) []entities.FollowupProposal {
	firstStart, firstEnd := followupWindow(parent.Start, 0)
	secondStart, secondEnd := followupWindow(parent.Start, 1)

	if isMedicalTitle(parent.Title) {
		return []entities.FollowupProposal{
			{
				Title:       "Follow-up Doctor Visit",
				Description: "Check progress and discuss next steps",
				Start:       firstStart,
				End:         firstEnd,
			},
			{
				Title:       "Annual Physical Exam",
				Description: "Routine annual health checkup",
				Start:       secondStart,
				End:         secondEnd,
			},
		}
	}
	return []entities.FollowupProposal{
		{
			Title:       "Follow-up Meeting",
			Description: "Check progress on discussed items",
			Start:       firstStart,
			End:         firstEnd,
		},
		{
			Title:       "Final Review",
			Description: "Complete project review and next steps",
			Start:       secondStart,
			End:         secondEnd,
		},
	}
}

func isMedicalTitle(title string) bool {
	lower := strings.ToLower(title)
	for _, kw := range medicalKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}
