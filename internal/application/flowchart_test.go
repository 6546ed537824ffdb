package application

import (
	"strings"
	"testing"
	"time"

	"github.com/prabhatravib/infflow-calendar-sub000/internal/domain/entities"
)

func TestRenderFlowchartStructure(t *testing.T) {
	parent := sampleParent()
	parent.Title = "doctor appointment"
	followups := []entities.FollowupProposal{
		{
			Title: "Follow-up Doctor Visit",
			Start: time.Date(2025, 1, 24, 14, 0, 0, 0, time.UTC),
			End:   time.Date(2025, 1, 24, 15, 0, 0, 0, time.UTC),
		},
		{
			Title: "Annual Physical Exam",
			Start: time.Date(2026, 1, 10, 14, 0, 0, 0, time.UTC),
			End:   time.Date(2026, 1, 10, 15, 0, 0, 0, time.UTC),
		},
	}

	out := RenderFlowchart(parent, followups)

	if !strings.HasPrefix(out, "%%{init:") {
		t.Fatalf("missing init block:\n%s", out)
	}
	if !strings.Contains(out, "flowchart TD") {
		t.Fatalf("missing flowchart header")
	}

	// Three date-labeled groups in chronological order.
	labels := []string{
		`subgraph D1 ["Jan 10, 2025"]`,
		`subgraph D2 ["Jan 24, 2025"]`,
		`subgraph D3 ["Jan 10, 2026"]`,
	}
	last := -1
	for _, label := range labels {
		idx := strings.Index(out, label)
		if idx < 0 {
			t.Fatalf("missing %q in:\n%s", label, out)
		}
		if idx < last {
			t.Fatalf("%q out of order", label)
		}
		last = idx
	}

	for _, want := range []string{
		`EV0("doctor appointment")`,
		`EV1("Follow-up Doctor Visit")`,
		`EV2("Annual Physical Exam")`,
		"D1 --> D2",
		"D2 --> D3",
		"%% ISO_DATE_1: 2025-01-10T14:00:00Z",
		"%% ISO_DATE_2: 2025-01-24T14:00:00Z",
		"%% ISO_DATE_3: 2026-01-10T14:00:00Z",
		`click EV0 "javascript:window.gotoDateWithTitle('2025-01-10T14:00:00Z','doctor appointment')"`,
		`click EV1 "javascript:window.gotoDateWithTitle('2025-01-24T14:00:00Z','Follow-up Doctor Visit')"`,
		`click EV2 "javascript:window.gotoDateWithTitle('2026-01-10T14:00:00Z','Annual Physical Exam')"`,
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("missing %q in:\n%s", want, out)
		}
	}
}

func TestRenderFlowchartIsDeterministic(t *testing.T) {
	parent := sampleParent()
	followups := []entities.FollowupProposal{
		{Title: "A", Start: parent.Start.Add(14 * 24 * time.Hour)},
		{Title: "B", Start: parent.Start.Add(365 * 24 * time.Hour)},
	}
	first := RenderFlowchart(parent, followups)
	second := RenderFlowchart(parent, followups)
	if first != second {
		t.Fatal("renderer output differs between calls")
	}
}
