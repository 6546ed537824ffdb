package application

import (
	"fmt"
	"strings"
	"time"

	"github.com/prabhatravib/infflow-calendar-sub000/internal/domain/entities"
)

// RenderFlowchart serializes the parent and its two follow-ups as a Mermaid
// flowchart: three date-labeled subgraphs in chronological order, a linear
// D1 --> D2 --> D3 chain, the raw ISO start timestamps as trailing comments,
// and a click handler per event node that the UI uses to jump the calendar
// to that date. Pure and deterministic; no I/O.
func RenderFlowchart(parent *entities.Event, followups []entities.FollowupProposal) string {
	var b strings.Builder

	b.WriteString(`%%{init:{
  "theme":"base",
  "themeCSS": ".cluster rect{rx:12px!important;ry:12px!important;}.cluster.dateBox > rect{fill:#e8edf9;stroke:#4a6fa5;stroke-width:1.2px;}",
  "securityLevel":"loose"
}}%%
flowchart TD
    %% styles
    classDef dateBox fill:#e8edf9,stroke:#4a6fa5,stroke-width:1.2px
    classDef eventBox fill:#ffffff,stroke:#d1d5db,stroke-width:1px,color:#374151

    %% diagram
`)

	titles := []string{parent.Title, followups[0].Title, followups[1].Title}
	starts := []time.Time{parent.Start, followups[0].Start, followups[1].Start}

	for i := 0; i < 3; i++ {
		fmt.Fprintf(&b, "    subgraph D%d [\"%s\"]\n", i+1, flowchartDate(starts[i]))
		fmt.Fprintf(&b, "        EV%d(\"%s\")\n", i, titles[i])
		b.WriteString("    end\n")
		fmt.Fprintf(&b, "    class D%d dateBox\n\n", i+1)
	}

	b.WriteString(`    class EV0,EV1,EV2 eventBox

    D1 --> D2
    D2 --> D3

    %% ISO dates for reference
`)
	for i := 0; i < 3; i++ {
		fmt.Fprintf(&b, "    %%%% ISO_DATE_%d: %s\n", i+1, starts[i].UTC().Format(time.RFC3339))
	}

	b.WriteString("\n    %% click handlers on event nodes\n")
	for i := 0; i < 3; i++ {
		fmt.Fprintf(&b, "    click EV%d \"javascript:window.gotoDateWithTitle('%s','%s')\"\n",
			i, starts[i].UTC().Format(time.RFC3339), titles[i])
	}

	return b.String()
}

// flowchartDate is the human-readable subgraph label, e.g. "Jan 24, 2025".
func flowchartDate(t time.Time) string {
	return t.UTC().Format("Jan 2, 2006")
}
