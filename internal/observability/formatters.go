// Package observability renders engine output as boxed text for the CLI's
// --pretty mode.
package observability

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/jonathan/career-comeback/internal/matching"
	"github.com/jonathan/career-comeback/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 64
	// maxItemsToShow caps each recommendation tier
	maxItemsToShow = 5
)

// tierTitles are the box headings for each recommendation tier.
var tierTitles = map[matching.Tier]string{
	matching.TierDirect:      "DIRECT MATCHES",
	matching.TierAdjacent:    "ADJACENT ROLES",
	matching.TierReplacement: "NEW DIRECTIONS",
}

// Printer writes boxed summaries to an io.Writer.
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// truncate shortens s to at most n runes, marking the cut with "...".
func truncate(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	r := []rune(s)
	return string(r[:n-3]) + "..."
}

//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, truncate(title, boxWidth-4))
	fmt.Fprintf(p.out, "├%s┤\n", border)
	for _, line := range strings.Split(strings.TrimRight(content, "\n"), "\n") {
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, truncate(line, boxWidth-4))
	}
	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintDomain shows the detected domain and the signals it came from.
func (p *Printer) PrintDomain(domain matching.Domain, signals []string) {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Domain:   %s\n", domain)
	if len(signals) == 0 {
		sb.WriteString("Signals:  (none)\n")
	} else {
		fmt.Fprintf(&sb, "Signals:  %s\n", strings.Join(signals, ", "))
	}
	p.printBox("DOMAIN", sb.String())
}

// PrintRecommendations prints one box per non-empty tier, best match first.
func (p *Printer) PrintRecommendations(recs *types.Recommendations) {
	if recs == nil {
		return
	}
	if recs.Total() == 0 {
		p.printBox("RECOMMENDATIONS", "No recommendations for this profile.")
		return
	}

	tiers := []struct {
		tier matching.Tier
		recs []types.Recommendation
	}{
		{matching.TierDirect, recs.Direct},
		{matching.TierAdjacent, recs.Adjacent},
		{matching.TierReplacement, recs.Replacement},
	}
	for _, t := range tiers {
		if len(t.recs) == 0 {
			continue
		}
		p.printBox(fmt.Sprintf("%s (%d)", tierTitles[t.tier], len(t.recs)), formatTier(t.recs))
	}
}

func formatTier(recs []types.Recommendation) string {
	var sb strings.Builder
	count := min(len(recs), maxItemsToShow)
	for i := 0; i < count; i++ {
		r := recs[i]
		fmt.Fprintf(&sb, "#%d  %s  %d%%\n", i+1, r.Title, r.Match)
		fmt.Fprintf(&sb, "    %s · %s · %s\n", r.Company, r.Type, r.Salary)
		if len(r.Gap) > 0 {
			fmt.Fprintf(&sb, "    Gap: %s\n", strings.Join(r.Gap, ", "))
		}
		if i < count-1 {
			sb.WriteString("\n")
		}
	}
	if len(recs) > maxItemsToShow {
		fmt.Fprintf(&sb, "\n... and %d more", len(recs)-maxItemsToShow)
	}
	return sb.String()
}

// PrintRoadmap prints every milestone with its week and done state.
func (p *Printer) PrintRoadmap(milestones []types.Milestone, progress types.Progress) {
	if len(milestones) == 0 {
		p.printBox("COMEBACK ROADMAP", "No milestones yet.")
		return
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Progress: %d/%d (%d%%)\n\n", progress.Done, progress.Total, progress.Percentage)
	for _, m := range milestones {
		mark := " "
		if m.Done {
			mark = "x"
		}
		fmt.Fprintf(&sb, "[%s] %2d. %s\n", mark, m.SortOrder, m.Title)
		if m.Week != "" {
			fmt.Fprintf(&sb, "        %s\n", m.Week)
		}
	}
	p.printBox("COMEBACK ROADMAP", sb.String())
}
