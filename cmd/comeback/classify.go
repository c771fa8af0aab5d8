package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/career-comeback/internal/matching"
	"github.com/jonathan/career-comeback/internal/observability"
)

var keywordTables = map[string]matching.KeywordTable{
	"recommendation": matching.RecommendationKeywords,
	"roadmap":        matching.RoadmapKeywords,
}

func newClassifyCmd() *cobra.Command {
	var (
		signals []string
		table   string
		pretty  bool
		scores  bool
	)
	cmd := &cobra.Command{
		Use:   "classify",
		Short: "Detect the career domain for a set of signals",
		Long:  "Classify free-text signals such as a headline, skills and past titles into a career domain.",
		Example: `  comeback classify --signal "Senior Software Engineer" --signal React --signal Docker
  comeback classify --table roadmap --signal "Registered Nurse" --scores`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			t, ok := keywordTables[table]
			if !ok {
				return fmt.Errorf("unknown table %q (want recommendation or roadmap)", table)
			}
			out := cmd.OutOrStdout()
			domain := t.Classify(signals)

			if pretty {
				observability.NewPrinter(out).PrintDomain(domain, signals)
			} else if _, err := fmt.Fprintln(out, domain); err != nil {
				return err
			}
			if scores {
				for _, s := range t.Scores(signals) {
					if _, err := fmt.Fprintf(out, "%-12s %d\n", s.Domain, s.Hits); err != nil {
						return err
					}
				}
			}
			return nil
		},
	}
	cmd.Flags().StringArrayVarP(&signals, "signal", "s", nil, "Signal text (repeatable)")
	cmd.Flags().StringVar(&table, "table", "recommendation", "Keyword table: recommendation or roadmap")
	cmd.Flags().BoolVar(&pretty, "pretty", false, "Print a boxed summary")
	cmd.Flags().BoolVar(&scores, "scores", false, "Also print keyword hits per domain")
	return cmd
}
