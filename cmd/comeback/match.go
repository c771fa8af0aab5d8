package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/career-comeback/internal/matching"
)

func newMatchCmd() *cobra.Command {
	var (
		skills    []string
		required  []string
		fixedGaps []string
		goal      string
		tier      string
	)
	cmd := &cobra.Command{
		Use:   "match",
		Short: "Score user skills against a role's required skills",
		Long: "Match declared skills against required skills using exact, substring, shared-word and alias " +
			"matching, then weight the score by goal and tier. Prints the score and up to four gap skills as JSON.",
		Example: `  comeback match -s React -s Node.js -r React -r SQL -r Leadership
  comeback match -s Excel -r Kubernetes --gap Portfolio --goal pivot --tier adjacent`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			t, ok := matching.ParseTier(tier)
			if !ok {
				return fmt.Errorf("unknown tier %q (want direct, adjacent or replacement)", tier)
			}
			result := matching.CalculateMatch(skills, required, fixedGaps, goal, t)
			return writeJSON(cmd.OutOrStdout(), "", result)
		},
	}
	cmd.Flags().StringArrayVarP(&skills, "skill", "s", nil, "User skill (repeatable)")
	cmd.Flags().StringArrayVarP(&required, "required", "r", nil, "Required skill (repeatable)")
	cmd.Flags().StringArrayVar(&fixedGaps, "gap", nil, "Gap always reported for the role (repeatable)")
	cmd.Flags().StringVar(&goal, "goal", string(matching.GoalFlexible), "Career goal; unknown goals weigh as flexible")
	cmd.Flags().StringVar(&tier, "tier", string(matching.TierDirect), "Tier weight to apply: direct, adjacent or replacement")
	return cmd
}
