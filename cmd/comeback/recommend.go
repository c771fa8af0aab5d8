package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/career-comeback/internal/matching"
	"github.com/jonathan/career-comeback/internal/observability"
	"github.com/jonathan/career-comeback/internal/recommend"
	"github.com/jonathan/career-comeback/internal/schemas"
	"github.com/jonathan/career-comeback/internal/types"
)

func newRecommendCmd() *cobra.Command {
	var (
		profilePath string
		category    string
		outPath     string
		pretty      bool
	)
	cmd := &cobra.Command{
		Use:   "recommend",
		Short: "Generate role recommendations for a profile file",
		Long:  "Read a CareerProfile JSON file, validate it against profile.schema.json and print direct, adjacent and replacement roles.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var profile types.CareerProfile
			if err := readDocument(schemas.Profile, profilePath, &profile); err != nil {
				return err
			}
			if cmd.Flags().Changed("category") {
				if _, ok := matching.ParseTier(category); !ok {
					return fmt.Errorf("unknown category %q (want direct, adjacent or replacement)", category)
				}
				profile.Category = category
			}

			recs := recommend.Generate(profile)
			if pretty {
				observability.NewPrinter(cmd.OutOrStdout()).PrintRecommendations(&recs)
				if outPath == "" {
					return nil
				}
			}
			return writeJSON(cmd.OutOrStdout(), outPath, recs)
		},
	}
	cmd.Flags().StringVarP(&profilePath, "profile", "p", "", "Path to CareerProfile JSON (required)")
	cmd.Flags().StringVarP(&category, "category", "c", "", "Only generate one tier: direct, adjacent or replacement")
	cmd.Flags().StringVarP(&outPath, "out", "o", "", "Write JSON here instead of stdout")
	cmd.Flags().BoolVar(&pretty, "pretty", false, "Print a boxed summary")
	_ = cmd.MarkFlagRequired("profile")
	return cmd
}
