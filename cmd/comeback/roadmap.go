package main

import (
	"github.com/spf13/cobra"

	"github.com/jonathan/career-comeback/internal/observability"
	"github.com/jonathan/career-comeback/internal/roadmap"
	"github.com/jonathan/career-comeback/internal/schemas"
	"github.com/jonathan/career-comeback/internal/types"
)

type roadmapOutput struct {
	Roadmap  []types.Milestone `json:"roadmap"`
	Progress types.Progress    `json:"progress"`
}

func newRoadmapCmd() *cobra.Command {
	var (
		profilePath    string
		onboardingPath string
		outPath        string
		pretty         bool
	)
	cmd := &cobra.Command{
		Use:   "roadmap",
		Short: "Generate a comeback roadmap",
		Long:  "Read a CareerProfile and optional onboarding answers, validate both and print the personalized milestone list.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var profile types.CareerProfile
			if err := readDocument(schemas.Profile, profilePath, &profile); err != nil {
				return err
			}
			answers := types.Onboarding{Skills: []string{}}
			if onboardingPath != "" {
				if err := readDocument(schemas.Onboarding, onboardingPath, &answers); err != nil {
					return err
				}
			}

			milestones := roadmap.Generate(profile, answers)
			out := roadmapOutput{Roadmap: milestones, Progress: roadmap.Progress(milestones)}
			if pretty {
				observability.NewPrinter(cmd.OutOrStdout()).PrintRoadmap(out.Roadmap, out.Progress)
				if outPath == "" {
					return nil
				}
			}
			return writeJSON(cmd.OutOrStdout(), outPath, out)
		},
	}
	cmd.Flags().StringVarP(&profilePath, "profile", "p", "", "Path to CareerProfile JSON (required)")
	cmd.Flags().StringVar(&onboardingPath, "onboarding", "", "Path to onboarding answers JSON")
	cmd.Flags().StringVarP(&outPath, "out", "o", "", "Write JSON here instead of stdout")
	cmd.Flags().BoolVar(&pretty, "pretty", false, "Print a boxed summary")
	_ = cmd.MarkFlagRequired("profile")
	return cmd
}
