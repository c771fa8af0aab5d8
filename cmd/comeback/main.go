// Package main is the entry point for the career comeback API server and its
// offline engine commands.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/jonathan/career-comeback/internal/logger"
)

var rootCmd = &cobra.Command{
	Use:   "comeback",
	Short: "Career comeback API server",
	Long: "comeback serves the career comeback REST API and runs the recommendation, roadmap and " +
		"domain classification engines against local JSON files.",
	SilenceUsage: true,
	PersistentPreRun: func(*cobra.Command, []string) {
		logger.Init(logger.FromEnv())
	},
}

func init() {
	rootCmd.AddCommand(newServeCmd(), newMigrateCmd(), newClassifyCmd(), newRecommendCmd(), newRoadmapCmd(), newMatchCmd())
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
