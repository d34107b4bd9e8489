// Package main provides the placement engine CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "placement_agent",
	Short: "Skill gap analysis and adaptive assessment engine",
	Long:  "Placement engine matches student skills against employer requirement profiles, runs adaptive assessments, and maintains behavioral digital twins that predict placement readiness.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
