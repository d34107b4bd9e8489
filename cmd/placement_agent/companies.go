package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/velionx/placement-engine/internal/gap"
	"github.com/velionx/placement-engine/internal/observability"
)

var companiesCmd = &cobra.Command{
	Use:   "companies",
	Short: "List the built-in employer requirement profiles",
	Long:  "List the employer requirement profiles available for gap analysis, with their catalog ids.",
	RunE:  runCompanies,
}

var companiesJSON bool

func init() {
	companiesCmd.Flags().BoolVar(&companiesJSON, "json", false, "Print the catalog as JSON")

	rootCmd.AddCommand(companiesCmd)
}

func runCompanies(_ *cobra.Command, _ []string) error {
	analyzer := gap.NewAnalyzer(nil, nil, nil)
	companies := analyzer.Companies()

	if companiesJSON {
		jsonBytes, err := json.MarshalIndent(companies, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal catalog: %w", err)
		}
		_, _ = fmt.Fprintln(os.Stdout, string(jsonBytes))
		return nil
	}

	observability.NewPrinter(os.Stdout).PrintCompanies(companies)
	return nil
}
