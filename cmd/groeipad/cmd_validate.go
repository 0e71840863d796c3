package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"groeipaden_app/internal/catalog"
)

var validateFile string

// validateCmd checks a dataset before it is published
var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check the dataset for broken references",
	Long: `Loads the dataset and reports every problem: unknown or duplicate
route ids, duplicate step ids, nextStepId or altNext values that point
nowhere, malformed colors.

Exits non-zero when problems are found.`,
	Args: cobra.NoArgs,
	RunE: runValidate,
}

func init() {
	validateCmd.Flags().StringVarP(&validateFile, "file", "f", "", "Dataset file to check (.json, .yaml); default is the configured source")
}

func runValidate(cmd *cobra.Command, args []string) error {
	routes, source, err := loadRoutes(cmd.Context(), validateFile)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	issues := catalog.Validate(routes)
	for _, issue := range issues {
		fmt.Fprintln(out, issue.Error())
	}
	if len(issues) > 0 {
		return fmt.Errorf("%s: %d problem(s) found", source, len(issues))
	}

	fmt.Fprintf(out, "%s: %d routes, no problems found\n", source, len(routes))
	return nil
}
