package main

import (
	"fmt"

	"github.com/jonathan/harvard-cv/internal/cv"
	"github.com/jonathan/harvard-cv/internal/observability"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate a CV JSON file",
	Long:  "Checks a CV JSON file against the CV schema and the required-field rules without rendering it.",
	RunE:  runValidate,
}

var validateInputFile string

func init() {
	validateCmd.Flags().StringVarP(&validateInputFile, "in", "i", "", "Path to CV JSON file (required)")

	_ = validateCmd.MarkFlagRequired("in")

	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, _ []string) error {
	rec, err := readCV(validateInputFile)
	if err != nil {
		return err
	}
	if err := rec.Validate(); err != nil {
		return err
	}

	if verbose {
		observability.NewPrinter(cmd.ErrOrStderr()).PrintRecord(cv.Normalize(rec))
	}

	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "✓ %s is a valid CV\n", validateInputFile)
	return nil
}
