package main

import (
	"fmt"

	"github.com/jonathan/harvard-cv/internal/cv"
	"github.com/jonathan/harvard-cv/internal/export"
	"github.com/jonathan/harvard-cv/internal/gdocs"
	"github.com/spf13/cobra"
)

var filenameCmd = &cobra.Command{
	Use:   "filename",
	Short: "Print the output filename for a CV",
	Long:  "Prints the file name a render would use, or the document title for the gdocs format.",
	RunE:  runFilename,
}

var (
	filenameInputFile string
	filenameFormat    string
)

func init() {
	filenameCmd.Flags().StringVarP(&filenameInputFile, "in", "i", "", "Path to CV JSON file (required)")
	filenameCmd.Flags().StringVarP(&filenameFormat, "format", "f", "pdf", "Output format: html, pdf, docx or gdocs")

	_ = filenameCmd.MarkFlagRequired("in")

	rootCmd.AddCommand(filenameCmd)
}

func runFilename(cmd *cobra.Command, _ []string) error {
	format, err := export.ParseFormat(filenameFormat)
	if err != nil {
		return err
	}

	rec, err := readCV(filenameInputFile)
	if err != nil {
		return err
	}

	name := cv.Filename(rec.Profile, format.Extension())
	if format == export.FormatGDocs {
		name = gdocs.Title(cv.Normalize(rec))
	}

	_, _ = fmt.Fprintln(cmd.OutOrStdout(), name)
	return nil
}
