package main

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jonathan/harvard-cv/internal/cv"
	"github.com/jonathan/harvard-cv/internal/export"
	"github.com/jonathan/harvard-cv/internal/gdocs"
	"github.com/jonathan/harvard-cv/internal/observability"
	"github.com/spf13/cobra"
)

var gdocsCmd = &cobra.Command{
	Use:   "gdocs",
	Short: "Publish a CV as a Google Docs document",
	Long: `Creates a Google Docs document and fills it with the CV in a single batch update.

Requires GOOGLE_ACCESS_TOKEN. GOOGLE_REFRESH_TOKEN together with GOOGLE_CLIENT_ID and
GOOGLE_CLIENT_SECRET allows an expired access token to be refreshed.
With --dry-run the batch is applied to an in-memory document and the resulting text is printed.`,
	RunE: runGDocs,
}

var (
	gdocsInputFile string
	gdocsDryRun    bool
	gdocsJSON      bool
)

func init() {
	gdocsCmd.Flags().StringVarP(&gdocsInputFile, "in", "i", "", "Path to CV JSON file (required)")
	gdocsCmd.Flags().BoolVar(&gdocsDryRun, "dry-run", false, "Render against an in-memory document and print its text")
	gdocsCmd.Flags().BoolVar(&gdocsJSON, "json", false, "Print the result as JSON")

	_ = gdocsCmd.MarkFlagRequired("in")

	rootCmd.AddCommand(gdocsCmd)
}

func runGDocs(cmd *cobra.Command, _ []string) error {
	cfg, log, err := loadSettings()
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	rec, err := readCV(gdocsInputFile)
	if err != nil {
		return err
	}

	ctx := context.Background()

	var api gdocs.DocumentAPI
	memory := gdocs.NewMemoryAPI()
	if gdocsDryRun {
		api = memory
	} else {
		creds, err := cfg.GoogleCredentials()
		if err != nil {
			return err
		}
		api, err = gdocs.NewGoogleDocsAPI(ctx, creds)
		if err != nil {
			return err
		}
	}

	renderer := gdocs.NewRenderer(api,
		gdocs.WithLineWidth(cfg.PaddingWidth),
		gdocs.WithLogger(log),
	)

	result, err := export.NewExporter(export.WithLogger(log)).Remote(ctx, rec, renderer)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if gdocsDryRun {
		if verbose || cfg.Verbose {
			ops := gdocs.BuildOperations(cv.Normalize(rec), cfg.PaddingWidth)
			observability.NewPrinter(cmd.ErrOrStderr()).PrintOperations(ops)
		}
		doc := memory.Document(result.DocumentID)
		_, _ = fmt.Fprintf(out, "Title: %s\n\n%s", doc.Title, doc.Content.Text)
		return nil
	}

	if gdocsJSON {
		data, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal result: %w", err)
		}
		_, _ = fmt.Fprintln(out, string(data))
		return nil
	}

	_, _ = fmt.Fprintf(out, "Document ID: %s\n", result.DocumentID)
	_, _ = fmt.Fprintf(out, "URL: %s\n", result.DocumentURL)
	return nil
}
