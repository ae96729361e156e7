package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/jonathan/harvard-cv/internal/export"
	"github.com/jonathan/harvard-cv/internal/observability"
	"github.com/jonathan/harvard-cv/internal/rendering"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render a CV to a local file",
	Long:  "Validates a CV JSON file and renders it as HTML, PDF or DOCX. With --format all, every local format is rendered in parallel.",
	RunE:  runRender,
}

var (
	renderInputFile  string
	renderFormat     string
	renderOutputFile string
	renderOutputDir  string
)

func init() {
	renderCmd.Flags().StringVarP(&renderInputFile, "in", "i", "", "Path to CV JSON file (required)")
	renderCmd.Flags().StringVarP(&renderFormat, "format", "f", "pdf", "Output format: html, pdf, docx or all")
	renderCmd.Flags().StringVarP(&renderOutputFile, "out", "o", "", "Output file path (defaults to the CV filename in --out-dir)")
	renderCmd.Flags().StringVar(&renderOutputDir, "out-dir", "", "Output directory (overrides output_dir from config)")

	_ = renderCmd.MarkFlagRequired("in")

	rootCmd.AddCommand(renderCmd)
}

func runRender(cmd *cobra.Command, _ []string) error {
	cfg, log, err := loadSettings()
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	formats, err := parseRenderFormats(renderFormat)
	if err != nil {
		return err
	}
	if len(formats) > 1 && renderOutputFile != "" {
		return fmt.Errorf("--out cannot be used with --format all; use --out-dir")
	}

	rec, err := readCV(renderInputFile)
	if err != nil {
		return err
	}

	exporter := export.NewExporter(
		export.WithHTMLRenderer(rendering.NewHTMLRenderer(
			rendering.WithTemplateDir(cfg.TemplateDir),
			rendering.WithTemplateName(cfg.TemplateName),
		)),
		export.WithRasterizer(&rendering.ChromeRasterizer{
			ExecPath: cfg.ChromePath,
			Timeout:  cfg.PDFTimeout(),
			Logger:   log,
		}),
		export.WithLogger(log),
	)

	artifacts, err := exporter.ExportAll(context.Background(), rec, formats)
	if err != nil {
		return err
	}

	if verbose || cfg.Verbose {
		observability.NewPrinter(cmd.ErrOrStderr()).PrintArtifacts(artifacts)
	}

	outDir := renderOutputDir
	if outDir == "" {
		outDir = cfg.OutputDir
	}

	for _, artifact := range artifacts {
		path, err := export.WriteArtifact(artifact, outDir, renderOutputFile)
		if err != nil {
			return err
		}
		log.Info("wrote artifact", zap.String("format", string(artifact.Format)), zap.String("path", path))
		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Output: %s\n", path)
	}

	return nil
}

func parseRenderFormats(name string) ([]export.Format, error) {
	if strings.EqualFold(name, "all") {
		return export.LocalFormats, nil
	}

	format, err := export.ParseFormat(name)
	if err != nil {
		return nil, err
	}
	if !format.IsLocal() {
		return nil, &export.UnsupportedFormatError{Format: name, Reason: "use the gdocs command for remote documents"}
	}
	return []export.Format{format}, nil
}
