// Package main provides the entry point for the cvgen CLI, which renders a
// CV record as a Harvard-style HTML, PDF, DOCX or Google Docs document.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "cvgen",
	Short: "Harvard-style CV generator",
	Long:  "cvgen validates a structured CV record and renders it as HTML, PDF, DOCX or a Google Docs document using the Harvard layout.",

	SilenceUsage: true,
}

var (
	configFile string
	verbose    bool
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "", "Path to JSON config file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Print detailed debug information")
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
