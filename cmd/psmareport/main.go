// Package main implements the psmareport CLI: structured report extraction
// from PSMA PET/CT free-text notes, an HTTP API, and corpus indexing.
package main

import (
	"os"

	"github.com/spf13/cobra"
)

var (
	configPath string
	version    = "dev"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "psmareport",
	Short: "Structured report extraction for PSMA PET/CT notes",
	Long: `psmareport turns free-text PSMA PET/CT findings into a structured
report form. An LLM backend answers one question per schema field; answers
are parsed into typed values, dependent fields are gated on their parents,
and a clinical summary is derived from the filled form.`,
	Version: version,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file path (default ~/.config/psmareport/config.yaml)")
	rootCmd.AddCommand(extractCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(schemaCmd)
	rootCmd.AddCommand(indexCmd)
}
