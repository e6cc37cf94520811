package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/radiolabs/psmareport/internal/form"
)

var (
	extractFormat string
	extractOutput string
)

var extractCmd = &cobra.Command{
	Use:   "extract [file]",
	Short: "Extract a structured report from free-text findings",
	Long: `Extract runs the full question schema against a report and prints
the filled structured report.

Examples:
  # Extract from a file, print JSON
  psmareport extract findings.txt

  # Extract from stdin, print the report as text
  cat findings.txt | psmareport extract - --format text

  # Write the summary to a file
  psmareport extract findings.txt --format summary --output summary.txt`,
	Args: cobra.ExactArgs(1),
	RunE: runExtract,
}

func init() {
	extractCmd.Flags().StringVar(&extractFormat, "format", "json", "output format: json, text or summary")
	extractCmd.Flags().StringVar(&extractOutput, "output", "", "write output to file instead of stdout")
}

func runExtract(cmd *cobra.Command, args []string) error {
	text, err := readInput(args[0])
	if err != nil {
		return err
	}

	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.logger.Sync() //nolint:errcheck

	ctx := cmd.Context()
	runner, err := a.runner(ctx)
	if err != nil {
		return err
	}

	st := form.New(a.reg)
	res, err := runner.Run(ctx, text, st)
	if err != nil {
		return err
	}
	if res.Failed > 0 {
		fmt.Fprintf(os.Stderr, "warning: %d field(s) failed extraction: %v\n", res.Failed, res.FailedFields)
	}

	var out []byte
	switch extractFormat {
	case "json":
		out, err = st.ExportJSON()
		if err != nil {
			return err
		}
		out = append(out, '\n')
	case "text":
		out = []byte(st.ExportText())
	case "summary":
		out = []byte(st.Summary() + "\n")
	default:
		return fmt.Errorf("unknown output format %q", extractFormat)
	}

	if extractOutput != "" {
		return os.WriteFile(extractOutput, out, 0o644)
	}
	_, err = os.Stdout.Write(out)
	return err
}

func readInput(arg string) (string, error) {
	if arg == "-" {
		b, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("reading stdin: %w", err)
		}
		return string(b), nil
	}
	b, err := os.ReadFile(arg)
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", arg, err)
	}
	return string(b), nil
}
