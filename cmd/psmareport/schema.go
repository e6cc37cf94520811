package main

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var schemaJSON bool

var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the report field schema",
	Long: `Schema lists every report field with its section, type, options and
dependency. Useful for building clients against the API.`,
	RunE: runSchema,
}

func init() {
	schemaCmd.Flags().BoolVar(&schemaJSON, "json", false, "print the schema as JSON")
}

func runSchema(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}

	fields := a.reg.Fields()
	if schemaJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(fields)
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "KEY\tTYPE\tSECTION\tDEPENDS ON")
	for _, f := range fields {
		dep := ""
		if f.Dependency != nil {
			dep = f.Dependency.String()
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", f.Key, f.Type, f.Section, dep)
	}
	return w.Flush()
}
