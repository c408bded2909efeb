// Package main provides the CLI entrypoint for formbind.
//
// formbind drives the binding engine over schema-defined records:
//   - Loads a YAML form schema and materializes a dynamic record
//   - Lists the bindable fields with their inferred kinds
//   - Applies raw edits through the convert + write-back pipeline
//   - Prints the resulting value snapshot
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"formbind/internal/dynamic"
	"formbind/internal/schema"
)

var schemaPath string

var rootCmd = &cobra.Command{
	Use:          "formbind",
	Short:        "Inspect and edit schema-defined form records",
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&schemaPath, "schema", "form.yaml", "path to the form schema YAML")

	rootCmd.AddCommand(fieldsCmd)
	rootCmd.AddCommand(valuesCmd)
	rootCmd.AddCommand(checkCmd)
}

// loadRecord loads the schema, validates it and materializes a record.
func loadRecord() (dynamic.Record, error) {
	f, err := schema.LoadFile(schemaPath)
	if err != nil {
		return dynamic.Record{}, err
	}

	diags := schema.Validate(f)
	if err := diags.Error(); err != nil {
		return dynamic.Record{}, fmt.Errorf("invalid schema: %w", err)
	}

	return dynamic.New(f)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
