package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"formbind/internal/schema"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate the form schema and report diagnostics",
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := schema.LoadFile(schemaPath)
		if err != nil {
			return err
		}

		diags := schema.Validate(f)
		if diags.IsValid() {
			fmt.Printf("%s: %d fields, no problems\n", schemaPath, len(f.Fields))
			return nil
		}

		for _, d := range diags.Errors {
			fmt.Println(d.String())
		}

		return fmt.Errorf("%d problem(s) found", len(diags.Errors))
	},
}
