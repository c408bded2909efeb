package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"formbind/field"
)

var fieldsCmd = &cobra.Command{
	Use:   "fields",
	Short: "List the bindable fields of the schema in order",
	RunE: func(cmd *cobra.Command, args []string) error {
		rec, err := loadRecord()
		if err != nil {
			return err
		}

		for _, d := range rec.Fields() {
			fmt.Printf("%-12s %s%s", d.Key, d.Kind, describePayload(d))
			if d.Optional {
				fmt.Print("  (optional)")
			}
			fmt.Println()
		}

		return nil
	},
}

func describePayload(d field.Descriptor) string {
	switch d.Kind {
	case field.KindText:
		return fmt.Sprintf("[%s]", d.Subkind)
	case field.KindEnumeration:
		return fmt.Sprintf("%v", d.Enum.Labels())
	case field.KindDate:
		return fmt.Sprintf("[%s]", d.Date.EffectiveLayout())
	default:
		return ""
	}
}
