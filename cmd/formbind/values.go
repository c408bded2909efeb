package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"formbind/binding"
	"formbind/internal/dynamic"
)

var valuesCmd = &cobra.Command{
	Use:   "values [key=raw ...]",
	Short: "Apply raw edits and print the resulting value snapshot",
	RunE: func(cmd *cobra.Command, args []string) error {
		rec, err := loadRecord()
		if err != nil {
			return err
		}

		sess := binding.NewSession(rec, binding.WithFields(rec.Fields()))

		for _, arg := range args {
			key, raw, ok := strings.Cut(arg, "=")
			if !ok {
				return fmt.Errorf("edit %q is not key=raw", arg)
			}

			if _, known := sess.Descriptor(key); !known {
				return fmt.Errorf("unknown field key %q", key)
			}

			sess.Apply(key, raw)
		}

		printSnapshot(sess)

		return nil
	},
}

func printSnapshot(sess *binding.Session[dynamic.Record]) {
	var fmtr binding.Formatter

	values := sess.Values()
	for _, d := range sess.Fields() {
		v := values[d.Key]
		if v.IsAbsent() {
			fmt.Printf("%-12s <absent>\n", d.Key)
			continue
		}

		fmt.Printf("%-12s %s\n", d.Key, fmtr.Format(d, v))
	}
}
