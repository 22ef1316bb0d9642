// Package cli provides per-state style listings.
package cli

import (
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(statesCmd)
}

var statesCmd = &cobra.Command{
	Use:   "states [style]...",
	Short: "List the per-state values of styles",
	Long:  "List every value a style pushes to a per-state property, in the order normal, highlighted, disabled, selected, focused. States without an override are omitted.",
	RunE: func(cmd *cobra.Command, args []string) error {
		sheet, err := GetConfig().Sheet()
		if err != nil {
			return err
		}
		names := args
		if len(names) == 0 {
			names = sheet.Names()
		}

		var rows [][]string
		for _, name := range names {
			values, err := sheet.Describe(name)
			if err != nil {
				return err
			}
			for _, sv := range values {
				rows = append(rows, []string{name, sv.State.String(), sv.Value})
			}
		}
		return writeTable(cmd.OutOrStdout(), []string{"STYLE", "STATE", "VALUE"}, rows)
	},
}
