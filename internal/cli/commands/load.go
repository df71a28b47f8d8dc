package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewLoadCommand creates the load command.
func NewLoadCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "load <file.csv>",
		Short: "Insert the rows of a CSV file",
		Long: `Insert every row of a CSV file whose header matches the table's fields.
Empty cells are inserted as NULL.`,
		Example: `  leaptable load --schema users.yaml users.csv`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := openTable(cmd.Context())
			if err != nil {
				return err
			}
			n, err := t.LoadCSV(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Loaded %d row(s) into %s\n", n, t.Name())
			return nil
		},
	}
}
