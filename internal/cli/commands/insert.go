package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/leapstack-labs/leaptable/pkg/core"
)

// NewInsertCommand creates the insert command.
func NewInsertCommand() *cobra.Command {
	var nulls []string

	cmd := &cobra.Command{
		Use:   "insert <column=value>...",
		Short: "Insert one record",
		Long: `Insert one record given as column=value pairs. Values are sent as text
and converted by the database according to the column type. Columns left
out are NULL, or auto-assigned for an integer primary key.`,
		Example: `  leaptable insert --schema users.yaml name=Alice age=25
  leaptable insert --schema users.yaml name=Bob --null age`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			record, err := parseAssignments(args)
			if err != nil {
				return err
			}
			for _, col := range nulls {
				record.Set(col, nil)
			}

			t, err := openTable(cmd.Context())
			if err != nil {
				return err
			}
			n, err := t.Insert(cmd.Context(), record)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Inserted %d row(s) into %s\n", n, t.Name())
			return nil
		},
	}

	cmd.Flags().StringArrayVar(&nulls, "null", nil, "column to set to NULL (repeatable)")
	return cmd
}

func parseAssignments(args []string) (*core.Record, error) {
	record := core.NewRecord()
	for _, arg := range args {
		col, value, ok := strings.Cut(arg, "=")
		if !ok || col == "" {
			return nil, fmt.Errorf("invalid assignment %q (expected column=value)", arg)
		}
		record.Set(col, value)
	}
	return record, nil
}
