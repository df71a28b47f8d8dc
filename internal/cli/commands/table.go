package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewCreateCommand creates the create command.
func NewCreateCommand() *cobra.Command {
	var ifNotExists bool

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create the table",
		Example: `  leaptable create --schema users.yaml --path users.db
  leaptable create --schema users.yaml --if-not-exists`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			t, err := openTable(cmd.Context())
			if err != nil {
				return err
			}
			if err := t.Create(cmd.Context(), ifNotExists); err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Created table %s\n", t.Name())
			return nil
		},
	}

	cmd.Flags().BoolVar(&ifNotExists, "if-not-exists", false, "keep an existing table")
	return cmd
}

// NewDropCommand creates the drop command.
func NewDropCommand() *cobra.Command {
	var ifExists bool

	cmd := &cobra.Command{
		Use:   "drop",
		Short: "Drop the table",
		RunE: func(cmd *cobra.Command, _ []string) error {
			t, err := openTable(cmd.Context())
			if err != nil {
				return err
			}
			if err := t.Drop(cmd.Context(), ifExists); err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Dropped table %s\n", t.Name())
			return nil
		},
	}

	cmd.Flags().BoolVar(&ifExists, "if-exists", false, "do not fail when the table is missing")
	return cmd
}

// NewEmptyCommand creates the empty command.
func NewEmptyCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "empty",
		Short: "Delete every row of the table",
		RunE: func(cmd *cobra.Command, _ []string) error {
			t, err := openTable(cmd.Context())
			if err != nil {
				return err
			}
			n, err := t.Empty(cmd.Context())
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Deleted %d row(s) from %s\n", n, t.Name())
			return nil
		},
	}
}
