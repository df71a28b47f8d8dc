package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/leapstack-labs/leaptable/pkg/dialect"
)

// NewSchemaCommand creates the schema command.
func NewSchemaCommand() *cobra.Command {
	var ifNotExists bool

	cmd := &cobra.Command{
		Use:   "schema",
		Short: "Validate the schema and print its CREATE TABLE statement",
		Long: `Validate the schema file against the target dialect and print the
CREATE TABLE statement that create would run. Nothing is executed.

A schema without a primary key gets an integer "_<table>_pt" key column.`,
		Example: `  leaptable schema --schema users.yaml
  leaptable schema --schema users.yaml --dialect mysql --database app`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			env, err := envFrom(cmd.Context())
			if err != nil {
				return err
			}
			schema, err := env.Schema()
			if err != nil {
				return err
			}
			builder, err := dialect.Resolve(env.Config.Target.Dialect)
			if err != nil {
				return err
			}
			query, err := builder.CreateTableSQL(dialect.CreateTable{
				Table:         schema.Table,
				Fields:        schema.Fields,
				PrimaryKey:    schema.PrimaryKey,
				Unique:        schema.Unique,
				AllowExisting: ifNotExists,
			})
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), query)
			return nil
		},
	}

	cmd.Flags().BoolVar(&ifNotExists, "if-not-exists", false, "render CREATE TABLE IF NOT EXISTS")
	return cmd
}
