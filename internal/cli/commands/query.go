package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/leapstack-labs/leaptable/pkg/core"
	"github.com/leapstack-labs/leaptable/pkg/storage"
)

// NewQueryCommand creates the query command.
func NewQueryCommand() *cobra.Command {
	var (
		where  []string
		order  []string
		limit  int
		offset int
		csv    string
	)

	cmd := &cobra.Command{
		Use:   "query",
		Short: "Query records",
		Long: `Select records from the table and print them keyed by primary key, or
write them to a CSV file with --csv. Conditions are SQL expressions joined
with AND.`,
		Example: `  leaptable query --schema users.yaml
  leaptable query --schema users.yaml --where "age > 18" --order age:desc --limit 10
  leaptable query --schema users.yaml --csv users.csv`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			terms, err := parseOrder(order)
			if err != nil {
				return err
			}
			opts := storage.QueryOptions{
				Limit:      limit,
				Offset:     offset,
				Conditions: where,
				OrderBy:    terms,
			}

			t, err := openTable(cmd.Context())
			if err != nil {
				return err
			}

			if csv != "" {
				n, err := t.QueryDump(cmd.Context(), csv, opts)
				if err != nil {
					return err
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d row(s) to %s\n", n, csv)
				return nil
			}

			frame, err := t.QueryFrame(cmd.Context(), opts)
			if err != nil {
				return err
			}
			frame.Render(cmd.OutOrStdout())
			return nil
		},
	}

	cmd.Flags().StringArrayVarP(&where, "where", "w", nil, "condition (repeatable)")
	cmd.Flags().StringArrayVar(&order, "order", nil, "sort field, optionally field:asc or field:desc (repeatable)")
	cmd.Flags().IntVar(&limit, "limit", 0, "maximum number of rows")
	cmd.Flags().IntVar(&offset, "offset", 0, "rows to skip")
	cmd.Flags().StringVar(&csv, "csv", "", "write rows to this CSV file instead of printing")
	return cmd
}

func parseOrder(args []string) ([]core.OrderTerm, error) {
	terms := make([]core.OrderTerm, 0, len(args))
	for _, arg := range args {
		field, dir, _ := strings.Cut(arg, ":")
		term := core.OrderTerm{Field: field}
		switch strings.ToLower(dir) {
		case "":
		case "asc":
			term.Direction = core.Asc
		case "desc":
			term.Direction = core.Desc
		default:
			return nil, fmt.Errorf("invalid sort direction %q in %q (expected asc or desc)", dir, arg)
		}
		terms = append(terms, term)
	}
	return terms, nil
}
