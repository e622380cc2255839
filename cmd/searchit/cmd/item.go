package cmd

import (
	"github.com/spf13/cobra"

	domain "github.com/donaldgifford/searchit/pkg/types"
)

func itemCmd() *cobra.Command {
	var sortKey, sortOrder string

	cmd := &cobra.Command{
		Use:   "item <id>",
		Short: "Show item details and similar items",
		Example: `  searchit item 123456789
  searchit item 123456789 --sort price --order descending`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			key, err := domain.ParseSortKey(sortKey)
			if err != nil {
				return err
			}
			order, err := domain.ParseSortOrder(sortOrder)
			if err != nil {
				return err
			}

			d, err := newClient().GetItem(cmd.Context(), args[0], key, order)
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(cmd.OutOrStdout(), d)
			}
			return printItemDetail(cmd.OutOrStdout(), d)
		},
	}
	cmd.Flags().StringVar(&sortKey, "sort", "", "similar items sort: default, name, price, days_left, shipping")
	cmd.Flags().StringVar(&sortOrder, "order", "", "sort direction: ascending or descending")

	return cmd
}
