package cmd

import (
	"strings"

	"github.com/spf13/cobra"

	domain "github.com/donaldgifford/searchit/pkg/types"
)

func searchCmd() *cobra.Command {
	var (
		sc       domain.SearchCriteria
		category string
	)

	cmd := &cobra.Command{
		Use:   "search <keywords...>",
		Short: "Search listings",
		Long: "Searches the backend through the gateway and lists the results.\n" +
			"Passing --zipcode searches around that zip instead of the\n" +
			"gateway's current location.",
		Example: `  searchit search desk lamp
  searchit search iphone --category "Computers/Tablets & Networking" --used --free
  searchit search bike --zipcode 10001 --distance 25`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sc.Keywords = strings.Join(args, " ")
			sc.Category = domain.Category(category)
			sc.CustomLocation = cmd.Flags().Changed("zipcode")

			res, err := newClient().Search(cmd.Context(), sc)
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(cmd.OutOrStdout(), res)
			}
			return printSearchTable(cmd.OutOrStdout(), res)
		},
	}

	f := cmd.Flags()
	f.StringVar(&category, "category", "", "category display name (default the gateway's default category)")
	f.BoolVar(&sc.NewCondition, "new", false, "include new items")
	f.BoolVar(&sc.UsedCondition, "used", false, "include used items")
	f.BoolVar(&sc.UnspecifiedCondition, "unspecified", false, "include items with no condition")
	f.BoolVar(&sc.LocalShipping, "local", false, "local pickup only")
	f.BoolVar(&sc.FreeShipping, "free", false, "free shipping only")
	f.StringVar(&sc.Distance, "distance", "", "search radius in miles (default 10)")
	f.StringVar(&sc.CustomZip, "zipcode", "", "search around this zip instead of the current location")
	f.StringVar(&sc.CurrentZip, "current-zipcode", "", "override the gateway's current zip")

	return cmd
}
