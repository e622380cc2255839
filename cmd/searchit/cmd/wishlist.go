package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	apiclient "github.com/donaldgifford/searchit/internal/api/client"
)

func wishListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "wishlist",
		Aliases: []string{"wl"},
		Short:   "Show and edit the wish list",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return showWishList(cmd, newClient().ListWishList)
		},
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "add <id>",
		Short: "Add an item to the wish list",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return showWishList(cmd, func(ctx context.Context) (*apiclient.WishList, error) {
				return newClient().AddToWishList(ctx, args[0])
			})
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:     "remove <id>",
		Aliases: []string{"rm"},
		Short:   "Remove an item from the wish list",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return showWishList(cmd, func(ctx context.Context) (*apiclient.WishList, error) {
				return newClient().RemoveFromWishList(ctx, args[0])
			})
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "check <id>",
		Short: "Report whether an item is on the wish list",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ok, err := newClient().IsFavorited(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(cmd.OutOrStdout(), map[string]any{"id": args[0], "favorited": ok})
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s favorited: %v\n", args[0], ok)
			return err
		},
	})

	return cmd
}

func showWishList(
	cmd *cobra.Command,
	fetch func(context.Context) (*apiclient.WishList, error),
) error {
	wl, err := fetch(cmd.Context())
	if err != nil {
		return err
	}
	if jsonOutput() {
		return outputJSON(cmd.OutOrStdout(), wl)
	}
	return printWishList(cmd.OutOrStdout(), wl)
}
