package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func zipcodesCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "zipcodes <prefix>",
		Short:   "Suggest zip codes for a one to four digit prefix",
		Example: `  searchit zipcodes 900`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			zips, err := newClient().Zipcodes(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(cmd.OutOrStdout(), zips)
			}
			return printLines(cmd.OutOrStdout(), zips)
		},
	}
}

func locationCmd() *cobra.Command {
	var refresh bool

	cmd := &cobra.Command{
		Use:   "location",
		Short: "Show the zip searches default to",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c := newClient()
			get := c.Location
			if refresh {
				get = c.RefreshLocation
			}

			zip, err := get(cmd.Context())
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(cmd.OutOrStdout(), map[string]string{"zip": zip})
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), zip)
			return err
		},
	}
	cmd.Flags().BoolVar(&refresh, "refresh", false, "look the location up again first")

	return cmd
}

func quotaCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "quota",
		Short: "Show the gateway's backend call budget",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			q, err := newClient().GetQuota(cmd.Context())
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(cmd.OutOrStdout(), q)
			}

			tw := newTabWriter(cmd.OutOrStdout())
			tw.writef("Used:\t%d\n", q.DailyUsed)
			if q.Limited {
				tw.writef("Limit:\t%d\n", q.DailyLimit)
				tw.writef("Remaining:\t%d\n", q.Remaining)
				tw.writef("Resets:\t%s\n", q.ResetAt.Format("2006-01-02 15:04:05 MST"))
			} else {
				tw.writef("Limit:\tnone\n")
			}
			return tw.finish()
		},
	}
}
