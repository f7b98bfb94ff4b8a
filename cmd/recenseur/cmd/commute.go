package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func commuteCmd() *cobra.Command {
	var gareHint string

	cmd := &cobra.Command{
		Use:     "commute <ville-ou-gare>",
		Short:   "Estimate the rail commute to Paris",
		Example: "  recenseur commute Chartres\n  recenseur commute Chartres --gare \"Paris Montparnasse\"",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c := newClient()
			resp, err := c.CommuteTime(cmd.Context(), args[0], gareHint)
			if err != nil {
				return err
			}

			if jsonOutput() {
				return outputJSON(resp)
			}

			if resp.MinutesTrain == nil {
				fmt.Printf("%s -> %s: unknown\n", resp.GareDepart, resp.GareParisienne)
				return nil
			}
			fmt.Printf("%s -> %s: %d min\n",
				resp.GareDepart, resp.GareParisienne, *resp.MinutesTrain)
			return nil
		},
	}

	cmd.Flags().StringVar(&gareHint, "gare", "", "target Paris terminus instead of the default")
	return cmd
}
