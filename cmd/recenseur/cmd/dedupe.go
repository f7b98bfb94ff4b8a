package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func dedupeCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "dedupe <listings.json>",
		Short:   "Deduplicate a batch of listings",
		Long:    "Reads a JSON array of listings from the given file (or stdin with \"-\") and keeps the first occurrence of each canonical key.",
		Example: `  recenseur dedupe batch.json`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			listings, err := readListings(args[0])
			if err != nil {
				return err
			}

			c := newClient()
			resp, err := c.Dedupe(cmd.Context(), listings)
			if err != nil {
				return err
			}

			if jsonOutput() {
				return outputJSON(resp)
			}

			fmt.Printf("%d of %d unique\n", len(resp.ListingsUnique), len(listings))
			return printListingsTable(resp.ListingsUnique)
		},
	}
}
