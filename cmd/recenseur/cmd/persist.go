package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func persistCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "persist <listings.json>",
		Short:   "Append a batch of listings to the server store",
		Long:    "Reads a JSON array of listings from the given file (or stdin with \"-\") and appends them to the server-side JSONL store.",
		Example: `  recenseur persist batch.json`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			listings, err := readListings(args[0])
			if err != nil {
				return err
			}

			c := newClient()
			resp, err := c.Persist(cmd.Context(), listings)
			if err != nil {
				return err
			}

			if jsonOutput() {
				return outputJSON(resp)
			}

			fmt.Printf("Stored %d listings.\n", resp.StoredCount)
			return nil
		},
	}
}
