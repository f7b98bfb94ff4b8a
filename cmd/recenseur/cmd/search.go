package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func searchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "search",
		Short: "Fetch raw listings from the configured sources",
		RunE: func(cmd *cobra.Command, _ []string) error {
			c := newClient()
			resp, err := c.SearchListings(cmd.Context())
			if err != nil {
				return err
			}

			if jsonOutput() {
				return outputJSON(resp)
			}

			fmt.Printf("%d raw listings\n", len(resp.RawListings))
			return nil
		},
	}
}
