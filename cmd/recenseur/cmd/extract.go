package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

func extractCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "extract <raw-json>",
		Short:   "Normalize a raw scraped listing",
		Long:    "Sends a raw scraped listing, given as a JSON object, to the API server for normalization.",
		Example: `  recenseur extract '{"titre":"Maison à rénover","prix":100000,"ville":"Chartres"}'`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var raw map[string]any
			if err := json.Unmarshal([]byte(args[0]), &raw); err != nil {
				return fmt.Errorf("parsing raw listing: %w", err)
			}

			c := newClient()
			resp, err := c.ExtractFeatures(cmd.Context(), raw)
			if err != nil {
				return err
			}

			if jsonOutput() {
				return outputJSON(resp)
			}
			return printListingDetail(&resp.Listing)
		},
	}
}
