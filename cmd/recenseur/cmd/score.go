package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func scoreCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "score <texte>",
		Short:   "Score a listing description for renovation potential",
		Example: `  recenseur score "Maison à rénover, travaux importants à prévoir"`,
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c := newClient()
			resp, err := c.ScoreText(cmd.Context(), strings.Join(args, " "))
			if err != nil {
				return err
			}

			if jsonOutput() {
				return outputJSON(resp)
			}

			fmt.Printf("score_reno: %.2f\n", resp.ScoreReno)
			if len(resp.MatchedTerms) > 0 {
				fmt.Printf("matched: %s\n", strings.Join(resp.MatchedTerms, ", "))
			}
			return nil
		},
	}
}
