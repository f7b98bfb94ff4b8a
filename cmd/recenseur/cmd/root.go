// Package cmd implements the recenseur CLI commands.
package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	apiclient "github.com/Nathalie1962/recenseur-backend/internal/api/client"
	"github.com/Nathalie1962/recenseur-backend/internal/config"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "recenseur",
	Short: "Score French property listings for renovation potential",
	Long: "recenseur serves and queries an API that scores French real-estate\n" +
		"listings for renovation potential, deduplicates scraped batches,\n" +
		"estimates rail commutes to Paris, and appends results to a JSONL store.",
}

func init() {
	rootCmd.PersistentFlags().
		StringVar(&cfgFile, "config", "", "config file path")
	rootCmd.PersistentFlags().
		String("server", "http://localhost:8080", "API server URL")
	rootCmd.PersistentFlags().
		String("token", config.DefaultAuthToken, "API bearer token")
	rootCmd.PersistentFlags().
		String("output", "table", "output format (table, json)")

	cobra.CheckErr(viper.BindPFlag("server", rootCmd.PersistentFlags().Lookup("server")))
	cobra.CheckErr(viper.BindPFlag("token", rootCmd.PersistentFlags().Lookup("token")))
	cobra.CheckErr(viper.BindPFlag("output", rootCmd.PersistentFlags().Lookup("output")))

	viper.SetEnvPrefix("RECENSEUR")
	viper.AutomaticEnv()

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoreCmd())
	rootCmd.AddCommand(extractCmd())
	rootCmd.AddCommand(dedupeCmd())
	rootCmd.AddCommand(persistCmd())
	rootCmd.AddCommand(commuteCmd())
	rootCmd.AddCommand(searchCmd())
	rootCmd.AddCommand(versionCommand())
}

// Root returns the root cobra command for documentation generation.
func Root() *cobra.Command {
	return rootCmd
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func newClient() *apiclient.Client {
	return apiclient.New(viper.GetString("server"), viper.GetString("token"))
}

func jsonOutput() bool {
	return viper.GetString("output") == "json"
}
