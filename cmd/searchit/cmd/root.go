// Package cmd implements the searchit CLI: the gateway server and a
// terminal client for it.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	apiclient "github.com/donaldgifford/searchit/internal/api/client"
)

var (
	cfgFile string
	rootCmd = &cobra.Command{
		Use:   "searchit",
		Short: "Search marketplace listings and manage a wish list",
		Long: "searchit runs a gateway in front of the SearchIt backend and\n" +
			"queries it from the terminal: search listings, inspect items\n" +
			"and their similar items, and keep a wish list in sync.",
		SilenceUsage: true,
	}
)

// Root returns the root cobra command for documentation generation.
func Root() *cobra.Command {
	return rootCmd
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().
		StringVar(&cfgFile, "config", "", "CLI config file (default $HOME/.searchit.yaml)")
	rootCmd.PersistentFlags().
		String("server", "http://localhost:8080", "gateway URL")
	rootCmd.PersistentFlags().
		String("output", "table", "output format (table, json)")

	cobra.CheckErr(viper.BindPFlag("server", rootCmd.PersistentFlags().Lookup("server")))
	cobra.CheckErr(viper.BindPFlag("output", rootCmd.PersistentFlags().Lookup("output")))

	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(searchCmd())
	rootCmd.AddCommand(itemCmd())
	rootCmd.AddCommand(wishListCmd())
	rootCmd.AddCommand(zipcodesCmd())
	rootCmd.AddCommand(locationCmd())
	rootCmd.AddCommand(quotaCmd())
	rootCmd.AddCommand(versionCmd())
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		viper.AddConfigPath(home)
		viper.SetConfigType("yaml")
		viper.SetConfigName(".searchit")
	}

	viper.SetEnvPrefix("SEARCHIT")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func newClient() *apiclient.Client {
	return apiclient.New(viper.GetString("server"))
}

func jsonOutput() bool {
	return viper.GetString("output") == "json"
}
