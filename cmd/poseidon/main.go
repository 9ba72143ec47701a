package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:   "poseidon",
	Short: "Poseidon trading back-office web application",
	Long: `Poseidon manages bid lists, curve points, ratings, rule names and trades
behind a login with ADMIN and USER roles.`,
	SilenceUsage: true,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "configs/poseidon/config.toml", "path to config file")
	rootCmd.AddCommand(serveCmd, migrateCmd, userCmd)
}
