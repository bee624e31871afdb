package commands

import (
	"github.com/spf13/cobra"
)

var (
	// Global flags
	configFile string
	env        string
	verbose    bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "renthub",
	Short: "RentHub - property rental management backend",
	Long: `RentHub Unified CLI

Backend for the RentHub rental management platform. The activity engine
derives operational reminders (lease expirations, rent payments) from
the lease book.

Usage:
  go run ./cmd/renthub [command]

Examples:
  go run ./cmd/renthub api
  go run ./cmd/renthub generate --date 2025-05-01
  go run ./cmd/renthub scheduler start
  go run ./cmd/renthub test-db`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file (default is .env)")
	rootCmd.PersistentFlags().StringVar(&env, "env", "development", "environment (development|staging|production)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
