// Package main provides the portfolio_console CLI: the admin and export
// surface of the personal-portfolio backend.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/bgv/portfolio-console/internal/config"
)

var rootCmd = &cobra.Command{
	Use:   "portfolio_console",
	Short: "Portfolio management console",
	Long:  "portfolio_console manages a personal-portfolio site: profile, skills, projects, experience and education records, plus resume/CSV/JSON export of the whole portfolio.",
}

var (
	flagConfig     string
	flagAPIURL     string
	flagSessionDir string
	flagVerbose    bool
)

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to JSON config file")
	rootCmd.PersistentFlags().StringVar(&flagAPIURL, "api-url", "", "Base URL of the portfolio backend (default "+config.DefaultAPIBaseURL+")")
	rootCmd.PersistentFlags().StringVar(&flagSessionDir, "session-dir", "", "Directory holding the persisted session")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Print debug logging")
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
