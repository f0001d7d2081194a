// Package main provides the cv_analyzer command-line tool.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "cv_analyzer",
	Short: "CV analysis and job matching",
	Long: `cv_analyzer extracts a structured profile from CVs, scores them on skills, experience,
education and document quality, and optionally matches them against job requirements.

Configuration is read from --config (YAML or JSON) and CV_ANALYZER_* environment variables.`,
	SilenceUsage: true,
}

var (
	rootConfigPath  string
	rootVerbose     bool
	rootJSONLogs    bool
	rootDatabaseURL string
)

func init() {
	rootCmd.PersistentFlags().StringVar(&rootConfigPath, "config", "", "Path to a YAML or JSON config file")
	rootCmd.PersistentFlags().BoolVarP(&rootVerbose, "verbose", "v", false, "Print human-readable summaries and debug logs")
	rootCmd.PersistentFlags().BoolVar(&rootJSONLogs, "json-logs", false, "Emit logs as JSON")
	rootCmd.PersistentFlags().StringVar(&rootDatabaseURL, "database-url", "", "PostgreSQL connection URL (optional, defaults to DATABASE_URL env var)")
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
