// Package main provides the resume_matcher command line tool and HTTP server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var (
	configPath string
	skillsPath string
	verbose    bool
)

var rootCmd = &cobra.Command{
	Use:           "resume_matcher",
	Short:         "Parse job descriptions and résumés and score skill coverage",
	Long:          "resume_matcher extracts requirements from job descriptions and evidence from résumés, then reports how well the résumé covers the job's hard skills.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to JSON config file")
	rootCmd.PersistentFlags().StringVar(&skillsPath, "skills", "", "Path to skill dictionary (.csv or .xlsx); overrides SKILLS_PATH")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Print detailed debug information")
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
