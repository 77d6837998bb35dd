// Package main provides the resume_scorer CLI: ATS scoring, skills gap
// analysis and salary estimation of a resume against a job, plus the REST API.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var (
	configPath string
	verbose    bool
)

var rootCmd = &cobra.Command{
	Use:   "resume_scorer",
	Short: "Resume-to-job ATS matching and scoring engine",
	Long: `resume_scorer scores a structured resume against structured job requirements,
analyzes skill gaps with transferable-experience hints and estimates a salary range.

Job and resume files are JSON documents checked against the embedded schemas.
Configuration can be loaded from a JSON file using --config; environment
variables and flags override it.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to config.json file")
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
