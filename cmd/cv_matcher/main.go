// Package main provides the entry point for the cv-matcher HTTP API server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "cv_matcher",
	Short: "CV-to-job matching HTTP API server",
	Long:  "cv-matcher aggregates job postings from Jooble, Jobindex and NAV and ranks them against an uploaded résumé by embedding similarity.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
