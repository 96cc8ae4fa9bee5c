// Package main provides the entry point for the DataVex request gateway.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "gateway",
	Short: "DataVex intelligent request gateway",
	Long:  "The request gateway mediates AI provider calls (content, SEO, resume parsing, chat) with quota enforcement and fallbacks, and scores intake leads deterministically.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
