package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/datavex/gateway/internal/config"
	"github.com/datavex/gateway/internal/gateway"
	"github.com/datavex/gateway/internal/llm"
	"github.com/datavex/gateway/internal/observability"
	"github.com/datavex/gateway/internal/usage"
)

var parseCmd = &cobra.Command{
	Use:   "parse <resume.txt>",
	Short: "Parse a resume text file into a structured profile",
	Long:  "Run the resume extraction pipeline on a plain-text resume file and print the structured profile. Falls back to heuristic extraction when no provider is configured.",
	Args:  cobra.ExactArgs(1),
	RunE:  runParse,
}

func init() {
	rootCmd.AddCommand(parseCmd)
}

func runParse(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to read resume file: %w", err)
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	providerCfg, err := llm.FromEnv()
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	var client llm.Client
	if providerCfg.Configured() {
		client, err = llm.NewClient(ctx, providerCfg)
		if err != nil {
			return fmt.Errorf("failed to create provider client: %w", err)
		}
		defer client.Close()
	} else {
		log.Printf("provider %s has no API key; using heuristic extraction", providerCfg.Provider)
	}

	var ledger *usage.Ledger
	if providerCfg.QuotaLimited {
		ledger = usage.NewLedger(usage.NewFileStore(cfg.UsageFile), cfg.MonthlyLimit)
	}

	gw := gateway.New(providerCfg, client, ledger)
	profile, err := gw.ParseResume(ctx, string(data))
	if err != nil {
		return err
	}

	observability.NewPrinter(os.Stdout).PrintResumeProfile(profile)
	return nil
}
