package main

import (
	"context"
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"github.com/datavex/gateway/internal/config"
	"github.com/datavex/gateway/internal/gateway"
	"github.com/datavex/gateway/internal/llm"
	"github.com/datavex/gateway/internal/scoring"
	"github.com/datavex/gateway/internal/server"
	"github.com/datavex/gateway/internal/usage"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the gateway HTTP server",
	Long:  "Start an HTTP server exposing the AI gateway operations and the lead assessment endpoint.",
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (overrides PORT)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if servePort != 0 {
		cfg.Port = servePort
	}

	jwtCfg, err := config.NewJWTConfig()
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
		log.Printf("provider %s has no API key; serving fallback responses", providerCfg.Provider)
	}

	var ledger *usage.Ledger
	if providerCfg.QuotaLimited {
		var store usage.Store
		if cfg.DatabaseURL != "" {
			pg, err := usage.NewPostgresStore(ctx, cfg.DatabaseURL)
			if err != nil {
				return err
			}
			defer pg.Close()
			store = pg
		} else {
			store = usage.NewFileStore(cfg.UsageFile)
		}
		ledger = usage.NewLedger(store, cfg.MonthlyLimit)
	}

	gw := gateway.New(providerCfg, client, ledger)
	scorer := scoring.NewScorer(scoring.Config{})

	srv, err := server.New(server.Config{Port: cfg.Port, JWTSecret: jwtCfg.Secret}, gw, scorer)
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	return srv.Start()
}
