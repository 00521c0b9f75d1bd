package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bloodchain/portal/internal/infrastructure/db/mongo"
	"github.com/bloodchain/portal/internal/infrastructure/fixtures"
	"github.com/bloodchain/portal/internal/pkg/config"
	"github.com/bloodchain/portal/pkg/logger"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Replace the MongoDB fixture collections with the embedded data",
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx := cmd.Context()
		cfg, err := config.Load(ctx)
		if err != nil {
			return err
		}
		logger.Init(logger.Options{Level: cfg.LogLevel, Pretty: true, Service: "bloodchain"})
		log := logger.Component("seed")

		f, err := fixtures.NewEmbedded().Load(ctx)
		if err != nil {
			return err
		}
		client, db, err := mongo.Connect(ctx, mongo.Config{URI: cfg.Mongo.URI, Database: cfg.Mongo.Database})
		if err != nil {
			return err
		}
		defer func() { _ = client.Disconnect(ctx) }()

		if err := mongo.NewFixtureRepository(db).Seed(ctx, f); err != nil {
			return fmt.Errorf("seed: %w", err)
		}
		log.Info().
			Str("db", cfg.Mongo.Database).
			Int("users", len(f.Users)).
			Int("units", len(f.Inventory)).
			Msg("fixtures seeded")
		return nil
	},
}
