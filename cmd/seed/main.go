// Command seed provisions the demo accounts.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/sneakstreet/storefront/internal/core/service"
	"github.com/sneakstreet/storefront/internal/infrastructure/config"
	"github.com/sneakstreet/storefront/internal/infrastructure/db/mongo"
	"github.com/sneakstreet/storefront/pkg/logger"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "seed: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	config.LoadDotEnv()
	cfg, err := config.LoadSeed(ctx)
	if err != nil {
		return err
	}
	log := logger.Init(logger.Options{Level: cfg.LogLevel, Pretty: true, Service: "seed"})

	client, db, err := mongo.Connect(ctx, mongo.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
		Timeout:  cfg.Mongo.Timeout,
	})
	if err != nil {
		return err
	}
	defer client.Disconnect(context.Background())

	users := mongo.NewUserRepository(db)
	if err := users.EnsureIndexes(ctx); err != nil {
		return fmt.Errorf("user indexes: %w", err)
	}
	if err := service.SeedUsers(ctx, users, service.DefaultAccounts, log); err != nil {
		return err
	}
	log.Info().Int("accounts", len(service.DefaultAccounts)).Msg("seed complete")
	return nil
}
