package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"groeipaden_app/internal/catalog"
	"groeipaden_app/internal/services"
)

var (
	seedFile  string
	seedForce bool
)

// seedCmd publishes a dataset file to the database
var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Replace the routes in the database with a dataset file",
	Long: `Migrates the route tables and replaces their contents with the
routes from --file in one transaction. The Redis cache is cleared when
REDIS_URL is set so the next server start reads the new data.`,
	Args: cobra.NoArgs,
	RunE: runSeed,
}

func init() {
	seedCmd.Flags().StringVarP(&seedFile, "file", "f", "", "Dataset file (.json, .yaml)")
	seedCmd.Flags().BoolVar(&seedForce, "force", false, "Seed even when the dataset has problems")
	_ = seedCmd.MarkFlagRequired("file")
}

func runSeed(cmd *cobra.Command, args []string) error {
	if cfg.DatabaseURL == "" {
		return errors.New("DATABASE_URL is not set")
	}

	ctx := cmd.Context()
	src := catalog.FileSource{Path: seedFile}
	routes, err := src.Load(ctx)
	if err != nil {
		return err
	}

	if issues := catalog.Validate(routes); len(issues) > 0 {
		for _, issue := range issues {
			fmt.Fprintln(cmd.ErrOrStderr(), issue.Error())
		}
		if !seedForce {
			return fmt.Errorf("%s: %d problem(s) found, use --force to seed anyway", src.Name(), len(issues))
		}
	}

	db, err := services.InitDB(cfg.DatabaseURL, verbose, logger)
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	if sqlDB, err := db.DB(); err == nil {
		defer sqlDB.Close()
	}

	if err := services.AutoMigrate(db, logger); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	if err := catalog.Seed(ctx, db, routes); err != nil {
		return err
	}
	logger.Info("dataset seeded", zap.String("source", src.Name()), zap.Int("routes", len(routes)))

	if cfg.RedisURL != "" {
		cache, err := services.NewRedisCache(cfg.RedisURL, catalog.CachePrefix, logger)
		if err != nil {
			logger.Warn("could not clear the routes cache", zap.Error(err))
		} else {
			defer cache.Close()
			cached := catalog.CachedSource{Cache: cache, Inner: catalog.DBSource{DB: db}}
			if err := cached.Invalidate(ctx); err != nil {
				logger.Warn("could not clear the routes cache", zap.Error(err))
			}
		}
	}

	fmt.Fprintf(cmd.OutOrStdout(), "seeded %d routes from %s\n", len(routes), seedFile)
	return nil
}
