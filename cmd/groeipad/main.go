// Command groeipad inspects and publishes the career routes dataset.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"groeipaden_app/internal/catalog"
	"groeipaden_app/internal/config"
	"groeipaden_app/internal/logging"
	"groeipaden_app/internal/models"
)

var (
	// Global flags
	envFile string
	verbose bool

	cfg    config.Config
	logger = zap.NewNop()
)

var rootCmd = &cobra.Command{
	Use:   "groeipad",
	Short: "Manage the career routes dataset",
	Long: `groeipad works with the dataset the website serves.

It reads the same settings as the server (.env and the environment):
DATABASE_URL, DATA_PATH, REDIS_URL and APP_URL.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var files []string
		if envFile != "" {
			files = append(files, envFile)
		}
		loaded, _, err := config.Load(files...)
		if err != nil {
			return err
		}
		cfg = loaded

		level := cfg.LogLevel
		if verbose {
			level = "debug"
		}
		logger = logging.NewOrDefault(level, false)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", "", "Read settings from this file instead of .env")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log debug output")

	rootCmd.AddCommand(validateCmd, routesCmd, linkCmd, seedCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// loadRoutes reads the raw dataset from path, or from the configured
// source when path is empty.
func loadRoutes(ctx context.Context, path string) ([]models.Route, string, error) {
	if path != "" {
		src := catalog.FileSource{Path: path}
		routes, err := src.Load(ctx)
		return routes, src.Name(), err
	}

	src, closeSource, err := catalog.OpenSource(sourceOptions(), logger)
	if err != nil {
		return nil, "", err
	}
	defer closeSource()

	routes, err := src.Load(ctx)
	if err != nil {
		return nil, src.Name(), fmt.Errorf("load %s: %w", src.Name(), err)
	}
	return routes, src.Name(), nil
}

// loadCatalog builds the catalog the server would serve
func loadCatalog(ctx context.Context) (*catalog.Catalog, error) {
	src, closeSource, err := catalog.OpenSource(sourceOptions(), logger)
	if err != nil {
		return nil, err
	}
	defer closeSource()
	return catalog.Load(ctx, src, logger), nil
}

func sourceOptions() catalog.Options {
	return catalog.Options{
		DataPath:    cfg.DataPath,
		DatabaseURL: cfg.DatabaseURL,
		RedisURL:    cfg.RedisURL,
		CacheTTL:    cfg.CatalogCacheTTL,
		Debug:       verbose,
	}
}
