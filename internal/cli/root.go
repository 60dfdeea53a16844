// Package cli defines the cobra command tree for zimtour.
package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/njprem/discover-zimbabwe/internal/app"
	"github.com/njprem/discover-zimbabwe/internal/config"
	"github.com/njprem/discover-zimbabwe/internal/logging"
)

var (
	flagFormat  string
	flagStorage string
)

// NewRootCmd creates the root cobra command with global flags.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "zimtour",
		Short:         "Discover Zimbabwe destinations, favorites and reviews",
		Long:          "Serve the Discover Zimbabwe site or inspect its catalog and persisted favorites and reviews from the terminal.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVar(&flagFormat, "format", "text", "output format (text|json)")
	root.PersistentFlags().StringVar(&flagStorage, "storage", "", "storage driver override (memory|sqlite|postgres|redis|minio)")

	root.AddCommand(
		newServeCmd(),
		newDestinationsCmd(),
		newReviewsCmd(),
		newFavoritesCmd(),
	)

	return root
}

func loadConfig() config.Config {
	cfg := config.Load()
	if flagStorage != "" {
		cfg.StorageDriver = flagStorage
	}
	return cfg
}

// openApp builds the application with a quiet logger for one-shot commands.
func openApp(ctx context.Context) (*app.App, func(), error) {
	cfg := loadConfig()
	logger, cleanup, err := logging.New(logging.Options{Level: "warn", Format: "console", Output: os.Stderr})
	if err != nil {
		return nil, nil, err
	}
	logWarnings(logger, cfg)
	a, err := app.New(ctx, cfg, logger)
	if err != nil {
		cleanup()
		return nil, nil, err
	}
	return a, func() {
		if err := a.Close(); err != nil {
			logger.Warn("closing storage", zap.Error(err))
		}
		cleanup()
	}, nil
}

func logWarnings(logger *zap.Logger, cfg config.Config) {
	for _, w := range cfg.Warnings {
		logger.Warn("config", zap.String("warning", w))
	}
}

func isJSON() bool {
	return flagFormat == "json"
}

func validateFormat() error {
	switch flagFormat {
	case "text", "json":
		return nil
	default:
		return fmt.Errorf("unsupported format %q (want text or json)", flagFormat)
	}
}
