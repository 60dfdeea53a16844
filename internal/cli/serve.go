package cli

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/njprem/discover-zimbabwe/internal/app"
	"github.com/njprem/discover-zimbabwe/internal/logging"
)

func newServeCmd() *cobra.Command {
	var port string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the web site and API",
		Long:  "Start the HTTP server that serves the single page, the JSON API, Swagger UI and metrics.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(port)
		},
	}

	cmd.Flags().StringVar(&port, "port", "", "port to listen on (default: $PORT or 8080)")

	return cmd
}

// Serve is shared with cmd/api.
func Serve() error {
	return runServe("")
}

func runServe(port string) error {
	cfg := loadConfig()
	if port != "" {
		cfg.Port = port
	}

	logger, cleanup, err := logging.New(logging.Options{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
		Output: os.Stdout,
		Logstash: logging.LogstashConfig{
			Addr:        cfg.LogstashTCPAddr,
			DialTimeout: cfg.LogstashDialTimeout,
			MinBackoff:  cfg.LogstashMinBackoff,
			MaxBackoff:  cfg.LogstashMaxBackoff,
		},
	})
	if err != nil {
		return err
	}
	defer cleanup()
	logWarnings(logger, cfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a, err := app.New(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer a.Close()

	return a.Serve(ctx)
}
