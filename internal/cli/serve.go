package cli

import (
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/spec-kit/placement-service/internal/app"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(background(cmd), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		services, err := app.New(ctx, cfg, logger)
		if err != nil {
			return err
		}
		defer services.Close()

		if cfg.Seed.DemoData {
			if _, err := services.Seeder.Seed(ctx); err != nil {
				return fmt.Errorf("failed to seed demo data: %w", err)
			}
		}

		services.StartWorkers(ctx)
		server := services.HTTP()

		serverErr := make(chan error, 1)
		go func() {
			logger.Info("http server listening", zap.String("addr", cfg.App.Addr()))
			if err := server.Listen(cfg.App.Addr()); err != nil {
				serverErr <- err
			}
		}()

		select {
		case err := <-serverErr:
			return fmt.Errorf("server error: %w", err)
		case <-ctx.Done():
			logger.Info("shutting down")
		}

		if err := server.ShutdownWithTimeout(10 * time.Second); err != nil {
			return fmt.Errorf("server shutdown error: %w", err)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
