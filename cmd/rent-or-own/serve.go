package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/iwvelando/rent-or-own/internal/server"
	"github.com/iwvelando/rent-or-own/internal/tracing"
	"github.com/iwvelando/rent-or-own/pkg/constants"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type serveOptions struct {
	serverConfig string
	address      string
	envFile      string
}

func newServeCommand(root *rootOptions) *cobra.Command {
	opts := &serveOptions{}
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the analysis API over HTTP",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd.Context(), root, opts)
		},
	}
	cmd.Flags().StringVar(&opts.serverConfig, "server-config", constants.DefaultServerConfigFile, "path to server configuration file")
	cmd.Flags().StringVar(&opts.address, "address", "", "listen address override")
	cmd.Flags().StringVar(&opts.envFile, "env-file", ".env", "optional dotenv file loaded before reading the environment")
	return cmd
}

// resolveServerConfig layers the server file, the environment and the flags,
// in that order of increasing precedence.
func resolveServerConfig(opts *serveOptions) (*server.Config, error) {
	if opts.envFile != "" {
		if err := godotenv.Load(opts.envFile); err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("failed to load %s: %w", opts.envFile, err)
		}
	}

	cfg, err := server.LoadConfig(opts.serverConfig)
	if err != nil {
		return nil, err
	}
	cfg.ApplyEnv(nil)
	if opts.address != "" {
		cfg.Address = opts.address
	}
	return cfg, nil
}

func runServe(ctx context.Context, root *rootOptions, opts *serveOptions) error {
	const op = "main.runServe"
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, err := resolveServerConfig(opts)
	if err != nil {
		return err
	}

	logger, err := initializeLogger(cfg.Logging, root.logLevel)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer func() {
		_ = logger.Sync()
	}()

	shutdownTracing, err := tracing.Init(ctx, logger, cfg.Tracing, version)
	if err != nil {
		return err
	}
	defer func() {
		flushCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownTracing(flushCtx); err != nil {
			logger.Warn("failed to flush traces",
				zap.String("op", op),
				zap.Error(err),
			)
		}
	}()

	srv := &http.Server{
		Addr:         cfg.Address,
		Handler:      server.NewHandler(logger, cfg.UploadSizeBytes(), version),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Info("listening",
			zap.String("op", op),
			zap.String("address", cfg.Address),
			zap.Int64("maxUploadSize", cfg.UploadSizeBytes()),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	select {
	case err := <-serverErr:
		return fmt.Errorf("server failed: %w", err)
	case sig := <-quit:
		logger.Info("shutting down",
			zap.String("op", op),
			zap.String("signal", sig.String()),
		)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("error during server shutdown: %w", err)
	}
	logger.Info("server exited", zap.String("op", op))
	return nil
}
