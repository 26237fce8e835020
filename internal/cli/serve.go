package cli

import (
	"context"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-faster/errors"
	"github.com/spf13/cobra"

	"github.com/wgomg/sumrank/internal/api"
	"github.com/wgomg/sumrank/internal/engine"
)

func newServeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the summarization HTTP service",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := a.cfg
			logger := a.logger

			logger.Info(nil, "Starting Summarization Service")
			logger.Info(nil, "Environment: %s", cfg.App.Env)
			logger.Info(nil, "Log level: %s", cfg.App.LogLevel)
			logger.Info(nil, "Engine: %s, cache size: %d, batch workers: %d",
				cfg.Summarizer.Engine, cfg.Cache.Size, cfg.Batch.WorkerCount)

			cache, err := engine.NewCache(cfg.Cache.Size)
			if err != nil {
				return errors.Wrap(err, "create cache")
			}

			handler := api.NewHandler(logger, cache, cfg)
			timeout := time.Duration(cfg.App.HttpTimeoutSeconds) * time.Second

			server := &http.Server{
				Addr:              "0.0.0.0:" + cfg.App.ServerPort,
				Handler:           http.TimeoutHandler(api.NewRouter(handler, cfg.App.MaxBodyBytes), timeout, "request timed out"),
				ReadHeaderTimeout: timeout,
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			serveErr := make(chan error, 1)
			go func() {
				logger.Info(nil, "Starting server on port %s", cfg.App.ServerPort)
				logger.Info(nil, "Endpoints:")
				logger.Info(nil, "  GET  /health")
				logger.Info(nil, "  GET  /stats")
				logger.Info(nil, "  POST /summarize")
				logger.Info(nil, "  POST /summarize/batch")
				serveErr <- server.ListenAndServe()
			}()

			select {
			case err := <-serveErr:
				if errors.Is(err, http.ErrServerClosed) {
					return nil
				}
				return err
			case <-ctx.Done():
			}

			logger.Info(nil, "Shutting down")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
			defer cancel()
			return server.Shutdown(shutdownCtx)
		},
	}
}
