package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"uuid62/internal/api"
	"uuid62/internal/api/handler/v1handler"
	"uuid62/internal/config"
	"uuid62/internal/registry"
	"uuid62/pkg/controller"
	"uuid62/pkg/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func setupServer(ctx context.Context, cfg *config.Config, deps api.Deps) func(ctx context.Context) {
	opts, err := api.NewOptions(cfg)
	if err != nil {
		logger.Fatal(ctx, "invalid webserver options", zap.Error(err))
	}

	server, err := api.NewServer(deps, opts)
	if err != nil {
		logger.Fatal(ctx, "could not create webserver", zap.Error(err))
	}

	go func() {
		logger.Info(ctx, "starting webserver...", zap.String("addr", opts.Addr),
			zap.String("format", string(opts.Format)))
		if err := server.ListenAndServe(); err != nil {
			if !errors.Is(err, http.ErrServerClosed) {
				logger.Error(ctx, "could not start webserver", zap.Error(err))
			}
		}
	}()

	return func(ctx context.Context) {
		logger.Info(ctx, "stopping webserver...")
		if err := server.Shutdown(ctx); err != nil {
			logger.Error(ctx, "could not stop webserver", zap.Error(err))
		}
	}
}

func serveCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Starts the registry API server",
		Run: func(cmd *cobra.Command, args []string) {
			ctx, _ := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)

			strg, closeStrg := getStorage(ctx, cfg)
			defer closeStrg()

			stopWebserver := setupServer(ctx, cfg, api.Deps{
				Deps: v1handler.Deps{
					Registry: registry.New(strg, registry.NewOptions(cfg)),
				},
				Pingers: map[string]controller.Pinger{"storage": strg},
			})

			// wait for interrupt
			<-ctx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.GracefulShutdownTimeout)
			defer cancel()

			stopWebserver(shutdownCtx)
		},
	}

	return cmd
}
