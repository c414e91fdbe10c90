package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/robfig/cron/v3"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"jobtracker/internal/api"
	"jobtracker/internal/api/handler/v1handler"
	"jobtracker/internal/config"
	"jobtracker/internal/scan"
	"jobtracker/internal/worker"
	"jobtracker/pkg/logger"
	"jobtracker/pkg/mailbox/gmailrest"
	"jobtracker/pkg/storage"
)

func setupServer(ctx context.Context, cfg *config.Config, deps api.Deps) func(ctx context.Context) {
	server, err := api.NewServer(deps, api.NewOptions(cfg))
	if err != nil {
		logger.Fatal(ctx, "could not create webserver", zap.Error(err))
	}

	go func() {
		logger.Info(ctx, "starting webserver...")
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

// setupSchedule starts the optional cron schedule that enqueues periodic
// scans. An empty expression disables it.
func setupSchedule(ctx context.Context, cfg *config.Config, scanner scan.Scanner) func() {
	if cfg.Scanner.Schedule == "" {
		return func() {}
	}

	c := cron.New()
	_, err := c.AddFunc(cfg.Scanner.Schedule, func() {
		queued, err := scanner.Enqueue(ctx)
		if err != nil {
			logger.Warn(ctx, "could not enqueue scheduled scan", zap.Error(err))

			return
		}
		logger.Info(ctx, "scheduled scan tick", zap.Bool("queued", queued))
	})
	if err != nil {
		logger.Fatal(ctx, "could not parse scan schedule",
			zap.String("schedule", cfg.Scanner.Schedule), zap.Error(err))
	}
	c.Start()

	return func() {
		<-c.Stop().Done()
	}
}

// newScanner wires the mailbox client and the scan service from config.
func newScanner(cfg *config.Config, strg storage.Storage) scan.Scanner {
	gmail := gmailrest.New(nil, gmailrest.Options{
		TokenFile:       cfg.Gmail.TokenFile,
		User:            cfg.Gmail.User,
		QueryWindowDays: cfg.Gmail.QueryWindowDays,
		MaxMessages:     cfg.Gmail.MaxMessages,
		PageSize:        cfg.Gmail.PageSize,
	})

	return scan.New(strg, gmail, scan.NewOptions(cfg))
}

func serveCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Starts API server and background workers",
		Run: func(cmd *cobra.Command, args []string) {
			ctx, _ := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)

			strg, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()

			scanner := newScanner(cfg, strg)

			riverClient, err := worker.Start(ctx, strg.Pool, scanner)
			if err != nil {
				logger.Fatal(ctx, "could not start background workers", zap.Error(err))
			}

			stopSchedule := setupSchedule(ctx, cfg, scanner)

			stopWebserver := setupServer(ctx, cfg, api.Deps{
				Deps: v1handler.Deps{Scanner: scanner, Storage: strg},
			})

			// wait for interrupt
			<-ctx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.GracefulShutdownTimeout)
			defer cancel()

			stopWebserver(shutdownCtx)
			stopSchedule()
			if err := riverClient.Stop(shutdownCtx); err != nil {
				logger.Error(ctx, "could not stop background workers", zap.Error(err))
			}
		},
	}

	return cmd
}
