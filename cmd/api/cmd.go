package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/GregMSThompson/budget-planner/internal/bootstrap"
	"github.com/GregMSThompson/budget-planner/internal/config"
	"github.com/GregMSThompson/budget-planner/internal/handlers"
	"github.com/GregMSThompson/budget-planner/internal/response"
	"github.com/GregMSThompson/budget-planner/internal/router"
	"github.com/GregMSThompson/budget-planner/internal/services"
	"github.com/GregMSThompson/budget-planner/internal/store"
)

func exitOnError(message string, err error, log *slog.Logger) {
	if err != nil {
		log.Error(message, "error", err)
		os.Exit(1)
	}
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// bootstrap
	cfg := config.New()
	bs, err := bootstrap.Run(ctx, cfg)
	exitOnError("bootstrap failed", err, bs.Log)
	defer bs.Close()

	// stores
	tstore := store.NewTransactionStore(bs.Firestore)
	rstore := store.NewRecurringStore(bs.Firestore)

	// services
	tserv := services.NewTransactionService(tstore, nil)
	rserv := services.NewRecurringService(rstore, nil)
	anserv := services.NewAnalyticsService(tstore)

	// response handler
	rh := response.New(bs.Log)

	// dependencies
	deps := new(handlers.Deps)
	deps.Log = bs.Log
	deps.ResponseHandler = rh
	deps.TransactionSvc = tserv
	deps.RecurringSvc = rserv
	deps.AnalyticsSvc = anserv

	// router
	r := router.NewRouter(deps, router.Options{
		RateLimitRPS:   cfg.RateLimitRPS,
		RateLimitBurst: cfg.RateLimitBurst,
	})

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           r,
		ReadHeaderTimeout: cfg.ReadHeaderTimeout,
	}

	serveErr := make(chan error, 1)
	go func() {
		bs.Log.Info("server listening", "addr", srv.Addr)
		serveErr <- srv.ListenAndServe()
	}()

	select {
	case err = <-serveErr:
		if !errors.Is(err, http.ErrServerClosed) {
			bs.Log.Error("server start failed", "error", err)
			bs.Close()
			os.Exit(1)
		}
	case <-ctx.Done():
		bs.Log.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			bs.Log.Error("graceful shutdown failed", "error", err)
		}
	}
}
