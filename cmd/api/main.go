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

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/manicure-agenda/internal/audit"
	"github.com/BruksfildServices01/manicure-agenda/internal/blob"
	"github.com/BruksfildServices01/manicure-agenda/internal/config"
	"github.com/BruksfildServices01/manicure-agenda/internal/kvstore"
	"github.com/BruksfildServices01/manicure-agenda/internal/logging"
	"github.com/BruksfildServices01/manicure-agenda/internal/metrics"
	"github.com/BruksfildServices01/manicure-agenda/internal/routes"
	"github.com/BruksfildServices01/manicure-agenda/internal/timezone"
)

func main() {

	cfg := config.Load()

	log, err := logging.New(logging.Options{Level: cfg.LogLevel, File: cfg.LogFile})
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to build logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync() //nolint:errcheck

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	m := metrics.New()

	store, err := kvstore.Open(ctx, cfg, log)
	if err != nil {
		log.Fatal("failed to open storage", zap.Error(err))
	}
	store = kvstore.Instrument(store, m)

	blobs, err := blob.Open(cfg)
	if err != nil {
		log.Fatal("failed to open blob store", zap.Error(err))
	}

	dispatcher := audit.NewDispatcher(audit.New(log), log)
	defer dispatcher.Close()

	if !cfg.DevMode {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()

	routes.RegisterRoutes(r, cfg, routes.Deps{
		Store:   store,
		Blobs:   blobs,
		Audit:   dispatcher,
		Metrics: m,
		Clock:   timezone.NewClock(cfg.Timezone),
		Log:     log,
	})

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		log.Info("server running",
			zap.String("addr", cfg.Addr()),
			zap.String("storage", string(store.Driver())),
			zap.String("blob", string(blobs.Driver())),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("failed to start server", zap.Error(err))
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("shutdown failed", zap.Error(err))
	}
	log.Info("server stopped")
}
