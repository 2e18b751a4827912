package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/sync/errgroup"

	"github.com/meita/saudi-banks/src/internal/adapter/http/controller"
	"github.com/meita/saudi-banks/src/internal/adapter/http/middleware"
	"github.com/meita/saudi-banks/src/internal/adapter/http/router"
	"github.com/meita/saudi-banks/src/internal/adapter/repository/memory"
	"github.com/meita/saudi-banks/src/internal/config"
	"github.com/meita/saudi-banks/src/internal/logger"
	"github.com/meita/saudi-banks/src/internal/metrics"
	"github.com/meita/saudi-banks/src/internal/usecase/services"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg); err != nil {
		log.Fatalf("server: %v", err)
	}
}

func run(ctx context.Context, cfg config.Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	bankService := services.NewBankService(memory.NewBankRepository(), metrics.New(reg))
	handler := router.New(
		controller.NewBankController(bankService),
		authMiddleware(cfg),
		promhttp.HandlerFor(reg, promhttp.HandlerOpts{}),
	)

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("http server listening", logger.Fields{
			"addr":        cfg.HTTPAddr,
			"authEnabled": cfg.AuthEnabled(),
		})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()

		logger.Info("http server shutting down", nil)
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}

func authMiddleware(cfg config.Config) func(http.Handler) http.Handler {
	switch {
	case cfg.ChannelKeyHash != "":
		return middleware.BasicAuthHashed(cfg.ChannelID, cfg.ChannelKeyHash)
	case cfg.ChannelKey != "":
		return middleware.BasicAuth(cfg.ChannelID, cfg.ChannelKey)
	default:
		logger.Info("AUTH_DISABLED set, bank routes are unauthenticated", nil)
		return nil
	}
}
