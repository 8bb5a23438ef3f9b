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

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/autoshop-manager/internal/audit"
	"github.com/BruksfildServices01/autoshop-manager/internal/cache"
	"github.com/BruksfildServices01/autoshop-manager/internal/config"
	dbpkg "github.com/BruksfildServices01/autoshop-manager/internal/db"
	"github.com/BruksfildServices01/autoshop-manager/internal/logging"
	"github.com/BruksfildServices01/autoshop-manager/internal/routes"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logger, err := logging.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer logger.Sync()

	if err := run(cfg, logger); err != nil {
		logger.Fatal("server stopped with error", zap.Error(err))
	}
}

func run(cfg *config.Config, logger *zap.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := dbpkg.NewDB(cfg, logger)
	if err != nil {
		return err
	}
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	defer sqlDB.Close()

	// --------------------------------------------------
	// Cache dos relatórios (opcional)
	// --------------------------------------------------
	var reportCache cache.ReportCache = cache.NoopReportCache{}
	if cfg.RedisURL != "" {
		client, err := cache.Connect(ctx, cfg.RedisURL)
		if err != nil {
			logger.Warn("report cache disabled", zap.Error(err))
		} else {
			defer client.Close()
			reportCache = cache.NewRedisReportCache(client, cfg.ReportCacheTTL)
			logger.Info("report cache enabled",
				zap.String("redis", logging.SanitizeURL(cfg.RedisURL)),
				zap.Duration("ttl", cfg.ReportCacheTTL),
			)
		}
	}

	dispatcher := audit.NewDispatcher(audit.NewRecorder(db), logger)

	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	routes.RegisterRoutes(r, routes.Deps{
		DB:          db,
		Config:      cfg,
		Logger:      logger,
		ReportCache: reportCache,
		Audit:       dispatcher,
	})

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server running", zap.String("addr", cfg.Addr()))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return err
		}
	case <-ctx.Done():
		logger.Info("shutting down")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}

	// só depois do Shutdown: nenhum handler envia eventos
	return dispatcher.Close(shutdownCtx)
}
