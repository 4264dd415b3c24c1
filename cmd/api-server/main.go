// cmd/api-server/main.go
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"activity-signup/internal/api"
	"activity-signup/internal/common/config"
	"activity-signup/internal/common/logger"
	"activity-signup/internal/registry"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		bootLog := logger.New("info", "console")
		bootLog.Fatal("config load failed", zap.Error(err))
	}

	zapLog := logger.New(cfg.Logging.Level, cfg.Logging.Format)
	defer zapLog.Sync()
	log := logger.NewZapAdapter(zapLog)

	zapLog.Info("starting activity signup API",
		zap.String("name", cfg.App.Name),
		zap.String("environment", cfg.App.Environment),
	)

	if cfg.App.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	activities, err := loadCatalog(cfg)
	if err != nil {
		zapLog.Fatal("catalog load failed", zap.Error(err))
	}

	reg, err := registry.New(log, activities)
	if err != nil {
		zapLog.Fatal("registry seed failed", zap.Error(err))
	}

	router := api.NewRouter(reg, log)
	server := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      router,
		ReadTimeout:  config.GetDuration(cfg.Server.ReadTimeout),
		WriteTimeout: config.GetDuration(cfg.Server.WriteTimeout),
	}

	go func() {
		zapLog.Info("listening", zap.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zapLog.Fatal("server failed", zap.Error(err))
		}
	}()

	// Block until SIGINT/SIGTERM, then drain in-flight requests.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	zapLog.Info("shutting down...")
	ctx, cancel := context.WithTimeout(context.Background(), config.GetDuration(cfg.Server.ShutdownTimeout))
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		zapLog.Error("graceful shutdown failed", zap.Error(err))
	}
	zapLog.Info("stopped")
}

// loadCatalog prefers the configured catalog file and falls back to the
// catalog embedded in the binary.
func loadCatalog(cfg *config.Config) ([]registry.Activity, error) {
	if cfg.Catalog.Path != "" {
		return registry.LoadCatalogFile(cfg.Catalog.Path)
	}
	return registry.DefaultCatalog()
}
