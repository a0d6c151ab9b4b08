package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"orderdesk/internal/auth"
	"orderdesk/internal/config"
	"orderdesk/internal/infrastructure/logger"
	"orderdesk/internal/infrastructure/mysql"
	"orderdesk/internal/order"
	"orderdesk/internal/report"
	"orderdesk/internal/server"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}

	zapLogger, err := logger.New(cfg.Log.Level)
	if err != nil {
		log.Fatalf("creating logger: %v", err)
	}
	defer zapLogger.Sync()

	db, err := mysql.NewConnection(cfg.Database)
	if err != nil {
		zapLogger.Fatal("connecting to database", zap.Error(err))
	}
	defer db.Close()

	if err := mysql.InitSchema(db); err != nil {
		zapLogger.Fatal("initializing schema", zap.Error(err))
	}
	zapLogger.Info("database ready")

	authModule := auth.NewModule(db, cfg, zapLogger)
	orderModule := order.NewModule(db, cfg, zapLogger)
	reportModule := report.NewModule(orderModule.Repository, zapLogger)

	if err := authModule.Credentials.EnsureDefaultAdmin(context.Background(), cfg.Admin.User, cfg.Admin.Pass); err != nil {
		zapLogger.Fatal("seeding default admin", zap.Error(err))
	}

	router := server.NewRouter(
		authModule.Controller,
		orderModule.Controller,
		reportModule.Controller,
		authModule.Sessions,
	)

	srv := server.New(cfg.Server.Port, router, zapLogger)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := srv.Start(); err != nil {
			zapLogger.Fatal("server error", zap.Error(err))
		}
	}()

	<-quit
	zapLogger.Info("received shutdown signal")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		zapLogger.Fatal("server shutdown failed", zap.Error(err))
	}

	zapLogger.Info("server stopped gracefully")
}
