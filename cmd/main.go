package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/pratheepg2026-commits/crm-v2/internal/model"
	"github.com/pratheepg2026-commits/crm-v2/internal/repository"
	"github.com/pratheepg2026-commits/crm-v2/internal/router"
	"github.com/pratheepg2026-commits/crm-v2/internal/service"
	"github.com/pratheepg2026-commits/crm-v2/pkg/config"
	"github.com/pratheepg2026-commits/crm-v2/pkg/database"
	"github.com/pratheepg2026-commits/crm-v2/pkg/jwtutil"
	"github.com/pratheepg2026-commits/crm-v2/pkg/logger"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const serviceName = "farm-crm-api"

func main() {
	cfg, err := config.Load(serviceName)
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	if err := logger.InitLogger(&logger.LogConfig{
		Level:       cfg.Log.Level,
		Environment: cfg.Server.Env,
		ServiceName: cfg.ServiceName,
	}); err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	log := logger.GetLogger()
	defer log.Sync()

	log.Info("Starting farm CRM API", cfg.LogConfig()...)

	db, err := database.Open(&cfg.DB, log)
	if err != nil {
		log.Fatal("Failed to initialize database", zap.Error(err))
	}

	// schema is applied once here, never per request
	if err := database.MigrateModels(db, model.All()...); err != nil {
		log.Fatal("Failed to migrate database", zap.Error(err))
	}
	log.Info("Database schema migrated")

	tokens := jwtutil.NewJWTUtil(&jwtutil.JWTConfig{
		SigningKey:      cfg.JWT.SigningKey,
		ExpirationHours: cfg.JWT.ExpirationHours,
	})
	auth, err := service.NewAuthService(repository.NewUserRepository(db), tokens, bcrypt.DefaultCost)
	if err != nil {
		log.Fatal("Failed to initialize auth service", zap.Error(err))
	}

	e := router.New(router.Deps{
		DB:          db,
		Tokens:      tokens,
		Auth:        auth,
		Analytics:   service.NewAnalyticsService(db),
		BodyLimit:   cfg.Server.BodyLimit,
		CORSOrigins: cfg.Server.CORSOrigins,
	})

	go func() {
		log.Info("Starting server", zap.String("port", cfg.Server.Port))
		if err := e.Start(":" + cfg.Server.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("Server error", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		log.Error("Graceful shutdown failed", zap.Error(err))
	}
	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
}
