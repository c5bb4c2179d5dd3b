package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/agenda-hub/internal/audit"
	"github.com/BruksfildServices01/agenda-hub/internal/config"
	dbpkg "github.com/BruksfildServices01/agenda-hub/internal/db"
	"github.com/BruksfildServices01/agenda-hub/internal/infra/cache"
	infraRepo "github.com/BruksfildServices01/agenda-hub/internal/infra/repository"
	"github.com/BruksfildServices01/agenda-hub/internal/infra/storage"
	"github.com/BruksfildServices01/agenda-hub/internal/logger"
	"github.com/BruksfildServices01/agenda-hub/internal/metrics"
	"github.com/BruksfildServices01/agenda-hub/internal/middleware"
	"github.com/BruksfildServices01/agenda-hub/internal/routes"
	ucAuth "github.com/BruksfildServices01/agenda-hub/internal/usecase/auth"
	"github.com/BruksfildServices01/agenda-hub/internal/web"
)

func main() {

	cfg := config.Load()
	log := logger.New(cfg.LogLevel, cfg.LogFormat)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// ======================================================
	// INFRA
	// ======================================================
	db := dbpkg.NewDB(cfg, log)

	redisClient, err := cache.NewClient(cfg.RedisURL)
	if err != nil {
		log.Fatalf("redis: %v", err)
	}
	defer redisClient.Close()

	dispatcher := audit.NewDispatcher(audit.New(db), log)

	var store storage.ObjectStore
	if cfg.StorageEnabled() {
		store = storage.NewS3Store(cfg)
	} else {
		log.Info("S3_BUCKET not set, logo uploads disabled")
	}

	profiles := infraRepo.NewProfileGormRepository(db)
	if err := ucAuth.EnsureAdmin(ctx, profiles, cfg.AdminEmail, cfg.AdminPassword, log); err != nil {
		log.WithError(err).Error("admin bootstrap failed")
	}

	limiter := middleware.NewIPRateLimiter(cfg.PublicRateLimit, cfg.PublicRateBurst)
	go limiter.Janitor(ctx, time.Minute)

	// ======================================================
	// HTTP
	// ======================================================
	if cfg.LogLevel != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.SetHTMLTemplate(web.Templates())
	r.Use(
		middleware.RequestID(),
		middleware.RequestLogger(log),
		gin.Recovery(),
		middleware.CORSMiddleware(cfg.CORSAllowedOrigins),
		metrics.Middleware(),
	)

	routes.RegisterRoutes(r, routes.Deps{
		DB:      db,
		Redis:   redisClient,
		Config:  cfg,
		Log:     log,
		Audit:   dispatcher,
		Limiter: limiter,
		Store:   store,
	})

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Infof("Server running on %s", cfg.Addr())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("failed to start server: %v", err)
		}
	}()

	<-ctx.Done()
	log.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.WithError(err).Error("http shutdown")
	}
	if err := dispatcher.Close(shutdownCtx); err != nil {
		log.WithError(err).Warn("audit queue not drained")
	}
}
