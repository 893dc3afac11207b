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

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/adminflow/admin_backend/internal/config"
	"github.com/adminflow/admin_backend/internal/db"
	"github.com/adminflow/admin_backend/internal/events"
	"github.com/adminflow/admin_backend/internal/httpserver"
	"github.com/adminflow/admin_backend/internal/logging"
	loggingmw "github.com/adminflow/admin_backend/internal/middleware/logging"
	"github.com/adminflow/admin_backend/internal/repo"
	"github.com/adminflow/admin_backend/internal/service"
	"github.com/adminflow/admin_backend/internal/upload"
)

func main() {
	configuration, err := config.LoadConfig()
	if err != nil {
		log.Fatal(err)
	}

	logger := logging.New(configuration.LOG_LEVEL)

	ctx := context.Background()
	database, err := db.Open(ctx, configuration)
	if err != nil {
		log.Fatalf("store init error: %v", err)
	}

	uploads, err := upload.NewStore(configuration.UPLOAD_DIR)
	if err != nil {
		log.Fatalf("upload store init error: %v", err)
	}

	var producer *events.Producer
	if configuration.KAFKA_ADDRESS != "" {
		producer = events.NewProducer([]string{configuration.KAFKA_ADDRESS})
	}

	store := &repo.GormRepo{DB: database}
	authSvc := &service.AuthService{Repo: store}
	catalogSvc := &service.CatalogService{Repo: store, Uploads: uploads}

	seedCtx, cancel := context.WithTimeout(logging.IntoContext(ctx, logger), 10*time.Second)
	if err := authSvc.EnsureAdmin(seedCtx, configuration.ADMIN_USERNAME, configuration.ADMIN_PASSWORD); err != nil {
		logger.Error("admin seed failed", "error", err)
	}
	cancel()

	e := echo.New()
	e.Pre(middleware.RemoveTrailingSlash())
	e.Use(middleware.Recover(), middleware.RequestID())
	e.Use(loggingmw.RequestLogger(logger))
	e.Use(middleware.BodyLimit("10M"))
	if configuration.ALLOWED_ORIGIN != "" {
		e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
			AllowOrigins: []string{configuration.ALLOWED_ORIGIN},
		}))
	}

	deps := httpserver.Deps{
		AuthHandler:    &httpserver.AuthHandler{Svc: authSvc},
		ProductHandler: &httpserver.ProductHandler{Svc: catalogSvc, Producer: producer},
		UploadDir:      configuration.UPLOAD_DIR,
	}
	httpserver.Register(e, &deps)

	srv := &http.Server{
		Addr:         ":" + configuration.APP_PORT,
		Handler:      e,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Printf("http server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("server shutdown error: %v", err)
	}

	if sqlDB, err := database.DB(); err == nil {
		if err := sqlDB.Close(); err != nil {
			log.Printf("db close error: %v", err)
		}
	} else {
		log.Printf("db() error: %v", err)
	}

	if err := producer.Close(); err != nil {
		log.Printf("kafka close error: %v", err)
	}

	log.Println("shutdown complete")
}
