package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gramtop961/storefront-api/internal/config"
	"github.com/gramtop961/storefront-api/internal/handlers"
	"github.com/gramtop961/storefront-api/internal/middleware"
	"github.com/gramtop961/storefront-api/internal/service"
	"github.com/gramtop961/storefront-api/internal/store"
	"github.com/gramtop961/storefront-api/pkg/logger"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/google/uuid"
)

func main() {
	// Load configuration from environment
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize structured logger
	log := logger.New(cfg.LogLevel)
	slog.SetDefault(log)

	instanceID := uuid.New().String()

	log.Info("starting storefront api server",
		"port", cfg.Server.Port,
		"host", cfg.Server.Host,
		"log_level", cfg.LogLevel,
		"instance_id", instanceID,
	)

	// Connect to the document store. A missing or unreachable database is
	// not fatal: the server runs and storage-backed endpoints return 500.
	var docStore store.Store
	var mongoStore *store.MongoStore
	if cfg.Database.URL == "" {
		log.Warn("DATABASE_URL not set, running without a document store")
	} else {
		ms, err := store.ConnectMongo(context.Background(), cfg.Database.URL, cfg.Database.Name)
		if err != nil {
			log.Warn("document store unavailable", "error", err)
		} else {
			log.Info("connected to document store", "database", cfg.Database.Name)
			mongoStore = ms
			docStore = ms
		}
	}

	// Initialize services
	catalogService := service.NewCatalogService(docStore)
	orderService := service.NewOrderService(docStore)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(instanceID, log)
	diagHandler := handlers.NewDiagnosticsHandler(docStore, cfg.Database.URL != "", cfg.Database.Name != "", instanceID, log)
	schemaHandler := handlers.NewSchemaHandler(log)
	productHandler := handlers.NewProductHandler(catalogService, log)
	orderHandler := handlers.NewOrderHandler(orderService, log)

	// Create router
	r := chi.NewRouter()

	// Apply middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.Logger(log))
	r.Use(middleware.Metrics())
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(60 * time.Second))

	// CORS configuration
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	// Liveness and diagnostics
	r.Get("/", healthHandler.Root)
	r.Get("/test", diagHandler.ServeHTTP)
	r.Get("/schema", schemaHandler.ServeHTTP)
	r.Get("/metrics", middleware.MetricsHandler().ServeHTTP)

	// API routes
	r.Route("/api", func(r chi.Router) {
		r.Get("/hello", healthHandler.Hello)

		// Product endpoints
		r.Get("/products", productHandler.ListProducts)
		r.Get("/products/{productId}", productHandler.GetProduct)
		r.Post("/products/seed", productHandler.SeedProducts)

		// Order endpoints
		r.Post("/orders", orderHandler.CreateOrder)
	})

	// Create HTTP server
	addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
	}

	// Start server in a goroutine
	go func() {
		log.Info("server listening", "address", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server...")

	// Create shutdown context with timeout
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer cancel()

	// Attempt graceful shutdown
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	if mongoStore != nil {
		if err := mongoStore.Close(ctx); err != nil {
			log.Error("failed to close document store", "error", err)
		}
	}

	log.Info("server stopped gracefully")
}
