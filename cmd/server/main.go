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

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	flag "github.com/spf13/pflag"

	"github.com/Lixing-Zhang/bandi-strawberry/internal/catalog"
	"github.com/Lixing-Zhang/bandi-strawberry/internal/config"
	"github.com/Lixing-Zhang/bandi-strawberry/internal/handlers"
	"github.com/Lixing-Zhang/bandi-strawberry/internal/middleware"
	"github.com/Lixing-Zhang/bandi-strawberry/internal/repository"
	"github.com/Lixing-Zhang/bandi-strawberry/internal/service"
	"github.com/Lixing-Zhang/bandi-strawberry/internal/session"
	"github.com/Lixing-Zhang/bandi-strawberry/internal/telemetry"
	"github.com/Lixing-Zhang/bandi-strawberry/internal/web"
	"github.com/Lixing-Zhang/bandi-strawberry/pkg/logger"
)

var version = "dev"

func main() {
	var (
		configPath = flag.String("config", os.Getenv("CONFIG_FILE"), "path to a YAML config file")
		port       = flag.String("port", "", "listen port (overrides PORT)")
		logLevel   = flag.String("log-level", "", "debug, info, warn or error (overrides LOG_LEVEL)")
	)
	flag.Parse()

	// Load configuration from file and environment
	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}
	if *port != "" {
		cfg.Server.Port = *port
	}
	if *logLevel != "" {
		cfg.LogLevel = *logLevel
	}

	// Initialize structured logger
	log := logger.New(cfg.LogLevel)
	slog.SetDefault(log)

	log.Info("starting bandi storefront",
		"version", version,
		"port", cfg.Server.Port,
		"host", cfg.Server.Host,
		"log_level", cfg.LogLevel,
	)

	shutdownTracing, err := telemetry.Setup(cfg.Telemetry.Enabled, cfg.Telemetry.ServiceName, version, os.Stdout)
	if err != nil {
		log.Error("failed to set up tracing", "error", err)
		os.Exit(1)
	}

	ctx, stop := context.WithCancel(context.Background())
	defer stop()

	seed, err := loadSeed(ctx, cfg.Seed.Files, log)
	if err != nil {
		log.Error("failed to load storefront seed", "error", err)
		os.Exit(1)
	}

	// Sessions start from the seeded catalog; idle ones are swept
	sessions := session.NewStore(seed.Products, cfg.Session.TTL())
	go sessions.Run(ctx, cfg.Session.SweepInterval(), log)

	// Initialize services
	orderRepo := repository.NewStaticOrderRepository(seed.Orders)
	productService := service.NewProductService(nil)
	cartService := service.NewCartService(log)
	adminService := service.NewAdminService(orderRepo, *seed.Dashboard)

	renderer, err := web.NewRenderer()
	if err != nil {
		log.Error("failed to load templates", "error", err)
		os.Exit(1)
	}

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(log, sessions, version)
	productHandler := handlers.NewProductHandler(productService, log)
	cartHandler := handlers.NewCartHandler(cartService, log)
	orderHandler := handlers.NewOrderHandler(cartService, adminService, log)
	adminHandler := handlers.NewAdminHandler(adminService, seed.Content(), log)
	pageHandler := web.NewHandler(productService, cartService, adminService, seed.Content(), renderer, log)

	// Create router
	r := chi.NewRouter()

	// Apply middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(telemetry.TracingMiddleware(cfg.Telemetry.ServiceName, "/health"))
	r.Use(middleware.Logger(log))
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(60 * time.Second))

	// CORS configuration
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORS.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "X-Request-Id"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	// Register health check endpoint
	r.Get("/health", healthHandler.ServeHTTP)

	r.Group(func(r chi.Router) {
		r.Use(middleware.Session(sessions, cfg.Session.CookieName, log))

		// Storefront pages and form actions
		pageHandler.Routes(r)

		// API routes
		r.Route("/api", func(r chi.Router) {
			r.Get("/product", productHandler.ListProducts)
			r.Post("/product", productHandler.CreateProduct)
			r.Get("/product/{productId}", productHandler.GetProduct)
			r.Post("/product/{productId}/details", productHandler.ToggleDetails)

			r.Get("/cart", cartHandler.GetCart)
			r.Post("/cart/items", cartHandler.AddItem)
			r.Patch("/cart/items/{productId}", cartHandler.UpdateItem)
			r.Delete("/cart/items/{productId}", cartHandler.RemoveItem)

			r.Post("/order", orderHandler.Checkout)
			r.Get("/order", orderHandler.ListOrders)

			r.Get("/admin/dashboard", adminHandler.Dashboard)
			r.Get("/content", adminHandler.Content)
		})
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
	stop()

	// Create shutdown context with timeout
	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer cancel()

	// Attempt graceful shutdown
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}
	if err := shutdownTracing(shutdownCtx); err != nil {
		log.Error("failed to flush traces", "error", err)
	}

	log.Info("server stopped gracefully")
}

// loadSeed returns the built-in seed, or the seed files merged over it
func loadSeed(ctx context.Context, files []string, log *slog.Logger) (*catalog.Seed, error) {
	if len(files) == 0 {
		log.Info("using built-in storefront seed")
		return catalog.Default(), nil
	}

	log.Info("loading seed files...", "files", files)
	seed, err := catalog.LoadFromFiles(ctx, files)
	if err != nil {
		return nil, err
	}

	stats := seed.GetStats()
	log.Info("seed loaded successfully",
		"products", stats["products"],
		"features", stats["features"],
		"reviews", stats["reviews"],
		"orders", stats["orders"],
	)
	return seed, nil
}
