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

	"github.com/Akashtl-Tiwari/bytebite-food-ordering/internal/auth"
	"github.com/Akashtl-Tiwari/bytebite-food-ordering/internal/cart"
	"github.com/Akashtl-Tiwari/bytebite-food-ordering/internal/catalog"
	"github.com/Akashtl-Tiwari/bytebite-food-ordering/internal/config"
	"github.com/Akashtl-Tiwari/bytebite-food-ordering/internal/handlers"
	"github.com/Akashtl-Tiwari/bytebite-food-ordering/internal/imagestore"
	"github.com/Akashtl-Tiwari/bytebite-food-ordering/internal/ledger"
	"github.com/Akashtl-Tiwari/bytebite-food-ordering/internal/metrics"
	"github.com/Akashtl-Tiwari/bytebite-food-ordering/internal/middleware"
	"github.com/Akashtl-Tiwari/bytebite-food-ordering/internal/recommend"
	"github.com/Akashtl-Tiwari/bytebite-food-ordering/internal/report"
	"github.com/Akashtl-Tiwari/bytebite-food-ordering/pkg/logger"
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

	log.Info("starting bytebite food ordering server",
		"port", cfg.Server.Port,
		"host", cfg.Server.Host,
		"log_level", cfg.LogLevel,
	)

	// Initialize the application state: seeded catalog, per-session carts,
	// the order ledger with its recommendation cache, and exporters. All of
	// it is in-memory and resets on restart.
	cat := catalog.NewWithDefaults()
	images := imagestore.New()
	carts := cart.NewStore()
	cache := recommend.NewCache(time.Duration(cfg.Recommend.CacheTTLSeconds) * time.Second)
	led := ledger.New(ledger.SystemClock{}, cache)
	engine := recommend.NewEngine(cat, led, cache)
	exporter := report.NewExporter(cfg.Report.Currency)
	users := auth.NewStoreWithDefaults()
	m := metrics.New()

	log.Info("catalog seeded", "items", cat.Len())

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(log)
	authHandler := handlers.NewAuthHandler(users, carts, log)
	menuHandler := handlers.NewMenuHandler(cat, images, log)
	cartHandler := handlers.NewCartHandler(carts, cat, log)
	orderHandler := handlers.NewOrderHandler(led, carts, cat, m, log)
	recommendHandler := handlers.NewRecommendHandler(engine, log)
	reportHandler := handlers.NewReportHandler(led, exporter, log)

	// Create router
	r := chi.NewRouter()

	// Apply middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.Logger(log))
	r.Use(middleware.Metrics(m))
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(60 * time.Second))

	// CORS configuration
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link", "Content-Disposition"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	// Register health check and metrics endpoints
	r.Get("/health", healthHandler.ServeHTTP)
	r.Method(http.MethodGet, "/metrics", m.Handler())

	// API routes
	r.Route("/api", func(r chi.Router) {
		// Account endpoints
		r.Post("/auth/register", authHandler.Register)
		r.Post("/auth/login", authHandler.Login)

		// Public menu browsing
		r.Get("/menu", menuHandler.List)
		r.Get("/menu/categories", menuHandler.Categories)
		r.Get("/menu/{itemId}", menuHandler.Get)
		r.Get("/menu/{itemId}/image", menuHandler.GetImage)

		// Session-scoped endpoints
		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireSession(users))

			r.Post("/auth/logout", authHandler.Logout)

			r.Get("/cart", cartHandler.View)
			r.Post("/cart/{itemId}/increment", cartHandler.Increment)
			r.Post("/cart/{itemId}/decrement", cartHandler.Decrement)
			r.Delete("/cart", cartHandler.Clear)

			r.Post("/orders", orderHandler.Place)
			r.Get("/orders", orderHandler.List)
			r.Get("/orders/metrics", orderHandler.Metrics)
			r.Get("/orders/breakdown", orderHandler.Breakdown)

			r.Get("/recommendations", recommendHandler.Get)

			// Admin endpoints
			r.Group(func(r chi.Router) {
				r.Use(middleware.RequireAdmin)

				r.Post("/menu", menuHandler.Add)
				r.Delete("/menu/{itemId}", menuHandler.Remove)
				r.Put("/menu/{itemId}/image", menuHandler.PutImage)

				r.Delete("/orders/{orderId}", orderHandler.Delete)

				r.Get("/reports/orders.csv", reportHandler.CSV)
				r.Get("/reports/orders.pdf", reportHandler.PDF)
			})
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

	// Create shutdown context with timeout
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer cancel()

	// Attempt graceful shutdown
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	log.Info("server stopped gracefully")
}
