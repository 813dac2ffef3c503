package main

import (
	"context"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dvloznov/budget-core/internal/api/handlers"
	"github.com/dvloznov/budget-core/internal/api/middleware"
	"github.com/dvloznov/budget-core/internal/bank"
	"github.com/dvloznov/budget-core/internal/config"
	"github.com/dvloznov/budget-core/internal/logger"
	"github.com/dvloznov/budget-core/internal/receipt"
)

func main() {
	port := flag.String("port", "", "HTTP server port (overrides PORT env)")
	flag.Parse()

	// Initialize logger
	log := logger.New()

	// Configuration snapshot: credentials are read once here and injected,
	// never from the environment inside request handling.
	cfg := config.Load()
	if *port != "" {
		cfg.Port = *port
	}

	ctx := context.Background()

	var extractor handlers.Extractor
	if cfg.GeminiAPIKey == "" {
		log.Warn().Msg("GEMINI_API_KEY not set - receipt scanning is disabled")
	} else {
		invoker, err := receipt.NewGemini(ctx, cfg.GeminiAPIKey, cfg.GeminiModel)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to create Gemini invoker")
		}
		extractor = receipt.NewService(invoker, log)
	}

	var source handlers.StatementSource
	if cfg.MonoToken == "" {
		log.Warn().Msg("MONO_TOKEN not set - transaction listing is disabled")
	} else {
		client, err := bank.NewClient(cfg.MonoToken, cfg.MonoBaseURL)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to create Monobank client")
		}
		source = client
	}

	// Initialize handlers
	receiptsHandler := handlers.NewReceiptsHandler(extractor, log)
	transactionsHandler := handlers.NewTransactionsHandler(source, cfg.StatementWindow, time.Local, log)
	healthHandler := handlers.NewHealthHandler()

	// Create router
	mux := http.NewServeMux()

	mux.HandleFunc("/scan-receipt", func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost {
			receiptsHandler.ScanReceipt(w, r)
		} else {
			middleware.WriteError(w, http.StatusMethodNotAllowed, "Method not allowed")
		}
	})

	mux.HandleFunc("/mono-transactions", func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodGet {
			transactionsHandler.ListTransactions(w, r)
		} else {
			middleware.WriteError(w, http.StatusMethodNotAllowed, "Method not allowed")
		}
	})

	// Health check endpoint
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			middleware.WriteError(w, http.StatusNotFound, "Not found")
			return
		}
		healthHandler.Health(w, r)
	})

	// Apply middleware
	handler := middleware.Recovery(log)(
		middleware.Logger(log)(
			middleware.RequestID(
				middleware.CORS(mux),
			),
		),
	)

	// Create HTTP server. The write timeout must outlive the 30s model call.
	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		log.Info().Str("port", cfg.Port).Msg("Starting API server")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down server...")

	// Graceful shutdown
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatal().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited")
}
