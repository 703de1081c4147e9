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

	"github.com/gorilla/mux"

	"github.com/inamate/fractal/internal/config"
	"github.com/inamate/fractal/internal/engine"
	"github.com/inamate/fractal/internal/export"
	"github.com/inamate/fractal/internal/session"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("load config", "error", err)
		os.Exit(1)
	}

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.SlogLevel()}))
	slog.SetDefault(logger)
	engine.SetLogger(logger.With("component", "engine"))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	hub := session.NewHub(session.Settings{
		Options:        cfg.EngineOptions(),
		CanvasWidth:    cfg.CanvasWidth,
		CanvasHeight:   cfg.CanvasHeight,
		DepthLimit:     cfg.DepthLimit,
		OriginPatterns: cfg.Origins(),
	})
	go hub.Run(ctx)

	exportHandler := export.NewHandler(cfg.ExportMaxSize, cfg.DepthLimit)

	r := mux.NewRouter()
	r.Use(recovery)
	r.Use(requestLogger)

	// Health check
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprintf(w, `{"status":"ok","sessions":%d}`, hub.Count())
	}).Methods("GET")

	r.HandleFunc("/export/png", exportHandler.ExportPNG).Methods("POST")

	// WebSocket endpoint: one private engine per connection
	r.HandleFunc("/ws", hub.ServeWS)

	addr := fmt.Sprintf(":%d", cfg.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 120 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh

		slog.Info("shutting down server")
		cancel()

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()
		srv.Shutdown(shutdownCtx)
	}()

	slog.Info("server starting", "addr", addr)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		slog.Error("server error", "error", err)
		os.Exit(1)
	}
}
