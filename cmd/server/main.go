package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/dgallion1/scholardoc/internal/academic"
	"github.com/dgallion1/scholardoc/internal/api"
	"github.com/dgallion1/scholardoc/internal/citation"
	"github.com/dgallion1/scholardoc/internal/config"
	"github.com/dgallion1/scholardoc/internal/engine"
	"github.com/dgallion1/scholardoc/internal/section"
)

func main() {
	log := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	// Optional .env; regular environment wins.
	godotenv.Load()

	cfg := config.Load()

	det, ext, err := buildMatchers(cfg)
	if err != nil {
		log.Error("invalid pattern file", "file", cfg.PatternsFile, "error", err)
		os.Exit(1)
	}

	analyzer := academic.New(engine.New(log), det, ext, log)
	srv := api.NewServer(analyzer, log, cfg)

	httpServer := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      srv,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 120 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown.
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		log.Info("shutting down...")

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()
		httpServer.Shutdown(shutdownCtx)
	}()

	log.Info("starting scholardoc", "port", cfg.Port, "auth", cfg.APIKey != "")
	if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Error("server error", "error", err)
		os.Exit(1)
	}
}

// buildMatchers compiles the pattern tables, from the override file when
// one is configured and the defaults otherwise.
func buildMatchers(cfg config.Config) (*section.Detector, *citation.Extractor, error) {
	if cfg.PatternsFile == "" {
		return nil, nil, nil
	}
	pc, err := academic.LoadPatternConfig(cfg.PatternsFile)
	if err != nil {
		return nil, nil, err
	}
	return pc.Build()
}
