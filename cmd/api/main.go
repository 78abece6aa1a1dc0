package main

import (
	"context"
	"errors"
	"io"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"golang.org/x/time/rate"

	"github.com/ewilliams-labs/moodweather/internal/adapters/lastfm"
	"github.com/ewilliams-labs/moodweather/internal/adapters/openweather"
	"github.com/ewilliams-labs/moodweather/internal/adapters/rest"
	"github.com/ewilliams-labs/moodweather/internal/adapters/upstream"
	"github.com/ewilliams-labs/moodweather/internal/config"
	"github.com/ewilliams-labs/moodweather/internal/core/domain"
	"github.com/ewilliams-labs/moodweather/internal/core/services"
)

func main() {
	// 1. Configuration
	// Crash early if an API key is missing.
	cfg, err := config.Load(config.DefaultOptions())
	if err != nil {
		log.Fatalf("FATAL: %v", err)
	}

	if cfg.Log.File != "" {
		f, err := os.OpenFile(cfg.Log.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			log.Fatalf("FATAL: open log file %s: %v", cfg.Log.File, err)
		}
		defer f.Close()
		log.SetOutput(io.MultiWriter(os.Stderr, f))
	}

	// 2. Driven adapters
	httpClient := upstream.NewHTTPClient(cfg.Upstream.Timeout)
	weather := openweather.NewClient(httpClient, cfg.OpenWeather.BaseURL, cfg.OpenWeather.APIKey)
	music := lastfm.NewClient(httpClient, cfg.Lastfm.BaseURL, cfg.Lastfm.APIKey)

	// 3. Core
	svc := services.NewOrchestrator(weather, music)

	// 4. Driving adapter
	var limiter *rate.Limiter
	if cfg.RateLimitEnabled() {
		limiter = rate.NewLimiter(rate.Limit(cfg.RateLimit.RPS), cfg.RateLimit.Burst)
	}
	handler := rest.Chain(rest.NewHandler(svc),
		rest.Recover,
		rest.RequestID,
		rest.AccessLog,
		rest.CORS,
		rest.RateLimit(limiter),
	)

	// 5. Start the server
	log.Println("------------------------------------------------")
	log.Printf("INFO moodweather API listening on %s", cfg.Server.Addr)
	log.Printf("INFO moods: %s", strings.Join(domain.DefaultMoodTable().Moods(), ", "))
	log.Println("------------------------------------------------")

	srv := &http.Server{
		Addr:              cfg.Server.Addr,
		Handler:           handler,
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout,
	}

	serverErr := make(chan error, 1)
	go func() {
		err := srv.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
			return
		}
		serverErr <- nil
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	select {
	case err := <-serverErr:
		if err != nil {
			log.Printf("ERROR server: %v", err)
		}
	case <-ctx.Done():
		log.Println("INFO shutting down server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Printf("ERROR shutdown: %v", err)
		}
	}
}
