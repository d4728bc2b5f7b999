package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"sip-agent/config"
	httpLayer "sip-agent/http"
	"sip-agent/repository"
	"sip-agent/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}

	var cache repository.CacheRepository
	if cfg.CacheBackend == "redis" {
		cache = repository.NewRedisCache(cfg.RedisAddr, cfg.CacheTTL)
	} else {
		cache = repository.NewMemoryCache()
	}

	sipService := service.NewSIPService(cache)
	sipHandler := httpLayer.NewSIPHandler(sipService)

	store := repository.NewScenarioStoreMemory()
	scenarioService := service.NewScenarioService(sipService, store)
	scenarioHandler := httpLayer.NewScenarioHandler(scenarioService)

	growthService := service.NewGrowthService(sipService)
	growthHandler := httpLayer.NewGrowthHandler(growthService)

	goalService := service.NewGoalService(sipService)
	goalHandler := httpLayer.NewGoalHandler(goalService)

	rateLimiter := httpLayer.NewRateLimiter(cfg.RateLimitCapacity, cfg.RateLimitRefill)
	defer rateLimiter.Stop()

	mux := http.NewServeMux()
	mux.Handle(
		"/sip/calculate",
		httpLayer.RateLimitMiddleware(
			rateLimiter,
			http.HandlerFunc(sipHandler.Calculate),
		),
	)

	mux.Handle(
		"/sip/scenarios",
		httpLayer.RateLimitMiddleware(
			rateLimiter,
			http.HandlerFunc(scenarioHandler.Scenarios),
		),
	)

	mux.Handle(
		"/sip/growth-schedule",
		httpLayer.RateLimitMiddleware(
			rateLimiter,
			http.HandlerFunc(growthHandler.BuildSchedule),
		),
	)

	mux.Handle(
		"/sip/goal-plan",
		httpLayer.RateLimitMiddleware(
			rateLimiter,
			http.HandlerFunc(goalHandler.Plan),
		),
	)

	server := &http.Server{
		Addr:         cfg.Addr,
		Handler:      mux,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		log.Printf("🚀 API corriendo en http://localhost%s", cfg.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		log.Printf("Error starting server: %v", err)
		return
	case <-quit:
		log.Println("Shutting down server...")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Printf("Error during server shutdown: %v", err)
	}

	log.Println("Server exited")
}
