package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ARR-GOD/vip-tiers-calculator/internal/api"
	"github.com/ARR-GOD/vip-tiers-calculator/internal/brand"
	"github.com/ARR-GOD/vip-tiers-calculator/internal/config"
)

func main() {
	cfg, err := config.LoadFromEnv("config/config.yaml")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	handlers := api.NewHandlers(cfg.Engine)

	if cfg.Bedrock.Enabled {
		analyzer, err := brand.NewAnalyzer(cfg.Bedrock.ModelID, cfg.Bedrock.Region)
		if err != nil {
			log.Printf("ERROR: brand analyzer unavailable: %v", err)
		} else {
			handlers.SetBrandAnalyzer(analyzer)
			log.Printf("Brand analyzer enabled (model %s)", cfg.Bedrock.ModelID)
		}
	}

	server := api.NewServer(cfg, handlers)

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := server.Start(); err != nil {
			log.Fatalf("Server error: %v", err)
		}
	}()

	<-done
	log.Println("Shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("Server shutdown error: %v", err)
	}

	log.Println("Server stopped")
}
