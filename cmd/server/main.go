package main

import (
	"fmt"
	"log"
	"os"

	"github.com/partscout/backend/config"
	httpDelivery "github.com/partscout/backend/internal/delivery/http"
	"github.com/partscout/backend/internal/domain"
	"github.com/partscout/backend/internal/infrastructure/amazon"
	"github.com/partscout/backend/internal/infrastructure/cache"
	"github.com/partscout/backend/internal/infrastructure/demo"
	"github.com/partscout/backend/internal/usecase"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	log.Printf("Starting PartScout Backend v1.0.0")
	log.Printf("Environment: %s", cfg.Server.Environment)
	log.Printf("Port: %s", cfg.Server.Port)
	log.Printf("Search mode: %s", cfg.Search.Mode)
	log.Printf("Marketplace: %s", cfg.Marketplace.BaseURL)

	if cfg.Marketplace.AffiliateTag != "" {
		log.Printf("Affiliate tag configured: links will be decorated")
	} else {
		log.Printf("No affiliate tag configured (set PARTSCOUT_MARKETPLACE_AFFILIATE_TAG to monetize links)")
	}

	// Initialize the result source. Failing to build the live client is
	// fatal for the whole run: no categories are processed without it.
	var source domain.ResultSource
	if cfg.Search.Mode == config.ModeLive {
		client, err := amazon.NewClient(cfg.Marketplace.BaseURL, cfg.Marketplace.AffiliateTag)
		if err != nil {
			log.Fatalf("Failed to initialize marketplace client: %v", err)
		}
		if cfg.Server.Environment == "development" {
			client.SetDebug(true)
			log.Printf("Marketplace client debug mode enabled")
		}
		source = usecase.NewSearchSource(client)
	} else {
		source = demo.NewSource(cfg.Marketplace.BaseURL)
	}

	memoryCache := cache.NewMemoryCache()
	log.Printf("Cache TTL: %s", cfg.Search.CacheTTL)

	// Initialize usecase layer
	pricingService := usecase.NewPricingService(
		memoryCache,
		source,
		usecase.PricingServiceConfig{
			CacheTTL:           cfg.Search.CacheTTL,
			DefaultResultLimit: cfg.Search.ResultLimit,
		},
	)

	// Create HTTP handler with dependencies
	handler := httpDelivery.NewHandler(pricingService)

	// Setup router
	router := httpDelivery.SetupRouter(cfg, handler)

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Printf("Server listening on %s", addr)

	if err := router.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func init() {
	// Set log flags for better debugging
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	log.SetOutput(os.Stdout)
}
