package main

import (
	"fmt"
	"log"
	"os"

	"github.com/nutrigate/backend/config"
	httpDelivery "github.com/nutrigate/backend/internal/delivery/http"
	"github.com/nutrigate/backend/internal/infrastructure/openfoodfacts"
	"github.com/nutrigate/backend/internal/usecase"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	log.Printf("Starting NutriGate Backend v1.0.0")
	log.Printf("Environment: %s", cfg.Server.Environment)
	log.Printf("Port: %s", cfg.Server.Port)
	log.Printf("Upstream: %s (timeout %s)", cfg.Upstream.BaseURL, cfg.Upstream.Timeout)

	// Initialize infrastructure dependencies
	foodClient := openfoodfacts.NewClient(cfg.Upstream.BaseURL, cfg.Upstream.UserAgent, cfg.Upstream.Timeout)

	// Initialize usecase layer
	foodService := usecase.NewFoodService(foodClient, usecase.FoodServiceConfig{
		ServiceName:   cfg.Registration.ServiceName,
		Description:   cfg.Registration.Description,
		SampleBarcode: cfg.Registration.SampleBarcode,
	})

	if cfg.Payment.Enabled {
		log.Printf("Payment protocol declared: %s (enforced by the external gate)", cfg.Payment.Protocol)
	}

	// Create HTTP handler with dependencies
	handler := httpDelivery.NewHandler(foodService)

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
