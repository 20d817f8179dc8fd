package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/alamin516/genius-car-server-sllcommerz/internal/client"
	"github.com/alamin516/genius-car-server-sllcommerz/internal/config"
	"github.com/alamin516/genius-car-server-sllcommerz/internal/repository"
	"github.com/alamin516/genius-car-server-sllcommerz/internal/server"
	"github.com/alamin516/genius-car-server-sllcommerz/internal/service"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

func main() {
	// load .env into os.Environ
	if err := godotenv.Load(); err != nil {
		fmt.Println("No .env file found (ok in prod)")
	}

	cfg := &config.Config{}
	if err := env.Parse(cfg); err != nil {
		fmt.Printf("Failed to parse config: %v\n", err)
		os.Exit(1)
	}

	db := client.InitMysqlClient(cfg.DatabaseURL)
	gatewayClient := client.NewSSLCommerzClient(&cfg.SSLCommerz, cfg.Checkout)

	serviceRepo := repository.NewServiceRepository(db)
	orderRepo := repository.NewOrderRepository(db)

	if err := serviceRepo.Seed(context.Background()); err != nil {
		log.Fatal("failed to seed services:", err)
	}

	catalogService := service.NewCatalogService(serviceRepo)
	checkoutService := service.NewCheckoutService(serviceRepo, orderRepo, gatewayClient, cfg.BaseURL)
	tokenService := service.NewTokenService(cfg.JWT.Secret)

	serverAddr := cfg.HTTP.Host + ":" + cfg.HTTP.Port

	// Init HTTP server
	srv := server.NewServer(cfg, catalogService, checkoutService, tokenService)

	log.Println("Starting HTTP server on", serverAddr)
	go func() {
		if err := srv.Start(serverAddr); err != nil && err != http.ErrServerClosed {
			log.Fatal("HTTP server error")
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGTERM, syscall.SIGINT)

	<-sigChan
	log.Println("Signal received, starting graceful shutdown...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal("HTTP server shutdown error")
	}
}
