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

	"digital-cards/internal/client"
	"digital-cards/internal/config"
	"digital-cards/internal/reference"
	"digital-cards/internal/repository"
	"digital-cards/internal/server"
	"digital-cards/internal/service"

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
	if cfg.Paystack.CallbackURL == "" {
		cfg.Paystack.CallbackURL = cfg.BaseURL + "/payment/callback"
	}

	db := client.InitSqliteClient(cfg.DatabaseURL)
	paystackClient := client.NewPaystackClient(&cfg.Paystack)

	profileRepo := repository.NewProfileRepository(db)

	paymentService := service.NewPaymentService(
		paystackClient,
		reference.New(),
		&cfg.Paystack,
	)

	serverAddr := cfg.HTTP.Host + ":" + cfg.HTTP.Port

	// Init HTTP server
	srv := server.NewServer(paymentService, profileRepo)

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

	_, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(); err != nil {
		log.Fatal("HTTP server shutdown error")
	}
}
