package main

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"go.uber.org/zap"

	"github.com/mapcraft/storefront-api/internal/config"
	"github.com/mapcraft/storefront-api/internal/domain"
	"github.com/mapcraft/storefront-api/internal/repository/postgres"
)

func main() {
	if len(os.Args) < 4 {
		fmt.Println("Usage: go run cmd/seed-prices/main.go <category> <frame-size> <unit-price>")
		fmt.Println("Example: go run cmd/seed-prices/main.go \"City Maps\" 12x12 49.99")
		os.Exit(1)
	}

	category := os.Args[1]
	sizeToken := os.Args[2]

	size, ok := domain.ParseFrameSize(sizeToken)
	if !ok {
		fmt.Fprintf(os.Stderr, "Unrecognized frame size: %s\n", sizeToken)
		os.Exit(1)
	}

	unitPrice, err := strconv.ParseFloat(os.Args[3], 64)
	if err != nil || unitPrice < 0 {
		fmt.Fprintf(os.Stderr, "Invalid unit price: %s\n", os.Args[3])
		os.Exit(1)
	}

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	logger, _ := zap.NewDevelopment()
	defer logger.Sync()

	// Connect to database
	db, err := postgres.NewConnection(cfg.Database)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to connect to database: %v\n", err)
		os.Exit(1)
	}
	defer db.Close()

	// Create repositories
	repos := postgres.NewRepositories(db, logger)

	entry := &domain.PriceEntry{
		Category:  category,
		FrameSize: size,
		UnitPrice: unitPrice,
	}

	if err := repos.PriceEntry.Upsert(context.Background(), entry); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to upsert price entry: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Price entry saved: %s / %s = %.2f\n", category, size, unitPrice)
}
