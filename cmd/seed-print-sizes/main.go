package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/printhaus/shopapi/internal/config"
	"github.com/printhaus/shopapi/internal/domain"
	"github.com/printhaus/shopapi/internal/repository/mongodb"
)

// Standard print sizes seeded for a new shop. Order controls display order in
// the admin size picker.
var seedSizes = []domain.PrintSize{
	{Name: "5x7", Dimensions: "5\" x 7\"", Order: 1},
	{Name: "8x10", Dimensions: "8\" x 10\"", Order: 2},
	{Name: "11x14", Dimensions: "11\" x 14\"", Order: 3},
	{Name: "16x20", Dimensions: "16\" x 20\"", Order: 4},
	{Name: "18x24", Dimensions: "18\" x 24\"", Order: 5},
	{Name: "24x36", Dimensions: "24\" x 36\"", Order: 6},
}

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	logger, _ := zap.NewDevelopment()
	defer logger.Sync()

	db, err := mongodb.NewConnection(cfg.Mongo)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to connect to database: %v\n", err)
		os.Exit(1)
	}

	repos := mongodb.NewRepositories(db, logger)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	existing, err := repos.PrintSize.List(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to list print sizes: %v\n", err)
		os.Exit(1)
	}
	have := make(map[string]bool, len(existing))
	for _, s := range existing {
		have[s.Name] = true
	}

	created := 0
	for _, size := range seedSizes {
		if have[size.Name] {
			fmt.Printf("Skipping %s (already exists)\n", size.Name)
			continue
		}
		s := size
		if err := repos.PrintSize.Create(ctx, &s); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to create %s: %v\n", size.Name, err)
			os.Exit(1)
		}
		fmt.Printf("Created %s\n", size.Name)
		created++
	}

	fmt.Printf("Done: %d created, %d skipped\n", created, len(seedSizes)-created)
}
