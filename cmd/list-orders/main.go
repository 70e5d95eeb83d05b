package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/printhaus/shopapi/internal/config"
	"github.com/printhaus/shopapi/internal/domain"
	"github.com/printhaus/shopapi/internal/repository/mongodb"
)

func main() {
	limitFlag := flag.Int("limit", 20, "Maximum number of orders to show")
	emailFlag := flag.String("email", "", "Filter by customer email")
	flag.Parse()

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

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	var orders []*domain.Order
	if *emailFlag != "" {
		orders, err = repos.Order.ListByEmail(ctx, *emailFlag)
	} else {
		orders, err = repos.Order.List(ctx, *limitFlag, 0)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to list orders: %v\n", err)
		os.Exit(1)
	}

	if len(orders) == 0 {
		fmt.Println("No orders found")
		return
	}

	for i, order := range orders {
		if i >= *limitFlag {
			break
		}
		fmt.Printf("%s  %-12s  %-10s  $%8.2f  %s  %s\n",
			order.CreatedAt.Format("2006-01-02 15:04"),
			order.OrderNumber,
			order.OrderStatus,
			order.TotalAmount,
			order.CustomerEmail,
			order.CustomerName,
		)
		for _, item := range order.Items {
			label := item.Name
			if item.Size != "" {
				label = fmt.Sprintf("%s (%s)", item.Name, item.Size)
			}
			fmt.Printf("    %dx %s @ $%.2f\n", item.Quantity, label, item.UnitPrice)
		}
	}
}
