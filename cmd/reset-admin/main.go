package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/printhaus/shopapi/internal/config"
	"github.com/printhaus/shopapi/internal/repository/mongodb"
	"github.com/printhaus/shopapi/internal/service"
)

func main() {
	emailFlag := flag.String("email", "", "Admin email address")
	passwordFlag := flag.String("password", "", "New password")
	flag.Parse()

	email := strings.TrimSpace(strings.ToLower(*emailFlag))
	password := *passwordFlag
	if email == "" || password == "" {
		fmt.Println("Usage:")
		fmt.Println("  go run cmd/reset-admin/main.go --email admin@example.com --password newsecret")
		os.Exit(1)
	}
	if len(password) < 8 {
		fmt.Fprintf(os.Stderr, "Error: password must be at least 8 characters.\n")
		os.Exit(1)
	}

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

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	user, err := repos.User.GetByEmail(ctx, email)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to find user %s: %v\n", email, err)
		os.Exit(1)
	}

	hash, err := service.HashPassword(password)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to hash password: %v\n", err)
		os.Exit(1)
	}

	user.PasswordHash = hash
	if err := repos.User.Update(ctx, user); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to update user: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Password reset for %s\n", user.Email)
}
