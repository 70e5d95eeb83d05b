package mongodb

import (
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"github.com/printhaus/shopapi/internal/repository"
)

// NewRepositories wires the MongoDB-backed repositories together. The cart
// repository lives in Redis and is attached by the caller.
func NewRepositories(db *mongo.Database, logger *zap.Logger) *repository.Repositories {
	return &repository.Repositories{
		Product:   NewProductRepository(db, logger),
		Settings:  NewSettingsRepository(db, logger),
		PrintSize: NewPrintSizeRepository(db, logger),
		Order:     NewOrderRepository(db, logger),
		User:      NewUserRepository(db, logger),
	}
}
