package mongodb

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"github.com/printhaus/shopapi/internal/domain"
)

type settingsRepository struct {
	col    *mongo.Collection
	logger *zap.Logger
}

// NewSettingsRepository creates a new settings repository
func NewSettingsRepository(db *mongo.Database, logger *zap.Logger) *settingsRepository {
	return &settingsRepository{
		col:    db.Collection("settings"),
		logger: logger,
	}
}

// Get returns the singleton settings record, creating it with defaults when
// the shop has never been configured.
func (r *settingsRepository) Get(ctx context.Context) (*domain.Settings, error) {
	var settings domain.Settings
	err := r.col.FindOne(ctx, bson.M{}).Decode(&settings)
	if err == mongo.ErrNoDocuments {
		settings = defaultSettings()
		if _, insErr := r.col.InsertOne(ctx, &settings); insErr != nil {
			r.logger.Error("Failed to create default settings", zap.Error(insErr))
			return nil, insErr
		}
		return &settings, nil
	}
	if err != nil {
		r.logger.Error("Failed to get settings", zap.Error(err))
		return nil, err
	}
	return &settings, nil
}

func (r *settingsRepository) Save(ctx context.Context, settings *domain.Settings) error {
	settings.UpdatedAt = time.Now()
	_, err := r.col.ReplaceOne(ctx, bson.M{"_id": settings.ID}, settings)
	if err != nil {
		r.logger.Error("Failed to save settings", zap.Error(err))
		return err
	}
	return nil
}

func defaultSettings() domain.Settings {
	return domain.Settings{
		ID:         primitive.NewObjectID(),
		ShopName:   "Our Store",
		FooterText: "© 2024. All rights reserved.",
		UpdatedAt:  time.Now(),
	}
}
