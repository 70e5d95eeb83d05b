package mongodb

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"github.com/printhaus/shopapi/internal/domain"
	"github.com/printhaus/shopapi/pkg/errors"
)

type userRepository struct {
	col    *mongo.Collection
	logger *zap.Logger
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *mongo.Database, logger *zap.Logger) *userRepository {
	return &userRepository{
		col:    db.Collection("users"),
		logger: logger,
	}
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	var user domain.User
	err := r.col.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if err == mongo.ErrNoDocuments {
		return nil, &errors.ErrNotFound{Resource: "user", ID: email}
	}
	if err != nil {
		r.logger.Error("Failed to get user by email", zap.Error(err))
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.User, error) {
	var user domain.User
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&user)
	if err == mongo.ErrNoDocuments {
		return nil, &errors.ErrNotFound{Resource: "user", ID: id.Hex()}
	}
	if err != nil {
		r.logger.Error("Failed to get user by ID", zap.Error(err))
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) Create(ctx context.Context, user *domain.User) error {
	if user.ID.IsZero() {
		user.ID = primitive.NewObjectID()
	}
	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now()
	}

	if _, err := r.col.InsertOne(ctx, user); err != nil {
		r.logger.Error("Failed to create user", zap.Error(err))
		return err
	}
	return nil
}

func (r *userRepository) Update(ctx context.Context, user *domain.User) error {
	res, err := r.col.ReplaceOne(ctx, bson.M{"_id": user.ID}, user)
	if err != nil {
		r.logger.Error("Failed to update user", zap.Error(err))
		return err
	}
	if res.MatchedCount == 0 {
		return &errors.ErrNotFound{Resource: "user", ID: user.ID.Hex()}
	}
	return nil
}

func (r *userRepository) DeleteByEmail(ctx context.Context, email string) error {
	res, err := r.col.DeleteOne(ctx, bson.M{"email": email})
	if err != nil {
		r.logger.Error("Failed to delete user", zap.Error(err))
		return err
	}
	if res.DeletedCount == 0 {
		return &errors.ErrNotFound{Resource: "user", ID: email}
	}
	return nil
}
