package mongodb

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	"github.com/printhaus/shopapi/internal/domain"
	"github.com/printhaus/shopapi/pkg/errors"
)

type printSizeRepository struct {
	col    *mongo.Collection
	logger *zap.Logger
}

// NewPrintSizeRepository creates a new print size repository
func NewPrintSizeRepository(db *mongo.Database, logger *zap.Logger) *printSizeRepository {
	return &printSizeRepository{
		col:    db.Collection("print_sizes"),
		logger: logger,
	}
}

func (r *printSizeRepository) List(ctx context.Context) ([]*domain.PrintSize, error) {
	cur, err := r.col.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "order", Value: 1}}))
	if err != nil {
		r.logger.Error("Failed to list print sizes", zap.Error(err))
		return nil, err
	}
	defer cur.Close(ctx)

	var sizes []*domain.PrintSize
	if err := cur.All(ctx, &sizes); err != nil {
		return nil, err
	}
	return sizes, nil
}

func (r *printSizeRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.PrintSize, error) {
	var size domain.PrintSize
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&size)
	if err == mongo.ErrNoDocuments {
		return nil, &errors.ErrNotFound{Resource: "print_size", ID: id.Hex()}
	}
	if err != nil {
		r.logger.Error("Failed to get print size by ID", zap.Error(err))
		return nil, err
	}
	return &size, nil
}

func (r *printSizeRepository) Create(ctx context.Context, size *domain.PrintSize) error {
	if size.ID.IsZero() {
		size.ID = primitive.NewObjectID()
	}
	if size.CreatedAt.IsZero() {
		size.CreatedAt = time.Now()
	}

	if _, err := r.col.InsertOne(ctx, size); err != nil {
		r.logger.Error("Failed to create print size", zap.Error(err))
		return err
	}
	return nil
}

func (r *printSizeRepository) Update(ctx context.Context, size *domain.PrintSize) error {
	res, err := r.col.ReplaceOne(ctx, bson.M{"_id": size.ID}, size)
	if err != nil {
		r.logger.Error("Failed to update print size", zap.Error(err))
		return err
	}
	if res.MatchedCount == 0 {
		return &errors.ErrNotFound{Resource: "print_size", ID: size.ID.Hex()}
	}
	return nil
}

func (r *printSizeRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		r.logger.Error("Failed to delete print size", zap.Error(err))
		return err
	}
	if res.DeletedCount == 0 {
		return &errors.ErrNotFound{Resource: "print_size", ID: id.Hex()}
	}
	return nil
}
