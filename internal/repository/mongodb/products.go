package mongodb

import (
	"context"
	"sort"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	"github.com/printhaus/shopapi/internal/domain"
	"github.com/printhaus/shopapi/internal/repository"
	"github.com/printhaus/shopapi/pkg/errors"
)

type productRepository struct {
	col    *mongo.Collection
	logger *zap.Logger
}

// NewProductRepository creates a new product repository
func NewProductRepository(db *mongo.Database, logger *zap.Logger) *productRepository {
	return &productRepository{
		col:    db.Collection("products"),
		logger: logger,
	}
}

func (r *productRepository) Create(ctx context.Context, product *domain.Product) error {
	if product.ID.IsZero() {
		product.ID = primitive.NewObjectID()
	}
	if product.CreatedAt.IsZero() {
		product.CreatedAt = time.Now()
	}

	if _, err := r.col.InsertOne(ctx, product); err != nil {
		r.logger.Error("Failed to create product", zap.Error(err))
		return err
	}
	return nil
}

func (r *productRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Product, error) {
	var product domain.Product
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&product)
	if err == mongo.ErrNoDocuments {
		return nil, &errors.ErrNotFound{Resource: "product", ID: id.Hex()}
	}
	if err != nil {
		r.logger.Error("Failed to get product by ID", zap.Error(err))
		return nil, err
	}
	return &product, nil
}

func (r *productRepository) List(ctx context.Context, filter repository.ProductFilter) ([]*domain.Product, error) {
	query := bson.M{}
	if filter.Search != "" {
		query["$text"] = bson.M{"$search": filter.Search}
	}
	if filter.Category != "" && filter.Category != "All" {
		query["category"] = filter.Category
	}

	cur, err := r.col.Find(ctx, query, options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}))
	if err != nil {
		r.logger.Error("Failed to list products", zap.Error(err))
		return nil, err
	}
	defer cur.Close(ctx)

	var products []*domain.Product
	if err := cur.All(ctx, &products); err != nil {
		return nil, err
	}
	return products, nil
}

func (r *productRepository) Categories(ctx context.Context) ([]string, error) {
	raw, err := r.col.Distinct(ctx, "category", bson.M{"category": bson.M{"$ne": ""}})
	if err != nil {
		r.logger.Error("Failed to list categories", zap.Error(err))
		return nil, err
	}

	categories := make([]string, 0, len(raw))
	for _, v := range raw {
		if s, ok := v.(string); ok && s != "" {
			categories = append(categories, s)
		}
	}
	sort.Strings(categories)
	return categories, nil
}

func (r *productRepository) Update(ctx context.Context, product *domain.Product) error {
	res, err := r.col.ReplaceOne(ctx, bson.M{"_id": product.ID}, product)
	if err != nil {
		r.logger.Error("Failed to update product", zap.Error(err))
		return err
	}
	if res.MatchedCount == 0 {
		return &errors.ErrNotFound{Resource: "product", ID: product.ID.Hex()}
	}
	return nil
}

func (r *productRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		r.logger.Error("Failed to delete product", zap.Error(err))
		return err
	}
	if res.DeletedCount == 0 {
		return &errors.ErrNotFound{Resource: "product", ID: id.Hex()}
	}
	return nil
}

func (r *productRepository) DecrementStock(ctx context.Context, id primitive.ObjectID, size string, qty int) error {
	var res *mongo.UpdateResult
	var err error

	if size == "" {
		res, err = r.col.UpdateOne(ctx,
			bson.M{"_id": id},
			bson.M{"$inc": bson.M{"quantity": -qty}},
		)
	} else {
		res, err = r.col.UpdateOne(ctx,
			bson.M{"_id": id},
			bson.M{"$inc": bson.M{"variants.$[v].quantity": -qty}},
			options.Update().SetArrayFilters(options.ArrayFilters{
				Filters: []interface{}{bson.M{"v.size": size}},
			}),
		)
	}

	if err != nil {
		r.logger.Error("Failed to decrement stock",
			zap.Error(err),
			zap.String("product_id", id.Hex()),
			zap.String("size", size),
		)
		return err
	}
	if res.MatchedCount == 0 {
		return &errors.ErrNotFound{Resource: "product", ID: id.Hex()}
	}
	return nil
}
