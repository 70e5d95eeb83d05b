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

type orderRepository struct {
	col    *mongo.Collection
	logger *zap.Logger
}

// NewOrderRepository creates a new order repository
func NewOrderRepository(db *mongo.Database, logger *zap.Logger) *orderRepository {
	return &orderRepository{
		col:    db.Collection("orders"),
		logger: logger,
	}
}

func (r *orderRepository) Create(ctx context.Context, order *domain.Order) error {
	if order.ID.IsZero() {
		order.ID = primitive.NewObjectID()
	}
	if order.CreatedAt.IsZero() {
		order.CreatedAt = time.Now()
	}

	if _, err := r.col.InsertOne(ctx, order); err != nil {
		r.logger.Error("Failed to create order", zap.Error(err))
		return err
	}
	return nil
}

func (r *orderRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Order, error) {
	var order domain.Order
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&order)
	if err == mongo.ErrNoDocuments {
		return nil, &errors.ErrNotFound{Resource: "order", ID: id.Hex()}
	}
	if err != nil {
		r.logger.Error("Failed to get order by ID", zap.Error(err))
		return nil, err
	}
	return &order, nil
}

func (r *orderRepository) GetByPaymentID(ctx context.Context, paymentID string) (*domain.Order, error) {
	var order domain.Order
	err := r.col.FindOne(ctx, bson.M{"paymentId": paymentID}).Decode(&order)
	if err == mongo.ErrNoDocuments {
		return nil, &errors.ErrNotFound{Resource: "order", ID: paymentID}
	}
	if err != nil {
		r.logger.Error("Failed to get order by payment ID", zap.Error(err))
		return nil, err
	}
	return &order, nil
}

func (r *orderRepository) ListByEmail(ctx context.Context, email string) ([]*domain.Order, error) {
	cur, err := r.col.Find(ctx, bson.M{"customerEmail": email},
		options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}))
	if err != nil {
		r.logger.Error("Failed to list orders by email", zap.Error(err))
		return nil, err
	}
	defer cur.Close(ctx)

	var orders []*domain.Order
	if err := cur.All(ctx, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *orderRepository) List(ctx context.Context, limit, offset int) ([]*domain.Order, error) {
	cur, err := r.col.Find(ctx, bson.M{}, options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetLimit(int64(limit)).
		SetSkip(int64(offset)))
	if err != nil {
		r.logger.Error("Failed to list orders", zap.Error(err))
		return nil, err
	}
	defer cur.Close(ctx)

	var orders []*domain.Order
	if err := cur.All(ctx, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *orderRepository) UpdateStatus(ctx context.Context, id primitive.ObjectID, status domain.OrderStatus) error {
	res, err := r.col.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"orderStatus": status}},
	)
	if err != nil {
		r.logger.Error("Failed to update order status", zap.Error(err))
		return err
	}
	if res.MatchedCount == 0 {
		return &errors.ErrNotFound{Resource: "order", ID: id.Hex()}
	}
	return nil
}
