package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/luisferxd1/nexxo-business-sub001/internal/domain"
)

type mongoOrderRepository struct {
	collection *mongo.Collection
}

func NewMongoOrderRepository(db *mongo.Database) OrderRepository {
	return &mongoOrderRepository{
		collection: db.Collection("orders"),
	}
}

func (m *mongoOrderRepository) CreateOrder(ctx context.Context, order *domain.Order) (string, error) {
	if order.ID == "" {
		order.ID = uuid.NewString()
	}

	if _, err := m.collection.InsertOne(ctx, order); err != nil {
		return "", fmt.Errorf("failed to insert order: %w", err)
	}

	return order.ID, nil
}

func (m *mongoOrderRepository) Order(ctx context.Context, id string) (*domain.Order, error) {
	var order domain.Order

	filter := bson.M{"_id": id}
	err := m.collection.FindOne(ctx, filter).Decode(&order)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrOrderNotFound
		}
		return nil, fmt.Errorf("failed to get order: %w", err)
	}

	return &order, nil
}

func (m *mongoOrderRepository) OrdersByCustomer(ctx context.Context, customerID string) ([]domain.Order, error) {
	return m.find(ctx, bson.M{"customerId": customerID})
}

// OrdersByBusiness matches orders whose businessIds array contains the
// given id (Mongo equality on an array field matches elements).
func (m *mongoOrderRepository) OrdersByBusiness(ctx context.Context, businessID string) ([]domain.Order, error) {
	return m.find(ctx, bson.M{"businessIds": businessID})
}

func (m *mongoOrderRepository) find(ctx context.Context, filter bson.M) ([]domain.Order, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := m.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to query orders: %w", err)
	}
	defer cursor.Close(ctx)

	var orders []domain.Order
	if err := cursor.All(ctx, &orders); err != nil {
		return nil, fmt.Errorf("failed to decode orders: %w", err)
	}

	return orders, nil
}

func (m *mongoOrderRepository) CreateIndexes(ctx context.Context) error {
	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "customerId", Value: 1}, {Key: "createdAt", Value: -1}}},
		{Keys: bson.D{{Key: "businessIds", Value: 1}, {Key: "createdAt", Value: -1}}},
	}

	_, err := m.collection.Indexes().CreateMany(ctx, indexes)
	if err != nil {
		return fmt.Errorf("failed to create order indexes: %w", err)
	}

	return nil
}
