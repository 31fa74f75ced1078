package repository

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/luisferxd1/nexxo-business-sub001/internal/domain"
)

type mongoProductRepository struct {
	collection *mongo.Collection
}

func NewMongoProductRepository(db *mongo.Database) ProductRepository {
	return &mongoProductRepository{
		collection: db.Collection("products"),
	}
}

func (m *mongoProductRepository) Products(ctx context.Context) ([]domain.Product, error) {
	return m.find(ctx, bson.M{})
}

func (m *mongoProductRepository) Product(ctx context.Context, id string) (*domain.Product, error) {
	var product domain.Product

	filter := bson.M{"_id": id}
	err := m.collection.FindOne(ctx, filter).Decode(&product)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrProductNotFound
		}
		return nil, fmt.Errorf("failed to get product: %w", err)
	}

	return &product, nil
}

func (m *mongoProductRepository) ProductsByBusiness(ctx context.Context, businessID string) ([]domain.Product, error) {
	return m.find(ctx, bson.M{"businessId": businessID})
}

func (m *mongoProductRepository) ProductsByCategory(ctx context.Context, category string) ([]domain.Product, error) {
	return m.find(ctx, bson.M{"category": category})
}

func (m *mongoProductRepository) find(ctx context.Context, filter bson.M) ([]domain.Product, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := m.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to query products: %w", err)
	}
	defer cursor.Close(ctx)

	var products []domain.Product
	if err := cursor.All(ctx, &products); err != nil {
		return nil, fmt.Errorf("failed to decode products: %w", err)
	}

	return products, nil
}

// Watch opens a change stream over the products collection. The caller owns
// the stream and must close it.
func (m *mongoProductRepository) Watch(ctx context.Context) (ChangeStream, error) {
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.M{
			"operationType": bson.M{"$in": bson.A{"insert", "update", "replace", "delete"}},
		}}},
	}

	stream, err := m.collection.Watch(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("failed to watch products: %w", err)
	}

	return stream, nil
}

func (m *mongoProductRepository) CreateIndexes(ctx context.Context) error {
	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "businessId", Value: 1}}},
		{Keys: bson.D{{Key: "category", Value: 1}}},
	}

	_, err := m.collection.Indexes().CreateMany(ctx, indexes)
	if err != nil {
		return fmt.Errorf("failed to create product indexes: %w", err)
	}

	return nil
}
