package repository

import (
	"context"
	"errors"

	"github.com/luisferxd1/nexxo-business-sub001/internal/domain"
)

var (
	ErrProductNotFound      = errors.New("product not found")
	ErrUserNotFound         = errors.New("user not found")
	ErrOrderNotFound        = errors.New("order not found")
	ErrNotificationNotFound = errors.New("notification not found")
)

// ChangeStream is the subset of mongo.ChangeStream the catalog subscription
// consumes, kept narrow so tests can fake change delivery.
type ChangeStream interface {
	Next(ctx context.Context) bool
	Close(ctx context.Context) error
	Err() error
}

// ProductRepository defines the interface for product reads.
// Consumers define this interface, not the MongoDB implementation.
type ProductRepository interface {
	Products(ctx context.Context) ([]domain.Product, error)
	Product(ctx context.Context, id string) (*domain.Product, error)
	ProductsByBusiness(ctx context.Context, businessID string) ([]domain.Product, error)
	ProductsByCategory(ctx context.Context, category string) ([]domain.Product, error)
	Watch(ctx context.Context) (ChangeStream, error)
}

type CategoryRepository interface {
	Categories(ctx context.Context) ([]domain.Category, error)
}

type UserRepository interface {
	User(ctx context.Context, id string) (*domain.User, error)
	Admins(ctx context.Context) ([]domain.User, error)
}

type OrderRepository interface {
	CreateOrder(ctx context.Context, order *domain.Order) (string, error)
	Order(ctx context.Context, id string) (*domain.Order, error)
	OrdersByCustomer(ctx context.Context, customerID string) ([]domain.Order, error)
	OrdersByBusiness(ctx context.Context, businessID string) ([]domain.Order, error)
}

type NotificationRepository interface {
	CreateNotification(ctx context.Context, n *domain.Notification) error
	NotificationsByRecipient(ctx context.Context, recipientID string) ([]domain.Notification, error)
	MarkRead(ctx context.Context, id string) error
}
