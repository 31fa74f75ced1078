package order

import (
	"context"
	"errors"

	"github.com/luisferxd1/nexxo-business-sub001/internal/domain"
	"github.com/luisferxd1/nexxo-business-sub001/internal/repository"
)

// MockOrderRepository implements repository.OrderRepository for testing
type MockOrderRepository struct {
	CreatedOrder *domain.Order // Captures the order passed to CreateOrder
	CreateErr    error
	Orders       []domain.Order
	FindErr      error
}

func (m *MockOrderRepository) CreateOrder(_ context.Context, order *domain.Order) (string, error) {
	if m.CreateErr != nil {
		return "", m.CreateErr
	}
	m.CreatedOrder = order
	return order.ID, nil
}

func (m *MockOrderRepository) Order(_ context.Context, id string) (*domain.Order, error) {
	for i := range m.Orders {
		if m.Orders[i].ID == id {
			return &m.Orders[i], nil
		}
	}
	return nil, repository.ErrOrderNotFound
}

func (m *MockOrderRepository) OrdersByCustomer(_ context.Context, customerID string) ([]domain.Order, error) {
	if m.FindErr != nil {
		return nil, m.FindErr
	}
	var out []domain.Order
	for _, o := range m.Orders {
		if o.CustomerID == customerID {
			out = append(out, o)
		}
	}
	return out, nil
}

func (m *MockOrderRepository) OrdersByBusiness(_ context.Context, businessID string) ([]domain.Order, error) {
	if m.FindErr != nil {
		return nil, m.FindErr
	}
	var out []domain.Order
	for _, o := range m.Orders {
		for _, id := range o.BusinessIDs {
			if id == businessID {
				out = append(out, o)
				break
			}
		}
	}
	return out, nil
}

// MockNotificationRepository captures created notifications and can fail
// selectively per recipient.
type MockNotificationRepository struct {
	Created    []*domain.Notification
	FailFor    map[string]error // recipientID -> error
	CreateErr  error
	MarkedRead []string
}

func (m *MockNotificationRepository) CreateNotification(_ context.Context, n *domain.Notification) error {
	if m.CreateErr != nil {
		return m.CreateErr
	}
	if err, ok := m.FailFor[n.RecipientID]; ok {
		return err
	}
	m.Created = append(m.Created, n)
	return nil
}

func (m *MockNotificationRepository) NotificationsByRecipient(_ context.Context, recipientID string) ([]domain.Notification, error) {
	var out []domain.Notification
	for _, n := range m.Created {
		if n.RecipientID == recipientID {
			out = append(out, *n)
		}
	}
	return out, nil
}

func (m *MockNotificationRepository) MarkRead(_ context.Context, id string) error {
	m.MarkedRead = append(m.MarkedRead, id)
	return nil
}

// MockUserRepository implements repository.UserRepository for testing
type MockUserRepository struct {
	Users     map[string]*domain.User
	AdminList []domain.User
	AdminsErr error
}

func (m *MockUserRepository) User(_ context.Context, id string) (*domain.User, error) {
	user, ok := m.Users[id]
	if !ok {
		return nil, repository.ErrUserNotFound
	}
	return user, nil
}

func (m *MockUserRepository) Admins(context.Context) ([]domain.User, error) {
	if m.AdminsErr != nil {
		return nil, m.AdminsErr
	}
	return m.AdminList, nil
}

// MockPublisher implements EventPublisher for testing
type MockPublisher struct {
	Published []*domain.Order
	Err       error
}

func (m *MockPublisher) OrderCreated(_ context.Context, order *domain.Order) error {
	if m.Err != nil {
		return m.Err
	}
	m.Published = append(m.Published, order)
	return nil
}

var errStoreDown = errors.New("document store unavailable")
