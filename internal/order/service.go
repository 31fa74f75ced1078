package order

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/sony/gobreaker/v2"

	"github.com/luisferxd1/nexxo-business-sub001/internal/domain"
	"github.com/luisferxd1/nexxo-business-sub001/internal/repository"
)

// EventPublisher emits order lifecycle events for downstream consumers.
// Publishing is best effort; a failure never fails the order.
type EventPublisher interface {
	OrderCreated(ctx context.Context, order *domain.Order) error
}

type Service struct {
	orders        repository.OrderRepository
	notifications repository.NotificationRepository
	users         repository.UserRepository
	publisher     EventPublisher
	breaker       *gobreaker.CircuitBreaker[any]
	log           zerolog.Logger
}

func NewService(
	orders repository.OrderRepository,
	notifications repository.NotificationRepository,
	users repository.UserRepository,
	publisher EventPublisher,
	log zerolog.Logger,
) *Service {
	breaker := gobreaker.NewCircuitBreaker[any](gobreaker.Settings{
		Name:        "notification-writes",
		MaxRequests: 3,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures > 5
		},
	})

	return &Service{
		orders:        orders,
		notifications: notifications,
		users:         users,
		publisher:     publisher,
		breaker:       breaker,
		log:           log,
	}
}

// fanoutResult captures the outcome of one notification write. Failures are
// logged, never surfaced: the order is already committed by the time any
// notification is attempted.
type fanoutResult struct {
	recipientID string
	kind        domain.NotificationKind
	err         error
}

// PlaceOrder validates the cart snapshot, persists the order, then fans out
// best-effort notifications to each affected business and every admin
// account. Order persistence success is independent of notification
// success. The caller clears the session cart only after a nil error.
func (s *Service) PlaceOrder(ctx context.Context, lines []domain.CartLine, customer domain.Identity, address *domain.Address) (string, error) {
	if len(lines) == 0 {
		return "", ErrEmptyCart
	}
	if address == nil {
		return "", ErrNoAddress
	}

	items := make([]domain.CartLine, len(lines))
	copy(items, lines)

	order := &domain.Order{
		ID:            uuid.NewString(),
		CustomerID:    customer.UID,
		CustomerEmail: customer.Email,
		CreatedAt:     time.Now().UTC(),
		Status:        domain.OrderStatusPending,
		BusinessIDs:   distinctBusinessIDs(items),
		Items:         items,
		Total:         orderTotal(items),
		Address:       *address,
	}

	orderID, err := s.orders.CreateOrder(ctx, order)
	if err != nil {
		return "", fmt.Errorf("failed to create order: %w", err)
	}

	results := s.fanOut(ctx, order)
	s.logFanout(orderID, results)

	if errPublish := s.publisher.OrderCreated(ctx, order); errPublish != nil {
		s.log.Warn().Err(errPublish).Str("order_id", orderID).Msg("order event publish failed")
	}

	return orderID, nil
}

func (s *Service) Order(ctx context.Context, id string) (*domain.Order, error) {
	return s.orders.Order(ctx, id)
}

func (s *Service) OrdersByCustomer(ctx context.Context, customerID string) ([]domain.Order, error) {
	return s.orders.OrdersByCustomer(ctx, customerID)
}

func (s *Service) OrdersByBusiness(ctx context.Context, businessID string) ([]domain.Order, error) {
	return s.orders.OrdersByBusiness(ctx, businessID)
}

// fanOut writes one notification per affected business, then one per admin
// account. Each write is independent; a failed write is recorded and the
// loop moves on. A failed admin lookup degrades to an empty admin set.
func (s *Service) fanOut(ctx context.Context, order *domain.Order) []fanoutResult {
	results := make([]fanoutResult, 0, len(order.BusinessIDs))

	for _, businessID := range order.BusinessIDs {
		err := s.notify(ctx, &domain.Notification{
			RecipientID: businessID,
			Kind:        domain.NotificationKindBusiness,
			Message:     businessMessage(order.ID, order.CustomerEmail),
			CreatedAt:   time.Now().UTC(),
		})
		results = append(results, fanoutResult{businessID, domain.NotificationKindBusiness, err})
	}

	admins, err := s.users.Admins(ctx)
	if err != nil {
		s.log.Warn().Err(err).Str("order_id", order.ID).Msg("admin lookup failed, skipping admin notifications")
		admins = nil
	}

	for _, admin := range admins {
		err := s.notify(ctx, &domain.Notification{
			RecipientID: admin.ID,
			Kind:        domain.NotificationKindAdmin,
			Message:     adminMessage(order.ID, order.CustomerEmail),
			CreatedAt:   time.Now().UTC(),
		})
		results = append(results, fanoutResult{admin.ID, domain.NotificationKindAdmin, err})
	}

	return results
}

func (s *Service) notify(ctx context.Context, n *domain.Notification) error {
	_, err := s.breaker.Execute(func() (any, error) {
		return nil, s.notifications.CreateNotification(ctx, n)
	})
	return err
}

func (s *Service) logFanout(orderID string, results []fanoutResult) {
	failed := 0
	for _, r := range results {
		if r.err != nil {
			failed++
			s.log.Error().Err(r.err).
				Str("order_id", orderID).
				Str("recipient_id", r.recipientID).
				Str("kind", string(r.kind)).
				Msg("notification write failed")
		}
	}
	s.log.Info().
		Str("order_id", orderID).
		Int("notified", len(results)-failed).
		Int("failed", failed).
		Msg("order notification fan-out finished")
}

// distinctBusinessIDs preserves first-seen order.
func distinctBusinessIDs(lines []domain.CartLine) []string {
	seen := make(map[string]struct{}, len(lines))
	ids := make([]string, 0, len(lines))
	for _, line := range lines {
		if _, ok := seen[line.BusinessID]; ok {
			continue
		}
		seen[line.BusinessID] = struct{}{}
		ids = append(ids, line.BusinessID)
	}
	return ids
}

func orderTotal(lines []domain.CartLine) float64 {
	var total float64
	for _, line := range lines {
		total += line.Subtotal()
	}
	return total
}

func businessMessage(orderID, customerEmail string) string {
	return fmt.Sprintf("You have a new order %s from %s", shortID(orderID), customerEmail)
}

func adminMessage(orderID, customerEmail string) string {
	return fmt.Sprintf("Order %s was placed by %s", shortID(orderID), customerEmail)
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
