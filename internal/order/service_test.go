package order

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/luisferxd1/nexxo-business-sub001/internal/domain"
)

var testAddress = domain.Address{
	Label:      "home",
	Address:    "Av. Principal 123",
	District:   "Miraflores",
	Department: "Lima",
}

var testCustomer = domain.Identity{
	UID:   "u1",
	Email: "customer@example.com",
	Role:  domain.RoleCustomer,
}

func testLines() []domain.CartLine {
	return []domain.CartLine{
		{ProductID: "p1", Name: "Cake", Price: 10, Quantity: 2, BusinessID: "b1"},
		{ProductID: "p2", Name: "Juice", Price: 5, Quantity: 1, BusinessID: "b2"},
	}
}

func newTestService(
	orders *MockOrderRepository,
	notifications *MockNotificationRepository,
	users *MockUserRepository,
	pub *MockPublisher,
) *Service {
	return NewService(orders, notifications, users, pub, zerolog.Nop())
}

func TestPlaceOrder_EmptyCart(t *testing.T) {
	orders := &MockOrderRepository{}
	notifications := &MockNotificationRepository{}
	sut := newTestService(orders, notifications, &MockUserRepository{}, &MockPublisher{})

	_, err := sut.PlaceOrder(context.Background(), nil, testCustomer, &testAddress)

	assert.ErrorIs(t, err, ErrEmptyCart)
	assert.Nil(t, orders.CreatedOrder)
	assert.Empty(t, notifications.Created)
}

func TestPlaceOrder_NoAddress(t *testing.T) {
	orders := &MockOrderRepository{}
	notifications := &MockNotificationRepository{}
	sut := newTestService(orders, notifications, &MockUserRepository{}, &MockPublisher{})

	_, err := sut.PlaceOrder(context.Background(), testLines(), testCustomer, nil)

	assert.ErrorIs(t, err, ErrNoAddress)
	assert.Nil(t, orders.CreatedOrder)
	assert.Empty(t, notifications.Created)
}

func TestPlaceOrder_Success(t *testing.T) {
	orders := &MockOrderRepository{}
	notifications := &MockNotificationRepository{}
	users := &MockUserRepository{AdminList: []domain.User{{ID: "a1", Role: domain.RoleAdmin}}}
	pub := &MockPublisher{}
	sut := newTestService(orders, notifications, users, pub)

	orderID, err := sut.PlaceOrder(context.Background(), testLines(), testCustomer, &testAddress)

	require.NoError(t, err)
	assert.NotEmpty(t, orderID)

	created := orders.CreatedOrder
	require.NotNil(t, created)
	assert.Equal(t, "u1", created.CustomerID)
	assert.Equal(t, "customer@example.com", created.CustomerEmail)
	assert.Equal(t, domain.OrderStatusPending, created.Status)
	assert.ElementsMatch(t, []string{"b1", "b2"}, created.BusinessIDs)
	assert.InDelta(t, 25, created.Total, 1e-9)
	assert.Equal(t, testAddress, created.Address)
	assert.Len(t, created.Items, 2)

	// One notification per business plus one per admin.
	require.Len(t, notifications.Created, 3)
	kinds := map[domain.NotificationKind]int{}
	recipients := map[string]bool{}
	for _, n := range notifications.Created {
		kinds[n.Kind]++
		recipients[n.RecipientID] = true
		assert.False(t, n.Read)
		assert.Contains(t, n.Message, "customer@example.com")
	}
	assert.Equal(t, 2, kinds[domain.NotificationKindBusiness])
	assert.Equal(t, 1, kinds[domain.NotificationKindAdmin])
	assert.True(t, recipients["b1"] && recipients["b2"] && recipients["a1"])

	require.Len(t, pub.Published, 1)
	assert.Equal(t, orderID, pub.Published[0].ID)
}

func TestPlaceOrder_DuplicateBusinessCountedOnce(t *testing.T) {
	lines := []domain.CartLine{
		{ProductID: "p1", Price: 10, Quantity: 1, BusinessID: "b1"},
		{ProductID: "p2", Price: 20, Quantity: 1, BusinessID: "b1"},
	}
	orders := &MockOrderRepository{}
	notifications := &MockNotificationRepository{}
	sut := newTestService(orders, notifications, &MockUserRepository{}, &MockPublisher{})

	_, err := sut.PlaceOrder(context.Background(), lines, testCustomer, &testAddress)

	require.NoError(t, err)
	assert.Equal(t, []string{"b1"}, orders.CreatedOrder.BusinessIDs)
	require.Len(t, notifications.Created, 1)
	assert.Equal(t, "b1", notifications.Created[0].RecipientID)
}

func TestPlaceOrder_OrderWriteFails(t *testing.T) {
	orders := &MockOrderRepository{CreateErr: errStoreDown}
	notifications := &MockNotificationRepository{}
	pub := &MockPublisher{}
	sut := newTestService(orders, notifications, &MockUserRepository{}, pub)

	_, err := sut.PlaceOrder(context.Background(), testLines(), testCustomer, &testAddress)

	require.Error(t, err)
	assert.ErrorIs(t, err, errStoreDown)
	assert.Empty(t, notifications.Created)
	assert.Empty(t, pub.Published)
}

func TestPlaceOrder_NotificationFailureDoesNotFailOrder(t *testing.T) {
	orders := &MockOrderRepository{}
	notifications := &MockNotificationRepository{FailFor: map[string]error{"b1": errStoreDown}}
	users := &MockUserRepository{AdminList: []domain.User{{ID: "a1", Role: domain.RoleAdmin}}}
	sut := newTestService(orders, notifications, users, &MockPublisher{})

	orderID, err := sut.PlaceOrder(context.Background(), testLines(), testCustomer, &testAddress)

	require.NoError(t, err)
	assert.NotEmpty(t, orderID)

	// b1's notification failed; b2 and the admin still got theirs.
	require.Len(t, notifications.Created, 2)
	recipients := []string{notifications.Created[0].RecipientID, notifications.Created[1].RecipientID}
	assert.ElementsMatch(t, []string{"b2", "a1"}, recipients)
}

func TestPlaceOrder_AdminLookupFailureTolerated(t *testing.T) {
	orders := &MockOrderRepository{}
	notifications := &MockNotificationRepository{}
	users := &MockUserRepository{AdminsErr: errStoreDown}
	sut := newTestService(orders, notifications, users, &MockPublisher{})

	orderID, err := sut.PlaceOrder(context.Background(), testLines(), testCustomer, &testAddress)

	require.NoError(t, err)
	assert.NotEmpty(t, orderID)

	// Business notifications only.
	require.Len(t, notifications.Created, 2)
	for _, n := range notifications.Created {
		assert.Equal(t, domain.NotificationKindBusiness, n.Kind)
	}
}

func TestPlaceOrder_PublishFailureTolerated(t *testing.T) {
	orders := &MockOrderRepository{}
	sut := newTestService(orders, &MockNotificationRepository{}, &MockUserRepository{}, &MockPublisher{Err: errStoreDown})

	orderID, err := sut.PlaceOrder(context.Background(), testLines(), testCustomer, &testAddress)

	require.NoError(t, err)
	assert.NotEmpty(t, orderID)
	assert.NotNil(t, orders.CreatedOrder)
}

func TestPlaceOrder_SnapshotsCartLines(t *testing.T) {
	lines := testLines()
	orders := &MockOrderRepository{}
	sut := newTestService(orders, &MockNotificationRepository{}, &MockUserRepository{}, &MockPublisher{})

	_, err := sut.PlaceOrder(context.Background(), lines, testCustomer, &testAddress)
	require.NoError(t, err)

	// Mutating the caller's slice after checkout cannot change the order.
	lines[0].Quantity = 99
	assert.Equal(t, 2, orders.CreatedOrder.Items[0].Quantity)
}

func TestDistinctBusinessIDs_PreservesFirstSeenOrder(t *testing.T) {
	lines := []domain.CartLine{
		{BusinessID: "b2"},
		{BusinessID: "b1"},
		{BusinessID: "b2"},
		{BusinessID: "b3"},
	}

	assert.Equal(t, []string{"b2", "b1", "b3"}, distinctBusinessIDs(lines))
}
