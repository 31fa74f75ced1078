package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/luisferxd1/nexxo-business-sub001/internal/cart"
	"github.com/luisferxd1/nexxo-business-sub001/internal/domain"
	"github.com/luisferxd1/nexxo-business-sub001/internal/order"
	"github.com/luisferxd1/nexxo-business-sub001/internal/repository"
)

type OrderService interface {
	PlaceOrder(ctx context.Context, lines []domain.CartLine, customer domain.Identity, address *domain.Address) (string, error)
	OrdersByCustomer(ctx context.Context, customerID string) ([]domain.Order, error)
	OrdersByBusiness(ctx context.Context, businessID string) ([]domain.Order, error)
}

type CheckoutHandler struct {
	orders   OrderService
	users    repository.UserRepository
	sessions *cart.Manager
	timeout  time.Duration
}

func NewCheckoutHandler(orders OrderService, users repository.UserRepository, sessions *cart.Manager, timeout time.Duration) *CheckoutHandler {
	return &CheckoutHandler{
		orders:   orders,
		users:    users,
		sessions: sessions,
		timeout:  timeout,
	}
}

type CheckoutRequestDTO struct {
	AddressIndex int `json:"address_index"`
}

type CheckoutResponseDTO struct {
	OrderID string `json:"order_id"`
}

// Checkout places an order from the current session cart. The cart is
// cleared only after the order is committed; a failed order leaves the cart
// untouched so the user can retry.
func (h *CheckoutHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	identity, _ := identityFromContext(r.Context())

	var req CheckoutRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}

	profile, err := h.users.User(ctx, identity.UID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			respondError(w, http.StatusNotFound, "not_found", "user profile not found")
			return
		}
		respondError(w, http.StatusBadGateway, "profile_unavailable", "failed to load user profile")
		return
	}

	// The address is selected by index into the profile and copied by value
	// into the order. An out-of-range index means no address is selected;
	// the orchestrator rejects it before any side effect.
	var address *domain.Address
	if req.AddressIndex >= 0 && req.AddressIndex < len(profile.Addresses) {
		selected := profile.Addresses[req.AddressIndex]
		address = &selected
	}

	store := h.sessions.Session(sessionIDFromContext(r.Context()))

	orderID, err := h.orders.PlaceOrder(ctx, store.Lines(), identity, address)
	if err != nil {
		switch {
		case errors.Is(err, order.ErrEmptyCart):
			respondError(w, http.StatusUnprocessableEntity, "empty_cart", "cart is empty")
		case errors.Is(err, order.ErrNoAddress):
			respondError(w, http.StatusUnprocessableEntity, "no_address", "no shipping address selected")
		default:
			respondError(w, http.StatusBadGateway, "order_failed", "failed to place order")
		}
		return
	}

	store.Clear()
	respondJSON(w, http.StatusCreated, CheckoutResponseDTO{OrderID: orderID})
}

func (h *CheckoutHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	identity, _ := identityFromContext(r.Context())

	orders, err := h.orders.OrdersByCustomer(ctx, identity.UID)
	if err != nil {
		respondError(w, http.StatusBadGateway, "orders_unavailable", "failed to load orders")
		return
	}

	if orders == nil {
		orders = []domain.Order{}
	}
	respondJSON(w, http.StatusOK, orders)
}

func (h *CheckoutHandler) ListBusinessOrders(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	identity, _ := identityFromContext(r.Context())

	orders, err := h.orders.OrdersByBusiness(ctx, identity.UID)
	if err != nil {
		respondError(w, http.StatusBadGateway, "orders_unavailable", "failed to load orders")
		return
	}

	if orders == nil {
		orders = []domain.Order{}
	}
	respondJSON(w, http.StatusOK, orders)
}
