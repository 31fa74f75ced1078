package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/luisferxd1/nexxo-business-sub001/internal/cart"
	"github.com/luisferxd1/nexxo-business-sub001/internal/domain"
	"github.com/luisferxd1/nexxo-business-sub001/internal/repository"
)

// ProductReader is the slice of the catalog the cart handler needs.
// Consumers define this interface, not the catalog implementation.
type ProductReader interface {
	Product(ctx context.Context, id string) (*domain.Product, error)
}

type CartHandler struct {
	sessions *cart.Manager
	products ProductReader
	timeout  time.Duration
}

func NewCartHandler(sessions *cart.Manager, products ProductReader, timeout time.Duration) *CartHandler {
	return &CartHandler{
		sessions: sessions,
		products: products,
		timeout:  timeout,
	}
}

type AddItemRequestDTO struct {
	ProductID string `json:"product_id"`
}

type UpdateQuantityRequestDTO struct {
	Quantity int `json:"quantity"`
}

type CartResponseDTO struct {
	Items []domain.CartLine `json:"items"`
	Total float64           `json:"total"`
	Count int               `json:"count"`
}

func (h *CartHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	store := h.sessions.Session(sessionIDFromContext(r.Context()))
	respondJSON(w, http.StatusOK, cartView(store))
}

func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	var req AddItemRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}
	if req.ProductID == "" {
		respondError(w, http.StatusBadRequest, "invalid_product_id", "product_id is required")
		return
	}

	product, err := h.products.Product(ctx, req.ProductID)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			respondError(w, http.StatusNotFound, "not_found", "product not found")
			return
		}
		respondError(w, http.StatusBadGateway, "catalog_unavailable", "failed to load product")
		return
	}

	store := h.sessions.Session(sessionIDFromContext(r.Context()))
	store.AddOrIncrement(*product)

	respondJSON(w, http.StatusCreated, cartView(store))
}

func (h *CartHandler) UpdateQuantity(w http.ResponseWriter, r *http.Request) {
	productID := chi.URLParam(r, "product_id")

	var req UpdateQuantityRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}

	store := h.sessions.Session(sessionIDFromContext(r.Context()))
	if !store.SetQuantity(productID, req.Quantity) {
		respondError(w, http.StatusNotFound, "not_found", "item not in cart")
		return
	}

	respondJSON(w, http.StatusOK, cartView(store))
}

func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	productID := chi.URLParam(r, "product_id")

	store := h.sessions.Session(sessionIDFromContext(r.Context()))
	if !store.Remove(productID) {
		respondError(w, http.StatusNotFound, "not_found", "item not in cart")
		return
	}

	respondJSON(w, http.StatusOK, cartView(store))
}

func (h *CartHandler) ClearCart(w http.ResponseWriter, r *http.Request) {
	store := h.sessions.Session(sessionIDFromContext(r.Context()))
	store.Clear()
	respondJSON(w, http.StatusOK, cartView(store))
}

// EndSession destroys the session cart at logout.
func (h *CartHandler) EndSession(w http.ResponseWriter, r *http.Request) {
	h.sessions.End(sessionIDFromContext(r.Context()))
	respondJSON(w, http.StatusOK, map[string]string{"status": "session ended"})
}

func cartView(store *cart.Store) CartResponseDTO {
	lines := store.Lines()
	if lines == nil {
		lines = []domain.CartLine{}
	}
	return CartResponseDTO{
		Items: lines,
		Total: store.DisplayTotal(),
		Count: store.Count(),
	}
}
