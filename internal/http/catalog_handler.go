package http

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/luisferxd1/nexxo-business-sub001/internal/catalog"
	"github.com/luisferxd1/nexxo-business-sub001/internal/domain"
	"github.com/luisferxd1/nexxo-business-sub001/internal/repository"
)

type CatalogService interface {
	Products(ctx context.Context) ([]domain.Product, error)
	Product(ctx context.Context, id string) (*domain.Product, error)
	ProductsByBusiness(ctx context.Context, businessID string) ([]domain.Product, error)
	ProductsByCategory(ctx context.Context, category string) ([]domain.Product, error)
	Categories(ctx context.Context) ([]domain.Category, error)
	Business(ctx context.Context, id string) (*domain.User, error)
	Similar(ctx context.Context, productID string) ([]domain.Product, error)
}

type CatalogHandler struct {
	catalog CatalogService
	timeout time.Duration
}

func NewCatalogHandler(service CatalogService, timeout time.Duration) *CatalogHandler {
	return &CatalogHandler{
		catalog: service,
		timeout: timeout,
	}
}

func (h *CatalogHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	var (
		products []domain.Product
		err      error
	)
	if category := r.URL.Query().Get("category"); category != "" {
		products, err = h.catalog.ProductsByCategory(ctx, category)
	} else {
		products, err = h.catalog.Products(ctx)
	}
	if err != nil {
		respondError(w, http.StatusBadGateway, "catalog_unavailable", "failed to load products")
		return
	}

	if products == nil {
		products = []domain.Product{}
	}
	respondJSON(w, http.StatusOK, products)
}

func (h *CatalogHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	product, err := h.catalog.Product(ctx, chi.URLParam(r, "id"))
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			respondError(w, http.StatusNotFound, "not_found", "product not found")
			return
		}
		respondError(w, http.StatusBadGateway, "catalog_unavailable", "failed to load product")
		return
	}

	respondJSON(w, http.StatusOK, product)
}

func (h *CatalogHandler) GetSimilar(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	similar, err := h.catalog.Similar(ctx, chi.URLParam(r, "id"))
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			respondError(w, http.StatusNotFound, "not_found", "product not found")
			return
		}
		respondError(w, http.StatusBadGateway, "catalog_unavailable", "failed to load similar products")
		return
	}

	if similar == nil {
		similar = []domain.Product{}
	}
	respondJSON(w, http.StatusOK, similar)
}

func (h *CatalogHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	categories, err := h.catalog.Categories(ctx)
	if err != nil {
		respondError(w, http.StatusBadGateway, "catalog_unavailable", "failed to load categories")
		return
	}

	if categories == nil {
		categories = []domain.Category{}
	}
	respondJSON(w, http.StatusOK, categories)
}

func (h *CatalogHandler) GetBusiness(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	business, err := h.catalog.Business(ctx, chi.URLParam(r, "id"))
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) || errors.Is(err, catalog.ErrNotABusiness) {
			respondError(w, http.StatusNotFound, "not_found", "business not found")
			return
		}
		respondError(w, http.StatusBadGateway, "catalog_unavailable", "failed to load business")
		return
	}

	respondJSON(w, http.StatusOK, business)
}

func (h *CatalogHandler) ListBusinessProducts(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	products, err := h.catalog.ProductsByBusiness(ctx, chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, http.StatusBadGateway, "catalog_unavailable", "failed to load products")
		return
	}

	if products == nil {
		products = []domain.Product{}
	}
	respondJSON(w, http.StatusOK, products)
}
