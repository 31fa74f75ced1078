package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	"github.com/luisferxd1/nexxo-business-sub001/internal/domain"
)

type RouterConfig struct {
	RequestTimeout time.Duration
	Logger         zerolog.Logger
}

func NewRouter(
	cfg RouterConfig,
	cartHandler *CartHandler,
	catalogHandler *CatalogHandler,
	checkoutHandler *CheckoutHandler,
	notificationHandler *NotificationHandler,
) *chi.Mux {
	r := chi.NewRouter()
	encodeLog = cfg.Logger

	// Global middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(LoggerMiddleware(cfg.Logger))
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(cfg.RequestTimeout))
	r.Use(middleware.Compress(5))
	r.Use(IdentityMiddleware)

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	// API routes
	r.Route("/api/v1", func(r chi.Router) {
		// Public catalog
		r.Get("/products", catalogHandler.ListProducts)
		r.Get("/products/{id}", catalogHandler.GetProduct)
		r.Get("/products/{id}/similar", catalogHandler.GetSimilar)
		r.Get("/categories", catalogHandler.ListCategories)
		r.Get("/businesses/{id}", catalogHandler.GetBusiness)
		r.Get("/businesses/{id}/products", catalogHandler.ListBusinessProducts)

		// Session cart
		r.Route("/cart", func(r chi.Router) {
			r.Use(SessionMiddleware)
			r.Get("/", cartHandler.GetCart)
			r.Post("/items", cartHandler.AddItem)
			r.Put("/items/{product_id}", cartHandler.UpdateQuantity)
			r.Delete("/items/{product_id}", cartHandler.RemoveItem)
			r.Delete("/", cartHandler.ClearCart)
		})
		r.With(SessionMiddleware).Post("/session/end", cartHandler.EndSession)

		// Checkout and customer orders
		r.Group(func(r chi.Router) {
			r.Use(SessionMiddleware)
			r.Use(RequireIdentity)
			r.Post("/checkout", checkoutHandler.Checkout)
			r.Get("/orders", checkoutHandler.ListOrders)
		})

		// Business views
		r.Group(func(r chi.Router) {
			r.Use(RequireRole(domain.RoleBusiness))
			r.Get("/business/orders", checkoutHandler.ListBusinessOrders)
		})

		// Notifications for businesses and admins
		r.Group(func(r chi.Router) {
			r.Use(RequireRole(domain.RoleBusiness, domain.RoleAdmin))
			r.Get("/notifications", notificationHandler.List)
			r.Post("/notifications/{id}/read", notificationHandler.MarkRead)
		})
	})

	return r
}
