package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	"golang.org/x/sync/singleflight"

	"github.com/luisferxd1/nexxo-business-sub001/internal/cache"
	"github.com/luisferxd1/nexxo-business-sub001/internal/domain"
	"github.com/luisferxd1/nexxo-business-sub001/internal/repository"
)

// ErrNotABusiness is returned when a business lookup resolves to a user
// document without the business role.
var ErrNotABusiness = errors.New("user is not a business")

type Service struct {
	products   repository.ProductRepository
	categories repository.CategoryRepository
	users      repository.UserRepository
	cache      cache.CatalogCache
	log        zerolog.Logger
	sfg        singleflight.Group // Prevents cache stampede
}

func NewService(
	products repository.ProductRepository,
	categories repository.CategoryRepository,
	users repository.UserRepository,
	catalogCache cache.CatalogCache,
	log zerolog.Logger,
) *Service {
	return &Service{
		products:   products,
		categories: categories,
		users:      users,
		cache:      catalogCache,
		log:        log,
	}
}

// Products returns the full catalog through the cache. Cache failures are
// logged and the read falls through to the repository.
func (s *Service) Products(ctx context.Context) ([]domain.Product, error) {
	v, err, _ := s.sfg.Do(productsFlightKey, func() (interface{}, error) {
		products, err := s.cache.GetProducts(ctx)
		if err == nil {
			return products, nil
		}

		if !errors.Is(err, cache.ErrCacheMiss) {
			s.log.Warn().Err(err).Msg("catalog cache get failed")
		}

		products, err = s.products.Products(ctx)
		if err != nil {
			return nil, err
		}

		go func() {
			if errSet := s.cache.SetProducts(context.Background(), products); errSet != nil {
				s.log.Warn().Err(errSet).Msg("catalog cache set failed")
			}
		}()

		return products, nil
	})

	if err != nil {
		return nil, err
	}

	return v.([]domain.Product), nil
}

const productsFlightKey = "catalog:products"

func (s *Service) Product(ctx context.Context, id string) (*domain.Product, error) {
	return s.products.Product(ctx, id)
}

func (s *Service) ProductsByBusiness(ctx context.Context, businessID string) ([]domain.Product, error) {
	return s.products.ProductsByBusiness(ctx, businessID)
}

func (s *Service) ProductsByCategory(ctx context.Context, category string) ([]domain.Product, error) {
	return s.products.ProductsByCategory(ctx, category)
}

func (s *Service) Categories(ctx context.Context) ([]domain.Category, error) {
	return s.categories.Categories(ctx)
}

// Business resolves a business profile from the users collection.
func (s *Service) Business(ctx context.Context, id string) (*domain.User, error) {
	user, err := s.users.User(ctx, id)
	if err != nil {
		return nil, err
	}
	if user.Role != domain.RoleBusiness {
		return nil, ErrNotABusiness
	}
	return user, nil
}

// Similar returns up to 4 same-category products sharing a keyword with the
// given product.
func (s *Service) Similar(ctx context.Context, productID string) ([]domain.Product, error) {
	target, err := s.products.Product(ctx, productID)
	if err != nil {
		return nil, err
	}

	candidates, err := s.products.ProductsByCategory(ctx, target.Category)
	if err != nil {
		return nil, fmt.Errorf("failed to load candidates: %w", err)
	}

	return SimilarProducts(*target, candidates), nil
}
