package cache

import (
	"context"
	"errors"

	"github.com/luisferxd1/nexxo-business-sub001/internal/domain"
)

type CatalogCache interface {
	GetProducts(ctx context.Context) ([]domain.Product, error)
	SetProducts(ctx context.Context, products []domain.Product) error
	Invalidate(ctx context.Context) error
}

var ErrCacheMiss = errors.New("cache miss")
