package booking

import (
	"context"

	"github.com/Dalopezos28/salon-bienestar/internal/cache"
	domain "github.com/Dalopezos28/salon-bienestar/internal/domain/booking"
	"github.com/Dalopezos28/salon-bienestar/internal/models"
)

type ListServices struct {
	repo  domain.Repository
	cache *cache.ServicesCache
}

func NewListServices(
	repo domain.Repository,
	cache *cache.ServicesCache,
) *ListServices {
	return &ListServices{
		repo:  repo,
		cache: cache,
	}
}

// Execute serves the catalog cache-aside: a cache hit skips the store, a miss
// (or any redis failure) falls through to the store and repopulates.
func (uc *ListServices) Execute(ctx context.Context) ([]models.Service, error) {
	if services, ok := uc.cache.Get(ctx); ok {
		return services, nil
	}

	services, err := uc.repo.ListServices(ctx)
	if err != nil {
		return nil, err
	}

	uc.cache.Set(ctx, services)
	return services, nil
}
