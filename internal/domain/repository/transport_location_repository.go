package repository

import (
	"context"

	"github.com/transit-directory/internal/domain"
)

// TransportLocationRepository persists transport locations.
//
// Nearby runs the distance-ranking query only: it filters to rows with both
// coordinates, applies the optional category/search filters and radius
// cutoff, and returns rows ordered by ascending Haversine distance. Relations
// are not attached; the usecase batches those lookups afterwards. The scan is
// O(n) over the filtered set - there is no spatial index.
type TransportLocationRepository interface {
	Create(ctx context.Context, loc *domain.TransportLocation) (int64, error)
	GetByID(ctx context.Context, id int64) (*domain.TransportLocation, error)
	List(ctx context.Context, categoryID *int64, params domain.ListParams) ([]*domain.TransportLocation, error)
	Nearby(ctx context.Context, q domain.NearbyQuery) ([]*domain.NearbyLocation, error)
	Update(ctx context.Context, id int64, patch domain.TransportLocationPatch) error
	Delete(ctx context.Context, id int64) error
}
