package usecase

import (
	"context"
	"time"

	"github.com/transit-directory/internal/domain"
	"github.com/transit-directory/internal/domain/repository"
	"github.com/transit-directory/internal/pkg/errors"
	"github.com/transit-directory/internal/pkg/utils"
	"github.com/transit-directory/internal/usecase/dto"
	"go.uber.org/zap"
)

type TransportLocationUseCase struct {
	locationRepo  repository.TransportLocationRepository
	categoryRepo  repository.CategoryRepository
	vehicleRepo   repository.VehicleRepository
	logger        *zap.Logger
	nearbyTimeout time.Duration
}

func NewTransportLocationUseCase(
	locationRepo repository.TransportLocationRepository,
	categoryRepo repository.CategoryRepository,
	vehicleRepo repository.VehicleRepository,
	logger *zap.Logger,
	nearbyTimeout time.Duration,
) *TransportLocationUseCase {
	if nearbyTimeout == 0 {
		nearbyTimeout = 10 * time.Second
	}
	return &TransportLocationUseCase{
		locationRepo:  locationRepo,
		categoryRepo:  categoryRepo,
		vehicleRepo:   vehicleRepo,
		logger:        logger,
		nearbyTimeout: nearbyTimeout,
	}
}

func (uc *TransportLocationUseCase) Create(
	ctx context.Context,
	req dto.CreateTransportLocationRequest,
) (*dto.CreatedResponse, error) {
	loc := &domain.TransportLocation{
		CategoryID: req.CategoryID,
		VehicleID:  req.VehicleID,
		Address:    req.Address,
		Latitude:   req.Latitude,
		Longitude:  req.Longitude,
	}

	id, err := uc.locationRepo.Create(ctx, loc)
	if err != nil {
		return nil, err
	}
	return &dto.CreatedResponse{ID: id}, nil
}

func (uc *TransportLocationUseCase) GetByID(ctx context.Context, id int64) (*domain.TransportLocation, error) {
	return uc.locationRepo.GetByID(ctx, id)
}

func (uc *TransportLocationUseCase) List(
	ctx context.Context,
	categoryID *int64,
	params domain.ListParams,
) ([]*domain.TransportLocation, error) {
	return uc.locationRepo.List(ctx, categoryID, params)
}

// Nearby returns locations ordered by ascending great-circle distance from
// the reference point, each enriched with its category and vehicle. The
// ranking query runs under a timeout; hitting it is a server error, never an
// empty success. Expects latitude/longitude already bounds-checked together
// by the caller (radius is meaningless without them).
func (uc *TransportLocationUseCase) Nearby(ctx context.Context, req dto.NearbyRequest) (*dto.NearbyResponse, error) {
	if !utils.ValidateCoordinates(req.Latitude, req.Longitude) {
		return nil, errors.ErrInvalidCoordinates
	}
	if req.Radius != nil && !utils.ValidateRadius(*req.Radius) {
		return nil, errors.ErrInvalidRadius
	}

	limit := req.Limit
	if limit <= 0 {
		limit = domain.DefaultNearbyLimit
	}

	rankCtx, cancel := context.WithTimeout(ctx, uc.nearbyTimeout)
	defer cancel()

	ranked, err := uc.locationRepo.Nearby(rankCtx, domain.NearbyQuery{
		Latitude:   req.Latitude,
		Longitude:  req.Longitude,
		Radius:     req.Radius,
		Limit:      limit,
		CategoryID: req.CategoryID,
		Search:     req.Search,
	})
	if err != nil {
		uc.logger.Error("Failed to rank nearby locations",
			zap.Float64("latitude", req.Latitude),
			zap.Float64("longitude", req.Longitude),
			zap.Error(err))
		return nil, err
	}

	if err := uc.attachRelations(ctx, ranked); err != nil {
		return nil, err
	}

	return &dto.NearbyResponse{Locations: ranked}, nil
}

// attachRelations merges categories and vehicles into the ranked rows with
// one batched lookup per relation instead of a query per row. The two
// lookups run concurrently; the ranked order is preserved because rows are
// mutated in place.
func (uc *TransportLocationUseCase) attachRelations(ctx context.Context, ranked []*domain.NearbyLocation) error {
	categoryIDs := collectIDs(ranked, func(l *domain.NearbyLocation) *int64 { return l.CategoryID })
	vehicleIDs := collectIDs(ranked, func(l *domain.NearbyLocation) *int64 { return l.VehicleID })

	if len(categoryIDs) == 0 && len(vehicleIDs) == 0 {
		return nil
	}

	var (
		categories []*domain.Category
		vehicles   []*domain.Vehicle
		catErr     error
		vehErr     error
	)

	done := make(chan struct{}, 2)
	go func() {
		categories, catErr = uc.categoryRepo.ListByIDs(ctx, categoryIDs)
		done <- struct{}{}
	}()
	go func() {
		vehicles, vehErr = uc.vehicleRepo.ListByIDs(ctx, vehicleIDs)
		done <- struct{}{}
	}()
	<-done
	<-done

	if catErr != nil {
		return catErr
	}
	if vehErr != nil {
		return vehErr
	}

	categoryByID := make(map[int64]*domain.Category, len(categories))
	for _, c := range categories {
		categoryByID[c.ID] = c
	}
	vehicleByID := make(map[int64]*domain.Vehicle, len(vehicles))
	for _, v := range vehicles {
		vehicleByID[v.ID] = v
	}

	for _, loc := range ranked {
		if loc.CategoryID != nil {
			loc.Category = categoryByID[*loc.CategoryID]
		}
		if loc.VehicleID != nil {
			loc.Vehicle = vehicleByID[*loc.VehicleID]
		}
	}

	return nil
}

func collectIDs(ranked []*domain.NearbyLocation, pick func(*domain.NearbyLocation) *int64) []int64 {
	seen := make(map[int64]struct{})
	ids := make([]int64, 0)
	for _, loc := range ranked {
		if id := pick(loc); id != nil {
			if _, ok := seen[*id]; !ok {
				seen[*id] = struct{}{}
				ids = append(ids, *id)
			}
		}
	}
	return ids
}

func (uc *TransportLocationUseCase) Update(
	ctx context.Context,
	id int64,
	req dto.UpdateTransportLocationRequest,
) error {
	patch := domain.TransportLocationPatch{
		CategoryID: req.CategoryID,
		VehicleID:  req.VehicleID,
		Address:    req.Address,
		Latitude:   req.Latitude,
		Longitude:  req.Longitude,
	}
	if patch.IsEmpty() {
		return errors.ErrNoFieldGiven
	}
	return uc.locationRepo.Update(ctx, id, patch)
}

func (uc *TransportLocationUseCase) Delete(ctx context.Context, id int64) error {
	return uc.locationRepo.Delete(ctx, id)
}
