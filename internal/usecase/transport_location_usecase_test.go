package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"

	"github.com/transit-directory/internal/domain"
	"github.com/transit-directory/internal/pkg/errors"
	"github.com/transit-directory/internal/usecase"
	"github.com/transit-directory/internal/usecase/dto"
)

func newLocationUseCase(
	locRepo *MockTransportLocationRepository,
	catRepo *MockCategoryRepository,
	vehRepo *MockVehicleRepository,
) *usecase.TransportLocationUseCase {
	return usecase.NewTransportLocationUseCase(locRepo, catRepo, vehRepo, zap.NewNop(), 10*time.Second)
}

func rankedLocation(id int64, distance float64, categoryID, vehicleID *int64) *domain.NearbyLocation {
	return &domain.NearbyLocation{
		TransportLocation: domain.TransportLocation{
			ID:         id,
			CategoryID: categoryID,
			VehicleID:  vehicleID,
			Address:    "somewhere",
			Latitude:   ptr(50.0),
			Longitude:  ptr(4.0),
		},
		Distance: distance,
	}
}

func TestNearby_RejectsOutOfRangeCoordinates(t *testing.T) {
	locRepo := new(MockTransportLocationRepository)
	uc := newLocationUseCase(locRepo, new(MockCategoryRepository), new(MockVehicleRepository))

	cases := []struct {
		name     string
		lat, lon float64
	}{
		{"latitude too high", 90.01, 4.0},
		{"latitude too low", -90.01, 4.0},
		{"longitude too high", 50.0, 180.01},
		{"longitude too low", 50.0, -180.01},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := uc.Nearby(context.Background(), dto.NearbyRequest{Latitude: tc.lat, Longitude: tc.lon})
			assert.ErrorIs(t, err, errors.ErrInvalidCoordinates)
		})
	}

	// The ranking query never ran.
	locRepo.AssertNotCalled(t, "Nearby", mock.Anything, mock.Anything)
}

func TestNearby_RejectsNonPositiveRadius(t *testing.T) {
	locRepo := new(MockTransportLocationRepository)
	uc := newLocationUseCase(locRepo, new(MockCategoryRepository), new(MockVehicleRepository))

	for _, radius := range []float64{0, -1.5} {
		_, err := uc.Nearby(context.Background(), dto.NearbyRequest{
			Latitude:  50.4674,
			Longitude: 4.8719,
			Radius:    ptr(radius),
		})
		assert.ErrorIs(t, err, errors.ErrInvalidRadius)
	}
	locRepo.AssertNotCalled(t, "Nearby", mock.Anything, mock.Anything)
}

func TestNearby_DefaultsLimit(t *testing.T) {
	locRepo := new(MockTransportLocationRepository)
	uc := newLocationUseCase(locRepo, new(MockCategoryRepository), new(MockVehicleRepository))

	locRepo.On("Nearby", mock.Anything, mock.MatchedBy(func(q domain.NearbyQuery) bool {
		return q.Limit == domain.DefaultNearbyLimit
	})).Return([]*domain.NearbyLocation{}, nil)

	resp, err := uc.Nearby(context.Background(), dto.NearbyRequest{
		Latitude:  50.4674,
		Longitude: 4.8719,
	})

	assert.NoError(t, err)
	assert.Empty(t, resp.Locations)
	locRepo.AssertExpectations(t)
}

func TestNearby_AttachesRelationsPreservingOrder(t *testing.T) {
	locRepo := new(MockTransportLocationRepository)
	catRepo := new(MockCategoryRepository)
	vehRepo := new(MockVehicleRepository)
	uc := newLocationUseCase(locRepo, catRepo, vehRepo)

	ranked := []*domain.NearbyLocation{
		rankedLocation(7, 0.18, ptr(int64(1)), ptr(int64(3))),
		rankedLocation(4, 0.52, ptr(int64(2)), nil),
		rankedLocation(9, 1.04, ptr(int64(1)), nil),
	}
	locRepo.On("Nearby", mock.Anything, mock.Anything).Return(ranked, nil)
	catRepo.On("ListByIDs", mock.Anything, []int64{1, 2}).Return([]*domain.Category{
		{ID: 1, Name: "Bus stop"},
		{ID: 2, Name: "Tram stop"},
	}, nil)
	vehRepo.On("ListByIDs", mock.Anything, []int64{3}).Return([]*domain.Vehicle{
		{ID: 3, Brand: ptr("Van Hool")},
	}, nil)

	resp, err := uc.Nearby(context.Background(), dto.NearbyRequest{
		Latitude:  50.4674,
		Longitude: 4.8719,
	})

	assert.NoError(t, err)
	if assert.Len(t, resp.Locations, 3) {
		assert.Equal(t, int64(7), resp.Locations[0].ID)
		assert.Equal(t, int64(4), resp.Locations[1].ID)
		assert.Equal(t, int64(9), resp.Locations[2].ID)

		assert.Equal(t, "Bus stop", resp.Locations[0].Category.Name)
		assert.Equal(t, "Tram stop", resp.Locations[1].Category.Name)
		assert.Equal(t, "Bus stop", resp.Locations[2].Category.Name)

		assert.NotNil(t, resp.Locations[0].Vehicle)
		assert.Nil(t, resp.Locations[1].Vehicle)
	}
	catRepo.AssertExpectations(t)
	vehRepo.AssertExpectations(t)
}

func TestNearby_NoRelationLookupWhenNothingToAttach(t *testing.T) {
	locRepo := new(MockTransportLocationRepository)
	catRepo := new(MockCategoryRepository)
	vehRepo := new(MockVehicleRepository)
	uc := newLocationUseCase(locRepo, catRepo, vehRepo)

	locRepo.On("Nearby", mock.Anything, mock.Anything).Return([]*domain.NearbyLocation{
		rankedLocation(1, 0.1, nil, nil),
	}, nil)

	_, err := uc.Nearby(context.Background(), dto.NearbyRequest{
		Latitude:  50.4674,
		Longitude: 4.8719,
	})

	assert.NoError(t, err)
	catRepo.AssertNotCalled(t, "ListByIDs", mock.Anything, mock.Anything)
	vehRepo.AssertNotCalled(t, "ListByIDs", mock.Anything, mock.Anything)
}

func TestNearby_RankingErrorPropagates(t *testing.T) {
	locRepo := new(MockTransportLocationRepository)
	uc := newLocationUseCase(locRepo, new(MockCategoryRepository), new(MockVehicleRepository))

	locRepo.On("Nearby", mock.Anything, mock.Anything).Return(nil, errors.ErrDatabaseError)

	_, err := uc.Nearby(context.Background(), dto.NearbyRequest{
		Latitude:  50.4674,
		Longitude: 4.8719,
	})

	assert.ErrorIs(t, err, errors.ErrDatabaseError)
}

func TestLocationUpdate_EmptyPatchNeverReachesRepository(t *testing.T) {
	locRepo := new(MockTransportLocationRepository)
	uc := newLocationUseCase(locRepo, new(MockCategoryRepository), new(MockVehicleRepository))

	err := uc.Update(context.Background(), 5, dto.UpdateTransportLocationRequest{})

	assert.ErrorIs(t, err, errors.ErrNoFieldGiven)
	locRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
}

func TestLocationUpdate_PassesPatchThrough(t *testing.T) {
	locRepo := new(MockTransportLocationRepository)
	uc := newLocationUseCase(locRepo, new(MockCategoryRepository), new(MockVehicleRepository))

	locRepo.On("Update", mock.Anything, int64(5), mock.MatchedBy(func(p domain.TransportLocationPatch) bool {
		return p.Address != nil && *p.Address == "New address" && p.Latitude == nil
	})).Return(nil)

	err := uc.Update(context.Background(), 5, dto.UpdateTransportLocationRequest{
		Address: ptr("New address"),
	})

	assert.NoError(t, err)
	locRepo.AssertExpectations(t)
}
