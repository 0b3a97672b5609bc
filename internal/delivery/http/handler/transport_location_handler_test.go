package handler_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/transit-directory/internal/delivery/http/handler"
	"github.com/transit-directory/internal/domain"
	"github.com/transit-directory/internal/usecase"
)

// stubLocationRepo records the last nearby query and serves canned rows
type stubLocationRepo struct {
	lastNearby *domain.NearbyQuery
	ranked     []*domain.NearbyLocation
}

func (s *stubLocationRepo) Create(context.Context, *domain.TransportLocation) (int64, error) {
	return 1, nil
}
func (s *stubLocationRepo) GetByID(context.Context, int64) (*domain.TransportLocation, error) {
	return &domain.TransportLocation{ID: 1}, nil
}
func (s *stubLocationRepo) List(context.Context, *int64, domain.ListParams) ([]*domain.TransportLocation, error) {
	return nil, nil
}
func (s *stubLocationRepo) Nearby(_ context.Context, q domain.NearbyQuery) ([]*domain.NearbyLocation, error) {
	s.lastNearby = &q
	return s.ranked, nil
}
func (s *stubLocationRepo) Update(context.Context, int64, domain.TransportLocationPatch) error {
	return nil
}
func (s *stubLocationRepo) Delete(context.Context, int64) error { return nil }

type stubCategoryRepo struct{}

func (stubCategoryRepo) Create(context.Context, string) (int64, error) { return 0, nil }
func (stubCategoryRepo) GetByID(context.Context, int64) (*domain.Category, error) {
	return nil, nil
}
func (stubCategoryRepo) ListByIDs(context.Context, []int64) ([]*domain.Category, error) {
	return nil, nil
}
func (stubCategoryRepo) List(context.Context, domain.ListParams) ([]*domain.Category, error) {
	return nil, nil
}
func (stubCategoryRepo) Update(context.Context, int64, domain.CategoryPatch) error { return nil }
func (stubCategoryRepo) DeleteCascade(context.Context, int64) (int64, error)       { return 0, nil }

type stubVehicleRepo struct{}

func (stubVehicleRepo) Create(context.Context, *domain.Vehicle) (int64, error) { return 0, nil }
func (stubVehicleRepo) GetByID(context.Context, int64) (*domain.Vehicle, error) {
	return nil, nil
}
func (stubVehicleRepo) ListByIDs(context.Context, []int64) ([]*domain.Vehicle, error) {
	return nil, nil
}
func (stubVehicleRepo) List(context.Context, domain.ListParams) ([]*domain.Vehicle, error) {
	return nil, nil
}
func (stubVehicleRepo) Update(context.Context, int64, domain.VehiclePatch) error { return nil }
func (stubVehicleRepo) DeleteCascade(context.Context, int64) (int64, error)      { return 0, nil }

func newNearbyApp(repo *stubLocationRepo) *fiber.App {
	uc := usecase.NewTransportLocationUseCase(repo, stubCategoryRepo{}, stubVehicleRepo{}, zap.NewNop(), time.Second)
	h := handler.NewTransportLocationHandler(uc, zap.NewNop())

	app := fiber.New()
	app.Get("/transport-locations/nearby", h.Nearby)
	return app
}

func get(t *testing.T, app *fiber.App, target string) *http.Response {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest(http.MethodGet, target, nil))
	require.NoError(t, err)
	return resp
}

func TestNearbyHandler_RadiusWithoutCoordinatesIsRejected(t *testing.T) {
	repo := &stubLocationRepo{}
	app := newNearbyApp(repo)

	resp := get(t, app, "/transport-locations/nearby?radius=5")

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Nil(t, repo.lastNearby, "the search must never run without a reference point")
}

func TestNearbyHandler_MissingLongitudeIsRejected(t *testing.T) {
	repo := &stubLocationRepo{}
	app := newNearbyApp(repo)

	resp := get(t, app, "/transport-locations/nearby?latitude=50.4674")

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Nil(t, repo.lastNearby)
}

func TestNearbyHandler_NonNumericCoordinateIsRejected(t *testing.T) {
	repo := &stubLocationRepo{}
	app := newNearbyApp(repo)

	resp := get(t, app, "/transport-locations/nearby?latitude=abc&longitude=4.8719")

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Nil(t, repo.lastNearby)
}

func TestNearbyHandler_OutOfRangeCoordinateIsRejected(t *testing.T) {
	repo := &stubLocationRepo{}
	app := newNearbyApp(repo)

	resp := get(t, app, "/transport-locations/nearby?latitude=91&longitude=4.8719")

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Nil(t, repo.lastNearby)
}

func TestNearbyHandler_PassesQueryThrough(t *testing.T) {
	repo := &stubLocationRepo{ranked: []*domain.NearbyLocation{}}
	app := newNearbyApp(repo)

	resp := get(t, app, "/transport-locations/nearby?latitude=50.4674&longitude=4.8719&radius=2.5&limit=10&categoryId=3&search=gare")

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	require.NotNil(t, repo.lastNearby)
	assert.InDelta(t, 50.4674, repo.lastNearby.Latitude, 1e-9)
	assert.InDelta(t, 4.8719, repo.lastNearby.Longitude, 1e-9)
	require.NotNil(t, repo.lastNearby.Radius)
	assert.InDelta(t, 2.5, *repo.lastNearby.Radius, 1e-9)
	assert.Equal(t, 10, repo.lastNearby.Limit)
	require.NotNil(t, repo.lastNearby.CategoryID)
	assert.Equal(t, int64(3), *repo.lastNearby.CategoryID)
	assert.Equal(t, "gare", repo.lastNearby.Search)
}

func TestNearbyHandler_DefaultsLimit(t *testing.T) {
	repo := &stubLocationRepo{ranked: []*domain.NearbyLocation{}}
	app := newNearbyApp(repo)

	resp := get(t, app, "/transport-locations/nearby?latitude=50.4674&longitude=4.8719")

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	require.NotNil(t, repo.lastNearby)
	assert.Equal(t, domain.DefaultNearbyLimit, repo.lastNearby.Limit)

	var body struct {
		Data struct {
			Locations []json.RawMessage `json:"locations"`
		} `json:"data"`
		Meta struct {
			Limit int `json:"limit"`
		} `json:"meta"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Empty(t, body.Data.Locations)
	assert.Equal(t, domain.DefaultNearbyLimit, body.Meta.Limit, "the meta reports the applied limit")
}
