package handler_test

import (
	"bytes"
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
	"github.com/transit-directory/internal/pkg/errors"
	"github.com/transit-directory/internal/pkg/password"
	"github.com/transit-directory/internal/usecase"
)

// stubUserRepo keeps at most one account in memory, enough for the
// register and login paths.
type stubUserRepo struct {
	created *domain.User
}

func (s *stubUserRepo) Create(_ context.Context, user *domain.User) (int64, error) {
	s.created = user
	return 7, nil
}

func (s *stubUserRepo) GetByID(context.Context, int64) (*domain.UserView, error) {
	return nil, nil
}

func (s *stubUserRepo) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	if s.created == nil || s.created.Email != email {
		return nil, errors.ErrUserNotFound
	}
	u := *s.created
	u.ID = 7
	return &u, nil
}

func (s *stubUserRepo) ExistsByEmail(_ context.Context, email string) (bool, error) {
	return s.created != nil && s.created.Email == email, nil
}

func (s *stubUserRepo) List(context.Context, domain.ListParams) ([]*domain.UserView, error) {
	return nil, nil
}

func (s *stubUserRepo) Update(context.Context, int64, domain.UserPatch) error { return nil }
func (s *stubUserRepo) Delete(context.Context, int64) error                   { return nil }

type stubTokenRepo struct{}

func (stubTokenRepo) Revoke(context.Context, string, time.Duration) error { return nil }
func (stubTokenRepo) IsRevoked(context.Context, string) (bool, error)     { return false, nil }

func newAuthApp(repo *stubUserRepo) *fiber.App {
	hasher, _ := password.NewHasher("test-pepper")
	uc := usecase.NewAuthUseCase(repo, stubTokenRepo{}, hasher, zap.NewNop(), "test-secret", time.Hour)
	h := handler.NewAuthHandler(uc, zap.NewNop())

	app := fiber.New()
	app.Post("/auth/register", h.Register)
	app.Post("/auth/login", h.Login)
	return app
}

func postJSON(t *testing.T, app *fiber.App, target string, payload string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, target, bytes.NewBufferString(payload))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

func TestAuthHandler_RegisterReturnsAccountWithoutPassword(t *testing.T) {
	repo := &stubUserRepo{}
	app := newAuthApp(repo)

	resp := postJSON(t, app, "/auth/register",
		`{"firstName":"Ada","lastName":"Lovelace","email":"ada@example.com","password":"correcthorse"}`)

	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	var body struct {
		Data map[string]json.RawMessage `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.JSONEq(t, `7`, string(body.Data["id"]))
	assert.JSONEq(t, `"ada@example.com"`, string(body.Data["email"]))
	assert.JSONEq(t, `false`, string(body.Data["isAdmin"]))
	assert.NotContains(t, body.Data, "password")

	require.NotNil(t, repo.created)
	assert.NotEqual(t, "correcthorse", repo.created.Password, "the stored password must be a hash")
}

func TestAuthHandler_RegisterTakenEmailConflicts(t *testing.T) {
	repo := &stubUserRepo{}
	app := newAuthApp(repo)

	resp := postJSON(t, app, "/auth/register",
		`{"firstName":"Ada","lastName":"Lovelace","email":"ada@example.com","password":"correcthorse"}`)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp = postJSON(t, app, "/auth/register",
		`{"firstName":"Other","lastName":"Person","email":"ada@example.com","password":"battery-staple"}`)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
}

func TestAuthHandler_RegisterRejectsInvalidPayload(t *testing.T) {
	repo := &stubUserRepo{}
	app := newAuthApp(repo)

	resp := postJSON(t, app, "/auth/register",
		`{"firstName":"Ada","email":"not-an-email","password":"short"}`)

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Nil(t, repo.created)
}

func TestAuthHandler_LoginAfterRegisterReturnsToken(t *testing.T) {
	repo := &stubUserRepo{}
	app := newAuthApp(repo)

	resp := postJSON(t, app, "/auth/register",
		`{"firstName":"Ada","lastName":"Lovelace","email":"ada@example.com","password":"correcthorse"}`)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp = postJSON(t, app, "/auth/login",
		`{"email":"ada@example.com","password":"correcthorse"}`)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		Data struct {
			Token string `json:"token"`
		} `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.NotEmpty(t, body.Data.Token)
}

func TestAuthHandler_LoginWrongPasswordIsUnauthorized(t *testing.T) {
	repo := &stubUserRepo{}
	app := newAuthApp(repo)

	resp := postJSON(t, app, "/auth/register",
		`{"firstName":"Ada","lastName":"Lovelace","email":"ada@example.com","password":"correcthorse"}`)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp = postJSON(t, app, "/auth/login",
		`{"email":"ada@example.com","password":"wrong-password"}`)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}
