package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/transit-directory/internal/domain"
	"github.com/transit-directory/internal/pkg/errors"
	"github.com/transit-directory/internal/pkg/password"
	"github.com/transit-directory/internal/usecase"
)

const testSecret = "test-secret"

func newAuthUseCase(userRepo *MockUserRepository, tokenRepo *MockTokenRepository) *usecase.AuthUseCase {
	hasher, err := password.NewHasher("test-pepper")
	if err != nil {
		panic(err)
	}
	return usecase.NewAuthUseCase(userRepo, tokenRepo, hasher, zap.NewNop(), testSecret, time.Hour)
}

func TestRegister_TakenEmailIsConflict(t *testing.T) {
	userRepo := new(MockUserRepository)
	uc := newAuthUseCase(userRepo, new(MockTokenRepository))

	userRepo.On("ExistsByEmail", mock.Anything, "taken@example.com").Return(true, nil)

	_, err := uc.Register(context.Background(), "Nora", "Peeters", "taken@example.com", "password123")

	assert.ErrorIs(t, err, errors.ErrEmailTaken)
	userRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestRegister_NewAccountIsNeverAdmin(t *testing.T) {
	userRepo := new(MockUserRepository)
	uc := newAuthUseCase(userRepo, new(MockTokenRepository))

	userRepo.On("ExistsByEmail", mock.Anything, "new@example.com").Return(false, nil)
	userRepo.On("Create", mock.Anything, mock.MatchedBy(func(u *domain.User) bool {
		return !u.IsAdmin && u.Email == "new@example.com" && u.Password != "password123"
	})).Return(int64(42), nil)

	view, err := uc.Register(context.Background(), "Nora", "Peeters", "new@example.com", "password123")

	require.NoError(t, err)
	assert.Equal(t, int64(42), view.ID)
	assert.False(t, view.IsAdmin)
	userRepo.AssertExpectations(t)
}

func TestLogin_UnknownEmailAndWrongPasswordLookTheSame(t *testing.T) {
	userRepo := new(MockUserRepository)
	uc := newAuthUseCase(userRepo, new(MockTokenRepository))

	hasher, _ := password.NewHasher("test-pepper")
	hash, _ := hasher.Hash("correct-password")

	userRepo.On("GetByEmail", mock.Anything, "ghost@example.com").Return(nil, errors.ErrUserNotFound)
	userRepo.On("GetByEmail", mock.Anything, "nora@example.com").Return(&domain.User{
		ID: 1, Email: "nora@example.com", Password: hash,
	}, nil)

	_, errUnknown := uc.Login(context.Background(), "ghost@example.com", "whatever")
	_, errWrong := uc.Login(context.Background(), "nora@example.com", "wrong-password")

	assert.ErrorIs(t, errUnknown, errors.ErrInvalidCredentials)
	assert.ErrorIs(t, errWrong, errors.ErrInvalidCredentials)
}

func TestLoginAndParseToken_Roundtrip(t *testing.T) {
	userRepo := new(MockUserRepository)
	tokenRepo := new(MockTokenRepository)
	uc := newAuthUseCase(userRepo, tokenRepo)

	hasher, _ := password.NewHasher("test-pepper")
	hash, _ := hasher.Hash("password123")

	userRepo.On("GetByEmail", mock.Anything, "admin@example.com").Return(&domain.User{
		ID: 7, Email: "admin@example.com", Password: hash, IsAdmin: true,
	}, nil)
	tokenRepo.On("IsRevoked", mock.Anything, mock.Anything).Return(false, nil)

	token, err := uc.Login(context.Background(), "admin@example.com", "password123")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := uc.ParseToken(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, int64(7), claims.UserID)
	assert.Equal(t, "admin@example.com", claims.Email)
	assert.True(t, claims.IsAdmin)
	assert.NotEmpty(t, claims.ID)
}

func TestParseToken_GarbageIsRejected(t *testing.T) {
	uc := newAuthUseCase(new(MockUserRepository), new(MockTokenRepository))

	_, err := uc.ParseToken(context.Background(), "not.a.token")

	assert.ErrorIs(t, err, errors.ErrInvalidToken)
}

func TestParseToken_WrongSecretIsRejected(t *testing.T) {
	userRepo := new(MockUserRepository)
	tokenRepo := new(MockTokenRepository)
	issuing := newAuthUseCase(userRepo, tokenRepo)

	hasher, _ := password.NewHasher("test-pepper")
	hash, _ := hasher.Hash("password123")
	userRepo.On("GetByEmail", mock.Anything, "nora@example.com").Return(&domain.User{
		ID: 1, Email: "nora@example.com", Password: hash,
	}, nil)

	token, err := issuing.Login(context.Background(), "nora@example.com", "password123")
	require.NoError(t, err)

	other, err := password.NewHasher("test-pepper")
	require.NoError(t, err)
	verifying := usecase.NewAuthUseCase(userRepo, tokenRepo, other, zap.NewNop(), "another-secret", time.Hour)

	_, err = verifying.ParseToken(context.Background(), token)
	assert.ErrorIs(t, err, errors.ErrInvalidToken)
}

func TestLogout_RevokesForRemainingLifetime(t *testing.T) {
	userRepo := new(MockUserRepository)
	tokenRepo := new(MockTokenRepository)
	uc := newAuthUseCase(userRepo, tokenRepo)

	hasher, _ := password.NewHasher("test-pepper")
	hash, _ := hasher.Hash("password123")
	userRepo.On("GetByEmail", mock.Anything, "nora@example.com").Return(&domain.User{
		ID: 1, Email: "nora@example.com", Password: hash,
	}, nil)
	tokenRepo.On("IsRevoked", mock.Anything, mock.Anything).Return(false, nil)
	tokenRepo.On("Revoke", mock.Anything, mock.Anything, mock.MatchedBy(func(ttl time.Duration) bool {
		return ttl > 50*time.Minute && ttl <= time.Hour
	})).Return(nil)

	token, err := uc.Login(context.Background(), "nora@example.com", "password123")
	require.NoError(t, err)
	claims, err := uc.ParseToken(context.Background(), token)
	require.NoError(t, err)

	assert.NoError(t, uc.Logout(context.Background(), claims))
	tokenRepo.AssertExpectations(t)
}

func TestParseToken_RevokedTokenIsRejected(t *testing.T) {
	userRepo := new(MockUserRepository)
	tokenRepo := new(MockTokenRepository)
	uc := newAuthUseCase(userRepo, tokenRepo)

	hasher, _ := password.NewHasher("test-pepper")
	hash, _ := hasher.Hash("password123")
	userRepo.On("GetByEmail", mock.Anything, "nora@example.com").Return(&domain.User{
		ID: 1, Email: "nora@example.com", Password: hash,
	}, nil)
	tokenRepo.On("IsRevoked", mock.Anything, mock.Anything).Return(true, nil)

	token, err := uc.Login(context.Background(), "nora@example.com", "password123")
	require.NoError(t, err)

	_, err = uc.ParseToken(context.Background(), token)
	assert.ErrorIs(t, err, errors.ErrInvalidToken)
}
