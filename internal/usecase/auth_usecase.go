package usecase

import (
	"context"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/transit-directory/internal/domain"
	"github.com/transit-directory/internal/domain/repository"
	"github.com/transit-directory/internal/pkg/errors"
	"github.com/transit-directory/internal/pkg/password"
	"go.uber.org/zap"
)

// AuthClaims are the JWT claims embedded in access tokens. The token ID
// (RegisteredClaims.ID) keys the redis revocation list on logout.
type AuthClaims struct {
	jwt.RegisteredClaims
	UserID  int64  `json:"userId"`
	Email   string `json:"email"`
	IsAdmin bool   `json:"isAdmin"`
}

type AuthUseCase struct {
	userRepo  repository.UserRepository
	tokenRepo repository.TokenRepository
	hasher    *password.Hasher
	logger    *zap.Logger
	jwtSecret []byte
	tokenTTL  time.Duration
}

func NewAuthUseCase(
	userRepo repository.UserRepository,
	tokenRepo repository.TokenRepository,
	hasher *password.Hasher,
	logger *zap.Logger,
	jwtSecret string,
	tokenTTL time.Duration,
) *AuthUseCase {
	return &AuthUseCase{
		userRepo:  userRepo,
		tokenRepo: tokenRepo,
		hasher:    hasher,
		logger:    logger,
		jwtSecret: []byte(jwtSecret),
		tokenTTL:  tokenTTL,
	}
}

// Register creates a non-admin account. A taken email is a conflict, checked
// ahead of the insert and again on the unique constraint.
func (uc *AuthUseCase) Register(ctx context.Context, firstName, lastName, email, plaintext string) (*domain.UserView, error) {
	exists, err := uc.userRepo.ExistsByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, errors.ErrEmailTaken
	}

	hashed, err := uc.hasher.Hash(plaintext)
	if err != nil {
		uc.logger.Error("Failed to hash password", zap.Error(err))
		return nil, errors.ErrInternalServer
	}

	user := &domain.User{
		FirstName: firstName,
		LastName:  lastName,
		Email:     email,
		Password:  hashed,
		IsAdmin:   false,
	}

	id, err := uc.userRepo.Create(ctx, user)
	if err != nil {
		return nil, err
	}
	user.ID = id

	return user.View(), nil
}

// Login verifies credentials and issues a signed token. Unknown email and
// wrong password are indistinguishable to the caller.
func (uc *AuthUseCase) Login(ctx context.Context, email, plaintext string) (string, error) {
	user, err := uc.userRepo.GetByEmail(ctx, email)
	if err == errors.ErrUserNotFound {
		return "", errors.ErrInvalidCredentials
	}
	if err != nil {
		return "", err
	}

	ok, err := uc.hasher.Compare(plaintext, user.Password)
	if err != nil {
		uc.logger.Error("Failed to compare password", zap.Error(err))
		return "", errors.ErrInternalServer
	}
	if !ok {
		return "", errors.ErrInvalidCredentials
	}

	now := time.Now()
	claims := AuthClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(uc.tokenTTL)),
		},
		UserID:  user.ID,
		Email:   user.Email,
		IsAdmin: user.IsAdmin,
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(uc.jwtSecret)
	if err != nil {
		uc.logger.Error("Failed to sign token", zap.Error(err))
		return "", errors.ErrInternalServer
	}

	return token, nil
}

// Logout puts the token on the revocation list for its remaining lifetime.
func (uc *AuthUseCase) Logout(ctx context.Context, claims *AuthClaims) error {
	if claims.ID == "" || claims.ExpiresAt == nil {
		return errors.ErrInvalidToken
	}
	return uc.tokenRepo.Revoke(ctx, claims.ID, time.Until(claims.ExpiresAt.Time))
}

// ParseToken validates signature, expiry, and the revocation list.
func (uc *AuthUseCase) ParseToken(ctx context.Context, tokenString string) (*AuthClaims, error) {
	claims := &AuthClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.ErrInvalidToken
		}
		return uc.jwtSecret, nil
	})
	if err != nil || !token.Valid {
		return nil, errors.ErrInvalidToken
	}

	if claims.ID != "" {
		revoked, err := uc.tokenRepo.IsRevoked(ctx, claims.ID)
		if err != nil {
			return nil, err
		}
		if revoked {
			return nil, errors.ErrInvalidToken
		}
	}

	return claims, nil
}
