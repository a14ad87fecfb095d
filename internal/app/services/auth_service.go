package services

import (
	"context"
	"time"

	"github.com/acadbase/acadbase/internal/app/models"
	"github.com/acadbase/acadbase/internal/app/models/dto"
	"github.com/acadbase/acadbase/internal/app/repositories"
	"github.com/acadbase/acadbase/internal/pkg/apperrors"
	"github.com/acadbase/acadbase/internal/pkg/auth"
	"github.com/acadbase/acadbase/internal/pkg/logger"
)

// AuthService handles login, token refresh and logout.
type AuthService struct {
	userRepo   *repositories.UserRepository
	tokenRepo  *repositories.TokenRepository
	jwtService *auth.JWTService
}

// NewAuthService creates a new auth service
func NewAuthService(
	userRepo *repositories.UserRepository,
	tokenRepo *repositories.TokenRepository,
	jwtService *auth.JWTService,
) *AuthService {
	return &AuthService{
		userRepo:   userRepo,
		tokenRepo:  tokenRepo,
		jwtService: jwtService,
	}
}

// Login verifies credentials and issues a token pair. A missing account
// and a wrong password are indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, req dto.LoginRequest) (*dto.TokenResponse, error) {
	user, err := s.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperrors.ErrInvalidCredentials
	}

	if !auth.CheckPassword(user.PasswordHash, req.Password) {
		return nil, apperrors.ErrInvalidCredentials
	}

	return s.issueTokenPair(ctx, user)
}

// RefreshToken rotates a refresh token: the old token is revoked and a new
// pair issued in its place.
func (s *AuthService) RefreshToken(ctx context.Context, refreshToken string) (*dto.TokenResponse, error) {
	stored, err := s.tokenRepo.Get(ctx, refreshToken)
	if err != nil {
		return nil, err
	}
	if stored == nil {
		return nil, apperrors.ErrTokenNotFound
	}
	if stored.Revoked {
		return nil, apperrors.ErrTokenRevoked
	}
	if time.Now().After(stored.ExpiresAt) {
		return nil, apperrors.ErrTokenExpired
	}

	user, err := s.userRepo.GetByID(ctx, stored.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperrors.ErrTokenInvalid
	}

	if err := s.tokenRepo.Revoke(ctx, refreshToken); err != nil {
		return nil, err
	}

	return s.issueTokenPair(ctx, user)
}

// CurrentUser returns the account behind an authenticated request.
func (s *AuthService) CurrentUser(ctx context.Context, userID int64) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperrors.ErrUserNotFound
	}
	return user, nil
}

// Logout revokes one refresh token. Revoking an unknown token is not an
// error; the outcome is the same.
func (s *AuthService) Logout(ctx context.Context, refreshToken string) error {
	return s.tokenRepo.Revoke(ctx, refreshToken)
}

func (s *AuthService) issueTokenPair(ctx context.Context, user *models.User) (*dto.TokenResponse, error) {
	accessToken, refreshToken, expiresIn, refreshExpiresIn, err := s.jwtService.GenerateTokenPair(user)
	if err != nil {
		return nil, err
	}

	if err := s.tokenRepo.Store(ctx, user.ID, refreshToken, s.jwtService.GetRefreshTokenExpiry()); err != nil {
		return nil, err
	}

	logger.Debug().Int64("userId", user.ID).Msg("Issued token pair")

	return &dto.TokenResponse{
		AccessToken:      accessToken,
		RefreshToken:     refreshToken,
		ExpiresIn:        expiresIn,
		RefreshExpiresIn: refreshExpiresIn,
		TokenType:        "Bearer",
	}, nil
}
