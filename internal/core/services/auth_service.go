package services

import (
	"context"
	"errors"
	"log"

	"cabmed-api/internal/adapters/persistence/models"
	"cabmed-api/internal/adapters/persistence/repositories"
	"cabmed-api/internal/config"
	"cabmed-api/internal/core/domain"
	"cabmed-api/internal/pkg/jwt"
	"cabmed-api/internal/pkg/password"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AuthService handles authentication business logic
type AuthService struct {
	utilisateurRepo  repositories.UtilisateurRepository
	refreshTokenRepo repositories.RefreshTokenRepository
	cfg              *config.Config
}

// NewAuthService creates a new auth service
func NewAuthService(
	utilisateurRepo repositories.UtilisateurRepository,
	refreshTokenRepo repositories.RefreshTokenRepository,
	cfg *config.Config,
) *AuthService {
	return &AuthService{
		utilisateurRepo:  utilisateurRepo,
		refreshTokenRepo: refreshTokenRepo,
		cfg:              cfg,
	}
}

// LoginInput represents login input
type LoginInput struct {
	Email      string `json:"email" validate:"required,email"`
	MotDePasse string `json:"mot_de_passe" validate:"required"`
}

// TokenPair represents access and refresh tokens
type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// AuthResponse represents authentication response
type AuthResponse struct {
	Utilisateur  *models.UtilisateurResponse `json:"utilisateur"`
	AccessToken  string                      `json:"access_token"`
	RefreshToken string                      `json:"refresh_token"`
}

// Login authenticates an utilisateur by email and password. Unknown email,
// wrong password and disabled account all return the same credentials
// error so the response never reveals which one failed.
func (s *AuthService) Login(ctx context.Context, input *LoginInput) (*AuthResponse, error) {
	utilisateur, err := s.utilisateurRepo.GetByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if !password.Verify(input.MotDePasse, utilisateur.MotDePasse) {
		return nil, domain.ErrInvalidCredentials
	}

	if !utilisateur.Actif {
		return nil, domain.ErrInvalidCredentials
	}

	tokens, err := s.generateTokens(utilisateur)
	if err != nil {
		return nil, err
	}

	if err := s.storeRefreshToken(ctx, utilisateur.ID, tokens.RefreshToken); err != nil {
		return nil, err
	}

	log.Printf("✅ Utilisateur logged in: %s [%s]", utilisateur.Email, utilisateur.Role)

	return &AuthResponse{
		Utilisateur:  utilisateur.ToResponse(),
		AccessToken:  tokens.AccessToken,
		RefreshToken: tokens.RefreshToken,
	}, nil
}

// RefreshToken rotates the refresh token and issues a new token pair
func (s *AuthService) RefreshToken(ctx context.Context, refreshToken string) (*AuthResponse, error) {
	claims, err := jwt.ValidateRefreshToken(refreshToken, s.cfg.JWT.RefreshSecret)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, domain.ErrTokenExpired
		}
		return nil, domain.ErrTokenInvalid
	}

	tokenHash := password.HashToken(refreshToken)

	storedToken, err := s.refreshTokenRepo.GetByTokenHash(ctx, tokenHash)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrTokenInvalid
		}
		return nil, err
	}

	if storedToken.IsRevoked() {
		return nil, domain.ErrTokenInvalid
	}
	if storedToken.IsExpired() {
		return nil, domain.ErrTokenExpired
	}

	utilisateur, err := s.utilisateurRepo.GetByID(ctx, claims.UserID)
	if err != nil {
		return nil, domain.ErrTokenInvalid
	}
	if !utilisateur.Actif {
		return nil, domain.ErrInvalidCredentials
	}

	// Token rotation: the presented token dies with this exchange
	if err := s.refreshTokenRepo.Revoke(ctx, storedToken.ID); err != nil {
		return nil, err
	}

	tokens, err := s.generateTokens(utilisateur)
	if err != nil {
		return nil, err
	}

	if err := s.storeRefreshToken(ctx, utilisateur.ID, tokens.RefreshToken); err != nil {
		return nil, err
	}

	return &AuthResponse{
		Utilisateur:  utilisateur.ToResponse(),
		AccessToken:  tokens.AccessToken,
		RefreshToken: tokens.RefreshToken,
	}, nil
}

// Logout revokes the presented refresh token
func (s *AuthService) Logout(ctx context.Context, refreshToken string) error {
	tokenHash := password.HashToken(refreshToken)
	return s.refreshTokenRepo.RevokeByTokenHash(ctx, tokenHash)
}

// LogoutAll revokes every refresh token of an utilisateur
func (s *AuthService) LogoutAll(ctx context.Context, userID uint) error {
	return s.refreshTokenRepo.RevokeAllByUserID(ctx, userID)
}

// ValidateAccessToken validates an access token
func (s *AuthService) ValidateAccessToken(accessToken string) (*jwt.Claims, error) {
	return jwt.ValidateAccessToken(accessToken, s.cfg.JWT.Secret)
}

// Me returns the authenticated utilisateur's profile
func (s *AuthService) Me(ctx context.Context, userID uint) (*models.UtilisateurResponse, error) {
	utilisateur, err := s.utilisateurRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUtilisateurNotFound
		}
		return nil, err
	}
	return utilisateur.ToResponse(), nil
}

// generateTokens generates access and refresh tokens
func (s *AuthService) generateTokens(utilisateur *models.Utilisateur) (*TokenPair, error) {
	accessToken, err := jwt.GenerateAccessToken(
		utilisateur.ID,
		utilisateur.Email,
		utilisateur.Role,
		s.cfg.JWT.Secret,
		s.cfg.JWT.AccessTokenMins,
	)
	if err != nil {
		return nil, err
	}

	tokenID := uuid.New().String()

	refreshToken, err := jwt.GenerateRefreshToken(
		utilisateur.ID,
		tokenID,
		s.cfg.JWT.RefreshSecret,
		s.cfg.JWT.RefreshTokenDays,
	)
	if err != nil {
		return nil, err
	}

	return &TokenPair{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

// storeRefreshToken stores a hashed refresh token in the database
func (s *AuthService) storeRefreshToken(ctx context.Context, userID uint, refreshToken string) error {
	token := &models.RefreshToken{
		UserID:    userID,
		TokenHash: password.HashToken(refreshToken),
		ExpiresAt: jwt.GetExpiryTime(s.cfg.JWT.RefreshTokenDays),
	}
	return s.refreshTokenRepo.Create(ctx, token)
}
