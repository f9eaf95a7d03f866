package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"cabmed-api/internal/adapters/persistence/models"
	"cabmed-api/internal/adapters/persistence/repositories"
	"cabmed-api/internal/config"
	"cabmed-api/internal/core/domain"

	"gorm.io/gorm"
)

func testConfig() *config.Config {
	return &config.Config{
		AppMode:  "dev",
		Timezone: time.UTC,
		JWT: config.JWTConfig{
			Secret:           "test_secret",
			RefreshSecret:    "test_refresh_secret",
			AccessTokenMins:  15,
			RefreshTokenDays: 7,
		},
	}
}

func newAuthService(db *gorm.DB) *AuthService {
	return NewAuthService(
		repositories.NewUtilisateurRepository(db),
		repositories.NewRefreshTokenRepository(db),
		testConfig(),
	)
}

func TestLoginSuccess(t *testing.T) {
	db := setupTestDB(t)
	svc := newAuthService(db)
	ctx := context.Background()

	u := seedMedecin(t, db, "dr.alami@cabmed.local")

	resp, err := svc.Login(ctx, &LoginInput{Email: u.Email, MotDePasse: "Secret123!"})
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if resp.AccessToken == "" || resp.RefreshToken == "" {
		t.Fatal("expected both tokens")
	}
	if resp.Utilisateur.Email != u.Email || resp.Utilisateur.Role != models.RoleMedecin {
		t.Fatalf("unexpected profile %+v", resp.Utilisateur)
	}

	claims, err := svc.ValidateAccessToken(resp.AccessToken)
	if err != nil {
		t.Fatalf("validate access token: %v", err)
	}
	if claims.UserID != u.ID {
		t.Fatalf("expected user %d in claims got %d", u.ID, claims.UserID)
	}
}

func TestLoginUniformInvalidCredentials(t *testing.T) {
	db := setupTestDB(t)
	svc := newAuthService(db)
	ctx := context.Background()

	seedMedecin(t, db, "dr.alami@cabmed.local")
	seedUtilisateur(t, db, models.RoleSecretaire, "inactif@cabmed.local", false)

	cases := []struct {
		name  string
		input LoginInput
	}{
		{"unknown email", LoginInput{Email: "personne@cabmed.local", MotDePasse: "Secret123!"}},
		{"wrong password", LoginInput{Email: "dr.alami@cabmed.local", MotDePasse: "mauvais"}},
		{"inactive account", LoginInput{Email: "inactif@cabmed.local", MotDePasse: "Secret123!"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := svc.Login(ctx, &tc.input); !errors.Is(err, domain.ErrInvalidCredentials) {
				t.Fatalf("expected ErrInvalidCredentials got %v", err)
			}
		})
	}
}

func TestRefreshTokenRotation(t *testing.T) {
	db := setupTestDB(t)
	svc := newAuthService(db)
	ctx := context.Background()

	u := seedMedecin(t, db, "dr.alami@cabmed.local")

	login, err := svc.Login(ctx, &LoginInput{Email: u.Email, MotDePasse: "Secret123!"})
	if err != nil {
		t.Fatalf("login: %v", err)
	}

	refreshed, err := svc.RefreshToken(ctx, login.RefreshToken)
	if err != nil {
		t.Fatalf("refresh: %v", err)
	}
	if refreshed.RefreshToken == login.RefreshToken {
		t.Fatal("expected a new refresh token")
	}

	// The spent token must be dead
	if _, err := svc.RefreshToken(ctx, login.RefreshToken); !errors.Is(err, domain.ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid for a rotated token got %v", err)
	}

	// The fresh one still works
	if _, err := svc.RefreshToken(ctx, refreshed.RefreshToken); err != nil {
		t.Fatalf("second refresh: %v", err)
	}
}

func TestRefreshTokenGarbage(t *testing.T) {
	db := setupTestDB(t)
	svc := newAuthService(db)

	if _, err := svc.RefreshToken(context.Background(), "not-a-jwt"); !errors.Is(err, domain.ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid got %v", err)
	}
}

func TestLogoutRevokesToken(t *testing.T) {
	db := setupTestDB(t)
	svc := newAuthService(db)
	ctx := context.Background()

	u := seedMedecin(t, db, "dr.alami@cabmed.local")

	login, err := svc.Login(ctx, &LoginInput{Email: u.Email, MotDePasse: "Secret123!"})
	if err != nil {
		t.Fatalf("login: %v", err)
	}

	if err := svc.Logout(ctx, login.RefreshToken); err != nil {
		t.Fatalf("logout: %v", err)
	}
	if _, err := svc.RefreshToken(ctx, login.RefreshToken); !errors.Is(err, domain.ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid after logout got %v", err)
	}
}

func TestLogoutAllRevokesEverySession(t *testing.T) {
	db := setupTestDB(t)
	svc := newAuthService(db)
	ctx := context.Background()

	u := seedMedecin(t, db, "dr.alami@cabmed.local")

	first, err := svc.Login(ctx, &LoginInput{Email: u.Email, MotDePasse: "Secret123!"})
	if err != nil {
		t.Fatalf("first login: %v", err)
	}
	second, err := svc.Login(ctx, &LoginInput{Email: u.Email, MotDePasse: "Secret123!"})
	if err != nil {
		t.Fatalf("second login: %v", err)
	}

	if err := svc.LogoutAll(ctx, u.ID); err != nil {
		t.Fatalf("logout all: %v", err)
	}
	if _, err := svc.RefreshToken(ctx, first.RefreshToken); !errors.Is(err, domain.ErrTokenInvalid) {
		t.Fatalf("expected first session revoked got %v", err)
	}
	if _, err := svc.RefreshToken(ctx, second.RefreshToken); !errors.Is(err, domain.ErrTokenInvalid) {
		t.Fatalf("expected second session revoked got %v", err)
	}
}

func TestMe(t *testing.T) {
	db := setupTestDB(t)
	svc := newAuthService(db)
	ctx := context.Background()

	u := seedMedecin(t, db, "dr.alami@cabmed.local")

	profile, err := svc.Me(ctx, u.ID)
	if err != nil {
		t.Fatalf("me: %v", err)
	}
	if profile.Email != u.Email {
		t.Fatalf("expected %s got %s", u.Email, profile.Email)
	}

	if _, err := svc.Me(ctx, 9999); !errors.Is(err, domain.ErrUtilisateurNotFound) {
		t.Fatalf("expected ErrUtilisateurNotFound got %v", err)
	}
}
