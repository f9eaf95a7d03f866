package response

import (
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"testing"

	"cabmed-api/internal/core/domain"

	"github.com/gofiber/fiber/v2"
)

func TestStatusOf(t *testing.T) {
	cases := []struct {
		err    error
		status int
	}{
		{domain.ErrInvalidInput, fiber.StatusBadRequest},
		{domain.ErrInvalidCredentials, fiber.StatusUnauthorized},
		{domain.ErrTokenExpired, fiber.StatusUnauthorized},
		{domain.ErrForbidden, fiber.StatusForbidden},
		{domain.ErrPatientNotFound, fiber.StatusNotFound},
		{domain.ErrDossierNotFound, fiber.StatusNotFound},
		{domain.ErrUtilisateurNotFound, fiber.StatusNotFound},
		{domain.ErrDuplicateEntry, fiber.StatusConflict},
		{domain.ErrCINAlreadyExists, fiber.StatusConflict},
		{fmt.Errorf("wrapped: %w", domain.ErrFactureNotFound), fiber.StatusNotFound},
		{fmt.Errorf("driver: connection refused"), fiber.StatusInternalServerError},
	}
	for _, tc := range cases {
		if got := StatusOf(tc.err); got != tc.status {
			t.Errorf("StatusOf(%v) = %d, want %d", tc.err, got, tc.status)
		}
	}
}

func TestFromError(t *testing.T) {
	app := fiber.New()
	app.Get("/known", func(c *fiber.Ctx) error {
		return FromError(c, domain.ErrDossierNotFound, "Failed to retrieve dossier")
	})
	app.Get("/unknown", func(c *fiber.Ctx) error {
		return FromError(c, fmt.Errorf("dial tcp: i/o timeout"), "Failed to retrieve dossier")
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/known", nil))
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != fiber.StatusNotFound {
		t.Fatalf("expected 404 got %d", resp.StatusCode)
	}
	var body Response
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.Success || body.Error != domain.ErrDossierNotFound.Error() || body.Code != fiber.StatusNotFound {
		t.Fatalf("unexpected envelope: %+v", body)
	}

	resp, err = app.Test(httptest.NewRequest("GET", "/unknown", nil))
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != fiber.StatusInternalServerError {
		t.Fatalf("expected 500 got %d", resp.StatusCode)
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	// Internal failures must not leak driver details to the client
	if body.Error != "Failed to retrieve dossier" {
		t.Fatalf("expected fallback message, got %q", body.Error)
	}
}
