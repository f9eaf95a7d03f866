package handlers

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"cabmed-api/internal/config"

	"github.com/gofiber/fiber/v2"
)

func TestRootReportsRunning(t *testing.T) {
	config.AppConfig = &config.Config{AppMode: "dev"}

	app := fiber.New()
	handler := NewHealthHandler()
	app.Get("/", handler.Root)

	resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200 got %d", resp.StatusCode)
	}

	var body map[string]interface{}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body["status"] != "running" {
		t.Fatalf("expected status running got %v", body["status"])
	}
	if body["mode"] != "dev" {
		t.Fatalf("expected mode dev got %v", body["mode"])
	}
}

func TestHealthCheckReportsDatabaseState(t *testing.T) {
	app := fiber.New()
	handler := NewHealthHandler()
	app.Get("/health", handler.HealthCheck)

	resp, err := app.Test(httptest.NewRequest("GET", "/health", nil))
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200 got %d", resp.StatusCode)
	}

	var body struct {
		Status string `json:"status"`
		Checks struct {
			API      string `json:"api"`
			Database string `json:"database"`
		} `json:"checks"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.Status != "ok" || body.Checks.API != "healthy" {
		t.Fatalf("unexpected health payload: %+v", body)
	}
	// No database connection in tests, the check must degrade, not fail
	if body.Checks.Database != "unhealthy" {
		t.Fatalf("expected database unhealthy without a connection, got %q", body.Checks.Database)
	}
}
