package api

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/mcycle/internal/db"
)

const testSecretKey = "0123456789abcdef0123456789abcdef"

func newTestApp(t *testing.T) (*fiber.App, *Handler) {
	t.Helper()

	databasePath := filepath.Join(t.TempDir(), "mcycle-api-test.db")
	database, err := db.OpenSQLite(databasePath)
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := database.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})

	handler, err := NewHandler(database, testSecretKey, HandlerOptions{Environment: "test"})
	if err != nil {
		t.Fatalf("new handler: %v", err)
	}
	return NewApp(handler, AppOptions{CORSOrigins: []string{"http://localhost:5173"}}), handler
}

func doJSON(t *testing.T, app *fiber.App, method string, path string, token string, body any) (int, map[string]any) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("encode request body: %v", err)
		}
		reader = bytes.NewReader(encoded)
	}

	request := httptest.NewRequest(method, path, reader)
	request.Header.Set("Content-Type", "application/json")
	if token != "" {
		request.Header.Set("Authorization", "Bearer "+token)
	}

	response, err := app.Test(request, -1)
	if err != nil {
		t.Fatalf("%s %s failed: %v", method, path, err)
	}
	defer response.Body.Close()

	raw, err := io.ReadAll(response.Body)
	if err != nil {
		t.Fatalf("read response body: %v", err)
	}
	payload := map[string]any{}
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &payload); err != nil {
			t.Fatalf("decode response body %q: %v", raw, err)
		}
	}
	return response.StatusCode, payload
}

func signupTestUser(t *testing.T, app *fiber.App, email string) string {
	t.Helper()

	status, payload := doJSON(t, app, http.MethodPost, "/api/auth/signup", "", map[string]any{
		"name":     "Test User",
		"email":    email,
		"password": "StrongPass1",
	})
	if status != http.StatusCreated {
		t.Fatalf("expected signup status 201, got %d: %v", status, payload)
	}
	token, _ := payload["token"].(string)
	if token == "" {
		t.Fatalf("expected token in signup response, got %v", payload)
	}
	return token
}

func nestedMap(t *testing.T, payload map[string]any, key string) map[string]any {
	t.Helper()
	value, ok := payload[key].(map[string]any)
	if !ok {
		t.Fatalf("expected object at %q, got %v", key, payload[key])
	}
	return value
}

func nestedList(t *testing.T, payload map[string]any, key string) []any {
	t.Helper()
	value, ok := payload[key].([]any)
	if !ok {
		t.Fatalf("expected list at %q, got %v", key, payload[key])
	}
	return value
}
