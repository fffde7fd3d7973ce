package controller

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	"hadith-voice-be/internal/config"
	"hadith-voice-be/internal/dto"
	"hadith-voice-be/internal/pkg/serverutils"
	"hadith-voice-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTokenApp(t *testing.T) *fiber.App {
	t.Helper()

	app := fiber.New()
	app.Use(serverutils.ErrorHandlerMiddleware())

	tokenService := service.NewTokenService(config.LiveKitConfig{
		ApiKey:    "APIkey123",
		ApiSecret: "secret-signing-key",
		URL:       "wss://voice.example.com",
	})
	NewTokenController(tokenService).RegisterRoutes(app)
	return app
}

func TestCreateTokenDefaults(t *testing.T) {
	app := newTokenApp(t)

	req := httptest.NewRequest("POST", "/token", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body dto.CreateTokenResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.NotEmpty(t, body.Token)
	assert.Equal(t, "wss://voice.example.com", body.URL)
}

func TestCreateTokenCustomIdentity(t *testing.T) {
	app := newTokenApp(t)

	payload := bytes.NewBufferString(`{"identity": "student-42", "roomName": "study-room"}`)
	req := httptest.NewRequest("POST", "/token", payload)
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body dto.CreateTokenResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))

	// JWT payload is the middle dot-separated part.
	parts := strings.Split(body.Token, ".")
	require.Len(t, parts, 3)
}

func TestCreateTokenMissingConfig(t *testing.T) {
	app := fiber.New()
	app.Use(serverutils.ErrorHandlerMiddleware())
	NewTokenController(service.NewTokenService(config.LiveKitConfig{})).RegisterRoutes(app)

	req := httptest.NewRequest("POST", "/token", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
}

func TestHealth(t *testing.T) {
	app := newTokenApp(t)

	resp, err := app.Test(httptest.NewRequest("GET", "/health", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "ok", body["status"])
}
