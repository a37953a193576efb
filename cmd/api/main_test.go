package main

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Sin swagger.json generado el arranque debe seguir adelante sin Swagger UI,
// nunca entrar en pánico.
func TestRegisterSwagger_SinSpecNoPanic(t *testing.T) {
	app := fiber.New()

	var mounted bool
	require.NotPanics(t, func() {
		mounted = registerSwagger(app, filepath.Join(t.TempDir(), "no-existe.json"))
	})
	assert.False(t, mounted, "sin spec no debe montarse el Swagger UI")

	// El resto del API sigue sirviendo.
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})
	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/health", nil), -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestRegisterSwagger_ConSpecMonta(t *testing.T) {
	dir := t.TempDir()
	spec := filepath.Join(dir, "swagger.json")
	require.NoError(t, os.WriteFile(spec, []byte(`{"swagger":"2.0","info":{"title":"Joyería POS API","version":"1.0"},"paths":{}}`), 0o644))

	app := fiber.New()
	assert.True(t, registerSwagger(app, spec))

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/docs", nil), -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode, "el UI debe responder en /docs")
}
