package main

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/soulsisters/joyeria-api/internal/application/auth"
	"github.com/soulsisters/joyeria-api/internal/application/dto"
	"github.com/soulsisters/joyeria-api/pkg/jwt"
)

func testRows(n int) []dto.BulkProductRow {
	rows := make([]dto.BulkProductRow, n)
	for i := range rows {
		rows[i] = dto.BulkProductRow{
			Name:           "Collar de prueba",
			Quantity:       5,
			StorePrice:     9500,
			SuggestedPrice: 12500,
			Category:       "necklaces",
		}
	}
	return rows
}

// bulkServer responde /api/products/bulk aceptando todas las filas, salvo
// las que tengan nombre "mala" (rechazo por fila) o cuando failNext esté
// activo (falla de transporte simulada con 500).
func bulkServer(t *testing.T, failNext *bool) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/products/bulk", r.URL.Path)
		require.Equal(t, "Bearer token-de-prueba", r.Header.Get("Authorization"))

		if *failNext {
			*failNext = false
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		var in dto.BulkImportRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&in))

		out := dto.BulkImportResponse{}
		for _, row := range in.Products {
			if row.Name == "mala" {
				out.Results = append(out.Results, dto.BulkRowResult{Success: false, Name: row.Name, Error: "nombre inválido"})
				out.Failed++
				continue
			}
			out.Results = append(out.Results, dto.BulkRowResult{Success: true, ID: "id-x", Name: row.Name})
			out.Succeeded++
		}
		_ = json.NewEncoder(w).Encode(out)
	}))
}

func TestImportBatches_TodoExitoso(t *testing.T) {
	failNext := false
	srv := bulkServer(t, &failNext)
	defer srv.Close()

	cli := newClient(srv.URL)
	cli.session.Set("token-de-prueba")

	succeeded, failures, undelivered := importBatches(zerolog.Nop(), cli, testRows(7), 3)

	assert.Equal(t, 7, succeeded)
	assert.Empty(t, failures)
	assert.Empty(t, undelivered)
}

// Una fila rechazada por el servidor se reporta, no detiene el lote.
func TestImportBatches_FilaRechazada(t *testing.T) {
	failNext := false
	srv := bulkServer(t, &failNext)
	defer srv.Close()

	cli := newClient(srv.URL)
	cli.session.Set("token-de-prueba")

	rows := testRows(4)
	rows[2].Name = "mala"

	succeeded, failures, undelivered := importBatches(zerolog.Nop(), cli, rows, 2)

	assert.Equal(t, 3, succeeded)
	require.Len(t, failures, 1)
	assert.Equal(t, "mala", failures[0].Name)
	assert.Empty(t, undelivered)
}

// Una falla de transporte deja el lote completo como candidato a reintento
// sin perder los lotes ya aplicados.
func TestImportBatches_LoteNoEntregado(t *testing.T) {
	failNext := true
	srv := bulkServer(t, &failNext)
	defer srv.Close()

	cli := newClient(srv.URL)
	cli.session.Set("token-de-prueba")

	succeeded, failures, undelivered := importBatches(zerolog.Nop(), cli, testRows(6), 3)

	// El primer lote (3 filas) falla; el segundo se aplica.
	assert.Equal(t, 3, succeeded)
	assert.Empty(t, failures)
	assert.Len(t, undelivered, 3)
}

// El monitor comparte la Session con el cliente: al detectar el token
// expirado descarta la sesión y los lotes restantes quedan como no
// entregados en lugar de enviarse sin credencial.
func TestImportBatches_SesionExpiradaDuranteCarga(t *testing.T) {
	failNext := false
	srv := bulkServer(t, &failNext)
	defer srv.Close()

	cli := newClient(srv.URL)

	tok, err := jwt.Generate("secret-de-prueba", "1", "admin", "admin", "Admin", "joyeria-test", 4*time.Hour)
	require.NoError(t, err)
	cli.session.Set(tok)

	var expired bool
	monitor := auth.NewMonitor(cli.session.Token)
	monitor.OnExpired = func() {
		expired = true
		cli.session.Logout()
	}
	monitor.Now = func() time.Time { return time.Now().Add(5 * time.Hour) }
	monitor.Check()

	require.True(t, expired, "el monitor debe detectar el token expirado")
	assert.Empty(t, cli.session.Token(), "la sesión debe quedar descartada")

	succeeded, failures, undelivered := importBatches(zerolog.Nop(), cli, testRows(4), 2)

	assert.Zero(t, succeeded)
	assert.Empty(t, failures)
	assert.Len(t, undelivered, 4, "sin sesión todos los lotes quedan sin entregar")
}

func TestClientLogin_GuardaTokenEnSession(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/auth/login", r.URL.Path)
		var in dto.LoginRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&in))
		if in.Password != "#Admin2026" {
			w.WriteHeader(http.StatusUnauthorized)
			_ = json.NewEncoder(w).Encode(dto.ErrorResponse{Code: "INVALID_CREDENTIALS", Message: "Credenciales inválidas"})
			return
		}
		_ = json.NewEncoder(w).Encode(dto.LoginResponse{Token: "token-emitido"})
	}))
	defer srv.Close()

	cli := newClient(srv.URL)
	require.NoError(t, cli.login("admin", "#Admin2026"))
	assert.Equal(t, "token-emitido", cli.session.Token())

	bad := newClient(srv.URL)
	err := bad.login("admin", "otra")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Credenciales inválidas")
	assert.Empty(t, bad.session.Token())
}

func TestReadRows(t *testing.T) {
	dir := t.TempDir()

	path := filepath.Join(dir, "products.json")
	require.NoError(t, os.WriteFile(path, []byte(`[{"name":"Anillo","quantity":2,"storePrice":4000,"suggestedPrice":6000,"category":"rings"}]`), 0o644))

	rows, err := readRows(path)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Anillo", rows[0].Name)
	assert.Equal(t, "rings", rows[0].Category)

	_, err = readRows(filepath.Join(dir, "no-existe.json"))
	assert.Error(t, err)

	bad := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte(`{"no":"es arreglo"}`), 0o644))
	_, err = readRows(bad)
	assert.Error(t, err)

	empty := filepath.Join(dir, "empty.json")
	require.NoError(t, os.WriteFile(empty, []byte(`[]`), 0o644))
	_, err = readRows(empty)
	assert.Error(t, err)
}
