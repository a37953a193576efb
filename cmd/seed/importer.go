package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/rs/zerolog"

	"github.com/soulsisters/joyeria-api/internal/application/auth"
	"github.com/soulsisters/joyeria-api/internal/application/dto"
)

const failedFile = "failed_products.json"

type failedRow struct {
	Name  string `json:"name"`
	Error string `json:"error"`
}

// client cliente HTTP mínimo contra el API de inventario. El token vive en
// la Session: el monitor de vigencia la vigila mientras dura la carga.
type client struct {
	http    *http.Client
	baseURL string
	session *auth.Session
}

func newClient(baseURL string) *client {
	return &client{
		http:    &http.Client{Timeout: 30 * time.Second},
		baseURL: baseURL,
		session: &auth.Session{},
	}
}

// importBatches envía las filas en lotes. Devuelve el total de filas
// aceptadas, las fallas por fila reportadas por el servidor, y las filas de
// lotes que no se pudieron entregar (candidatas a reintento).
func importBatches(log zerolog.Logger, cli *client, rows []dto.BulkProductRow, size int) (succeeded int, failures []failedRow, undelivered []dto.BulkProductRow) {
	for start := 0; start < len(rows); start += size {
		end := start + size
		if end > len(rows) {
			end = len(rows)
		}
		chunk := rows[start:end]

		resp, err := cli.bulkImport(chunk)
		if err != nil {
			log.Error().Err(err).Int("desde", start).Int("hasta", end).Msg("lote no entregado")
			undelivered = append(undelivered, chunk...)
			continue
		}

		succeeded += resp.Succeeded
		for _, r := range resp.Results {
			if !r.Success {
				log.Warn().Str("producto", r.Name).Str("error", r.Error).Msg("fila rechazada")
				failures = append(failures, failedRow{Name: r.Name, Error: r.Error})
			}
		}
		log.Info().Int("desde", start).Int("hasta", end).Int("ok", resp.Succeeded).Msg("lote aplicado")
	}
	return succeeded, failures, undelivered
}

func readRows(path string) ([]dto.BulkProductRow, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var rows []dto.BulkProductRow
	if err := json.Unmarshal(data, &rows); err != nil {
		return nil, fmt.Errorf("el archivo debe ser un arreglo JSON de productos: %w", err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("el archivo no contiene productos")
	}
	return rows, nil
}

func writeFailed(rows []failedRow) error {
	data, err := json.MarshalIndent(rows, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(failedFile, data, 0o644)
}

// login obtiene el token de sesión con el que se firman las cargas.
func (c *client) login(username, password string) error {
	body, err := json.Marshal(dto.LoginRequest{Username: username, Password: password})
	if err != nil {
		return err
	}
	resp, err := c.http.Post(c.baseURL+"/api/auth/login", "application/json", bytes.NewReader(body))
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("login rechazado: %s", readError(resp.Body))
	}
	var out dto.LoginResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return err
	}
	c.session.Set(out.Token)
	return nil
}

// bulkImport envía un lote a /api/products/bulk.
func (c *client) bulkImport(rows []dto.BulkProductRow) (*dto.BulkImportResponse, error) {
	body, err := json.Marshal(dto.BulkImportRequest{Products: rows})
	if err != nil {
		return nil, err
	}
	req, err := http.NewRequest(http.MethodPost, c.baseURL+"/api/products/bulk", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	token := c.session.Token()
	if token == "" {
		return nil, fmt.Errorf("sesión expirada durante la carga")
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("el servidor respondió %d: %s", resp.StatusCode, readError(resp.Body))
	}
	var out dto.BulkImportResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, err
	}
	return &out, nil
}

// readError extrae el mensaje de una respuesta de error del API.
func readError(r io.Reader) string {
	data, _ := io.ReadAll(io.LimitReader(r, 4096))
	var e dto.ErrorResponse
	if json.Unmarshal(data, &e) == nil && e.Message != "" {
		return e.Message
	}
	return string(data)
}
