// Package restapi implementa los puertos de dominio sobre el API REST remoto
// de tender-management. Es el equivalente de una capa de persistencia: cada
// gateway fija método, plantilla de ruta y shape de payload/respuesta de su
// grupo de endpoints. No hay retry, backoff ni circuit-breaking: un fallo se
// propaga al caller tal cual.
package restapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"

	"github.com/google/uuid"

	"github.com/hulumoya/agency-dashboard/pkg/config"
	"github.com/hulumoya/agency-dashboard/pkg/logger"
)

// Client transporte compartido por todos los gateways.
type Client struct {
	baseURL string
	http    *http.Client
	log     *logger.Logger
}

// NewClient construye el cliente del API remoto.
func NewClient(cfg config.APIConfig, log *logger.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		http:    &http.Client{Timeout: cfg.Timeout},
		log:     log.Component("restapi"),
	}
}

type ctxKey int

const tokenKey ctxKey = iota

// WithToken adjunta el bearer token de la sesión al contexto; los gateways lo
// convierten en header Authorization. Un contexto sin token produce llamadas
// anónimas (login, registro, verificación).
func WithToken(ctx context.Context, token string) context.Context {
	if token == "" {
		return ctx
	}
	return context.WithValue(ctx, tokenKey, token)
}

func tokenFrom(ctx context.Context) string {
	t, _ := ctx.Value(tokenKey).(string)
	return t
}

// doJSON ejecuta una llamada JSON y decodifica la respuesta en out (out nil
// descarta el cuerpo). body nil envía la petición sin cuerpo.
func (c *Client) doJSON(ctx context.Context, method, path string, query url.Values, body, out any) error {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("restapi: codificar cuerpo: %w", err)
		}
		reader = bytes.NewReader(raw)
	}

	req, err := c.newRequest(ctx, method, path, query, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return c.send(req, out)
}

// doMultipart sube un archivo con el campo "file" (el nombre que espera el API).
func (c *Client) doMultipart(ctx context.Context, method, path, filename string, file io.Reader, out any) error {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	part, err := w.CreateFormFile("file", filename)
	if err != nil {
		return fmt.Errorf("restapi: preparar multipart: %w", err)
	}
	if _, err := io.Copy(part, file); err != nil {
		return fmt.Errorf("restapi: copiar archivo: %w", err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("restapi: cerrar multipart: %w", err)
	}

	req, err := c.newRequest(ctx, method, path, nil, &buf)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", w.FormDataContentType())
	return c.send(req, out)
}

func (c *Client) newRequest(ctx context.Context, method, path string, query url.Values, body io.Reader) (*http.Request, error) {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, method, u, body)
	if err != nil {
		return nil, fmt.Errorf("restapi: crear petición: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-Id", uuid.NewString())
	if token := tokenFrom(ctx); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return req, nil
}

func (c *Client) send(req *http.Request, out any) error {
	c.log.Debug().Str("method", req.Method).Str("url", req.URL.Path).Msg("llamada al API remoto")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("restapi: %s %s: %w", req.Method, req.URL.Path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("restapi: leer respuesta: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		upErr := newUpstreamError(resp.StatusCode, raw)
		c.log.Warn().Int("status", resp.StatusCode).Str("url", req.URL.Path).
			Str("message", upErr.Message).Msg("respuesta de error del API remoto")
		return fmt.Errorf("restapi: %s %s: %w", req.Method, req.URL.Path, upErr)
	}

	if out == nil || len(raw) == 0 {
		return nil
	}
	// Los endpoints de carga devuelven la ruta como string, a veces JSON
	// ("uploads/x.pdf") y a veces texto plano; se aceptan ambas.
	if s, ok := out.(*string); ok {
		if err := json.Unmarshal(raw, s); err != nil {
			*s = string(raw)
		}
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("restapi: decodificar respuesta de %s: %w", req.URL.Path, err)
	}
	return nil
}
