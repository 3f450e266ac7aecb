package web_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hulumoya/agency-dashboard/internal/application/session"
	"github.com/hulumoya/agency-dashboard/internal/interfaces/web"
	"github.com/hulumoya/agency-dashboard/pkg/config"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

func testSessionConfig() config.SessionConfig {
	return config.SessionConfig{CookieName: "agency_session", TTL: time.Hour}
}

// buildTestApp construye una app Fiber mínima con una ruta protegida y otra
// que siembra el token en la sesión (simulando el login).
func buildTestApp(sessions *session.Store) *fiber.App {
	app := fiber.New()
	app.Post("/seed", func(c *fiber.Ctx) error {
		return sessions.SetAuth(c, c.Query("token"), "17")
	})
	app.Get("/protected", web.RequireSession(sessions), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})
	return app
}

// bearerWithExpiry genera un JWT firmado con expiración relativa. La firma no
// se verifica en el dashboard, solo el contenido.
func bearerWithExpiry(t *testing.T, ttl time.Duration) string {
	t.Helper()
	claims := jwt.MapClaims{
		"userId": "17",
		"exp":    time.Now().Add(ttl).Unix(),
	}
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("remote-secret"))
	require.NoError(t, err)
	return tok
}

// seedSession hace el POST /seed y devuelve la cookie de sesión resultante.
func seedSession(t *testing.T, app *fiber.App, bearer string) *http.Cookie {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/seed?token="+bearer, nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	for _, cookie := range resp.Cookies() {
		if cookie.Name == "agency_session" {
			return cookie
		}
	}
	t.Fatal("no se emitió la cookie de sesión")
	return nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests RequireSession
// ──────────────────────────────────────────────────────────────────────────────

// Caso 1: sin sesión → redirect a /login.
func TestRequireSession_SinTokenRedirigeALogin(t *testing.T) {
	app := buildTestApp(session.New(testSessionConfig()))

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Equal(t, "/login", resp.Header.Get("Location"))
}

// Caso 2: sesión con token vigente → pasa (HTTP 200).
func TestRequireSession_TokenVigentePasa(t *testing.T) {
	sessions := session.New(testSessionConfig())
	app := buildTestApp(sessions)

	cookie := seedSession(t, app, bearerWithExpiry(t, time.Hour))

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.AddCookie(cookie)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

// Caso 3: token expirado → la sesión se destruye y se redirige a /login.
func TestRequireSession_TokenExpiradoDestruyeYRedirige(t *testing.T) {
	sessions := session.New(testSessionConfig())
	app := buildTestApp(sessions)

	cookie := seedSession(t, app, bearerWithExpiry(t, -time.Minute))

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.AddCookie(cookie)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Equal(t, "/login", resp.Header.Get("Location"))

	// La misma cookie ya no sirve: la sesión quedó destruida.
	req2 := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req2.AddCookie(cookie)
	resp2, err := app.Test(req2, -1)
	require.NoError(t, err)
	defer resp2.Body.Close()
	assert.Equal(t, http.StatusFound, resp2.StatusCode)
}

// Caso 4: token malformado en la sesión → redirect, no panic.
func TestRequireSession_TokenBasuraRedirige(t *testing.T) {
	sessions := session.New(testSessionConfig())
	app := buildTestApp(sessions)

	cookie := seedSession(t, app, "no.es.un.jwt")

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.AddCookie(cookie)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Equal(t, "/login", resp.Header.Get("Location"))
}
