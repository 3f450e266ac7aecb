package web

import (
	"github.com/gofiber/fiber/v2"

	"github.com/hulumoya/agency-dashboard/internal/application/session"
	"github.com/hulumoya/agency-dashboard/internal/infrastructure/restapi"
	"github.com/hulumoya/agency-dashboard/pkg/token"
)

// RequireSession protege las rutas privadas: sin token en la sesión redirige
// a /login. Un token presente pero ya expirado destruye la sesión antes de
// redirigir, para no dejar al usuario en un limbo de llamadas 401.
// El token válido se adjunta al contexto de la petición; los gateways lo
// convierten en header Authorization.
func RequireSession(sessions *session.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		bearer := sessions.Token(c)
		if bearer == "" {
			return c.Redirect("/login", fiber.StatusFound)
		}
		if _, err := token.Inspect(bearer); err != nil {
			_ = sessions.Clear(c)
			return c.Redirect("/login", fiber.StatusFound)
		}
		c.SetUserContext(restapi.WithToken(c.UserContext(), bearer))
		return c.Next()
	}
}
