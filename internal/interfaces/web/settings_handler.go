package web

import (
	"github.com/gofiber/fiber/v2"

	"github.com/hulumoya/agency-dashboard/internal/application/session"
	"github.com/hulumoya/agency-dashboard/pkg/logger"
)

// SettingsHandler sirve la página de ajustes. Los ajustes son locales a la
// sesión (el API remoto no expone un endpoint de preferencias): el formulario
// de contraseña y los interruptores de notificación solo se validan y
// confirman, no viajan a ningún lado.
type SettingsHandler struct {
	sessions *session.Store
	log      *logger.Logger
}

// NewSettingsHandler construye el handler de ajustes.
func NewSettingsHandler(sessions *session.Store, log *logger.Logger) *SettingsHandler {
	return &SettingsHandler{sessions: sessions, log: log.Component("web")}
}

// Show renderiza la página de ajustes.
func (h *SettingsHandler) Show(c *fiber.Ctx) error {
	data := view(c, h.sessions, "Settings", "settings")
	data["Profile"] = h.sessions.CachedProfile(c)
	return c.Render("settings", data)
}

// Save valida el formulario local y confirma. No hay endpoint remoto de
// preferencias; el desenlace es un aviso, igual que en la versión anterior
// del panel.
func (h *SettingsHandler) Save(c *fiber.Ctx) error {
	current := c.FormValue("currentPassword")
	next := c.FormValue("newPassword")
	confirm := c.FormValue("confirmPassword")

	if next != "" || current != "" || confirm != "" {
		switch {
		case current == "" || next == "":
			h.sessions.PushFlash(c, "error", "Fill in the current and new password")
		case len(next) < 8:
			h.sessions.PushFlash(c, "error", "Password should be of minimum 8 characters length")
		case next != confirm:
			h.sessions.PushFlash(c, "error", "Passwords must match")
		default:
			h.sessions.PushFlash(c, "info", "Password changes are not available yet. Contact support.")
		}
		return c.Redirect("/settings", fiber.StatusFound)
	}

	h.sessions.PushFlash(c, "success", "Settings saved")
	return c.Redirect("/settings", fiber.StatusFound)
}
