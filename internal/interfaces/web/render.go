// Package web sirve las páginas HTML del panel de administración de la
// agencia. Cada handler corresponde a una vista: lee de los casos de uso,
// nunca llama al API remoto directamente, y comunica los desenlaces con
// avisos flash que sobreviven al redirect.
package web

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/template/html/v2"

	"github.com/hulumoya/agency-dashboard/internal/application/session"
)

// NewEngine construye el motor de plantillas con los helpers de las vistas.
func NewEngine(dir string) *html.Engine {
	engine := html.New(dir, ".html")
	engine.AddFunc("truncate", Truncate)
	engine.AddFunc("fmtDate", FormatDate)
	engine.AddFunc("fmtDateTime", FormatDateTime)
	engine.AddFunc("orDash", orDash)
	engine.AddFunc("statusClass", statusClass)
	engine.AddFunc("indent", indent)
	return engine
}

// truncateLimit es el largo máximo de texto en celdas de tabla.
const truncateLimit = 80

// Truncate corta s a truncateLimit runas y añade puntos suspensivos.
func Truncate(s string) string {
	runes := []rune(s)
	if len(runes) <= truncateLimit {
		return s
	}
	return strings.TrimSpace(string(runes[:truncateLimit])) + "…"
}

// acceptedLayouts son los formatos de fecha que sirve el API según la
// antigüedad del registro.
var acceptedLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02",
}

// FormatDate presenta una fecha del API como "Jan 2, 2006"; un valor ausente
// o no parseable se muestra como "-" en vez de romper la vista.
func FormatDate(s string) string {
	t, ok := parseAPITime(s)
	if !ok {
		return "-"
	}
	return t.Format("Jan 2, 2006")
}

// FormatDateTime presenta fecha y hora como "Jan 2, 2006 15:04".
func FormatDateTime(s string) string {
	t, ok := parseAPITime(s)
	if !ok {
		return "-"
	}
	return t.Format("Jan 2, 2006 15:04")
}

func parseAPITime(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range acceptedLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// orDash muestra "-" para valores opcionales en blanco.
func orDash(s string) string {
	if strings.TrimSpace(s) == "" {
		return "-"
	}
	return s
}

// statusClass mapea el estado a la clase CSS de su badge.
func statusClass(status string) string {
	switch status {
	case "OPEN":
		return "badge-open"
	case "CLOSED":
		return "badge-closed"
	case "CANCELLED":
		return "badge-cancelled"
	default:
		return "badge-unknown"
	}
}

// indent devuelve la sangría visual de una opción del selector de servicios.
func indent(depth int) string {
	return strings.Repeat("  ", depth)
}

// view arma el mapa base que esperan todas las plantillas: título, pestaña
// activa del menú y avisos pendientes. Los handlers añaden sus propios datos.
func view(c *fiber.Ctx, sessions *session.Store, title, active string) fiber.Map {
	return fiber.Map{
		"Title":   title,
		"Active":  active,
		"Flashes": sessions.PopFlashes(c),
	}
}
