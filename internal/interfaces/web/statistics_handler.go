package web

import (
	"github.com/gofiber/fiber/v2"

	"github.com/hulumoya/agency-dashboard/internal/application/session"
	"github.com/hulumoya/agency-dashboard/internal/application/usecase"
	"github.com/hulumoya/agency-dashboard/internal/infrastructure/restapi"
	"github.com/hulumoya/agency-dashboard/pkg/logger"
)

// StatisticsHandler sirve la página de estadísticas de la agencia.
type StatisticsHandler struct {
	agencyUC *usecase.AgencyUseCase
	sessions *session.Store
	log      *logger.Logger
}

// NewStatisticsHandler construye el handler de estadísticas.
func NewStatisticsHandler(agencyUC *usecase.AgencyUseCase, sessions *session.Store, log *logger.Logger) *StatisticsHandler {
	return &StatisticsHandler{agencyUC: agencyUC, sessions: sessions, log: log.Component("web")}
}

// Show renderiza los agregados calculados por el servidor junto a la
// distribución porcentual por estado.
func (h *StatisticsHandler) Show(c *fiber.Ctx) error {
	agencyID, err := resolveAgencyID(c, h.sessions, h.agencyUC)
	if err != nil {
		return redirectMissingAgency(c, h.sessions)
	}

	stats, err := h.agencyUC.Statistics(c.UserContext(), agencyID)
	if err != nil {
		h.log.Warn().Err(err).Int("agency_id", agencyID).Msg("cargar estadísticas")
		h.sessions.PushFlash(c, "error", restapi.UserMessage(err, "Could not load statistics"))
	}

	data := view(c, h.sessions, "Statistics", "statistics")
	data["Stats"] = stats
	if stats != nil && stats.TotalTenders > 0 {
		total := float64(stats.TotalTenders)
		data["OpenPct"] = int(float64(stats.OpenTenders) / total * 100)
		data["ClosedPct"] = int(float64(stats.ClosedTenders) / total * 100)
		data["CancelledPct"] = int(float64(stats.CancelledTenders) / total * 100)
	}
	return c.Render("statistics", data)
}
