package web

import (
	"github.com/gofiber/fiber/v2"

	"github.com/hulumoya/agency-dashboard/internal/application/session"
	"github.com/hulumoya/agency-dashboard/internal/application/usecase"
	"github.com/hulumoya/agency-dashboard/internal/infrastructure/restapi"
	"github.com/hulumoya/agency-dashboard/pkg/logger"
)

// recentTenders cuántos tenders recientes muestra la portada.
const recentTenders = 5

// DashboardHandler sirve la portada: tarjetas de totales, distribución por
// estado y los últimos tenders publicados.
type DashboardHandler struct {
	agencyUC *usecase.AgencyUseCase
	tenderUC *usecase.TenderUseCase
	sessions *session.Store
	log      *logger.Logger
}

// NewDashboardHandler construye el handler de la portada.
func NewDashboardHandler(agencyUC *usecase.AgencyUseCase, tenderUC *usecase.TenderUseCase, sessions *session.Store, log *logger.Logger) *DashboardHandler {
	return &DashboardHandler{agencyUC: agencyUC, tenderUC: tenderUC, sessions: sessions, log: log.Component("web")}
}

// Index renderiza el dashboard. Las estadísticas y el listado reciente se
// piden al servidor en cada visita; si una de las dos cargas falla, la otra
// se muestra igual con un aviso.
func (h *DashboardHandler) Index(c *fiber.Ctx) error {
	agencyID, err := resolveAgencyID(c, h.sessions, h.agencyUC)
	if err != nil {
		return redirectMissingAgency(c, h.sessions)
	}

	stats, err := h.agencyUC.Statistics(c.UserContext(), agencyID)
	if err != nil {
		h.log.Warn().Err(err).Int("agency_id", agencyID).Msg("cargar estadísticas del dashboard")
		h.sessions.PushFlash(c, "warning", restapi.UserMessage(err, "Could not load agency statistics"))
	}

	recent, err := h.tenderUC.List(c.UserContext(), agencyID, 0, recentTenders)
	if err != nil {
		h.log.Warn().Err(err).Int("agency_id", agencyID).Msg("cargar tenders recientes")
		h.sessions.PushFlash(c, "warning", restapi.UserMessage(err, "Could not load recent tenders"))
	}

	data := view(c, h.sessions, "Dashboard", "dashboard")
	data["Profile"] = h.sessions.CachedProfile(c)
	data["Stats"] = stats
	data["Recent"] = recent
	return c.Render("dashboard", data)
}
