package web

import (
	"github.com/gofiber/fiber/v2"

	"github.com/hulumoya/agency-dashboard/internal/application/dto"
	"github.com/hulumoya/agency-dashboard/internal/application/session"
	"github.com/hulumoya/agency-dashboard/internal/application/usecase"
	"github.com/hulumoya/agency-dashboard/internal/infrastructure/restapi"
	"github.com/hulumoya/agency-dashboard/pkg/logger"
)

// ProfileHandler sirve el perfil de la agencia: lectura, edición y carga de
// la licencia comercial.
type ProfileHandler struct {
	agencyUC *usecase.AgencyUseCase
	sessions *session.Store
	log      *logger.Logger
}

// NewProfileHandler construye el handler de perfil.
func NewProfileHandler(agencyUC *usecase.AgencyUseCase, sessions *session.Store, log *logger.Logger) *ProfileHandler {
	return &ProfileHandler{agencyUC: agencyUC, sessions: sessions, log: log.Component("web")}
}

// Show renderiza el perfil. Se relee del servidor en cada visita y la copia
// de la sesión se refresca; si la red falla se cae a la copia cacheada.
func (h *ProfileHandler) Show(c *fiber.Ctx) error {
	agencyID, err := resolveAgencyID(c, h.sessions, h.agencyUC)
	if err != nil {
		return redirectMissingAgency(c, h.sessions)
	}

	profile, err := h.agencyUC.Profile(c.UserContext(), agencyID)
	if err != nil {
		h.log.Warn().Err(err).Int("agency_id", agencyID).Msg("cargar perfil de agencia")
		h.sessions.PushFlash(c, "warning", restapi.UserMessage(err, "Could not refresh the profile"))
		profile = h.sessions.CachedProfile(c)
	} else {
		_ = h.sessions.CacheProfile(c, profile)
	}
	if profile == nil {
		return redirectMissingAgency(c, h.sessions)
	}

	data := view(c, h.sessions, "Profile", "profile")
	data["Profile"] = profile
	data["Form"] = dto.ProfileForm{
		CompanyName:   profile.CompanyName,
		Website:       profile.Website,
		ContactPerson: profile.ContactPerson,
	}
	data["Errors"] = map[string]string{}
	return c.Render("profile", data)
}

// Update procesa la edición del perfil y guarda la versión del servidor.
func (h *ProfileHandler) Update(c *fiber.Ctx) error {
	agencyID, err := resolveAgencyID(c, h.sessions, h.agencyUC)
	if err != nil {
		return redirectMissingAgency(c, h.sessions)
	}

	var form dto.ProfileForm
	if err := c.BodyParser(&form); err != nil {
		return fiber.ErrBadRequest
	}
	dto.TrimSpaces(&form.CompanyName, &form.Website, &form.ContactPerson)

	if errs := dto.ValidateForm(form); len(errs) > 0 {
		data := view(c, h.sessions, "Profile", "profile")
		data["Profile"] = h.sessions.CachedProfile(c)
		data["Form"] = form
		data["Errors"] = errs
		return c.Render("profile", data)
	}

	updated, err := h.agencyUC.UpdateProfile(c.UserContext(), agencyID, form)
	if err != nil {
		h.log.Warn().Err(err).Int("agency_id", agencyID).Msg("actualizar perfil de agencia")
		h.sessions.PushFlash(c, "error", restapi.UserMessage(err, "Could not update the profile"))
		return c.Redirect("/profile", fiber.StatusFound)
	}

	_ = h.sessions.CacheProfile(c, updated)
	h.sessions.PushFlash(c, "success", "Profile updated successfully")
	return c.Redirect("/profile", fiber.StatusFound)
}

// UploadLicense sube la licencia comercial (multipart) y refresca el perfil.
func (h *ProfileHandler) UploadLicense(c *fiber.Ctx) error {
	agencyID, err := resolveAgencyID(c, h.sessions, h.agencyUC)
	if err != nil {
		return redirectMissingAgency(c, h.sessions)
	}

	doc, closeDoc, err := formDocument(c, "license")
	if err != nil || doc == nil {
		h.sessions.PushFlash(c, "error", "Choose a license file to upload")
		return c.Redirect("/profile", fiber.StatusFound)
	}
	defer closeDoc()

	if _, err := h.agencyUC.UploadLicense(c.UserContext(), agencyID, doc.Filename, doc.File); err != nil {
		h.log.Warn().Err(err).Int("agency_id", agencyID).Msg("subir licencia comercial")
		h.sessions.PushFlash(c, "error", restapi.UserMessage(err, "Could not upload the license"))
		return c.Redirect("/profile", fiber.StatusFound)
	}

	// El perfil cacheado queda viejo tras la carga; la próxima visita lo relee.
	h.sessions.PushFlash(c, "success", "Business license uploaded")
	return c.Redirect("/profile", fiber.StatusFound)
}
