package web

import (
	"github.com/gofiber/fiber/v2"

	"github.com/hulumoya/agency-dashboard/internal/application/session"
	"github.com/hulumoya/agency-dashboard/internal/application/usecase"
	"github.com/hulumoya/agency-dashboard/internal/domain"
)

// resolveAgencyID devuelve el id de agencia de la sesión. Si la sesión no lo
// tiene (el perfil no cargó durante el login), lo reintenta resolviendo el
// perfil por el id de usuario y lo cachea. Sin id no hay dashboard posible:
// devuelve domain.ErrMissingAgency.
func resolveAgencyID(c *fiber.Ctx, sessions *session.Store, agencyUC *usecase.AgencyUseCase) (int, error) {
	if id := sessions.AgencyID(c); id > 0 {
		return id, nil
	}

	userID := sessions.UserID(c)
	if userID == "" {
		return 0, domain.ErrMissingAgency
	}
	profile, err := agencyUC.ProfileByUser(c.UserContext(), userID)
	if err != nil || profile == nil || profile.ID <= 0 {
		return 0, domain.ErrMissingAgency
	}
	_ = sessions.CacheProfile(c, profile)
	_ = sessions.SetAgencyID(c, profile.ID)
	return profile.ID, nil
}

// redirectMissingAgency corta la vista cuando no hay agencia resoluble: la
// sesión no sirve para nada sin ella, así que se destruye.
func redirectMissingAgency(c *fiber.Ctx, sessions *session.Store) error {
	_ = sessions.Clear(c)
	sessions.PushFlash(c, "error", "Your agency profile could not be loaded. Please sign in again.")
	return c.Redirect("/login", fiber.StatusFound)
}
