// Package session centraliza el estado durable del navegador: token, ids,
// perfil cacheado, email pendiente y borrador de tender. Es la única puerta
// de acceso a esas claves; ninguna vista toca la sesión de Fiber a mano.
package session

import (
	"encoding/json"
	"strconv"

	"github.com/gofiber/fiber/v2"
	fibersession "github.com/gofiber/fiber/v2/middleware/session"

	"github.com/hulumoya/agency-dashboard/internal/application/tenderform"
	"github.com/hulumoya/agency-dashboard/internal/domain/entity"
	"github.com/hulumoya/agency-dashboard/pkg/config"
)

// Claves de la sesión. Logout las limpia todas de una vez (destroy).
const (
	keyToken        = "token"
	keyUserID       = "userId"
	keyAgencyID     = "agencyId"
	keyProfile      = "agencyProfile"
	keyPendingEmail = "pendingEmail"
	keyTenderDraft  = "tenderDraft"
	keyFlashes      = "flashes"
)

// Store acceso tipado a la sesión del navegador.
type Store struct {
	inner *fibersession.Store
}

// New construye el store sobre el middleware de sesión de Fiber.
func New(cfg config.SessionConfig) *Store {
	return &Store{inner: fibersession.New(fibersession.Config{
		KeyLookup:      "cookie:" + cfg.CookieName,
		Expiration:     cfg.TTL,
		CookieSecure:   cfg.Secure,
		CookieHTTPOnly: true,
		CookieSameSite: "Lax",
	})}
}

func (s *Store) get(c *fiber.Ctx) (*fibersession.Session, error) {
	return s.inner.Get(c)
}

func (s *Store) getString(c *fiber.Ctx, key string) string {
	sess, err := s.get(c)
	if err != nil {
		return ""
	}
	v, _ := sess.Get(key).(string)
	return v
}

func (s *Store) setString(c *fiber.Ctx, key, value string) error {
	sess, err := s.get(c)
	if err != nil {
		return err
	}
	sess.Set(key, value)
	return sess.Save()
}

// Token devuelve el bearer token del API remoto, o "" sin sesión iniciada.
func (s *Store) Token(c *fiber.Ctx) string { return s.getString(c, keyToken) }

// UserID devuelve el id del usuario autenticado.
func (s *Store) UserID(c *fiber.Ctx) string { return s.getString(c, keyUserID) }

// SetAuth guarda token + userId tras un login exitoso.
func (s *Store) SetAuth(c *fiber.Ctx, token, userID string) error {
	sess, err := s.get(c)
	if err != nil {
		return err
	}
	sess.Set(keyToken, token)
	if userID != "" {
		sess.Set(keyUserID, userID)
	}
	return sess.Save()
}

// SetAgencyID guarda el id de agencia resuelto tras el login/verificación.
func (s *Store) SetAgencyID(c *fiber.Ctx, agencyID int) error {
	return s.setString(c, keyAgencyID, strconv.Itoa(agencyID))
}

// CacheProfile guarda el perfil de agencia como JSON en la sesión.
func (s *Store) CacheProfile(c *fiber.Ctx, profile *entity.Agency) error {
	if profile == nil {
		return nil
	}
	raw, err := json.Marshal(profile)
	if err != nil {
		return err
	}
	return s.setString(c, keyProfile, string(raw))
}

// CachedProfile devuelve el perfil cacheado, o nil si no hay o no parsea.
func (s *Store) CachedProfile(c *fiber.Ctx) *entity.Agency {
	raw := s.getString(c, keyProfile)
	if raw == "" {
		return nil
	}
	var profile entity.Agency
	if err := json.Unmarshal([]byte(raw), &profile); err != nil {
		return nil
	}
	return &profile
}

// AgencyID resuelve el id de agencia de la sesión: primero el id del perfil
// cacheado, después la clave agencyId suelta. Devuelve 0 si no hay ninguno.
func (s *Store) AgencyID(c *fiber.Ctx) int {
	if profile := s.CachedProfile(c); profile != nil && profile.ID > 0 {
		return profile.ID
	}
	if raw := s.getString(c, keyAgencyID); raw != "" {
		if id, err := strconv.Atoi(raw); err == nil {
			return id
		}
	}
	return 0
}

// PendingEmail devuelve el email a la espera de verificación.
func (s *Store) PendingEmail(c *fiber.Ctx) string { return s.getString(c, keyPendingEmail) }

// SetPendingEmail guarda el email pendiente de verificación.
func (s *Store) SetPendingEmail(c *fiber.Ctx, email string) error {
	return s.setString(c, keyPendingEmail, email)
}

// SaveDraft espeja el borrador del formulario de creación en la sesión.
// Es una garantía de conveniencia: perder un borrador no corrompe nada.
func (s *Store) SaveDraft(c *fiber.Ctx, form tenderform.Form) error {
	raw, err := json.Marshal(form)
	if err != nil {
		return err
	}
	return s.setString(c, keyTenderDraft, string(raw))
}

// Draft restaura el borrador guardado; ok=false si no hay o no parsea.
func (s *Store) Draft(c *fiber.Ctx) (tenderform.Form, bool) {
	raw := s.getString(c, keyTenderDraft)
	if raw == "" {
		return tenderform.Form{}, false
	}
	var form tenderform.Form
	if err := json.Unmarshal([]byte(raw), &form); err != nil {
		return tenderform.Form{}, false
	}
	return form, true
}

// ClearDraft descarta el borrador (tras una creación exitosa).
func (s *Store) ClearDraft(c *fiber.Ctx) error {
	sess, err := s.get(c)
	if err != nil {
		return err
	}
	sess.Delete(keyTenderDraft)
	return sess.Save()
}

// Clear destruye la sesión completa: token, ids, perfil cacheado, email
// pendiente y borrador caen juntos. Es el logout.
func (s *Store) Clear(c *fiber.Ctx) error {
	sess, err := s.get(c)
	if err != nil {
		return err
	}
	return sess.Destroy()
}
