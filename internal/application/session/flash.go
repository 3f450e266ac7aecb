package session

import (
	"encoding/json"

	"github.com/gofiber/fiber/v2"
)

// Flash es un aviso de una sola lectura que sobrevive a un redirect
// (equivalente a los toasts del navegador).
type Flash struct {
	Level   string `json:"level"` // success | info | warning | error
	Message string `json:"message"`
}

// PushFlash encola un aviso para la próxima página renderizada.
func (s *Store) PushFlash(c *fiber.Ctx, level, message string) {
	sess, err := s.get(c)
	if err != nil {
		return
	}
	var flashes []Flash
	if raw, ok := sess.Get(keyFlashes).(string); ok && raw != "" {
		_ = json.Unmarshal([]byte(raw), &flashes)
	}
	flashes = append(flashes, Flash{Level: level, Message: message})
	raw, err := json.Marshal(flashes)
	if err != nil {
		return
	}
	sess.Set(keyFlashes, string(raw))
	_ = sess.Save()
}

// PopFlashes devuelve y vacía los avisos pendientes.
func (s *Store) PopFlashes(c *fiber.Ctx) []Flash {
	sess, err := s.get(c)
	if err != nil {
		return nil
	}
	raw, ok := sess.Get(keyFlashes).(string)
	if !ok || raw == "" {
		return nil
	}
	var flashes []Flash
	_ = json.Unmarshal([]byte(raw), &flashes)
	sess.Delete(keyFlashes)
	_ = sess.Save()
	return flashes
}
