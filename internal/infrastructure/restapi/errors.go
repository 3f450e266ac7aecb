package restapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/hulumoya/agency-dashboard/internal/domain"
)

// UpstreamError es una respuesta no-2xx del API remoto con su mensaje humano.
// Unwrap lo mapea a los sentinelas de dominio para que los callers usen
// errors.Is sin conocer códigos HTTP.
type UpstreamError struct {
	Status  int
	Message string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("upstream %d: %s", e.Status, e.Message)
}

func (e *UpstreamError) Unwrap() error {
	switch e.Status {
	case http.StatusUnauthorized, http.StatusForbidden:
		return domain.ErrUnauthorized
	case http.StatusNotFound:
		return domain.ErrNotFound
	default:
		return domain.ErrUpstream
	}
}

// cuerpo de error habitual del API: {"message": "...", "details": ["...", ...]}
type upstreamBody struct {
	Message string   `json:"message"`
	Details []string `json:"details"`
}

func newUpstreamError(status int, raw []byte) *UpstreamError {
	e := &UpstreamError{Status: status, Message: http.StatusText(status)}
	var body upstreamBody
	if err := json.Unmarshal(raw, &body); err != nil {
		return e
	}
	// details, si vienen, son más específicos que message
	if len(body.Details) > 0 {
		e.Message = strings.Join(body.Details, ", ")
	} else if body.Message != "" {
		e.Message = body.Message
	}
	return e
}

// UserMessage extrae el mensaje humano de una cadena de errores; cae en
// fallback si el error no vino del API remoto.
func UserMessage(err error, fallback string) string {
	var up *UpstreamError
	if errors.As(err, &up) && up.Message != "" {
		return up.Message
	}
	return fallback
}
