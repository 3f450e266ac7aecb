package entity

import (
	"encoding/json"
	"strings"
)

// FlexID acepta identificadores que el API devuelve a veces como número y a
// veces como string (el id de usuario cambió de tipo entre versiones).
type FlexID string

// UnmarshalJSON decodifica tanto "17" como 17.
func (f *FlexID) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*f = FlexID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*f = FlexID(n.String())
	return nil
}

func (f FlexID) String() string { return string(f) }

// User es el usuario autenticado tal como lo devuelve el API de auth.
// Status y VerifiedStatus conviven porque distintas versiones del API
// reportan la verificación en uno u otro campo.
type User struct {
	ID             FlexID `json:"id"`
	Email          string `json:"email,omitempty"`
	Status         string `json:"status,omitempty"`
	VerifiedStatus string `json:"verifiedStatus,omitempty"`
}

// IsVerified informa si la cuenta puede entrar al dashboard.
// VERIFIED, ACTIVE y APPROVED cuentan como verificada; cualquier otro valor
// (incluido vacío) manda al flujo de verificación pendiente.
func (u User) IsVerified() bool {
	s := strings.ToUpper(u.Status)
	if s == "" {
		s = strings.ToUpper(u.VerifiedStatus)
	}
	return s == "VERIFIED" || s == "ACTIVE" || s == "APPROVED"
}

// AuthSession es el resultado de un login o token-login: token + usuario.
type AuthSession struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

// AuthVerification es la respuesta del enlace de verificación de email.
// Además del token y el usuario puede traer el perfil de agencia recién
// activado y su id.
type AuthVerification struct {
	Token               string  `json:"token,omitempty"`
	User                *User   `json:"user,omitempty"`
	TenderAgencyProfile *Agency `json:"tenderAgencyProfile,omitempty"`
	AgencyID            int     `json:"agencyId,omitempty"`
}
