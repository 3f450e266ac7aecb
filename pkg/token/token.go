package token

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims son los claims que el API remoto incluye en su bearer token.
// El secret de firma vive en el servidor remoto, así que aquí solo se
// inspecciona el contenido: quién es el usuario y hasta cuándo sirve el token.
// La validez real de cada petición la decide el API al recibir el Bearer.
type Claims struct {
	jwt.RegisteredClaims
	UserID string `json:"userId"`
	Email  string `json:"email"`
	Status string `json:"status"`
}

// Inspect decodifica el token sin verificar la firma y devuelve sus claims.
// Retorna error si el token está malformado o ya expiró.
func Inspect(tokenString string) (*Claims, error) {
	if tokenString == "" {
		return nil, fmt.Errorf("token: cadena vacía")
	}
	claims := &Claims{}
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(tokenString, claims); err != nil {
		return nil, fmt.Errorf("token: %w", err)
	}
	if claims.ExpiresAt != nil && claims.ExpiresAt.Before(time.Now()) {
		return nil, fmt.Errorf("token: expirado en %s", claims.ExpiresAt.Time.Format(time.RFC3339))
	}
	return claims, nil
}

// Subject devuelve el identificador de usuario del token: el claim propio
// userId si existe, si no el subject estándar.
func (c *Claims) SubjectID() string {
	if c.UserID != "" {
		return c.UserID
	}
	return c.Subject
}

// ExpiresIn devuelve cuánto falta para que el token expire (0 si no hay claim exp).
func (c *Claims) ExpiresIn() time.Duration {
	if c.ExpiresAt == nil {
		return 0
	}
	d := time.Until(c.ExpiresAt.Time)
	if d < 0 {
		return 0
	}
	return d
}
