package restapi

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/hulumoya/agency-dashboard/internal/domain/entity"
	"github.com/hulumoya/agency-dashboard/internal/domain/gateway"
)

// Asegura que AuthGW implementa gateway.AuthGateway.
var _ gateway.AuthGateway = (*AuthGW)(nil)

// AuthGW implementación del puerto AuthGateway sobre el API remoto.
type AuthGW struct {
	client *Client
}

// NewAuthGateway construye el adaptador del grupo /auth.
func NewAuthGateway(client *Client) *AuthGW {
	return &AuthGW{client: client}
}

// Login autentica con credenciales. POST /auth/login.
func (g *AuthGW) Login(ctx context.Context, in entity.Credentials) (*entity.AuthSession, error) {
	var out entity.AuthSession
	if err := g.client.doJSON(ctx, http.MethodPost, "/auth/login", nil, in, &out); err != nil {
		return nil, fmt.Errorf("login: %w", err)
	}
	return &out, nil
}

// TokenLogin canjea un token de acceso de un solo uso. POST /auth/token-login?token=.
func (g *AuthGW) TokenLogin(ctx context.Context, loginToken string) (*entity.AuthSession, error) {
	q := url.Values{"token": {loginToken}}
	var out entity.AuthSession
	if err := g.client.doJSON(ctx, http.MethodPost, "/auth/token-login", q, nil, &out); err != nil {
		return nil, fmt.Errorf("token login: %w", err)
	}
	return &out, nil
}

// VerifyEmail canjea el token del enlace de verificación. GET /auth/verify?token=.
func (g *AuthGW) VerifyEmail(ctx context.Context, verifyToken string) (*entity.AuthVerification, error) {
	q := url.Values{"token": {verifyToken}}
	var out entity.AuthVerification
	if err := g.client.doJSON(ctx, http.MethodGet, "/auth/verify", q, nil, &out); err != nil {
		return nil, fmt.Errorf("verify email: %w", err)
	}
	return &out, nil
}

// ResendVerification reenvía el correo de verificación. POST /auth/resend-verification?email=.
func (g *AuthGW) ResendVerification(ctx context.Context, email string) error {
	q := url.Values{"email": {email}}
	if err := g.client.doJSON(ctx, http.MethodPost, "/auth/resend-verification", q, nil, nil); err != nil {
		return fmt.Errorf("resend verification: %w", err)
	}
	return nil
}
