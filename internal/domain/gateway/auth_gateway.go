package gateway

import (
	"context"

	"github.com/hulumoya/agency-dashboard/internal/domain/entity"
)

// AuthGateway define el puerto de acceso al grupo /auth del API remoto (DIP).
// La implementación vive en infrastructure/restapi.
type AuthGateway interface {
	Login(ctx context.Context, in entity.Credentials) (*entity.AuthSession, error)
	TokenLogin(ctx context.Context, loginToken string) (*entity.AuthSession, error)
	VerifyEmail(ctx context.Context, verifyToken string) (*entity.AuthVerification, error)
	ResendVerification(ctx context.Context, email string) error
}
