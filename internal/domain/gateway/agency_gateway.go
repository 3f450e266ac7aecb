package gateway

import (
	"context"
	"io"

	"github.com/hulumoya/agency-dashboard/internal/domain/entity"
)

// AgencyGateway define el puerto de acceso al grupo /tender-agencies del API
// remoto (DIP). La implementación vive en infrastructure/restapi.
type AgencyGateway interface {
	Register(ctx context.Context, in entity.AgencyRegistration) (*entity.Agency, error)
	Profile(ctx context.Context, agencyID int) (*entity.Agency, error)
	// ProfileByUser resuelve el perfil de agencia a partir del usuario
	// autenticado; se usa justo después del login, antes de conocer agencyID.
	ProfileByUser(ctx context.Context, userID string) (*entity.Agency, error)
	UpdateProfile(ctx context.Context, agencyID int, in entity.AgencyProfileUpdate) (*entity.Agency, error)
	UploadLicense(ctx context.Context, agencyID int, filename string, file io.Reader) (string, error)
	Statistics(ctx context.Context, agencyID int) (*entity.AgencyStatistics, error)
}
