package usecase

import (
	"context"
	"io"

	"github.com/hulumoya/agency-dashboard/internal/application/dto"
	"github.com/hulumoya/agency-dashboard/internal/domain/entity"
	"github.com/hulumoya/agency-dashboard/internal/domain/gateway"
)

// AgencyUseCase casos de uso del perfil de agencia y sus estadísticas.
type AgencyUseCase struct {
	gw gateway.AgencyGateway
}

// NewAgencyUseCase construye el caso de uso de agencia.
func NewAgencyUseCase(gw gateway.AgencyGateway) *AgencyUseCase {
	return &AgencyUseCase{gw: gw}
}

// Register da de alta la agencia y su usuario. El registro no inicia sesión:
// la cuenta queda pendiente de verificación por email.
func (uc *AgencyUseCase) Register(ctx context.Context, form dto.RegisterForm) (*entity.Agency, error) {
	return uc.gw.Register(ctx, entity.AgencyRegistration{
		CompanyName:   form.CompanyName,
		TinNumber:     form.TinNumber,
		Website:       form.Website,
		ContactPerson: form.ContactPerson,
		Email:         form.Email,
		Password:      form.Password,
	})
}

// ProfileByUser resuelve el perfil a partir del id del usuario autenticado.
// Se usa tras el login, cuando todavía no se conoce el id de agencia.
func (uc *AgencyUseCase) ProfileByUser(ctx context.Context, userID string) (*entity.Agency, error) {
	return uc.gw.ProfileByUser(ctx, userID)
}

// Profile lee el perfil de la agencia.
func (uc *AgencyUseCase) Profile(ctx context.Context, agencyID int) (*entity.Agency, error) {
	return uc.gw.Profile(ctx, agencyID)
}

// UpdateProfile actualiza el perfil y devuelve la versión del servidor.
func (uc *AgencyUseCase) UpdateProfile(ctx context.Context, agencyID int, form dto.ProfileForm) (*entity.Agency, error) {
	return uc.gw.UpdateProfile(ctx, agencyID, entity.AgencyProfileUpdate{
		CompanyName:   form.CompanyName,
		Website:       form.Website,
		ContactPerson: form.ContactPerson,
	})
}

// UploadLicense sube la licencia comercial (multipart) y devuelve su ruta.
func (uc *AgencyUseCase) UploadLicense(ctx context.Context, agencyID int, filename string, file io.Reader) (string, error) {
	return uc.gw.UploadLicense(ctx, agencyID, filename, file)
}

// Statistics lee los agregados calculados por el servidor.
func (uc *AgencyUseCase) Statistics(ctx context.Context, agencyID int) (*entity.AgencyStatistics, error) {
	return uc.gw.Statistics(ctx, agencyID)
}
