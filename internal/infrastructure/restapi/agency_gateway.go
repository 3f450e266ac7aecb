package restapi

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/hulumoya/agency-dashboard/internal/domain/entity"
	"github.com/hulumoya/agency-dashboard/internal/domain/gateway"
)

// Asegura que AgencyGW implementa gateway.AgencyGateway.
var _ gateway.AgencyGateway = (*AgencyGW)(nil)

// AgencyGW implementación del puerto AgencyGateway sobre el API remoto.
type AgencyGW struct {
	client *Client
}

// NewAgencyGateway construye el adaptador del grupo /tender-agencies.
func NewAgencyGateway(client *Client) *AgencyGW {
	return &AgencyGW{client: client}
}

// Register da de alta agencia + usuario. POST /tender-agencies/register.
func (g *AgencyGW) Register(ctx context.Context, in entity.AgencyRegistration) (*entity.Agency, error) {
	var out entity.Agency
	if err := g.client.doJSON(ctx, http.MethodPost, "/tender-agencies/register", nil, in, &out); err != nil {
		return nil, fmt.Errorf("register agency: %w", err)
	}
	return &out, nil
}

// Profile lee el perfil. GET /tender-agencies/{id}/profile.
func (g *AgencyGW) Profile(ctx context.Context, agencyID int) (*entity.Agency, error) {
	var out entity.Agency
	path := fmt.Sprintf("/tender-agencies/%d/profile", agencyID)
	if err := g.client.doJSON(ctx, http.MethodGet, path, nil, nil, &out); err != nil {
		return nil, fmt.Errorf("get profile: %w", err)
	}
	return &out, nil
}

// ProfileByUser resuelve el perfil desde el usuario. GET /tender-agencies/user/{userId}/profile.
func (g *AgencyGW) ProfileByUser(ctx context.Context, userID string) (*entity.Agency, error) {
	var out entity.Agency
	path := "/tender-agencies/user/" + url.PathEscape(userID) + "/profile"
	if err := g.client.doJSON(ctx, http.MethodGet, path, nil, nil, &out); err != nil {
		return nil, fmt.Errorf("get profile by user: %w", err)
	}
	return &out, nil
}

// UpdateProfile actualiza el perfil. PUT /tender-agencies/{id}/profile.
func (g *AgencyGW) UpdateProfile(ctx context.Context, agencyID int, in entity.AgencyProfileUpdate) (*entity.Agency, error) {
	var out entity.Agency
	path := fmt.Sprintf("/tender-agencies/%d/profile", agencyID)
	if err := g.client.doJSON(ctx, http.MethodPut, path, nil, in, &out); err != nil {
		return nil, fmt.Errorf("update profile: %w", err)
	}
	return &out, nil
}

// UploadLicense sube la licencia comercial. POST /tender-agencies/{id}/license (multipart).
func (g *AgencyGW) UploadLicense(ctx context.Context, agencyID int, filename string, file io.Reader) (string, error) {
	var out string
	path := fmt.Sprintf("/tender-agencies/%d/license", agencyID)
	if err := g.client.doMultipart(ctx, http.MethodPost, path, filename, file, &out); err != nil {
		return "", fmt.Errorf("upload license: %w", err)
	}
	return out, nil
}

// Statistics lee los agregados. GET /tender-agencies/{id}/statistics.
func (g *AgencyGW) Statistics(ctx context.Context, agencyID int) (*entity.AgencyStatistics, error) {
	var out entity.AgencyStatistics
	path := fmt.Sprintf("/tender-agencies/%d/statistics", agencyID)
	if err := g.client.doJSON(ctx, http.MethodGet, path, nil, nil, &out); err != nil {
		return nil, fmt.Errorf("get statistics: %w", err)
	}
	return &out, nil
}
