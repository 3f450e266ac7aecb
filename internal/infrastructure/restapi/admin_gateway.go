package restapi

import (
	"context"
	"fmt"
	"net/http"

	"github.com/hulumoya/agency-dashboard/internal/domain/entity"
	"github.com/hulumoya/agency-dashboard/internal/domain/gateway"
)

// Asegura que AdminGW implementa gateway.AdminGateway.
var _ gateway.AdminGateway = (*AdminGW)(nil)

// AdminGW implementación de solo lectura del árbol de servicios.
type AdminGW struct {
	client *Client
}

// NewAdminGateway construye el adaptador del grupo /admin.
func NewAdminGateway(client *Client) *AdminGW {
	return &AdminGW{client: client}
}

// Services devuelve el árbol completo de categorías. GET /admin/services.
func (g *AdminGW) Services(ctx context.Context) ([]entity.ServiceCategory, error) {
	var out []entity.ServiceCategory
	if err := g.client.doJSON(ctx, http.MethodGet, "/admin/services", nil, nil, &out); err != nil {
		return nil, fmt.Errorf("get services: %w", err)
	}
	return out, nil
}
