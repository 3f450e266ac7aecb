package gateway

import (
	"context"

	"github.com/hulumoya/agency-dashboard/internal/domain/entity"
)

// AdminGateway define el puerto de solo lectura del árbol de servicios (DIP).
// La implementación vive en infrastructure/restapi.
type AdminGateway interface {
	Services(ctx context.Context) ([]entity.ServiceCategory, error)
}
