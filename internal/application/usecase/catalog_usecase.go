package usecase

import (
	"context"
	"errors"

	"github.com/hulumoya/agency-dashboard/internal/application/taxonomy"
	"github.com/hulumoya/agency-dashboard/internal/domain"
	"github.com/hulumoya/agency-dashboard/internal/domain/gateway"
)

// CatalogUseCase carga el árbol de servicios y lo aplana para las vistas.
type CatalogUseCase struct {
	gw gateway.AdminGateway
	// tenderCategoryID señala qué categoría del árbol contiene los servicios
	// seleccionables; viene de configuración, no está cableado en el código.
	tenderCategoryID int
}

// NewCatalogUseCase construye el caso de uso del catálogo de servicios.
func NewCatalogUseCase(gw gateway.AdminGateway, tenderCategoryID int) *CatalogUseCase {
	return &CatalogUseCase{gw: gw, tenderCategoryID: tenderCategoryID}
}

// TenderServices devuelve el índice aplanado de servicios de tender.
// found=false significa que la categoría configurada no vino en la respuesta:
// la vista muestra la advertencia "Tender services not found" y un selector
// vacío; no es un error fatal.
func (uc *CatalogUseCase) TenderServices(ctx context.Context) (flat *taxonomy.Flat, found bool, err error) {
	categories, err := uc.gw.Services(ctx)
	if err != nil {
		return nil, false, err
	}
	flat, err = taxonomy.Flatten(categories, uc.tenderCategoryID)
	if err != nil {
		if errors.Is(err, domain.ErrCategoryNotFound) {
			return flat, false, nil
		}
		return nil, false, err
	}
	return flat, true, nil
}
