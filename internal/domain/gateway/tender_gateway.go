package gateway

import (
	"context"
	"io"

	"github.com/hulumoya/agency-dashboard/internal/domain/entity"
)

// ListQuery parámetros de paginación/orden del listado remoto.
// Cada página reemplaza por completo la anterior en la vista; no se acumula.
type ListQuery struct {
	Page int
	Size int
	Sort string // ej. "datePosted,desc"
}

// TenderGateway define el puerto de acceso a los tenders de una agencia en el
// API remoto (DIP). La implementación vive en infrastructure/restapi.
type TenderGateway interface {
	Create(ctx context.Context, agencyID int, in entity.TenderInput) (*entity.Tender, error)
	List(ctx context.Context, agencyID int, q ListQuery) ([]entity.Tender, error)
	Get(ctx context.Context, agencyID, tenderID int) (*entity.Tender, error)
	Update(ctx context.Context, agencyID, tenderID int, in entity.TenderInput) (*entity.Tender, error)
	UpdateStatus(ctx context.Context, agencyID, tenderID int, status string) (*entity.Tender, error)
	UploadDocument(ctx context.Context, agencyID, tenderID int, filename string, file io.Reader) (string, error)
	Delete(ctx context.Context, agencyID, tenderID int) error
}
