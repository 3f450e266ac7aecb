package usecase

import (
	"context"
	"fmt"
	"io"

	"github.com/hulumoya/agency-dashboard/internal/domain"
	"github.com/hulumoya/agency-dashboard/internal/domain/entity"
	"github.com/hulumoya/agency-dashboard/internal/domain/gateway"
	"github.com/hulumoya/agency-dashboard/pkg/logger"
)

// DefaultSort ordena el listado por fecha de publicación descendente.
const DefaultSort = "datePosted,desc"

// DocumentUpload es un adjunto opcional al crear un tender.
type DocumentUpload struct {
	Filename string
	File     io.Reader
}

// CreateResult reporta el desenlace de crear un tender con adjunto opcional.
// No hay transacción entre ambas llamadas: si el tender se creó pero el
// documento no subió, UploadErr lo refleja y el caller lo reporta como éxito
// parcial (el registro existe y aparecerá en el próximo listado).
type CreateResult struct {
	Tender    *entity.Tender
	UploadErr error
}

// TenderPDFGenerator puerto de generación del resumen PDF de un tender.
// La implementación vive en infrastructure/pdf.
type TenderPDFGenerator interface {
	TenderSummaryPDF(ctx context.Context, t *entity.Tender, serviceBreadcrumb string, agency *entity.Agency) ([]byte, error)
}

// TenderUseCase casos de uso del ciclo de vida de un tender. Ninguna
// mutación es optimista: tras crear/editar/borrar, la vista vuelve a pedir el
// listado al servidor como fuente de verdad.
type TenderUseCase struct {
	gw  gateway.TenderGateway
	pdf TenderPDFGenerator
	log *logger.Logger
}

// NewTenderUseCase construye el caso de uso de tenders.
func NewTenderUseCase(gw gateway.TenderGateway, pdf TenderPDFGenerator, log *logger.Logger) *TenderUseCase {
	return &TenderUseCase{gw: gw, pdf: pdf, log: log}
}

// List devuelve la página pedida del listado; cada página reemplaza entera a
// la anterior en la vista.
func (uc *TenderUseCase) List(ctx context.Context, agencyID, page, size int) ([]entity.Tender, error) {
	if size <= 0 {
		size = 10
	}
	if page < 0 {
		page = 0
	}
	return uc.gw.List(ctx, agencyID, gateway.ListQuery{Page: page, Size: size, Sort: DefaultSort})
}

// Get lee un tender por id.
func (uc *TenderUseCase) Get(ctx context.Context, agencyID, tenderID int) (*entity.Tender, error) {
	return uc.gw.Get(ctx, agencyID, tenderID)
}

// Create crea el tender y, si hay adjunto, lo sube a continuación. La carga
// fallida no revierte la creación: queda registrada en CreateResult.UploadErr.
func (uc *TenderUseCase) Create(ctx context.Context, agencyID int, in entity.TenderInput, doc *DocumentUpload) (*CreateResult, error) {
	created, err := uc.gw.Create(ctx, agencyID, in)
	if err != nil {
		return nil, err
	}

	result := &CreateResult{Tender: created}
	if doc == nil {
		return result, nil
	}

	if _, err := uc.gw.UploadDocument(ctx, agencyID, created.ID, doc.Filename, doc.File); err != nil {
		uc.log.Warn().Err(err).Int("tender_id", created.ID).
			Msg("tender creado pero la carga del documento falló")
		result.UploadErr = fmt.Errorf("%w: %w", domain.ErrUploadAfterCreate, err)
	}
	return result, nil
}

// Update reemplaza el tender con el payload del formulario de edición.
func (uc *TenderUseCase) Update(ctx context.Context, agencyID, tenderID int, in entity.TenderInput) (*entity.Tender, error) {
	return uc.gw.Update(ctx, agencyID, tenderID, in)
}

// UpdateStatus cambia solo el estado (diálogo de cambio de estado).
func (uc *TenderUseCase) UpdateStatus(ctx context.Context, agencyID, tenderID int, status string) (*entity.Tender, error) {
	if !entity.ValidStatus(status) {
		return nil, domain.ErrInvalidInput
	}
	return uc.gw.UpdateStatus(ctx, agencyID, tenderID, status)
}

// UploadDocument sube un documento a un tender existente.
func (uc *TenderUseCase) UploadDocument(ctx context.Context, agencyID, tenderID int, filename string, file io.Reader) (string, error) {
	return uc.gw.UploadDocument(ctx, agencyID, tenderID, filename, file)
}

// Delete borra el tender. El listado siguiente ya no lo contiene; no hay
// borrado lógico ni papelera.
func (uc *TenderUseCase) Delete(ctx context.Context, agencyID, tenderID int) error {
	return uc.gw.Delete(ctx, agencyID, tenderID)
}

// SummaryPDF genera el resumen imprimible del tender.
func (uc *TenderUseCase) SummaryPDF(ctx context.Context, agencyID, tenderID int, serviceBreadcrumb string, agency *entity.Agency) ([]byte, error) {
	t, err := uc.gw.Get(ctx, agencyID, tenderID)
	if err != nil {
		return nil, err
	}
	return uc.pdf.TenderSummaryPDF(ctx, t, serviceBreadcrumb, agency)
}
