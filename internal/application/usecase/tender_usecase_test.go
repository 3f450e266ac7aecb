package usecase_test

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hulumoya/agency-dashboard/internal/application/usecase"
	"github.com/hulumoya/agency-dashboard/internal/domain"
	"github.com/hulumoya/agency-dashboard/internal/domain/entity"
	"github.com/hulumoya/agency-dashboard/internal/domain/gateway"
	"github.com/hulumoya/agency-dashboard/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes
// ──────────────────────────────────────────────────────────────────────────────

// fakeTenderGW implementación en memoria del puerto para los tests.
type fakeTenderGW struct {
	tenders map[int]entity.Tender
	nextID  int

	uploadErr   error
	uploaded    []string // filenames subidos
	listQueries []gateway.ListQuery
}

func newFakeTenderGW() *fakeTenderGW {
	return &fakeTenderGW{tenders: map[int]entity.Tender{}, nextID: 1}
}

func (f *fakeTenderGW) Create(_ context.Context, _ int, in entity.TenderInput) (*entity.Tender, error) {
	t := entity.Tender{
		ID: f.nextID, Title: in.Title, Description: in.Description,
		Location: in.Location, ClosingDate: in.ClosingDate, ContactInfo: in.ContactInfo,
		ServiceID: in.ServiceID, Status: in.Status, IsFree: in.IsFree,
		ReferenceNumber: in.ReferenceNumber,
	}
	f.tenders[t.ID] = t
	f.nextID++
	return &t, nil
}

func (f *fakeTenderGW) List(_ context.Context, _ int, q gateway.ListQuery) ([]entity.Tender, error) {
	f.listQueries = append(f.listQueries, q)
	out := make([]entity.Tender, 0, len(f.tenders))
	for _, t := range f.tenders {
		out = append(out, t)
	}
	return out, nil
}

func (f *fakeTenderGW) Get(_ context.Context, _ int, tenderID int) (*entity.Tender, error) {
	t, ok := f.tenders[tenderID]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &t, nil
}

func (f *fakeTenderGW) Update(_ context.Context, _ int, tenderID int, in entity.TenderInput) (*entity.Tender, error) {
	t, ok := f.tenders[tenderID]
	if !ok {
		return nil, domain.ErrNotFound
	}
	t.Title = in.Title
	t.Status = in.Status
	f.tenders[tenderID] = t
	return &t, nil
}

func (f *fakeTenderGW) UpdateStatus(_ context.Context, _ int, tenderID int, status string) (*entity.Tender, error) {
	t, ok := f.tenders[tenderID]
	if !ok {
		return nil, domain.ErrNotFound
	}
	t.Status = status
	f.tenders[tenderID] = t
	return &t, nil
}

func (f *fakeTenderGW) UploadDocument(_ context.Context, _ int, _ int, filename string, _ io.Reader) (string, error) {
	if f.uploadErr != nil {
		return "", f.uploadErr
	}
	f.uploaded = append(f.uploaded, filename)
	return "uploads/" + filename, nil
}

func (f *fakeTenderGW) Delete(_ context.Context, _ int, tenderID int) error {
	if _, ok := f.tenders[tenderID]; !ok {
		return domain.ErrNotFound
	}
	delete(f.tenders, tenderID)
	return nil
}

var _ gateway.TenderGateway = (*fakeTenderGW)(nil)

type noopPDF struct{}

func (noopPDF) TenderSummaryPDF(context.Context, *entity.Tender, string, *entity.Agency) ([]byte, error) {
	return []byte("%PDF-1.7"), nil
}

func testLogger() *logger.Logger {
	return logger.New(logger.Config{Env: "test", Level: "error"})
}

func validInput() entity.TenderInput {
	return entity.TenderInput{
		Title: "Road maintenance", Description: "desc", Location: "Addis Ababa",
		ClosingDate: "2026-09-30T17:00:00", ContactInfo: "x@y.z",
		ServiceID: 7, Status: entity.StatusOpen, ReferenceNumber: "RM-1",
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Create con adjunto
// ──────────────────────────────────────────────────────────────────────────────

func TestCreate_SinAdjunto(t *testing.T) {
	gw := newFakeTenderGW()
	uc := usecase.NewTenderUseCase(gw, noopPDF{}, testLogger())

	result, err := uc.Create(context.Background(), 1, validInput(), nil)
	require.NoError(t, err)

	assert.NotNil(t, result.Tender)
	assert.NoError(t, result.UploadErr)
	assert.Empty(t, gw.uploaded, "sin adjunto no debe haber carga")
}

func TestCreate_ConAdjuntoExitoso(t *testing.T) {
	gw := newFakeTenderGW()
	uc := usecase.NewTenderUseCase(gw, noopPDF{}, testLogger())

	doc := &usecase.DocumentUpload{Filename: "terms.pdf", File: strings.NewReader("pdf")}
	result, err := uc.Create(context.Background(), 1, validInput(), doc)
	require.NoError(t, err)

	assert.NoError(t, result.UploadErr)
	assert.Equal(t, []string{"terms.pdf"}, gw.uploaded)
}

// Éxito parcial: el tender se crea aunque el documento no suba; el desenlace
// queda en UploadErr, no en el error principal.
func TestCreate_AdjuntoFallido_EsExitoParcial(t *testing.T) {
	gw := newFakeTenderGW()
	gw.uploadErr = errors.New("disk full")
	uc := usecase.NewTenderUseCase(gw, noopPDF{}, testLogger())

	doc := &usecase.DocumentUpload{Filename: "terms.pdf", File: strings.NewReader("pdf")}
	result, err := uc.Create(context.Background(), 1, validInput(), doc)

	require.NoError(t, err, "la creación no se revierte por la carga fallida")
	require.NotNil(t, result.Tender)
	assert.ErrorIs(t, result.UploadErr, domain.ErrUploadAfterCreate)
	assert.Contains(t, gw.tenders, result.Tender.ID, "el tender quedó creado en el servidor")
}

// ──────────────────────────────────────────────────────────────────────────────
// Listado y borrado
// ──────────────────────────────────────────────────────────────────────────────

func TestList_DefaultsDePaginacionYOrden(t *testing.T) {
	gw := newFakeTenderGW()
	uc := usecase.NewTenderUseCase(gw, noopPDF{}, testLogger())

	_, err := uc.List(context.Background(), 1, -3, 0)
	require.NoError(t, err)

	require.Len(t, gw.listQueries, 1)
	q := gw.listQueries[0]
	assert.Equal(t, 0, q.Page, "página negativa cae a 0")
	assert.Equal(t, 10, q.Size, "tamaño no positivo cae a 10")
	assert.Equal(t, usecase.DefaultSort, q.Sort)
}

func TestDelete_ElListadoSiguienteNoLoContiene(t *testing.T) {
	gw := newFakeTenderGW()
	uc := usecase.NewTenderUseCase(gw, noopPDF{}, testLogger())

	created, err := uc.Create(context.Background(), 1, validInput(), nil)
	require.NoError(t, err)

	require.NoError(t, uc.Delete(context.Background(), 1, created.Tender.ID))

	// Tras la mutación la vista vuelve a pedir el listado: ya no está.
	tenders, err := uc.List(context.Background(), 1, 0, 10)
	require.NoError(t, err)
	for _, tt := range tenders {
		assert.NotEqual(t, created.Tender.ID, tt.ID)
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Cambio de estado
// ──────────────────────────────────────────────────────────────────────────────

func TestUpdateStatus_EstadoInvalidoNoTocaLaRed(t *testing.T) {
	gw := newFakeTenderGW()
	uc := usecase.NewTenderUseCase(gw, noopPDF{}, testLogger())

	created, err := uc.Create(context.Background(), 1, validInput(), nil)
	require.NoError(t, err)

	_, err = uc.UpdateStatus(context.Background(), 1, created.Tender.ID, "ARCHIVED")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Equal(t, entity.StatusOpen, gw.tenders[created.Tender.ID].Status,
		"el estado guardado no debe cambiar")
}

func TestUpdateStatus_EstadoValido(t *testing.T) {
	gw := newFakeTenderGW()
	uc := usecase.NewTenderUseCase(gw, noopPDF{}, testLogger())

	created, err := uc.Create(context.Background(), 1, validInput(), nil)
	require.NoError(t, err)

	updated, err := uc.UpdateStatus(context.Background(), 1, created.Tender.ID, entity.StatusClosed)
	require.NoError(t, err)
	assert.Equal(t, entity.StatusClosed, updated.Status)
}
