package restapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"

	"github.com/hulumoya/agency-dashboard/internal/application/tenderform"
	"github.com/hulumoya/agency-dashboard/internal/domain/entity"
	"github.com/hulumoya/agency-dashboard/internal/domain/gateway"
)

// Asegura que TenderGW implementa gateway.TenderGateway.
var _ gateway.TenderGateway = (*TenderGW)(nil)

// TenderGW implementación del puerto TenderGateway sobre el API remoto.
// Es la única pieza que ve las dos revisiones del registro en el cable: los
// registros anteriores a la migración llegan con sub-objetos anidados y se
// adaptan a la forma plana antes de salir de aquí.
type TenderGW struct {
	client *Client
}

// NewTenderGateway construye el adaptador de tenders.
func NewTenderGateway(client *Client) *TenderGW {
	return &TenderGW{client: client}
}

func tendersPath(agencyID int) string {
	return fmt.Sprintf("/tender-agencies/%d/tenders", agencyID)
}

func tenderPath(agencyID, tenderID int) string {
	return fmt.Sprintf("/tender-agencies/%d/tenders/%d", agencyID, tenderID)
}

// Create crea el tender. POST /tender-agencies/{id}/tenders.
func (g *TenderGW) Create(ctx context.Context, agencyID int, in entity.TenderInput) (*entity.Tender, error) {
	var raw json.RawMessage
	if err := g.client.doJSON(ctx, http.MethodPost, tendersPath(agencyID), nil, in, &raw); err != nil {
		return nil, fmt.Errorf("create tender: %w", err)
	}
	return decodeTender(raw)
}

// List devuelve una página del listado. GET /tender-agencies/{id}/tenders?page=&size=&sort=.
func (g *TenderGW) List(ctx context.Context, agencyID int, q gateway.ListQuery) ([]entity.Tender, error) {
	query := url.Values{
		"page": {strconv.Itoa(q.Page)},
		"size": {strconv.Itoa(q.Size)},
	}
	if q.Sort != "" {
		query.Set("sort", q.Sort)
	}
	var raw json.RawMessage
	if err := g.client.doJSON(ctx, http.MethodGet, tendersPath(agencyID), query, nil, &raw); err != nil {
		return nil, fmt.Errorf("list tenders: %w", err)
	}
	return decodeTenderList(raw)
}

// Get lee un tender. GET /tender-agencies/{id}/tenders/{tid}.
func (g *TenderGW) Get(ctx context.Context, agencyID, tenderID int) (*entity.Tender, error) {
	var raw json.RawMessage
	if err := g.client.doJSON(ctx, http.MethodGet, tenderPath(agencyID, tenderID), nil, nil, &raw); err != nil {
		return nil, fmt.Errorf("get tender: %w", err)
	}
	return decodeTender(raw)
}

// Update reemplaza el tender. PUT /tender-agencies/{id}/tenders/{tid}.
func (g *TenderGW) Update(ctx context.Context, agencyID, tenderID int, in entity.TenderInput) (*entity.Tender, error) {
	var raw json.RawMessage
	if err := g.client.doJSON(ctx, http.MethodPut, tenderPath(agencyID, tenderID), nil, in, &raw); err != nil {
		return nil, fmt.Errorf("update tender: %w", err)
	}
	return decodeTender(raw)
}

// UpdateStatus cambia solo el estado. PATCH /tender-agencies/{id}/tenders/{tid}/status.
func (g *TenderGW) UpdateStatus(ctx context.Context, agencyID, tenderID int, status string) (*entity.Tender, error) {
	body := map[string]string{"status": status}
	var raw json.RawMessage
	if err := g.client.doJSON(ctx, http.MethodPatch, tenderPath(agencyID, tenderID)+"/status", nil, body, &raw); err != nil {
		return nil, fmt.Errorf("update tender status: %w", err)
	}
	return decodeTender(raw)
}

// UploadDocument sube un documento. POST /tender-agencies/{id}/tenders/{tid}/documents (multipart).
func (g *TenderGW) UploadDocument(ctx context.Context, agencyID, tenderID int, filename string, file io.Reader) (string, error) {
	var out string
	path := tenderPath(agencyID, tenderID) + "/documents"
	if err := g.client.doMultipart(ctx, http.MethodPost, path, filename, file, &out); err != nil {
		return "", fmt.Errorf("upload tender document: %w", err)
	}
	return out, nil
}

// Delete borra el tender. DELETE /tender-agencies/{id}/tenders/{tid}.
func (g *TenderGW) Delete(ctx context.Context, agencyID, tenderID int) error {
	if err := g.client.doJSON(ctx, http.MethodDelete, tenderPath(agencyID, tenderID), nil, nil, nil); err != nil {
		return fmt.Errorf("delete tender: %w", err)
	}
	return nil
}

// probe distingue la revisión del registro: solo la vieja trae "summary".
type probe struct {
	Summary json.RawMessage `json:"summary"`
}

// decodeTender decodifica un registro en cualquiera de sus dos revisiones y
// devuelve siempre la forma plana canónica.
func decodeTender(raw json.RawMessage) (*entity.Tender, error) {
	var p probe
	if err := json.Unmarshal(raw, &p); err != nil {
		return nil, fmt.Errorf("decode tender: %w", err)
	}
	if len(p.Summary) > 0 && string(p.Summary) != "null" {
		var legacy entity.LegacyTender
		if err := json.Unmarshal(raw, &legacy); err != nil {
			return nil, fmt.Errorf("decode legacy tender: %w", err)
		}
		t := tenderform.FromLegacy(legacy)
		return &t, nil
	}
	var t entity.Tender
	if err := json.Unmarshal(raw, &t); err != nil {
		return nil, fmt.Errorf("decode tender: %w", err)
	}
	return &t, nil
}

// decodeTenderList acepta tanto un array pelado como el sobre paginado
// {"content": [...]} que sirven algunos despliegues.
func decodeTenderList(raw json.RawMessage) ([]entity.Tender, error) {
	items := rawItems(raw)

	tenders := make([]entity.Tender, 0, len(items))
	for _, item := range items {
		t, err := decodeTender(item)
		if err != nil {
			return nil, err
		}
		tenders = append(tenders, *t)
	}
	return tenders, nil
}

func rawItems(raw json.RawMessage) []json.RawMessage {
	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err == nil {
		return items
	}
	var envelope struct {
		Content []json.RawMessage `json:"content"`
	}
	if err := json.Unmarshal(raw, &envelope); err == nil {
		return envelope.Content
	}
	return nil
}
