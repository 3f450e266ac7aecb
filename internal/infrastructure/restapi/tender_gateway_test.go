package restapi_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hulumoya/agency-dashboard/internal/domain"
	"github.com/hulumoya/agency-dashboard/internal/domain/entity"
	"github.com/hulumoya/agency-dashboard/internal/domain/gateway"
	"github.com/hulumoya/agency-dashboard/internal/infrastructure/restapi"
	"github.com/hulumoya/agency-dashboard/pkg/config"
	"github.com/hulumoya/agency-dashboard/pkg/logger"
)

func testClient(t *testing.T, handler http.Handler) (*restapi.Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client := restapi.NewClient(config.APIConfig{
		BaseURL: srv.URL,
		Timeout: 5 * time.Second,
	}, logger.New(logger.Config{Env: "test", Level: "error"}))
	return client, srv
}

// ──────────────────────────────────────────────────────────────────────────────
// Método, ruta y query
// ──────────────────────────────────────────────────────────────────────────────

func TestTenderGW_List_MetodoRutaYQuery(t *testing.T) {
	var gotMethod, gotPath, gotQuery, gotAuth string
	client, _ := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		gotQuery = r.URL.RawQuery
		gotAuth = r.Header.Get("Authorization")
		_, _ = w.Write([]byte(`[]`))
	}))

	gw := restapi.NewTenderGateway(client)
	ctx := restapi.WithToken(context.Background(), "abc123")
	_, err := gw.List(ctx, 4, gateway.ListQuery{Page: 2, Size: 10, Sort: "datePosted,desc"})
	require.NoError(t, err)

	assert.Equal(t, http.MethodGet, gotMethod)
	assert.Equal(t, "/tender-agencies/4/tenders", gotPath)
	assert.Contains(t, gotQuery, "page=2")
	assert.Contains(t, gotQuery, "size=10")
	assert.Contains(t, gotQuery, "sort=datePosted%2Cdesc")
	assert.Equal(t, "Bearer abc123", gotAuth, "el token del contexto viaja como Bearer")
}

func TestTenderGW_UpdateStatus_PatchConCuerpo(t *testing.T) {
	var gotMethod, gotPath string
	var gotBody map[string]string
	client, _ := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		_ = json.NewDecoder(r.Body).Decode(&gotBody)
		_, _ = w.Write([]byte(`{"id": 9, "status": "CLOSED"}`))
	}))

	gw := restapi.NewTenderGateway(client)
	updated, err := gw.UpdateStatus(context.Background(), 4, 9, "CLOSED")
	require.NoError(t, err)

	assert.Equal(t, http.MethodPatch, gotMethod)
	assert.Equal(t, "/tender-agencies/4/tenders/9/status", gotPath)
	assert.Equal(t, map[string]string{"status": "CLOSED"}, gotBody)
	assert.Equal(t, "CLOSED", updated.Status)
}

func TestTenderGW_Delete_RutaCorrecta(t *testing.T) {
	var gotMethod, gotPath string
	client, _ := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		w.WriteHeader(http.StatusNoContent)
	}))

	gw := restapi.NewTenderGateway(client)
	require.NoError(t, gw.Delete(context.Background(), 4, 9))

	assert.Equal(t, http.MethodDelete, gotMethod)
	assert.Equal(t, "/tender-agencies/4/tenders/9", gotPath)
}

// ──────────────────────────────────────────────────────────────────────────────
// Multipart
// ──────────────────────────────────────────────────────────────────────────────

func TestTenderGW_UploadDocument_CampoFile(t *testing.T) {
	var gotField, gotFilename, gotContent string
	client, _ := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(1<<20))
		for field, headers := range r.MultipartForm.File {
			gotField = field
			gotFilename = headers[0].Filename
			f, err := headers[0].Open()
			require.NoError(t, err)
			defer f.Close()
			raw, err := io.ReadAll(f)
			require.NoError(t, err)
			gotContent = string(raw)
		}
		_, _ = w.Write([]byte(`"uploads/terms.pdf"`))
	}))

	gw := restapi.NewTenderGateway(client)
	path, err := gw.UploadDocument(context.Background(), 4, 9, "terms.pdf", strings.NewReader("pdf-bytes"))
	require.NoError(t, err)

	assert.Equal(t, "file", gotField, "el API espera el campo multipart 'file'")
	assert.Equal(t, "terms.pdf", gotFilename)
	assert.Equal(t, "pdf-bytes", gotContent)
	assert.Equal(t, "uploads/terms.pdf", path)
}

// Algunos despliegues devuelven la ruta como texto plano en vez de JSON.
func TestTenderGW_UploadDocument_RespuestaTextoPlano(t *testing.T) {
	client, _ := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`uploads/terms.pdf`))
	}))

	gw := restapi.NewTenderGateway(client)
	path, err := gw.UploadDocument(context.Background(), 4, 9, "terms.pdf", strings.NewReader("x"))
	require.NoError(t, err)
	assert.Equal(t, "uploads/terms.pdf", path)
}

// ──────────────────────────────────────────────────────────────────────────────
// Decodificación de las dos revisiones
// ──────────────────────────────────────────────────────────────────────────────

func TestTenderGW_Get_RevisionPlana(t *testing.T) {
	client, _ := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"id": 9, "title": "Road works", "status": "OPEN", "serviceId": 7}`))
	}))

	gw := restapi.NewTenderGateway(client)
	tender, err := gw.Get(context.Background(), 4, 9)
	require.NoError(t, err)

	assert.Equal(t, "Road works", tender.Title)
	assert.Equal(t, 7, tender.ServiceID)
}

// La clave "summary" delata la revisión anidada: se adapta a la forma plana
// antes de salir del gateway.
func TestTenderGW_Get_RevisionAnidadaSeAdapta(t *testing.T) {
	client, _ := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{
			"id": 31, "status": "CLOSED", "serviceId": 12,
			"summary": {
				"referenceNo": "LEG-009", "publishedOn": "2024-02-01",
				"bidDeadline": "2024-03-01T12:00:00", "category": "Construction",
				"type": "Open bid", "procurementMethod": "NCB", "location": "Hawassa"
			},
			"financials": {"bidValidityDays": 90, "bidSecurityAmount": "150000.50",
				"contractPeriodDays": 0, "performanceSecurityPercent": "0", "paymentTerms": ""},
			"issuingAuthority": {"organization": "Roads Authority"}
		}`))
	}))

	gw := restapi.NewTenderGateway(client)
	tender, err := gw.Get(context.Background(), 4, 31)
	require.NoError(t, err)

	assert.Equal(t, 31, tender.ID)
	assert.Equal(t, "LEG-009", tender.ReferenceNumber)
	assert.Equal(t, "2024-03-01T12:00:00", tender.ClosingDate)
	assert.Equal(t, "90 days", tender.BidValidity)
	assert.Equal(t, "150000.5", tender.BidSecurity)
	assert.Contains(t, tender.Title, "Construction")
}

func TestTenderGW_List_AceptaSobrePaginado(t *testing.T) {
	client, _ := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"content": [{"id": 1, "title": "A"}, {"id": 2, "title": "B"}]}`))
	}))

	gw := restapi.NewTenderGateway(client)
	tenders, err := gw.List(context.Background(), 4, gateway.ListQuery{Size: 10})
	require.NoError(t, err)

	require.Len(t, tenders, 2)
	assert.Equal(t, "A", tenders[0].Title)
}

func TestTenderGW_List_MezclaDeRevisiones(t *testing.T) {
	client, _ := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[
			{"id": 1, "title": "Flat one", "status": "OPEN"},
			{"id": 2, "status": "OPEN", "summary": {"referenceNo": "LEG-2", "location": "Adama"}}
		]`))
	}))

	gw := restapi.NewTenderGateway(client)
	tenders, err := gw.List(context.Background(), 4, gateway.ListQuery{Size: 10})
	require.NoError(t, err)

	require.Len(t, tenders, 2)
	assert.Equal(t, "Flat one", tenders[0].Title)
	assert.Equal(t, "LEG-2", tenders[1].ReferenceNumber, "el registro viejo sale ya aplanado")
	assert.Equal(t, "Adama", tenders[1].Location)
}

// ──────────────────────────────────────────────────────────────────────────────
// Mapeo de errores upstream
// ──────────────────────────────────────────────────────────────────────────────

func TestTenderGW_Get_404MapeaAErrNotFound(t *testing.T) {
	client, _ := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"message": "Tender not found"}`))
	}))

	gw := restapi.NewTenderGateway(client)
	_, err := gw.Get(context.Background(), 4, 999)

	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Equal(t, "Tender not found", restapi.UserMessage(err, "fallback"))
}

func TestTenderGW_Create_401MapeaAErrUnauthorized(t *testing.T) {
	client, _ := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"message": "Token expired"}`))
	}))

	gw := restapi.NewTenderGateway(client)
	_, err := gw.Create(context.Background(), 4, entity.TenderInput{Title: "x"})

	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestTenderGW_List_500MapeaAErrUpstream(t *testing.T) {
	client, _ := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`oops`))
	}))

	gw := restapi.NewTenderGateway(client)
	_, err := gw.List(context.Background(), 4, gateway.ListQuery{Size: 10})

	assert.ErrorIs(t, err, domain.ErrUpstream)
	assert.Equal(t, "Internal Server Error", restapi.UserMessage(err, "fallback"),
		"un cuerpo no-JSON cae al texto del status HTTP")
}
