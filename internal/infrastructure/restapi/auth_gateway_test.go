package restapi_test

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hulumoya/agency-dashboard/internal/domain"
	"github.com/hulumoya/agency-dashboard/internal/domain/entity"
	"github.com/hulumoya/agency-dashboard/internal/infrastructure/restapi"
)

func TestAuthGW_Login_CuerpoCompleto(t *testing.T) {
	var gotPath string
	var gotBody map[string]any
	client, _ := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		_ = json.NewDecoder(r.Body).Decode(&gotBody)
		_, _ = w.Write([]byte(`{"token": "jwt-aqui", "user": {"id": 17, "status": "VERIFIED"}}`))
	}))

	gw := restapi.NewAuthGateway(client)
	sess, err := gw.Login(context.Background(), entity.Credentials{
		Email: "a@b.c", Password: "secret123",
		FCMToken: "fcm", DeviceType: "Samsung", DeviceModel: "M12", OperatingSystem: "ANDROID",
	})
	require.NoError(t, err)

	assert.Equal(t, "/auth/login", gotPath)
	assert.Equal(t, "a@b.c", gotBody["email"])
	assert.Equal(t, "fcm", gotBody["FCMToken"], "los metadatos de dispositivo viajan en el cuerpo")
	assert.Equal(t, "ANDROID", gotBody["operatingSystem"])

	// El id numérico del usuario se acepta igual que el string.
	assert.Equal(t, "17", sess.User.ID.String())
	assert.Equal(t, "jwt-aqui", sess.Token)
}

func TestAuthGW_TokenYEmailViajanComoQuery(t *testing.T) {
	var paths []string
	var queries []string
	client, _ := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		paths = append(paths, r.Method+" "+r.URL.Path)
		queries = append(queries, r.URL.RawQuery)
		_, _ = w.Write([]byte(`{}`))
	}))

	gw := restapi.NewAuthGateway(client)
	_, err := gw.TokenLogin(context.Background(), "one-time")
	require.NoError(t, err)
	_, err = gw.VerifyEmail(context.Background(), "verify-me")
	require.NoError(t, err)
	require.NoError(t, gw.ResendVerification(context.Background(), "a@b.c"))

	assert.Equal(t, []string{
		"POST /auth/token-login",
		"GET /auth/verify",
		"POST /auth/resend-verification",
	}, paths)
	assert.Equal(t, "token=one-time", queries[0])
	assert.Equal(t, "token=verify-me", queries[1])
	assert.Equal(t, "email=a%40b.c", queries[2])
}

func TestAgencyGW_UploadLicense_MultipartYRuta(t *testing.T) {
	var gotPath, gotField string
	client, _ := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		require.NoError(t, r.ParseMultipartForm(1<<20))
		for field := range r.MultipartForm.File {
			gotField = field
		}
		_, _ = w.Write([]byte(`"uploads/license.pdf"`))
	}))

	gw := restapi.NewAgencyGateway(client)
	path, err := gw.UploadLicense(context.Background(), 4, "license.pdf", strings.NewReader("pdf"))
	require.NoError(t, err)

	assert.Equal(t, "/tender-agencies/4/license", gotPath)
	assert.Equal(t, "file", gotField)
	assert.Equal(t, "uploads/license.pdf", path)
}

func TestAgencyGW_ProfileByUser_EscapaElId(t *testing.T) {
	var gotPath string
	client, _ := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		_, _ = w.Write([]byte(`{"id": 4, "companyName": "Acme"}`))
	}))

	gw := restapi.NewAgencyGateway(client)
	profile, err := gw.ProfileByUser(context.Background(), "17")
	require.NoError(t, err)

	assert.Equal(t, "/tender-agencies/user/17/profile", gotPath)
	assert.Equal(t, 4, profile.ID)
}

func TestAdminGW_Services_RutaYDecodificacion(t *testing.T) {
	var gotPath string
	client, _ := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		_, _ = w.Write([]byte(`[{"categoryId": 1, "categoryName": "Tender Services",
			"services": [{"serviceId": 2, "name": "Roads", "services": []}]}]`))
	}))

	gw := restapi.NewAdminGateway(client)
	categories, err := gw.Services(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "/admin/services", gotPath)
	require.Len(t, categories, 1)
	require.Len(t, categories[0].Services, 1)
	assert.Equal(t, "Roads", categories[0].Services[0].Name)
}

func TestAgencyGW_Register_403MapeaAErrUnauthorized(t *testing.T) {
	client, _ := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte(`{"message": "Account disabled"}`))
	}))

	gw := restapi.NewAgencyGateway(client)
	_, err := gw.Register(context.Background(), entity.AgencyRegistration{Email: "a@b.c"})

	assert.ErrorIs(t, err, domain.ErrUnauthorized)
	assert.Equal(t, "Account disabled", restapi.UserMessage(err, "fallback"))
}
