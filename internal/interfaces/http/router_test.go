package http_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/configurador-api/internal/application/dto"
	"github.com/jhoicas/configurador-api/internal/application/usecase"
	"github.com/jhoicas/configurador-api/internal/domain/catalog"
	"github.com/jhoicas/configurador-api/internal/infrastructure/csvexport"
	"github.com/jhoicas/configurador-api/internal/infrastructure/memory"
	"github.com/jhoicas/configurador-api/internal/infrastructure/pdf"
	apphttp "github.com/jhoicas/configurador-api/internal/interfaces/http"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

// buildRouterApp arma la API completa sobre el almacén en memoria y el catálogo embebido.
func buildRouterApp(t *testing.T) *fiber.App {
	t.Helper()
	store, err := memory.NewSeededStore()
	require.NoError(t, err)
	specs := catalog.Default()

	catalogUC := usecase.NewCatalogUseCase(specs, store.Categories(), store.Filters(), store.CustomProducts(), store)
	csvWriter, err := csvexport.NewWriter("utf-8")
	require.NoError(t, err)

	app := fiber.New()
	app.Use(requestid.New())
	app.Use(apphttp.AccessLog())
	apphttp.Router(app, apphttp.RouterDeps{
		ConfiguratorUC: usecase.NewConfiguratorUseCase(specs, catalogUC, pdf.NewDatasheetGenerator("test"), usecase.SessionConfig{}),
		CatalogUC:      catalogUC,
		ExportUC:       usecase.NewExportUseCase(specs, catalogUC),
		CSV:            csvWriter,
		JWTSecret:      testJWTSecret,
		JWTIssuer:      testIssuer,
	})
	return app
}

// call lanza la petición y devuelve estado y cuerpo.
func call(t *testing.T, app *fiber.App, method, path string, body any, headers ...string) (int, []byte) {
	t.Helper()
	var r io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		r = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, r)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	out, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, out
}

func decodeSession(t *testing.T, body []byte) dto.SessionResponse {
	t.Helper()
	var s dto.SessionResponse
	require.NoError(t, json.Unmarshal(body, &s))
	return s
}

// ──────────────────────────────────────────────────────────────────────────────
// Asistente
// ──────────────────────────────────────────────────────────────────────────────

func TestSessions_FlujoCompleto(t *testing.T) {
	app := buildRouterApp(t)

	status, body := call(t, app, http.MethodPost, "/api/sessions", nil)
	require.Equal(t, http.StatusCreated, status)
	s := decodeSession(t, body)
	require.NotEmpty(t, s.ID)
	assert.Equal(t, "CategorySelect", s.Step)
	base := "/api/sessions/" + s.ID

	steps := []struct {
		method, path string
		body         any
		wantStep     string
	}{
		{http.MethodPost, base + "/category", dto.SelectRequest{ID: "sensors"}, "TypeSelect"},
		{http.MethodPost, base + "/type", dto.SelectRequest{ID: "temp-humid"}, "FilterSelect"},
		{http.MethodPost, base + "/filters/th-indoor/toggle", nil, "FilterSelect"},
		{http.MethodPost, base + "/filters/confirm", nil, "ModelSelect"},
		{http.MethodPost, base + "/model", dto.SelectModelRequest{Ref: "predefined:txth52"}, "SpecSelect"},
		{http.MethodPut, base + "/specifications/Output", dto.SetSpecificationRequest{Value: "A"}, "SpecSelect"},
		{http.MethodPost, base + "/finalize", nil, "Complete"},
	}
	for _, st := range steps {
		status, body = call(t, app, st.method, st.path, st.body)
		require.Equal(t, http.StatusOK, status, "%s %s: %s", st.method, st.path, body)
		s = decodeSession(t, body)
		require.Equal(t, st.wantStep, s.Step, st.path)
	}

	require.NotNil(t, s.Result)
	assert.Equal(t, "TxTH52-A", s.Result.Code)
	assert.Equal(t, "TxTH52 with output: 4-20mA", s.Result.Description)
	assert.Equal(t, "92.5", s.Result.Price.String())

	status, body = call(t, app, http.MethodGet, base+"/datasheet", nil)
	require.Equal(t, http.StatusOK, status)
	assert.True(t, bytes.HasPrefix(body, []byte("%PDF")))

	status, _ = call(t, app, http.MethodDelete, base, nil)
	assert.Equal(t, http.StatusNoContent, status)
	status, _ = call(t, app, http.MethodGet, base, nil)
	assert.Equal(t, http.StatusNotFound, status)
}

func TestSessions_OperacionInvalidaDevuelve422ConEstado(t *testing.T) {
	app := buildRouterApp(t)
	_, body := call(t, app, http.MethodPost, "/api/sessions", nil)
	id := decodeSession(t, body).ID

	status, body := call(t, app, http.MethodPost, "/api/sessions/"+id+"/category", dto.SelectRequest{ID: "no-existe"})
	require.Equal(t, http.StatusUnprocessableEntity, status)

	var out dto.SessionErrorResponse
	require.NoError(t, json.Unmarshal(body, &out))
	assert.Equal(t, "VALIDATION", out.Code)
	require.Len(t, out.Fields, 1)
	assert.Equal(t, "categoryId", out.Fields[0].Field)
	require.NotNil(t, out.Session)
	assert.Equal(t, "CategorySelect", out.Session.Step)
}

func TestSessions_FinalizeIncompletoDevuelveFaltantes(t *testing.T) {
	app := buildRouterApp(t)
	_, body := call(t, app, http.MethodPost, "/api/sessions", nil)
	base := "/api/sessions/" + decodeSession(t, body).ID

	call(t, app, http.MethodPost, base+"/category", dto.SelectRequest{ID: "sensors"})
	call(t, app, http.MethodPost, base+"/type", dto.SelectRequest{ID: "temp-humid"})
	call(t, app, http.MethodPost, base+"/filters/confirm", nil)
	status, _ := call(t, app, http.MethodPost, base+"/model", dto.SelectModelRequest{Ref: "predefined:txth60"})
	require.Equal(t, http.StatusOK, status)
	call(t, app, http.MethodPut, base+"/specifications/Range", dto.SetSpecificationRequest{Value: "T1"})

	status, body = call(t, app, http.MethodPost, base+"/finalize", nil)
	require.Equal(t, http.StatusUnprocessableEntity, status)
	var out dto.SessionErrorResponse
	require.NoError(t, json.Unmarshal(body, &out))
	assert.Equal(t, "MISSING_SPECIFICATIONS", out.Code)
	assert.Equal(t, []dto.FieldError{{Field: "Output"}, {Field: "Display"}}, out.Fields)
	assert.Equal(t, "SpecSelect", out.Session.Step)

	status, _ = call(t, app, http.MethodGet, base+"/datasheet", nil)
	assert.Equal(t, http.StatusUnprocessableEntity, status)
}

func TestSessions_RefreshDegradaTrasBorrarProducto(t *testing.T) {
	app := buildRouterApp(t)
	admin := []string{"Authorization", tokenForRole(t, "admin")}

	status, body := call(t, app, http.MethodPost, "/api/admin/products", dto.CreateCustomProductRequest{
		Code: "CTH9-XX", TypeID: "temp-humid", Name: "CTH9",
		Specifications: []dto.SpecificationDTO{{Name: "Output", Options: []dto.SpecificationOptionDTO{{Value: "A", Code: "A", Label: "4-20mA"}}}},
	}, admin...)
	require.Equal(t, http.StatusCreated, status, string(body))
	var product dto.CustomProductResponse
	require.NoError(t, json.Unmarshal(body, &product))

	_, body = call(t, app, http.MethodPost, "/api/sessions", nil)
	base := "/api/sessions/" + decodeSession(t, body).ID
	call(t, app, http.MethodPost, base+"/category", dto.SelectRequest{ID: "sensors"})
	call(t, app, http.MethodPost, base+"/type", dto.SelectRequest{ID: "temp-humid"})
	call(t, app, http.MethodPost, base+"/filters/confirm", nil)
	status, _ = call(t, app, http.MethodPost, base+"/model", dto.SelectModelRequest{Ref: "custom:" + product.ID})
	require.Equal(t, http.StatusOK, status)

	status, _ = call(t, app, http.MethodDelete, "/api/admin/products/"+product.ID, nil, admin...)
	require.Equal(t, http.StatusNoContent, status)

	status, body = call(t, app, http.MethodPost, base+"/refresh", nil)
	require.Equal(t, http.StatusConflict, status)
	var out dto.SessionErrorResponse
	require.NoError(t, json.Unmarshal(body, &out))
	assert.Equal(t, "STALE_SNAPSHOT", out.Code)
	assert.Equal(t, "ModelSelect", out.Session.Step)
	assert.Empty(t, out.Session.Model)
}

func TestSessions_Inexistente404(t *testing.T) {
	app := buildRouterApp(t)
	status, body := call(t, app, http.MethodPost, "/api/sessions/nope/finalize", nil)
	assert.Equal(t, http.StatusNotFound, status)
	assert.Contains(t, string(body), "NOT_FOUND")
}

// ──────────────────────────────────────────────────────────────────────────────
// Catálogo
// ──────────────────────────────────────────────────────────────────────────────

func TestCatalog_CandidatosConFiltros(t *testing.T) {
	app := buildRouterApp(t)

	status, body := call(t, app, http.MethodGet, "/api/catalog/candidates?type_id=temp-humid&filter=th-indoor,th-wall", nil)
	require.Equal(t, http.StatusOK, status)
	var out dto.CandidateListResponse
	require.NoError(t, json.Unmarshal(body, &out))
	require.Len(t, out.Items, 1)
	assert.Equal(t, "predefined:txth52", out.Items[0].Ref)

	status, body = call(t, app, http.MethodGet, "/api/catalog/candidates?type_id=temp-humid&filter=th-indoor&filter=th-duct", nil)
	require.Equal(t, http.StatusOK, status)
	require.NoError(t, json.Unmarshal(body, &out))
	assert.Empty(t, out.Items, "ningún modelo es de interior y de ducto a la vez")

	status, _ = call(t, app, http.MethodGet, "/api/catalog/candidates", nil)
	assert.Equal(t, http.StatusBadRequest, status)
}

func TestCatalog_ExportJSONyCSV(t *testing.T) {
	app := buildRouterApp(t)

	status, body := call(t, app, http.MethodGet, "/api/catalog/export?type_id=level", nil)
	require.Equal(t, http.StatusOK, status)
	var out dto.ExportResponse
	require.NoError(t, json.Unmarshal(body, &out))
	require.NotEmpty(t, out.Rows)
	assert.Equal(t, "Nivel", out.Rows[0].TypeName)

	req := httptest.NewRequest(http.MethodGet, "/api/catalog/export?format=csv", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "text/csv; charset=utf-8", resp.Header.Get("Content-Type"))
	csvBody, _ := io.ReadAll(resp.Body)
	assert.True(t, strings.HasPrefix(string(csvBody), "code,name,type,description,specifications,custom\n"))

	status, _ = call(t, app, http.MethodGet, "/api/catalog/export?format=xml", nil)
	assert.Equal(t, http.StatusBadRequest, status)
}

// ──────────────────────────────────────────────────────────────────────────────
// Administración
// ──────────────────────────────────────────────────────────────────────────────

func TestAdmin_RequiereRolAdmin(t *testing.T) {
	app := buildRouterApp(t)
	req := dto.CreateFilterRequest{Name: "Antibacteriano", TypeID: "temp-humid"}

	status, _ := call(t, app, http.MethodPost, "/api/admin/filters", req)
	assert.Equal(t, http.StatusUnauthorized, status)

	status, _ = call(t, app, http.MethodPost, "/api/admin/filters", req, "Authorization", tokenForRole(t, "operator"))
	assert.Equal(t, http.StatusForbidden, status)

	status, body := call(t, app, http.MethodPost, "/api/admin/filters", req, "Authorization", tokenForRole(t, "admin"))
	require.Equal(t, http.StatusCreated, status)
	var f dto.FilterResponse
	require.NoError(t, json.Unmarshal(body, &f))
	assert.False(t, f.Predefined)

	status, _ = call(t, app, http.MethodPost, "/api/admin/filters", req, "Authorization", tokenForRole(t, "admin"))
	assert.Equal(t, http.StatusConflict, status, "nombre repetido en el mismo tipo")

	status, _ = call(t, app, http.MethodDelete, "/api/admin/filters/"+f.ID, nil, "Authorization", tokenForRole(t, "admin"))
	assert.Equal(t, http.StatusNoContent, status)
}

func TestAdmin_FiltroPredefinidoNoSeBorra(t *testing.T) {
	app := buildRouterApp(t)
	status, body := call(t, app, http.MethodDelete, "/api/admin/filters/th-indoor", nil, "Authorization", tokenForRole(t, "admin"))
	assert.Equal(t, http.StatusForbidden, status)
	assert.Contains(t, string(body), "FORBIDDEN")
}

func TestAdmin_ProductoInvalido400(t *testing.T) {
	app := buildRouterApp(t)
	status, body := call(t, app, http.MethodPost, "/api/admin/products", dto.CreateCustomProductRequest{
		Code: "X-1", TypeID: "temp-humid", Name: "X",
		Specifications: []dto.SpecificationDTO{{Name: "Output", Options: []dto.SpecificationOptionDTO{{Value: "A"}}}},
	}, "Authorization", tokenForRole(t, "admin"))
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Contains(t, string(body), "INVALID_INPUT")

	status, _ = call(t, app, http.MethodGet, "/api/admin/products/nope", nil, "Authorization", tokenForRole(t, "admin"))
	assert.Equal(t, http.StatusNotFound, status)
}
