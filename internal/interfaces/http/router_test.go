package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/distribuidora-api/internal/application/auth"
	"github.com/jhoicas/distribuidora-api/internal/application/inventory"
	"github.com/jhoicas/distribuidora-api/internal/application/report"
	"github.com/jhoicas/distribuidora-api/internal/application/usecase"
	"github.com/jhoicas/distribuidora-api/internal/domain/entity"
	"github.com/jhoicas/distribuidora-api/internal/infrastructure/excel"
	"github.com/jhoicas/distribuidora-api/internal/infrastructure/memory"
	"github.com/jhoicas/distribuidora-api/internal/infrastructure/pdf"
	apphttp "github.com/jhoicas/distribuidora-api/internal/interfaces/http"
	"github.com/jhoicas/distribuidora-api/pkg/logger"
)

// testAPI aplicación completa sobre el store en memoria.
type testAPI struct {
	app      *fiber.App
	store    *memory.Store
	admin    string // token de sesión
	employee string
	product  *entity.Product
}

func newTestAPI(t *testing.T) *testAPI {
	t.Helper()
	ctx := context.Background()
	s := memory.NewStore()
	log := logger.Nop()

	for _, u := range []struct{ name, role, status string }{
		{"admin", entity.RoleAdmin, entity.StatusActive},
		{"Juan Perez", entity.RoleEmployee, entity.StatusActive},
		{"baja", entity.RoleEmployee, entity.StatusInactive},
	} {
		hash, err := auth.HashPassword("clave123")
		require.NoError(t, err)
		require.NoError(t, s.Users().Create(ctx, &entity.User{Username: u.name, PasswordHash: hash, Role: u.role, Status: u.status}))
	}
	p := &entity.Product{
		Code:          "P-005",
		Name:          "Aceite 1L",
		Description:   "Aceite vegetal",
		PurchasePrice: decimal.RequireFromString("12.00"),
		SalePrice:     decimal.RequireFromString("20.00"),
		StockActual:   10,
	}
	require.NoError(t, s.Products().Create(ctx, p))

	authUC := auth.NewAuthUseCase(s.Users(), auth.JWTConfig{Secret: testJWTSecret, ExpMinutes: testExpMin, Issuer: testIssuer})
	reportUC := report.NewReportUseCase(s.Reports())

	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		AuthUC:        authUC,
		ProductUC:     usecase.NewProductUseCase(s.Products(), s.Movements()),
		UserUC:        usecase.NewUserUseCase(s.Users()),
		RegisterSale:  inventory.NewRegisterSaleUseCase(s, log),
		RegisterEntry: inventory.NewRegisterEntryUseCase(s, log),
		SalesHistory:  inventory.NewSalesHistoryUseCase(s.Movements()),
		ReportUC:      reportUC,
		ExportUC:      report.NewExportUseCase(reportUC, pdf.NewMarotoPDFGenerator(), excel.NewReportWorkbook()),
		Health:        s,
		Session:       testSession,
		ServiceName:   "distribuidora-test",
		LoginLimit:    1000,
		Log:           log,
	})

	api := &testAPI{app: app, store: s, product: p}
	api.admin = api.login(t, "admin")
	api.employee = api.login(t, "Juan Perez")
	return api
}

func (a *testAPI) login(t *testing.T, username string) string {
	t.Helper()
	resp := a.do(t, http.MethodPost, "/api/auth/login", map[string]string{"username": username, "password": "clave123"}, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	body := decode(t, resp)
	tok, _ := body["token"].(string)
	require.NotEmpty(t, tok)
	return tok
}

func (a *testAPI) do(t *testing.T, method, path string, body any, token string) *http.Response {
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
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := a.app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decode(t *testing.T, resp *http.Response) map[string]interface{} {
	t.Helper()
	defer resp.Body.Close()
	var out map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func (a *testAPI) stock(t *testing.T) int {
	t.Helper()
	p, err := a.store.Products().GetByID(context.Background(), a.product.ID)
	require.NoError(t, err)
	return p.StockActual
}

// ──────────────────────────────────────────────────────────────────────────────
// Auth
// ──────────────────────────────────────────────────────────────────────────────

func TestLogin_CookieYVerify(t *testing.T) {
	a := newTestAPI(t)

	resp := a.do(t, http.MethodPost, "/api/auth/login", map[string]string{"username": "admin", "password": "clave123"}, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var session *http.Cookie
	for _, ck := range resp.Cookies() {
		if ck.Name == testCookieName {
			session = ck
		}
	}
	require.NotNil(t, session, "el login deja la cookie de sesión")
	assert.True(t, session.HttpOnly)
	body := decode(t, resp)
	assert.Equal(t, "Login exitoso", body["message"])
	assert.Equal(t, "Administrador", body["user"].(map[string]interface{})["role"])

	req := httptest.NewRequest(http.MethodGet, "/api/auth/verify", nil)
	req.AddCookie(&http.Cookie{Name: testCookieName, Value: session.Value})
	resp, err := a.app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	body = decode(t, resp)
	assert.Equal(t, "admin", body["user"].(map[string]interface{})["username"])
}

func TestLogin_Errores(t *testing.T) {
	a := newTestAPI(t)

	cases := []struct {
		name   string
		body   map[string]string
		status int
		msg    string
	}{
		{"password incorrecto", map[string]string{"username": "admin", "password": "mala"}, http.StatusUnauthorized, "credenciales inválidas"},
		{"usuario inexistente", map[string]string{"username": "nadie", "password": "clave123"}, http.StatusUnauthorized, "credenciales inválidas"},
		{"usuario inactivo", map[string]string{"username": "baja", "password": "clave123"}, http.StatusForbidden, "Usuario inactivo"},
		{"campos faltantes", map[string]string{"username": "admin"}, http.StatusBadRequest, "Usuario y contraseña son requeridos"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			resp := a.do(t, http.MethodPost, "/api/auth/login", tc.body, "")
			assert.Equal(t, tc.status, resp.StatusCode)
			body := decode(t, resp)
			assert.Equal(t, false, body["success"])
			assert.Equal(t, tc.msg, body["error"])
		})
	}
}

func TestVerify_UsuarioDesactivado_Retorna401(t *testing.T) {
	a := newTestAPI(t)
	u, err := a.store.Users().GetByUsername(context.Background(), "Juan Perez")
	require.NoError(t, err)
	require.NoError(t, a.store.Users().UpdateStatus(context.Background(), u.ID, entity.StatusInactive))

	resp := a.do(t, http.MethodGet, "/api/auth/me", nil, a.employee)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestSesion_UsuarioDesactivado_NoPuedeVender(t *testing.T) {
	a := newTestAPI(t)
	u, err := a.store.Users().GetByUsername(context.Background(), "Juan Perez")
	require.NoError(t, err)
	require.NoError(t, a.store.Users().UpdateStatus(context.Background(), u.ID, entity.StatusInactive))

	resp := a.do(t, http.MethodPost, "/api/ventas", map[string]any{
		"productoId": a.product.ID, "cantidad": 1, "fecha": "2024-01-01",
	}, a.employee)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, 10, a.stock(t))
}

func TestSesion_AdministradorDegradado_PierdeRutasDeAdmin(t *testing.T) {
	a := newTestAPI(t)
	ctx := context.Background()
	u, err := a.store.Users().GetByUsername(ctx, "admin")
	require.NoError(t, err)

	resp := a.do(t, http.MethodGet, "/api/usuarios", nil, a.admin)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	u.Role = entity.RoleEmployee
	require.NoError(t, a.store.Users().Update(ctx, u))

	resp = a.do(t, http.MethodGet, "/api/usuarios", nil, a.admin)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	// sigue pudiendo usar las rutas de sesión
	resp = a.do(t, http.MethodGet, "/api/productos", nil, a.admin)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestLogout_BorraCookie(t *testing.T) {
	a := newTestAPI(t)

	resp := a.do(t, http.MethodPost, "/api/auth/logout", nil, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	found := false
	for _, ck := range resp.Cookies() {
		if ck.Name == testCookieName {
			found = true
			assert.Empty(t, ck.Value)
		}
	}
	assert.True(t, found)
}

// ──────────────────────────────────────────────────────────────────────────────
// Ventas
// ──────────────────────────────────────────────────────────────────────────────

func TestVenta_Exito(t *testing.T) {
	a := newTestAPI(t)

	resp := a.do(t, http.MethodPost, "/api/ventas", map[string]any{
		"productoId": a.product.ID, "cantidad": 3, "fecha": "2024-01-01",
	}, a.employee)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	body := decode(t, resp)

	assert.Equal(t, true, body["success"])
	assert.EqualValues(t, 7, body["nuevoStock"])
	venta := body["venta"].(map[string]interface{})
	assert.EqualValues(t, 3, venta["cantidad"])
	assert.Equal(t, "60.00", venta["total"])
	assert.Equal(t, 7, a.stock(t))
}

func TestVenta_StockInsuficiente(t *testing.T) {
	a := newTestAPI(t)

	resp := a.do(t, http.MethodPost, "/api/ventas", map[string]any{
		"productoId": a.product.ID, "cantidad": 15, "fecha": "2024-01-01",
	}, a.employee)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	body := decode(t, resp)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "Stock insuficiente. Disponible: 10", body["error"])
	assert.Equal(t, 10, a.stock(t))
}

func TestVenta_FaltaFecha(t *testing.T) {
	a := newTestAPI(t)

	resp := a.do(t, http.MethodPost, "/api/ventas", map[string]any{
		"productoId": a.product.ID, "cantidad": 1,
	}, a.employee)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	body := decode(t, resp)
	assert.True(t, strings.HasPrefix(body["error"].(string), "Faltan datos requeridos"))
	assert.Contains(t, body["detalles"], "fecha")
}

func TestVenta_ProductoInexistente(t *testing.T) {
	a := newTestAPI(t)

	resp := a.do(t, http.MethodPost, "/api/ventas", map[string]any{
		"productoId": 9999, "cantidad": 1, "fecha": "2024-01-01",
	}, a.employee)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "Producto no encontrado", decode(t, resp)["error"])
}

func TestVenta_SinSesion(t *testing.T) {
	a := newTestAPI(t)

	resp := a.do(t, http.MethodPost, "/api/ventas", map[string]any{"productoId": 1, "cantidad": 1, "fecha": "2024-01-01"}, "")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestHistorial(t *testing.T) {
	a := newTestAPI(t)
	resp := a.do(t, http.MethodPost, "/api/ventas", map[string]any{
		"productoId": a.product.ID, "cantidad": "2", "fecha": "2024-01-05", "motivo": "mayorista",
	}, a.employee)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp = a.do(t, http.MethodGet, "/api/ventas/historial?fechaDesde=2024-01-01&fechaHasta=2024-01-31", nil, a.employee)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	body := decode(t, resp)
	assert.EqualValues(t, 1, body["total"])
	item := body["data"].([]interface{})[0].(map[string]interface{})
	assert.Equal(t, "mayorista", item["motivo"])
	assert.Equal(t, "40.00", item["total"])
	assert.Equal(t, "juanperez@empresa.com", item["usuario"].(map[string]interface{})["email"])

	resp = a.do(t, http.MethodGet, "/api/ventas/historial?fechaDesde=2024-02-01", nil, a.employee)
	assert.EqualValues(t, 0, decode(t, resp)["total"])
}

// ──────────────────────────────────────────────────────────────────────────────
// Entradas
// ──────────────────────────────────────────────────────────────────────────────

func TestEntrada_SoloAdministrador(t *testing.T) {
	a := newTestAPI(t)
	in := map[string]any{"productoId": a.product.ID, "cantidad": 10, "fecha": "2024-01-02", "costoUnitario": "14"}

	resp := a.do(t, http.MethodPost, "/api/inventario/entradas", in, a.employee)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	resp = a.do(t, http.MethodPost, "/api/inventario/entradas", in, a.admin)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	body := decode(t, resp)
	assert.EqualValues(t, 20, body["nuevoStock"])
	assert.Equal(t, "13.00", body["entrada"].(map[string]interface{})["precioCompra"])
}

// ──────────────────────────────────────────────────────────────────────────────
// Productos
// ──────────────────────────────────────────────────────────────────────────────

func TestProductos_CRUD(t *testing.T) {
	a := newTestAPI(t)
	nuevo := map[string]any{
		"codigo": "AZ-1", "nombre": "Azúcar", "descripcion": "1kg",
		"precio_compra": 8.5, "precio_venta": "11",
	}

	resp := a.do(t, http.MethodPost, "/api/productos/nuevo", nuevo, a.employee)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	body := decode(t, resp)
	id := int64(body["id_producto"].(float64))
	assert.EqualValues(t, 1, body["data"].(map[string]interface{})["stock_actual"])

	resp = a.do(t, http.MethodPost, "/api/productos/nuevo", nuevo, a.employee)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "El código del producto ya existe", decode(t, resp)["error"])

	resp = a.do(t, http.MethodGet, "/api/productos/validar-codigo/AZ-1", nil, a.employee)
	assert.Equal(t, true, decode(t, resp)["existe"])

	resp = a.do(t, http.MethodGet, "/api/productos?search=az-", nil, a.employee)
	assert.EqualValues(t, 1, decode(t, resp)["total"])

	resp = a.do(t, http.MethodGet, "/api/productos/buscar/1kg", nil, a.employee)
	body = decode(t, resp)
	assert.EqualValues(t, 1, body["total"])
	assert.Equal(t, "1kg", body["termino"])

	resp = a.do(t, http.MethodDelete, "/api/productos/"+itoa(id), nil, a.employee)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp = a.do(t, http.MethodGet, "/api/productos/"+itoa(id), nil, a.employee)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "Producto no encontrado", decode(t, resp)["error"])
}

func TestProductos_Actualizar(t *testing.T) {
	a := newTestAPI(t)
	path := "/api/productos/" + itoa(a.product.ID)
	body := map[string]any{
		"codigo": "P-005", "nombre": "Aceite 900ml", "descripcion": "Aceite vegetal",
		"precio_compra": 12, "precio_venta": 20, "stock_actual": 7,
	}

	resp := a.do(t, http.MethodPut, path, body, a.employee)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	data := decode(t, resp)["data"].(map[string]interface{})
	assert.Equal(t, "Aceite 900ml", data["nombre"])
	assert.EqualValues(t, 7, data["stock_actual"])

	resp = a.do(t, http.MethodPut, "/api/productos/999", body, a.employee)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestProductos_ActualizarSinStock_NoPisaElStock(t *testing.T) {
	a := newTestAPI(t)

	resp := a.do(t, http.MethodPut, "/api/productos/"+itoa(a.product.ID), map[string]any{
		"codigo": "P-005", "nombre": "Aceite 1L", "descripcion": "Aceite vegetal",
		"precio_compra": 12, "precio_venta": 20,
	}, a.employee)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	body := decode(t, resp)
	assert.Equal(t, "VALIDATION", body["code"])
	assert.Contains(t, body["detalles"], usecase.MsgStockRequired)
	assert.Equal(t, 10, a.stock(t))
}

func TestProductos_ValidacionAcumulada(t *testing.T) {
	a := newTestAPI(t)

	resp := a.do(t, http.MethodPost, "/api/productos/nuevo", map[string]any{
		"codigo": "X", "nombre": "X", "descripcion": "X", "precio_compra": 10, "precio_venta": 5, "stock_actual": -1,
	}, a.employee)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	body := decode(t, resp)
	assert.Equal(t, "Errores de validación", body["error"])
	assert.Len(t, body["detalles"], 2)
}

func TestProductos_EliminarConMovimientos(t *testing.T) {
	a := newTestAPI(t)
	resp := a.do(t, http.MethodPost, "/api/ventas", map[string]any{
		"productoId": a.product.ID, "cantidad": 1, "fecha": "2024-01-01",
	}, a.employee)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp = a.do(t, http.MethodDelete, "/api/productos/"+itoa(a.product.ID), nil, a.admin)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "No se puede eliminar el producto porque tiene movimientos registrados", decode(t, resp)["error"])

	resp = a.do(t, http.MethodDelete, "/api/productos/abc", nil, a.admin)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// Usuarios
// ──────────────────────────────────────────────────────────────────────────────

func TestUsuarios_SoloAdministrador(t *testing.T) {
	a := newTestAPI(t)

	resp := a.do(t, http.MethodGet, "/api/usuarios", nil, a.employee)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	resp = a.do(t, http.MethodPost, "/api/usuarios/nuevo", map[string]string{
		"nombre_usuario": "pedro", "contraseña": "secreta",
	}, a.admin)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	id := int64(decode(t, resp)["id_usuario"].(float64))

	resp = a.do(t, http.MethodPost, "/api/usuarios/nuevo", map[string]string{
		"nombre_usuario": "pedro", "contraseña": "secreta",
	}, a.admin)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "El nombre de usuario ya existe", decode(t, resp)["error"])

	resp = a.do(t, http.MethodPut, "/api/usuarios/"+itoa(id)+"/estado", map[string]string{"estado": "inactivo"}, a.admin)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Usuario desactivado exitosamente", decode(t, resp)["message"])

	resp = a.do(t, http.MethodGet, "/api/usuarios", nil, a.admin)
	body := decode(t, resp)
	assert.EqualValues(t, 4, body["total"])
	raw, _ := json.Marshal(body["data"])
	assert.NotContains(t, string(raw), "password")
}

// ──────────────────────────────────────────────────────────────────────────────
// Reportes y sistema
// ──────────────────────────────────────────────────────────────────────────────

func TestReportes(t *testing.T) {
	a := newTestAPI(t)
	resp := a.do(t, http.MethodPost, "/api/ventas", map[string]any{
		"productoId": a.product.ID, "cantidad": 4, "fecha": "2024-03-10",
	}, a.employee)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	q := "?fechaDesde=2024-03-01&fechaHasta=2024-03-31"
	resp = a.do(t, http.MethodGet, "/api/reportes/resumen"+q, nil, a.employee)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resumen := decode(t, resp)["resumen"].(map[string]interface{})
	assert.EqualValues(t, 1, resumen["movimientos"])
	assert.Equal(t, "80", resumen["ingresos"])

	resp = a.do(t, http.MethodGet, "/api/reportes/ventas/pdf"+q, nil, a.employee)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, apphttp.ContentTypePDF, resp.Header.Get("Content-Type"))
	assert.Contains(t, resp.Header.Get("Content-Disposition"), "reporte_ventas_2024-03-01_2024-03-31.pdf")
	b, _ := io.ReadAll(resp.Body)
	assert.True(t, bytes.HasPrefix(b, []byte("%PDF")))

	resp = a.do(t, http.MethodGet, "/api/reportes/ventas/excel"+q, nil, a.employee)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, apphttp.ContentTypeXLSX, resp.Header.Get("Content-Type"))

	resp = a.do(t, http.MethodGet, "/api/reportes/resumen?fechaDesde=2024-04-01&fechaHasta=2024-03-01", nil, a.employee)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestSistema(t *testing.T) {
	a := newTestAPI(t)

	resp := a.do(t, http.MethodGet, "/health", nil, "")
	assert.Equal(t, "ok", decode(t, resp)["status"])

	resp = a.do(t, http.MethodGet, "/api/test-db", nil, "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp = a.do(t, http.MethodGet, "/", nil, "")
	assert.Equal(t, apphttp.APIVersion, decode(t, resp)["version"])
}

func itoa(id int64) string {
	return strconv.FormatInt(id, 10)
}
