package http_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apphttp "github.com/jhoicas/distribuidora-api/internal/interfaces/http"
	pkgjwt "github.com/jhoicas/distribuidora-api/pkg/jwt"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

const (
	testJWTSecret  = "test-secret-key-for-unit-tests"
	testCookieName = "test_session"
	testUserID     = int64(42)
	testIssuer     = "distribuidora-test"
	testExpMin     = 60
)

var testSession = apphttp.SessionConfig{
	Secret:     testJWTSecret,
	Issuer:     testIssuer,
	CookieName: testCookieName,
}

// buildTestApp construye una aplicación Fiber mínima con:
//   - AuthMiddleware para leer la sesión y cargar locals
//   - RequireRole para autorizar el acceso
//   - Un handler dummy que devuelve 200 si pasa los middlewares
func buildTestApp(allowedRoles ...string) *fiber.App {
	app := fiber.New()
	app.Get("/protected",
		apphttp.AuthMiddleware(testSession),
		apphttp.RequireRole(allowedRoles...),
		func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusOK).JSON(fiber.Map{
				"ok":       true,
				"user_id":  apphttp.GetUserID(c),
				"username": apphttp.GetUsername(c),
				"role":     apphttp.GetRole(c),
			})
		},
	)
	return app
}

// tokenFor genera un token de sesión con el rol indicado.
func tokenFor(t *testing.T, role string) string {
	t.Helper()
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, "maria", role, testIssuer, testExpMin)
	require.NoError(t, err, "debe generarse un token válido")
	return tok
}

// doRequest lanza GET /protected con el header y/o cookie indicados.
func doRequest(t *testing.T, app *fiber.App, authHeader, cookie string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	if cookie != "" {
		req.AddCookie(&http.Cookie{Name: testCookieName, Value: cookie})
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests RequireRole
// ──────────────────────────────────────────────────────────────────────────────

func TestRequireRole_AdminAccedeRutaAdmin(t *testing.T) {
	app := buildTestApp("Administrador")
	resp := doRequest(t, app, "Bearer "+tokenFor(t, "Administrador"), "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, true, body["ok"])
	assert.Equal(t, "Administrador", body["role"])
}

func TestRequireRole_EmpleadoAccedeRutaMultiRol(t *testing.T) {
	app := buildTestApp("Administrador", "Empleado")
	resp := doRequest(t, app, "Bearer "+tokenFor(t, "Empleado"), "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestRequireRole_EmpleadoBloqueadoEnRutaAdmin(t *testing.T) {
	app := buildTestApp("Administrador")
	resp := doRequest(t, app, "Bearer "+tokenFor(t, "Empleado"), "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "FORBIDDEN")
}

func TestRequireRole_TokenSinRol_Retorna401(t *testing.T) {
	app := buildTestApp("Administrador")
	resp := doRequest(t, app, "Bearer "+tokenFor(t, ""), "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "MISSING_ROLE")
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests AuthMiddleware
// ──────────────────────────────────────────────────────────────────────────────

func TestAuthMiddleware_SinSesion_Retorna401(t *testing.T) {
	app := buildTestApp("Administrador")
	resp := doRequest(t, app, "", "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "No autenticado", body["error"])
}

func TestAuthMiddleware_TokenInvalido_Retorna401(t *testing.T) {
	app := buildTestApp("Administrador")

	for name, header := range map[string]string{
		"malformado":   "Bearer token.invalido.aqui",
		"sin esquema":  tokenFor(t, "Administrador"),
		"otro secreto": "Bearer " + otherSecretToken(t),
	} {
		t.Run(name, func(t *testing.T) {
			resp := doRequest(t, app, header, "")
			defer resp.Body.Close()
			assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
		})
	}
}

func TestAuthMiddleware_TokenExpirado_Retorna401(t *testing.T) {
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, "maria", "Administrador", testIssuer, -1)
	require.NoError(t, err)

	resp := doRequest(t, buildTestApp("Administrador"), "", tok)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddleware_CookieTienePrioridad(t *testing.T) {
	app := buildTestApp("Administrador")
	// Cookie válida y header inválido: manda la cookie.
	resp := doRequest(t, app, "Bearer basura", tokenFor(t, "Administrador"))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.EqualValues(t, testUserID, body["user_id"])
	assert.Equal(t, "maria", body["username"])
}

func TestAuthMiddleware_OtroEmisor_Retorna401(t *testing.T) {
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, "maria", "Administrador", "otra-app", testExpMin)
	require.NoError(t, err)

	resp := doRequest(t, buildTestApp("Administrador"), "Bearer "+tok, "")
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func otherSecretToken(t *testing.T) string {
	t.Helper()
	tok, err := pkgjwt.Generate("otro-secret-completamente-distinto", testUserID, "maria", "Administrador", testIssuer, testExpMin)
	require.NoError(t, err)
	return tok
}
