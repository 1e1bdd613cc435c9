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

	apphttp "github.com/inventorywise/api/internal/interfaces/http"
	pkgjwt "github.com/inventorywise/api/pkg/jwt"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

const (
	testJWTSecret = "test-secret-key-for-unit-tests"
	testUserID    = "00000000-0000-0000-0000-000000000001"
	testIssuer    = "inventorywise-test"
	testExpMin    = 60
)

// buildTestApp construye una aplicación Fiber mínima con AuthMiddleware y un
// handler dummy que devuelve 200 si pasa el middleware.
func buildTestApp() *fiber.App {
	app := fiber.New(fiber.Config{
		// Silenciar errores internos en los tests
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		},
	})
	app.Get("/protected",
		apphttp.AuthMiddleware(testJWTSecret),
		func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusOK).JSON(fiber.Map{
				"ok":   true,
				"role": apphttp.GetRole(c),
			})
		},
	)
	return app
}

// tokenForRole genera un access token JWT con el rol indicado.
func tokenForRole(t *testing.T, role string) string {
	t.Helper()
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, role, testIssuer, testExpMin)
	require.NoError(t, err, "debe generarse un token JWT válido")
	return "Bearer " + tok
}

// doRequest lanza una petición GET /protected y devuelve la respuesta.
func doRequest(t *testing.T, app *fiber.App, authHeader string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests AuthMiddleware
// ──────────────────────────────────────────────────────────────────────────────

// Caso 1: token válido → debe pasar (HTTP 200) y exponer los claims en locals.
func TestAuthMiddleware_TokenValido_Pasa(t *testing.T) {
	app := buildTestApp()
	resp := doRequest(t, app, tokenForRole(t, "admin"))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode,
		"un access token válido debe pasar el middleware")

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, true, body["ok"], "la respuesta debe incluir ok:true")
	assert.Equal(t, "admin", body["role"], "el role debe venir del token")
}

// Caso 2: sin header Authorization → HTTP 401 MISSING_TOKEN.
func TestAuthMiddleware_SinAuthHeader_Retorna401(t *testing.T) {
	app := buildTestApp()
	resp := doRequest(t, app, "") // sin header
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "MISSING_TOKEN",
		"la respuesta debe indicar el código MISSING_TOKEN")
}

// Caso 3: token inválido / malformado → HTTP 401 INVALID_TOKEN.
func TestAuthMiddleware_TokenInvalido_Retorna401(t *testing.T) {
	app := buildTestApp()
	resp := doRequest(t, app, "Bearer token.invalido.aqui")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "INVALID_TOKEN")
}

// Caso 4: header sin esquema Bearer → HTTP 401.
func TestAuthMiddleware_EsquemaIncorrecto_Retorna401(t *testing.T) {
	app := buildTestApp()
	resp := doRequest(t, app, "Basic abc123")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

// Caso 5: un refresh token en Authorization → HTTP 401; solo se aceptan
// access tokens en las rutas protegidas.
func TestAuthMiddleware_RefreshToken_Retorna401(t *testing.T) {
	app := buildTestApp()
	tok, err := pkgjwt.GenerateRefresh(testJWTSecret, testUserID, "admin", testIssuer, 7)
	require.NoError(t, err)

	resp := doRequest(t, app, "Bearer "+tok)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode,
		"un refresh token no debe servir como access token")
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests AuthMiddleware — extracción de claims del token
// ──────────────────────────────────────────────────────────────────────────────

func TestAuthMiddleware_ExtractaClaims(t *testing.T) {
	app := fiber.New()
	app.Get("/me", apphttp.AuthMiddleware(testJWTSecret), func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"user_id": apphttp.GetUserID(c),
			"role":    apphttp.GetRole(c),
		})
	})

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", tokenForRole(t, "stock_manager"))
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, testUserID, body["user_id"])
	assert.Equal(t, "stock_manager", body["role"])
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests JWT pkg — integridad del generate/parse
// ──────────────────────────────────────────────────────────────────────────────

func TestJWT_GenerateAndParse_ConRole(t *testing.T) {
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, "stock_manager", testIssuer, testExpMin)
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	claims, err := pkgjwt.Parse(testJWTSecret, tok)
	require.NoError(t, err)

	assert.Equal(t, testUserID, claims.UserID)
	assert.Equal(t, "stock_manager", claims.Role)
	assert.Equal(t, pkgjwt.TypeAccess, claims.TokenType)
}

func TestJWT_TokenExpirado_RetornaError(t *testing.T) {
	// Token con expiración -1 minuto (ya expirado)
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, "admin", testIssuer, -1)
	require.NoError(t, err)

	_, err = pkgjwt.Parse(testJWTSecret, tok)
	assert.Error(t, err, "token expirado debe retornar error")
}

func TestJWT_SecretIncorrecto_RetornaError(t *testing.T) {
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, "admin", testIssuer, testExpMin)
	require.NoError(t, err)

	_, err = pkgjwt.Parse("otro-secret-completamente-distinto", tok)
	assert.Error(t, err, "secret incorrecto debe invalidar el token")
}

func TestJWT_ParseRefresh_RechazaAccessToken(t *testing.T) {
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, "admin", testIssuer, testExpMin)
	require.NoError(t, err)

	_, err = pkgjwt.ParseRefresh(testJWTSecret, tok)
	assert.Error(t, err, "un access token no debe pasar como refresh token")
}
