package http_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clinident/clinica-api/internal/application/auth"
	"github.com/clinident/clinica-api/internal/application/dto"
	apphttp "github.com/clinident/clinica-api/internal/interfaces/http"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

const (
	testAPIKey    = "clave-compartida-de-tests"
	testJWTSecret = "jwt-secret-de-tests"
)

// buildTestApp construye una app Fiber mínima con una ruta protegida por el
// middleware de api_key y un handler dummy que devuelve 200 si pasa.
func buildTestApp(authUC *auth.UseCase) *fiber.App {
	app := fiber.New()
	app.Get("/protected",
		apphttp.APIKeyMiddleware(authUC),
		func(c *fiber.Ctx) error {
			return c.JSON(fiber.Map{"ok": true})
		},
	)
	return app
}

func testAuthUC() *auth.UseCase {
	return auth.NewUseCase(auth.Config{
		APIKey:     testAPIKey,
		JWTSecret:  testJWTSecret,
		ExpMinutes: 60,
		Issuer:     "clinica-api-test",
	})
}

// doRequest lanza una petición GET y devuelve la respuesta.
func doRequest(t *testing.T, app *fiber.App, target string, header map[string]string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	for k, v := range header {
		req.Header.Set(k, v)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests APIKeyMiddleware
// ──────────────────────────────────────────────────────────────────────────────

// Caso 1: api_key correcto como query param → pasa.
func TestAPIKey_QueryParamCorrecto(t *testing.T) {
	app := buildTestApp(testAuthUC())
	resp := doRequest(t, app, "/protected?api_key="+testAPIKey, nil)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

// Caso 2: api_key correcto como cabecera X-Api-Key → pasa.
func TestAPIKey_CabeceraCorrecta(t *testing.T) {
	app := buildTestApp(testAuthUC())
	resp := doRequest(t, app, "/protected", map[string]string{"X-Api-Key": testAPIKey})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

// Caso 3: sin credencial → 401 con cuerpo {"error":"Unauthorized"} y sin
// tocar el handler.
func TestAPIKey_SinCredencial(t *testing.T) {
	app := buildTestApp(testAuthUC())
	resp := doRequest(t, app, "/protected", nil)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	var body dto.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "Unauthorized", body.Error)
	assert.Empty(t, body.Detail, "el 401 no debe llevar detail")
}

// Caso 4: api_key incorrecto → 401.
func TestAPIKey_ClaveIncorrecta(t *testing.T) {
	app := buildTestApp(testAuthUC())
	resp := doRequest(t, app, "/protected?api_key=incorrecta", nil)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

// Caso 5: Bearer token emitido por /auth/token → pasa.
func TestAPIKey_BearerTokenValido(t *testing.T) {
	authUC := testAuthUC()
	tokenResp, err := authUC.IssueToken(dto.TokenRequest{APIKey: testAPIKey})
	require.NoError(t, err)

	app := buildTestApp(authUC)
	resp := doRequest(t, app, "/protected", map[string]string{
		"Authorization": "Bearer " + tokenResp.Token,
	})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

// Caso 6: Bearer token malformado sin api_key de respaldo → 401.
func TestAPIKey_BearerTokenInvalido(t *testing.T) {
	app := buildTestApp(testAuthUC())
	resp := doRequest(t, app, "/protected", map[string]string{
		"Authorization": "Bearer token.invalido.aqui",
	})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

// Caso 7: sin secreto configurado la API queda abierta.
func TestAPIKey_SinSecretoConfigurado(t *testing.T) {
	app := buildTestApp(auth.NewUseCase(auth.Config{}))
	resp := doRequest(t, app, "/protected", nil)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
