package http_test

import (
	"encoding/json"
	"io"
	nethttp "net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/VihangaTD/ERP-microservices/internal/application/dto"
	apihttp "github.com/VihangaTD/ERP-microservices/internal/interfaces/http"
	"github.com/VihangaTD/ERP-microservices/pkg/jwt"
)

const (
	testSecret = "secreto-de-test"
	testIssuer = "auth-service"
)

// newAuthApp monta una ruta protegida que refleja lo que el middleware dejó
// en el contexto.
func newAuthApp() *fiber.App {
	app := fiber.New()
	app.Get("/me", apihttp.AuthMiddleware(testSecret, testIssuer), func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"user_id":    apihttp.GetUserID(c),
			"company_id": apihttp.GetCompanyID(c),
		})
	})
	return app
}

func doRequest(t *testing.T, app *fiber.App, authorization string) (*nethttp.Response, []byte) {
	t.Helper()
	req := httptest.NewRequest(nethttp.MethodGet, "/me", nil)
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}
	resp, err := app.Test(req)
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	resp.Body.Close()
	return resp, body
}

func TestAuthMiddleware_SinHeader(t *testing.T) {
	app := newAuthApp()

	resp, body := doRequest(t, app, "")
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	var errResp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(body, &errResp))
	assert.Equal(t, "MISSING_TOKEN", errResp.Code)
}

func TestAuthMiddleware_FormatoInvalido(t *testing.T) {
	app := newAuthApp()

	for _, header := range []string{"token-a-secas", "Basic abc123"} {
		resp, body := doRequest(t, app, header)
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode, "header=%q", header)

		var errResp dto.ErrorResponse
		require.NoError(t, json.Unmarshal(body, &errResp))
		assert.Equal(t, "INVALID_TOKEN", errResp.Code)
	}
}

func TestAuthMiddleware_TokenValidoExtraeContexto(t *testing.T) {
	app := newAuthApp()

	token, err := jwt.Generate(testSecret, "user-1", "company-1", testIssuer, 15)
	require.NoError(t, err)

	resp, body := doRequest(t, app, "Bearer "+token)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var me map[string]string
	require.NoError(t, json.Unmarshal(body, &me))
	assert.Equal(t, "user-1", me["user_id"])
	assert.Equal(t, "company-1", me["company_id"])
}

func TestAuthMiddleware_TokenExpirado(t *testing.T) {
	app := newAuthApp()

	token, err := jwt.Generate(testSecret, "user-1", "company-1", testIssuer, -5)
	require.NoError(t, err)

	resp, body := doRequest(t, app, "Bearer "+token)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	var errResp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(body, &errResp))
	assert.Equal(t, "INVALID_TOKEN", errResp.Code)
}

func TestAuthMiddleware_SecretoIncorrecto(t *testing.T) {
	app := newAuthApp()

	token, err := jwt.Generate("otro-secreto", "user-1", "company-1", testIssuer, 15)
	require.NoError(t, err)

	resp, _ := doRequest(t, app, "Bearer "+token)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

// Un token firmado con el secreto correcto pero emitido por otro servicio no
// pasa la frontera de auth.
func TestAuthMiddleware_EmisorIncorrecto(t *testing.T) {
	app := newAuthApp()

	token, err := jwt.Generate(testSecret, "user-1", "company-1", "otro-servicio", 15)
	require.NoError(t, err)

	resp, body := doRequest(t, app, "Bearer "+token)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	var errResp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(body, &errResp))
	assert.Equal(t, "INVALID_TOKEN", errResp.Code)
}
