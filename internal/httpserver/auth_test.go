package httpserver

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"

	"github.com/adminflow/admin_backend/internal/transport"
)

func TestLogin_Success(t *testing.T) {
	env := newTestEnv(t)
	env.seedUser("admin", "admin123")

	rec, c := env.doJSONRequest(http.MethodPost, "/login", map[string]string{
		"username": "admin",
		"password": "admin123",
	})
	require.NoError(t, env.A.Login(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp transport.MessageResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, "login successful", resp.Message)
}

func TestLogin_MissingField(t *testing.T) {
	env := newTestEnv(t)
	env.seedUser("admin", "admin123")

	_, c := env.doJSONRequest(http.MethodPost, "/login", map[string]string{
		"username": "admin",
	})

	err := env.A.Login(c)
	he, ok := err.(*echo.HTTPError)
	require.True(t, ok)
	require.Equal(t, http.StatusBadRequest, he.Code)
}

func TestLogin_UnknownUser(t *testing.T) {
	env := newTestEnv(t)

	_, c := env.doJSONRequest(http.MethodPost, "/login", map[string]string{
		"username": "nobody",
		"password": "whatever",
	})

	err := env.A.Login(c)
	he, ok := err.(*echo.HTTPError)
	require.True(t, ok)
	require.Equal(t, http.StatusBadRequest, he.Code)
	require.Equal(t, "user not found", he.Message)
}

func TestLogin_WrongPassword(t *testing.T) {
	env := newTestEnv(t)
	env.seedUser("admin", "admin123")

	_, c := env.doJSONRequest(http.MethodPost, "/login", map[string]string{
		"username": "admin",
		"password": "wrong",
	})

	err := env.A.Login(c)
	he, ok := err.(*echo.HTTPError)
	require.True(t, ok)
	require.Equal(t, http.StatusBadRequest, he.Code)
	require.Equal(t, "incorrect password", he.Message)
}

func TestChangePassword_FullFlow(t *testing.T) {
	env := newTestEnv(t)
	env.seedUser("admin", "admin123")

	rec, c := env.doJSONRequest(http.MethodPost, "/change-password", map[string]string{
		"username":        "admin",
		"currentPassword": "admin123",
		"newPassword":     "newsecret",
	})
	require.NoError(t, env.A.ChangePassword(c))
	require.Equal(t, http.StatusOK, rec.Code)

	// New password now works.
	rec, c = env.doJSONRequest(http.MethodPost, "/login", map[string]string{
		"username": "admin",
		"password": "newsecret",
	})
	require.NoError(t, env.A.Login(c))
	require.Equal(t, http.StatusOK, rec.Code)

	// Old password is rejected.
	_, c = env.doJSONRequest(http.MethodPost, "/login", map[string]string{
		"username": "admin",
		"password": "admin123",
	})
	err := env.A.Login(c)
	he, ok := err.(*echo.HTTPError)
	require.True(t, ok)
	require.Equal(t, http.StatusBadRequest, he.Code)
}

func TestChangePassword_MissingField(t *testing.T) {
	env := newTestEnv(t)
	env.seedUser("admin", "admin123")

	_, c := env.doJSONRequest(http.MethodPost, "/change-password", map[string]string{
		"username":        "admin",
		"currentPassword": "admin123",
	})

	err := env.A.ChangePassword(c)
	he, ok := err.(*echo.HTTPError)
	require.True(t, ok)
	require.Equal(t, http.StatusBadRequest, he.Code)
}
