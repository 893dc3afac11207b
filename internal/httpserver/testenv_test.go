package httpserver

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http/httptest"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/adminflow/admin_backend/internal/hash"
	"github.com/adminflow/admin_backend/internal/models"
	"github.com/adminflow/admin_backend/internal/repo"
	"github.com/adminflow/admin_backend/internal/service"
	"github.com/adminflow/admin_backend/internal/upload"
)

type testEnv struct {
	T       *testing.T
	E       *echo.Echo
	DB      *gorm.DB
	A       *AuthHandler
	P       *ProductHandler
	Uploads *upload.Store
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Product{}))

	uploads, err := upload.NewStore(t.TempDir())
	require.NoError(t, err)

	store := &repo.GormRepo{DB: db}

	return &testEnv{
		T:       t,
		E:       echo.New(),
		DB:      db,
		A:       &AuthHandler{Svc: &service.AuthService{Repo: store}},
		P:       &ProductHandler{Svc: &service.CatalogService{Repo: store, Uploads: uploads}},
		Uploads: uploads,
	}
}

func (env *testEnv) seedUser(username, password string) {
	env.T.Helper()

	pwHash, err := hash.HashPassword(password)
	require.NoError(env.T, err)
	require.NoError(env.T, env.DB.Create(&models.User{Username: username, PasswordHash: pwHash}).Error)
}

func (env *testEnv) doJSONRequest(method, target string, payload any) (*httptest.ResponseRecorder, echo.Context) {
	env.T.Helper()

	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		require.NoError(env.T, err)
		body = bytes.NewReader(data)
	}

	req := httptest.NewRequest(method, target, body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return rec, env.E.NewContext(req, rec)
}

// doMultipartRequest builds a multipart form from fields and, when filename is
// non-empty, a productImage file part.
func (env *testEnv) doMultipartRequest(method, target string, fields map[string]string, filename, content string) (*httptest.ResponseRecorder, echo.Context) {
	env.T.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	for k, v := range fields {
		require.NoError(env.T, writer.WriteField(k, v))
	}
	if filename != "" {
		part, err := writer.CreateFormFile("productImage", filename)
		require.NoError(env.T, err)
		_, err = part.Write([]byte(content))
		require.NoError(env.T, err)
	}
	require.NoError(env.T, writer.Close())

	req := httptest.NewRequest(method, target, body)
	req.Header.Set(echo.HeaderContentType, writer.FormDataContentType())
	rec := httptest.NewRecorder()
	return rec, env.E.NewContext(req, rec)
}

func pizzaFields() map[string]string {
	return map[string]string{
		"name":        "Pizza",
		"serves":      "4",
		"description": "Cheese pizza",
		"price":       "9.99",
	}
}
