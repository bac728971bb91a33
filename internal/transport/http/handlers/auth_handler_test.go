package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/opusarchive/opus/internal/repository/jsonstore"
	"github.com/opusarchive/opus/internal/service"
	"github.com/opusarchive/opus/internal/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthHandler(t *testing.T) *AuthHandler {
	t.Helper()
	store, err := storage.Open(t.TempDir())
	require.NoError(t, err)
	return NewAuthHandler(service.NewAuthService(jsonstore.NewUserRepo(store), "test-secret"))
}

func TestRegisterEndpoint(t *testing.T) {
	h := newAuthHandler(t)

	body := `{"username":"jiwon","email":"jiwon@example.com","password":"Str0ngPass"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/register", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h.Register(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)

	raw := rec.Body.String()
	var resp struct {
		User struct {
			Username string `json:"username"`
		} `json:"user"`
		AccessToken string `json:"access_token"`
	}
	require.NoError(t, json.Unmarshal([]byte(raw), &resp))
	assert.Equal(t, "jiwon", resp.User.Username)
	assert.NotEmpty(t, resp.AccessToken)
	assert.NotContains(t, raw, "password_hash")
}

func TestRegisterEndpointConflict(t *testing.T) {
	h := newAuthHandler(t)

	body := `{"username":"jiwon","email":"jiwon@example.com","password":"Str0ngPass"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/register", strings.NewReader(body))
	h.Register(httptest.NewRecorder(), req)

	req = httptest.NewRequest(http.MethodPost, "/api/v1/auth/register", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.Register(rec, req)

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, rec.Body.String(), "USERNAME_TAKEN")
}

func TestRegisterEndpointValidation(t *testing.T) {
	h := newAuthHandler(t)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/register", strings.NewReader(`{"username":"","email":"x","password":""}`))
	rec := httptest.NewRecorder()
	h.Register(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "VALIDATION_ERROR")
}

func TestLoginEndpoint(t *testing.T) {
	h := newAuthHandler(t)

	register := `{"username":"jiwon","email":"jiwon@example.com","password":"Str0ngPass"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/register", strings.NewReader(register))
	h.Register(httptest.NewRecorder(), req)

	req = httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", strings.NewReader(`{"username":"jiwon","password":"Str0ngPass"}`))
	rec := httptest.NewRecorder()
	h.Login(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)

	req = httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", strings.NewReader(`{"username":"jiwon","password":"wrong"}`))
	rec = httptest.NewRecorder()
	h.Login(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "INVALID_CREDENTIALS")
}
