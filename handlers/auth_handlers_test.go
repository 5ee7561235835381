package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"spleux/api/config"
	"spleux/api/middleware"
	"spleux/api/utils"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("correct horse"), bcrypt.MinCost)
	require.NoError(t, err)
	return &config.Config{
		JWTSecret:         "test-secret",
		AdminEmail:        "admin@spleux.com",
		AdminName:         "Admin",
		AdminPasswordHash: hash,
	}
}

func newAuthRouter(cfg *config.Config, log *zap.Logger) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewAuthHandlers(cfg, log)
	r := gin.New()
	r.POST("/api/auth/login", h.Login)
	protected := r.Group("/")
	protected.Use(middleware.AuthRequired([]byte(cfg.JWTSecret), log))
	protected.POST("/api/auth/verify", h.Verify)
	return r
}

func doLogin(t *testing.T, r *gin.Engine, body string) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func TestLoginSuccess(t *testing.T) {
	r := newAuthRouter(testConfig(t), zap.NewNop())

	w := doLogin(t, r, `{"email":"admin@spleux.com","password":"correct horse"}`)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Token string `json:"token"`
		User  struct {
			Email string `json:"email"`
			Name  string `json:"name"`
		} `json:"user"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "admin@spleux.com", resp.User.Email)
	assert.Equal(t, "Admin", resp.User.Name)

	claims, err := utils.ValidateJWT(resp.Token, []byte("test-secret"))
	require.NoError(t, err)
	assert.Equal(t, "admin@spleux.com", claims.Email)
}

func TestLoginMissingFields(t *testing.T) {
	r := newAuthRouter(testConfig(t), zap.NewNop())

	w := doLogin(t, r, `{"email":"admin@spleux.com"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestLoginInvalidCredentialsAreIndistinguishable(t *testing.T) {
	r := newAuthRouter(testConfig(t), zap.NewNop())

	wrongEmail := doLogin(t, r, `{"email":"other@spleux.com","password":"correct horse"}`)
	wrongPassword := doLogin(t, r, `{"email":"admin@spleux.com","password":"nope"}`)

	assert.Equal(t, http.StatusUnauthorized, wrongEmail.Code)
	assert.Equal(t, http.StatusUnauthorized, wrongPassword.Code)
	// Same body either way, so the endpoint cannot confirm which half matched.
	assert.JSONEq(t, wrongEmail.Body.String(), wrongPassword.Body.String())
}

func TestLoginUnconfiguredServer(t *testing.T) {
	r := newAuthRouter(&config.Config{JWTSecret: "s"}, zap.NewNop())

	w := doLogin(t, r, `{"email":"admin@spleux.com","password":"correct horse"}`)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "configuration")
}

func TestVerifyRoundTrip(t *testing.T) {
	cfg := testConfig(t)
	r := newAuthRouter(cfg, zap.NewNop())

	login := doLogin(t, r, `{"email":"admin@spleux.com","password":"correct horse"}`)
	require.Equal(t, http.StatusOK, login.Code)

	var loginResp struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(login.Body.Bytes(), &loginResp))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/auth/verify", http.NoBody)
	req.Header.Set("Authorization", "Bearer "+loginResp.Token)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		User struct {
			Email string `json:"email"`
			Name  string `json:"name"`
		} `json:"user"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "admin@spleux.com", resp.User.Email)
	assert.Equal(t, "Admin", resp.User.Name)
}

func TestVerifyRejectsMissingAndForgedTokens(t *testing.T) {
	cfg := testConfig(t)
	r := newAuthRouter(cfg, zap.NewNop())

	missing := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/auth/verify", http.NoBody)
	r.ServeHTTP(missing, req)
	assert.Equal(t, http.StatusUnauthorized, missing.Code)

	forged, err := utils.GenerateJWT("admin@spleux.com", "Admin", []byte("attacker-secret"))
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodPost, "/api/auth/verify", http.NoBody)
	req.Header.Set("Authorization", "Bearer "+forged)
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
