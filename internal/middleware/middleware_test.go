package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"nainaland/internal/model"
	"nainaland/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func protectedRouter(jwtUtil *utils.JWTUtil) *gin.Engine {
	router := gin.New()
	router.GET("/admin", JWTAuthMiddleware(jwtUtil), AdminMiddleware(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"user": c.GetString(AuthUsernameKey)})
	})
	return router
}

func doGet(router http.Handler, path, auth string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if auth != "" {
		req.Header.Set("Authorization", auth)
	}
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	return resp
}

func TestJWTAuthMiddleware(t *testing.T) {
	jwtUtil := utils.NewJWTUtil("secret", 1)
	router := protectedRouter(jwtUtil)

	adminToken, err := jwtUtil.GenerateToken(1, "admin", model.RoleAdmin)
	require.NoError(t, err)
	userToken, err := jwtUtil.GenerateToken(2, "viewer", model.RoleUser)
	require.NoError(t, err)

	tests := []struct {
		name   string
		auth   string
		status int
	}{
		{"missing header", "", http.StatusUnauthorized},
		{"bad scheme", "Basic abc", http.StatusUnauthorized},
		{"bad token", "Bearer nope", http.StatusUnauthorized},
		{"non admin", "Bearer " + userToken, http.StatusForbidden},
		{"admin", "Bearer " + adminToken, http.StatusOK},
		{"lowercase scheme", "bearer " + adminToken, http.StatusOK},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := doGet(router, "/admin", tt.auth)
			assert.Equal(t, tt.status, resp.Code)
		})
	}
}

func TestRoleMiddlewareWithoutAuth(t *testing.T) {
	router := gin.New()
	router.GET("/", AdminMiddleware(), func(c *gin.Context) { c.Status(http.StatusOK) })

	assert.Equal(t, http.StatusForbidden, doGet(router, "/", "").Code)
}

func TestRequestIDGeneratedAndEchoed(t *testing.T) {
	var buf bytes.Buffer
	router := gin.New()
	router.Use(RequestID(slog.New(slog.NewJSONHandler(&buf, nil))))
	router.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, RequestIDFromContext(c)) })

	resp := doGet(router, "/ping", "")
	generated := resp.Header().Get(RequestIDHeader)
	assert.Len(t, generated, 36)
	assert.Equal(t, generated, resp.Body.String())
	assert.Contains(t, buf.String(), generated)

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(RequestIDHeader, "  abc-123 ")
	resp = httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	assert.Equal(t, "abc-123", resp.Header().Get(RequestIDHeader))
}

func TestRecoveryReturnsGenericError(t *testing.T) {
	router := gin.New()
	router.Use(Recovery())
	router.GET("/boom", func(c *gin.Context) { panic("secret internals") })

	resp := doGet(router, "/boom", "")
	assert.Equal(t, http.StatusInternalServerError, resp.Code)
	assert.JSONEq(t, `{"error":"Internal server error"}`, resp.Body.String())
	assert.NotContains(t, resp.Body.String(), "secret")
}

func TestCORSPreflight(t *testing.T) {
	router := gin.New()
	router.Use(CORS("https://nainalanddeals.com"))
	router.GET("/x", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodOptions, "/x", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusNoContent, resp.Code)
	assert.Equal(t, "https://nainalanddeals.com", resp.Header().Get("Access-Control-Allow-Origin"))
}
