package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http/httptest"
	"testing"

	"nainaland/internal/model"
	"nainaland/internal/repository"
	"nainaland/internal/service"
	"nainaland/internal/store"
	"nainaland/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

const testJWTSecret = "nainaland_test_jwt_secret_key_1234567890"

func init() {
	gin.SetMode(gin.TestMode)
}

type stubNotifier struct {
	subjects []string
}

func (n *stubNotifier) Notify(ctx context.Context, subject, body string) error {
	n.subjects = append(n.subjects, subject)
	return nil
}

type testApp struct {
	router   *gin.Engine
	store    *store.Store
	repos    repository.Repositories
	jwtUtil  *utils.JWTUtil
	notifier *stubNotifier
}

// newTestApp wires a fresh store through the real services and router.
func newTestApp(t *testing.T) *testApp {
	t.Helper()
	st := store.New()
	repos := repository.NewRepositories(st)
	jwtUtil := utils.NewJWTUtil(testJWTSecret, 1)
	n := &stubNotifier{}

	router := NewRouter(Services{
		Auth:         service.NewAuthService(repos.Users, jwtUtil),
		Properties:   service.NewPropertyService(repos.Properties),
		Blogs:        service.NewBlogService(repos.BlogPosts),
		Testimonials: service.NewTestimonialService(repos.Testimonials),
		Messages:     service.NewMessageService(repos.Messages, n),
	}, RouterConfig{
		JWTUtil: jwtUtil,
		Logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	return &testApp{router: router, store: st, repos: repos, jwtUtil: jwtUtil, notifier: n}
}

func (a *testApp) adminToken(t *testing.T) string {
	t.Helper()
	token, err := a.jwtUtil.GenerateToken(1, "admin", model.RoleAdmin)
	require.NoError(t, err)
	return token
}

func (a *testApp) do(t *testing.T, method, path string, body any, token string) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		reader = bytes.NewBufferString(b)
	default:
		payload, err := json.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	}

	req := httptest.NewRequest(method, path, reader)
	if reader != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp := httptest.NewRecorder()
	a.router.ServeHTTP(resp, req)
	return resp
}

func decode[T any](t *testing.T, resp *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &out), resp.Body.String())
	return out
}

type errorBody struct {
	Error   string       `json:"error"`
	Details []FieldError `json:"details"`
}

func (a *testApp) createProperty(t *testing.T, req model.CreatePropertyRequest) *model.Property {
	t.Helper()
	p, err := a.repos.Properties.Create(context.Background(), req)
	require.NoError(t, err)
	return p
}
