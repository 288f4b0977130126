package handler

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"testing"
	"time"

	"nainaland/internal/model"
	"nainaland/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListProperties(t *testing.T) {
	app := newTestApp(t)
	featured := true
	app.createProperty(t, model.CreatePropertyRequest{Title: "Plot", Price: 100, Location: "Khalapur", Size: 1, PropertyType: "Land", IsFeatured: &featured})
	app.createProperty(t, model.CreatePropertyRequest{Title: "Farm", Price: 200, Location: "Karjat", Size: 2, PropertyType: "Agricultural"})

	resp := app.do(t, http.MethodGet, "/api/properties", nil, "")
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Len(t, decode[[]model.Property](t, resp), 2)

	resp = app.do(t, http.MethodGet, "/api/properties?type=Land", nil, "")
	require.Equal(t, http.StatusOK, resp.Code)
	land := decode[[]model.Property](t, resp)
	require.Len(t, land, 1)
	assert.Equal(t, "Plot", land[0].Title)

	resp = app.do(t, http.MethodGet, "/api/properties?featured=true", nil, "")
	require.Equal(t, http.StatusOK, resp.Code)
	featuredOnly := decode[[]model.Property](t, resp)
	require.Len(t, featuredOnly, 1)
	assert.True(t, featuredOnly[0].IsFeatured)

	resp = app.do(t, http.MethodGet, "/api/properties?featured=yes", nil, "")
	assert.Len(t, decode[[]model.Property](t, resp), 2)
}

func TestListPropertiesEmptyIsArray(t *testing.T) {
	app := newTestApp(t)

	resp := app.do(t, http.MethodGet, "/api/properties?type=Commercial", nil, "")
	require.Equal(t, http.StatusOK, resp.Code)
	assert.JSONEq(t, `[]`, resp.Body.String())
}

func TestGetProperty(t *testing.T) {
	app := newTestApp(t)
	created := app.createProperty(t, model.CreatePropertyRequest{Title: "Plot", Price: 100, Location: "X", Size: 1, PropertyType: "Land"})

	resp := app.do(t, http.MethodGet, "/api/properties/1", nil, "")
	require.Equal(t, http.StatusOK, resp.Code)
	got := decode[model.Property](t, resp)
	assert.Equal(t, created.ID, got.ID)
	assert.Equal(t, created.Title, got.Title)
	assert.Equal(t, []string{}, got.Features)
	assert.Contains(t, resp.Body.String(), `"videoUrl":""`)

	for _, path := range []string{"/api/properties/99", "/api/properties/abc", "/api/properties/-1"} {
		resp = app.do(t, http.MethodGet, path, nil, "")
		assert.Equal(t, http.StatusNotFound, resp.Code, path)
		assert.Equal(t, "Property not found", decode[errorBody](t, resp).Error)
	}
}

func TestCreatePropertyRequiresAdmin(t *testing.T) {
	app := newTestApp(t)
	body := map[string]any{"title": "A", "price": 100, "location": "X", "size": 1, "propertyType": "Land"}

	resp := app.do(t, http.MethodPost, "/api/properties", body, "")
	assert.Equal(t, http.StatusUnauthorized, resp.Code)

	userToken, err := app.jwtUtil.GenerateToken(2, "viewer", model.RoleUser)
	require.NoError(t, err)
	resp = app.do(t, http.MethodPost, "/api/properties", body, userToken)
	assert.Equal(t, http.StatusForbidden, resp.Code)

	assert.Equal(t, 0, app.store.Properties.Len())
}

func TestCreatePropertyFillsDefaults(t *testing.T) {
	app := newTestApp(t)
	body := map[string]any{"title": "A", "price": 100, "location": "X", "size": 1, "propertyType": "Land"}

	resp := app.do(t, http.MethodPost, "/api/properties", body, app.adminToken(t))
	require.Equal(t, http.StatusCreated, resp.Code)

	p := decode[model.Property](t, resp)
	assert.Equal(t, 1, p.ID)
	assert.Equal(t, "", p.SizeUnit)
	assert.Equal(t, []string{}, p.Features)
	assert.Equal(t, []string{}, p.Images)
	assert.Equal(t, "", p.VideoURL)
	assert.False(t, p.IsFeatured)
	assert.WithinDuration(t, time.Now(), p.CreatedAt, 5*time.Second)
}

func TestCreatePropertyValidation(t *testing.T) {
	app := newTestApp(t)
	body := map[string]any{"title": "A", "price": 100, "size": 1, "propertyType": "Land", "images": []string{"not a url"}}

	resp := app.do(t, http.MethodPost, "/api/properties", body, app.adminToken(t))
	require.Equal(t, http.StatusBadRequest, resp.Code)

	out := decode[errorBody](t, resp)
	assert.Equal(t, "Invalid property data", out.Error)
	fields := map[string]string{}
	for _, d := range out.Details {
		fields[d.Field] = d.Message
	}
	assert.Equal(t, "is required", fields["location"])
	assert.Equal(t, "must be a valid URL", fields["images[0]"])
	assert.Equal(t, 0, app.store.Properties.Len())
}

func TestCreatePropertyMalformedJSON(t *testing.T) {
	app := newTestApp(t)

	resp := app.do(t, http.MethodPost, "/api/properties", `{"title":`, app.adminToken(t))
	assert.Equal(t, http.StatusBadRequest, resp.Code)

	resp = app.do(t, http.MethodPost, "/api/properties", `{"title":"A","price":"cheap"}`, app.adminToken(t))
	require.Equal(t, http.StatusBadRequest, resp.Code)
	out := decode[errorBody](t, resp)
	require.Len(t, out.Details, 1)
	assert.Equal(t, "price", out.Details[0].Field)
}

func TestUpdateProperty(t *testing.T) {
	app := newTestApp(t)
	before := app.createProperty(t, model.CreatePropertyRequest{Title: "Plot", Price: 100, Location: "X", Size: 1, PropertyType: "Land"})

	resp := app.do(t, http.MethodPut, "/api/properties/1", map[string]any{"isFeatured": true, "id": 50, "createdAt": "2001-01-01T00:00:00Z"}, app.adminToken(t))
	require.Equal(t, http.StatusOK, resp.Code)

	after := decode[model.Property](t, resp)
	assert.Equal(t, before.ID, after.ID)
	assert.True(t, after.IsFeatured)
	assert.Equal(t, before.Title, after.Title)
	assert.True(t, before.CreatedAt.Equal(after.CreatedAt))

	resp = app.do(t, http.MethodPut, "/api/properties/9", map[string]any{"isFeatured": true}, app.adminToken(t))
	assert.Equal(t, http.StatusNotFound, resp.Code)

	resp = app.do(t, http.MethodPut, "/api/properties/1", map[string]any{"price": -5}, app.adminToken(t))
	assert.Equal(t, http.StatusBadRequest, resp.Code)
}

func TestDeleteProperty(t *testing.T) {
	app := newTestApp(t)
	app.createProperty(t, model.CreatePropertyRequest{Title: "Plot", Price: 100, Location: "X", Size: 1, PropertyType: "Land"})

	resp := app.do(t, http.MethodDelete, "/api/properties/1", nil, app.adminToken(t))
	assert.Equal(t, http.StatusNoContent, resp.Code)
	assert.Empty(t, resp.Body.String())

	resp = app.do(t, http.MethodDelete, "/api/properties/1", nil, app.adminToken(t))
	assert.Equal(t, http.StatusNotFound, resp.Code)

	resp = app.do(t, http.MethodGet, "/api/properties/1", nil, "")
	assert.Equal(t, http.StatusNotFound, resp.Code)
}

type failingPropertyService struct {
	service.PropertyService
}

func (failingPropertyService) ListProperties(ctx context.Context, filters service.PropertyFilters) ([]model.Property, error) {
	return nil, errors.New("storage exploded")
}

func TestListPropertiesInternalErrorIsGeneric(t *testing.T) {
	router := NewRouter(Services{Properties: failingPropertyService{}}, RouterConfig{
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	app := &testApp{router: router}

	resp := app.do(t, http.MethodGet, "/api/properties", nil, "")
	assert.Equal(t, http.StatusInternalServerError, resp.Code)
	assert.JSONEq(t, `{"error":"Failed to fetch properties"}`, resp.Body.String())
}
