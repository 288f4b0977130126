package handler

import (
	"errors"
	"net/http"

	"nainaland/internal/model"
	"nainaland/internal/service"

	"github.com/gin-gonic/gin"
)

// PropertyHandler handles property catalog requests
type PropertyHandler struct {
	service service.PropertyService
}

// NewPropertyHandler creates a new PropertyHandler
func NewPropertyHandler(s service.PropertyService) *PropertyHandler {
	return &PropertyHandler{service: s}
}

// ListProperties serves GET /properties?type=<t>|featured=true
func (h *PropertyHandler) ListProperties(c *gin.Context) {
	filters := service.PropertyFilters{
		Type:         c.Query("type"),
		FeaturedOnly: c.Query("featured") == "true",
	}

	properties, err := h.service.ListProperties(c.Request.Context(), filters)
	if err != nil {
		respondInternal(c, "Failed to fetch properties", err)
		return
	}
	c.JSON(http.StatusOK, properties)
}

func (h *PropertyHandler) GetProperty(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		respondNotFound(c, "Property not found")
		return
	}

	property, err := h.service.GetProperty(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrPropertyNotFound) {
			respondNotFound(c, "Property not found")
			return
		}
		respondInternal(c, "Failed to fetch property", err)
		return
	}
	c.JSON(http.StatusOK, property)
}

func (h *PropertyHandler) CreateProperty(c *gin.Context) {
	var req model.CreatePropertyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, "Invalid property data", err)
		return
	}

	property, err := h.service.CreateProperty(c.Request.Context(), req)
	if err != nil {
		respondInternal(c, "Failed to create property", err)
		return
	}
	c.JSON(http.StatusCreated, property)
}

func (h *PropertyHandler) UpdateProperty(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		respondNotFound(c, "Property not found")
		return
	}

	var req model.UpdatePropertyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, "Invalid property data", err)
		return
	}

	property, err := h.service.UpdateProperty(c.Request.Context(), id, req)
	if err != nil {
		if errors.Is(err, service.ErrPropertyNotFound) {
			respondNotFound(c, "Property not found")
			return
		}
		respondInternal(c, "Failed to update property", err)
		return
	}
	c.JSON(http.StatusOK, property)
}

func (h *PropertyHandler) DeleteProperty(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		respondNotFound(c, "Property not found")
		return
	}

	if err := h.service.DeleteProperty(c.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrPropertyNotFound) {
			respondNotFound(c, "Property not found")
			return
		}
		respondInternal(c, "Failed to delete property", err)
		return
	}
	c.Status(http.StatusNoContent)
}

// RegisterPropertyRoutes registers public reads and admin-only writes
func (h *PropertyHandler) RegisterPropertyRoutes(rg *gin.RouterGroup, adminMW ...gin.HandlerFunc) {
	properties := rg.Group("/properties")
	{
		properties.GET("", h.ListProperties)
		properties.GET("/:id", h.GetProperty)
	}

	admin := properties.Group("", adminMW...)
	{
		admin.POST("", h.CreateProperty)
		admin.PUT("/:id", h.UpdateProperty)
		admin.DELETE("/:id", h.DeleteProperty)
	}
}
