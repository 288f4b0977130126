package handler

import (
	"errors"
	"net/http"

	"nainaland/internal/model"
	"nainaland/internal/service"

	"github.com/gin-gonic/gin"
)

// TestimonialHandler handles testimonial requests
type TestimonialHandler struct {
	service service.TestimonialService
}

// NewTestimonialHandler creates a new TestimonialHandler
func NewTestimonialHandler(s service.TestimonialService) *TestimonialHandler {
	return &TestimonialHandler{service: s}
}

func (h *TestimonialHandler) ListTestimonials(c *gin.Context) {
	testimonials, err := h.service.ListTestimonials(c.Request.Context())
	if err != nil {
		respondInternal(c, "Failed to fetch testimonials", err)
		return
	}
	c.JSON(http.StatusOK, testimonials)
}

func (h *TestimonialHandler) GetTestimonial(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		respondNotFound(c, "Testimonial not found")
		return
	}

	testimonial, err := h.service.GetTestimonial(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrTestimonialNotFound) {
			respondNotFound(c, "Testimonial not found")
			return
		}
		respondInternal(c, "Failed to fetch testimonial", err)
		return
	}
	c.JSON(http.StatusOK, testimonial)
}

func (h *TestimonialHandler) CreateTestimonial(c *gin.Context) {
	var req model.CreateTestimonialRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, "Invalid testimonial data", err)
		return
	}

	testimonial, err := h.service.CreateTestimonial(c.Request.Context(), req)
	if err != nil {
		respondInternal(c, "Failed to create testimonial", err)
		return
	}
	c.JSON(http.StatusCreated, testimonial)
}

func (h *TestimonialHandler) UpdateTestimonial(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		respondNotFound(c, "Testimonial not found")
		return
	}

	var req model.UpdateTestimonialRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, "Invalid testimonial data", err)
		return
	}

	testimonial, err := h.service.UpdateTestimonial(c.Request.Context(), id, req)
	if err != nil {
		if errors.Is(err, service.ErrTestimonialNotFound) {
			respondNotFound(c, "Testimonial not found")
			return
		}
		respondInternal(c, "Failed to update testimonial", err)
		return
	}
	c.JSON(http.StatusOK, testimonial)
}

func (h *TestimonialHandler) DeleteTestimonial(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		respondNotFound(c, "Testimonial not found")
		return
	}

	if err := h.service.DeleteTestimonial(c.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrTestimonialNotFound) {
			respondNotFound(c, "Testimonial not found")
			return
		}
		respondInternal(c, "Failed to delete testimonial", err)
		return
	}
	c.Status(http.StatusNoContent)
}

// RegisterTestimonialRoutes registers testimonial routes. They are all public.
func (h *TestimonialHandler) RegisterTestimonialRoutes(rg *gin.RouterGroup) {
	testimonials := rg.Group("/testimonials")
	{
		testimonials.GET("", h.ListTestimonials)
		testimonials.GET("/:id", h.GetTestimonial)
		testimonials.POST("", h.CreateTestimonial)
		testimonials.PUT("/:id", h.UpdateTestimonial)
		testimonials.DELETE("/:id", h.DeleteTestimonial)
	}
}
