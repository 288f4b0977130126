package handler

import (
	"errors"
	"net/http"

	"nainaland/internal/model"
	"nainaland/internal/service"

	"github.com/gin-gonic/gin"
)

// BlogHandler handles blog post requests
type BlogHandler struct {
	service service.BlogService
}

// NewBlogHandler creates a new BlogHandler
func NewBlogHandler(s service.BlogService) *BlogHandler {
	return &BlogHandler{service: s}
}

func (h *BlogHandler) ListPosts(c *gin.Context) {
	posts, err := h.service.ListPosts(c.Request.Context())
	if err != nil {
		respondInternal(c, "Failed to fetch blog posts", err)
		return
	}
	c.JSON(http.StatusOK, posts)
}

func (h *BlogHandler) GetPost(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		respondNotFound(c, "Blog post not found")
		return
	}

	post, err := h.service.GetPost(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrBlogPostNotFound) {
			respondNotFound(c, "Blog post not found")
			return
		}
		respondInternal(c, "Failed to fetch blog post", err)
		return
	}
	c.JSON(http.StatusOK, post)
}

func (h *BlogHandler) CreatePost(c *gin.Context) {
	var req model.CreateBlogPostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, "Invalid blog post data", err)
		return
	}

	post, err := h.service.CreatePost(c.Request.Context(), req)
	if err != nil {
		respondInternal(c, "Failed to create blog post", err)
		return
	}
	c.JSON(http.StatusCreated, post)
}

func (h *BlogHandler) UpdatePost(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		respondNotFound(c, "Blog post not found")
		return
	}

	var req model.UpdateBlogPostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, "Invalid blog post data", err)
		return
	}

	post, err := h.service.UpdatePost(c.Request.Context(), id, req)
	if err != nil {
		if errors.Is(err, service.ErrBlogPostNotFound) {
			respondNotFound(c, "Blog post not found")
			return
		}
		respondInternal(c, "Failed to update blog post", err)
		return
	}
	c.JSON(http.StatusOK, post)
}

func (h *BlogHandler) DeletePost(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		respondNotFound(c, "Blog post not found")
		return
	}

	if err := h.service.DeletePost(c.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrBlogPostNotFound) {
			respondNotFound(c, "Blog post not found")
			return
		}
		respondInternal(c, "Failed to delete blog post", err)
		return
	}
	c.Status(http.StatusNoContent)
}

// RegisterBlogRoutes registers blog routes
func (h *BlogHandler) RegisterBlogRoutes(rg *gin.RouterGroup, adminMW ...gin.HandlerFunc) {
	blogs := rg.Group("/blogs")
	{
		blogs.GET("", h.ListPosts)
		blogs.GET("/:id", h.GetPost)
	}

	admin := blogs.Group("", adminMW...)
	{
		admin.POST("", h.CreatePost)
		admin.PUT("/:id", h.UpdatePost)
		admin.DELETE("/:id", h.DeletePost)
	}
}
