package handler

import (
	"log/slog"
	"net/http"

	"nainaland/internal/middleware"
	"nainaland/internal/service"
	"nainaland/internal/utils"

	"github.com/gin-gonic/gin"
)

// Services are the dependencies of the HTTP layer
type Services struct {
	Auth         service.AuthService
	Properties   service.PropertyService
	Blogs        service.BlogService
	Testimonials service.TestimonialService
	Messages     service.MessageService
}

// RouterConfig carries the HTTP-only settings
type RouterConfig struct {
	JWTUtil    *utils.JWTUtil
	CORSOrigin string
	Logger     *slog.Logger
}

// NewRouter builds the gin engine with every route under /api
func NewRouter(svcs Services, cfg RouterConfig) *gin.Engine {
	useJSONFieldNames()

	router := gin.New()
	router.Use(middleware.RequestID(cfg.Logger))
	router.Use(middleware.Recovery())
	if cfg.CORSOrigin != "" {
		router.Use(middleware.CORS(cfg.CORSOrigin))
	}

	adminMW := []gin.HandlerFunc{
		middleware.JWTAuthMiddleware(cfg.JWTUtil),
		middleware.AdminMiddleware(),
	}

	api := router.Group("/api")
	NewAuthHandler(svcs.Auth).RegisterAuthRoutes(api)
	NewPropertyHandler(svcs.Properties).RegisterPropertyRoutes(api, adminMW...)
	NewBlogHandler(svcs.Blogs).RegisterBlogRoutes(api, adminMW...)
	NewTestimonialHandler(svcs.Testimonials).RegisterTestimonialRoutes(api)
	NewMessageHandler(svcs.Messages).RegisterMessageRoutes(api, adminMW...)

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	return router
}
