package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"blog-api/internal/service"
)

// Handler wires HTTP routes to domain services.
type Handler struct {
	auth    service.AuthService
	posts   service.PostService
	uploads service.UploadService
	cookies CookieOptions
	cors    CORSOptions
	logger  *logrus.Logger
}

func NewHandler(authSvc service.AuthService, posts service.PostService, uploads service.UploadService, cookies CookieOptions, cors CORSOptions, logger *logrus.Logger) *Handler {
	if logger == nil {
		logger = logrus.New()
	}
	registerJSONFieldNames()
	return &Handler{
		auth:    authSvc,
		posts:   posts,
		uploads: uploads,
		cookies: cookies,
		cors:    cors,
		logger:  logger,
	}
}

func (h *Handler) RegisterRoutes(router *gin.Engine) {
	router.Use(requestLogger(h.logger))
	if h.cors.Enabled {
		router.Use(corsMiddleware(h.cors))
	}

	router.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})

	guard := h.authGuard(h.auth)

	auth := router.Group("/auth")
	{
		auth.GET("/me", guard, h.me)
		auth.POST("/signup", h.signUp)
		auth.POST("/signin", h.signIn)
		auth.POST("/signout", h.signOut)
		auth.POST("/refresh", h.refresh)
	}

	posts := router.Group("/posts")
	{
		posts.POST("", guard, h.createPost)
		posts.GET("", h.listPosts)
		posts.GET("/:id", h.getPost)
		posts.PATCH("/:id", guard, h.updatePost)
		posts.DELETE("/:id", guard, h.deletePost)
	}

	uploads := router.Group("/uploads", guard)
	{
		uploads.POST("/presigned-url", h.createPresignedURL)
	}
}
