package http

import (
	"strings"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"blog-api/internal/docs"
)

// DocsOptions configures the Swagger UI mount.
type DocsOptions struct {
	Title       string
	Description string
	Version     string
	Path        string
}

// RegisterDocs serves the OpenAPI document and Swagger UI under opts.Path.
func RegisterDocs(router *gin.Engine, opts DocsOptions) string {
	if opts.Title != "" {
		docs.SwaggerInfo.Title = opts.Title
	}
	if opts.Description != "" {
		docs.SwaggerInfo.Description = opts.Description
	}
	if opts.Version != "" {
		docs.SwaggerInfo.Version = opts.Version
	}

	base := "/" + strings.Trim(opts.Path, "/")
	if base == "/" {
		base = "/docs"
	}
	router.GET(base+"/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	return base
}
