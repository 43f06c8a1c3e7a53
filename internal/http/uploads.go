package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type presignedURLRequest struct {
	Filename string `json:"filename" binding:"required"`
}

func (h *Handler) createPresignedURL(c *gin.Context) {
	var req presignedURLRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeValidationError(c, err)
		return
	}

	url, err := h.uploads.CreatePresignedURL(c.Request.Context(), req.Filename)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.String(http.StatusCreated, url)
}
