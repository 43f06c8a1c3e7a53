package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"blog-api/internal/auth"
	"blog-api/internal/service"
)

type signInRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

type signUpRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	Name     string `json:"name" binding:"required,min=3"`
}

type refreshRequest struct {
	RefreshToken string `json:"refreshToken" binding:"required"`
}

func (h *Handler) me(c *gin.Context) {
	user := currentUser(c)
	if user == nil {
		h.writeError(c, service.ErrUnauthorized)
		return
	}
	c.JSON(http.StatusOK, userToResponse(*user))
}

func (h *Handler) signUp(c *gin.Context) {
	var req signUpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeValidationError(c, err)
		return
	}

	tokens, err := h.auth.SignUp(c.Request.Context(), req.Email, req.Name, req.Password)
	if err != nil {
		h.writeError(c, err)
		return
	}
	h.startSession(c, http.StatusCreated, tokens)
}

func (h *Handler) signIn(c *gin.Context) {
	var req signInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeValidationError(c, err)
		return
	}

	tokens, err := h.auth.SignIn(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		h.writeError(c, err)
		return
	}
	h.startSession(c, http.StatusOK, tokens)
}

func (h *Handler) signOut(c *gin.Context) {
	h.cookies.clear(c.Writer)
	c.String(http.StatusOK, h.auth.SignOut())
}

func (h *Handler) refresh(c *gin.Context) {
	var req refreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeValidationError(c, err)
		return
	}

	tokens, err := h.auth.RefreshToken(c.Request.Context(), req.RefreshToken)
	if err != nil {
		h.writeError(c, err)
		return
	}
	h.startSession(c, http.StatusOK, tokens)
}

func (h *Handler) startSession(c *gin.Context, status int, tokens auth.TokenPair) {
	h.cookies.set(c.Writer, tokens.AccessToken)
	c.JSON(status, tokens)
}
