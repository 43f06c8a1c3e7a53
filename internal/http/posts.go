package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"blog-api/internal/service"
)

type createPostRequest struct {
	Title    string  `json:"title" binding:"required,min=3"`
	Content  string  `json:"content" binding:"required,min=10"`
	ImageURL *string `json:"imageUrl"`
	Tags     string  `json:"tags"`
}

type updatePostRequest struct {
	Title    *string `json:"title" binding:"omitnil,min=3"`
	Content  *string `json:"content" binding:"omitnil,min=10"`
	ImageURL *string `json:"imageUrl"`
	Tags     *string `json:"tags"`
}

type paginationQuery struct {
	Page int `form:"page" binding:"gte=0"`
	Size int `form:"size" binding:"gte=0"`
}

func (h *Handler) createPost(c *gin.Context) {
	user := currentUser(c)
	if user == nil {
		h.writeError(c, service.ErrUnauthorized)
		return
	}

	var req createPostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeValidationError(c, err)
		return
	}

	post, err := h.posts.Create(c.Request.Context(), user.ID, service.CreatePostInput{
		Title:    req.Title,
		Content:  req.Content,
		ImageURL: req.ImageURL,
		Tags:     req.Tags,
	})
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, postToResponse(*post))
}

func (h *Handler) listPosts(c *gin.Context) {
	var query paginationQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		writeValidationError(c, err)
		return
	}

	posts, err := h.posts.FindAll(c.Request.Context(), service.Pagination{Page: query.Page, Size: query.Size})
	if err != nil {
		h.writeError(c, err)
		return
	}

	resp := make([]PostResponse, len(posts))
	for i := range posts {
		resp[i] = postToResponse(posts[i])
	}
	c.JSON(http.StatusOK, resp)
}

func (h *Handler) getPost(c *gin.Context) {
	post, err := h.posts.FindOne(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, postToResponse(*post))
}

func (h *Handler) updatePost(c *gin.Context) {
	var req updatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeValidationError(c, err)
		return
	}

	post, err := h.posts.Update(c.Request.Context(), c.Param("id"), service.UpdatePostInput{
		Title:    req.Title,
		Content:  req.Content,
		ImageURL: req.ImageURL,
		Tags:     req.Tags,
	})
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, postToResponse(*post))
}

func (h *Handler) deletePost(c *gin.Context) {
	post, err := h.posts.Remove(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, postToResponse(*post))
}
