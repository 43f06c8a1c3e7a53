package http

import (
	"time"

	"blog-api/internal/domain"
)

type UserResponse struct {
	ID        string      `json:"id"`
	CreatedAt string      `json:"createdAt"`
	UpdatedAt string      `json:"updatedAt"`
	Email     string      `json:"email"`
	Name      string      `json:"name"`
	Avatar    *string     `json:"avatar,omitempty"`
	Role      domain.Role `json:"role"`
}

type PostResponse struct {
	ID        string  `json:"id"`
	CreatedAt string  `json:"createdAt"`
	UpdatedAt string  `json:"updatedAt"`
	Title     string  `json:"title"`
	Slug      *string `json:"slug"`
	Content   string  `json:"content"`
	ImageURL  *string `json:"imageUrl"`
	Tags      string  `json:"tags"`
	CreatorID string  `json:"creatorId"`
}

func userToResponse(user domain.User) UserResponse {
	return UserResponse{
		ID:        user.ID,
		CreatedAt: user.CreatedAt.Format(time.RFC3339),
		UpdatedAt: user.UpdatedAt.Format(time.RFC3339),
		Email:     user.Email,
		Name:      user.Name,
		Avatar:    user.Avatar,
		Role:      user.Role,
	}
}

func postToResponse(post domain.Post) PostResponse {
	return PostResponse{
		ID:        post.ID,
		CreatedAt: post.CreatedAt.Format(time.RFC3339),
		UpdatedAt: post.UpdatedAt.Format(time.RFC3339),
		Title:     post.Title,
		Slug:      post.Slug,
		Content:   post.Content,
		ImageURL:  post.ImageURL,
		Tags:      post.Tags,
		CreatorID: post.CreatorID,
	}
}
