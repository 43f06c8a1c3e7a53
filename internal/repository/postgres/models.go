package postgres

import (
	"time"

	"blog-api/internal/domain"
)

type userRecord struct {
	ID        string       `gorm:"primaryKey;type:text"`
	Email     string       `gorm:"uniqueIndex;not null"`
	Password  string       `gorm:"not null"`
	Name      string       `gorm:"not null"`
	Avatar    *string
	Role      string       `gorm:"not null;default:USER"`
	CreatedAt time.Time
	UpdatedAt time.Time
	Posts     []postRecord `gorm:"foreignKey:CreatorID"`
}

func (userRecord) TableName() string { return "users" }

type postRecord struct {
	ID        string `gorm:"primaryKey;type:text"`
	CreatedAt time.Time
	UpdatedAt time.Time `gorm:"index"`
	Title     string    `gorm:"not null"`
	Slug      *string
	Content   string `gorm:"type:text;not null"`
	ImageURL  *string
	Tags      string `gorm:"not null;default:''"`
	CreatorID string `gorm:"type:text;not null;index"`
}

func (postRecord) TableName() string { return "posts" }

func userFromDomain(u *domain.User) userRecord {
	return userRecord{
		ID:        u.ID,
		Email:     u.Email,
		Password:  u.PasswordHash,
		Name:      u.Name,
		Avatar:    u.Avatar,
		Role:      string(u.Role),
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

func (r userRecord) toDomain() *domain.User {
	return &domain.User{
		ID:           r.ID,
		Email:        r.Email,
		PasswordHash: r.Password,
		Name:         r.Name,
		Avatar:       r.Avatar,
		Role:         domain.Role(r.Role),
		CreatedAt:    r.CreatedAt,
		UpdatedAt:    r.UpdatedAt,
	}
}

func postFromDomain(p *domain.Post) postRecord {
	return postRecord{
		ID:        p.ID,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
		Title:     p.Title,
		Slug:      p.Slug,
		Content:   p.Content,
		ImageURL:  p.ImageURL,
		Tags:      p.Tags,
		CreatorID: p.CreatorID,
	}
}

func (r postRecord) toDomain() domain.Post {
	return domain.Post{
		ID:        r.ID,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
		Title:     r.Title,
		Slug:      r.Slug,
		Content:   r.Content,
		ImageURL:  r.ImageURL,
		Tags:      r.Tags,
		CreatorID: r.CreatorID,
	}
}

// patchColumns converts a patch into the column map passed to gorm's Updates.
func patchColumns(patch domain.PostPatch, now time.Time) map[string]any {
	cols := map[string]any{}
	set := func(name string, value *string) {
		if value != nil {
			cols[name] = *value
		}
	}
	set("title", patch.Title)
	set("slug", patch.Slug)
	set("content", patch.Content)
	set("image_url", patch.ImageURL)
	set("tags", patch.Tags)

	updatedAt := patch.UpdatedAt
	if updatedAt.IsZero() {
		updatedAt = now
	}
	cols["updated_at"] = updatedAt.UTC()
	return cols
}
