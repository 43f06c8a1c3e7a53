package domain

import "time"

// Post is a blog entry owned by a single user.
type Post struct {
	ID        string    `db:"id"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
	Title     string    `db:"title"`
	Slug      *string   `db:"slug"`
	Content   string    `db:"content"`
	ImageURL  *string   `db:"image_url"`
	Tags      string    `db:"tags"`
	CreatorID string    `db:"creator_id"`
}

// PostPatch lists the columns of a post to overwrite. Nil fields are left untouched.
type PostPatch struct {
	Title     *string
	Slug      *string
	Content   *string
	ImageURL  *string
	Tags      *string
	UpdatedAt time.Time
}

// Empty reports whether the patch changes no user-visible column.
func (p PostPatch) Empty() bool {
	return p.Title == nil && p.Slug == nil && p.Content == nil && p.ImageURL == nil && p.Tags == nil
}
