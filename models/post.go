package models

import "time"

// Post is a blog entry owned by a single user. Ownership is enforced by the
// service layer: only the owning user may mutate or delete a post through the
// regular endpoints (admins go through the dedicated admin routes instead).
type Post struct {
	// PostID is the internal unique identifier of the post.
	PostID int64 `json:"id"`

	// UserID is the identifier of the owning user. Set from the
	// authenticated identity at creation time and never changed afterwards.
	UserID int64 `json:"user_id"`

	// Title is the post headline.
	Title string `json:"title"`

	// Content is the post body.
	Content string `json:"content"`

	// Author is the free-form display name shown next to the post.
	Author string `json:"author"`

	// Tags is an optional list of topic labels.
	Tags []string `json:"tags"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the name of the database table
// associated with the Post model.
func (p Post) TableName() string {
	return "posts"
}

// PostUpdate describes a partial update of a post. Nil fields are left
// untouched; the repository builds the UPDATE statement dynamically from the
// non-nil ones.
type PostUpdate struct {
	Title   *string   `json:"title"`
	Content *string   `json:"content"`
	Author  *string   `json:"author"`
	Tags    *[]string `json:"tags"`
}
