package domain

import (
	"time"
)

// to iterate thru layers: handler -> service -> storage
type PostCreationData struct {
	Title       string
	Name        string
	Description string
	DueDate     string
}

type Post struct {
	PostId        PostId     `json:"postId"`
	UserId        UserId     `json:"userId"`
	Title         string     `json:"title"`
	Name          string     `json:"name"`
	Description   string     `json:"description"`
	DueDate       string     `json:"dueDate"`
	CreatedAt     time.Time  `json:"createdAt"`
	Done          bool       `json:"done"`
	Status        PostStatus `json:"status"`
	AttachmentUrl *string    `json:"attachmentUrl"`
	// Legacy denormalization, persisted but never maintained. Comment
	// membership is always derived from the by-post index on comments.
	Comments CommentIds `json:"comments"`
	Upvotes  int        `json:"upvotes"`
}

// Closed state implies Done and vice versa; the two fields are only ever
// flipped together.
func (p *Post) IsClosed() bool {
	return p.Done
}
