package domain

import "github.com/lib/pq"

type (
	UserId       = string
	PostId       = string
	CommentId    = string
	AttachmentId = string

	PostStatus = string

	// CommentIds is stored as text[] in postgres.
	CommentIds = pq.StringArray
)

const (
	StatusOpen   PostStatus = "Open"
	StatusClosed PostStatus = "Closed"
)
