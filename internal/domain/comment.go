package domain

import (
	"time"
)

type CommentCreationData struct {
	PostId      PostId
	Description string
}

type Comment struct {
	CommentId   CommentId `json:"commentId"`
	PostId      PostId    `json:"postId"`
	UserId      UserId    `json:"userId"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
	Accepted    bool      `json:"accepted"`
	Upvotes     int       `json:"upvotes"`
}
