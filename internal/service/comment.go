package service

import (
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/quanda-dev/quanda/internal/domain"
	"github.com/quanda-dev/quanda/internal/errors"
	"github.com/quanda-dev/quanda/internal/service/utils"
)

type CommentService interface {
	Create(userId domain.UserId, data domain.CommentCreationData) (domain.Comment, error)
	Get(commentId domain.CommentId) (*domain.Comment, error)
	ForPost(postId domain.PostId) ([]domain.Comment, error)
	Accept(commentId domain.CommentId) (*domain.Comment, error)
}

type Comment struct {
	storage   CommentStorage
	validator CommentValidator
}

type CommentStorage interface {
	GetComment(commentId domain.CommentId) (*domain.Comment, error)
	GetCommentsByPost(postId domain.PostId) ([]domain.Comment, error)
	PutComment(comment domain.Comment) error
	CloseComment(commentId domain.CommentId) error
	ClosePost(postId domain.PostId) error
}

type CommentValidator interface {
	Description(description string) error
}

func NewComment(storage CommentStorage, validator CommentValidator) CommentService {
	return &Comment{storage, validator}
}

// Create does not verify the target post exists; a comment against an
// unknown postId is stored as-is. Deliberately permissive, matching the
// store's lack of referential constraints.
func (s *Comment) Create(userId domain.UserId, data domain.CommentCreationData) (domain.Comment, error) {
	data.Description = utils.Sanitize(data.Description)

	if err := s.validator.Description(data.Description); err != nil {
		return domain.Comment{}, err
	}

	comment := domain.Comment{
		CommentId:   uuid.NewString(),
		PostId:      data.PostId,
		UserId:      userId,
		Description: data.Description,
		CreatedAt:   time.Now().UTC(),
		Accepted:    false,
		Upvotes:     0,
	}

	slog.Info("creating comment", "commentId", comment.CommentId, "postId", data.PostId, "userId", userId)

	if err := s.storage.PutComment(comment); err != nil {
		return domain.Comment{}, err
	}
	return comment, nil
}

func (s *Comment) Get(commentId domain.CommentId) (*domain.Comment, error) {
	return s.storage.GetComment(commentId)
}

func (s *Comment) ForPost(postId domain.PostId) ([]domain.Comment, error) {
	return s.storage.GetCommentsByPost(postId)
}

// Accept closes the comment's post and marks the comment as the accepted
// answer. The two writes hit separate tables and are not atomic: if the
// second one fails after the first succeeded, the pair stays inconsistent
// until a reconciliation pass. The post is closed first so a crash cannot
// leave an accepted comment under an open post.
func (s *Comment) Accept(commentId domain.CommentId) (*domain.Comment, error) {
	comment, err := s.storage.GetComment(commentId)
	if err != nil {
		return nil, err
	}
	if comment == nil {
		return nil, errors.NotFound("Comment not found")
	}

	slog.Info("closing post and accepting comment", "commentId", commentId, "postId", comment.PostId)

	if err := s.storage.ClosePost(comment.PostId); err != nil {
		return nil, err
	}
	if err := s.storage.CloseComment(commentId); err != nil {
		return nil, err
	}

	comment.Accepted = true
	return comment, nil
}
