package service

import (
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/quanda-dev/quanda/internal/domain"
	"github.com/quanda-dev/quanda/internal/errors"
	"github.com/quanda-dev/quanda/internal/service/utils"
)

// to mock service in tests
type PostService interface {
	All() ([]domain.Post, error)
	ForUser(userId domain.UserId) ([]domain.Post, error)
	Get(postId domain.PostId) (*domain.Post, error)
	Create(userId domain.UserId, data domain.PostCreationData) (domain.Post, error)
	Delete(userId domain.UserId, postId domain.PostId) error
	UpdateAttachment(userId domain.UserId, postId domain.PostId, attachmentId domain.AttachmentId) error
	UploadUrl(attachmentId domain.AttachmentId) (string, error)
}

type Post struct {
	storage   PostStorage
	media     MediaStorage
	validator PostValidator
}

type PostStorage interface {
	GetAllPosts() ([]domain.Post, error)
	GetPostsByUser(userId domain.UserId) ([]domain.Post, error)
	GetPost(postId domain.PostId) (*domain.Post, error)
	PutPost(post domain.Post) error
	DeletePost(postId domain.PostId) error
	SetAttachmentUrl(postId domain.PostId, url string) error
}

// MediaStorage is the object storage collaborator. UploadUrl returns an
// expiring URL the client writes the file to out-of-band; AttachmentUrl is
// the stable retrieval URL. Neither verifies that an object exists behind
// the id.
type MediaStorage interface {
	UploadUrl(attachmentId domain.AttachmentId) (string, error)
	AttachmentUrl(attachmentId domain.AttachmentId) string
}

type PostValidator interface {
	Title(title string) error
	Name(name string) error
	Description(description string) error
}

func NewPost(storage PostStorage, media MediaStorage, validator PostValidator) PostService {
	return &Post{storage, media, validator}
}

func (s *Post) All() ([]domain.Post, error) {
	return s.storage.GetAllPosts()
}

func (s *Post) ForUser(userId domain.UserId) ([]domain.Post, error) {
	return s.storage.GetPostsByUser(userId)
}

// Get returns nil for an unknown id; absence is a valid empty result at
// this layer.
func (s *Post) Get(postId domain.PostId) (*domain.Post, error) {
	return s.storage.GetPost(postId)
}

func (s *Post) Create(userId domain.UserId, data domain.PostCreationData) (domain.Post, error) {
	data.Title = utils.Sanitize(data.Title)
	data.Name = utils.Sanitize(data.Name)
	data.Description = utils.Sanitize(data.Description)

	if err := s.validator.Title(data.Title); err != nil {
		return domain.Post{}, err
	}
	if err := s.validator.Name(data.Name); err != nil {
		return domain.Post{}, err
	}
	if err := s.validator.Description(data.Description); err != nil {
		return domain.Post{}, err
	}

	post := domain.Post{
		PostId:        uuid.NewString(),
		UserId:        userId,
		Title:         data.Title,
		Name:          data.Name,
		Description:   data.Description,
		DueDate:       data.DueDate,
		CreatedAt:     time.Now().UTC(),
		Done:          false,
		Status:        domain.StatusOpen,
		AttachmentUrl: nil,
		Comments:      domain.CommentIds{},
		Upvotes:       0,
	}

	slog.Info("creating post", "postId", post.PostId, "userId", userId)

	if err := s.storage.PutPost(post); err != nil {
		return domain.Post{}, err
	}
	return post, nil
}

func (s *Post) Delete(userId domain.UserId, postId domain.PostId) error {
	post, err := s.storage.GetPost(postId)
	if err != nil {
		return err
	}
	if post == nil {
		return errors.NotFound("Post not found")
	}
	if err := authorizeOwner(post, userId); err != nil {
		slog.Error("delete rejected", "postId", postId, "userId", userId)
		return err
	}

	slog.Info("deleting post", "postId", postId, "userId", userId)
	return s.storage.DeletePost(postId)
}

// UpdateAttachment resolves the stable URL for attachmentId and stores it on
// the post after the ownership check.
func (s *Post) UpdateAttachment(userId domain.UserId, postId domain.PostId, attachmentId domain.AttachmentId) error {
	attachmentUrl := s.media.AttachmentUrl(attachmentId)

	post, err := s.storage.GetPost(postId)
	if err != nil {
		return err
	}
	if post == nil {
		return errors.NotFound("Post not found")
	}
	if err := authorizeOwner(post, userId); err != nil {
		slog.Error("attachment update rejected", "postId", postId, "userId", userId)
		return err
	}

	slog.Info("updating attachment url", "postId", postId, "attachmentId", attachmentId)
	return s.storage.SetAttachmentUrl(postId, attachmentUrl)
}

func (s *Post) UploadUrl(attachmentId domain.AttachmentId) (string, error) {
	return s.media.UploadUrl(attachmentId)
}
