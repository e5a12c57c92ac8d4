package service

import (
	"errors"
	"testing"

	"github.com/quanda-dev/quanda/internal/domain"
	internal_errors "github.com/quanda-dev/quanda/internal/errors"
	"github.com/quanda-dev/quanda/internal/utils"
)

type MockCommentStorage struct {
	GetCommentFunc        func(commentId domain.CommentId) (*domain.Comment, error)
	GetCommentsByPostFunc func(postId domain.PostId) ([]domain.Comment, error)
	PutCommentFunc        func(comment domain.Comment) error
	CloseCommentFunc      func(commentId domain.CommentId) error
	ClosePostFunc         func(postId domain.PostId) error
}

func (m *MockCommentStorage) GetComment(commentId domain.CommentId) (*domain.Comment, error) {
	if m.GetCommentFunc != nil {
		return m.GetCommentFunc(commentId)
	}
	return &domain.Comment{CommentId: commentId}, nil
}

func (m *MockCommentStorage) GetCommentsByPost(postId domain.PostId) ([]domain.Comment, error) {
	if m.GetCommentsByPostFunc != nil {
		return m.GetCommentsByPostFunc(postId)
	}
	return nil, nil
}

func (m *MockCommentStorage) PutComment(comment domain.Comment) error {
	if m.PutCommentFunc != nil {
		return m.PutCommentFunc(comment)
	}
	return nil
}

func (m *MockCommentStorage) CloseComment(commentId domain.CommentId) error {
	if m.CloseCommentFunc != nil {
		return m.CloseCommentFunc(commentId)
	}
	return nil
}

func (m *MockCommentStorage) ClosePost(postId domain.PostId) error {
	if m.ClosePostFunc != nil {
		return m.ClosePostFunc(postId)
	}
	return nil
}

func TestCommentCreate(t *testing.T) {
	storage := &MockCommentStorage{}
	service := NewComment(storage, &utils.CommentValidator{})

	var saved domain.Comment
	storage.PutCommentFunc = func(comment domain.Comment) error {
		saved = comment
		return nil
	}

	data := domain.CommentCreationData{PostId: "post-1", Description: "an answer"}
	comment, err := service.Create("user-2", data)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if comment.CommentId == "" {
		t.Error("Expected generated commentId")
	}
	if comment.PostId != "post-1" || comment.UserId != "user-2" {
		t.Errorf("Unexpected comment: %+v", comment)
	}
	if comment.Accepted {
		t.Error("New comment must not be accepted")
	}
	if comment.Upvotes != 0 {
		t.Errorf("Unexpected upvotes: %d", comment.Upvotes)
	}
	if saved.CommentId != comment.CommentId {
		t.Errorf("Persisted record differs from returned: %s != %s", saved.CommentId, comment.CommentId)
	}

	// Empty description rejected
	_, err = service.Create("user-2", domain.CommentCreationData{PostId: "post-1"})
	var statusErr *internal_errors.ErrorWithStatusCode
	if !errors.As(err, &statusErr) || statusErr.StatusCode != 400 {
		t.Errorf("Expected 400, got: %v", err)
	}

	// Storage error
	mockError := errors.New("Mock PutCommentFunc")
	storage.PutCommentFunc = func(comment domain.Comment) error { return mockError }
	_, err = service.Create("user-2", data)
	if err == nil || !errors.Is(err, mockError) {
		t.Errorf("Expected %v, got: %v", mockError, err)
	}
}

func TestCommentAccept(t *testing.T) {
	storage := &MockCommentStorage{}
	service := NewComment(storage, &utils.CommentValidator{})

	commentId := domain.CommentId("comment-1")
	postId := domain.PostId("post-1")

	// Successful workflow: post closed first, then comment accepted
	var calls []string
	storage.GetCommentFunc = func(id domain.CommentId) (*domain.Comment, error) {
		return &domain.Comment{CommentId: id, PostId: postId}, nil
	}
	storage.ClosePostFunc = func(id domain.PostId) error {
		if id != postId {
			t.Errorf("Unexpected postId: got %s, expected %s", id, postId)
		}
		calls = append(calls, "ClosePost")
		return nil
	}
	storage.CloseCommentFunc = func(id domain.CommentId) error {
		if id != commentId {
			t.Errorf("Unexpected commentId: got %s, expected %s", id, commentId)
		}
		calls = append(calls, "CloseComment")
		return nil
	}

	comment, err := service.Accept(commentId)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if !comment.Accepted {
		t.Error("Returned comment should be marked accepted")
	}
	if len(calls) != 2 || calls[0] != "ClosePost" || calls[1] != "CloseComment" {
		t.Errorf("Unexpected write order: %v", calls)
	}

	// Unknown comment: NotFound, no writes
	calls = nil
	storage.GetCommentFunc = func(id domain.CommentId) (*domain.Comment, error) { return nil, nil }
	_, err = service.Accept(commentId)
	var statusErr *internal_errors.ErrorWithStatusCode
	if !errors.As(err, &statusErr) || statusErr.StatusCode != 404 {
		t.Errorf("Expected 404, got: %v", err)
	}
	if len(calls) != 0 {
		t.Errorf("Expected no writes, got: %v", calls)
	}

	// ClosePost failure stops the workflow before CloseComment
	calls = nil
	storage.GetCommentFunc = func(id domain.CommentId) (*domain.Comment, error) {
		return &domain.Comment{CommentId: id, PostId: postId}, nil
	}
	mockError := errors.New("Mock ClosePostFunc")
	storage.ClosePostFunc = func(id domain.PostId) error { return mockError }
	_, err = service.Accept(commentId)
	if err == nil || !errors.Is(err, mockError) {
		t.Errorf("Expected %v, got: %v", mockError, err)
	}
	if len(calls) != 0 {
		t.Errorf("CloseComment must not run after ClosePost failure, got: %v", calls)
	}

	// CloseComment failure surfaces even though the post is already closed
	storage.ClosePostFunc = nil
	storage.CloseCommentFunc = func(id domain.CommentId) error { return mockError }
	_, err = service.Accept(commentId)
	if err == nil || !errors.Is(err, mockError) {
		t.Errorf("Expected %v, got: %v", mockError, err)
	}
}

func TestCommentForPost(t *testing.T) {
	storage := &MockCommentStorage{}
	service := NewComment(storage, &utils.CommentValidator{})

	storage.GetCommentsByPostFunc = func(postId domain.PostId) ([]domain.Comment, error) {
		return []domain.Comment{{CommentId: "c1", PostId: postId}, {CommentId: "c2", PostId: postId}}, nil
	}

	comments, err := service.ForPost("post-1")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if len(comments) != 2 {
		t.Errorf("Unexpected comments: %+v", comments)
	}
}
