package memory

import (
	"sync"

	"github.com/quanda-dev/quanda/internal/domain"
)

// Store keeps posts and comments in maps guarded by a RWMutex, with index
// maps standing in for the secondary indexes of the SQL schema. It backs
// tests and the -storage=memory mode of the server.
type Store struct {
	mu             sync.RWMutex
	posts          map[domain.PostId]domain.Post
	comments       map[domain.CommentId]domain.Comment
	postsByUser    map[domain.UserId]map[domain.PostId]struct{}
	commentsByPost map[domain.PostId]map[domain.CommentId]struct{}
}

func New() *Store {
	return &Store{
		posts:          make(map[domain.PostId]domain.Post),
		comments:       make(map[domain.CommentId]domain.Comment),
		postsByUser:    make(map[domain.UserId]map[domain.PostId]struct{}),
		commentsByPost: make(map[domain.PostId]map[domain.CommentId]struct{}),
	}
}

// === Post methods ===

func (s *Store) GetAllPosts() ([]domain.Post, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	posts := make([]domain.Post, 0, len(s.posts))
	for _, p := range s.posts {
		posts = append(posts, p)
	}
	return posts, nil
}

func (s *Store) GetPostsByUser(userId domain.UserId) ([]domain.Post, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := s.postsByUser[userId]
	posts := make([]domain.Post, 0, len(ids))
	for id := range ids {
		posts = append(posts, s.posts[id])
	}
	return posts, nil
}

func (s *Store) GetPost(postId domain.PostId) (*domain.Post, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	post, ok := s.posts[postId]
	if !ok {
		return nil, nil
	}
	return &post, nil
}

func (s *Store) PutPost(post domain.Post) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if old, ok := s.posts[post.PostId]; ok && old.UserId != post.UserId {
		delete(s.postsByUser[old.UserId], post.PostId)
	}
	s.posts[post.PostId] = post
	if s.postsByUser[post.UserId] == nil {
		s.postsByUser[post.UserId] = make(map[domain.PostId]struct{})
	}
	s.postsByUser[post.UserId][post.PostId] = struct{}{}
	return nil
}

func (s *Store) ClosePost(postId domain.PostId) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	post, ok := s.posts[postId]
	if !ok {
		// no-op on unknown key, like an unconditional UPDATE
		return nil
	}
	post.Done = true
	post.Status = domain.StatusClosed
	s.posts[postId] = post
	return nil
}

func (s *Store) DeletePost(postId domain.PostId) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	post, ok := s.posts[postId]
	if !ok {
		return nil
	}
	delete(s.posts, postId)
	delete(s.postsByUser[post.UserId], postId)
	return nil
}

func (s *Store) SetAttachmentUrl(postId domain.PostId, url string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	post, ok := s.posts[postId]
	if !ok {
		return nil
	}
	post.AttachmentUrl = &url
	s.posts[postId] = post
	return nil
}

// === Comment methods ===

func (s *Store) GetComment(commentId domain.CommentId) (*domain.Comment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	comment, ok := s.comments[commentId]
	if !ok {
		return nil, nil
	}
	return &comment, nil
}

func (s *Store) GetCommentsByPost(postId domain.PostId) ([]domain.Comment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := s.commentsByPost[postId]
	comments := make([]domain.Comment, 0, len(ids))
	for id := range ids {
		comments = append(comments, s.comments[id])
	}
	return comments, nil
}

func (s *Store) PutComment(comment domain.Comment) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if old, ok := s.comments[comment.CommentId]; ok && old.PostId != comment.PostId {
		delete(s.commentsByPost[old.PostId], comment.CommentId)
	}
	s.comments[comment.CommentId] = comment
	if s.commentsByPost[comment.PostId] == nil {
		s.commentsByPost[comment.PostId] = make(map[domain.CommentId]struct{})
	}
	s.commentsByPost[comment.PostId][comment.CommentId] = struct{}{}
	return nil
}

func (s *Store) CloseComment(commentId domain.CommentId) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	comment, ok := s.comments[commentId]
	if !ok {
		return nil
	}
	comment.Accepted = true
	s.comments[commentId] = comment
	return nil
}
