package pg

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/quanda-dev/quanda/internal/domain"
)

const postColumns = "post_id, user_id, title, name, description, due_date, created_at, done, status, attachment_url, comments, upvotes"

func scanPost(row interface {
	Scan(dest ...interface{}) error
}) (domain.Post, error) {
	var post domain.Post
	err := row.Scan(
		&post.PostId, &post.UserId, &post.Title, &post.Name,
		&post.Description, &post.DueDate, &post.CreatedAt,
		&post.Done, &post.Status, &post.AttachmentUrl,
		&post.Comments, &post.Upvotes,
	)
	return post, err
}

func (s *Storage) GetAllPosts() ([]domain.Post, error) {
	rows, err := s.db.Query(fmt.Sprintf("SELECT %s FROM posts", postColumns))
	if err != nil {
		return nil, fmt.Errorf("failed to fetch posts: %w", err)
	}
	defer rows.Close()

	var posts []domain.Post
	for rows.Next() {
		post, err := scanPost(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan post: %w", err)
		}
		posts = append(posts, post)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}
	return posts, nil
}

func (s *Storage) GetPostsByUser(userId domain.UserId) ([]domain.Post, error) {
	rows, err := s.db.Query(
		fmt.Sprintf("SELECT %s FROM posts WHERE user_id = $1", postColumns),
		userId,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch posts for user: %w", err)
	}
	defer rows.Close()

	var posts []domain.Post
	for rows.Next() {
		post, err := scanPost(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan post: %w", err)
		}
		posts = append(posts, post)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}
	return posts, nil
}

// GetPost returns (nil, nil) for an unknown id; mapping absence to an error
// is the caller's decision.
func (s *Storage) GetPost(postId domain.PostId) (*domain.Post, error) {
	row := s.db.QueryRow(
		fmt.Sprintf("SELECT %s FROM posts WHERE post_id = $1", postColumns),
		postId,
	)
	post, err := scanPost(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch post: %w", err)
	}
	return &post, nil
}

// PutPost is an idempotent upsert keyed on post_id.
func (s *Storage) PutPost(post domain.Post) error {
	_, err := s.db.Exec(`
        INSERT INTO posts (post_id, user_id, title, name, description, due_date, created_at, done, status, attachment_url, comments, upvotes)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
        ON CONFLICT (post_id) DO UPDATE SET
            user_id = EXCLUDED.user_id,
            title = EXCLUDED.title,
            name = EXCLUDED.name,
            description = EXCLUDED.description,
            due_date = EXCLUDED.due_date,
            created_at = EXCLUDED.created_at,
            done = EXCLUDED.done,
            status = EXCLUDED.status,
            attachment_url = EXCLUDED.attachment_url,
            comments = EXCLUDED.comments,
            upvotes = EXCLUDED.upvotes
    `,
		post.PostId, post.UserId, post.Title, post.Name,
		post.Description, post.DueDate, post.CreatedAt,
		post.Done, post.Status, post.AttachmentUrl,
		post.Comments, post.Upvotes,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert post: %w", err)
	}
	return nil
}

// ClosePost flips both state fields together. No existence check; updating
// an unknown id is a no-op, matching the store's update semantics.
func (s *Storage) ClosePost(postId domain.PostId) error {
	_, err := s.db.Exec(
		"UPDATE posts SET status = $1, done = TRUE WHERE post_id = $2",
		domain.StatusClosed, postId,
	)
	if err != nil {
		return fmt.Errorf("failed to close post: %w", err)
	}
	return nil
}

func (s *Storage) DeletePost(postId domain.PostId) error {
	_, err := s.db.Exec("DELETE FROM posts WHERE post_id = $1", postId)
	if err != nil {
		return fmt.Errorf("failed to delete post: %w", err)
	}
	return nil
}

func (s *Storage) SetAttachmentUrl(postId domain.PostId, url string) error {
	_, err := s.db.Exec(
		"UPDATE posts SET attachment_url = $1 WHERE post_id = $2",
		url, postId,
	)
	if err != nil {
		return fmt.Errorf("failed to set attachment url: %w", err)
	}
	return nil
}
