package pg

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/quanda-dev/quanda/internal/domain"
)

const commentColumns = "comment_id, post_id, user_id, description, created_at, accepted, upvotes"

// GetComment returns (nil, nil) for an unknown id.
func (s *Storage) GetComment(commentId domain.CommentId) (*domain.Comment, error) {
	var comment domain.Comment
	err := s.db.QueryRow(
		fmt.Sprintf("SELECT %s FROM comments WHERE comment_id = $1", commentColumns),
		commentId,
	).Scan(
		&comment.CommentId, &comment.PostId, &comment.UserId,
		&comment.Description, &comment.CreatedAt,
		&comment.Accepted, &comment.Upvotes,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch comment: %w", err)
	}
	return &comment, nil
}

func (s *Storage) GetCommentsByPost(postId domain.PostId) ([]domain.Comment, error) {
	rows, err := s.db.Query(
		fmt.Sprintf("SELECT %s FROM comments WHERE post_id = $1", commentColumns),
		postId,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch comments for post: %w", err)
	}
	defer rows.Close()

	var comments []domain.Comment
	for rows.Next() {
		var comment domain.Comment
		if err := rows.Scan(
			&comment.CommentId, &comment.PostId, &comment.UserId,
			&comment.Description, &comment.CreatedAt,
			&comment.Accepted, &comment.Upvotes,
		); err != nil {
			return nil, fmt.Errorf("failed to scan comment: %w", err)
		}
		comments = append(comments, comment)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}
	return comments, nil
}

// PutComment is an idempotent upsert keyed on comment_id. The post_id is
// stored as given; referential consistency with posts is not enforced here.
func (s *Storage) PutComment(comment domain.Comment) error {
	_, err := s.db.Exec(`
        INSERT INTO comments (comment_id, post_id, user_id, description, created_at, accepted, upvotes)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
        ON CONFLICT (comment_id) DO UPDATE SET
            post_id = EXCLUDED.post_id,
            user_id = EXCLUDED.user_id,
            description = EXCLUDED.description,
            created_at = EXCLUDED.created_at,
            accepted = EXCLUDED.accepted,
            upvotes = EXCLUDED.upvotes
    `,
		comment.CommentId, comment.PostId, comment.UserId,
		comment.Description, comment.CreatedAt,
		comment.Accepted, comment.Upvotes,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert comment: %w", err)
	}
	return nil
}

// CloseComment marks the comment accepted. Unconditional; unknown ids are a
// no-op.
func (s *Storage) CloseComment(commentId domain.CommentId) error {
	_, err := s.db.Exec(
		"UPDATE comments SET accepted = TRUE WHERE comment_id = $1",
		commentId,
	)
	if err != nil {
		return fmt.Errorf("failed to close comment: %w", err)
	}
	return nil
}
