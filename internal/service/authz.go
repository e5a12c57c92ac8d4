package service

import (
	"github.com/quanda-dev/quanda/internal/domain"
	"github.com/quanda-dev/quanda/internal/errors"
)

// authorizeOwner is the single ownership predicate. Only the creator of a
// post may delete it or change its attachment.
func authorizeOwner(post *domain.Post, callerId domain.UserId) error {
	if post.UserId != callerId {
		return errors.Forbidden("User is not the owner of this post")
	}
	return nil
}
