package utils

import (
	"unicode/utf8"

	"github.com/quanda-dev/quanda/internal/errors"
)

type PostValidator struct{}

func (v *PostValidator) Title(title string) error {
	if len(title) == 0 {
		return errors.BadRequest("Title is required")
	}
	if utf8.RuneCountInString(title) > 120 {
		return errors.BadRequest("Title is too long")
	}
	return nil
}

func (v *PostValidator) Name(name string) error {
	if utf8.RuneCountInString(name) > 120 {
		return errors.BadRequest("Name is too long")
	}
	return nil
}

func (v *PostValidator) Description(description string) error {
	if utf8.RuneCountInString(description) > 10_000 {
		return errors.BadRequest("Description is too long")
	}
	return nil
}

type CommentValidator struct{}

func (v *CommentValidator) Description(description string) error {
	if len(description) == 0 {
		return errors.BadRequest("Description is required")
	}
	if utf8.RuneCountInString(description) > 10_000 {
		return errors.BadRequest("Description is too long")
	}
	return nil
}
