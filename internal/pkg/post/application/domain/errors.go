package post

import "errors"

var (
	ErrMissingAuthor = errors.New("post: author is required")
	ErrEmptyText     = errors.New("post: text is required")
	ErrTextTooLong   = errors.New("post: text exceeds the maximum length")
	ErrPostNotFound  = errors.New("post: not found")
	ErrReplyNotFound = errors.New("post: reply not found")
	ErrNotAuthor     = errors.New("post: caller is not the author")
	ErrUserNotFound  = errors.New("post: user not found")
	ErrInvalidImage  = errors.New("post: image must be a hosted http(s) url")
)
