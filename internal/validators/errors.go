package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyName      = errors.New("name is required")
	ErrEmptyEmail     = errors.New("email is required")
	ErrEmptyPassword  = errors.New("password is required")
	ErrInvalidUserID  = errors.New("invalid user ID")
	ErrInvalidVideoID = errors.New("invalid video ID")
	ErrEmptyText      = errors.New("text is required")
	ErrNoFileName     = errors.New("file name is required")
	ErrInvalidSize    = errors.New("invalid file size")

	ErrEmptyTitle       = errors.New("video title is required")
	ErrEmptyCategory    = errors.New("video category is required")
	ErrEmptyDescription = errors.New("video description is required")
)
