package store

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

import (
	"context"
	"io"

	"github.com/sravani-k-5/vidspark-backend/models"
)

// UserRepository persists user accounts together with their liked and
// shared video sets.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
	FindUserByID(ctx context.Context, userID string) (models.User, error)

	// GetMembership returns the ordered membership set of the given kind.
	GetMembership(ctx context.Context, userID string, kind models.MembershipKind) (models.MembershipSet, error)
	// ToggleMembership flips videoID in the user's set of the given kind
	// while holding a row lock on the user, and returns the updated set.
	ToggleMembership(ctx context.Context, userID string, kind models.MembershipKind, videoID string) (models.MembershipSet, error)
}

// VideoRepository is the media catalog.
type VideoRepository interface {
	CreateVideo(ctx context.Context, video models.Video) (models.Video, error)
	// ListVideos returns catalog rows matching filter, newest first.
	ListVideos(ctx context.Context, filter models.VideoFilter) ([]models.Video, error)
}

// CommentRepository stores comments attached to videos.
type CommentRepository interface {
	CreateComment(ctx context.Context, comment models.Comment) (models.Comment, error)
	// ListCommentsByVideo returns comments oldest first with the author name.
	ListCommentsByVideo(ctx context.Context, videoID string) ([]models.Comment, error)
	// DeleteOwnedComment removes the comment only if userID is its author.
	DeleteOwnedComment(ctx context.Context, commentID, userID string) error
}

// ObjectStorage keeps the media files themselves.
type ObjectStorage interface {
	PutObject(ctx context.Context, key string, body io.Reader, size int64, contentType string) error
	PresignGetURL(ctx context.Context, key string) (string, error)
}

// ErrorClassificator decides whether a database error is transient.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
