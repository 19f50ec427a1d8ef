package service

import (
	"context"
	"io"

	"github.com/sravani-k-5/vidspark-backend/models"
)

type AuthService interface {
	RegisterUser(ctx context.Context, user models.User) (models.User, error)
	Login(ctx context.Context, user models.User) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// MembershipService manages the liked and shared video sets of a user.
type MembershipService interface {
	// Toggle adds videoID to the user's set of the given kind, or removes it
	// if already present, and returns the resulting set.
	Toggle(ctx context.Context, userID string, kind models.MembershipKind, videoID string) (models.MembershipSet, error)
	// ListVideos resolves the user's set of the given kind to catalog rows
	// with download URLs. Ids without a catalog row are skipped.
	ListVideos(ctx context.Context, userID string, kind models.MembershipKind) ([]models.VideoWithURL, error)
}

type VideoService interface {
	Upload(ctx context.Context, upload models.VideoUpload, body io.Reader) (models.Video, error)
	List(ctx context.Context, category string) ([]models.VideoWithURL, error)
}

type CommentService interface {
	Create(ctx context.Context, comment models.Comment) (models.Comment, error)
	Delete(ctx context.Context, commentID, userID string) error
	ListByVideo(ctx context.Context, videoID string) ([]models.Comment, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}
