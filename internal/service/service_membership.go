package service

import (
	"context"
	"fmt"
	"time"

	"github.com/sravani-k-5/vidspark-backend/internal/config"
	"github.com/sravani-k-5/vidspark-backend/internal/logger"
	"github.com/sravani-k-5/vidspark-backend/internal/store"
	"github.com/sravani-k-5/vidspark-backend/internal/utils"
	"github.com/sravani-k-5/vidspark-backend/models"
)

// membershipService flips and resolves the liked/shared video sets.
//
// Video ids are never checked against the catalog: a toggle of an unknown id
// is stored as is, and listing skips ids that resolve to nothing.
type membershipService struct {
	userRepository  store.UserRepository
	videoRepository store.VideoRepository
	objectStorage   store.ObjectStorage

	// writeTimeout bounds a toggle once it has been detached from the
	// request context.
	writeTimeout time.Duration

	logger *logger.Logger
}

func NewMembershipService(
	userRepository store.UserRepository,
	videoRepository store.VideoRepository,
	objectStorage store.ObjectStorage,
	cfg config.DB,
	logger *logger.Logger,
) MembershipService {
	return &membershipService{
		userRepository:  userRepository,
		videoRepository: videoRepository,
		objectStorage:   objectStorage,
		writeTimeout:    cfg.QueryTimeout,
		logger:          logger,
	}
}

// Toggle flips videoID in the user's set of the given kind.
//
// The write runs on a context that ignores the caller's cancellation, so a
// client hanging up mid-request cannot leave the toggle half applied. It is
// still bounded by writeTimeout.
func (s *membershipService) Toggle(ctx context.Context, userID string, kind models.MembershipKind, videoID string) (models.MembershipSet, error) {
	log := logger.FromContext(ctx)

	if !kind.Valid() {
		log.Error().Str("kind", string(kind)).Msg("unknown membership kind")
		return nil, ErrUnknownMembershipKind
	}

	videoID = models.NormalizeVideoID(videoID)
	if videoID == "" {
		log.Error().Str("user_id", userID).Msg("empty video id")
		return nil, ErrInvalidDataProvided
	}
	if !utils.IsValidID(videoID) {
		log.Warn().
			Str("user_id", userID).
			Str("video_id", videoID).
			Str("kind", string(kind)).
			Msg("toggling membership of a malformed video id")
	}

	writeCtx := context.WithoutCancel(ctx)
	if s.writeTimeout > 0 {
		var cancel context.CancelFunc
		writeCtx, cancel = context.WithTimeout(writeCtx, s.writeTimeout)
		defer cancel()
	}

	set, err := s.userRepository.ToggleMembership(writeCtx, userID, kind, videoID)
	if err != nil {
		log.Err(err).
			Str("user_id", userID).
			Str("video_id", videoID).
			Str("kind", string(kind)).
			Msg("toggle membership failed")
		return nil, fmt.Errorf("toggle membership failed: %w", err)
	}

	log.Debug().
		Str("user_id", userID).
		Str("kind", string(kind)).
		Str("video_id", videoID).
		Bool("member", set.Contains(videoID)).
		Int("size", len(set)).
		Msg("membership toggled")
	return set, nil
}

// ListVideos returns the catalog rows of the user's set of the given kind in
// the order they were added, each with a presigned download URL.
func (s *membershipService) ListVideos(ctx context.Context, userID string, kind models.MembershipKind) ([]models.VideoWithURL, error) {
	log := logger.FromContext(ctx)

	if !kind.Valid() {
		log.Error().Str("kind", string(kind)).Msg("unknown membership kind")
		return nil, ErrUnknownMembershipKind
	}

	set, err := s.userRepository.GetMembership(ctx, userID, kind)
	if err != nil {
		log.Err(err).Str("user_id", userID).Str("kind", string(kind)).Msg("membership lookup failed")
		return nil, fmt.Errorf("membership lookup failed: %w", err)
	}

	if len(set) == 0 {
		return []models.VideoWithURL{}, nil
	}

	videos, err := s.videoRepository.ListVideos(ctx, models.VideoFilter{IDs: set})
	if err != nil {
		log.Err(err).Str("user_id", userID).Str("kind", string(kind)).Msg("resolving membership videos failed")
		return nil, fmt.Errorf("resolving membership videos failed: %w", err)
	}
	set.SortVideos(videos)

	return presignVideos(ctx, s.objectStorage, videos)
}
