package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/sravani-k-5/vidspark-backend/internal/logger"
	"github.com/sravani-k-5/vidspark-backend/internal/store"
	"github.com/sravani-k-5/vidspark-backend/internal/utils"
	"github.com/sravani-k-5/vidspark-backend/internal/validators"
	"github.com/sravani-k-5/vidspark-backend/models"
)

type commentService struct {
	commentRepository store.CommentRepository
	userRepository    store.UserRepository
	idGenerator       *utils.UUIDGenerator
	validator         validators.Validator

	logger *logger.Logger
}

func NewCommentService(commentRepository store.CommentRepository, userRepository store.UserRepository, validator validators.Validator, logger *logger.Logger) CommentService {
	return &commentService{
		commentRepository: commentRepository,
		userRepository:    userRepository,
		idGenerator:       utils.NewUUIDGenerator(),
		validator:         validator,
		logger:            logger,
	}
}

// Create posts a comment authored by comment.UserID and returns it with the
// author's name filled in, the same shape ListByVideo produces.
// The text is trimmed and must not be empty; the video id must be well formed
// but is not checked against the catalog. An author that no longer exists
// yields store.ErrNoUserWasFound.
func (s *commentService) Create(ctx context.Context, comment models.Comment) (models.Comment, error) {
	log := logger.FromContext(ctx)

	comment.Text = strings.TrimSpace(comment.Text)
	comment.VideoID = models.NormalizeVideoID(comment.VideoID)
	if err := s.validator.Validate(ctx, comment, validators.FieldText, validators.FieldUserID, validators.FieldVideoID); err != nil {
		log.Err(err).
			Str("user_id", comment.UserID).
			Str("video_id", comment.VideoID).
			Msg("invalid comment data provided")
		return models.Comment{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	author, err := s.userRepository.FindUserByID(ctx, comment.UserID)
	if err != nil {
		log.Err(err).Str("user_id", comment.UserID).Msg("loading comment author failed")
		return models.Comment{}, fmt.Errorf("loading comment author failed: %w", err)
	}

	comment.CommentID = s.idGenerator.Generate()
	saved, err := s.commentRepository.CreateComment(ctx, comment)
	if err != nil {
		log.Err(err).Str("video_id", comment.VideoID).Msg("saving comment failed")
		return models.Comment{}, fmt.Errorf("saving comment failed: %w", err)
	}
	saved.Author.Name = author.Name

	return saved, nil
}

// Delete removes the comment if userID authored it.
func (s *commentService) Delete(ctx context.Context, commentID, userID string) error {
	log := logger.FromContext(ctx)

	if err := s.commentRepository.DeleteOwnedComment(ctx, strings.TrimSpace(commentID), userID); err != nil {
		log.Err(err).Str("comment_id", commentID).Str("user_id", userID).Msg("deleting comment failed")
		return fmt.Errorf("deleting comment failed: %w", err)
	}

	return nil
}

func (s *commentService) ListByVideo(ctx context.Context, videoID string) ([]models.Comment, error) {
	comments, err := s.commentRepository.ListCommentsByVideo(ctx, videoID)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("video_id", videoID).Msg("listing comments failed")
		return nil, fmt.Errorf("listing comments failed: %w", err)
	}

	return comments, nil
}
