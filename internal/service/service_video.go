package service

import (
	"context"
	"fmt"
	"io"
	"path"
	"strings"
	"time"

	"github.com/sravani-k-5/vidspark-backend/internal/logger"
	"github.com/sravani-k-5/vidspark-backend/internal/store"
	"github.com/sravani-k-5/vidspark-backend/internal/utils"
	"github.com/sravani-k-5/vidspark-backend/internal/validators"
	"github.com/sravani-k-5/vidspark-backend/models"
	"golang.org/x/sync/errgroup"
)

// presignConcurrency caps the number of URLs signed in parallel for one
// listing.
const presignConcurrency = 8

type videoService struct {
	videoRepository store.VideoRepository
	objectStorage   store.ObjectStorage
	idGenerator     *utils.UUIDGenerator
	validator       validators.Validator

	// now is replaced in tests to get deterministic storage keys.
	now func() time.Time

	logger *logger.Logger
}

func NewVideoService(videoRepository store.VideoRepository, objectStorage store.ObjectStorage, validator validators.Validator, logger *logger.Logger) VideoService {
	return &videoService{
		videoRepository: videoRepository,
		objectStorage:   objectStorage,
		idGenerator:     utils.NewUUIDGenerator(),
		validator:       validator,
		now:             time.Now,
		logger:          logger,
	}
}

// Upload stores body in the media bucket under "<unix-millis>-<file name>"
// and records the catalog row.
//
// When the catalog insert fails the object stays in the bucket; it is
// unreachable through the API and harmless.
func (s *videoService) Upload(ctx context.Context, upload models.VideoUpload, body io.Reader) (models.Video, error) {
	log := logger.FromContext(ctx)

	fileName := path.Base(strings.TrimSpace(upload.FileName))
	if body == nil {
		log.Error().Msg("no file uploaded")
		return models.Video{}, ErrNoFileUploaded
	}
	upload.FileName = fileName
	if err := s.validator.Validate(ctx, upload, validators.FieldFileName, validators.FieldSize); err != nil {
		log.Err(err).Str("file_name", upload.FileName).Msg("no file uploaded")
		return models.Video{}, fmt.Errorf("%w: %w", ErrNoFileUploaded, err)
	}

	upload.Title = strings.TrimSpace(upload.Title)
	upload.Category = strings.TrimSpace(upload.Category)
	upload.Description = strings.TrimSpace(upload.Description)
	if err := s.validator.Validate(ctx, upload, validators.FieldTitle, validators.FieldCategory, validators.FieldDescription); err != nil {
		log.Err(err).Str("file_name", fileName).Msg("invalid video metadata provided")
		return models.Video{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	key := fmt.Sprintf("%d-%s", s.now().UnixMilli(), fileName)
	if err := s.objectStorage.PutObject(ctx, key, body, upload.Size, upload.ContentType); err != nil {
		log.Err(err).Str("key", key).Msg("storing video object failed")
		return models.Video{}, fmt.Errorf("storing video object failed: %w", err)
	}

	video, err := s.videoRepository.CreateVideo(ctx, models.Video{
		VideoID:     s.idGenerator.Generate(),
		FileName:    fileName,
		StorageKey:  key,
		Title:       upload.Title,
		Category:    upload.Category,
		Description: upload.Description,
	})
	if err != nil {
		log.Err(err).Str("key", key).Msg("saving video to catalog failed")
		return models.Video{}, fmt.Errorf("saving video to catalog failed: %w", err)
	}

	log.Info().Str("video_id", video.VideoID).Str("key", key).Msg("video uploaded")
	return video, nil
}

// List returns the catalog, newest first, optionally narrowed to an exact
// category. Every row carries a presigned download URL.
func (s *videoService) List(ctx context.Context, category string) ([]models.VideoWithURL, error) {
	log := logger.FromContext(ctx)

	videos, err := s.videoRepository.ListVideos(ctx, models.VideoFilter{Category: category})
	if err != nil {
		log.Err(err).Str("category", category).Msg("listing videos failed")
		return nil, fmt.Errorf("listing videos failed: %w", err)
	}

	return presignVideos(ctx, s.objectStorage, videos)
}

// presignVideos attaches a download URL to every video, signing up to
// presignConcurrency URLs at a time. The output keeps the input order.
func presignVideos(ctx context.Context, objectStorage store.ObjectStorage, videos []models.Video) ([]models.VideoWithURL, error) {
	result := make([]models.VideoWithURL, len(videos))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(presignConcurrency)
	for i, video := range videos {
		i, video := i, video
		g.Go(func() error {
			url, err := objectStorage.PresignGetURL(gctx, video.StorageKey)
			if err != nil {
				return fmt.Errorf("presigning %q: %w", video.StorageKey, err)
			}
			result[i] = models.VideoWithURL{Video: video, URL: url}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		logger.FromContext(ctx).Err(err).Msg("presigning video urls failed")
		return nil, err
	}

	return result, nil
}
