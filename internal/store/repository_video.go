package store

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/sravani-k-5/vidspark-backend/internal/logger"
	"github.com/sravani-k-5/vidspark-backend/internal/utils"
	"github.com/sravani-k-5/vidspark-backend/models"
)

// videoRepository is the PostgreSQL-backed media catalog.
type videoRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewVideoRepository constructs a [VideoRepository] on top of db.
func NewVideoRepository(db *DB, logger *logger.Logger) VideoRepository {
	logger.Debug().Msg("creating video repository")
	return &videoRepository{
		db:     db,
		logger: logger,
	}
}

// CreateVideo inserts a catalog row. VideoID and StorageKey are supplied by
// the caller; CreatedAt is assigned by the database.
func (r *videoRepository) CreateVideo(ctx context.Context, video models.Video) (models.Video, error) {
	log := logger.FromContext(ctx)
	ctx, cancel := r.db.withTimeout(ctx)
	defer cancel()

	row := r.db.QueryRowContext(ctx, createVideo,
		video.VideoID,
		video.FileName,
		video.StorageKey,
		video.Title,
		video.Category,
		video.Description,
	)
	if err := row.Scan(&video.CreatedAt); err != nil {
		log.Err(err).Str("func", "*videoRepository.CreateVideo").Msg("error inserting video")
		return models.Video{}, r.db.wrapError("create video", fmt.Errorf("%w: %w", ErrVideoNotSaved, err))
	}

	return video, nil
}

// ListVideos returns catalog rows matching filter, newest first.
//
// When filter.IDs is non-nil only those identifiers are looked up; entries
// that are not well-formed ids are skipped, and an empty list short-circuits
// to an empty result.
func (r *videoRepository) ListVideos(ctx context.Context, filter models.VideoFilter) ([]models.Video, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListVideosQuery(filter)
	if err != nil {
		return nil, err
	}
	if query == "" {
		return []models.Video{}, nil
	}

	ctx, cancel := r.db.withTimeout(ctx)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*videoRepository.ListVideos").Msg("error querying videos")
		return nil, r.db.wrapError("list videos", fmt.Errorf("%w: %w", ErrExecutingQuery, err))
	}
	defer rows.Close()

	videos := make([]models.Video, 0)
	for rows.Next() {
		var v models.Video
		if err = rows.Scan(&v.VideoID, &v.FileName, &v.StorageKey, &v.Title, &v.Category, &v.Description, &v.CreatedAt); err != nil {
			log.Err(err).Str("func", "*videoRepository.ListVideos").Msg("error scanning video row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		videos = append(videos, v)
	}
	if err = rows.Err(); err != nil {
		return nil, r.db.wrapError("list videos", fmt.Errorf("%w: %w", ErrScanningRows, err))
	}

	return videos, nil
}

// buildListVideosQuery returns an empty query when the filter can match
// nothing.
func buildListVideosQuery(filter models.VideoFilter) (string, []any, error) {
	q := sq.Select(videoColumns...).
		From(models.Video{}.TableName()).
		OrderBy("created_at DESC", "video_id DESC").
		PlaceholderFormat(sq.Dollar)

	if filter.Category != "" {
		q = q.Where(sq.Eq{"category": filter.Category})
	}

	if filter.IDs != nil {
		ids := make([]string, 0, len(filter.IDs))
		for _, id := range filter.IDs {
			id = models.NormalizeVideoID(id)
			if utils.IsValidID(id) {
				ids = append(ids, id)
			}
		}
		if len(ids) == 0 {
			return "", nil, nil
		}
		q = q.Where(sq.Eq{"video_id": ids})
	}

	query, args, err := q.ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}
