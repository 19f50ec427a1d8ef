package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/sravani-k-5/vidspark-backend/internal/logger"
	"github.com/sravani-k-5/vidspark-backend/internal/utils"
	"github.com/sravani-k-5/vidspark-backend/models"
)

type commentRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewCommentRepository constructs a [CommentRepository] on top of db.
func NewCommentRepository(db *DB, logger *logger.Logger) CommentRepository {
	logger.Debug().Msg("creating comment repository")
	return &commentRepository{
		db:     db,
		logger: logger,
	}
}

// CreateComment inserts comment and fills its creation time.
//
// An author that does not exist (a token outliving its user, or a user id that
// is not a UUID) yields [ErrNoUserWasFound].
func (r *commentRepository) CreateComment(ctx context.Context, comment models.Comment) (models.Comment, error) {
	log := logger.FromContext(ctx)
	if !utils.IsValidID(comment.UserID) {
		return models.Comment{}, ErrNoUserWasFound
	}

	ctx, cancel := r.db.withTimeout(ctx)
	defer cancel()

	row := r.db.QueryRowContext(ctx, createComment, comment.CommentID, comment.VideoID, comment.UserID, comment.Text)
	if err := row.Scan(&comment.CreatedAt); err != nil {
		switch postgresError(err) {
		case pgerrcode.ForeignKeyViolation, pgerrcode.InvalidTextRepresentation:
			log.Warn().Err(err).Str("user_id", comment.UserID).Msg("comment author does not exist")
			return models.Comment{}, fmt.Errorf("%w: %w", ErrNoUserWasFound, err)
		}
		log.Err(err).Str("func", "*commentRepository.CreateComment").Msg("error inserting comment")
		return models.Comment{}, r.db.wrapError("create comment", err)
	}

	comment.Author.UserID = comment.UserID
	return comment, nil
}

func (r *commentRepository) ListCommentsByVideo(ctx context.Context, videoID string) ([]models.Comment, error) {
	log := logger.FromContext(ctx)
	videoID = models.NormalizeVideoID(videoID)
	if !utils.IsValidID(videoID) {
		return []models.Comment{}, nil
	}

	ctx, cancel := r.db.withTimeout(ctx)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, listCommentsByVideo, videoID)
	if err != nil {
		log.Err(err).Str("func", "*commentRepository.ListCommentsByVideo").Msg("error querying comments")
		return nil, r.db.wrapError("list comments", fmt.Errorf("%w: %w", ErrExecutingQuery, err))
	}
	defer rows.Close()

	comments := make([]models.Comment, 0)
	for rows.Next() {
		var c models.Comment
		if err = rows.Scan(&c.CommentID, &c.VideoID, &c.UserID, &c.Author.Name, &c.Text, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		c.Author.UserID = c.UserID
		comments = append(comments, c)
	}
	if err = rows.Err(); err != nil {
		return nil, r.db.wrapError("list comments", fmt.Errorf("%w: %w", ErrScanningRows, err))
	}

	return comments, nil
}

// DeleteOwnedComment deletes the comment only when userID is its author.
//
// Returns [ErrCommentNotFound] when no such comment exists and
// [ErrCommentNotOwned] when it belongs to somebody else. Ownership check and
// deletion run as one statement, so there is no window between them.
func (r *commentRepository) DeleteOwnedComment(ctx context.Context, commentID, userID string) error {
	log := logger.FromContext(ctx)
	if !utils.IsValidID(commentID) {
		return ErrCommentNotFound
	}
	if !utils.IsValidID(userID) {
		// cannot own anything; still distinguish missing from foreign
		userID = uuid.Nil.String()
	}

	ctx, cancel := r.db.withTimeout(ctx)
	defer cancel()

	var owner, deleted sql.NullString
	if err := r.db.QueryRowContext(ctx, deleteOwnedComment, commentID, userID).Scan(&owner, &deleted); err != nil {
		log.Err(err).Str("func", "*commentRepository.DeleteOwnedComment").Msg("error deleting comment")
		return r.db.wrapError("delete comment", err)
	}

	switch {
	case !owner.Valid:
		return ErrCommentNotFound
	case !deleted.Valid:
		return ErrCommentNotOwned
	}

	return nil
}
