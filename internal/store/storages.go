package store

import (
	"context"
	"fmt"

	"github.com/sravani-k-5/vidspark-backend/internal/config"
	"github.com/sravani-k-5/vidspark-backend/internal/logger"
)

// Storages bundles every persistence backend used by the services.
type Storages struct {
	UserRepository    UserRepository
	VideoRepository   VideoRepository
	CommentRepository CommentRepository
	ObjectStorage     ObjectStorage

	db *DB
}

// NewStorages connects to Postgres, applies migrations and builds the
// repositories and the object storage client.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	db, err := NewConnectPostgres(ctx, cfg.DB, log)
	if err != nil {
		return nil, err
	}

	if err = db.Migrate(); err != nil {
		log.Err(err).Msg("error applying migrations")
		_ = db.Close()
		return nil, fmt.Errorf("error applying migrations: %w", err)
	}

	objects, err := NewS3ObjectStorage(ctx, cfg.Objects, log)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	return &Storages{
		UserRepository:    NewUserRepository(db, log),
		VideoRepository:   NewVideoRepository(db, log),
		CommentRepository: NewCommentRepository(db, log),
		ObjectStorage:     objects,
		db:                db,
	}, nil
}

// Close releases the database pool.
func (s *Storages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
