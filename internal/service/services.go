package service

import (
	"github.com/sravani-k-5/vidspark-backend/internal/config"
	"github.com/sravani-k-5/vidspark-backend/internal/logger"
	"github.com/sravani-k-5/vidspark-backend/internal/store"
	"github.com/sravani-k-5/vidspark-backend/internal/validators"
)

type Services struct {
	AuthService       AuthService
	MembershipService MembershipService
	VideoService      VideoService
	CommentService    CommentService
	AppInfoService    AppInfoService
}

func NewServices(storages *store.Storages, cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, err
	}

	validator := validators.NewDomainValidator()

	return &Services{
		AuthService: NewAuthService(storages.UserRepository, validator, cfg.App, logger),
		MembershipService: NewMembershipService(
			storages.UserRepository,
			storages.VideoRepository,
			storages.ObjectStorage,
			cfg.Storage.DB,
			logger,
		),
		VideoService:   NewVideoService(storages.VideoRepository, storages.ObjectStorage, validator, logger),
		CommentService: NewCommentService(storages.CommentRepository, storages.UserRepository, validator, logger),
		AppInfoService: appInfoService,
	}, nil
}
