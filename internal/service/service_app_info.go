package service

import (
	"context"
	"runtime/debug"

	"github.com/sravani-k-5/vidspark-backend/internal/config"
	"github.com/sravani-k-5/vidspark-backend/internal/logger"
)

// develVersion is what the Go toolchain stamps into binaries built from a
// working tree without a module version.
const develVersion = "(devel)"

type appInfoService struct {
	appVersion string

	logger *logger.Logger
}

// NewAppInfoService reports the configured application version. When the
// configuration leaves it empty the module version stamped into the binary
// is used instead; if there is none either, ErrVersionIsNotSpecified is
// returned.
func NewAppInfoService(cfg config.App, logger *logger.Logger) (AppInfoService, error) {
	version := cfg.Version
	if version == "" {
		version = buildVersion()
	}
	if version == "" {
		return nil, ErrVersionIsNotSpecified
	}

	logger.Debug().Str("version", version).Msg("app info service created")
	return &appInfoService{
		appVersion: version,
		logger:     logger,
	}, nil
}

func (s *appInfoService) GetAppVersion(ctx context.Context) string {
	return s.appVersion
}

func buildVersion() string {
	info, ok := debug.ReadBuildInfo()
	if !ok || info.Main.Version == develVersion {
		return ""
	}
	return info.Main.Version
}
