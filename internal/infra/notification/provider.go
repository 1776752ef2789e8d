package notification

import (
	"context"
	"log/slog"

	"agora/config"
	"agora/internal/domain/constants"
	"agora/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// ProviderParams holds dependencies for NotificationService, injected by Fx
type ProviderParams struct {
	fx.In

	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewNotificationService creates a NotificationService based on configuration
func NewNotificationService(params ProviderParams) (service.NotificationService, error) {
	cfg := params.Config.Push
	logger := params.Logger

	if cfg == nil || cfg.Provider == "" {
		return nil, errors.New("push provider must be configured")
	}

	switch cfg.Provider {
	case constants.PushProviderLocal:
		if cfg.LocalEndpoint == "" {
			return nil, errors.New("local endpoint is required for local push provider")
		}
		logger.Info("Using local HTTP push sender",
			slog.String("endpoint", cfg.LocalEndpoint),
		)

		return NewLocalPushService(cfg.LocalEndpoint, cfg.Timeout, logger), nil

	case constants.PushProviderFirebase:
		if params.Config.Firebase == nil || params.Config.Firebase.CredentialsPath == "" {
			return nil, errors.New("firebase credentials are required for firebase push provider")
		}
		logger.Info("Using Firebase Cloud Messaging sender",
			slog.String("project_id", params.Config.Firebase.ProjectID),
		)

		return NewFirebaseService(params.Ctx, params.Config.Firebase.CredentialsPath)

	default:
		return nil, errors.Errorf("unknown push provider: %s", cfg.Provider)
	}
}

// Module provides the notification FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewNotificationService),
)
