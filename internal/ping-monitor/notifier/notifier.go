package notifier

import (
	"URL_Ping_Monitor/internal/ping-monitor/model"
	"URL_Ping_Monitor/internal/ping-monitor/publisher"
	"URL_Ping_Monitor/internal/ping-monitor/repository"
	"context"
	"fmt"

	"go.uber.org/zap"
)

// Platform displays a user-visible alert.
type Platform interface {
	Create(ctx context.Context, alert model.Alert) error
}

type Notifier interface {
	AlertOffline(ctx context.Context, url string) error
}

type notifier struct {
	platform     Platform
	settingsRepo repository.SettingsRepository
	publisher    publisher.Publisher
	logger       *zap.Logger
}

// AlertOffline raises the offline alert. Without granted permission the alert is still attempted
// and a permission request is pushed to the UI surfaces.
func (n *notifier) AlertOffline(ctx context.Context, url string) error {
	level, err := n.settingsRepo.GetNotificationPermission(ctx)
	if err != nil {
		n.logger.Warn("failed to read notification permission", zap.Error(fmt.Errorf("notifier.AlertOffline: %w", err)))
	} else if level != model.PermissionGranted {
		n.logger.Info("notification permission not granted", zap.String("permission", level), zap.String("url", url))
		if e := n.publisher.Publish(ctx, model.Message{Action: model.ActionPermissionRequest}); e != nil {
			n.logger.Warn("failed to push permission request", zap.Error(fmt.Errorf("notifier.AlertOffline: %w", e)))
		}
	}
	if err = n.platform.Create(ctx, model.NewOfflineAlert(url)); err != nil {
		return fmt.Errorf("notifier.AlertOffline: %w", err)
	}
	return nil
}

func NewNotifier(platform Platform, settingsRepo repository.SettingsRepository, pub publisher.Publisher, logger *zap.Logger) Notifier {
	return &notifier{
		platform:     platform,
		settingsRepo: settingsRepo,
		publisher:    pub,
		logger:       logger,
	}
}
