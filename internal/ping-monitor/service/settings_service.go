package service

import (
	"URL_Ping_Monitor/internal/ping-monitor/control"
	apperrors "URL_Ping_Monitor/internal/ping-monitor/errors"
	"URL_Ping_Monitor/internal/ping-monitor/model"
	"URL_Ping_Monitor/internal/ping-monitor/repository"
	"context"
	"fmt"

	"go.uber.org/zap"
)

type SettingsService interface {
	GetSettings(ctx context.Context) (model.Settings, error)
	UpdateInterval(ctx context.Context, seconds int) error
	SetHideLauncher(ctx context.Context, hide bool) error
	SetNotificationPermission(ctx context.Context, level string) error
}

type settingsService struct {
	settingsRepo repository.SettingsRepository
	dispatcher   control.Dispatcher
	minInterval  int
	logger       *zap.Logger
}

func (s *settingsService) GetSettings(ctx context.Context) (model.Settings, error) {
	settings, err := s.settingsRepo.GetSettings(ctx)
	if err != nil {
		return model.Settings{}, fmt.Errorf("SettingsService.GetSettings: %w", err)
	}
	return settings, nil
}

func (s *settingsService) UpdateInterval(ctx context.Context, seconds int) error {
	if seconds < s.minInterval {
		return fmt.Errorf("SettingsService.UpdateInterval: %w", apperrors.ErrInvalidInterval)
	}
	if err := s.settingsRepo.SetPingInterval(ctx, seconds); err != nil {
		return fmt.Errorf("SettingsService.UpdateInterval: %w", err)
	}
	res := s.dispatcher.Dispatch(ctx, control.Request{Action: control.ActionUpdateInterval, Interval: seconds})
	if !res.Success {
		s.logger.Warn("control request not acknowledged", zap.String("action", control.ActionUpdateInterval), zap.String("error", res.Error))
	}
	return nil
}

func (s *settingsService) SetHideLauncher(ctx context.Context, hide bool) error {
	if err := s.settingsRepo.SetHideLauncher(ctx, hide); err != nil {
		return fmt.Errorf("SettingsService.SetHideLauncher: %w", err)
	}
	return nil
}

func (s *settingsService) SetNotificationPermission(ctx context.Context, level string) error {
	if level != model.PermissionGranted && level != model.PermissionDenied {
		return fmt.Errorf("SettingsService.SetNotificationPermission: %w", apperrors.ErrInvalidPermission)
	}
	if err := s.settingsRepo.SetNotificationPermission(ctx, level); err != nil {
		return fmt.Errorf("SettingsService.SetNotificationPermission: %w", err)
	}
	return nil
}

// NewSettingsService rejects intervals below minInterval; a non-positive value uses the default minimum.
func NewSettingsService(settingsRepo repository.SettingsRepository, dispatcher control.Dispatcher, minInterval int, logger *zap.Logger) SettingsService {
	if minInterval <= 0 {
		minInterval = model.MinPingIntervalSeconds
	}
	return &settingsService{
		settingsRepo: settingsRepo,
		dispatcher:   dispatcher,
		minInterval:  minInterval,
		logger:       logger,
	}
}
