package repository

import (
	"URL_Ping_Monitor/internal/ping-monitor/model"
	"URL_Ping_Monitor/internal/ping-monitor/store"
	"context"
	"fmt"
	"time"
)

type SettingsRepository interface {
	GetMonitorConfig(ctx context.Context) (model.MonitorConfig, error)
	SetPingInterval(ctx context.Context, seconds int) error
	GetSettings(ctx context.Context) (model.Settings, error)
	SetHideLauncher(ctx context.Context, hide bool) error
	GetNotificationPermission(ctx context.Context) (string, error)
	SetNotificationPermission(ctx context.Context, level string) error
	// MarkInstalled records the first activation time and reports whether this call was the first one.
	MarkInstalled(ctx context.Context, at time.Time) (bool, error)
}

type settingsRepository struct {
	store           store.Store
	defaultInterval int
}

func (r *settingsRepository) GetMonitorConfig(ctx context.Context) (model.MonitorConfig, error) {
	values, err := r.store.Get(ctx, model.KeyPingInterval)
	if err != nil {
		return model.MonitorConfig{}, fmt.Errorf("settingsRepository.GetMonitorConfig: %w", err)
	}
	cfg := model.MonitorConfig{PingIntervalSeconds: r.defaultInterval}
	var interval int
	found, err := values.Decode(model.KeyPingInterval, &interval)
	if err != nil {
		return model.MonitorConfig{}, fmt.Errorf("settingsRepository.GetMonitorConfig: %w", err)
	}
	if found && interval > 0 {
		cfg.PingIntervalSeconds = interval
	}
	return cfg, nil
}

func (r *settingsRepository) SetPingInterval(ctx context.Context, seconds int) error {
	if err := r.store.Set(ctx, map[string]any{model.KeyPingInterval: seconds}); err != nil {
		return fmt.Errorf("settingsRepository.SetPingInterval: %w", err)
	}
	return nil
}

func (r *settingsRepository) GetSettings(ctx context.Context) (model.Settings, error) {
	values, err := r.store.Get(ctx, model.KeyPingInterval, model.KeyHideLauncher, model.KeyNotificationPermission)
	if err != nil {
		return model.Settings{}, fmt.Errorf("settingsRepository.GetSettings: %w", err)
	}
	settings := model.Settings{PingInterval: r.defaultInterval}
	var interval int
	if found, e := values.Decode(model.KeyPingInterval, &interval); e != nil {
		return model.Settings{}, fmt.Errorf("settingsRepository.GetSettings: %w", e)
	} else if found && interval > 0 {
		settings.PingInterval = interval
	}
	if _, e := values.Decode(model.KeyHideLauncher, &settings.HideLauncher); e != nil {
		return model.Settings{}, fmt.Errorf("settingsRepository.GetSettings: %w", e)
	}
	if _, e := values.Decode(model.KeyNotificationPermission, &settings.NotificationPermission); e != nil {
		return model.Settings{}, fmt.Errorf("settingsRepository.GetSettings: %w", e)
	}
	return settings, nil
}

func (r *settingsRepository) SetHideLauncher(ctx context.Context, hide bool) error {
	if err := r.store.Set(ctx, map[string]any{model.KeyHideLauncher: hide}); err != nil {
		return fmt.Errorf("settingsRepository.SetHideLauncher: %w", err)
	}
	return nil
}

func (r *settingsRepository) GetNotificationPermission(ctx context.Context) (string, error) {
	values, err := r.store.Get(ctx, model.KeyNotificationPermission)
	if err != nil {
		return "", fmt.Errorf("settingsRepository.GetNotificationPermission: %w", err)
	}
	var level string
	if _, err = values.Decode(model.KeyNotificationPermission, &level); err != nil {
		return "", fmt.Errorf("settingsRepository.GetNotificationPermission: %w", err)
	}
	return level, nil
}

func (r *settingsRepository) SetNotificationPermission(ctx context.Context, level string) error {
	if err := r.store.Set(ctx, map[string]any{model.KeyNotificationPermission: level}); err != nil {
		return fmt.Errorf("settingsRepository.SetNotificationPermission: %w", err)
	}
	return nil
}

func (r *settingsRepository) MarkInstalled(ctx context.Context, at time.Time) (bool, error) {
	values, err := r.store.Get(ctx, model.KeyInstalledAt)
	if err != nil {
		return false, fmt.Errorf("settingsRepository.MarkInstalled: %w", err)
	}
	if _, ok := values[model.KeyInstalledAt]; ok {
		return false, nil
	}
	if err = r.store.Set(ctx, map[string]any{model.KeyInstalledAt: at.UnixMilli()}); err != nil {
		return false, fmt.Errorf("settingsRepository.MarkInstalled: %w", err)
	}
	return true, nil
}

func NewSettingsRepository(s store.Store, defaultInterval int) SettingsRepository {
	if defaultInterval <= 0 {
		defaultInterval = model.DefaultPingIntervalSeconds
	}
	return &settingsRepository{
		store:           s,
		defaultInterval: defaultInterval,
	}
}
