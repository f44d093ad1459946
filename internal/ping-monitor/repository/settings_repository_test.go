package repository

import (
	"URL_Ping_Monitor/internal/ping-monitor/model"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSettingsRepository_GetMonitorConfig(t *testing.T) {
	ctx := context.Background()
	testCases := []struct {
		name     string
		stored   any
		expected int
	}{
		{name: "Unset uses default", stored: nil, expected: 30},
		{name: "Stored interval", stored: 10, expected: 10},
		{name: "Non positive interval uses default", stored: 0, expected: 30},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			s := newTestStore()
			if tc.stored != nil {
				require.NoError(t, s.Set(ctx, map[string]any{model.KeyPingInterval: tc.stored}))
			}
			repo := NewSettingsRepository(s, 30)
			cfg, err := repo.GetMonitorConfig(ctx)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, cfg.PingIntervalSeconds)
		})
	}
}

func TestSettingsRepository_Settings(t *testing.T) {
	ctx := context.Background()
	repo := NewSettingsRepository(newTestStore(), 0)

	settings, err := repo.GetSettings(ctx)
	require.NoError(t, err)
	assert.Equal(t, model.Settings{PingInterval: model.DefaultPingIntervalSeconds}, settings)

	require.NoError(t, repo.SetPingInterval(ctx, 15))
	require.NoError(t, repo.SetHideLauncher(ctx, true))
	require.NoError(t, repo.SetNotificationPermission(ctx, model.PermissionGranted))

	settings, err = repo.GetSettings(ctx)
	require.NoError(t, err)
	assert.Equal(t, model.Settings{PingInterval: 15, HideLauncher: true, NotificationPermission: model.PermissionGranted}, settings)

	level, err := repo.GetNotificationPermission(ctx)
	require.NoError(t, err)
	assert.Equal(t, model.PermissionGranted, level)
}

func TestSettingsRepository_MarkInstalled(t *testing.T) {
	ctx := context.Background()
	repo := NewSettingsRepository(newTestStore(), 30)

	first, err := repo.MarkInstalled(ctx, time.Now())
	require.NoError(t, err)
	assert.True(t, first)

	again, err := repo.MarkInstalled(ctx, time.Now())
	require.NoError(t, err)
	assert.False(t, again)
}
