package service

import (
	"URL_Ping_Monitor/internal/ping-monitor/control"
	apperrors "URL_Ping_Monitor/internal/ping-monitor/errors"
	mockcontrol "URL_Ping_Monitor/internal/ping-monitor/mocks/control"
	mockrepository "URL_Ping_Monitor/internal/ping-monitor/mocks/repository"
	"URL_Ping_Monitor/internal/ping-monitor/model"
	"URL_Ping_Monitor/internal/ping-monitor/repository"
	"URL_Ping_Monitor/internal/ping-monitor/store"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func newSettingsRepo() repository.SettingsRepository {
	return repository.NewSettingsRepository(store.NewStore(store.NewMemoryBackend(), nil, zap.NewNop()), 30)
}

func TestSettingsService_UpdateInterval(t *testing.T) {
	testCases := []struct {
		name             string
		seconds          int
		mock             func(d *mockcontrol.MockDispatcher)
		expectedErr      error
		expectedInterval int
	}{
		{
			name:    "Success",
			seconds: 10,
			mock: func(d *mockcontrol.MockDispatcher) {
				d.EXPECT().Dispatch(gomock.Any(), control.Request{Action: control.ActionUpdateInterval, Interval: 10}).Return(ack)
			},
			expectedInterval: 10,
		},
		{
			name:    "Success at minimum",
			seconds: 5,
			mock: func(d *mockcontrol.MockDispatcher) {
				d.EXPECT().Dispatch(gomock.Any(), gomock.Any()).Return(ack)
			},
			expectedInterval: 5,
		},
		{
			name:             "Failure below minimum",
			seconds:          4,
			mock:             func(d *mockcontrol.MockDispatcher) {},
			expectedErr:      apperrors.ErrInvalidInterval,
			expectedInterval: 30,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			d := mockcontrol.NewMockDispatcher(ctrl)
			tc.mock(d)
			repo := newSettingsRepo()

			s := NewSettingsService(repo, d, 5, zap.NewNop())
			err := s.UpdateInterval(context.Background(), tc.seconds)
			if tc.expectedErr != nil {
				assert.ErrorIs(t, err, tc.expectedErr)
			} else {
				assert.NoError(t, err)
			}
			settings, err := s.GetSettings(context.Background())
			require.NoError(t, err)
			assert.Equal(t, tc.expectedInterval, settings.PingInterval)
		})
	}
}

func TestSettingsService_UpdateIntervalStoreError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mockrepository.NewMockSettingsRepository(ctrl)
	repo.EXPECT().SetPingInterval(gomock.Any(), 10).Return(errors.New("db connection failed"))

	err := NewSettingsService(repo, mockcontrol.NewMockDispatcher(ctrl), 5, zap.NewNop()).UpdateInterval(context.Background(), 10)
	assert.Error(t, err)
}

func TestSettingsService_LauncherAndPermission(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	s := NewSettingsService(newSettingsRepo(), mockcontrol.NewMockDispatcher(ctrl), 0, zap.NewNop())
	ctx := context.Background()

	require.NoError(t, s.SetHideLauncher(ctx, true))
	require.NoError(t, s.SetNotificationPermission(ctx, model.PermissionDenied))
	assert.ErrorIs(t, s.SetNotificationPermission(ctx, "maybe"), apperrors.ErrInvalidPermission)

	settings, err := s.GetSettings(ctx)
	require.NoError(t, err)
	assert.Equal(t, model.Settings{PingInterval: 30, HideLauncher: true, NotificationPermission: model.PermissionDenied}, settings)
}
