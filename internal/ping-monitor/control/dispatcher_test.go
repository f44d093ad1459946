package control

import (
	mockscheduler "URL_Ping_Monitor/internal/ping-monitor/mocks/scheduler"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func TestDispatcher_Dispatch(t *testing.T) {
	testCases := []struct {
		name       string
		req        Request
		setupMocks func(s *mockscheduler.MockMonitorScheduler)
		expected   Response
	}{
		{
			name: "Success update interval",
			req:  Request{Action: ActionUpdateInterval, Interval: 10},
			setupMocks: func(s *mockscheduler.MockMonitorScheduler) {
				s.EXPECT().Reschedule(10)
			},
			expected: Response{Success: true},
		},
		{
			name: "Success interval below minimum is tolerated",
			req:  Request{Action: ActionUpdateInterval, Interval: 1},
			setupMocks: func(s *mockscheduler.MockMonitorScheduler) {
				s.EXPECT().Reschedule(1)
			},
			expected: Response{Success: true},
		},
		{
			name:       "Failure non positive interval",
			req:        Request{Action: ActionUpdateInterval, Interval: 0},
			setupMocks: func(s *mockscheduler.MockMonitorScheduler) {},
			expected:   Response{Error: "interval must be a positive number of seconds"},
		},
		{
			name: "Success start monitoring",
			req:  Request{Action: ActionStartMonitoring, URL: "https://example.com"},
			setupMocks: func(s *mockscheduler.MockMonitorScheduler) {
				s.EXPECT().OnURLAdded("https://example.com")
			},
			expected: Response{Success: true},
		},
		{
			name:       "Failure start monitoring relative url",
			req:        Request{Action: ActionStartMonitoring, URL: "example.com"},
			setupMocks: func(s *mockscheduler.MockMonitorScheduler) {},
			expected:   Response{Error: "url must be an absolute url"},
		},
		{
			name: "Success stop monitoring",
			req:  Request{Action: ActionStopMonitoring, URL: "https://example.com"},
			setupMocks: func(s *mockscheduler.MockMonitorScheduler) {
				s.EXPECT().OnURLRemoved("https://example.com")
			},
			expected: Response{Success: true},
		},
		{
			name:       "Failure stop monitoring without url",
			req:        Request{Action: ActionStopMonitoring},
			setupMocks: func(s *mockscheduler.MockMonitorScheduler) {},
			expected:   Response{Error: "url is required"},
		},
		{
			name:       "Unknown action is ignored",
			req:        Request{Action: "reboot"},
			setupMocks: func(s *mockscheduler.MockMonitorScheduler) {},
			expected:   Response{Ignored: true},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			s := mockscheduler.NewMockMonitorScheduler(ctrl)
			tc.setupMocks(s)

			res := NewDispatcher(s, zap.NewNop()).Dispatch(context.Background(), tc.req)
			assert.Equal(t, tc.expected, res)
		})
	}
}
