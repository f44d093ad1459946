package reconciler

import (
	mocknotifier "URL_Ping_Monitor/internal/ping-monitor/mocks/notifier"
	mockpublisher "URL_Ping_Monitor/internal/ping-monitor/mocks/publisher"
	"URL_Ping_Monitor/internal/ping-monitor/model"
	"URL_Ping_Monitor/internal/ping-monitor/repository"
	"URL_Ping_Monitor/internal/ping-monitor/store"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

const testURL = "https://example.com"

func ptr[T any](v T) *T {
	return &v
}

type failingBackend struct{}

func (failingBackend) Load(context.Context, []string) (map[string][]byte, error) {
	return nil, errors.New("disk gone")
}

func (failingBackend) Save(context.Context, map[string][]byte) error {
	return errors.New("disk gone")
}

func (failingBackend) Close() error {
	return nil
}

func TestReconciler_Apply(t *testing.T) {
	now := time.UnixMilli(1_700_000_000_000)
	testCases := []struct {
		name         string
		stored       []model.MonitoredEndpoint
		result       Result
		setupMocks   func(pub *mockpublisher.MockPublisher, n *mocknotifier.MockNotifier)
		expected     Reconciliation
		expectedList []model.MonitoredEndpoint
	}{
		{
			name:   "Online to offline alerts once",
			stored: []model.MonitoredEndpoint{{URL: testURL, Status: model.StatusOnline, LastChecked: ptr(now.Add(-time.Minute).UnixMilli())}},
			result: Result{URL: testURL, Outcome: model.Unreachable, CheckedAt: now},
			setupMocks: func(pub *mockpublisher.MockPublisher, n *mocknotifier.MockNotifier) {
				gomock.InOrder(
					pub.EXPECT().Publish(gomock.Any(), model.NewStatusUpdate(testURL, model.StatusOffline)).Return(nil),
					n.EXPECT().AlertOffline(gomock.Any(), testURL).Return(nil),
				)
			},
			expected:     Reconciliation{Applied: true, Previous: model.StatusOnline, Current: model.StatusOffline, Alerted: true},
			expectedList: []model.MonitoredEndpoint{{URL: testURL, Status: model.StatusOffline, LastChecked: ptr(now.UnixMilli())}},
		},
		{
			name:   "Checking to offline does not alert",
			stored: []model.MonitoredEndpoint{{URL: testURL, Status: model.StatusChecking}},
			result: Result{URL: testURL, Outcome: model.Unreachable, CheckedAt: now},
			setupMocks: func(pub *mockpublisher.MockPublisher, n *mocknotifier.MockNotifier) {
				pub.EXPECT().Publish(gomock.Any(), model.NewStatusUpdate(testURL, model.StatusOffline)).Return(nil)
			},
			expected:     Reconciliation{Applied: true, Previous: model.StatusChecking, Current: model.StatusOffline},
			expectedList: []model.MonitoredEndpoint{{URL: testURL, Status: model.StatusOffline, LastChecked: ptr(now.UnixMilli())}},
		},
		{
			name:   "Offline to offline does not alert again",
			stored: []model.MonitoredEndpoint{{URL: testURL, Status: model.StatusOffline}},
			result: Result{URL: testURL, Outcome: model.Unreachable, CheckedAt: now},
			setupMocks: func(pub *mockpublisher.MockPublisher, n *mocknotifier.MockNotifier) {
				pub.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil)
			},
			expected:     Reconciliation{Applied: true, Previous: model.StatusOffline, Current: model.StatusOffline},
			expectedList: []model.MonitoredEndpoint{{URL: testURL, Status: model.StatusOffline, LastChecked: ptr(now.UnixMilli())}},
		},
		{
			name:   "Offline to online recovers silently",
			stored: []model.MonitoredEndpoint{{URL: testURL, Status: model.StatusOffline}},
			result: Result{URL: testURL, Outcome: model.Reachable, CheckedAt: now},
			setupMocks: func(pub *mockpublisher.MockPublisher, n *mocknotifier.MockNotifier) {
				pub.EXPECT().Publish(gomock.Any(), model.NewStatusUpdate(testURL, model.StatusOnline)).Return(nil)
			},
			expected:     Reconciliation{Applied: true, Previous: model.StatusOffline, Current: model.StatusOnline},
			expectedList: []model.MonitoredEndpoint{{URL: testURL, Status: model.StatusOnline, LastChecked: ptr(now.UnixMilli())}},
		},
		{
			name:   "Removed url is discarded",
			stored: []model.MonitoredEndpoint{{URL: "https://other.example", Status: model.StatusOnline}},
			result: Result{URL: testURL, Outcome: model.Unreachable, CheckedAt: now},
			setupMocks: func(pub *mockpublisher.MockPublisher, n *mocknotifier.MockNotifier) {
			},
			expected:     Reconciliation{},
			expectedList: []model.MonitoredEndpoint{{URL: "https://other.example", Status: model.StatusOnline}},
		},
		{
			name:   "Stale result is discarded",
			stored: []model.MonitoredEndpoint{{URL: testURL, Status: model.StatusOnline, LastChecked: ptr(now.Add(time.Second).UnixMilli())}},
			result: Result{URL: testURL, Outcome: model.Unreachable, CheckedAt: now},
			setupMocks: func(pub *mockpublisher.MockPublisher, n *mocknotifier.MockNotifier) {
			},
			expected:     Reconciliation{Stale: true},
			expectedList: []model.MonitoredEndpoint{{URL: testURL, Status: model.StatusOnline, LastChecked: ptr(now.Add(time.Second).UnixMilli())}},
		},
		{
			name:   "Notifier failure is swallowed",
			stored: []model.MonitoredEndpoint{{URL: testURL, Status: model.StatusOnline}},
			result: Result{URL: testURL, Outcome: model.Unreachable, CheckedAt: now},
			setupMocks: func(pub *mockpublisher.MockPublisher, n *mocknotifier.MockNotifier) {
				pub.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(errors.New("no listener"))
				n.EXPECT().AlertOffline(gomock.Any(), testURL).Return(errors.New("smtp down"))
			},
			expected:     Reconciliation{Applied: true, Previous: model.StatusOnline, Current: model.StatusOffline, Alerted: true},
			expectedList: []model.MonitoredEndpoint{{URL: testURL, Status: model.StatusOffline, LastChecked: ptr(now.UnixMilli())}},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			ctx := context.Background()
			repo := repository.NewEndpointRepository(store.NewStore(store.NewMemoryBackend(), nil, zap.NewNop()))
			require.NoError(t, repo.SaveEndpoints(ctx, tc.stored))
			pub := mockpublisher.NewMockPublisher(ctrl)
			n := mocknotifier.NewMockNotifier(ctrl)
			tc.setupMocks(pub, n)

			rec, err := NewReconciler(repo, pub, n, zap.NewNop()).Apply(ctx, tc.result)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, rec)

			endpoints, err := repo.GetEndpoints(ctx)
			require.NoError(t, err)
			assert.Equal(t, tc.expectedList, endpoints)
		})
	}
}

func TestReconciler_ApplyStoreError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := repository.NewEndpointRepository(store.NewStore(failingBackend{}, nil, zap.NewNop()))
	r := NewReconciler(repo, mockpublisher.NewMockPublisher(ctrl), mocknotifier.NewMockNotifier(ctrl), zap.NewNop())

	_, err := r.Apply(context.Background(), Result{URL: testURL, Outcome: model.Reachable, CheckedAt: time.Now()})
	assert.Error(t, err)
}

func TestReconciler_ApplyAlertsOncePerOutage(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	repo := repository.NewEndpointRepository(store.NewStore(store.NewMemoryBackend(), nil, zap.NewNop()))
	require.NoError(t, repo.SaveEndpoints(ctx, []model.MonitoredEndpoint{{URL: testURL, Status: model.StatusChecking}}))
	pub := mockpublisher.NewMockPublisher(ctrl)
	pub.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil).Times(5)
	n := mocknotifier.NewMockNotifier(ctrl)
	n.EXPECT().AlertOffline(gomock.Any(), testURL).Return(nil).Times(1)

	r := NewReconciler(repo, pub, n, zap.NewNop())
	start := time.Now()
	for i, outcome := range []model.Outcome{model.Reachable, model.Unreachable, model.Unreachable, model.Unreachable, model.Reachable} {
		_, err := r.Apply(ctx, Result{URL: testURL, Outcome: outcome, CheckedAt: start.Add(time.Duration(i) * time.Second)})
		require.NoError(t, err)
	}
}
