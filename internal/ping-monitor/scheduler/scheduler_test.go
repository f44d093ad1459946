package scheduler

import (
	mockprober "URL_Ping_Monitor/internal/ping-monitor/mocks/prober"
	mockreconciler "URL_Ping_Monitor/internal/ping-monitor/mocks/reconciler"
	mockrepository "URL_Ping_Monitor/internal/ping-monitor/mocks/repository"
	"URL_Ping_Monitor/internal/ping-monitor/model"
	"URL_Ping_Monitor/internal/ping-monitor/reconciler"
	"URL_Ping_Monitor/internal/ping-monitor/repository"
	"URL_Ping_Monitor/internal/ping-monitor/store"
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

var testConfig = Config{
	DefaultInterval:   30 * time.Second,
	InitialCheckDelay: 10 * time.Millisecond,
	TickTimeout:       5 * time.Second,
}

func newRepos(t *testing.T, urls ...string) (repository.EndpointRepository, repository.SettingsRepository) {
	t.Helper()
	s := store.NewStore(store.NewMemoryBackend(), nil, zap.NewNop())
	endpointRepo := repository.NewEndpointRepository(s)
	endpoints := make([]model.MonitoredEndpoint, 0, len(urls))
	for _, u := range urls {
		endpoints = append(endpoints, model.MonitoredEndpoint{URL: u, Status: model.StatusChecking})
	}
	require.NoError(t, endpointRepo.SaveEndpoints(context.Background(), endpoints))
	return endpointRepo, repository.NewSettingsRepository(s, 30)
}

func TestScheduler_OnTick(t *testing.T) {
	testCases := []struct {
		name       string
		urls       []string
		setupMocks func(p *mockprober.MockProber, r *mockreconciler.MockReconciler)
	}{
		{
			name:       "Success empty list dispatches nothing",
			urls:       nil,
			setupMocks: func(p *mockprober.MockProber, r *mockreconciler.MockReconciler) {},
		},
		{
			name: "Success one probe per url",
			urls: []string{"https://a.example", "https://b.example", "https://c.example"},
			setupMocks: func(p *mockprober.MockProber, r *mockreconciler.MockReconciler) {
				for _, u := range []string{"https://a.example", "https://b.example", "https://c.example"} {
					p.EXPECT().Probe(gomock.Any(), u).Return(model.Reachable).Times(1)
				}
				r.EXPECT().Apply(gomock.Any(), gomock.Any()).Return(reconciler.Reconciliation{Applied: true}, nil).Times(3)
			},
		},
		{
			name: "Reconcile failure does not stop other urls",
			urls: []string{"https://a.example", "https://b.example"},
			setupMocks: func(p *mockprober.MockProber, r *mockreconciler.MockReconciler) {
				p.EXPECT().Probe(gomock.Any(), gomock.Any()).Return(model.Unreachable).Times(2)
				r.EXPECT().Apply(gomock.Any(), gomock.Any()).Return(reconciler.Reconciliation{}, errors.New("disk full")).Times(2)
			},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			endpointRepo, settingsRepo := newRepos(t, tc.urls...)
			p := mockprober.NewMockProber(ctrl)
			r := mockreconciler.NewMockReconciler(ctrl)
			tc.setupMocks(p, r)

			s := NewScheduler(testConfig, endpointRepo, settingsRepo, p, r, zap.NewNop())
			s.OnTick(context.Background())
			assert.ElementsMatch(t, tc.urls, s.Snapshot().ActiveURLs)
		})
	}
}

func TestScheduler_OnTickStoreError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	endpointRepo := mockrepository.NewMockEndpointRepository(ctrl)
	endpointRepo.EXPECT().GetEndpoints(gomock.Any()).Return(nil, errors.New("db connection failed"))
	settingsRepo := mockrepository.NewMockSettingsRepository(ctrl)

	s := NewScheduler(testConfig, endpointRepo, settingsRepo, mockprober.NewMockProber(ctrl), mockreconciler.NewMockReconciler(ctrl), zap.NewNop())
	s.OnTick(context.Background())
}

func TestScheduler_OnTickProbesConcurrently(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	urls := []string{"https://a.example", "https://b.example", "https://c.example"}
	endpointRepo, settingsRepo := newRepos(t, urls...)

	var arrived sync.WaitGroup
	arrived.Add(len(urls))
	allArrived := make(chan struct{})
	go func() {
		arrived.Wait()
		close(allArrived)
	}()

	p := mockprober.NewMockProber(ctrl)
	p.EXPECT().Probe(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, _ string) model.Outcome {
		arrived.Done()
		select {
		case <-allArrived:
			return model.Reachable
		case <-time.After(2 * time.Second):
			return model.Unreachable
		}
	}).Times(len(urls))

	var mu sync.Mutex
	var outcomes []model.Outcome
	r := mockreconciler.NewMockReconciler(ctrl)
	r.EXPECT().Apply(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, result reconciler.Result) (reconciler.Reconciliation, error) {
		mu.Lock()
		outcomes = append(outcomes, result.Outcome)
		mu.Unlock()
		return reconciler.Reconciliation{Applied: true}, nil
	}).Times(len(urls))

	s := NewScheduler(testConfig, endpointRepo, settingsRepo, p, r, zap.NewNop())
	s.OnTick(context.Background())

	assert.Equal(t, []model.Outcome{model.Reachable, model.Reachable, model.Reachable}, outcomes)
}

func TestScheduler_Reschedule(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	endpointRepo, settingsRepo := newRepos(t)
	s := NewScheduler(testConfig, endpointRepo, settingsRepo, mockprober.NewMockProber(ctrl), mockreconciler.NewMockReconciler(ctrl), zap.NewNop())
	impl := s.(*scheduler)

	s.Reschedule(30)
	s.Reschedule(10)
	assert.Len(t, impl.cron.Entries(), 1)
	assert.Equal(t, 10*time.Second, s.Snapshot().Interval)

	armed := impl.entries[CheckJobName]
	s.Reschedule(10)
	assert.Equal(t, armed, impl.entries[CheckJobName])

	s.Reschedule(0)
	assert.Len(t, impl.cron.Entries(), 1)
	assert.Equal(t, 30*time.Second, s.Snapshot().Interval)
	assert.NotEqual(t, armed, impl.entries[CheckJobName])
	s.Stop()
}

func TestScheduler_RescheduleDuringTick(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	urls := []string{"https://a.example", "https://b.example"}
	endpointRepo, settingsRepo := newRepos(t, urls...)

	var started sync.WaitGroup
	started.Add(len(urls))
	release := make(chan struct{})
	p := mockprober.NewMockProber(ctrl)
	p.EXPECT().Probe(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, _ string) model.Outcome {
		started.Done()
		<-release
		return model.Reachable
	}).Times(len(urls))

	var mu sync.Mutex
	var applied []string
	r := mockreconciler.NewMockReconciler(ctrl)
	r.EXPECT().Apply(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, result reconciler.Result) (reconciler.Reconciliation, error) {
		mu.Lock()
		applied = append(applied, result.URL)
		mu.Unlock()
		return reconciler.Reconciliation{Applied: true}, nil
	}).Times(len(urls))

	s := NewScheduler(testConfig, endpointRepo, settingsRepo, p, r, zap.NewNop())
	impl := s.(*scheduler)
	s.Reschedule(30)

	tickDone := make(chan struct{})
	go func() {
		defer close(tickDone)
		s.OnTick(context.Background())
	}()
	started.Wait()

	s.Reschedule(10)
	close(release)
	select {
	case <-tickDone:
	case <-time.After(2 * time.Second):
		t.Fatal("tick did not complete after reschedule")
	}

	assert.ElementsMatch(t, urls, applied)
	assert.Len(t, impl.cron.Entries(), 1)
	assert.Equal(t, cron.Every(10*time.Second), impl.cron.Entry(impl.entries[CheckJobName]).Schedule)
	assert.Equal(t, 10*time.Second, s.Snapshot().Interval)
	s.Stop()
}

func TestScheduler_CancelledCheckIsDiscarded(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	endpointRepo, settingsRepo := newRepos(t, "https://example.com")
	ctx, cancel := context.WithCancel(context.Background())
	p := mockprober.NewMockProber(ctrl)
	p.EXPECT().Probe(gomock.Any(), "https://example.com").DoAndReturn(func(context.Context, string) model.Outcome {
		cancel()
		return model.Unreachable
	})
	r := mockreconciler.NewMockReconciler(ctrl)
	r.EXPECT().Apply(gomock.Any(), gomock.Any()).Times(0)

	s := NewScheduler(testConfig, endpointRepo, settingsRepo, p, r, zap.NewNop())
	s.OnTick(ctx)
}

func TestScheduler_OnURLAddedProbesImmediately(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	endpointRepo, settingsRepo := newRepos(t, "https://example.com")
	p := mockprober.NewMockProber(ctrl)
	p.EXPECT().Probe(gomock.Any(), "https://example.com").Return(model.Reachable)
	r := mockreconciler.NewMockReconciler(ctrl)
	r.EXPECT().Apply(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, result reconciler.Result) (reconciler.Reconciliation, error) {
		assert.Equal(t, "https://example.com", result.URL)
		assert.Equal(t, model.Reachable, result.Outcome)
		return reconciler.Reconciliation{Applied: true}, nil
	})

	s := NewScheduler(testConfig, endpointRepo, settingsRepo, p, r, zap.NewNop())
	s.OnURLAdded("https://example.com")
	s.Stop()
	assert.Equal(t, []string{"https://example.com"}, s.Snapshot().ActiveURLs)

	s.OnURLRemoved("https://example.com")
	assert.Empty(t, s.Snapshot().ActiveURLs)
}

func TestScheduler_StartRunsInitialCheckOnce(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	endpointRepo, settingsRepo := newRepos(t, "https://example.com")
	done := make(chan struct{})
	p := mockprober.NewMockProber(ctrl)
	p.EXPECT().Probe(gomock.Any(), "https://example.com").Return(model.Unreachable).Times(1)
	r := mockreconciler.NewMockReconciler(ctrl)
	r.EXPECT().Apply(gomock.Any(), gomock.Any()).DoAndReturn(func(context.Context, reconciler.Result) (reconciler.Reconciliation, error) {
		close(done)
		return reconciler.Reconciliation{Applied: true}, nil
	}).Times(1)

	first := NewScheduler(testConfig, endpointRepo, settingsRepo, p, r, zap.NewNop())
	require.NoError(t, first.Start(context.Background()))
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("initial check did not run")
	}
	first.Stop()
	assert.Equal(t, 30*time.Second, first.Snapshot().Interval)

	second := NewScheduler(testConfig, endpointRepo, settingsRepo, p, r, zap.NewNop())
	require.NoError(t, second.Start(context.Background()))
	time.Sleep(50 * time.Millisecond)
	second.Stop()
}

func TestScheduler_StartUsesStoredInterval(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	endpointRepo, settingsRepo := newRepos(t)
	ctx := context.Background()
	require.NoError(t, settingsRepo.SetPingInterval(ctx, 10))
	_, err := settingsRepo.MarkInstalled(ctx, time.Now())
	require.NoError(t, err)

	s := NewScheduler(testConfig, endpointRepo, settingsRepo, mockprober.NewMockProber(ctrl), mockreconciler.NewMockReconciler(ctrl), zap.NewNop())
	require.NoError(t, s.Start(ctx))
	defer s.Stop()
	assert.Equal(t, 10*time.Second, s.Snapshot().Interval)
}

func TestScheduler_StartStoreError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	settingsRepo := mockrepository.NewMockSettingsRepository(ctrl)
	settingsRepo.EXPECT().GetMonitorConfig(gomock.Any()).Return(model.MonitorConfig{}, errors.New("db connection failed"))

	s := NewScheduler(testConfig, mockrepository.NewMockEndpointRepository(ctrl), settingsRepo, mockprober.NewMockProber(ctrl), mockreconciler.NewMockReconciler(ctrl), zap.NewNop())
	assert.Error(t, s.Start(context.Background()))
}

func TestScheduler_OnStorageChange(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	endpointRepo, settingsRepo := newRepos(t)
	s := NewScheduler(testConfig, endpointRepo, settingsRepo, mockprober.NewMockProber(ctrl), mockreconciler.NewMockReconciler(ctrl), zap.NewNop())
	defer s.Stop()

	s.OnStorageChange(store.ChangeEvent{Changes: map[string]store.Change{
		model.KeyHideLauncher: {NewValue: json.RawMessage("true")},
	}})
	assert.Equal(t, 30*time.Second, s.Snapshot().Interval)

	s.OnStorageChange(store.ChangeEvent{Changes: map[string]store.Change{
		model.KeyPingInterval: {OldValue: json.RawMessage("30"), NewValue: json.RawMessage("15")},
	}})
	assert.Equal(t, 15*time.Second, s.Snapshot().Interval)
}
