package scheduler

import (
	"URL_Ping_Monitor/internal/ping-monitor/model"
	"URL_Ping_Monitor/internal/ping-monitor/prober"
	"URL_Ping_Monitor/internal/ping-monitor/reconciler"
	"URL_Ping_Monitor/internal/ping-monitor/repository"
	"URL_Ping_Monitor/internal/ping-monitor/store"
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// CheckJobName identifies the single recurring check. Re-arming always replaces the entry with this name.
const CheckJobName = "urlPingCheck"

type Scheduler interface {
	// Start loads the interval, arms the recurring check and, on first-ever activation,
	// runs a full check after the initial delay.
	Start(ctx context.Context) error
	Stop()
	// Reschedule re-arms the timer. A check already running is not interrupted.
	Reschedule(seconds int)
	OnURLAdded(url string)
	OnURLRemoved(url string)
	// OnTick probes every stored URL concurrently and returns when all results are reconciled.
	OnTick(ctx context.Context)
	// OnStorageChange re-arms the timer when the stored interval changes elsewhere.
	OnStorageChange(event store.ChangeEvent)
	Snapshot() StateSnapshot
}

type Config struct {
	DefaultInterval   time.Duration
	InitialCheckDelay time.Duration
	// TickTimeout bounds one full check. It must cover a probe plus its retry.
	TickTimeout time.Duration
}

type scheduler struct {
	cfg          Config
	state        *State
	cron         *cron.Cron
	entries      map[string]cron.EntryID
	entriesMu    sync.Mutex
	endpointRepo repository.EndpointRepository
	settingsRepo repository.SettingsRepository
	prober       prober.Prober
	reconciler   reconciler.Reconciler
	logger       *zap.Logger

	baseCtx      context.Context
	cancel       context.CancelFunc
	initialCheck *time.Timer
	wg           sync.WaitGroup
}

func (s *scheduler) Start(ctx context.Context) error {
	cfg, err := s.settingsRepo.GetMonitorConfig(ctx)
	if err != nil {
		return fmt.Errorf("scheduler.Start: %w", err)
	}
	endpoints, err := s.endpointRepo.GetEndpoints(ctx)
	if err != nil {
		return fmt.Errorf("scheduler.Start: %w", err)
	}
	urls := make([]string, 0, len(endpoints))
	for _, e := range endpoints {
		urls = append(urls, e.URL)
	}
	s.state.Replace(urls)

	s.arm(time.Duration(cfg.PingIntervalSeconds) * time.Second)
	s.cron.Start()
	s.logger.Info("scheduler started",
		zap.Duration("interval", s.state.Interval()),
		zap.Int("urls", len(urls)),
	)

	first, err := s.settingsRepo.MarkInstalled(ctx, time.Now())
	if err != nil {
		s.logger.Warn("failed to record first activation", zap.Error(fmt.Errorf("scheduler.Start: %w", err)))
		return nil
	}
	if first {
		s.logger.Info("first activation, scheduling initial check", zap.Duration("delay", s.cfg.InitialCheckDelay))
		s.wg.Add(1)
		s.initialCheck = time.AfterFunc(s.cfg.InitialCheckDelay, func() {
			defer s.wg.Done()
			s.runTick()
		})
	}
	return nil
}

// Stop cancels in-flight checks and waits for them to return.
func (s *scheduler) Stop() {
	if s.initialCheck != nil && s.initialCheck.Stop() {
		s.wg.Done()
	}
	s.cancel()
	<-s.cron.Stop().Done()
	s.wg.Wait()
}

func (s *scheduler) Reschedule(seconds int) {
	d := time.Duration(seconds) * time.Second
	if !s.arm(d) {
		s.logger.Debug("interval unchanged, keeping current timer", zap.Duration("interval", s.state.Interval()))
		return
	}
	s.logger.Info("check rescheduled", zap.Duration("interval", s.state.Interval()))
}

// arm removes any entry registered under CheckJobName before adding the new one.
// An armed entry with the same interval is kept and arm reports false.
func (s *scheduler) arm(d time.Duration) bool {
	if d <= 0 {
		s.logger.Warn("non positive interval, using default", zap.Duration("interval", d), zap.Duration("default", s.cfg.DefaultInterval))
		d = s.cfg.DefaultInterval
	}
	s.entriesMu.Lock()
	defer s.entriesMu.Unlock()
	if id, ok := s.entries[CheckJobName]; ok {
		if d == s.state.Interval() {
			return false
		}
		s.cron.Remove(id)
		delete(s.entries, CheckJobName)
	}
	s.state.SetInterval(d)
	s.entries[CheckJobName] = s.cron.Schedule(cron.Every(d), cron.FuncJob(s.runTick))
	return true
}

func (s *scheduler) runTick() {
	ctx, cancel := context.WithTimeout(s.baseCtx, s.cfg.TickTimeout)
	defer cancel()
	s.OnTick(ctx)
}

func (s *scheduler) OnTick(ctx context.Context) {
	endpoints, err := s.endpointRepo.GetEndpoints(ctx)
	if err != nil {
		s.logger.Error("failed to fetch urls", zap.Error(fmt.Errorf("scheduler.OnTick: %w", err)))
		return
	}
	urls := make([]string, 0, len(endpoints))
	for _, e := range endpoints {
		urls = append(urls, e.URL)
	}
	s.state.Replace(urls)
	if len(urls) == 0 {
		return
	}
	start := time.Now()
	var wg sync.WaitGroup
	for _, u := range urls {
		wg.Add(1)
		go func(url string) {
			defer wg.Done()
			s.check(ctx, url)
		}(u)
	}
	wg.Wait()
	s.logger.Debug("tick completed", zap.Int("urls", len(urls)), zap.Duration("elapsed", time.Since(start)))
}

func (s *scheduler) check(ctx context.Context, url string) {
	outcome := s.prober.Probe(ctx, url)
	// a cancelled probe is no reading at all
	if ctx.Err() != nil {
		s.logger.Debug("check aborted, discarding result", zap.String("url", url), zap.Error(ctx.Err()))
		return
	}
	_, err := s.reconciler.Apply(ctx, reconciler.Result{
		URL:       url,
		Outcome:   outcome,
		CheckedAt: time.Now(),
	})
	if err != nil {
		s.logger.Error("failed to reconcile probe result", zap.Error(fmt.Errorf("scheduler.check: %w", err)), zap.String("url", url), zap.Stringer("outcome", outcome))
	}
}

func (s *scheduler) OnURLAdded(url string) {
	s.state.Activate(url)
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		ctx, cancel := context.WithTimeout(s.baseCtx, s.cfg.TickTimeout)
		defer cancel()
		s.check(ctx, url)
	}()
}

func (s *scheduler) OnURLRemoved(url string) {
	s.state.Deactivate(url)
}

func (s *scheduler) OnStorageChange(event store.ChangeEvent) {
	change, ok := event.Changes[model.KeyPingInterval]
	if !ok {
		return
	}
	values := store.Values{model.KeyPingInterval: change.NewValue}
	var seconds int
	if found, err := values.Decode(model.KeyPingInterval, &seconds); err != nil || !found {
		return
	}
	if time.Duration(seconds)*time.Second == s.state.Interval() {
		return
	}
	s.Reschedule(seconds)
}

func (s *scheduler) Snapshot() StateSnapshot {
	return s.state.Snapshot()
}

func NewScheduler(cfg Config, endpointRepo repository.EndpointRepository, settingsRepo repository.SettingsRepository, p prober.Prober, r reconciler.Reconciler, logger *zap.Logger) Scheduler {
	if cfg.DefaultInterval <= 0 {
		cfg.DefaultInterval = model.DefaultPingIntervalSeconds * time.Second
	}
	if cfg.TickTimeout <= 0 {
		cfg.TickTimeout = time.Minute
	}
	ctx, cancel := context.WithCancel(context.Background())
	return &scheduler{
		cfg:          cfg,
		state:        NewState(cfg.DefaultInterval),
		cron:         cron.New(),
		entries:      make(map[string]cron.EntryID),
		endpointRepo: endpointRepo,
		settingsRepo: settingsRepo,
		prober:       p,
		reconciler:   r,
		logger:       logger,
		baseCtx:      ctx,
		cancel:       cancel,
	}
}
