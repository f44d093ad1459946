package scheduler

import (
	"sort"
	"sync"
	"time"
)

// State is the scheduler's owned view of the monitor configuration: the current
// interval and the URLs it considers active. The store stays the durable copy.
type State struct {
	mu       sync.RWMutex
	interval time.Duration
	active   map[string]struct{}
}

type StateSnapshot struct {
	Interval   time.Duration
	ActiveURLs []string
}

func (s *State) Interval() time.Duration {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.interval
}

func (s *State) SetInterval(d time.Duration) {
	s.mu.Lock()
	s.interval = d
	s.mu.Unlock()
}

func (s *State) Activate(url string) {
	s.mu.Lock()
	s.active[url] = struct{}{}
	s.mu.Unlock()
}

func (s *State) Deactivate(url string) {
	s.mu.Lock()
	delete(s.active, url)
	s.mu.Unlock()
}

// Replace resets the active set to urls.
func (s *State) Replace(urls []string) {
	active := make(map[string]struct{}, len(urls))
	for _, u := range urls {
		active[u] = struct{}{}
	}
	s.mu.Lock()
	s.active = active
	s.mu.Unlock()
}

func (s *State) IsActive(url string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.active[url]
	return ok
}

func (s *State) Snapshot() StateSnapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	urls := make([]string, 0, len(s.active))
	for u := range s.active {
		urls = append(urls, u)
	}
	sort.Strings(urls)
	return StateSnapshot{Interval: s.interval, ActiveURLs: urls}
}

func NewState(interval time.Duration) *State {
	return &State{
		interval: interval,
		active:   make(map[string]struct{}),
	}
}
