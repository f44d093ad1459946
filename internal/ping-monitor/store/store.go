package store

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Backend persists raw JSON values by key. Missing keys are absent from the Load result.
type Backend interface {
	Load(ctx context.Context, keys []string) (map[string][]byte, error)
	Save(ctx context.Context, values map[string][]byte) error
	Close() error
}

type Change struct {
	OldValue json.RawMessage `json:"oldValue,omitempty"`
	NewValue json.RawMessage `json:"newValue,omitempty"`
}

// ChangeEvent is delivered to subscribers after a Set changed at least one key.
type ChangeEvent struct {
	Origin  string            `json:"origin"`
	Changes map[string]Change `json:"changes"`
}

func (e ChangeEvent) ChangedKeys() []string {
	keys := make([]string, 0, len(e.Changes))
	for k := range e.Changes {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func (e ChangeEvent) Has(key string) bool {
	_, ok := e.Changes[key]
	return ok
}

type Listener func(event ChangeEvent)

// EventBus carries change events between processes sharing one backend.
type EventBus interface {
	Publish(ctx context.Context, event ChangeEvent) error
	Subscribe(ctx context.Context, handler func(ChangeEvent)) error
}

type Values map[string]json.RawMessage

// Decode unmarshals the value stored under key into dst and reports whether the key was present.
func (v Values) Decode(key string, dst any) (bool, error) {
	raw, ok := v[key]
	if !ok || len(raw) == 0 || string(raw) == "null" {
		return false, nil
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return true, fmt.Errorf("Values.Decode %s: %w", key, err)
	}
	return true, nil
}

type Store interface {
	Get(ctx context.Context, keys ...string) (Values, error)
	// Set merges values into the stored document.
	Set(ctx context.Context, values map[string]any) error
	Subscribe(listener Listener) (unsubscribe func())
	// Listen relays change events written by other processes until ctx is done.
	Listen(ctx context.Context) error
	Close() error
}

type documentStore struct {
	backend Backend
	bus     EventBus
	origin  string
	logger  *zap.Logger

	writeMu sync.Mutex

	listenersMu sync.RWMutex
	listeners   map[int]Listener
	nextID      int
}

func (s *documentStore) Get(ctx context.Context, keys ...string) (Values, error) {
	raw, err := s.backend.Load(ctx, keys)
	if err != nil {
		return nil, fmt.Errorf("documentStore.Get: %w", err)
	}
	values := make(Values, len(raw))
	for k, v := range raw {
		values[k] = v
	}
	return values, nil
}

func (s *documentStore) Set(ctx context.Context, values map[string]any) error {
	if len(values) == 0 {
		return nil
	}
	encoded := make(map[string][]byte, len(values))
	keys := make([]string, 0, len(values))
	for k, v := range values {
		b, err := json.Marshal(v)
		if err != nil {
			return fmt.Errorf("documentStore.Set %s: %w", k, err)
		}
		encoded[k] = b
		keys = append(keys, k)
	}

	s.writeMu.Lock()
	old, err := s.backend.Load(ctx, keys)
	if err != nil {
		s.writeMu.Unlock()
		return fmt.Errorf("documentStore.Set: %w", err)
	}
	if err = s.backend.Save(ctx, encoded); err != nil {
		s.writeMu.Unlock()
		return fmt.Errorf("documentStore.Set: %w", err)
	}
	s.writeMu.Unlock()

	changes := make(map[string]Change)
	for k, v := range encoded {
		if prev, ok := old[k]; ok && bytes.Equal(prev, v) {
			continue
		}
		changes[k] = Change{OldValue: old[k], NewValue: v}
	}
	if len(changes) == 0 {
		return nil
	}
	event := ChangeEvent{Origin: s.origin, Changes: changes}
	s.notify(event)
	if s.bus != nil {
		if e := s.bus.Publish(ctx, event); e != nil {
			s.logger.Warn("failed to publish storage change event", zap.Error(fmt.Errorf("documentStore.Set: %w", e)), zap.Strings("keys", event.ChangedKeys()))
		}
	}
	return nil
}

func (s *documentStore) Subscribe(listener Listener) func() {
	s.listenersMu.Lock()
	id := s.nextID
	s.nextID++
	s.listeners[id] = listener
	s.listenersMu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			s.listenersMu.Lock()
			delete(s.listeners, id)
			s.listenersMu.Unlock()
		})
	}
}

func (s *documentStore) Listen(ctx context.Context) error {
	if s.bus == nil {
		return nil
	}
	err := s.bus.Subscribe(ctx, func(event ChangeEvent) {
		if event.Origin == s.origin {
			return
		}
		s.notify(event)
	})
	if err != nil {
		return fmt.Errorf("documentStore.Listen: %w", err)
	}
	return nil
}

func (s *documentStore) Close() error {
	return s.backend.Close()
}

func (s *documentStore) notify(event ChangeEvent) {
	s.listenersMu.RLock()
	defer s.listenersMu.RUnlock()
	for _, l := range s.listeners {
		l(event)
	}
}

// NewStore builds the persistent store. bus may be nil when change events stay in-process.
func NewStore(backend Backend, bus EventBus, logger *zap.Logger) Store {
	return &documentStore{
		backend:   backend,
		bus:       bus,
		origin:    uuid.NewString(),
		logger:    logger,
		listeners: make(map[int]Listener),
	}
}
