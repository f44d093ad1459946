package store

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type failingBackend struct {
	loadErr error
	saveErr error
}

func (f *failingBackend) Load(context.Context, []string) (map[string][]byte, error) {
	return map[string][]byte{}, f.loadErr
}

func (f *failingBackend) Save(context.Context, map[string][]byte) error {
	return f.saveErr
}

func (f *failingBackend) Close() error {
	return nil
}

type recordingBus struct {
	mu        sync.Mutex
	published []ChangeEvent
	incoming  []ChangeEvent
}

func (r *recordingBus) Publish(_ context.Context, event ChangeEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.published = append(r.published, event)
	return nil
}

func (r *recordingBus) Subscribe(_ context.Context, handler func(ChangeEvent)) error {
	for _, e := range r.incoming {
		handler(e)
	}
	return nil
}

func TestDocumentStore_SetAndGet(t *testing.T) {
	s := NewStore(NewMemoryBackend(), nil, zap.NewNop())
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, map[string]any{"pingInterval": 30, "hideLauncher": true}))

	values, err := s.Get(ctx, "pingInterval", "hideLauncher", "urls")
	require.NoError(t, err)

	var interval int
	found, err := values.Decode("pingInterval", &interval)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, 30, interval)

	var urls []string
	found, err = values.Decode("urls", &urls)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestDocumentStore_SetMergesIntoDocument(t *testing.T) {
	s := NewStore(NewMemoryBackend(), nil, zap.NewNop())
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, map[string]any{"pingInterval": 30}))
	require.NoError(t, s.Set(ctx, map[string]any{"hideLauncher": false}))

	values, err := s.Get(ctx, "pingInterval", "hideLauncher")
	require.NoError(t, err)
	assert.Len(t, values, 2)
}

func TestDocumentStore_Subscribe(t *testing.T) {
	bus := &recordingBus{}
	s := NewStore(NewMemoryBackend(), bus, zap.NewNop())
	ctx := context.Background()

	var events []ChangeEvent
	unsubscribe := s.Subscribe(func(e ChangeEvent) {
		events = append(events, e)
	})

	require.NoError(t, s.Set(ctx, map[string]any{"pingInterval": 30}))
	require.NoError(t, s.Set(ctx, map[string]any{"pingInterval": 30}))
	require.NoError(t, s.Set(ctx, map[string]any{"pingInterval": 10}))

	require.Len(t, events, 2)
	assert.Equal(t, []string{"pingInterval"}, events[0].ChangedKeys())
	assert.Nil(t, events[0].Changes["pingInterval"].OldValue)
	assert.JSONEq(t, "30", string(events[0].Changes["pingInterval"].NewValue))
	assert.JSONEq(t, "30", string(events[1].Changes["pingInterval"].OldValue))
	assert.JSONEq(t, "10", string(events[1].Changes["pingInterval"].NewValue))
	assert.Len(t, bus.published, 2)

	unsubscribe()
	unsubscribe()
	require.NoError(t, s.Set(ctx, map[string]any{"pingInterval": 15}))
	assert.Len(t, events, 2)
}

func TestDocumentStore_ListenSkipsOwnEvents(t *testing.T) {
	bus := &recordingBus{}
	s := NewStore(NewMemoryBackend(), bus, zap.NewNop())
	own := s.(*documentStore).origin
	bus.incoming = []ChangeEvent{
		{Origin: own, Changes: map[string]Change{"urls": {NewValue: json.RawMessage(`[]`)}}},
		{Origin: "other-process", Changes: map[string]Change{"urls": {NewValue: json.RawMessage(`[]`)}}},
	}

	var received []ChangeEvent
	s.Subscribe(func(e ChangeEvent) {
		received = append(received, e)
	})

	require.NoError(t, s.Listen(context.Background()))
	require.Len(t, received, 1)
	assert.Equal(t, "other-process", received[0].Origin)
	assert.True(t, received[0].Has("urls"))
}

func TestDocumentStore_BackendErrors(t *testing.T) {
	testCases := []struct {
		name    string
		backend *failingBackend
	}{
		{name: "Load fails", backend: &failingBackend{loadErr: errors.New("disk gone")}},
		{name: "Save fails", backend: &failingBackend{saveErr: errors.New("disk full")}},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			s := NewStore(tc.backend, nil, zap.NewNop())
			notified := false
			s.Subscribe(func(ChangeEvent) { notified = true })

			err := s.Set(context.Background(), map[string]any{"pingInterval": 30})
			assert.Error(t, err)
			assert.False(t, notified)
		})
	}
}

func TestValues_DecodeInvalidJSON(t *testing.T) {
	values := Values{"pingInterval": json.RawMessage(`"thirty"`)}
	var interval int
	found, err := values.Decode("pingInterval", &interval)
	assert.True(t, found)
	assert.Error(t, err)
}
