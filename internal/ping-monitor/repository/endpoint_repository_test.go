package repository

import (
	apperrors "URL_Ping_Monitor/internal/ping-monitor/errors"
	"URL_Ping_Monitor/internal/ping-monitor/model"
	"URL_Ping_Monitor/internal/ping-monitor/store"
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestStore() store.Store {
	return store.NewStore(store.NewMemoryBackend(), nil, zap.NewNop())
}

func TestEndpointRepository_GetEndpoints(t *testing.T) {
	ctx := context.Background()

	t.Run("empty document returns empty list", func(t *testing.T) {
		repo := NewEndpointRepository(newTestStore())
		endpoints, err := repo.GetEndpoints(ctx)
		require.NoError(t, err)
		assert.NotNil(t, endpoints)
		assert.Empty(t, endpoints)
	})

	t.Run("unknown status reads as checking", func(t *testing.T) {
		s := newTestStore()
		require.NoError(t, s.Set(ctx, map[string]any{
			model.KeyURLs: []map[string]any{{"url": "https://example.com", "status": "weird"}, {"url": "https://b.example"}},
		}))
		repo := NewEndpointRepository(s)
		endpoints, err := repo.GetEndpoints(ctx)
		require.NoError(t, err)
		require.Len(t, endpoints, 2)
		assert.Equal(t, model.StatusChecking, endpoints[0].Status)
		assert.Equal(t, model.StatusChecking, endpoints[1].Status)
		assert.Nil(t, endpoints[0].Alias)
		assert.Nil(t, endpoints[0].LastChecked)
	})
}

func TestEndpointRepository_ModifyEndpoints(t *testing.T) {
	ctx := context.Background()
	testCases := []struct {
		name          string
		fn            func(endpoints []model.MonitoredEndpoint) ([]model.MonitoredEndpoint, error)
		expectErr     bool
		expectedCount int
	}{
		{
			name: "Success append",
			fn: func(endpoints []model.MonitoredEndpoint) ([]model.MonitoredEndpoint, error) {
				return append(endpoints, model.MonitoredEndpoint{URL: "https://new.example", Status: model.StatusChecking}), nil
			},
			expectedCount: 2,
		},
		{
			name: "No change skips write",
			fn: func(endpoints []model.MonitoredEndpoint) ([]model.MonitoredEndpoint, error) {
				return nil, apperrors.ErrNoChange
			},
			expectedCount: 1,
		},
		{
			name: "Mutation error is returned",
			fn: func(endpoints []model.MonitoredEndpoint) ([]model.MonitoredEndpoint, error) {
				return nil, errors.New("boom")
			},
			expectErr:     true,
			expectedCount: 1,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo := NewEndpointRepository(newTestStore())
			require.NoError(t, repo.SaveEndpoints(ctx, []model.MonitoredEndpoint{{URL: "https://example.com", Status: model.StatusOnline}}))

			err := repo.ModifyEndpoints(ctx, tc.fn)
			if tc.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			endpoints, err := repo.GetEndpoints(ctx)
			require.NoError(t, err)
			assert.Len(t, endpoints, tc.expectedCount)
		})
	}
}

func TestEndpointRepository_ModifyEndpointsSerializesWriters(t *testing.T) {
	ctx := context.Background()
	repo := NewEndpointRepository(newTestStore())

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_ = repo.ModifyEndpoints(ctx, func(endpoints []model.MonitoredEndpoint) ([]model.MonitoredEndpoint, error) {
				return append(endpoints, model.MonitoredEndpoint{URL: "https://example.com/" + string(rune('a'+i))}), nil
			})
		}(i)
	}
	wg.Wait()

	endpoints, err := repo.GetEndpoints(ctx)
	require.NoError(t, err)
	assert.Len(t, endpoints, 20)
}
