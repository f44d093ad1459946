package repository

import (
	apperrors "URL_Ping_Monitor/internal/ping-monitor/errors"
	"URL_Ping_Monitor/internal/ping-monitor/model"
	"URL_Ping_Monitor/internal/ping-monitor/store"
	"context"
	"errors"
	"fmt"
	"sync"
)

type EndpointRepository interface {
	GetEndpoints(ctx context.Context) ([]model.MonitoredEndpoint, error)
	SaveEndpoints(ctx context.Context, endpoints []model.MonitoredEndpoint) error
	// ModifyEndpoints reads the full list, applies fn and writes the full list back in one Set.
	// Callers in this process are serialized; writers in other processes can still race.
	// fn returns apperrors.ErrNoChange to skip the write.
	ModifyEndpoints(ctx context.Context, fn func(endpoints []model.MonitoredEndpoint) ([]model.MonitoredEndpoint, error)) error
}

type endpointRepository struct {
	store store.Store
	mu    sync.Mutex
}

func (r *endpointRepository) GetEndpoints(ctx context.Context) ([]model.MonitoredEndpoint, error) {
	values, err := r.store.Get(ctx, model.KeyURLs)
	if err != nil {
		return nil, fmt.Errorf("endpointRepository.GetEndpoints: %w", err)
	}
	var endpoints []model.MonitoredEndpoint
	if _, err = values.Decode(model.KeyURLs, &endpoints); err != nil {
		return nil, fmt.Errorf("endpointRepository.GetEndpoints: %w", err)
	}
	for i := range endpoints {
		endpoints[i].Status = endpoints[i].Status.Normalize()
	}
	if endpoints == nil {
		endpoints = []model.MonitoredEndpoint{}
	}
	return endpoints, nil
}

func (r *endpointRepository) SaveEndpoints(ctx context.Context, endpoints []model.MonitoredEndpoint) error {
	if endpoints == nil {
		endpoints = []model.MonitoredEndpoint{}
	}
	if err := r.store.Set(ctx, map[string]any{model.KeyURLs: endpoints}); err != nil {
		return fmt.Errorf("endpointRepository.SaveEndpoints: %w", err)
	}
	return nil
}

func (r *endpointRepository) ModifyEndpoints(ctx context.Context, fn func(endpoints []model.MonitoredEndpoint) ([]model.MonitoredEndpoint, error)) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	endpoints, err := r.GetEndpoints(ctx)
	if err != nil {
		return fmt.Errorf("endpointRepository.ModifyEndpoints: %w", err)
	}
	updated, err := fn(endpoints)
	if err != nil {
		if errors.Is(err, apperrors.ErrNoChange) {
			return nil
		}
		return fmt.Errorf("endpointRepository.ModifyEndpoints: %w", err)
	}
	if err = r.SaveEndpoints(ctx, updated); err != nil {
		return fmt.Errorf("endpointRepository.ModifyEndpoints: %w", err)
	}
	return nil
}

func NewEndpointRepository(s store.Store) EndpointRepository {
	return &endpointRepository{
		store: s,
	}
}
