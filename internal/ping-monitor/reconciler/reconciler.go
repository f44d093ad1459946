package reconciler

import (
	apperrors "URL_Ping_Monitor/internal/ping-monitor/errors"
	"URL_Ping_Monitor/internal/ping-monitor/model"
	"URL_Ping_Monitor/internal/ping-monitor/notifier"
	"URL_Ping_Monitor/internal/ping-monitor/publisher"
	"URL_Ping_Monitor/internal/ping-monitor/repository"
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
)

// Result is one completed probe, stamped when the probe finished.
type Result struct {
	URL       string
	Outcome   model.Outcome
	CheckedAt time.Time
}

type Reconciliation struct {
	// Applied is false when the URL was no longer monitored or the result was stale.
	Applied  bool
	Stale    bool
	Previous model.EndpointStatus
	Current  model.EndpointStatus
	Alerted  bool
}

type Reconciler interface {
	Apply(ctx context.Context, result Result) (Reconciliation, error)
}

type reconciler struct {
	endpointRepo repository.EndpointRepository
	publisher    publisher.Publisher
	notifier     notifier.Notifier
	logger       *zap.Logger
}

func (r *reconciler) Apply(ctx context.Context, result Result) (Reconciliation, error) {
	var rec Reconciliation
	checkedAt := result.CheckedAt.UnixMilli()
	err := r.endpointRepo.ModifyEndpoints(ctx, func(endpoints []model.MonitoredEndpoint) ([]model.MonitoredEndpoint, error) {
		idx := -1
		for i := range endpoints {
			if endpoints[i].URL == result.URL {
				idx = i
				break
			}
		}
		if idx == -1 {
			return nil, apperrors.ErrNoChange
		}
		entry := &endpoints[idx]
		if entry.LastChecked != nil && *entry.LastChecked > checkedAt {
			rec.Stale = true
			return nil, apperrors.ErrNoChange
		}
		rec.Previous = entry.Status
		rec.Current = result.Outcome.Status()
		entry.Status = rec.Current
		entry.LastChecked = &checkedAt
		rec.Applied = true
		return endpoints, nil
	})
	if err != nil {
		return Reconciliation{}, fmt.Errorf("reconciler.Apply: %w", err)
	}
	if !rec.Applied {
		if rec.Stale {
			r.logger.Debug("discarding stale probe result", zap.String("url", result.URL))
		} else {
			r.logger.Debug("discarding probe result for url no longer monitored", zap.String("url", result.URL))
		}
		return rec, nil
	}

	if e := r.publisher.Publish(ctx, model.NewStatusUpdate(result.URL, rec.Current)); e != nil {
		r.logger.Warn("failed to publish status update", zap.Error(fmt.Errorf("reconciler.Apply: %w", e)), zap.String("url", result.URL))
	}

	if rec.Previous == model.StatusOnline && rec.Current == model.StatusOffline {
		rec.Alerted = true
		if e := r.notifier.AlertOffline(ctx, result.URL); e != nil {
			r.logger.Error("failed to raise offline alert", zap.Error(fmt.Errorf("reconciler.Apply: %w", e)), zap.String("url", result.URL))
		}
	}
	return rec, nil
}

func NewReconciler(endpointRepo repository.EndpointRepository, pub publisher.Publisher, n notifier.Notifier, logger *zap.Logger) Reconciler {
	return &reconciler{
		endpointRepo: endpointRepo,
		publisher:    pub,
		notifier:     n,
		logger:       logger,
	}
}
