package control

import (
	"URL_Ping_Monitor/internal/ping-monitor/model"
	"context"
	"net/url"

	"go.uber.org/zap"
)

const (
	ActionUpdateInterval  = "updateInterval"
	ActionStartMonitoring = "startMonitoring"
	ActionStopMonitoring  = "stopMonitoring"
)

type Request struct {
	Action   string `json:"action"`
	Interval int    `json:"interval,omitempty"`
	URL      string `json:"url,omitempty"`
}

// Response is the single acknowledgement sent for every Request.
type Response struct {
	Success bool   `json:"success"`
	Ignored bool   `json:"ignored,omitempty"`
	Error   string `json:"error,omitempty"`
}

// MonitorScheduler is the part of the scheduler the control channel drives.
type MonitorScheduler interface {
	Reschedule(seconds int)
	OnURLAdded(url string)
	OnURLRemoved(url string)
}

type Dispatcher interface {
	Dispatch(ctx context.Context, req Request) Response
}

type dispatcher struct {
	scheduler MonitorScheduler
	logger    *zap.Logger
}

func (d *dispatcher) Dispatch(_ context.Context, req Request) Response {
	switch req.Action {
	case ActionUpdateInterval:
		if req.Interval <= 0 {
			return Response{Error: "interval must be a positive number of seconds"}
		}
		if req.Interval < model.MinPingIntervalSeconds {
			d.logger.Warn("interval below the recommended minimum", zap.Int("interval", req.Interval))
		}
		d.scheduler.Reschedule(req.Interval)
	case ActionStartMonitoring:
		if !isAbsoluteURL(req.URL) {
			return Response{Error: "url must be an absolute url"}
		}
		d.scheduler.OnURLAdded(req.URL)
	case ActionStopMonitoring:
		if req.URL == "" {
			return Response{Error: "url is required"}
		}
		d.scheduler.OnURLRemoved(req.URL)
	default:
		d.logger.Debug("ignoring unknown control action", zap.String("action", req.Action))
		return Response{Ignored: true}
	}
	d.logger.Info("control request handled", zap.String("action", req.Action), zap.String("url", req.URL), zap.Int("interval", req.Interval))
	return Response{Success: true}
}

func isAbsoluteURL(raw string) bool {
	u, err := url.Parse(raw)
	return err == nil && u.IsAbs() && u.Host != ""
}

func NewDispatcher(scheduler MonitorScheduler, logger *zap.Logger) Dispatcher {
	return &dispatcher{
		scheduler: scheduler,
		logger:    logger,
	}
}
