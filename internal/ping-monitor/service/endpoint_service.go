package service

import (
	"URL_Ping_Monitor/internal/ping-monitor/control"
	apperrors "URL_Ping_Monitor/internal/ping-monitor/errors"
	"URL_Ping_Monitor/internal/ping-monitor/model"
	"URL_Ping_Monitor/internal/ping-monitor/repository"
	"URL_Ping_Monitor/pkg/mail"
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"
)

type EndpointService interface {
	ListEndpoints(ctx context.Context) ([]model.MonitoredEndpoint, error)
	AddEndpoint(ctx context.Context, input model.EndpointInput) (model.MonitoredEndpoint, error)
	// ImportEndpoints adds every valid, new url. Rejected urls are returned, not treated as errors.
	ImportEndpoints(ctx context.Context, inputs []model.EndpointInput) (imported []model.MonitoredEndpoint, rejected []string, err error)
	RemoveEndpoint(ctx context.Context, url string) error
	// UpdateEndpointLabels changes alias and group. A nil field is left as is, an empty one is cleared.
	UpdateEndpointLabels(ctx context.Context, url string, alias *string, group *string) (model.MonitoredEndpoint, error)
	GetSummary(ctx context.Context) (model.Summary, error)
	SendSummaryReport(ctx context.Context, to []string) error
}

type endpointService struct {
	endpointRepo repository.EndpointRepository
	dispatcher   control.Dispatcher
	mailSender   mail.Sender
	logger       *zap.Logger
}

// NormalizeURL trims raw and checks it parses as an absolute url with a host.
func NormalizeURL(raw string) (string, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return "", apperrors.ErrInvalidURL
	}
	u, err := url.Parse(trimmed)
	if err != nil || !u.IsAbs() || u.Host == "" {
		return "", apperrors.ErrInvalidURL
	}
	return trimmed, nil
}

func normalizeLabel(label *string) *string {
	if label == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*label)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

func (s *endpointService) ListEndpoints(ctx context.Context) ([]model.MonitoredEndpoint, error) {
	endpoints, err := s.endpointRepo.GetEndpoints(ctx)
	if err != nil {
		return nil, fmt.Errorf("EndpointService.ListEndpoints: %w", err)
	}
	return endpoints, nil
}

func (s *endpointService) AddEndpoint(ctx context.Context, input model.EndpointInput) (model.MonitoredEndpoint, error) {
	u, err := NormalizeURL(input.URL)
	if err != nil {
		return model.MonitoredEndpoint{}, fmt.Errorf("EndpointService.AddEndpoint: %w", err)
	}
	entry := model.MonitoredEndpoint{
		URL:    u,
		Alias:  normalizeLabel(input.Alias),
		Group:  normalizeLabel(input.Group),
		Status: model.StatusChecking,
	}
	err = s.endpointRepo.ModifyEndpoints(ctx, func(endpoints []model.MonitoredEndpoint) ([]model.MonitoredEndpoint, error) {
		for _, e := range endpoints {
			if e.URL == u {
				return nil, apperrors.ErrEndpointAlreadyExists
			}
		}
		return append(endpoints, entry), nil
	})
	if err != nil {
		return model.MonitoredEndpoint{}, fmt.Errorf("EndpointService.AddEndpoint: %w", err)
	}
	s.dispatch(ctx, control.Request{Action: control.ActionStartMonitoring, URL: u})
	return entry, nil
}

func (s *endpointService) ImportEndpoints(ctx context.Context, inputs []model.EndpointInput) ([]model.MonitoredEndpoint, []string, error) {
	var imported []model.MonitoredEndpoint
	var rejected []string
	err := s.endpointRepo.ModifyEndpoints(ctx, func(endpoints []model.MonitoredEndpoint) ([]model.MonitoredEndpoint, error) {
		imported, rejected = nil, nil
		seen := make(map[string]struct{}, len(endpoints)+len(inputs))
		for _, e := range endpoints {
			seen[e.URL] = struct{}{}
		}
		for _, input := range inputs {
			u, e := NormalizeURL(input.URL)
			if e != nil {
				rejected = append(rejected, input.URL)
				continue
			}
			if _, ok := seen[u]; ok {
				rejected = append(rejected, u)
				continue
			}
			seen[u] = struct{}{}
			entry := model.MonitoredEndpoint{
				URL:    u,
				Alias:  normalizeLabel(input.Alias),
				Group:  normalizeLabel(input.Group),
				Status: model.StatusChecking,
			}
			endpoints = append(endpoints, entry)
			imported = append(imported, entry)
		}
		if len(imported) == 0 {
			return nil, apperrors.ErrNoChange
		}
		return endpoints, nil
	})
	if err != nil {
		return nil, nil, fmt.Errorf("EndpointService.ImportEndpoints: %w", err)
	}
	for _, e := range imported {
		s.dispatch(ctx, control.Request{Action: control.ActionStartMonitoring, URL: e.URL})
	}
	return imported, rejected, nil
}

func (s *endpointService) RemoveEndpoint(ctx context.Context, url string) error {
	err := s.endpointRepo.ModifyEndpoints(ctx, func(endpoints []model.MonitoredEndpoint) ([]model.MonitoredEndpoint, error) {
		for i, e := range endpoints {
			if e.URL == url {
				return append(endpoints[:i], endpoints[i+1:]...), nil
			}
		}
		return nil, apperrors.ErrEndpointNotFound
	})
	if err != nil {
		return fmt.Errorf("EndpointService.RemoveEndpoint: %w", err)
	}
	s.dispatch(ctx, control.Request{Action: control.ActionStopMonitoring, URL: url})
	return nil
}

func (s *endpointService) UpdateEndpointLabels(ctx context.Context, url string, alias *string, group *string) (model.MonitoredEndpoint, error) {
	var updated model.MonitoredEndpoint
	err := s.endpointRepo.ModifyEndpoints(ctx, func(endpoints []model.MonitoredEndpoint) ([]model.MonitoredEndpoint, error) {
		for i := range endpoints {
			if endpoints[i].URL != url {
				continue
			}
			if alias != nil {
				endpoints[i].Alias = normalizeLabel(alias)
			}
			if group != nil {
				endpoints[i].Group = normalizeLabel(group)
			}
			updated = endpoints[i]
			return endpoints, nil
		}
		return nil, apperrors.ErrEndpointNotFound
	})
	if err != nil {
		return model.MonitoredEndpoint{}, fmt.Errorf("EndpointService.UpdateEndpointLabels: %w", err)
	}
	return updated, nil
}

func (s *endpointService) GetSummary(ctx context.Context) (model.Summary, error) {
	endpoints, err := s.endpointRepo.GetEndpoints(ctx)
	if err != nil {
		return model.Summary{}, fmt.Errorf("EndpointService.GetSummary: %w", err)
	}
	return Summarize(endpoints), nil
}

// Summarize counts endpoints per status. Unknown statuses count as checking.
func Summarize(endpoints []model.MonitoredEndpoint) model.Summary {
	summary := model.Summary{Total: len(endpoints)}
	for _, e := range endpoints {
		switch e.Status.Normalize() {
		case model.StatusOnline:
			summary.Online++
		case model.StatusOffline:
			summary.Offline++
		default:
			summary.Checking++
		}
		if e.LastChecked != nil && (summary.LatestCheck == nil || *e.LastChecked > *summary.LatestCheck) {
			latest := *e.LastChecked
			summary.LatestCheck = &latest
		}
	}
	return summary
}

func (s *endpointService) SendSummaryReport(ctx context.Context, to []string) error {
	if s.mailSender == nil {
		return errors.New("EndpointService.SendSummaryReport: mail is not configured")
	}
	endpoints, err := s.endpointRepo.GetEndpoints(ctx)
	if err != nil {
		return fmt.Errorf("EndpointService.SendSummaryReport: %w", err)
	}
	summary := Summarize(endpoints)
	err = s.mailSender.SendMail(ctx, mail.Message{
		To:       to,
		Subject:  fmt.Sprintf("URL Monitor Report %s", time.Now().Format("2006-01-02")),
		TextBody: generateTextReport(summary, endpoints),
		HTMLBody: generateHTMLReport(summary, endpoints),
	})
	if err != nil {
		return fmt.Errorf("EndpointService.SendSummaryReport: %w", err)
	}
	return nil
}

func (s *endpointService) dispatch(ctx context.Context, req control.Request) {
	res := s.dispatcher.Dispatch(ctx, req)
	if !res.Success {
		s.logger.Warn("control request not acknowledged", zap.String("action", req.Action), zap.String("url", req.URL), zap.String("error", res.Error))
	}
}

func NewEndpointService(endpointRepo repository.EndpointRepository, dispatcher control.Dispatcher, mailSender mail.Sender, logger *zap.Logger) EndpointService {
	return &endpointService{
		endpointRepo: endpointRepo,
		dispatcher:   dispatcher,
		mailSender:   mailSender,
		logger:       logger,
	}
}
