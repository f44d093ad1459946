package prober

import (
	"URL_Ping_Monitor/internal/ping-monitor/model"
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"go.uber.org/zap"
)

type Prober interface {
	// Probe never returns an error: every failure is classified as model.Unreachable.
	Probe(ctx context.Context, rawURL string) model.Outcome
}

type httpProber struct {
	client  *http.Client
	timeout time.Duration
	logger  *zap.Logger
}

// Probe sends a HEAD request and falls back to GET when HEAD fails at the transport level.
// Any HTTP response counts as reachable, whatever its status code.
func (p *httpProber) Probe(ctx context.Context, rawURL string) model.Outcome {
	u, err := url.Parse(rawURL)
	if err != nil || !u.IsAbs() || u.Host == "" {
		p.logger.Debug("probe skipped, invalid url", zap.String("url", rawURL))
		return model.Unreachable
	}
	var lastErr error
	for _, method := range []string{http.MethodHead, http.MethodGet} {
		if lastErr = p.attempt(ctx, method, u.String()); lastErr == nil {
			return model.Reachable
		}
		if ctx.Err() != nil {
			break
		}
	}
	p.logger.Debug("probe failed", zap.String("url", rawURL), zap.Error(lastErr))
	return model.Unreachable
}

func (p *httpProber) attempt(ctx context.Context, method string, target string) error {
	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()
	req, err := http.NewRequestWithContext(ctx, method, target, nil)
	if err != nil {
		return fmt.Errorf("httpProber.attempt creating request: %w", err)
	}
	req.Header.Set("Cache-Control", "no-cache")
	req.Header.Set("Pragma", "no-cache")
	resp, err := p.client.Do(req)
	if err != nil {
		return fmt.Errorf("httpProber.attempt %s: %w", method, err)
	}
	resp.Body.Close()
	return nil
}

// NewHTTPProber bounds every attempt by timeout. Redirects are followed, no cookies are kept.
func NewHTTPProber(timeout time.Duration, logger *zap.Logger) Prober {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &httpProber{
		client:  &http.Client{},
		timeout: timeout,
		logger:  logger,
	}
}
