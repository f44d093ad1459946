package publisher

import (
	"URL_Ping_Monitor/internal/ping-monitor/model"
	"context"
	"fmt"

	"go.uber.org/zap"
)

// Sink delivers a message to one kind of UI surface. A sink with no listeners must return nil.
type Sink interface {
	Name() string
	Send(ctx context.Context, msg model.Message) error
}

type Publisher interface {
	// Publish is fire-and-forget: sink failures are logged and never returned.
	Publish(ctx context.Context, msg model.Message) error
}

type fanoutPublisher struct {
	sinks  []Sink
	logger *zap.Logger
}

func (p *fanoutPublisher) Publish(ctx context.Context, msg model.Message) error {
	for _, sink := range p.sinks {
		if err := sink.Send(ctx, msg); err != nil {
			p.logger.Warn("failed to deliver message",
				zap.Error(fmt.Errorf("fanoutPublisher.Publish: %w", err)),
				zap.String("sink", sink.Name()),
				zap.String("action", msg.Action),
				zap.String("url", msg.URL),
			)
		}
	}
	return nil
}

func NewPublisher(logger *zap.Logger, sinks ...Sink) Publisher {
	return &fanoutPublisher{
		sinks:  sinks,
		logger: logger,
	}
}
