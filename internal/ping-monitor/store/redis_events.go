package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

type redisEventBus struct {
	client  *redis.Client
	channel string
	logger  *zap.Logger
}

func (r *redisEventBus) Publish(ctx context.Context, event ChangeEvent) error {
	b, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("redisEventBus.Publish: %w", err)
	}
	if err = r.client.Publish(ctx, r.channel, string(b)).Err(); err != nil {
		return fmt.Errorf("redisEventBus.Publish: %w", err)
	}
	return nil
}

func (r *redisEventBus) Subscribe(ctx context.Context, handler func(ChangeEvent)) error {
	pubsub := r.client.Subscribe(ctx, r.channel)
	defer pubsub.Close()
	if _, err := pubsub.Receive(ctx); err != nil {
		return fmt.Errorf("redisEventBus.Subscribe: %w", err)
	}
	ch := pubsub.Channel()
	for {
		select {
		case <-ctx.Done():
			return nil
		case msg, ok := <-ch:
			if !ok {
				return nil
			}
			var event ChangeEvent
			if err := json.Unmarshal([]byte(msg.Payload), &event); err != nil {
				r.logger.Warn("failed to unmarshal storage change event", zap.Error(fmt.Errorf("redisEventBus.Subscribe: %w", err)))
				continue
			}
			handler(event)
		}
	}
}

func NewRedisEventBus(client *redis.Client, channel string, logger *zap.Logger) EventBus {
	return &redisEventBus{
		client:  client,
		channel: channel,
		logger:  logger,
	}
}
