package publisher

import (
	"URL_Ping_Monitor/internal/ping-monitor/model"
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"
)

type redisSink struct {
	client  *redis.Client
	channel string
}

func (r *redisSink) Name() string {
	return "redis"
}

// Send publishes on the channel. Zero receivers is a normal outcome.
func (r *redisSink) Send(ctx context.Context, msg model.Message) error {
	b, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("redisSink.Send: %w", err)
	}
	if err = r.client.Publish(ctx, r.channel, string(b)).Err(); err != nil {
		return fmt.Errorf("redisSink.Send: %w", err)
	}
	return nil
}

func NewRedisSink(client *redis.Client, channel string) Sink {
	return &redisSink{
		client:  client,
		channel: channel,
	}
}
