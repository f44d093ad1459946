package store

import (
	"context"
	"fmt"
	"sort"

	"github.com/redis/go-redis/v9"
)

// redisBackend keeps the whole document in one redis hash, one field per document key.
type redisBackend struct {
	client *redis.Client
	key    string
}

func (r *redisBackend) Load(ctx context.Context, keys []string) (map[string][]byte, error) {
	out := make(map[string][]byte, len(keys))
	if len(keys) == 0 {
		return out, nil
	}
	res, err := r.client.HMGet(ctx, r.key, keys...).Result()
	if err != nil {
		return nil, fmt.Errorf("redisBackend.Load: %w", err)
	}
	for i, v := range res {
		s, ok := v.(string)
		if !ok {
			continue
		}
		out[keys[i]] = []byte(s)
	}
	return out, nil
}

func (r *redisBackend) Save(ctx context.Context, values map[string][]byte) error {
	if len(values) == 0 {
		return nil
	}
	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	args := make([]any, 0, len(values)*2)
	for _, k := range keys {
		args = append(args, k, string(values[k]))
	}
	if err := r.client.HSet(ctx, r.key, args...).Err(); err != nil {
		return fmt.Errorf("redisBackend.Save: %w", err)
	}
	return nil
}

// Close leaves the client open. It is shared with the event bus and publisher and closed by its owner.
func (r *redisBackend) Close() error {
	return nil
}

func NewRedisBackend(client *redis.Client, key string) Backend {
	return &redisBackend{
		client: client,
		key:    key,
	}
}
