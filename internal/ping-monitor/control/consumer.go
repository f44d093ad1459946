package control

import (
	"URL_Ping_Monitor/pkg/infra"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// Consumer reads control requests from a kafka topic. Committing the offset is the acknowledgement,
// so a message is committed only after its request has been dispatched.
type Consumer interface {
	Start()
	Stop()
}

type consumer struct {
	dispatcher Dispatcher
	kafka      infra.KafkaReader
	logger     *zap.Logger
	done       chan struct{}
}

func (c *consumer) Start() {
	go func() {
		defer close(c.done)
		for {
			m, err := c.kafka.FetchMessage(context.Background())
			if err != nil {
				if errors.Is(err, io.EOF) {
					return
				}
				c.logger.Error("failed to fetch message", zap.Error(fmt.Errorf("consumer.Start: %w", err)))
				time.Sleep(time.Second)
				continue
			}
			c.handle(m)
		}
	}()
}

func (c *consumer) handle(m kafka.Message) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if m.Value != nil {
		var req Request
		if err := json.Unmarshal(m.Value, &req); err != nil {
			c.logger.Error("failed to unmarshal control request", zap.Error(fmt.Errorf("consumer.handle: %w", err)), zap.Int64("offset", m.Offset))
		} else {
			res := c.dispatcher.Dispatch(ctx, req)
			if !res.Success && !res.Ignored {
				c.logger.Warn("control request rejected", zap.String("action", req.Action), zap.String("error", res.Error))
			}
		}
	}
	if err := c.kafka.CommitMessages(ctx, m); err != nil {
		c.logger.Error("failed to commit messages", zap.Error(fmt.Errorf("consumer.handle: %w", err)))
	}
}

// Stop closes the reader, which ends the fetch loop, and waits for it to exit.
func (c *consumer) Stop() {
	if err := c.kafka.Close(); err != nil {
		c.logger.Error("failed to close kafka reader", zap.Error(fmt.Errorf("consumer.Stop: %w", err)))
	}
	select {
	case <-c.done:
	case <-time.After(5 * time.Second):
	}
}

func NewConsumer(dispatcher Dispatcher, logger *zap.Logger, kafka infra.KafkaReader) Consumer {
	return &consumer{
		dispatcher: dispatcher,
		kafka:      kafka,
		logger:     logger,
		done:       make(chan struct{}),
	}
}
