package publisher

import (
	"URL_Ping_Monitor/internal/ping-monitor/model"
	"URL_Ping_Monitor/pkg/infra"
	"context"
	"encoding/json"
	"fmt"

	"github.com/segmentio/kafka-go"
)

type kafkaSink struct {
	writer infra.KafkaWriter
}

func (k *kafkaSink) Name() string {
	return "kafka"
}

func (k *kafkaSink) Send(ctx context.Context, msg model.Message) error {
	b, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("kafkaSink.Send: %w", err)
	}
	key := msg.URL
	if key == "" {
		key = msg.Action
	}
	err = k.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(key),
		Value: b,
	})
	if err != nil {
		return fmt.Errorf("kafkaSink.Send: %w", err)
	}
	return nil
}

func NewKafkaSink(writer infra.KafkaWriter) Sink {
	return &kafkaSink{
		writer: writer,
	}
}
