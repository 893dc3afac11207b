package events

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/segmentio/kafka-go"
)

const TopicProductEvents = "product_events"

// Producer publishes catalog change events. A nil Producer is valid and
// drops every event, so deployments without a broker run unchanged.
type Producer struct {
	writer *kafka.Writer
}

func NewProducer(address []string) *Producer {
	w := &kafka.Writer{
		Addr:                   kafka.TCP(address...),
		Balancer:               &kafka.Hash{},
		AllowAutoTopicCreation: true,
	}
	return &Producer{writer: w}
}

func (p *Producer) PublishEvent(ctx context.Context, topic, key string, event interface{}) error {
	if p == nil {
		return nil
	}

	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("kafka: json.Marshal failed: %w", err)
	}

	msg := kafka.Message{
		Topic: topic,
		Key:   []byte(key),
		Value: data,
	}

	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("kafka: write failed: %w", err)
	}

	return nil
}

func (p *Producer) Close() error {
	if p == nil {
		return nil
	}
	return p.writer.Close()
}
