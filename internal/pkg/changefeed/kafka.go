package changefeed

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/segmentio/kafka-go"
)

// Kafka publishes changes to a topic. Each origin reads with its own consumer
// group so every store sees every change.
type Kafka struct {
	brokers []string
	topic   string
	groupID string
	writer  *kafka.Writer
}

func NewKafka(brokers []string, topic, origin string) *Kafka {
	return &Kafka{
		brokers: brokers,
		topic:   topic,
		groupID: "nexus-" + origin,
		writer: &kafka.Writer{
			Addr:         kafka.TCP(brokers...),
			Topic:        topic,
			Balancer:     &kafka.LeastBytes{},
			BatchTimeout: 10 * time.Millisecond,
		},
	}
}

func (k *Kafka) Publish(ctx context.Context, c Change) error {
	payload, err := c.encode()
	if err != nil {
		return err
	}

	err = k.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(c.Key),
		Value: payload,
		Headers: []kafka.Header{
			{Key: "origin", Value: []byte(c.Origin)},
		},
	})
	if err != nil {
		return fmt.Errorf("kafka write %s: %w", k.topic, err)
	}
	return nil
}

func (k *Kafka) Listen(ctx context.Context, fn func(Change)) error {
	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers:     k.brokers,
		Topic:       k.topic,
		GroupID:     k.groupID,
		StartOffset: kafka.LastOffset,
		MinBytes:    1,
		MaxBytes:    1e6,
	})
	defer reader.Close()

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil || errors.Is(err, context.Canceled) {
				return nil
			}
			return fmt.Errorf("kafka fetch %s: %w", k.topic, err)
		}

		c, err := decode(msg.Value)
		if err != nil {
			slog.Warn("dropping malformed change", "topic", k.topic, "offset", msg.Offset, "error", err)
		} else {
			fn(c)
		}

		if err := reader.CommitMessages(ctx, msg); err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return fmt.Errorf("kafka commit %s: %w", k.topic, err)
		}
	}
}

func (k *Kafka) Close() error {
	return k.writer.Close()
}
