package changefeed

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/redis/go-redis/v9"
)

// Redis fans changes out over a Pub/Sub channel.
type Redis struct {
	client  redis.UniversalClient
	channel string
}

func NewRedis(client redis.UniversalClient, channel string) *Redis {
	return &Redis{client: client, channel: channel}
}

func (r *Redis) Publish(ctx context.Context, c Change) error {
	payload, err := c.encode()
	if err != nil {
		return err
	}
	if err := r.client.Publish(ctx, r.channel, string(payload)).Err(); err != nil {
		return fmt.Errorf("redis publish %s: %w", r.channel, err)
	}
	return nil
}

func (r *Redis) Listen(ctx context.Context, fn func(Change)) error {
	sub := r.client.Subscribe(ctx, r.channel)
	defer sub.Close()

	// wait for the subscription to be confirmed so early publishes aren't lost
	if _, err := sub.Receive(ctx); err != nil {
		if ctx.Err() != nil {
			return nil
		}
		return fmt.Errorf("redis subscribe %s: %w", r.channel, err)
	}

	ch := sub.Channel()
	for {
		select {
		case <-ctx.Done():
			return nil
		case msg, ok := <-ch:
			if !ok {
				return fmt.Errorf("redis subscription %s closed", r.channel)
			}
			c, err := decode([]byte(msg.Payload))
			if err != nil {
				slog.Warn("dropping malformed change", "channel", r.channel, "error", err)
				continue
			}
			fn(c)
		}
	}
}

// Close is a no-op; the client belongs to whoever created it.
func (r *Redis) Close() error { return nil }
