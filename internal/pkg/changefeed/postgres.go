package changefeed

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5"

	"github.com/nexus-os/office-backend/internal/pkg/database"
)

// Postgres uses LISTEN/NOTIFY on a single channel.
type Postgres struct {
	db      *database.DB
	channel string
}

func NewPostgres(db *database.DB, channel string) *Postgres {
	return &Postgres{db: db, channel: channel}
}

func (p *Postgres) Publish(ctx context.Context, c Change) error {
	payload, err := c.encode()
	if err != nil {
		return err
	}
	if _, err := p.db.Exec(ctx, `SELECT pg_notify($1, $2)`, p.channel, string(payload)); err != nil {
		return fmt.Errorf("pg_notify %s: %w", p.channel, err)
	}
	return nil
}

// Listen holds one pooled connection for as long as it runs.
func (p *Postgres) Listen(ctx context.Context, fn func(Change)) error {
	conn, err := p.db.Acquire(ctx)
	if err != nil {
		return fmt.Errorf("acquire listen connection: %w", err)
	}
	defer conn.Release()

	listen := "LISTEN " + pgx.Identifier{p.channel}.Sanitize()
	if _, err := conn.Exec(ctx, listen); err != nil {
		return fmt.Errorf("listen %s: %w", p.channel, err)
	}

	for {
		n, err := conn.Conn().WaitForNotification(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return fmt.Errorf("wait for notification: %w", err)
		}
		c, err := decode([]byte(n.Payload))
		if err != nil {
			slog.Warn("dropping malformed change", "channel", p.channel, "error", err)
			continue
		}
		fn(c)
	}
}

func (p *Postgres) Close() error { return nil }
