package store

import (
	"context"
	"fmt"
	"time"

	chx "creditclear/internal/platform/store/ch"
	"creditclear/internal/platform/store/pg"
)

const (
	defaultConnectRetries = 20
	defaultPingTimeout    = 3 * time.Second
	firstBackoff          = 150 * time.Millisecond
	maxBackoff            = 2 * time.Second
)

// openPG dials the pool and only hands out the adapter once a ping answers
func openPG(ctx context.Context, cfg Config, s *Store) (TxRunner, error) {
	var tracer pg.QueryTracer
	if cfg.PG.LogSQL {
		tracer = pg.Tracer(s.Log)
	}

	p, err := pg.Open(ctx, pg.Config{
		URL:      cfg.PG.URL,
		MaxConns: cfg.PG.MaxConns,
		SlowMs:   cfg.PG.SlowQueryMs,
		AppName:  cfg.AppName,
	}, tracer)
	if err != nil {
		return nil, err
	}

	// pool ping, not the adapter, so boot retries stay out of the sql trace
	if err := waitReady(ctx, p.Pool.Ping, cfg.PG.ConnectRetries, cfg.PG.PingTimeout); err != nil {
		p.Close()
		return nil, fmt.Errorf("postgres: %w", err)
	}
	return newPGAdapter(p), nil
}

// waitReady calls ping until it succeeds, backing off between attempts
func waitReady(ctx context.Context, ping func(context.Context) error, attempts int, timeout time.Duration) error {
	if attempts <= 0 {
		attempts = defaultConnectRetries
	}
	if timeout <= 0 {
		timeout = defaultPingTimeout
	}

	var last error
	wait := firstBackoff
	for n := 1; ; n++ {
		pctx, cancel := context.WithTimeout(ctx, timeout)
		last = ping(pctx)
		cancel()
		if last == nil {
			return nil
		}
		if n == attempts {
			return fmt.Errorf("ping failed after %d attempts: %w", n, last)
		}

		t := time.NewTimer(wait)
		select {
		case <-ctx.Done():
			t.Stop()
			return ctx.Err()
		case <-t.C:
		}
		wait = min(wait*2, maxBackoff)
	}
}

func openCH(ctx context.Context, cfg Config, _ *Store) (Clickhouse, error) {
	c, err := chx.Open(ctx, chx.Config{
		URL:         cfg.CH.URL,
		ClientRole:  cfg.CH.ClientRole,
		ClientTag:   cfg.CH.ClientTag,
		DialTimeout: cfg.CH.DialTimeout,
		MaxConns:    cfg.CH.MaxConns,
	})
	if err != nil {
		return nil, err
	}
	return newCHAdapter(c), nil
}
