package postgres

import (
	"context"
	"fmt"
	"strings"
	"time"

	"internhub/internal/config"
	"internhub/internal/database"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Pool struct {
	pool *pgxpool.Pool
}

func Connect(ctx context.Context, cfg config.DatabaseConfig) (database.DB, error) {
	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		strings.TrimSpace(cfg.Host),
		strings.TrimSpace(cfg.Port),
		strings.TrimSpace(cfg.User),
		cfg.Password,
		strings.TrimSpace(cfg.Name),
		strings.TrimSpace(cfg.SSLMode),
	)

	pcfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, err
	}

	if cfg.ConnectTimeout > 0 {
		pcfg.ConnConfig.ConnectTimeout = cfg.ConnectTimeout
	}
	if cfg.PoolMaxConns > 0 {
		pcfg.MaxConns = cfg.PoolMaxConns
	}

	p, err := pgxpool.NewWithConfig(ctx, pcfg)
	if err != nil {
		return nil, err
	}

	pingCtx := ctx
	if _, ok := ctx.Deadline(); !ok {
		var cancel context.CancelFunc
		pingCtx, cancel = context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
	}
	if err := p.Ping(pingCtx); err != nil {
		p.Close()
		return nil, err
	}

	return &Pool{pool: p}, nil
}

func (p *Pool) Ping(ctx context.Context) error {
	if p == nil || p.pool == nil {
		return fmt.Errorf("nil db")
	}
	return p.pool.Ping(ctx)
}

func (p *Pool) Close() error {
	if p != nil && p.pool != nil {
		p.pool.Close()
	}
	return nil
}

func (p *Pool) Exec(ctx context.Context, query string, args ...any) (int64, error) {
	if p == nil || p.pool == nil {
		return 0, fmt.Errorf("nil db")
	}
	tag, err := p.pool.Exec(ctx, query, args...)
	return tag.RowsAffected(), err
}

func (p *Pool) Query(ctx context.Context, query string, args ...any) (database.Rows, error) {
	if p == nil || p.pool == nil {
		return nil, fmt.Errorf("nil db")
	}
	r, err := p.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	return pgxRows{rows: r}, nil
}

func (p *Pool) QueryRow(ctx context.Context, query string, args ...any) database.Row {
	if p == nil || p.pool == nil {
		return errRow{}
	}
	return p.pool.QueryRow(ctx, query, args...)
}

func (p *Pool) Begin(ctx context.Context) (database.Tx, error) {
	if p == nil || p.pool == nil {
		return nil, fmt.Errorf("nil db")
	}
	tx, err := p.pool.Begin(ctx)
	if err != nil {
		return nil, err
	}
	return pgxTx{tx: tx}, nil
}

type pgxTx struct {
	tx pgx.Tx
}

func (t pgxTx) Exec(ctx context.Context, query string, args ...any) (int64, error) {
	tag, err := t.tx.Exec(ctx, query, args...)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

func (t pgxTx) Query(ctx context.Context, query string, args ...any) (database.Rows, error) {
	r, err := t.tx.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	return pgxRows{rows: r}, nil
}

func (t pgxTx) QueryRow(ctx context.Context, query string, args ...any) database.Row {
	return t.tx.QueryRow(ctx, query, args...)
}

func (t pgxTx) Commit(ctx context.Context) error   { return t.tx.Commit(ctx) }
func (t pgxTx) Rollback(ctx context.Context) error { return t.tx.Rollback(ctx) }

type pgxRows struct {
	rows pgx.Rows
}

func (r pgxRows) Close()                  { r.rows.Close() }
func (r pgxRows) Next() bool              { return r.rows.Next() }
func (r pgxRows) Scan(dest ...any) error  { return r.rows.Scan(dest...) }
func (r pgxRows) Err() error              { return r.rows.Err() }

type errRow struct{}

func (errRow) Scan(...any) error { return fmt.Errorf("nil db") }
