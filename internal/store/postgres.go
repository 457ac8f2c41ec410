package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Postgres is a DocumentRepo backed by a jsonb column.
type Postgres struct {
	pool *pgxpool.Pool
}

// OpenPostgres connects a pool to dsn and creates the documents table.
func OpenPostgres(ctx context.Context, dsn string) (*Postgres, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse postgres dsn: %w", err)
	}
	cfg.MaxConns = 4
	cfg.MaxConnIdleTime = 30 * time.Minute

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("create postgres pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}

	_, err = pool.Exec(ctx, `CREATE TABLE IF NOT EXISTS `+documentsTable+` (
		doc_key TEXT PRIMARY KEY,
		version INTEGER NOT NULL,
		data JSONB NOT NULL,
		writer_id TEXT NOT NULL DEFAULT '',
		updated_at TIMESTAMPTZ NOT NULL
	)`)
	if err != nil {
		pool.Close()
		return nil, fmt.Errorf("create documents table: %w", err)
	}
	return &Postgres{pool: pool}, nil
}

func (p *Postgres) Load(ctx context.Context, key string) (*Record, error) {
	rec := &Record{Key: key}
	var data string
	err := p.pool.QueryRow(ctx,
		`SELECT version, data::text, writer_id, updated_at FROM `+documentsTable+` WHERE doc_key = $1`,
		key,
	).Scan(&rec.Version, &data, &rec.WriterID, &rec.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query document: %w", err)
	}
	rec.Data = []byte(data)
	return rec, nil
}

func (p *Postgres) Save(ctx context.Context, rec *Record) error {
	_, err := p.pool.Exec(ctx, `
		INSERT INTO `+documentsTable+` (doc_key, version, data, writer_id, updated_at)
		VALUES ($1, $2, $3::jsonb, $4, $5)
		ON CONFLICT(doc_key) DO UPDATE SET
			version = EXCLUDED.version,
			data = EXCLUDED.data,
			writer_id = EXCLUDED.writer_id,
			updated_at = EXCLUDED.updated_at`,
		rec.Key, rec.Version, string(rec.Data), rec.WriterID, rec.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("save document: %w", err)
	}
	return nil
}

func (p *Postgres) Delete(ctx context.Context, key string) error {
	if _, err := p.pool.Exec(ctx, `DELETE FROM `+documentsTable+` WHERE doc_key = $1`, key); err != nil {
		return fmt.Errorf("delete document: %w", err)
	}
	return nil
}

func (p *Postgres) Close() error {
	p.pool.Close()
	return nil
}
