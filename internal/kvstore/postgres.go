package kvstore

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

func ConnectPostgres(ctx context.Context, dsn string) (*pgxpool.Pool, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, err
	}
	cfg.MaxConns = 8
	cfg.MinConns = 1
	cfg.HealthCheckPeriod = 30 * time.Second
	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, err
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, err
	}
	return pool, nil
}

// Postgres menyimpan record di satu tabel upsert:
//
//	CREATE TABLE session_records (
//	  session_id TEXT NOT NULL,
//	  name       TEXT NOT NULL,
//	  value      JSONB NOT NULL,
//	  updated_at TIMESTAMPTZ NOT NULL DEFAULT now(),
//	  PRIMARY KEY (session_id, name)
//	);
type Postgres struct {
	db     *pgxpool.Pool
	prefix string
}

func NewPostgres(db *pgxpool.Pool, prefix string) *Postgres {
	return &Postgres{db: db, prefix: prefix}
}

func (s *Postgres) Get(ctx context.Context, key string) ([]byte, error) {
	var value []byte
	err := s.db.QueryRow(ctx,
		`SELECT value FROM session_records WHERE session_id=$1 AND name=$2`,
		s.prefix, key).Scan(&value)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return value, nil
}

func (s *Postgres) Set(ctx context.Context, key string, value []byte) error {
	_, err := s.db.Exec(ctx, `
		INSERT INTO session_records(session_id, name, value, updated_at)
		VALUES ($1, $2, $3, now())
		ON CONFLICT (session_id, name)
		DO UPDATE SET value = EXCLUDED.value, updated_at = now()
	`, s.prefix, key, value)
	return err
}

func (s *Postgres) Delete(ctx context.Context, key string) error {
	_, err := s.db.Exec(ctx,
		`DELETE FROM session_records WHERE session_id=$1 AND name=$2`,
		s.prefix, key)
	return err
}
