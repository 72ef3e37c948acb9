package store

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Postgres struct {
	Pool *pgxpool.Pool
}

func NewPostgres(ctx context.Context, databaseURL string) (*Postgres, error) {
	cfg, err := pgxpool.ParseConfig(databaseURL)
	if err != nil {
		return nil, err
	}
	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, err
	}
	s := &Postgres{Pool: pool}
	if err := s.ensureSchema(ctx); err != nil {
		pool.Close()
		return nil, err
	}
	return s, nil
}

func (s *Postgres) ensureSchema(ctx context.Context) error {
	_, err := s.Pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS master_record (
			id         int PRIMARY KEY DEFAULT 1 CHECK (id = 1),
			doc        jsonb NOT NULL,
			updated_at timestamptz NOT NULL DEFAULT now()
		);
		CREATE TABLE IF NOT EXISTS session_snapshots (
			id         text PRIMARY KEY,
			doc        jsonb NOT NULL,
			updated_at timestamptz NOT NULL DEFAULT now()
		)`)
	return err
}

func (s *Postgres) Close() {
	s.Pool.Close()
}

func (s *Postgres) Ping(ctx context.Context) error {
	return s.Pool.Ping(ctx)
}

func (s *Postgres) LoadMaster(ctx context.Context) ([]byte, error) {
	var doc []byte
	err := s.Pool.QueryRow(ctx, `SELECT doc FROM master_record WHERE id = 1`).Scan(&doc)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	return doc, err
}

func (s *Postgres) SaveMaster(ctx context.Context, doc []byte) error {
	_, err := s.Pool.Exec(ctx, `
		INSERT INTO master_record (id, doc, updated_at) VALUES (1, $1, now())
		ON CONFLICT (id) DO UPDATE SET doc = EXCLUDED.doc, updated_at = now()`, doc)
	return err
}

func (s *Postgres) LoadSession(ctx context.Context, id string) ([]byte, error) {
	var doc []byte
	err := s.Pool.QueryRow(ctx, `SELECT doc FROM session_snapshots WHERE id = $1`, id).Scan(&doc)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	return doc, err
}

func (s *Postgres) SaveSession(ctx context.Context, id string, doc []byte) error {
	_, err := s.Pool.Exec(ctx, `
		INSERT INTO session_snapshots (id, doc, updated_at) VALUES ($1, $2, now())
		ON CONFLICT (id) DO UPDATE SET doc = EXCLUDED.doc, updated_at = now()`, id, doc)
	return err
}

func (s *Postgres) DeleteSession(ctx context.Context, id string) error {
	_, err := s.Pool.Exec(ctx, `DELETE FROM session_snapshots WHERE id = $1`, id)
	return err
}
