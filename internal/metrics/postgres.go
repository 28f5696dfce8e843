package metrics

import (
	"context"
	"database/sql"
	"os"
	"strings"
	"sync"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
)

// PostgresRecorder appends conversion records to a single table,
// creating it on first use.
type PostgresRecorder struct {
	db *sql.DB

	schemaOnce sync.Once
	schemaErr  error
}

func NewPostgres(dsn string) (*PostgresRecorder, error) {
	db, err := sql.Open("pgx", strings.TrimSpace(dsn))
	if err != nil {
		return nil, err
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, err
	}
	return &PostgresRecorder{db: db}, nil
}

// NewFromEnv returns a Postgres recorder when METRICS_PG_DSN is set and
// reachable, and the no-op recorder otherwise.
func NewFromEnv() Recorder {
	dsn := strings.TrimSpace(os.Getenv("METRICS_PG_DSN"))
	if dsn == "" {
		return Noop{}
	}
	r, err := NewPostgres(dsn)
	if err != nil {
		return Noop{}
	}
	return r
}

func (p *PostgresRecorder) ensureSchema() error {
	p.schemaOnce.Do(func() {
		_, p.schemaErr = p.db.Exec(`
CREATE TABLE IF NOT EXISTS conversion_records (
  id SERIAL PRIMARY KEY,
  conversion_id TEXT NOT NULL,
  source_path TEXT NOT NULL,
  backend TEXT NOT NULL DEFAULT '',
  ai_used BOOLEAN NOT NULL DEFAULT FALSE,
  success BOOLEAN NOT NULL DEFAULT FALSE,
  duration_ms BIGINT NOT NULL DEFAULT 0,
  error TEXT NOT NULL DEFAULT '',
  recorded_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
);
CREATE INDEX IF NOT EXISTS idx_conversion_records_conversion_id ON conversion_records (conversion_id);
`)
	})
	return p.schemaErr
}

func (p *PostgresRecorder) Record(ctx context.Context, r Record) error {
	if err := p.ensureSchema(); err != nil {
		return err
	}
	at := r.At
	if at.IsZero() {
		at = time.Now()
	}
	_, err := p.db.ExecContext(ctx, `
INSERT INTO conversion_records (conversion_id, source_path, backend, ai_used, success, duration_ms, error, recorded_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		r.ConversionID, r.SourcePath, r.Backend, r.AIUsed, r.Success, r.DurationMS, r.Error, at)
	return err
}

func (p *PostgresRecorder) Close() error { return p.db.Close() }
