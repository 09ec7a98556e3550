package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/rotisserie/eris"
	_ "modernc.org/sqlite"
)

// SQLiteStore implements Store using modernc.org/sqlite.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLite opens a SQLite database at the given path and configures WAL mode.
func NewSQLite(dsn string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, eris.Wrap(err, "sqlite: open")
	}
	for _, pragma := range []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout=5000",
		"PRAGMA synchronous=NORMAL",
	} {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, eris.Wrapf(err, "sqlite: exec %s", pragma)
		}
	}
	return &SQLiteStore{db: db}, nil
}

const sqliteMigration = `
CREATE TABLE IF NOT EXISTS evaluations (
	id         TEXT PRIMARY KEY,
	kind       TEXT NOT NULL,
	site       TEXT NOT NULL,
	report     TEXT NOT NULL,
	created_at DATETIME NOT NULL DEFAULT (datetime('now'))
);

CREATE INDEX IF NOT EXISTS idx_evaluations_kind ON evaluations(kind);
CREATE INDEX IF NOT EXISTS idx_evaluations_site ON evaluations(site);
CREATE INDEX IF NOT EXISTS idx_evaluations_created_at ON evaluations(created_at);
`

func (s *SQLiteStore) Migrate(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, sqliteMigration)
	return eris.Wrap(err, "sqlite: migrate")
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func (s *SQLiteStore) SaveEvaluation(ctx context.Context, kind, site string, report any) (*Evaluation, error) {
	id := uuid.New().String()
	now := time.Now().UTC()

	reportJSON, err := json.Marshal(report)
	if err != nil {
		return nil, eris.Wrap(err, "sqlite: marshal report")
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO evaluations (id, kind, site, report, created_at) VALUES (?, ?, ?, ?, ?)`,
		id, kind, site, string(reportJSON), now,
	)
	if err != nil {
		return nil, eris.Wrap(err, "sqlite: insert evaluation")
	}

	return &Evaluation{
		ID:        id,
		Kind:      kind,
		Site:      site,
		Report:    reportJSON,
		CreatedAt: now,
	}, nil
}

func (s *SQLiteStore) GetEvaluation(ctx context.Context, id string) (*Evaluation, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, kind, site, report, created_at FROM evaluations WHERE id = ?`,
		id,
	)

	var e Evaluation
	var reportJSON string
	err := row.Scan(&e.ID, &e.Kind, &e.Site, &reportJSON, &e.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, eris.Errorf("evaluation not found: %s", id)
	}
	if err != nil {
		return nil, eris.Wrap(err, "sqlite: scan evaluation")
	}
	e.Report = json.RawMessage(reportJSON)
	return &e, nil
}

func (s *SQLiteStore) ListEvaluations(ctx context.Context, filter Filter) ([]Evaluation, error) {
	query := `SELECT id, kind, site, report, created_at FROM evaluations WHERE 1=1`
	var args []any

	if filter.Kind != "" {
		query += ` AND kind = ?`
		args = append(args, filter.Kind)
	}
	if filter.Site != "" {
		query += ` AND site = ?`
		args = append(args, filter.Site)
	}
	query += ` ORDER BY created_at DESC`

	limit := filter.Limit
	if limit <= 0 {
		limit = 100
	}
	query += ` LIMIT ?`
	args = append(args, limit)

	if filter.Offset > 0 {
		query += ` OFFSET ?`
		args = append(args, filter.Offset)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, eris.Wrap(err, "sqlite: list evaluations")
	}
	defer rows.Close()

	var evals []Evaluation
	for rows.Next() {
		var e Evaluation
		var reportJSON string
		if err := rows.Scan(&e.ID, &e.Kind, &e.Site, &reportJSON, &e.CreatedAt); err != nil {
			return nil, eris.Wrap(err, "sqlite: scan evaluation")
		}
		e.Report = json.RawMessage(reportJSON)
		evals = append(evals, e)
	}
	return evals, eris.Wrap(rows.Err(), "sqlite: list evaluations iterate")
}
