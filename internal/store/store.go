// Package store persists evaluation reports so past analyses can be listed
// and replayed. Two backends are supported: SQLite for local single-user use
// and Postgres for shared deployments.
package store

import (
	"context"
	"encoding/json"
	"time"

	"github.com/rotisserie/eris"
)

// Evaluation kinds, one per analysis path.
const (
	KindScore   = "score"
	KindRank    = "rank"
	KindCompare = "compare"
)

// Evaluation is one persisted analysis result. Report holds the full report
// document as produced by the engine; the store does not interpret it.
type Evaluation struct {
	ID        string          `json:"id"`
	Kind      string          `json:"kind"`
	Site      string          `json:"site"`
	Report    json.RawMessage `json:"report"`
	CreatedAt time.Time       `json:"created_at"`
}

// Filter specifies criteria for listing evaluations.
type Filter struct {
	Kind   string `json:"kind,omitempty"`
	Site   string `json:"site,omitempty"`
	Limit  int    `json:"limit,omitempty"`
	Offset int    `json:"offset,omitempty"`
}

// Store defines the persistence interface for evaluation history.
type Store interface {
	SaveEvaluation(ctx context.Context, kind, site string, report any) (*Evaluation, error)
	GetEvaluation(ctx context.Context, id string) (*Evaluation, error)
	ListEvaluations(ctx context.Context, filter Filter) ([]Evaluation, error)

	Migrate(ctx context.Context) error
	Close() error
}

// Open creates a Store for the given driver. The dsn is a file path for
// sqlite and a connection string for postgres.
func Open(ctx context.Context, driver, dsn string) (Store, error) {
	switch driver {
	case "sqlite":
		return NewSQLite(dsn)
	case "postgres":
		return NewPostgres(ctx, dsn, nil)
	default:
		return nil, eris.Errorf("store: unknown driver %q", driver)
	}
}
