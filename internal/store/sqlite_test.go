package store

import (
	"context"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSQLite(t *testing.T) *SQLiteStore {
	t.Helper()
	s, err := NewSQLite(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	require.NoError(t, s.Migrate(context.Background()))
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestSQLiteStore_SaveAndGet(t *testing.T) {
	s := newTestSQLite(t)
	ctx := context.Background()

	report := map[string]any{"final_score": 74.25, "decision": "recommend"}
	saved, err := s.SaveEvaluation(ctx, KindScore, "zhongwei", report)
	require.NoError(t, err)
	assert.NotEmpty(t, saved.ID)
	assert.Equal(t, KindScore, saved.Kind)
	assert.False(t, saved.CreatedAt.IsZero())

	got, err := s.GetEvaluation(ctx, saved.ID)
	require.NoError(t, err)
	assert.Equal(t, saved.ID, got.ID)
	assert.Equal(t, "zhongwei", got.Site)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(got.Report, &decoded))
	assert.Equal(t, "recommend", decoded["decision"])
}

func TestSQLiteStore_GetNotFound(t *testing.T) {
	s := newTestSQLite(t)

	_, err := s.GetEvaluation(context.Background(), "no-such-id")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestSQLiteStore_ListFilters(t *testing.T) {
	s := newTestSQLite(t)
	ctx := context.Background()

	_, err := s.SaveEvaluation(ctx, KindScore, "beijing", map[string]any{"v": 1})
	require.NoError(t, err)
	_, err = s.SaveEvaluation(ctx, KindRank, "beijing", map[string]any{"v": 2})
	require.NoError(t, err)
	_, err = s.SaveEvaluation(ctx, KindRank, "guiyang", map[string]any{"v": 3})
	require.NoError(t, err)

	all, err := s.ListEvaluations(ctx, Filter{})
	require.NoError(t, err)
	assert.Len(t, all, 3)

	ranks, err := s.ListEvaluations(ctx, Filter{Kind: KindRank})
	require.NoError(t, err)
	assert.Len(t, ranks, 2)

	beijing, err := s.ListEvaluations(ctx, Filter{Site: "beijing"})
	require.NoError(t, err)
	assert.Len(t, beijing, 2)

	both, err := s.ListEvaluations(ctx, Filter{Kind: KindRank, Site: "guiyang"})
	require.NoError(t, err)
	require.Len(t, both, 1)
	assert.Equal(t, "guiyang", both[0].Site)
}

func TestSQLiteStore_ListLimit(t *testing.T) {
	s := newTestSQLite(t)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		_, err := s.SaveEvaluation(ctx, KindScore, "site", map[string]int{"i": i})
		require.NoError(t, err)
	}

	limited, err := s.ListEvaluations(ctx, Filter{Limit: 2})
	require.NoError(t, err)
	assert.Len(t, limited, 2)
}
