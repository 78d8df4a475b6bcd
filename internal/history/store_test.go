package history

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codelift/codelift/internal/assess"
)

func openStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "history", ".codelift.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func sampleReport(generatedAt time.Time) *assess.Report {
	return &assess.Report{
		Root:       "/srv/legacy-app",
		TotalFiles: 120,
		TotalLines: 34000,
		LargeFiles: []assess.LargeFile{
			{Path: "core/user.py", Lines: 912},
			{Path: "core/orders.py", Lines: 640},
		},
		ComplexFunctions: []assess.ComplexFunction{
			{Path: "core/user.py", Name: "sync_all", Score: 14},
		},
		Todos: []assess.TodoComment{
			{File: "user.py", Line: 12, Text: "# TODO: remove"},
		},
		TestFiles:   9,
		Framework:   "Django",
		GeneratedAt: generatedAt,
	}
}

func TestRecordAndListRuns(t *testing.T) {
	store := openStore(t)
	ctx := context.Background()

	id, err := store.RecordRun(ctx, sampleReport(time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)))
	require.NoError(t, err)
	assert.NotEmpty(t, id)

	runs, err := store.ListRuns(ctx, 10)
	require.NoError(t, err)
	require.Len(t, runs, 1)

	run := runs[0]
	assert.Equal(t, id, run.ID)
	assert.Equal(t, "/srv/legacy-app", run.Root)
	assert.Equal(t, 120, run.TotalFiles)
	assert.Equal(t, 34000, run.TotalLines)
	assert.Equal(t, 2, run.LargeFiles, "stores counts, not the finding lists")
	assert.Equal(t, 1, run.ComplexFunctions)
	assert.Equal(t, 1, run.Todos)
	assert.Equal(t, 9, run.TestFiles)
	assert.Equal(t, "Django", run.Framework)
	assert.Equal(t, time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC), run.CreatedAt.UTC())
}

func TestListRuns_NewestFirst(t *testing.T) {
	store := openStore(t)
	ctx := context.Background()

	base := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	var ids []string
	for i := 0; i < 3; i++ {
		id, err := store.RecordRun(ctx, sampleReport(base.Add(time.Duration(i)*time.Hour)))
		require.NoError(t, err)
		ids = append(ids, id)
	}

	runs, err := store.ListRuns(ctx, 10)
	require.NoError(t, err)
	require.Len(t, runs, 3)
	assert.Equal(t, ids[2], runs[0].ID)
	assert.Equal(t, ids[1], runs[1].ID)
	assert.Equal(t, ids[0], runs[2].ID)
}

func TestListRuns_LimitAndDefault(t *testing.T) {
	store := openStore(t)
	ctx := context.Background()

	base := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 25; i++ {
		_, err := store.RecordRun(ctx, sampleReport(base.Add(time.Duration(i)*time.Minute)))
		require.NoError(t, err)
	}

	runs, err := store.ListRuns(ctx, 5)
	require.NoError(t, err)
	assert.Len(t, runs, 5)

	runs, err = store.ListRuns(ctx, 0)
	require.NoError(t, err)
	assert.Len(t, runs, 20, "non-positive limit falls back to 20")
}

func TestOpen_EmptyDatabaseListsNothing(t *testing.T) {
	store := openStore(t)

	runs, err := store.ListRuns(context.Background(), 10)
	require.NoError(t, err)
	assert.Empty(t, runs)
}

func TestOpen_Reopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".codelift.db")
	ctx := context.Background()

	store, err := Open(path)
	require.NoError(t, err)
	id, err := store.RecordRun(ctx, sampleReport(time.Now()))
	require.NoError(t, err)
	require.NoError(t, store.Close())

	reopened, err := Open(path)
	require.NoError(t, err)
	defer reopened.Close()

	runs, err := reopened.ListRuns(ctx, 10)
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Equal(t, id, runs[0].ID)
}
