package report

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := OpenStore(filepath.Join(t.TempDir(), "crash.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestStoreRoundTrip(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	store := openTestStore(t)

	first := sampleFailure()
	first.At = time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)
	second := sampleFailure()
	second.Message = "later boom"
	second.At = time.Date(2026, 8, 2, 10, 0, 0, 0, time.UTC)

	require.NoError(t, store.Report(ctx, first))
	require.NoError(t, store.Report(ctx, second))

	got, err := store.List(ctx, 10)
	require.NoError(t, err)
	require.Len(t, got, 2)
	require.Equal(t, "later boom", got[0].Message, "newest first")
	require.Equal(t, first.ID, got[1].ID)
	require.True(t, got[1].At.Equal(first.At))
}

func TestStoreIgnoresDuplicateID(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	store := openTestStore(t)

	f := sampleFailure()
	require.NoError(t, store.Report(ctx, f))
	require.NoError(t, store.Report(ctx, f))

	got, err := store.List(ctx, 10)
	require.NoError(t, err)
	require.Len(t, got, 1)
}

func TestStorePrune(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	store := openTestStore(t)

	old := sampleFailure()
	old.At = time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	recent := sampleFailure()
	recent.At = time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)

	require.NoError(t, store.Report(ctx, old))
	require.NoError(t, store.Report(ctx, recent))

	n, err := store.Prune(ctx, time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	require.EqualValues(t, 1, n)

	got, err := store.List(ctx, 10)
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Equal(t, recent.ID, got[0].ID)
}
