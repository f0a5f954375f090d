package store

import (
	"context"
	"encoding/json"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/spetersoncode/imagify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testEntry(i int) HistoryEntry {
	return HistoryEntry{
		ID:            fmt.Sprintf("id-%d", i),
		Prompt:        fmt.Sprintf("prompt %d", i),
		ImageURL:      fmt.Sprintf("https://cdn.example.com/%d.png", i),
		RevisedPrompt: fmt.Sprintf("revised %d", i),
		Settings:      imagify.DefaultSettings(),
		Timestamp:     time.Date(2026, 1, 1, 0, 0, i, 0, time.UTC),
	}
}

func TestHistoryStore_AppendNewestFirst(t *testing.T) {
	ctx := context.Background()
	history := NewHistoryStore(nil)

	require.NoError(t, history.Append(ctx, testEntry(1)))
	require.NoError(t, history.Append(ctx, testEntry(2)))
	require.NoError(t, history.Append(ctx, testEntry(3)))

	entries := history.Entries()
	require.Len(t, entries, 3)
	assert.Equal(t, "prompt 3", entries[0].Prompt)
	assert.Equal(t, "prompt 1", entries[2].Prompt)
}

func TestHistoryStore_CapEvictsOldest(t *testing.T) {
	ctx := context.Background()
	history := NewHistoryStore(nil)

	for i := 1; i <= 25; i++ {
		require.NoError(t, history.Append(ctx, testEntry(i)))
		assert.LessOrEqual(t, history.Len(), MaxHistoryEntries)
	}

	entries := history.Entries()
	require.Len(t, entries, MaxHistoryEntries)
	assert.Equal(t, "prompt 25", entries[0].Prompt)
	assert.Equal(t, "prompt 6", entries[MaxHistoryEntries-1].Prompt)
}

func TestHistoryStore_PersistsAndReloads(t *testing.T) {
	ctx := context.Background()
	adapter := NewMemoryAdapter()

	history := NewHistoryStore(adapter)
	require.NoError(t, history.Append(ctx, testEntry(1)))
	require.NoError(t, history.Append(ctx, testEntry(2)))

	// A fresh store over the same adapter sees the same sequence.
	reloaded := NewHistoryStore(adapter)
	reloaded.Reload(ctx)

	assert.Equal(t, history.Entries(), reloaded.Entries())
}

func TestHistoryStore_ReloadFileRoundTrip(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "state.json")

	history := NewHistoryStore(NewFileAdapter(path))
	entry := testEntry(1)
	entry.IsMock = true
	require.NoError(t, history.Append(ctx, entry))

	reloaded := NewHistoryStore(NewFileAdapter(path))
	reloaded.Reload(ctx)

	entries := reloaded.Entries()
	require.Len(t, entries, 1)
	assert.Equal(t, entry.ID, entries[0].ID)
	assert.Equal(t, entry.Settings, entries[0].Settings)
	assert.True(t, entries[0].IsMock)
	assert.True(t, entry.Timestamp.Equal(entries[0].Timestamp))
}

func TestHistoryStore_ReloadMissingKey(t *testing.T) {
	history := NewHistoryStore(nil)
	history.Reload(context.Background())
	assert.Equal(t, 0, history.Len())
}

func TestHistoryStore_ReloadCorruptData(t *testing.T) {
	ctx := context.Background()
	adapter := NewMemoryAdapter()
	require.NoError(t, adapter.Set(ctx, HistoryKey, json.RawMessage(`{"not": "a list"}`)))

	// Corrupt data degrades to an empty history, it never fails startup.
	history := NewHistoryStore(adapter)
	history.Reload(ctx)
	assert.Equal(t, 0, history.Len())
}

func TestHistoryStore_ReloadTruncatesOversized(t *testing.T) {
	ctx := context.Background()
	adapter := NewMemoryAdapter()

	oversized := make([]HistoryEntry, MaxHistoryEntries+5)
	for i := range oversized {
		oversized[i] = testEntry(i)
	}
	raw, err := json.Marshal(oversized)
	require.NoError(t, err)
	require.NoError(t, adapter.Set(ctx, HistoryKey, raw))

	history := NewHistoryStore(adapter)
	history.Reload(ctx)
	assert.Equal(t, MaxHistoryEntries, history.Len())
}

func TestHistoryStore_JSONKeys(t *testing.T) {
	raw, err := json.Marshal(testEntry(1))
	require.NoError(t, err)

	var m map[string]any
	require.NoError(t, json.Unmarshal(raw, &m))
	for _, key := range []string{"id", "prompt", "imageUrl", "revisedPrompt", "settings", "timestamp", "isMock"} {
		assert.Contains(t, m, key)
	}
}

func TestHistoryStore_Clear(t *testing.T) {
	ctx := context.Background()
	adapter := NewMemoryAdapter()
	history := NewHistoryStore(adapter)

	require.NoError(t, history.Append(ctx, testEntry(1)))
	require.NoError(t, history.Clear(ctx))
	assert.Equal(t, 0, history.Len())

	has, err := adapter.Has(ctx, HistoryKey)
	require.NoError(t, err)
	assert.False(t, has)
}

func TestHistoryStore_EntriesReturnsCopy(t *testing.T) {
	ctx := context.Background()
	history := NewHistoryStore(nil)
	require.NoError(t, history.Append(ctx, testEntry(1)))

	entries := history.Entries()
	entries[0].Prompt = "mutated"
	assert.Equal(t, "prompt 1", history.Entries()[0].Prompt)
}
