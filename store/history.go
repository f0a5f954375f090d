package store

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"github.com/spetersoncode/imagify"
)

// HistoryKey is the adapter key under which the history sequence is stored.
const HistoryKey = "imagify_history"

// MaxHistoryEntries caps the number of retained generations. Appending
// beyond the cap evicts the oldest entry.
const MaxHistoryEntries = 20

// HistoryEntry records one successful generation. Entries are immutable
// once created.
type HistoryEntry struct {
	ID            string           `json:"id"`
	Prompt        string           `json:"prompt"`
	ImageURL      string           `json:"imageUrl"`
	RevisedPrompt string           `json:"revisedPrompt"`
	Settings      imagify.Settings `json:"settings"`
	Timestamp     time.Time        `json:"timestamp"`
	IsMock        bool             `json:"isMock"`
}

// HistoryStore manages a bounded, newest-first log of past generations
// with persistence support.
type HistoryStore struct {
	mu      sync.RWMutex
	entries []HistoryEntry
	adapter Adapter
}

// NewHistoryStore creates a HistoryStore with the given adapter.
// If adapter is nil, a default in-memory adapter is used.
func NewHistoryStore(adapter Adapter) *HistoryStore {
	if adapter == nil {
		adapter = NewMemoryAdapter()
	}
	return &HistoryStore{
		entries: make([]HistoryEntry, 0),
		adapter: adapter,
	}
}

// Reload loads previously persisted history from the adapter. A read or
// parse failure is logged and leaves the store empty; it never fails the
// caller, so a corrupt history file cannot block startup.
func (h *HistoryStore) Reload(ctx context.Context) {
	raw, ok, err := h.adapter.Get(ctx, HistoryKey)
	if err != nil {
		slog.Warn("failed to read generation history", "key", HistoryKey, "error", err)
		return
	}
	if !ok {
		return
	}

	var entries []HistoryEntry
	if err := json.Unmarshal(raw, &entries); err != nil {
		slog.Warn("failed to parse generation history", "key", HistoryKey, "error", err)
		return
	}
	if len(entries) > MaxHistoryEntries {
		entries = entries[:MaxHistoryEntries]
	}

	h.mu.Lock()
	h.entries = entries
	h.mu.Unlock()
}

// Append prepends an entry, truncates to the most recent MaxHistoryEntries,
// and persists the resulting sequence. The in-memory append always takes
// effect; a persistence failure is returned so callers can log it, but the
// store remains consistent with the generation that just happened.
func (h *HistoryStore) Append(ctx context.Context, entry HistoryEntry) error {
	h.mu.Lock()
	h.entries = append([]HistoryEntry{entry}, h.entries...)
	if len(h.entries) > MaxHistoryEntries {
		h.entries = h.entries[:MaxHistoryEntries]
	}
	snapshot := make([]HistoryEntry, len(h.entries))
	copy(snapshot, h.entries)
	h.mu.Unlock()

	raw, err := json.Marshal(snapshot)
	if err != nil {
		return &SerializationError{Key: HistoryKey, Err: err}
	}
	return h.adapter.Set(ctx, HistoryKey, raw)
}

// Entries returns a copy of all entries, newest first.
func (h *HistoryStore) Entries() []HistoryEntry {
	h.mu.RLock()
	defer h.mu.RUnlock()
	result := make([]HistoryEntry, len(h.entries))
	copy(result, h.entries)
	return result
}

// Len returns the number of entries.
func (h *HistoryStore) Len() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.entries)
}

// Clear removes all entries and the persisted sequence.
func (h *HistoryStore) Clear(ctx context.Context) error {
	h.mu.Lock()
	h.entries = make([]HistoryEntry, 0)
	h.mu.Unlock()
	return h.adapter.Delete(ctx, HistoryKey)
}
