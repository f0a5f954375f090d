// Package store provides persistence for the imagify generation history.
//
// [HistoryStore] keeps a bounded, newest-first log of successful
// generations and persists it through the [Adapter] interface. Two
// adapters ship with the package: [MemoryAdapter] for tests and ephemeral
// sessions, and [FileAdapter] for a localStorage-style JSON file on disk.
//
// # Usage
//
//	adapter := store.NewFileAdapter(filepath.Join(home, ".imagify", "state.json"))
//	history := store.NewHistoryStore(adapter)
//	history.Reload(ctx) // tolerates missing or corrupt data
//
//	err := history.Append(ctx, entry)
//
// # Custom Adapters
//
// Implement the Adapter interface for custom persistence, e.g. Redis or a
// SQL table:
//
//	type RedisAdapter struct { ... }
//
//	func (r *RedisAdapter) Get(ctx context.Context, key string) (json.RawMessage, bool, error) { ... }
//	func (r *RedisAdapter) Set(ctx context.Context, key string, value json.RawMessage) error { ... }
//	// ... implement remaining methods
package store
