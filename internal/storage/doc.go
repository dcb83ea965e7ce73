// Package storage persists cumulative word counts in a single-file SQLite
// database.
//
// The database runs in WAL mode so external readers can query the store
// while the pipeline's single writer is merging batches. Merges are bulk
// upserts inside one transaction per batch: insert on first observation,
// count += delta afterwards. Counts are never deleted during normal
// operation, so re-running a merge is cumulative by design.
//
// # Basic Usage
//
//	store, err := storage.Open("counts.db")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer store.Close()
//
//	if err := store.Merge(ctx, tally); err != nil {
//	    log.Fatal(err) // storage errors are fatal to the run
//	}
//
//	rows, err := store.ExportSorted(ctx)
//
// Open is idempotent: reopening an existing store continues merging into
// the counts already on disk.
//
// # Drivers
//
// Two SQLite drivers are supported via build tags. The default build uses
// the pure Go modernc.org/sqlite driver; building with -tags sqlite_cgo
// selects github.com/mattn/go-sqlite3 for deployments where cgo is
// available and throughput matters.
package storage
