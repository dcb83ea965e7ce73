package storage

import (
	"context"
	"database/sql"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/dshills/wordfreq/pkg/types"
)

var (
	// ErrNotFound is returned when a requested word has never been counted
	ErrNotFound = errors.New("not found")
)

// mergeBatchRows caps the number of rows per upsert statement. SQLite's
// default variable limit is 999; two variables per row keeps a comfortable
// margin.
const mergeBatchRows = 400

// WordCount is one persisted (word, count) row.
type WordCount struct {
	Word  string
	Count int64
}

// Stats summarizes the store contents.
type Stats struct {
	Words int64 // distinct words
	Total int64 // sum of all counts
}

// Store is the durable word -> count aggregation store. It supports one
// writer plus concurrent external readers (WAL mode).
type Store struct {
	db *sql.DB
}

// openDatabase opens a SQLite database with appropriate settings
func openDatabase(dbPath string) (*sql.DB, error) {
	db, err := sql.Open(DriverName, dbPath)
	if err != nil {
		return nil, err
	}

	// WAL keeps readers unblocked while a merge transaction is open.
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to enable WAL mode: %w", err)
	}
	if _, err := db.Exec("PRAGMA synchronous=NORMAL"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to set synchronous mode: %w", err)
	}

	// Single writer; SQLite serializes writes anyway.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	return db, nil
}

// Open opens (or creates) the store at dbPath and ensures the schema.
// Opening an existing store is safe; merging continues from the counts
// already on disk.
func Open(dbPath string) (*Store, error) {
	db, err := openDatabase(dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := ApplyMigrations(context.Background(), db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to apply migrations: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Merge folds one batch tally into the stored counts: insert with
// count=delta on first observation, count += delta afterwards. The whole
// tally is applied in a single transaction using multi-row upserts, so a
// batch is one bulk operation, not one round-trip per word.
func (s *Store) Merge(ctx context.Context, tally types.Tally) error {
	if len(tally) == 0 {
		return nil
	}

	// Deterministic statement order for a fixed tally. Upserts commute, so
	// this is an aid to debugging and tests, not a correctness requirement.
	words := make([]string, 0, len(tally))
	for word := range tally {
		words = append(words, word)
	}
	sort.Strings(words)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin merge transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	for start := 0; start < len(words); start += mergeBatchRows {
		end := start + mergeBatchRows
		if end > len(words) {
			end = len(words)
		}
		if err := upsertRows(ctx, tx, words[start:end], tally); err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit merge: %w", err)
	}
	return nil
}

// upsertRows executes one multi-row upsert for a slice of words.
func upsertRows(ctx context.Context, tx *sql.Tx, words []string, tally types.Tally) error {
	var sb strings.Builder
	sb.WriteString("INSERT INTO words(word, count) VALUES ")
	args := make([]interface{}, 0, len(words)*2)
	for i, word := range words {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString("(?, ?)")
		args = append(args, word, tally[word])
	}
	sb.WriteString(" ON CONFLICT(word) DO UPDATE SET count = count + excluded.count")

	if _, err := tx.ExecContext(ctx, sb.String(), args...); err != nil {
		return fmt.Errorf("failed to upsert counts: %w", err)
	}
	return nil
}

// ExportSorted returns every row ordered by count descending, ties broken
// by word ascending for determinism.
func (s *Store) ExportSorted(ctx context.Context) ([]WordCount, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT word, count FROM words ORDER BY count DESC, word ASC")
	if err != nil {
		return nil, fmt.Errorf("failed to query counts: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var out []WordCount
	for rows.Next() {
		var wc WordCount
		if err := rows.Scan(&wc.Word, &wc.Count); err != nil {
			return nil, fmt.Errorf("failed to scan count row: %w", err)
		}
		out = append(out, wc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read count rows: %w", err)
	}
	return out, nil
}

// ExportCSV writes the sorted counts to w as "word,count" rows, no header.
func (s *Store) ExportCSV(ctx context.Context, w io.Writer) error {
	rows, err := s.ExportSorted(ctx)
	if err != nil {
		return err
	}

	cw := csv.NewWriter(w)
	for _, wc := range rows {
		if err := cw.Write([]string{wc.Word, strconv.FormatInt(wc.Count, 10)}); err != nil {
			return fmt.Errorf("failed to write CSV row: %w", err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("failed to flush CSV: %w", err)
	}
	return nil
}

// TopWords returns the n highest-count rows in export order.
func (s *Store) TopWords(ctx context.Context, n int) ([]WordCount, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT word, count FROM words ORDER BY count DESC, word ASC LIMIT ?", n)
	if err != nil {
		return nil, fmt.Errorf("failed to query top words: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var out []WordCount
	for rows.Next() {
		var wc WordCount
		if err := rows.Scan(&wc.Word, &wc.Count); err != nil {
			return nil, fmt.Errorf("failed to scan count row: %w", err)
		}
		out = append(out, wc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read count rows: %w", err)
	}
	return out, nil
}

// WordCount returns the stored count for word, or ErrNotFound.
func (s *Store) WordCount(ctx context.Context, word string) (int64, error) {
	var count int64
	err := s.db.QueryRowContext(ctx,
		"SELECT count FROM words WHERE word = ?", word).Scan(&count)
	if err == sql.ErrNoRows {
		return 0, ErrNotFound
	}
	if err != nil {
		return 0, fmt.Errorf("failed to query word count: %w", err)
	}
	return count, nil
}

// Stats returns the distinct-word and total-occurrence counts.
func (s *Store) Stats(ctx context.Context) (Stats, error) {
	var st Stats
	err := s.db.QueryRowContext(ctx,
		"SELECT COUNT(*), COALESCE(SUM(count), 0) FROM words").Scan(&st.Words, &st.Total)
	if err != nil {
		return Stats{}, fmt.Errorf("failed to query stats: %w", err)
	}
	return st, nil
}
