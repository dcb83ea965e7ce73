package pipeline

import (
	"context"
	"fmt"
	"log"
	"runtime"
	"time"

	"github.com/dshills/wordfreq/internal/chunker"
	"github.com/dshills/wordfreq/internal/filter"
	"github.com/dshills/wordfreq/internal/nlp"
	"github.com/dshills/wordfreq/internal/storage"
	"github.com/dshills/wordfreq/pkg/types"
)

// Coordinator drives the pipeline: chunks -> engine -> filter -> tally ->
// store. It owns the transient per-batch tallies; the store owns the
// persisted counts.
type Coordinator struct {
	engine nlp.Engine
	filter *filter.Filter
	store  *storage.Store
	config types.Config
}

// Statistics describes one completed run.
type Statistics struct {
	BatchesProcessed int
	BatchesFailed    int
	ChunksProcessed  int
	WordsAccepted    int64
	WordsRejected    int64
	Duration         time.Duration
	ErrorMessages    []string
}

// New creates a coordinator. The configuration is validated up front so an
// invalid run never touches the engine or the store.
func New(engine nlp.Engine, f *filter.Filter, store *storage.Store, config types.Config) (*Coordinator, error) {
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &Coordinator{
		engine: engine,
		filter: f,
		store:  store,
		config: config,
	}, nil
}

// Run consumes the scanner to exhaustion, merging one tally per batch.
// It returns statistics for the run; the returned error is fatal (storage
// failure or cancellation), never a per-batch engine failure.
func (c *Coordinator) Run(ctx context.Context, sc *chunker.Scanner) (*Statistics, error) {
	start := time.Now()
	stats := &Statistics{}

	batch := make([]string, 0, c.config.BatchSize)
	batchNo := 0

	flush := func() error {
		if len(batch) == 0 {
			return nil
		}
		batchNo++
		if err := c.processBatch(ctx, batchNo, batch, stats); err != nil {
			return err
		}
		batch = batch[:0]
		// Batch-local unit slices and tallies are unreachable once
		// processBatch returns; collect them now rather than letting them
		// accumulate across a very large input.
		runtime.GC()
		return nil
	}

	for sc.Scan() {
		if err := ctx.Err(); err != nil {
			stats.Duration = time.Since(start)
			return stats, err
		}
		batch = append(batch, sc.Chunk().Text)
		if len(batch) == c.config.BatchSize {
			if err := flush(); err != nil {
				stats.Duration = time.Since(start)
				return stats, err
			}
		}
	}
	if err := flush(); err != nil {
		stats.Duration = time.Since(start)
		return stats, err
	}

	stats.Duration = time.Since(start)
	log.Printf("pipeline: %d batches merged (%d failed), %d chunks, %d words accepted in %s",
		stats.BatchesProcessed, stats.BatchesFailed, stats.ChunksProcessed,
		stats.WordsAccepted, stats.Duration)
	return stats, nil
}

// processBatch analyzes one batch, tallies accepted words, and merges the
// tally. Engine errors are recorded and swallowed; storage errors are
// returned and fatal.
func (c *Coordinator) processBatch(ctx context.Context, batchNo int, texts []string, stats *Statistics) error {
	unitsPerChunk, err := c.engine.Analyze(ctx, texts)
	if err != nil {
		log.Printf("pipeline: batch %d failed, skipping: %v", batchNo, err)
		stats.BatchesFailed++
		stats.ErrorMessages = append(stats.ErrorMessages,
			fmt.Sprintf("batch %d: %v", batchNo, err))
		return nil
	}

	tally := types.Tally{}
	for _, units := range unitsPerChunk {
		for _, u := range units {
			lemma, ok := c.filter.Apply(u)
			if !ok {
				stats.WordsRejected++
				continue
			}
			stats.WordsAccepted++
			tally.Add(lemma)
		}
	}

	if err := c.store.Merge(ctx, tally); err != nil {
		return fmt.Errorf("storage: %w", err)
	}

	stats.BatchesProcessed++
	stats.ChunksProcessed += len(texts)
	return nil
}
