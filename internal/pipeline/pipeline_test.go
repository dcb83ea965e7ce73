package pipeline

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dshills/wordfreq/internal/chunker"
	"github.com/dshills/wordfreq/internal/filter"
	"github.com/dshills/wordfreq/internal/nlp"
	"github.com/dshills/wordfreq/internal/storage"
	"github.com/dshills/wordfreq/pkg/types"
)

// fakeEngine tokenizes on whitespace with trivial lemmatization (lemma ==
// lower-cased surface) and flags "the" as a stop word. failOn poisons the
// n-th Analyze call (1-based) to exercise per-batch failure handling.
type fakeEngine struct {
	failOn int
	calls  int
}

var errEngineDown = errors.New("engine down")

func (e *fakeEngine) Analyze(_ context.Context, chunks []string) ([][]types.Unit, error) {
	e.calls++
	if e.failOn != 0 && e.calls == e.failOn {
		return nil, errEngineDown
	}
	out := make([][]types.Unit, len(chunks))
	for i, chunk := range chunks {
		for _, field := range strings.Fields(chunk) {
			word := strings.Trim(field, ".,!?")
			if word == "" {
				continue
			}
			lower := strings.ToLower(word)
			out[i] = append(out[i], types.Unit{
				Text:   word,
				Lemma:  lower,
				IsStop: lower == "the",
			})
		}
	}
	return out, nil
}

func testConfig() types.Config {
	return types.Config{ChunkSize: 10, BatchSize: 2, Processes: 1}
}

func setup(t *testing.T, engine nlp.Engine, cfg types.Config) (*Coordinator, *storage.Store) {
	store, err := storage.Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	coord, err := New(engine, filter.New(), store, cfg)
	require.NoError(t, err)
	return coord, store
}

func TestNew_InvalidConfig(t *testing.T) {
	store, err := storage.Open(":memory:")
	require.NoError(t, err)
	defer store.Close()

	_, err = New(&fakeEngine{}, filter.New(), store, types.Config{ChunkSize: 0, BatchSize: 4, Processes: 2})
	assert.ErrorIs(t, err, types.ErrChunkSizeInvalid)

	_, err = New(&fakeEngine{}, filter.New(), store, types.Config{ChunkSize: 10, BatchSize: 0, Processes: 2})
	assert.ErrorIs(t, err, types.ErrBatchSizeInvalid)

	_, err = New(&fakeEngine{}, filter.New(), store, types.Config{ChunkSize: 10, BatchSize: 4, Processes: 0})
	assert.ErrorIs(t, err, types.ErrProcessesInvalid)
}

func TestRun_EndToEnd(t *testing.T) {
	coord, store := setup(t, &fakeEngine{}, testConfig())
	ctx := context.Background()

	sc, err := chunker.NewScanner("The cat sat. The dog ran.", 10)
	require.NoError(t, err)

	stats, err := coord.Run(ctx, sc)
	require.NoError(t, err)
	assert.Zero(t, stats.BatchesFailed)
	assert.Equal(t, int64(4), stats.WordsAccepted)

	var buf bytes.Buffer
	require.NoError(t, store.ExportCSV(ctx, &buf))
	// Count descending, alphabetical tie-break.
	assert.Equal(t, "cat,1\ndog,1\nran,1\nsat,1\n", buf.String())
}

func TestRun_FailedBatchIsSkipped(t *testing.T) {
	text := strings.Repeat("apple banana cherry ", 20)
	coord, store := setup(t, &fakeEngine{failOn: 2}, testConfig())
	ctx := context.Background()

	sc, err := chunker.NewScanner(text, 20)
	require.NoError(t, err)

	stats, err := coord.Run(ctx, sc)
	require.NoError(t, err) // per-batch failures are not fatal
	assert.Equal(t, 1, stats.BatchesFailed)
	require.Len(t, stats.ErrorMessages, 1)
	assert.Contains(t, stats.ErrorMessages[0], "engine down")

	// Batches before and after the failed one were still merged.
	assert.Greater(t, stats.BatchesProcessed, 1)
	st, err := store.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(3), st.Words)
}

func TestRun_Deterministic(t *testing.T) {
	text := strings.Repeat("one two three four five six seven eight ", 50)

	export := func(batchSize int) string {
		cfg := types.Config{ChunkSize: 30, BatchSize: batchSize, Processes: 2}
		coord, store := setup(t, &fakeEngine{}, cfg)
		sc, err := chunker.NewScanner(text, cfg.ChunkSize)
		require.NoError(t, err)
		_, err = coord.Run(context.Background(), sc)
		require.NoError(t, err)

		var buf bytes.Buffer
		require.NoError(t, store.ExportCSV(context.Background(), &buf))
		return buf.String()
	}

	// Merge is commutative/associative over tallies: totals do not depend
	// on batching granularity.
	first := export(1)
	assert.Equal(t, first, export(3))
	assert.Equal(t, first, export(8))
}

func TestRun_EmptyInput(t *testing.T) {
	coord, store := setup(t, &fakeEngine{}, testConfig())
	ctx := context.Background()

	sc, err := chunker.NewScanner("", 10)
	require.NoError(t, err)

	stats, err := coord.Run(ctx, sc)
	require.NoError(t, err)
	assert.Zero(t, stats.BatchesProcessed)

	st, err := store.Stats(ctx)
	require.NoError(t, err)
	assert.Zero(t, st.Words)
}

func TestRun_Cancellation(t *testing.T) {
	coord, _ := setup(t, &fakeEngine{}, testConfig())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	sc, err := chunker.NewScanner("some words here", 10)
	require.NoError(t, err)

	_, err = coord.Run(ctx, sc)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRun_RealEngine(t *testing.T) {
	// Full stack: rule engine, real filter, real store.
	eng, err := nlp.NewRuleEngine(2)
	require.NoError(t, err)

	coord, store := setup(t, eng, types.Config{ChunkSize: 50, BatchSize: 4, Processes: 2})
	ctx := context.Background()

	sc, err := chunker.NewScanner("Cats ran quickly. The mice hid. Cats sat.", 50)
	require.NoError(t, err)

	_, err = coord.Run(ctx, sc)
	require.NoError(t, err)

	count, err := store.WordCount(ctx, "cat")
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)

	count, err = store.WordCount(ctx, "run")
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	count, err = store.WordCount(ctx, "mouse")
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	// "The" is a stop word; it must never reach the store.
	_, err = store.WordCount(ctx, "the")
	assert.ErrorIs(t, err, storage.ErrNotFound)
}
