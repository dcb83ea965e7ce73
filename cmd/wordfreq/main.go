package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/dshills/wordfreq/internal/chunker"
	"github.com/dshills/wordfreq/internal/filter"
	mcpserver "github.com/dshills/wordfreq/internal/mcp"
	"github.com/dshills/wordfreq/internal/nlp"
	"github.com/dshills/wordfreq/internal/pipeline"
	"github.com/dshills/wordfreq/internal/storage"
	"github.com/dshills/wordfreq/pkg/types"
)

var (
	version   = "dev"
	buildTime = "unknown"
)

func main() {
	log.SetOutput(os.Stderr)

	if len(os.Args) > 1 && os.Args[1] == "--version" {
		fmt.Printf("wordfreq\n")
		fmt.Printf("Version: %s\n", version)
		fmt.Printf("Build Time: %s\n", buildTime)
		fmt.Printf("Build Mode: %s\n", storage.BuildMode)
		fmt.Printf("SQLite Driver: %s\n", storage.DriverName)
		os.Exit(0)
	}

	if len(os.Args) > 1 && os.Args[1] == "serve" {
		if err := runServe(os.Args[2:]); err != nil {
			log.Fatalf("serve: %v", err)
		}
		return
	}

	if err := runPipeline(os.Args[1:]); err != nil {
		log.Fatalf("%v", err)
	}
}

// runPipeline executes a full ingest run: file -> chunks -> batches ->
// merged counts -> CSV export.
func runPipeline(args []string) error {
	fs := flag.NewFlagSet("wordfreq", flag.ExitOnError)
	var (
		inPath    = fs.String("in", "", "path to the UTF-8 input text file")
		outPath   = fs.String("out", "", "path to the output CSV file")
		storePath = fs.String("store", "", "path to the counts database (default: output path with .db extension)")
		chunkSize = fs.Int("chunk-size", types.DefaultConfig().ChunkSize, "target chunk size in characters")
		batchSize = fs.Int("batch-size", types.DefaultConfig().BatchSize, "chunks per NLP batch")
		nProcess  = fs.Int("n-process", types.DefaultConfig().Processes, "parallel NLP workers")
	)
	_ = fs.Parse(args)

	if *inPath == "" || *outPath == "" {
		fs.Usage()
		return fmt.Errorf("configuration: -in and -out are required")
	}

	cfg := types.Config{ChunkSize: *chunkSize, BatchSize: *batchSize, Processes: *nProcess}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration: %w", err)
	}

	if *storePath == "" {
		*storePath = derivedStorePath(*outPath)
	}

	start := time.Now()
	log.Printf("wordfreq v%s: input=%s chunk_size=%d batch_size=%d n_process=%d store=%s",
		version, *inPath, cfg.ChunkSize, cfg.BatchSize, cfg.Processes, *storePath)

	data, err := os.ReadFile(*inPath)
	if err != nil {
		return fmt.Errorf("input: %w", err)
	}

	text := string(data)
	sc, err := chunker.NewScanner(text, cfg.ChunkSize)
	if err != nil {
		return fmt.Errorf("configuration: %w", err)
	}
	log.Printf("estimated chunks: %d", chunker.EstimateCount(text, cfg.ChunkSize))

	engine, err := nlp.NewRuleEngine(cfg.Processes)
	if err != nil {
		return fmt.Errorf("configuration: %w", err)
	}

	store, err := storage.Open(*storePath)
	if err != nil {
		return fmt.Errorf("storage: %w", err)
	}
	defer func() { _ = store.Close() }()

	coord, err := pipeline.New(engine, filter.New(), store, cfg)
	if err != nil {
		return fmt.Errorf("configuration: %w", err)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	stats, err := coord.Run(ctx, sc)
	if err != nil {
		// Whatever merged before the failure is preserved in the store.
		return fmt.Errorf("pipeline: %w", err)
	}
	if stats.BatchesFailed > 0 {
		log.Printf("warning: %d batch(es) skipped; counts are partial", stats.BatchesFailed)
	}

	out, err := os.Create(*outPath)
	if err != nil {
		return fmt.Errorf("export: %w", err)
	}
	if err := store.ExportCSV(ctx, out); err != nil {
		_ = out.Close()
		return fmt.Errorf("export: %w", err)
	}
	if err := out.Close(); err != nil {
		return fmt.Errorf("export: %w", err)
	}

	log.Printf("done: %d words accepted, exported to %s in %s",
		stats.WordsAccepted, *outPath, time.Since(start))
	return nil
}

// runServe starts the read-only MCP query server over an existing store.
func runServe(args []string) error {
	fs := flag.NewFlagSet("wordfreq serve", flag.ExitOnError)
	storePath := fs.String("store", "", "path to the counts database")
	_ = fs.Parse(args)

	if *storePath == "" {
		fs.Usage()
		return fmt.Errorf("-store is required")
	}

	srv, err := mcpserver.NewServer(*storePath)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	errChan := make(chan error, 1)
	go func() {
		log.Println("MCP server ready, listening on stdio...")
		errChan <- srv.Serve(ctx)
	}()

	select {
	case sig := <-sigChan:
		log.Printf("received signal %v, shutting down", sig)
		cancel()
		return nil
	case err := <-errChan:
		return err
	}
}

// derivedStorePath turns "counts.csv" into "counts.db".
func derivedStorePath(outPath string) string {
	if strings.HasSuffix(outPath, ".csv") {
		return strings.TrimSuffix(outPath, ".csv") + ".db"
	}
	return outPath + ".db"
}
