// Package mcp exposes a read-only MCP (Model Context Protocol) query
// surface over an existing word-count store.
//
// The store's WAL mode admits concurrent readers while a pipeline run is
// merging, so the server can be pointed at a live store file without
// blocking or being blocked by the writer. The server never writes.
//
// Tools:
//
//   - top_words: the n highest-count words in export order
//   - word_count: the stored count for one word
//   - store_stats: distinct words and total occurrences
package mcp
