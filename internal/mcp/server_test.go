package mcp

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dshills/wordfreq/internal/storage"
	"github.com/dshills/wordfreq/pkg/types"
)

func setupTestServer(t *testing.T) *Server {
	dbPath := filepath.Join(t.TempDir(), "counts.db")

	// Seed the store the server will open.
	store, err := storage.Open(dbPath)
	require.NoError(t, err)
	require.NoError(t, store.Merge(context.Background(), types.Tally{
		"cat": 5, "dog": 3, "run": 1,
	}))
	require.NoError(t, store.Close())

	srv, err := NewServer(dbPath)
	require.NoError(t, err)
	t.Cleanup(func() { _ = srv.store.Close() })
	return srv
}

func toolRequest(name string, args map[string]interface{}) mcp.CallToolRequest {
	return mcp.CallToolRequest{
		Params: mcp.CallToolParams{
			Name:      name,
			Arguments: args,
		},
	}
}

func TestNewServer_RequiresPath(t *testing.T) {
	_, err := NewServer("")
	assert.Error(t, err)
}

func TestHandleTopWords(t *testing.T) {
	srv := setupTestServer(t)

	result, err := srv.handleTopWords(context.Background(),
		toolRequest("top_words", map[string]interface{}{"limit": float64(2)}))
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.NotEmpty(t, result.Content)
}

func TestHandleTopWords_InvalidLimit(t *testing.T) {
	srv := setupTestServer(t)

	_, err := srv.handleTopWords(context.Background(),
		toolRequest("top_words", map[string]interface{}{"limit": float64(0)}))
	require.Error(t, err)

	var mcpErr *MCPError
	require.ErrorAs(t, err, &mcpErr)
	assert.Equal(t, ErrorCodeInvalidParams, mcpErr.Code)
}

func TestHandleWordCount(t *testing.T) {
	srv := setupTestServer(t)

	result, err := srv.handleWordCount(context.Background(),
		toolRequest("word_count", map[string]interface{}{"word": "Cat"}))
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.NotEmpty(t, result.Content)
}

func TestHandleWordCount_Missing(t *testing.T) {
	srv := setupTestServer(t)

	_, err := srv.handleWordCount(context.Background(),
		toolRequest("word_count", map[string]interface{}{"word": "absent"}))
	require.Error(t, err)

	var mcpErr *MCPError
	require.ErrorAs(t, err, &mcpErr)
	assert.Equal(t, ErrorCodeWordNotFound, mcpErr.Code)
}

func TestHandleWordCount_EmptyParam(t *testing.T) {
	srv := setupTestServer(t)

	_, err := srv.handleWordCount(context.Background(),
		toolRequest("word_count", map[string]interface{}{}))
	require.Error(t, err)

	var mcpErr *MCPError
	require.ErrorAs(t, err, &mcpErr)
	assert.Equal(t, ErrorCodeInvalidParams, mcpErr.Code)
}

func TestHandleStoreStats(t *testing.T) {
	srv := setupTestServer(t)

	result, err := srv.handleStoreStats(context.Background(),
		toolRequest("store_stats", nil))
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.NotEmpty(t, result.Content)
}
