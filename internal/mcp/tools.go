package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/dshills/wordfreq/internal/storage"
)

// MCP error codes
const (
	ErrorCodeInvalidParams = -32602 // Invalid method parameters
	ErrorCodeInternalError = -32603 // Internal JSON-RPC error
	ErrorCodeWordNotFound  = -32001 // Word has never been counted
)

// handleTopWords handles the top_words tool invocation
func (s *Server) handleTopWords(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, ok := request.Params.Arguments.(map[string]interface{})
	if !ok {
		args = map[string]interface{}{}
	}

	limit := getIntDefault(args, "limit", 20)
	if limit < 1 || limit > 1000 {
		return nil, newMCPError(ErrorCodeInvalidParams, "limit must be between 1 and 1000", map[string]interface{}{
			"param": "limit",
			"value": limit,
		})
	}

	rows, err := s.store.TopWords(ctx, limit)
	if err != nil {
		return nil, newMCPError(ErrorCodeInternalError, "query failed", map[string]interface{}{
			"error": err.Error(),
		})
	}

	words := make([]map[string]interface{}, 0, len(rows))
	for _, wc := range rows {
		words = append(words, map[string]interface{}{
			"word":  wc.Word,
			"count": wc.Count,
		})
	}

	return mcp.NewToolResultText(formatJSON(map[string]interface{}{
		"words": words,
		"limit": limit,
	})), nil
}

// handleWordCount handles the word_count tool invocation
func (s *Server) handleWordCount(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, ok := request.Params.Arguments.(map[string]interface{})
	if !ok {
		return nil, newMCPError(ErrorCodeInvalidParams, "invalid arguments", nil)
	}

	word, ok := args["word"].(string)
	if !ok || strings.TrimSpace(word) == "" {
		return nil, newMCPError(ErrorCodeInvalidParams, "word parameter is required", map[string]interface{}{
			"param":  "word",
			"reason": "missing or empty",
		})
	}
	word = strings.ToLower(strings.TrimSpace(word))

	count, err := s.store.WordCount(ctx, word)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, newMCPError(ErrorCodeWordNotFound, "word not found", map[string]interface{}{
			"word": word,
		})
	}
	if err != nil {
		return nil, newMCPError(ErrorCodeInternalError, "query failed", map[string]interface{}{
			"error": err.Error(),
		})
	}

	return mcp.NewToolResultText(formatJSON(map[string]interface{}{
		"word":  word,
		"count": count,
	})), nil
}

// handleStoreStats handles the store_stats tool invocation
func (s *Server) handleStoreStats(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	st, err := s.store.Stats(ctx)
	if err != nil {
		return nil, newMCPError(ErrorCodeInternalError, "query failed", map[string]interface{}{
			"error": err.Error(),
		})
	}

	return mcp.NewToolResultText(formatJSON(map[string]interface{}{
		"distinct_words":    st.Words,
		"total_occurrences": st.Total,
	})), nil
}

// Helper functions

// newMCPError creates a properly formatted MCP error
func newMCPError(code int, message string, data interface{}) error {
	// MCP errors are returned as regular errors, the framework handles encoding
	return &MCPError{
		Code:    code,
		Message: message,
		Data:    data,
	}
}

// MCPError represents an MCP protocol error
type MCPError struct {
	Code    int
	Message string
	Data    interface{}
}

func (e *MCPError) Error() string {
	return fmt.Sprintf("MCP error %d: %s", e.Code, e.Message)
}

// formatJSON formats a map as indented JSON
func formatJSON(data map[string]interface{}) string {
	bytes, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Sprintf("%v", data)
	}
	return string(bytes)
}

// getIntDefault extracts an integer parameter with a default value
func getIntDefault(args map[string]interface{}, key string, defaultValue int) int {
	if val, ok := args[key].(float64); ok {
		return int(val)
	}
	if val, ok := args[key].(int); ok {
		return val
	}
	return defaultValue
}
