package mcp

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/server"

	"github.com/dshills/wordfreq/internal/storage"
)

const (
	// ServerName is the MCP server name
	ServerName = "wordfreq"
	// ServerVersion is the current server version
	ServerVersion = "1.0.0"
)

// Server wraps the MCP server with the store it queries.
type Server struct {
	mcp   *server.MCPServer
	store *storage.Store
}

// NewServer opens the store at dbPath and registers the query tools.
func NewServer(dbPath string) (*Server, error) {
	if dbPath == "" {
		return nil, fmt.Errorf("store path is required")
	}

	store, err := storage.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open store: %w", err)
	}

	mcpServer := server.NewMCPServer(
		ServerName,
		ServerVersion,
	)

	s := &Server{
		mcp:   mcpServer,
		store: store,
	}

	s.mcp.AddTool(topWordsTool(), s.handleTopWords)
	s.mcp.AddTool(wordCountTool(), s.handleWordCount)
	s.mcp.AddTool(storeStatsTool(), s.handleStoreStats)

	return s, nil
}

// Serve starts the MCP server on stdio and blocks until shutdown.
func (s *Server) Serve(ctx context.Context) error {
	defer func() { _ = s.store.Close() }()
	return server.ServeStdio(s.mcp)
}
