// ABOUTME: MCP server setup for the dolphin fitness tracker.
// ABOUTME: Wraps the MCP server around a Tracker bound to the data file.
package mcp

import (
	"context"
	"sync"

	"github.com/harperreed/dolphin/internal/storage"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// Server wraps the MCP server with tracker access.
// Handlers hold mu and reload the data file before touching the tracker.
type Server struct {
	mcpServer *mcp.Server
	tracker   *storage.Tracker
	mu        sync.Mutex
}

// NewServer creates a new MCP server for the given tracker.
// The tracker's confirmation output must not be stdout.
func NewServer(tracker *storage.Tracker, version string) (*Server, error) {
	mcpServer := mcp.NewServer(
		&mcp.Implementation{
			Name:    "dolphin",
			Version: version,
		},
		nil,
	)

	s := &Server{
		mcpServer: mcpServer,
		tracker:   tracker,
	}

	s.registerTools()
	s.registerResources()

	return s, nil
}

// Serve starts the MCP server using stdio transport.
func (s *Server) Serve(ctx context.Context) error {
	return s.mcpServer.Run(ctx, &mcp.StdioTransport{})
}

// fresh locks the server and reloads the tracker. Callers must call the
// returned unlock function.
func (s *Server) fresh() (func(), error) {
	s.mu.Lock()
	if err := s.tracker.Reload(); err != nil {
		s.mu.Unlock()
		return nil, err
	}
	return s.mu.Unlock, nil
}
