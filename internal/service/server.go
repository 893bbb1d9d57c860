// Package service wires the pokedex record set into an MCP server.
package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"pokedex-mcp/internal/pokedex"
)

const (
	// serverName identifies this MCP server to clients.
	serverName = "pokedex-mcp"
	// serverVersion identifies the MCP server version.
	serverVersion = "0.1.0"
)

// TransportKind identifies the transport serving the MCP session.
type TransportKind string

const (
	// TransportStdio uses standard input/output for MCP.
	TransportStdio TransportKind = "stdio"
	// TransportHTTP serves the REST-style HTTP surface instead of an
	// MCP session.
	TransportHTTP TransportKind = "http"
)

// Server hosts the MCP server over a pokedex record set.
type Server struct {
	mcpServer *mcp.Server
	dex       pokedex.Pokedex
}

// New creates a configured MCP server serving the given record set.
func New(dex pokedex.Pokedex) *Server {
	mcpServer := mcp.NewServer(&mcp.Implementation{Name: serverName, Version: serverVersion}, nil)

	for _, resource := range Resources(dex) {
		mcpServer.AddResource(resource, RecordResourceHandler(dex))
	}
	mcpServer.AddResourceTemplate(RecordResourceTemplate(), RecordResourceHandler(dex))
	mcp.AddTool(mcpServer, GetStatsTool(), GetStatsHandler(dex))

	return &Server{mcpServer: mcpServer, dex: dex}
}

// Serve starts the MCP server on stdio and blocks until it stops or the
// context ends.
func (s *Server) Serve(ctx context.Context) error {
	return s.serveWithTransport(ctx, &mcp.StdioTransport{})
}

// serveWithTransport starts the MCP server using the provided transport.
// Context cancellation is a clean shutdown, not an error.
func (s *Server) serveWithTransport(ctx context.Context, transport mcp.Transport) error {
	if s == nil || s.mcpServer == nil {
		return fmt.Errorf("MCP server is not configured")
	}
	if ctx == nil {
		ctx = context.Background()
	}
	err := s.mcpServer.Run(ctx, transport)
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		err = nil
	}
	if err != nil {
		return fmt.Errorf("serve MCP: %w", err)
	}
	return nil
}
