package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"pokedex-mcp/internal/pokedex"
)

// GetStatsInput is the MCP tool input for stat lookups.
type GetStatsInput struct {
	Pokemon string `json:"pokemon" jsonschema:"Name of the Pokemon (e.g., pikachu, charizard)"`
}

// StatsPayload is the successful get_stats payload.
type StatsPayload struct {
	Name  string        `json:"name"`
	Stats pokedex.Stats `json:"stats"`
}

// SoftFailure is the payload returned when get_stats misses. It is reported
// as normal text content with a successful result, never as a tool error.
type SoftFailure struct {
	Error string `json:"error"`
}

// GetStatsTool defines the MCP tool schema for stat lookups.
func GetStatsTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "get_stats",
		Description: "Get detailed stats for a specific Pokemon",
	}
}

// GetStatsHandler executes a stat lookup request.
func GetStatsHandler(dex pokedex.Pokedex) mcp.ToolHandlerFor[GetStatsInput, any] {
	return func(_ context.Context, _ *mcp.CallToolRequest, input GetStatsInput) (*mcp.CallToolResult, any, error) {
		data, err := RenderStats(dex, input.Pokemon)
		if err != nil {
			return nil, nil, err
		}
		return &mcp.CallToolResult{
			Content: []mcp.Content{
				&mcp.TextContent{Text: string(data)},
			},
		}, nil, nil
	}
}

// RenderStats produces the get_stats payload for the named pokemon. An
// unknown name yields the error-shaped payload, not a failure.
func RenderStats(dex pokedex.Pokedex, name string) ([]byte, error) {
	id := strings.ToLower(name)
	record, ok := dex.Lookup(id)
	if !ok {
		return marshalIndent(SoftFailure{Error: fmt.Sprintf("Pokemon %s not found", id)})
	}
	return marshalIndent(StatsPayload{Name: record.Name, Stats: record.Stats})
}

// CallTool dispatches a named tool invocation for callers outside an MCP
// session, such as the HTTP surface. Unregistered names fail with
// pokedex.UnknownToolError.
func CallTool(dex pokedex.Pokedex, name string, args map[string]any) ([]byte, error) {
	switch name {
	case GetStatsTool().Name:
		pokemon, _ := args["pokemon"].(string)
		if pokemon == "" {
			return nil, fmt.Errorf("argument %q is required", "pokemon")
		}
		return RenderStats(dex, pokemon)
	default:
		return nil, &pokedex.UnknownToolError{Name: name}
	}
}

func marshalIndent(v any) ([]byte, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal payload: %w", err)
	}
	return data, nil
}
