package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"pokedex-mcp/internal/pokedex"
)

const (
	// Scheme prefixes every pokedex resource URI.
	Scheme = "pokemon://"
	// mimeTypeJSON tags resource contents and descriptors.
	mimeTypeJSON = "application/json"
)

// Resources returns one resource descriptor per record, in canonical id order.
func Resources(dex pokedex.Pokedex) []*mcp.Resource {
	resources := make([]*mcp.Resource, 0, dex.Len())
	for _, id := range dex.IDs() {
		record, ok := dex.Lookup(id)
		if !ok {
			continue
		}
		resources = append(resources, &mcp.Resource{
			URI:         Scheme + id,
			Name:        record.Name,
			MIMEType:    mimeTypeJSON,
			Description: fmt.Sprintf("Information about %s", record.Name),
		})
	}
	return resources
}

// RecordResourceTemplate routes reads of any pokemon://{id} URI, including
// ids outside the listed set, so misses surface as NotFoundError instead of
// a generic routing failure.
func RecordResourceTemplate() *mcp.ResourceTemplate {
	return &mcp.ResourceTemplate{
		Name:        "pokemon",
		Description: "Full record for a pokemon. URI format: pokemon://{id}",
		MIMEType:    mimeTypeJSON,
		URITemplate: Scheme + "{id}",
	}
}

// RecordResourceHandler reads a single record addressed as pokemon://{id}.
func RecordResourceHandler(dex pokedex.Pokedex) mcp.ResourceHandler {
	return func(_ context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
		if req == nil || req.Params == nil || req.Params.URI == "" {
			return nil, fmt.Errorf("resource URI is required; use format %s{id}", Scheme)
		}
		uri := req.Params.URI

		data, err := ReadResource(dex, uri)
		if err != nil {
			return nil, err
		}

		return &mcp.ReadResourceResult{
			Contents: []*mcp.ResourceContents{
				{
					URI:      uri,
					MIMEType: mimeTypeJSON,
					Text:     string(data),
				},
			},
		}, nil
	}
}

// ReadResource resolves a resource URI to its rendered record body. An id
// that is not in the set fails with pokedex.NotFoundError.
func ReadResource(dex pokedex.Pokedex, uri string) ([]byte, error) {
	if !strings.HasPrefix(uri, Scheme) {
		return nil, fmt.Errorf("unsupported resource URI %q; use format %s{id}", uri, Scheme)
	}
	id := strings.TrimPrefix(uri, Scheme)
	record, ok := dex.Lookup(id)
	if !ok {
		return nil, &pokedex.NotFoundError{ID: id}
	}
	return RenderRecord(record)
}

// RenderRecord serializes a full record the way resource reads return it.
func RenderRecord(record pokedex.Record) ([]byte, error) {
	data, err := json.MarshalIndent(record, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal record: %w", err)
	}
	return data, nil
}
