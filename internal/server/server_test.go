package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"pokedex-mcp/internal/pokedex"
)

func TestHealth(t *testing.T) {
	s := New(Config{}, pokedex.Default())
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rr := httptest.NewRecorder()
	s.Router().ServeHTTP(rr, req)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
}

func TestAuth(t *testing.T) {
	s := New(Config{Token: "x"}, pokedex.Default())

	// Unauthorized
	req := httptest.NewRequest(http.MethodGet, "/mcp/tools", nil)
	rr := httptest.NewRecorder()
	s.Router().ServeHTTP(rr, req)
	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rr.Code)
	}

	// Authorized
	req = httptest.NewRequest(http.MethodGet, "/mcp/tools", nil)
	req.Header.Set("Authorization", "Bearer x")
	rr = httptest.NewRecorder()
	s.Router().ServeHTTP(rr, req)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
}

func TestListResources(t *testing.T) {
	s := New(Config{}, pokedex.Default())
	req := httptest.NewRequest(http.MethodGet, "/mcp/resources", nil)
	rr := httptest.NewRecorder()
	s.Router().ServeHTTP(rr, req)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}

	var resp struct {
		Resources []Resource `json:"resources"`
	}
	if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(resp.Resources) != 1 {
		t.Fatalf("expected 1 resource, got %d", len(resp.Resources))
	}
	if resp.Resources[0].URI != "pokemon://pikachu" {
		t.Fatalf("expected URI pokemon://pikachu, got %q", resp.Resources[0].URI)
	}
	if resp.Resources[0].MimeType != "application/json" {
		t.Fatalf("expected mimeType application/json, got %q", resp.Resources[0].MimeType)
	}
}

func TestReadResource(t *testing.T) {
	s := New(Config{}, pokedex.Default())

	// Two reads: the second is served from the render cache and must match.
	var bodies []string
	for i := 0; i < 2; i++ {
		req := httptest.NewRequest(http.MethodGet, "/mcp/resources/read?uri=pokemon://pikachu", nil)
		rr := httptest.NewRecorder()
		s.Router().ServeHTTP(rr, req)
		if rr.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rr.Code)
		}
		bodies = append(bodies, rr.Body.String())
	}
	if bodies[0] != bodies[1] {
		t.Fatal("expected identical bodies across reads")
	}

	var record pokedex.Record
	if err := json.Unmarshal([]byte(bodies[0]), &record); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if record.Name != "Pikachu" {
		t.Fatalf("expected name Pikachu, got %q", record.Name)
	}
}

func TestReadResourceUnknownID(t *testing.T) {
	s := New(Config{}, pokedex.Default())
	req := httptest.NewRequest(http.MethodGet, "/mcp/resources/read?uri=pokemon://missingno", nil)
	rr := httptest.NewRecorder()
	s.Router().ServeHTTP(rr, req)
	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rr.Code)
	}

	var resp map[string]string
	if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if !strings.Contains(resp["error"], "missingno") {
		t.Fatalf("expected error to carry the id, got %q", resp["error"])
	}
}

func TestReadResourceRequiresURI(t *testing.T) {
	s := New(Config{}, pokedex.Default())
	req := httptest.NewRequest(http.MethodGet, "/mcp/resources/read", nil)
	rr := httptest.NewRecorder()
	s.Router().ServeHTTP(rr, req)
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rr.Code)
	}
}

func TestListTools(t *testing.T) {
	s := New(Config{}, pokedex.Default())
	req := httptest.NewRequest(http.MethodGet, "/mcp/tools", nil)
	rr := httptest.NewRecorder()
	s.Router().ServeHTTP(rr, req)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}

	var resp struct {
		Tools []Tool `json:"tools"`
	}
	if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(resp.Tools) != 1 || resp.Tools[0].Name != "get_stats" {
		t.Fatalf("expected single get_stats tool, got %+v", resp.Tools)
	}
	required, _ := resp.Tools[0].InputSchema["required"].([]interface{})
	if len(required) != 1 || required[0] != "pokemon" {
		t.Fatalf("expected required pokemon field, got %v", required)
	}
}

func TestCallGetStats(t *testing.T) {
	s := New(Config{}, pokedex.Default())
	body, _ := json.Marshal(map[string]interface{}{"name": "get_stats", "arguments": map[string]interface{}{"pokemon": "Pikachu"}})
	req := httptest.NewRequest(http.MethodPost, "/mcp/call", bytes.NewReader(body))
	rr := httptest.NewRecorder()
	s.Router().ServeHTTP(rr, req)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}

	var resp CallResponse
	if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(resp.Content) != 1 || resp.Content[0].Type != "text" {
		t.Fatalf("expected single text block, got %+v", resp.Content)
	}

	var payload struct {
		Name  string        `json:"name"`
		Stats pokedex.Stats `json:"stats"`
	}
	if err := json.Unmarshal([]byte(resp.Content[0].Text), &payload); err != nil {
		t.Fatalf("invalid payload: %v", err)
	}
	if payload.Name != "Pikachu" {
		t.Fatalf("expected name Pikachu, got %q", payload.Name)
	}
	if payload.Stats.HP != 35 {
		t.Fatalf("expected hp 35, got %d", payload.Stats.HP)
	}
}

// TestCallGetStatsUnknownPokemon pins the soft failure as a 200 response
// whose text payload carries the error shape.
func TestCallGetStatsUnknownPokemon(t *testing.T) {
	s := New(Config{}, pokedex.Default())
	body, _ := json.Marshal(map[string]interface{}{"name": "get_stats", "arguments": map[string]interface{}{"pokemon": "missingno"}})
	req := httptest.NewRequest(http.MethodPost, "/mcp/call", bytes.NewReader(body))
	rr := httptest.NewRecorder()
	s.Router().ServeHTTP(rr, req)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}

	var resp CallResponse
	if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	var payload struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal([]byte(resp.Content[0].Text), &payload); err != nil {
		t.Fatalf("invalid payload: %v", err)
	}
	if payload.Error != "Pokemon missingno not found" {
		t.Fatalf("unexpected soft failure %q", payload.Error)
	}
}

func TestCallUnknownTool(t *testing.T) {
	s := New(Config{}, pokedex.Default())
	body, _ := json.Marshal(map[string]interface{}{"name": "bogus_tool", "arguments": map[string]interface{}{}})
	req := httptest.NewRequest(http.MethodPost, "/mcp/call", bytes.NewReader(body))
	rr := httptest.NewRecorder()
	s.Router().ServeHTTP(rr, req)
	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rr.Code)
	}

	var resp map[string]string
	if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if !strings.Contains(resp["error"], "bogus_tool") {
		t.Fatalf("expected error to carry the tool name, got %q", resp["error"])
	}
}
