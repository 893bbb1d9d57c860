// Package server provides the HTTP handlers and routing for the pokedex MCP surface.
package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"pokedex-mcp/internal/pokedex"
	"pokedex-mcp/internal/service"
)

// resourceTTL bounds how long a rendered resource body stays cached. Records
// are immutable, so the TTL only bounds memory, not staleness.
const resourceTTL = 12 * time.Hour

// Config contains server configuration values such as the auth token.
type Config struct {
	Token string
}

// Server contains the configured router, record set, and render cache.
type Server struct {
	cfg    Config
	router *chi.Mux
	dex    pokedex.Pokedex
	cache  *Cache
}

// New constructs a Server with middleware and routes configured.
func New(cfg Config, dex pokedex.Pokedex) *Server {
	s := &Server{
		cfg:    cfg,
		router: chi.NewRouter(),
		dex:    dex,
		cache:  NewCache(),
	}
	s.router.Use(middleware.RequestID)
	s.router.Use(middleware.RealIP)
	s.router.Use(middleware.Logger)
	s.router.Use(middleware.Recoverer)
	s.router.Use(middleware.Timeout(60 * time.Second))

	s.router.Get("/health", s.handleHealth)

	s.router.Route("/mcp", func(r chi.Router) {
		r.Use(s.auth)
		r.Get("/resources", s.handleListResources)
		r.Get("/resources/read", s.handleReadResource)
		r.Get("/tools", s.handleListTools)
		r.Post("/call", s.handleCall)
	})

	return s
}

// Router exposes the root HTTP handler for the server.
func (s *Server) Router() http.Handler { return s.router }

func (s *Server) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if s.cfg.Token == "" {
			next.ServeHTTP(w, r)
			return
		}
		if r.Header.Get("Authorization") != "Bearer "+s.cfg.Token {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusUnauthorized)
			_ = json.NewEncoder(w).Encode(map[string]string{"error": "unauthorized"})
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}

func (s *Server) handleListResources(w http.ResponseWriter, _ *http.Request) {
	resources := make([]Resource, 0, s.dex.Len())
	for _, resource := range service.Resources(s.dex) {
		resources = append(resources, Resource{
			URI:         resource.URI,
			Name:        resource.Name,
			MimeType:    resource.MIMEType,
			Description: resource.Description,
		})
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]interface{}{"resources": resources})
}

func (s *Server) handleReadResource(w http.ResponseWriter, r *http.Request) {
	uri := r.URL.Query().Get("uri")
	if uri == "" {
		http.Error(w, "uri query parameter is required", http.StatusBadRequest)
		return
	}

	if body, ok := s.cache.Get(uri); ok {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write(body)
		return
	}

	body, err := service.ReadResource(s.dex, uri)
	if err != nil {
		var notFound *pokedex.NotFoundError
		if errors.As(err, &notFound) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusNotFound)
			_ = json.NewEncoder(w).Encode(map[string]string{"error": notFound.Error()})
			return
		}
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	s.cache.Set(uri, body, resourceTTL)
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write(body)
}

func (s *Server) handleListTools(w http.ResponseWriter, _ *http.Request) {
	tools := []Tool{
		{
			Name:        "get_stats",
			Description: "Get detailed stats for a specific Pokemon",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"pokemon": map[string]interface{}{
						"type":        "string",
						"description": "Name of the Pokemon (e.g., pikachu, charizard)",
					},
				},
				"required": []string{"pokemon"},
			},
		},
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]interface{}{"tools": tools})
}

func (s *Server) handleCall(w http.ResponseWriter, r *http.Request) {
	var req CallRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid json", http.StatusBadRequest)
		return
	}

	body, err := service.CallTool(s.dex, req.Name, req.Args)
	if err != nil {
		var unknown *pokedex.UnknownToolError
		if errors.As(err, &unknown) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusNotFound)
			_ = json.NewEncoder(w).Encode(map[string]string{"error": unknown.Error()})
			return
		}
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(CallResponse{
		Content: []ContentBlock{{Type: "text", Text: string(body)}},
	})
}
