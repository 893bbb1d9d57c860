// Command pokedex-mcp starts the pokedex MCP server on stdio or HTTP.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"pokedex-mcp/internal/pokedex"
	"pokedex-mcp/internal/server"
	"pokedex-mcp/internal/service"
)

func main() {
	cfg, err := service.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		log.Fatalf("parse flags: %v", err)
	}
	log.SetPrefix("[pokedex-mcp] ")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg); err != nil {
		log.Fatalf("failed to serve MCP: %v", err)
	}
}

func run(ctx context.Context, cfg service.Config) error {
	dex := pokedex.Default()

	switch service.TransportKind(cfg.Transport) {
	case "", service.TransportStdio:
		return service.New(dex).Serve(ctx)
	case service.TransportHTTP:
		return runHTTP(ctx, cfg, dex)
	default:
		return fmt.Errorf("transport %q is not supported", cfg.Transport)
	}
}

func runHTTP(ctx context.Context, cfg service.Config, dex pokedex.Pokedex) error {
	if cfg.Token == "" {
		log.Println("WARN: POKEDEX_MCP_TOKEN not set; endpoints will be open. Set POKEDEX_MCP_TOKEN to secure.")
	}

	srv := server.New(server.Config{Token: cfg.Token}, dex)
	httpServer := &http.Server{Addr: cfg.HTTPAddr, Handler: srv.Router()}

	errCh := make(chan error, 1)
	go func() {
		if cfg.TLSCert != "" && cfg.TLSKey != "" {
			log.Printf("starting HTTP server with TLS on %s", cfg.HTTPAddr)
			errCh <- httpServer.ListenAndServeTLS(cfg.TLSCert, cfg.TLSKey)
			return
		}
		log.Printf("starting HTTP server on %s", cfg.HTTPAddr)
		errCh <- httpServer.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return httpServer.Shutdown(shutdownCtx)
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	}
}
