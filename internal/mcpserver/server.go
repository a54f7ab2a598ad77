// Package mcpserver exposes the app packager as MCP tools so agents can
// validate and export apps without the interactive wizard.
package mcpserver

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"sync"

	"github.com/mark3labs/mcp-go/server"
	"github.com/spf13/afero"

	"github.com/mark3labs/htmlpack/internal/logger"
	"github.com/mark3labs/htmlpack/internal/packager"
)

// Config wires the server to a packager and an output location.
type Config struct {
	Packager *packager.Packager
	// Fs receives artifacts when a tool call asks for them to be written.
	Fs afero.Fs
	// OutputDir is used when a call requests a write without naming a directory.
	OutputDir string
	// Overwrite allows replacing existing files.
	Overwrite bool
	Version   string
}

// Server manages an MCP server exposing validate-app and export-app.
// Every tool call builds its own session state, so calls never share state.
type Server struct {
	cfg       Config
	mcpServer *server.MCPServer
	stdServer *http.Server
	port      int
	mu        sync.Mutex
}

// New creates a server with its tools registered. Nothing is served until
// ServeStdio or Start is called.
func New(cfg Config) *Server {
	if cfg.Packager == nil {
		cfg.Packager = packager.New(packager.Options{})
	}
	if cfg.Fs == nil {
		cfg.Fs = afero.NewOsFs()
	}
	if cfg.Version == "" {
		cfg.Version = "dev"
	}

	s := &Server{cfg: cfg}
	s.mcpServer = server.NewMCPServer(
		"htmlpack",
		cfg.Version,
		server.WithToolCapabilities(true),
	)
	s.registerTools()
	return s
}

// ServeStdio serves MCP over stdin/stdout until the client disconnects.
func (s *Server) ServeStdio() error {
	logger.Debug("Serving MCP over stdio")
	return server.ServeStdio(s.mcpServer)
}

// Start starts a streamable HTTP endpoint on a random localhost port and
// returns the port.
func (s *Server) Start(ctx context.Context) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.stdServer != nil {
		return 0, fmt.Errorf("server already started")
	}

	var lc net.ListenConfig
	listener, err := lc.Listen(ctx, "tcp", "127.0.0.1:0")
	if err != nil {
		return 0, fmt.Errorf("failed to find available port: %w", err)
	}
	s.port = listener.Addr().(*net.TCPAddr).Port

	mux := http.NewServeMux()
	mux.Handle("/mcp", server.NewStreamableHTTPServer(s.mcpServer, server.WithStateLess(true)))
	s.stdServer = &http.Server{Handler: mux}

	// Capture for the goroutine so Stop can clear the field.
	stdServer := s.stdServer
	go func() {
		if err := stdServer.Serve(listener); err != nil && err != http.ErrServerClosed {
			logger.Error("MCP server error: %v", err)
		}
	}()

	logger.Info("MCP server ready on port %d", s.port)
	return s.port, nil
}

// Stop shuts the HTTP endpoint down. It is a no-op if not started.
func (s *Server) Stop(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.stdServer == nil {
		return nil
	}
	if err := s.stdServer.Shutdown(ctx); err != nil {
		logger.Warn("Error stopping MCP server: %v", err)
		return fmt.Errorf("failed to stop server: %w", err)
	}
	s.stdServer = nil
	logger.Debug("MCP server stopped")
	return nil
}

// URL returns the HTTP URL for the MCP endpoint.
func (s *Server) URL() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fmt.Sprintf("http://localhost:%d/mcp", s.port)
}
