package mcp

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/hrcentral-cli/internal/logger"
)

const (
	serverName = "hrcentral"

	readHeaderTimeout = 10 * time.Second
	shutdownTimeout   = 5 * time.Second
)

// Server exposes the HR store to MCP clients. Every tool and resource
// acts as the user of the current CLI session.
type Server struct {
	ports  *Ports
	server *mcp.Server
}

// NewServer builds a server over ports. The drafting tools are only
// registered when an assistant is available.
func NewServer(ports *Ports) (*Server, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("validating ports: %w", err)
	}

	s := &Server{
		ports: ports,
		server: mcp.NewServer(&mcp.Implementation{
			Name:    serverName,
			Version: cmp.Or(ports.Version, "dev"),
		}, nil),
	}
	s.registerTools()
	if ports.Assistant != nil {
		s.registerAssistantTools()
	}
	s.registerResources()
	return s, nil
}

// Run serves JSON-RPC over stdin/stdout until ctx ends or the client
// disconnects.
func (s *Server) Run(ctx context.Context) error {
	return s.server.Run(ctx, &mcp.StdioTransport{})
}

// RunHTTP serves the streamable HTTP transport on addr until ctx ends.
// It returns only after the shutdown goroutine has finished.
func (s *Server) RunHTTP(ctx context.Context, addr string) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	srv := &http.Server{
		Addr: addr,
		Handler: mcp.NewStreamableHTTPHandler(func(*http.Request) *mcp.Server {
			return s.server
		}, nil),
		ReadHeaderTimeout: readHeaderTimeout,
	}

	stopped := make(chan error, 1)
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
		defer cancel()
		stopped <- srv.Shutdown(shutdownCtx)
	}()

	logger.Debug("mcp: listening on %s", addr)
	if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		cancel()
		<-stopped
		return err
	}
	return <-stopped
}
