package cmd

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/mark3labs/mcp-go/server"
	"go.uber.org/zap"

	"movie-ticket-booking/pkg/middleware"
	"movie-ticket-booking/pkg/utils"
)

// Serve runs the MCP server on the configured transport.
func Serve(mcpServer *server.MCPServer, config *utils.Config, logger *zap.Logger) error {
	switch config.App.Transport {
	case utils.TransportHTTP:
		return serveHTTP(mcpServer, config, logger)
	default:
		// stdio is the default transport; stdout belongs to the protocol
		return server.ServeStdio(mcpServer)
	}
}

func serveHTTP(mcpServer *server.MCPServer, config *utils.Config, logger *zap.Logger) error {
	httpServer := server.NewStreamableHTTPServer(mcpServer, server.WithEndpointPath("/mcp"))

	r := chi.NewRouter()
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))

	r.Handle("/mcp", httpServer)

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	addr := fmt.Sprintf(":%s", config.App.Port)
	logger.Info("MCP server listening",
		zap.String("addr", addr),
		zap.String("endpoint", "/mcp"),
	)

	return http.ListenAndServe(addr, r)
}
