package wire

import (
	"movie-ticket-booking/internal/adaptor"
	"movie-ticket-booking/internal/data/repository"
	"movie-ticket-booking/internal/usecase"
	"movie-ticket-booking/pkg/utils"

	"github.com/mark3labs/mcp-go/server"
	"go.uber.org/zap"
)

// App holds the wired MCP server
type App struct {
	MCP *server.MCPServer
}

// Wiring initializes all dependencies
func Wiring(repo *repository.Repository, config *utils.Config, logger *zap.Logger) *App {
	mcpServer := server.NewMCPServer(
		config.App.Name,
		config.App.Version,
		server.WithResourceCapabilities(true, true),
		server.WithPromptCapabilities(true),
		server.WithToolCapabilities(true),
		server.WithRecovery(),
	)

	// The notifier reads the ledger directly so it can be handed to the
	// booking service before the handlers exist.
	notifier := adaptor.NewResourceListNotifier(mcpServer, repo.Booking, logger)
	service := usecase.NewService(repo, notifier, logger)
	handler := adaptor.NewHandler(service, logger)

	wireBooking(mcpServer, handler)

	return &App{
		MCP: mcpServer,
	}
}
