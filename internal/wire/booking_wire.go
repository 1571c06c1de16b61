package wire

import (
	"movie-ticket-booking/internal/adaptor"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

func wireBooking(srv *server.MCPServer, handler *adaptor.Handler) {
	// ==================== TOOLS ====================
	for _, tool := range handler.Tool.ListTools() {
		srv.AddTool(tool, handler.Tool.CallTool)
	}

	// ==================== PROMPTS ====================
	for _, prompt := range handler.Prompt.ListPrompts() {
		srv.AddPrompt(prompt, handler.Prompt.GetPrompt)
	}

	// ==================== RESOURCES ====================
	// The template serves read-resource for any booking id; per-booking
	// list entries are registered by the notifier as bookings are created.
	srv.AddResourceTemplate(
		mcp.NewResourceTemplate(
			"booking://internal/{booking_id}",
			"Movie ticket bookings",
			mcp.WithTemplateDescription("Booking records created by the booking tools"),
			mcp.WithTemplateMIMEType("application/json"),
		),
		handler.Resource.ReadResource,
	)
}
