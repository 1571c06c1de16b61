package adaptor

import (
	"context"
	"encoding/json"

	"github.com/mark3labs/mcp-go/mcp"
	"go.uber.org/zap"

	"movie-ticket-booking/internal/dto/request"
	"movie-ticket-booking/internal/usecase"
	"movie-ticket-booking/pkg/utils"
)

type ToolHandler struct {
	booking usecase.BookingService
	log     *zap.Logger
}

func NewToolHandler(booking usecase.BookingService, log *zap.Logger) *ToolHandler {
	return &ToolHandler{
		booking: booking,
		log:     log.With(zap.String("handler", "tool")),
	}
}

// inputSchema is the JSON-Schema document advertised per tool. Clients
// validate arguments against it; the factory re-checks presence server-side.
type inputSchema struct {
	Type       string              `json:"type"`
	Properties map[string]property `json:"properties"`
	Required   []string            `json:"required"`
}

type property struct {
	Type        string `json:"type"`
	Description string `json:"description"`
	Default     any    `json:"default,omitempty"`
}

func bookingToolSchema(variant map[string]property, variantRequired ...string) json.RawMessage {
	properties := map[string]property{
		"movie_title": {Type: "string", Description: "Title of the movie"},
		"theater":     {Type: "string", Description: "Theater name"},
		"showtime":    {Type: "string", Description: "Show time (e.g., '7:30 PM')"},
		"date":        {Type: "string", Description: "Date of the show (YYYY-MM-DD)"},
	}
	for name, prop := range variant {
		properties[name] = prop
	}

	schema := inputSchema{
		Type:       "object",
		Properties: properties,
		Required:   append([]string{"movie_title", "theater", "showtime", "date"}, variantRequired...),
	}

	data, err := json.Marshal(schema)
	if err != nil {
		panic(err) // static catalog, cannot fail
	}
	return data
}

// ListTools returns the static catalog of the four booking tools.
func (h *ToolHandler) ListTools() []mcp.Tool {
	return []mcp.Tool{
		mcp.NewToolWithRawSchema(
			request.ToolBookForFriends,
			"Book movie tickets for a group of 4 friends",
			bookingToolSchema(map[string]property{
				"seat_preference": {Type: "string", Description: "Seating preference (e.g., 'middle', 'back', 'front')"},
			}),
		),
		mcp.NewToolWithRawSchema(
			request.ToolBookForRelatives,
			"Book movie tickets for relatives",
			bookingToolSchema(map[string]property{
				"ticket_count":         {Type: "integer", Description: "Number of tickets needed"},
				"special_requirements": {Type: "string", Description: "Any special requirements (wheelchair access, etc.)"},
			}, "ticket_count"),
		),
		mcp.NewToolWithRawSchema(
			request.ToolBookForClass,
			"Book movie tickets for the whole class",
			bookingToolSchema(map[string]property{
				"student_count":  {Type: "integer", Description: "Number of students"},
				"teacher_count":  {Type: "integer", Description: "Number of teachers/chaperones"},
				"group_discount": {Type: "boolean", Description: "Apply group discount if available"},
			}, "student_count", "teacher_count"),
		),
		mcp.NewToolWithRawSchema(
			request.ToolBookForFamily,
			"Book movie tickets for the family",
			bookingToolSchema(map[string]property{
				"adult_count":  {Type: "integer", Description: "Number of adults"},
				"child_count":  {Type: "integer", Description: "Number of children"},
				"senior_count": {Type: "integer", Description: "Number of seniors", Default: 0},
			}, "adult_count", "child_count"),
		),
	}
}

// CallTool dispatches a tool invocation to the booking factory.
func (h *ToolHandler) CallTool(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()
	if len(args) == 0 {
		return nil, utils.NewValidationError(map[string]string{"arguments": "Missing arguments"})
	}

	bookingReq, err := request.DecodeBookingRequest(req.Params.Name, args)
	if err != nil {
		h.log.Warn("Tool request rejected",
			zap.String("tool", req.Params.Name),
			zap.Error(err),
		)
		return nil, err
	}

	confirmation, err := h.booking.CreateBooking(ctx, bookingReq)
	if err != nil {
		return nil, err
	}

	return mcp.NewToolResultText(confirmation.Message), nil
}
