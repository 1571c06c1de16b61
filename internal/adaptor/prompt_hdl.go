package adaptor

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"go.uber.org/zap"

	"movie-ticket-booking/internal/dto/response"
	"movie-ticket-booking/internal/usecase"
	"movie-ticket-booking/pkg/utils"
)

const (
	promptBookingSummary = "booking-summary"
	summaryHeader        = "Here are the current movie bookings to summarize:\n\n"
)

type PromptHandler struct {
	booking usecase.BookingService
	log     *zap.Logger
}

func NewPromptHandler(booking usecase.BookingService, log *zap.Logger) *PromptHandler {
	return &PromptHandler{
		booking: booking,
		log:     log.With(zap.String("handler", "prompt")),
	}
}

func (h *PromptHandler) ListPrompts() []mcp.Prompt {
	return []mcp.Prompt{
		mcp.NewPrompt(promptBookingSummary,
			mcp.WithPromptDescription("Creates a summary of all movie bookings"),
			mcp.WithArgument("group_type",
				mcp.ArgumentDescription("Filter by group type (friends/relatives/class/family)"),
			),
		),
	}
}

// GetPrompt renders the booking-summary prompt, optionally filtered by group
// type. Unknown filter values match nothing.
func (h *PromptHandler) GetPrompt(ctx context.Context, req mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
	if req.Params.Name != promptBookingSummary {
		return nil, &utils.UnknownCapabilityError{Kind: "prompt", Name: req.Params.Name}
	}

	groupFilter := req.Params.Arguments["group_type"]
	if groupFilter == "" {
		groupFilter = "all"
	}

	bookings, err := h.booking.ListBookingsByGroup(ctx, groupFilter)
	if err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}

	lines := make([]string, 0, len(bookings))
	for _, b := range bookings {
		lines = append(lines, response.SummaryLine(b))
	}

	return mcp.NewGetPromptResult(
		"Summarize the current movie bookings",
		[]mcp.PromptMessage{
			mcp.NewPromptMessage(mcp.RoleUser, mcp.NewTextContent(summaryHeader+strings.Join(lines, "\n"))),
		},
	), nil
}
