package adaptor

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"go.uber.org/zap"

	"movie-ticket-booking/internal/data/entity"
	"movie-ticket-booking/internal/dto/response"
	"movie-ticket-booking/internal/usecase"
	"movie-ticket-booking/pkg/utils"
)

const bookingURIScheme = "booking"

type ResourceHandler struct {
	booking usecase.BookingService
	log     *zap.Logger
}

func NewResourceHandler(booking usecase.BookingService, log *zap.Logger) *ResourceHandler {
	return &ResourceHandler{
		booking: booking,
		log:     log.With(zap.String("handler", "resource")),
	}
}

// ListResources exposes one descriptor per ledger entry.
func (h *ResourceHandler) ListResources(ctx context.Context) ([]mcp.Resource, error) {
	bookings, err := h.booking.ListBookings(ctx)
	if err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}

	resources := make([]mcp.Resource, 0, len(bookings))
	for _, b := range bookings {
		resources = append(resources, bookingResource(b))
	}

	return resources, nil
}

// ReadResource serves the JSON document of a single booking record.
func (h *ResourceHandler) ReadResource(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	uri := req.Params.URI

	parsed, err := url.Parse(uri)
	if err != nil {
		return nil, fmt.Errorf("parse resource URI %q: %w", uri, err)
	}
	if parsed.Scheme != bookingURIScheme {
		return nil, &utils.UnsupportedSchemeError{Scheme: parsed.Scheme}
	}

	bookingID := strings.TrimPrefix(parsed.Path, "/")

	booking, err := h.booking.GetBooking(ctx, bookingID)
	if err != nil {
		return nil, fmt.Errorf("lookup booking: %w", err)
	}
	if booking == nil {
		return nil, &utils.NotFoundError{ID: bookingID}
	}

	text, err := response.MarshalBookingJSON(booking)
	if err != nil {
		return nil, err
	}

	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      uri,
			MIMEType: "application/json",
			Text:     text,
		},
	}, nil
}

func bookingResource(b *entity.Booking) mcp.Resource {
	return mcp.NewResource(
		response.ResourceURI(b.ID),
		response.ResourceName(b),
		mcp.WithResourceDescription(response.ResourceDescription(b)),
		mcp.WithMIMEType("application/json"),
	)
}
