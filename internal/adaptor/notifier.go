package adaptor

import (
	"context"
	"fmt"
	"sync"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"go.uber.org/zap"

	"movie-ticket-booking/internal/data/repository"
	"movie-ticket-booking/internal/dto/response"
	"movie-ticket-booking/pkg/utils"
)

// ResourceListNotifier keeps the MCP server's resource registry in sync with
// the ledger and broadcasts list-changed to connected sessions after each
// mutation. Everything here is best-effort: a booking must succeed even when
// no session is listening.
type ResourceListNotifier struct {
	srv  *server.MCPServer
	repo repository.BookingRepository
	log  *zap.Logger

	mu         sync.Mutex
	registered map[string]struct{}
}

func NewResourceListNotifier(srv *server.MCPServer, repo repository.BookingRepository, log *zap.Logger) *ResourceListNotifier {
	return &ResourceListNotifier{
		srv:        srv,
		repo:       repo,
		log:        log.With(zap.String("notifier", "resource_list")),
		registered: make(map[string]struct{}),
	}
}

func (n *ResourceListNotifier) NotifyResourceListChanged(ctx context.Context) {
	if n.srv == nil {
		// no transport bound
		return
	}

	bookings, err := n.repo.FindAll(ctx)
	if err != nil {
		n.log.Warn("Failed to sync resource list", zap.Error(err))
		return
	}

	n.mu.Lock()
	for _, b := range bookings {
		if _, ok := n.registered[b.ID]; ok {
			continue
		}
		n.registered[b.ID] = struct{}{}
		n.srv.AddResource(bookingResource(b), n.readHandler(b.ID))
	}
	n.mu.Unlock()

	n.srv.SendNotificationToAllClients("notifications/resources/list_changed", nil)
}

func (n *ResourceListNotifier) readHandler(bookingID string) server.ResourceHandlerFunc {
	return func(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		booking, err := n.repo.FindByID(ctx, bookingID)
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
				URI:      req.Params.URI,
				MIMEType: "application/json",
				Text:     text,
			},
		}, nil
	}
}
