package adaptor

import (
	"movie-ticket-booking/internal/usecase"

	"go.uber.org/zap"
)

type Handler struct {
	Resource *ResourceHandler
	Prompt   *PromptHandler
	Tool     *ToolHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Resource: NewResourceHandler(service.Booking, log),
		Prompt:   NewPromptHandler(service.Booking, log),
		Tool:     NewToolHandler(service.Booking, log),
	}
}
