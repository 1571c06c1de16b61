package usecase

import (
	"movie-ticket-booking/internal/data/repository"

	"go.uber.org/zap"
)

type Service struct {
	Booking BookingService
}

func NewService(repo *repository.Repository, notifier ResourceChangeNotifier, log *zap.Logger) *Service {
	return &Service{
		Booking: NewBookingService(repo, notifier, log),
	}
}
