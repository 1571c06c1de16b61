package repository

import (
	"go.uber.org/zap"
)

type Repository struct {
	Booking BookingRepository
}

func NewRepository(log *zap.Logger) *Repository {
	return &Repository{
		Booking: NewBookingRepository(log),
	}
}
