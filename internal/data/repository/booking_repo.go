package repository

import (
	"context"
	"fmt"
	"sync"

	"movie-ticket-booking/internal/data/entity"

	"go.uber.org/zap"
)

type BookingRepository interface {
	Put(ctx context.Context, booking *entity.Booking) error
	FindByID(ctx context.Context, id string) (*entity.Booking, error)
	FindAll(ctx context.Context) ([]*entity.Booking, error)
}

// bookingRepository keeps the ledger in process memory. The server is the
// only writer, but the transport may deliver requests on multiple
// goroutines, so every access goes through the mutex.
type bookingRepository struct {
	mu    sync.RWMutex
	byID  map[string]*entity.Booking
	order []string // insertion order, keeps FindAll stable per read
	log   *zap.Logger
}

func NewBookingRepository(log *zap.Logger) BookingRepository {
	return &bookingRepository{
		byID: make(map[string]*entity.Booking),
		log:  log.With(zap.String("repository", "booking")),
	}
}

func (r *bookingRepository) Put(ctx context.Context, booking *entity.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[booking.ID]; exists {
		// Never silently overwrite an existing record
		return fmt.Errorf("booking %s already exists", booking.ID)
	}

	stored := *booking
	r.byID[booking.ID] = &stored
	r.order = append(r.order, booking.ID)

	r.log.Debug("Booking stored",
		zap.String("booking_id", booking.ID),
		zap.String("group_type", string(booking.GroupType)),
	)

	return nil
}

// FindByID returns nil, nil when no record exists for the id.
func (r *bookingRepository) FindByID(ctx context.Context, id string) (*entity.Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	booking, ok := r.byID[id]
	if !ok {
		return nil, nil
	}

	view := *booking
	return &view, nil
}

func (r *bookingRepository) FindAll(ctx context.Context) ([]*entity.Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	bookings := make([]*entity.Booking, 0, len(r.order))
	for _, id := range r.order {
		view := *r.byID[id]
		bookings = append(bookings, &view)
	}

	return bookings, nil
}
