package usecase

import (
	"context"
	"fmt"
	"time"

	"movie-ticket-booking/internal/data/entity"
	"movie-ticket-booking/internal/data/repository"
	"movie-ticket-booking/internal/dto/request"
	"movie-ticket-booking/internal/dto/response"
	"movie-ticket-booking/pkg/utils"

	"go.uber.org/zap"
)

const defaultSeatPreference = "middle"

type BookingService interface {
	CreateBooking(ctx context.Context, req request.BookingRequest) (*response.BookingConfirmation, error)
	GetBooking(ctx context.Context, bookingID string) (*entity.Booking, error)
	ListBookings(ctx context.Context) ([]*entity.Booking, error)
	ListBookingsByGroup(ctx context.Context, groupFilter string) ([]*entity.Booking, error)
}

type bookingService struct {
	repo     *repository.Repository
	notifier ResourceChangeNotifier
	log      *zap.Logger
}

func NewBookingService(repo *repository.Repository, notifier ResourceChangeNotifier, log *zap.Logger) BookingService {
	return &bookingService{
		repo:     repo,
		notifier: notifier,
		log:      log.With(zap.String("service", "booking")),
	}
}

func (s *bookingService) CreateBooking(ctx context.Context, req request.BookingRequest) (*response.BookingConfirmation, error) {
	// Validate request
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create booking validation failed",
			zap.String("group_type", string(req.GroupType())),
			zap.Any("errors", errs),
		)
		return nil, utils.NewValidationError(errs)
	}

	now := time.Now()
	booking := &entity.Booking{
		ID:        utils.GenerateBookingID(now),
		GroupType: req.GroupType(),
		CreatedAt: now,
	}

	var quote Quote
	switch v := req.(type) {
	case *request.FriendsBookingRequest:
		quote = QuoteFriends()
		fillShowDetails(booking, v.MovieTitle, v.Theater, v.Showtime, v.Date)
		booking.SeatPreference = v.SeatPreference
		if booking.SeatPreference == "" {
			booking.SeatPreference = defaultSeatPreference
		}

	case *request.RelativesBookingRequest:
		quote = QuoteRelatives(intOrDefault(v.TicketCount, 1))
		fillShowDetails(booking, v.MovieTitle, v.Theater, v.Showtime, v.Date)
		booking.SpecialRequirements = v.SpecialRequirements

	case *request.ClassBookingRequest:
		quote = QuoteClass(intOrDefault(v.StudentCount, 0), intOrDefault(v.TeacherCount, 0), v.GroupDiscount)
		fillShowDetails(booking, v.MovieTitle, v.Theater, v.Showtime, v.Date)
		booking.StudentCount = intOrDefault(v.StudentCount, 0)
		booking.TeacherCount = intOrDefault(v.TeacherCount, 0)
		booking.GroupDiscountApplied = v.GroupDiscount

	case *request.FamilyBookingRequest:
		quote = QuoteFamily(intOrDefault(v.AdultCount, 0), intOrDefault(v.ChildCount, 0), intOrDefault(v.SeniorCount, 0))
		fillShowDetails(booking, v.MovieTitle, v.Theater, v.Showtime, v.Date)
		booking.AdultCount = intOrDefault(v.AdultCount, 0)
		booking.ChildCount = intOrDefault(v.ChildCount, 0)
		booking.SeniorCount = intOrDefault(v.SeniorCount, 0)

	default:
		return nil, fmt.Errorf("unhandled booking request type %T", req)
	}

	booking.TicketCount = quote.TicketCount
	booking.TotalCost = quote.TotalCost

	if err := s.repo.Booking.Put(ctx, booking); err != nil {
		s.log.Error("Failed to store booking",
			zap.Error(err),
			zap.String("booking_id", booking.ID),
		)
		return nil, fmt.Errorf("store booking: %w", err)
	}

	// Best-effort, listing consistency only; never fails the booking
	s.notifier.NotifyResourceListChanged(ctx)

	s.log.Info("Booking created",
		zap.String("booking_id", booking.ID),
		zap.String("group_type", string(booking.GroupType)),
		zap.Int("ticket_count", booking.TicketCount),
		zap.String("total_cost", booking.TotalCost.StringFixed(2)),
	)

	return &response.BookingConfirmation{
		BookingID: booking.ID,
		Message:   response.ConfirmationMessage(booking),
	}, nil
}

func (s *bookingService) GetBooking(ctx context.Context, bookingID string) (*entity.Booking, error) {
	return s.repo.Booking.FindByID(ctx, bookingID)
}

func (s *bookingService) ListBookings(ctx context.Context) ([]*entity.Booking, error) {
	return s.repo.Booking.FindAll(ctx)
}

// ListBookingsByGroup filters the ledger by group type. An empty filter or
// "all" returns everything; unrecognized values match nothing.
func (s *bookingService) ListBookingsByGroup(ctx context.Context, groupFilter string) ([]*entity.Booking, error) {
	bookings, err := s.repo.Booking.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	if groupFilter == "" || groupFilter == "all" {
		return bookings, nil
	}

	filtered := make([]*entity.Booking, 0, len(bookings))
	for _, b := range bookings {
		if string(b.GroupType) == groupFilter {
			filtered = append(filtered, b)
		}
	}

	return filtered, nil
}

func fillShowDetails(b *entity.Booking, movieTitle, theater, showtime, date string) {
	b.MovieTitle = movieTitle
	b.Theater = theater
	b.Showtime = showtime
	b.Date = date
}

func intOrDefault(v *int, def int) int {
	if v == nil {
		return def
	}
	return *v
}
