package response

import (
	"encoding/json"
	"fmt"
	"time"

	"movie-ticket-booking/internal/data/entity"
)

// BookingConfirmation is the sole payload returned to a tool caller.
type BookingConfirmation struct {
	BookingID string
	Message   string
}

type bookingCommon struct {
	BookingID   string           `json:"booking_id"`
	GroupType   entity.GroupType `json:"group_type"`
	TicketCount int              `json:"ticket_count"`
	MovieTitle  string           `json:"movie_title"`
	Theater     string           `json:"theater"`
	Showtime    string           `json:"showtime"`
	Date        string           `json:"date"`
}

type bookingCosting struct {
	TotalCost   string `json:"total_cost"`
	BookingTime string `json:"booking_time"`
}

type FriendsBookingDocument struct {
	bookingCommon
	SeatPreference string `json:"seat_preference"`
	bookingCosting
}

type RelativesBookingDocument struct {
	bookingCommon
	SpecialRequirements *string `json:"special_requirements"`
	bookingCosting
}

type ClassBookingDocument struct {
	bookingCommon
	StudentCount         int  `json:"student_count"`
	TeacherCount         int  `json:"teacher_count"`
	GroupDiscountApplied bool `json:"group_discount_applied"`
	bookingCosting
}

type FamilyBookingDocument struct {
	bookingCommon
	AdultCount  int `json:"adult_count"`
	ChildCount  int `json:"child_count"`
	SeniorCount int `json:"senior_count"`
	bookingCosting
}

// BookingToDocument builds the JSON view of a record, carrying only the
// fields that belong to its group variant.
func BookingToDocument(b *entity.Booking) any {
	common := bookingCommon{
		BookingID:   b.ID,
		GroupType:   b.GroupType,
		TicketCount: b.TicketCount,
		MovieTitle:  b.MovieTitle,
		Theater:     b.Theater,
		Showtime:    b.Showtime,
		Date:        b.Date,
	}
	costing := bookingCosting{
		TotalCost:   b.TotalCost.StringFixed(2),
		BookingTime: b.CreatedAt.Format(time.RFC3339),
	}

	switch b.GroupType {
	case entity.GroupFriends:
		return FriendsBookingDocument{
			bookingCommon:  common,
			SeatPreference: b.SeatPreference,
			bookingCosting: costing,
		}
	case entity.GroupRelatives:
		return RelativesBookingDocument{
			bookingCommon:       common,
			SpecialRequirements: b.SpecialRequirements,
			bookingCosting:      costing,
		}
	case entity.GroupClass:
		return ClassBookingDocument{
			bookingCommon:        common,
			StudentCount:         b.StudentCount,
			TeacherCount:         b.TeacherCount,
			GroupDiscountApplied: b.GroupDiscountApplied,
			bookingCosting:       costing,
		}
	case entity.GroupFamily:
		return FamilyBookingDocument{
			bookingCommon:  common,
			AdultCount:     b.AdultCount,
			ChildCount:     b.ChildCount,
			SeniorCount:    b.SeniorCount,
			bookingCosting: costing,
		}
	default:
		return common
	}
}

// MarshalBookingJSON renders the record as the indented JSON document served
// through read-resource.
func MarshalBookingJSON(b *entity.Booking) (string, error) {
	data, err := json.MarshalIndent(BookingToDocument(b), "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal booking %s: %w", b.ID, err)
	}
	return string(data), nil
}

// ResourceURI addresses a single booking record.
func ResourceURI(id string) string {
	return "booking://internal/" + id
}

func ResourceName(b *entity.Booking) string {
	return fmt.Sprintf("Booking: %s", b.ID)
}

func ResourceDescription(b *entity.Booking) string {
	return fmt.Sprintf("Movie ticket booking for %s - %s", b.GroupType, b.MovieTitle)
}

// SummaryLine is one entry in the booking-summary prompt body.
func SummaryLine(b *entity.Booking) string {
	return fmt.Sprintf("- %s: %s for %s (%d tickets)", b.ID, b.MovieTitle, b.GroupType, b.TicketCount)
}

// ConfirmationMessage templates the human-readable result of a successful
// booking, per group variant.
func ConfirmationMessage(b *entity.Booking) string {
	switch b.GroupType {
	case entity.GroupFriends:
		return fmt.Sprintf("Successfully booked %d tickets for '%s' at %s. Booking ID: %s. Tickets sent to all friends!",
			b.TicketCount, b.MovieTitle, b.Theater, b.ID)
	case entity.GroupRelatives:
		return fmt.Sprintf("Successfully booked %d tickets for relatives for '%s' at %s. Booking ID: %s. Family notifications sent!",
			b.TicketCount, b.MovieTitle, b.Theater, b.ID)
	case entity.GroupClass:
		return fmt.Sprintf("Successfully booked %d tickets for class trip to '%s' at %s. Booking ID: %s. School notifications sent!",
			b.TicketCount, b.MovieTitle, b.Theater, b.ID)
	case entity.GroupFamily:
		return fmt.Sprintf("Successfully booked %d tickets for family movie night - '%s' at %s. Booking ID: %s. Family package confirmed!",
			b.TicketCount, b.MovieTitle, b.Theater, b.ID)
	default:
		return fmt.Sprintf("Successfully booked %d tickets for '%s' at %s. Booking ID: %s.",
			b.TicketCount, b.MovieTitle, b.Theater, b.ID)
	}
}
