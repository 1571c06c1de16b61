package request

import (
	"github.com/go-viper/mapstructure/v2"

	"movie-ticket-booking/internal/data/entity"
	"movie-ticket-booking/pkg/utils"
)

// Tool names exposed in the catalog
const (
	ToolBookForFriends   = "book-for-friends"
	ToolBookForRelatives = "book-for-relatives"
	ToolBookForClass     = "book-for-class"
	ToolBookForFamily    = "book-for-family"
)

// BookingRequest is implemented by one request type per booking tool, so the
// factory switches over variants exhaustively instead of comparing strings.
type BookingRequest interface {
	GroupType() entity.GroupType
}

type FriendsBookingRequest struct {
	MovieTitle     string `mapstructure:"movie_title" validate:"required"`
	Theater        string `mapstructure:"theater" validate:"required"`
	Showtime       string `mapstructure:"showtime" validate:"required"`
	Date           string `mapstructure:"date" validate:"required"`
	SeatPreference string `mapstructure:"seat_preference"`
}

func (FriendsBookingRequest) GroupType() entity.GroupType { return entity.GroupFriends }

type RelativesBookingRequest struct {
	MovieTitle string `mapstructure:"movie_title" validate:"required"`
	Theater    string `mapstructure:"theater" validate:"required"`
	Showtime   string `mapstructure:"showtime" validate:"required"`
	Date       string `mapstructure:"date" validate:"required"`
	// The catalog advertises ticket_count as required, but the factory
	// falls back to a single ticket when it is absent.
	TicketCount         *int    `mapstructure:"ticket_count"`
	SpecialRequirements *string `mapstructure:"special_requirements"`
}

func (RelativesBookingRequest) GroupType() entity.GroupType { return entity.GroupRelatives }

type ClassBookingRequest struct {
	MovieTitle    string `mapstructure:"movie_title" validate:"required"`
	Theater       string `mapstructure:"theater" validate:"required"`
	Showtime      string `mapstructure:"showtime" validate:"required"`
	Date          string `mapstructure:"date" validate:"required"`
	StudentCount  *int   `mapstructure:"student_count" validate:"required"`
	TeacherCount  *int   `mapstructure:"teacher_count" validate:"required"`
	GroupDiscount bool   `mapstructure:"group_discount"`
}

func (ClassBookingRequest) GroupType() entity.GroupType { return entity.GroupClass }

type FamilyBookingRequest struct {
	MovieTitle  string `mapstructure:"movie_title" validate:"required"`
	Theater     string `mapstructure:"theater" validate:"required"`
	Showtime    string `mapstructure:"showtime" validate:"required"`
	Date        string `mapstructure:"date" validate:"required"`
	AdultCount  *int   `mapstructure:"adult_count" validate:"required"`
	ChildCount  *int   `mapstructure:"child_count" validate:"required"`
	SeniorCount *int   `mapstructure:"senior_count"`
}

func (FamilyBookingRequest) GroupType() entity.GroupType { return entity.GroupFamily }

// DecodeBookingRequest maps a tool name plus its raw argument mapping onto
// the matching variant request type.
func DecodeBookingRequest(tool string, args map[string]any) (BookingRequest, error) {
	var req BookingRequest
	switch tool {
	case ToolBookForFriends:
		req = &FriendsBookingRequest{}
	case ToolBookForRelatives:
		req = &RelativesBookingRequest{}
	case ToolBookForClass:
		req = &ClassBookingRequest{}
	case ToolBookForFamily:
		req = &FamilyBookingRequest{}
	default:
		return nil, &utils.UnknownCapabilityError{Kind: "tool", Name: tool}
	}

	if err := decodeArguments(args, req); err != nil {
		return nil, err
	}

	return req, nil
}

func decodeArguments(args map[string]any, out any) error {
	if err := mapstructure.Decode(args, out); err != nil {
		return utils.NewValidationError(map[string]string{"arguments": err.Error()})
	}
	return nil
}
