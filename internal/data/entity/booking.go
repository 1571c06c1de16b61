package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

type GroupType string

const (
	GroupFriends   GroupType = "friends"
	GroupRelatives GroupType = "relatives"
	GroupClass     GroupType = "class"
	GroupFamily    GroupType = "family"
)

// Booking is a single ledger entry. Records are immutable once inserted:
// there is no update or delete in this version, handlers only ever see
// copies.
type Booking struct {
	ID          string
	GroupType   GroupType
	TicketCount int

	MovieTitle string
	Theater    string
	Showtime   string
	Date       string

	// friends
	SeatPreference string

	// relatives
	SpecialRequirements *string

	// class
	StudentCount         int
	TeacherCount         int
	GroupDiscountApplied bool

	// family
	AdultCount  int
	ChildCount  int
	SeniorCount int

	TotalCost decimal.Decimal
	CreatedAt time.Time
}
