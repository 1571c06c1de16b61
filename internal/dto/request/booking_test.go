package request

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"movie-ticket-booking/internal/data/entity"
	"movie-ticket-booking/pkg/utils"
)

func TestDecodeFriendsRequest(t *testing.T) {
	req, err := DecodeBookingRequest(ToolBookForFriends, map[string]any{
		"movie_title":     "Dune",
		"theater":         "Grand",
		"showtime":        "7:30 PM",
		"date":            "2024-06-01",
		"seat_preference": "back",
	})
	require.NoError(t, err)

	friends, ok := req.(*FriendsBookingRequest)
	require.True(t, ok, "expected friends request, got %T", req)
	assert.Equal(t, entity.GroupFriends, req.GroupType())
	assert.Equal(t, "Dune", friends.MovieTitle)
	assert.Equal(t, "back", friends.SeatPreference)
}

// JSON-decoded argument maps carry numbers as float64.
func TestDecodeFamilyCounts(t *testing.T) {
	req, err := DecodeBookingRequest(ToolBookForFamily, map[string]any{
		"movie_title": "Dune",
		"theater":     "Grand",
		"showtime":    "7:30 PM",
		"date":        "2024-06-01",
		"adult_count": float64(2),
		"child_count": float64(1),
	})
	require.NoError(t, err)

	family, ok := req.(*FamilyBookingRequest)
	require.True(t, ok)
	require.NotNil(t, family.AdultCount)
	assert.Equal(t, 2, *family.AdultCount)
	require.NotNil(t, family.ChildCount)
	assert.Equal(t, 1, *family.ChildCount)
	assert.Nil(t, family.SeniorCount, "absent count must stay nil, not zero")
}

func TestDecodeClassDiscountFlag(t *testing.T) {
	req, err := DecodeBookingRequest(ToolBookForClass, map[string]any{
		"movie_title":    "Dune",
		"theater":        "Grand",
		"showtime":       "7:30 PM",
		"date":           "2024-06-01",
		"student_count":  float64(20),
		"teacher_count":  float64(2),
		"group_discount": true,
	})
	require.NoError(t, err)

	class, ok := req.(*ClassBookingRequest)
	require.True(t, ok)
	assert.True(t, class.GroupDiscount)
}

func TestDecodeUnknownTool(t *testing.T) {
	_, err := DecodeBookingRequest("book-for-strangers", map[string]any{"movie_title": "Dune"})

	var capErr *utils.UnknownCapabilityError
	require.True(t, errors.As(err, &capErr))
	assert.Equal(t, "book-for-strangers", capErr.Name)
}

func TestDecodeTypeMismatch(t *testing.T) {
	_, err := DecodeBookingRequest(ToolBookForFriends, map[string]any{
		"movie_title": 42,
		"theater":     "Grand",
		"showtime":    "7:30 PM",
		"date":        "2024-06-01",
	})

	var vErr *utils.ValidationError
	require.True(t, errors.As(err, &vErr))
}
