package utils

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// GenerateBookingID creates a unique booking ID with timestamp
func GenerateBookingID(now time.Time) string {
	// Format: booking_YYYYMMDD_HHMMSS_RANDOM
	// The random suffix keeps rapid repeated calls from colliding within
	// the same second.
	datePart := now.Format("20060102")
	timePart := now.Format("150405")
	randomPart := strings.SplitN(uuid.NewString(), "-", 2)[0]

	return fmt.Sprintf("booking_%s_%s_%s", datePart, timePart, randomPart)
}
