package usecase

import (
	"math/rand"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestQuoteFriends(t *testing.T) {
	q := QuoteFriends()

	assert.Equal(t, 4, q.TicketCount)
	assert.Equal(t, "60.00", q.TotalCost.StringFixed(2))
}

func TestQuoteRelatives(t *testing.T) {
	tests := []struct {
		name        string
		ticketCount int
		wantCost    string
	}{
		{"single ticket", 1, "15.00"},
		{"several tickets", 3, "45.00"},
		{"zero tickets", 0, "0.00"},
		// negative counts are accepted as-is, documented current behavior
		{"negative tickets", -2, "-30.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := QuoteRelatives(tt.ticketCount)

			assert.Equal(t, tt.ticketCount, q.TicketCount)
			assert.Equal(t, tt.wantCost, q.TotalCost.StringFixed(2))
		})
	}
}

func TestQuoteClass(t *testing.T) {
	tests := []struct {
		name          string
		students      int
		teachers      int
		groupDiscount bool
		wantCount     int
		wantCost      string
	}{
		{"no discount", 20, 2, false, 22, "264.00"},
		{"with discount", 20, 2, true, 22, "211.20"},
		{"discount keeps cents exact", 1, 0, true, 1, "9.60"},
		{"empty class", 0, 0, false, 0, "0.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := QuoteClass(tt.students, tt.teachers, tt.groupDiscount)

			assert.Equal(t, tt.wantCount, q.TicketCount)
			assert.Equal(t, tt.wantCost, q.TotalCost.StringFixed(2))
		})
	}
}

func TestQuoteFamily(t *testing.T) {
	tests := []struct {
		name      string
		adults    int
		children  int
		seniors   int
		wantCount int
		wantCost  string
	}{
		{"two adults one child", 2, 1, 0, 3, "40.00"},
		{"one of each", 1, 1, 1, 3, "37.00"},
		{"nobody", 0, 0, 0, 0, "0.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := QuoteFamily(tt.adults, tt.children, tt.seniors)

			assert.Equal(t, tt.wantCount, q.TicketCount)
			assert.Equal(t, tt.wantCost, q.TotalCost.StringFixed(2))
		})
	}
}

func TestQuotesAreDeterministic(t *testing.T) {
	for i := 0; i < 100; i++ {
		assert.True(t, QuoteFriends().TotalCost.Equal(QuoteFriends().TotalCost))
		assert.True(t, QuoteClass(17, 3, true).TotalCost.Equal(QuoteClass(17, 3, true).TotalCost))
		assert.True(t, QuoteFamily(2, 3, 1).TotalCost.Equal(QuoteFamily(2, 3, 1).TotalCost))
	}
}

func TestTicketCountEqualsSubCountSum(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for i := 0; i < 500; i++ {
		students, teachers := rng.Intn(1000), rng.Intn(1000)
		q := QuoteClass(students, teachers, rng.Intn(2) == 0)
		assert.Equal(t, students+teachers, q.TicketCount)

		adults, children, seniors := rng.Intn(1000), rng.Intn(1000), rng.Intn(1000)
		fq := QuoteFamily(adults, children, seniors)
		assert.Equal(t, adults+children+seniors, fq.TicketCount)

		want := decimal.NewFromInt(int64(adults * 15)).
			Add(decimal.NewFromInt(int64(children * 10))).
			Add(decimal.NewFromInt(int64(seniors * 12)))
		assert.True(t, want.Equal(fq.TotalCost), "family cost mismatch: want %s got %s", want, fq.TotalCost)
	}
}
