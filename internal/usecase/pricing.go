package usecase

import "github.com/shopspring/decimal"

// Ticket prices in whole currency units. All arithmetic stays in decimal so
// totals are cent-exact.
var (
	priceStandard  = decimal.NewFromInt(15)
	priceChild     = decimal.NewFromInt(10)
	priceSenior    = decimal.NewFromInt(12)
	priceClassSeat = decimal.NewFromInt(12)

	// 20% group discount
	classDiscountFactor = decimal.NewFromFloat(0.8)
)

const friendsGroupSize = 4

// Quote is the pricing engine output: ticket count plus total cost. Same
// inputs always produce the same quote.
type Quote struct {
	TicketCount int
	TotalCost   decimal.Decimal
}

// QuoteFriends prices the fixed group of 4 friends, independent of input.
func QuoteFriends() Quote {
	return Quote{
		TicketCount: friendsGroupSize,
		TotalCost:   priceStandard.Mul(decimal.NewFromInt(friendsGroupSize)),
	}
}

// QuoteRelatives prices ticketCount standard seats. Counts are not checked
// for non-positive values.
func QuoteRelatives(ticketCount int) Quote {
	return Quote{
		TicketCount: ticketCount,
		TotalCost:   priceStandard.Mul(decimal.NewFromInt(int64(ticketCount))),
	}
}

// QuoteClass prices students plus teachers at the class seat rate, with an
// optional 20% group discount on the whole total.
func QuoteClass(studentCount, teacherCount int, groupDiscount bool) Quote {
	ticketCount := studentCount + teacherCount
	total := priceClassSeat.Mul(decimal.NewFromInt(int64(ticketCount)))
	if groupDiscount {
		total = total.Mul(classDiscountFactor)
	}

	return Quote{
		TicketCount: ticketCount,
		TotalCost:   total,
	}
}

// QuoteFamily prices adults, children and seniors at their own rates.
func QuoteFamily(adultCount, childCount, seniorCount int) Quote {
	total := priceStandard.Mul(decimal.NewFromInt(int64(adultCount))).
		Add(priceChild.Mul(decimal.NewFromInt(int64(childCount)))).
		Add(priceSenior.Mul(decimal.NewFromInt(int64(seniorCount))))

	return Quote{
		TicketCount: adultCount + childCount + seniorCount,
		TotalCost:   total,
	}
}
