package core

import (
	"math"
)

const (
	DefaultTicketPrice = 49
	DefaultFeePercent  = 10
)

// Pricing computes ticket prices in whole currency units.
type Pricing struct {
	UnitPrice  int
	FeePercent int
}

// DefaultPricing is 49 per ticket plus a 10% service fee.
func DefaultPricing() Pricing {
	return Pricing{UnitPrice: DefaultTicketPrice, FeePercent: DefaultFeePercent}
}

// Quote is the price breakdown of a number of tickets.
type Quote struct {
	TicketCount int
	UnitPrice   int
	Subtotal    int
	Fee         int
	Total       int
}

// QuoteFor rounds the fee half away from zero.
func (p Pricing) QuoteFor(ticketCount int) Quote {
	subtotal := p.UnitPrice * ticketCount
	fee := int(math.Round(float64(subtotal) * float64(p.FeePercent) / 100))

	return Quote{
		TicketCount: ticketCount,
		UnitPrice:   p.UnitPrice,
		Subtotal:    subtotal,
		Fee:         fee,
		Total:       subtotal + fee,
	}
}
