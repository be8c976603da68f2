// Package pricing implements the fare reference and the price-elastic booking curve.
package pricing

import (
	"math"

	"infinite-experiment/skyline/internal/models/entities"
)

// BookingFraction is the share of average daily demand converted into
// bookings on a single tick.
const BookingFraction = 0.05

const (
	maxPriceFactor    = 2.0
	minTimeFactor     = 0.1
	bookingWindowDays = 30.0
)

type classRate struct {
	perNm float64
	fixed float64
}

var classRates = map[entities.SeatClass]classRate{
	entities.SeatClassEconomy:    {perNm: 0.12, fixed: 50},
	entities.SeatClassBusiness:   {perNm: 0.35, fixed: 150},
	entities.SeatClassFirstClass: {perNm: 0.65, fixed: 300},
}

// FairPrice is the market price a traveller expects for distanceNm in class.
// Unknown classes price at zero.
func FairPrice(distanceNm float64, class entities.SeatClass) float64 {
	r, ok := classRates[class]
	if !ok {
		return 0
	}
	return math.Round(distanceNm*r.perNm + r.fixed)
}

// FairPricing returns FairPrice for every seat class.
func FairPricing(distanceNm float64) entities.TicketPricing {
	return entities.TicketPricing{
		Economy:    FairPrice(distanceNm, entities.SeatClassEconomy),
		Business:   FairPrice(distanceNm, entities.SeatClassBusiness),
		FirstClass: FairPrice(distanceNm, entities.SeatClassFirstClass),
	}
}

// BookingRate returns the whole number of seats sold on one tick.
//
// Prices under fair accelerate sales super-linearly up to a 2x cap; prices
// over fair slow them. Far from departure sales are throttled to 10% and
// ramp linearly to full rate over the last 30 days.
func BookingRate(price, fairPrice, daysUntilDeparture, demand float64) int {
	if demand <= 0 {
		return 0
	}
	priceRatio := fairPrice / math.Max(price, 1)
	priceFactor := math.Min(math.Pow(priceRatio, 1.5), maxPriceFactor)
	timeFactor := math.Max(minTimeFactor, 1-daysUntilDeparture/bookingWindowDays)
	return int(math.Floor(demand * priceFactor * timeFactor * BookingFraction))
}
