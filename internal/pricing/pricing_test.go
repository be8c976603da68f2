package pricing

import (
	"testing"

	"infinite-experiment/skyline/internal/models/entities"
)

func TestFairPrice(t *testing.T) {
	tests := []struct {
		class entities.SeatClass
		want  float64
	}{
		{entities.SeatClassEconomy, 170},
		{entities.SeatClassBusiness, 500},
		{entities.SeatClassFirstClass, 950},
	}

	for _, tt := range tests {
		if got := FairPrice(1000, tt.class); got != tt.want {
			t.Errorf("FairPrice(1000, %s) = %v, want %v", tt.class, got, tt.want)
		}
	}
}

func TestFairPrice_ZeroDistanceIsFixedFee(t *testing.T) {
	if got := FairPrice(0, entities.SeatClassEconomy); got != 50 {
		t.Errorf("Expected 50, got %v", got)
	}
}

func TestFairPricing(t *testing.T) {
	p := FairPricing(1000)
	if p.Economy != 170 || p.Business != 500 || p.FirstClass != 950 {
		t.Errorf("Unexpected fair pricing: %+v", p)
	}
}

func TestBookingRate_AtFairPrice(t *testing.T) {
	fair := FairPrice(1000, entities.SeatClassEconomy)
	if got := BookingRate(fair, fair, 5, 300); got <= 0 {
		t.Errorf("Expected positive booking rate at fair price, got %d", got)
	}
}

func TestBookingRate_CheaperBooksFaster(t *testing.T) {
	cheap := BookingRate(100, 170, 5, 300)
	pricey := BookingRate(300, 170, 5, 300)
	if cheap <= pricey {
		t.Errorf("Expected cheap (%d) > pricey (%d)", cheap, pricey)
	}
}

func TestBookingRate_ZeroDemand(t *testing.T) {
	for _, price := range []float64{0, 50, 170, 5000} {
		if got := BookingRate(price, 170, 0, 0); got != 0 {
			t.Errorf("Expected 0 with zero demand at price %v, got %d", price, got)
		}
	}
}

func TestBookingRate_ZeroPriceIsCapped(t *testing.T) {
	// demand 300 * cap 2 * time 1 * 0.05 = 30
	if got := BookingRate(0, 170, 0, 300); got != 30 {
		t.Errorf("Expected capped rate 30, got %d", got)
	}
}

func TestBookingRate_TimeFactor(t *testing.T) {
	near := BookingRate(170, 170, 0, 1000)
	far := BookingRate(170, 170, 60, 1000)
	if near != 50 {
		t.Errorf("Expected 50 at departure, got %d", near)
	}
	// floor at 0.1 once more than 27 days out
	if far != 5 {
		t.Errorf("Expected floored rate 5 far from departure, got %d", far)
	}
}

func TestBookingRate_BelowOneSeatRoundsToZero(t *testing.T) {
	// 10 * 1 * 0.1 * 0.05 = 0.05
	if got := BookingRate(170, 170, 30, 10); got != 0 {
		t.Errorf("Expected 0, got %d", got)
	}
}
