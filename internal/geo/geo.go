// Package geo holds the great-circle and block-time math used by the simulator.
package geo

import (
	"errors"
	"math"
)

const EarthRadiusNm = 3440.065

var ErrInvalidSpeed = errors.New("speed must be positive")

type Point struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

func toRadians(deg float64) float64 {
	return deg * math.Pi / 180
}

// DistanceNm returns the haversine distance between two coordinates in nautical miles.
func DistanceNm(lat1, lng1, lat2, lng2 float64) float64 {
	dLat := toRadians(lat2 - lat1)
	dLng := toRadians(lng2 - lng1)
	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(toRadians(lat1))*math.Cos(toRadians(lat2))*math.Sin(dLng/2)*math.Sin(dLng/2)
	// rounding can push a marginally past 1 for antipodal points
	a = math.Min(1, math.Max(0, a))
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	return EarthRadiusNm * c
}

// DurationMinutes converts a distance flown at speedKnots into whole block minutes.
func DurationMinutes(distanceNm, speedKnots float64) (float64, error) {
	if speedKnots <= 0 {
		return 0, ErrInvalidSpeed
	}
	return math.Ceil(distanceNm / speedKnots * 60), nil
}

// Interpolate returns the point a fraction t of the way from `from` to `to`.
// t is clamped to [0,1]. Display only.
func Interpolate(from, to Point, t float64) Point {
	t = math.Max(0, math.Min(1, t))
	return Point{
		Lat: from.Lat + (to.Lat-from.Lat)*t,
		Lng: from.Lng + (to.Lng-from.Lng)*t,
	}
}
