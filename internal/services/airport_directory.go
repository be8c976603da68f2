package services

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"infinite-experiment/skyline/internal/common"
	"infinite-experiment/skyline/internal/constants"
	"infinite-experiment/skyline/internal/geo"
	"infinite-experiment/skyline/internal/logging"
	"infinite-experiment/skyline/internal/metrics"
	"infinite-experiment/skyline/internal/models/entities"
)

const distanceCacheTTL = 24 * time.Hour

// AirportDirectory is the read-only airport catalog. Great-circle distances
// between pairs are memoised in the injected cache.
type AirportDirectory struct {
	airports []entities.Airport
	index    map[string]int
	cache    common.CacheInterface
	metrics  *metrics.MetricsRegistry
}

func NewAirportDirectory(cache common.CacheInterface, m *metrics.MetricsRegistry) *AirportDirectory {
	return &AirportDirectory{
		index:   map[string]int{},
		cache:   cache,
		metrics: m,
	}
}

// Load replaces the catalog wholesale. Calling it twice with the same list
// leaves the directory unchanged.
func (d *AirportDirectory) Load(list []entities.Airport) {
	d.airports = make([]entities.Airport, 0, len(list))
	d.index = make(map[string]int, len(list))
	for _, a := range list {
		code := strings.ToUpper(a.Code)
		if i, dup := d.index[code]; dup {
			d.airports[i] = a
			continue
		}
		d.index[code] = len(d.airports)
		d.airports = append(d.airports, a)
	}

	if d.cache != nil {
		d.cache.DeletePrefix(string(constants.CachePrefixRouteDistance))
	}
	logging.Info("Airport directory loaded", "airports", len(d.airports))
}

func (d *AirportDirectory) Len() int {
	return len(d.airports)
}

// All returns the catalog in load order.
func (d *AirportDirectory) All() []entities.Airport {
	out := make([]entities.Airport, len(d.airports))
	copy(out, d.airports)
	return out
}

func (d *AirportDirectory) GetByCode(code string) (entities.Airport, bool) {
	i, ok := d.index[strings.ToUpper(code)]
	if !ok {
		return entities.Airport{}, false
	}
	return d.airports[i], true
}

// Search matches query case-insensitively against code, name and city.
// An empty query returns the whole catalog.
func (d *AirportDirectory) Search(query string) []entities.Airport {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return d.All()
	}

	out := []entities.Airport{}
	for _, a := range d.airports {
		if strings.Contains(strings.ToLower(a.Code), q) ||
			strings.Contains(strings.ToLower(a.Name), q) ||
			strings.Contains(strings.ToLower(a.City), q) {
			out = append(out, a)
		}
	}
	return out
}

// SortedByDemand orders airports by total demand, highest first. Ties keep
// load order.
func (d *AirportDirectory) SortedByDemand() []entities.Airport {
	out := d.All()
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Demand.Total() > out[j].Demand.Total()
	})
	return out
}

// Route returns the distance between two known airports.
func (d *AirportDirectory) Route(from, to string) (float64, error) {
	a, ok := d.GetByCode(from)
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrUnknownAirport, from)
	}
	b, ok := d.GetByCode(to)
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrUnknownAirport, to)
	}

	if d.cache == nil {
		return geo.DistanceNm(a.Lat, a.Lng, b.Lat, b.Lng), nil
	}

	key := routeCacheKey(a.Code, b.Code)
	if v, found := d.cache.Get(key); found {
		if dist, ok := v.(float64); ok {
			d.recordCache(true)
			return dist, nil
		}
	}
	d.recordCache(false)

	dist := geo.DistanceNm(a.Lat, a.Lng, b.Lat, b.Lng)
	d.cache.Set(key, dist, distanceCacheTTL)
	return dist, nil
}

// GreatCircle is Route without the cache.
func (d *AirportDirectory) GreatCircle(from, to string) (float64, error) {
	a, ok := d.GetByCode(from)
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrUnknownAirport, from)
	}
	b, ok := d.GetByCode(to)
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrUnknownAirport, to)
	}
	return geo.DistanceNm(a.Lat, a.Lng, b.Lat, b.Lng), nil
}

// DistanceNm is Route with unknown airports reported as zero distance.
func (d *AirportDirectory) DistanceNm(from, to string) float64 {
	dist, err := d.Route(from, to)
	if err != nil {
		return 0
	}
	return dist
}

// FlightDurationMinutes is zero when either airport is unknown or the speed
// is not positive.
func (d *AirportDirectory) FlightDurationMinutes(from, to string, speedKnots float64) float64 {
	dist, err := d.Route(from, to)
	if err != nil {
		return 0
	}
	minutes, err := geo.DurationMinutes(dist, speedKnots)
	if err != nil {
		return 0
	}
	return minutes
}

// distance is symmetric so both directions share an entry
func routeCacheKey(a, b string) string {
	a, b = strings.ToUpper(a), strings.ToUpper(b)
	if b < a {
		a, b = b, a
	}
	return string(constants.CachePrefixRouteDistance) + a + "_" + b
}

func (d *AirportDirectory) recordCache(hit bool) {
	if d.metrics == nil {
		return
	}
	pattern := string(constants.CachePrefixRouteDistance)
	if hit {
		d.metrics.CacheHitsTotal.WithLabelValues(pattern).Inc()
	} else {
		d.metrics.CacheMissesTotal.WithLabelValues(pattern).Inc()
	}
}
