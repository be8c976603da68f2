package services

import (
	"fmt"
	"strings"

	"infinite-experiment/skyline/internal/logging"
	"infinite-experiment/skyline/internal/metrics"
	"infinite-experiment/skyline/internal/models/entities"

	"github.com/google/uuid"
)

// FleetRegistry holds the purchasable model catalog and the owned fleet.
// Its mutators are permissive: status and binding transitions are validated by
// the flight ledger, not here.
type FleetRegistry struct {
	models     []entities.PlaneModel
	modelIndex map[string]int

	planes     []*entities.OwnedPlane
	planeIndex map[string]*entities.OwnedPlane

	company *CompanyLedger
	metrics *metrics.MetricsRegistry
}

func NewFleetRegistry(company *CompanyLedger, m *metrics.MetricsRegistry) *FleetRegistry {
	return &FleetRegistry{
		modelIndex: map[string]int{},
		planeIndex: map[string]*entities.OwnedPlane{},
		company:    company,
		metrics:    m,
	}
}

// LoadCatalog replaces the model catalog. Owned planes are left alone.
func (r *FleetRegistry) LoadCatalog(models []entities.PlaneModel) {
	r.models = make([]entities.PlaneModel, 0, len(models))
	r.modelIndex = make(map[string]int, len(models))
	for _, m := range models {
		if i, dup := r.modelIndex[m.ID]; dup {
			r.models[i] = m
			continue
		}
		r.modelIndex[m.ID] = len(r.models)
		r.models = append(r.models, m)
	}
}

func (r *FleetRegistry) Models() []entities.PlaneModel {
	out := make([]entities.PlaneModel, len(r.models))
	copy(out, r.models)
	return out
}

func (r *FleetRegistry) GetModel(id string) (entities.PlaneModel, bool) {
	i, ok := r.modelIndex[id]
	if !ok {
		return entities.PlaneModel{}, false
	}
	return r.models[i], true
}

// GetPlane returns the live record. Callers outside the simulation receive
// copies through Simulation.
func (r *FleetRegistry) GetPlane(id string) (*entities.OwnedPlane, bool) {
	p, ok := r.planeIndex[id]
	return p, ok
}

// ModelOf resolves the model of an owned plane.
func (r *FleetRegistry) ModelOf(planeID string) (entities.PlaneModel, bool) {
	p, ok := r.planeIndex[planeID]
	if !ok {
		return entities.PlaneModel{}, false
	}
	return r.GetModel(p.ModelID)
}

// Purchase buys one aircraft of modelID and parks it at airportCode. Neither
// the fleet nor cash change when the model is unknown or cash is short.
func (r *FleetRegistry) Purchase(modelID, registration, airportCode string) (*entities.OwnedPlane, error) {
	model, ok := r.GetModel(modelID)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownModel, modelID)
	}
	if r.company.Cash() < model.PurchasePrice {
		return nil, fmt.Errorf("%w: %s costs %.0f", ErrInsufficientFunds, model.ID, model.PurchasePrice)
	}

	if strings.TrimSpace(registration) == "" {
		registration = generateRegistration()
	}

	plane := &entities.OwnedPlane{
		ID:                 uuid.NewString(),
		ModelID:            model.ID,
		Registration:       registration,
		Seats:              model.DefaultSeats,
		Status:             entities.PlaneStatusAvailable,
		CurrentAirportCode: strings.ToUpper(airportCode),
	}

	r.company.DeductCash(model.PurchasePrice)
	r.insert(plane)

	logging.Info("Aircraft purchased",
		"plane_id", plane.ID,
		"model", model.ID,
		"registration", plane.Registration,
		"airport", plane.CurrentAirportCode,
		"price", model.PurchasePrice,
	)
	return plane, nil
}

func (r *FleetRegistry) SetStatus(planeID string, status entities.PlaneStatus) {
	if p, ok := r.planeIndex[planeID]; ok {
		p.Status = status
	}
}

func (r *FleetRegistry) UpdateLocation(planeID, airportCode string) {
	if p, ok := r.planeIndex[planeID]; ok {
		p.CurrentAirportCode = airportCode
	}
}

func (r *FleetRegistry) BindFlight(planeID, flightID string) {
	if p, ok := r.planeIndex[planeID]; ok {
		p.CurrentFlightID = flightID
	}
}

func (r *FleetRegistry) ReleaseFlight(planeID string) {
	if p, ok := r.planeIndex[planeID]; ok {
		p.CurrentFlightID = ""
	}
}

func (r *FleetRegistry) AddFlightHours(planeID string, hours float64) {
	if p, ok := r.planeIndex[planeID]; ok {
		p.TotalFlightHours += hours
	}
}

// List returns the fleet in purchase order.
func (r *FleetRegistry) List() []entities.OwnedPlane {
	return r.filter(func(*entities.OwnedPlane) bool { return true })
}

func (r *FleetRegistry) Available() []entities.OwnedPlane {
	return r.filter(func(p *entities.OwnedPlane) bool {
		return p.Status == entities.PlaneStatusAvailable
	})
}

// AtAirport lists available planes parked at code.
func (r *FleetRegistry) AtAirport(code string) []entities.OwnedPlane {
	return r.filter(func(p *entities.OwnedPlane) bool {
		return p.Status == entities.PlaneStatusAvailable && strings.EqualFold(p.CurrentAirportCode, code)
	})
}

func (r *FleetRegistry) Len() int {
	return len(r.planes)
}

func (r *FleetRegistry) filter(keep func(*entities.OwnedPlane) bool) []entities.OwnedPlane {
	out := []entities.OwnedPlane{}
	for _, p := range r.planes {
		if keep(p) {
			out = append(out, *p)
		}
	}
	return out
}

func (r *FleetRegistry) insert(p *entities.OwnedPlane) {
	r.planes = append(r.planes, p)
	r.planeIndex[p.ID] = p
	if r.metrics != nil {
		r.metrics.FleetSize.Set(float64(len(r.planes)))
	}
}

func (r *FleetRegistry) restore(planes []entities.OwnedPlane) {
	r.planes = nil
	r.planeIndex = make(map[string]*entities.OwnedPlane, len(planes))
	for i := range planes {
		p := planes[i]
		r.insert(&p)
	}
	if r.metrics != nil {
		r.metrics.FleetSize.Set(float64(len(r.planes)))
	}
}

func generateRegistration() string {
	id := strings.ReplaceAll(uuid.NewString(), "-", "")
	return "N" + strings.ToUpper(id[:5])
}
