package services

import (
	"errors"
	"testing"

	"infinite-experiment/skyline/internal/models/entities"
)

func newTestFleet(t *testing.T, cash float64) (*FleetRegistry, *CompanyLedger) {
	company := NewCompanyLedger("", cash, nil)
	fleet := NewFleetRegistry(company, nil)
	_, models := testCatalogs(t)
	fleet.LoadCatalog(models)
	return fleet, company
}

func TestFleetRegistry_CatalogContents(t *testing.T) {
	fleet, _ := newTestFleet(t, 0)

	if n := len(fleet.Models()); n < 8 {
		t.Errorf("Expected at least 8 models, got %d", n)
	}
	e175, ok := fleet.GetModel("e175")
	if !ok || e175.PurchasePrice != 2_500_000 {
		t.Errorf("Expected e175 priced 2500000, got %+v", e175)
	}
	if _, ok := fleet.GetModel("b777-200er"); !ok {
		t.Errorf("Expected b777-200er in catalog")
	}
}

func TestFleetRegistry_PurchaseSuccess(t *testing.T) {
	fleet, company := newTestFleet(t, 10_000_000)

	plane, err := fleet.Purchase("e175", "N175SK", "jfk")
	if err != nil {
		t.Fatalf("Expected purchase to succeed, got %v", err)
	}
	if company.Cash() != 7_500_000 {
		t.Errorf("Expected 7500000 after purchase, got %f", company.Cash())
	}
	if fleet.Len() != 1 {
		t.Errorf("Expected fleet size 1, got %d", fleet.Len())
	}

	model, _ := fleet.GetModel("e175")
	if plane.Status != entities.PlaneStatusAvailable || plane.TotalFlightHours != 0 ||
		plane.CurrentFlightID != "" || plane.CurrentAirportCode != "JFK" {
		t.Errorf("Unexpected new plane: %+v", plane)
	}
	if plane.Seats != model.DefaultSeats {
		t.Errorf("Expected seats copied from model, got %+v", plane.Seats)
	}

	// seats are the plane's own copy
	plane.Seats.Economy = 1
	if m, _ := fleet.GetModel("e175"); m.DefaultSeats.Economy == 1 {
		t.Errorf("Changing plane seats must not change the model")
	}
}

func TestFleetRegistry_PurchaseInsufficientFunds(t *testing.T) {
	fleet, company := newTestFleet(t, 100)

	for _, m := range fleet.Models() {
		_, err := fleet.Purchase(m.ID, "N1", "JFK")
		if !errors.Is(err, ErrInsufficientFunds) {
			t.Errorf("%s: expected ErrInsufficientFunds, got %v", m.ID, err)
		}
	}
	if fleet.Len() != 0 || company.Cash() != 100 {
		t.Errorf("Expected no change, got fleet %d cash %f", fleet.Len(), company.Cash())
	}
}

func TestFleetRegistry_PurchaseExactCash(t *testing.T) {
	fleet, company := newTestFleet(t, 2_500_000)
	if _, err := fleet.Purchase("e175", "", "JFK"); err != nil {
		t.Fatalf("Expected purchase with exact cash to succeed, got %v", err)
	}
	if company.Cash() != 0 {
		t.Errorf("Expected zero cash, got %f", company.Cash())
	}
	if reg := fleet.List()[0].Registration; reg == "" {
		t.Errorf("Expected generated registration")
	}
}

func TestFleetRegistry_PurchaseUnknownModel(t *testing.T) {
	fleet, company := newTestFleet(t, 10_000_000)
	if _, err := fleet.Purchase("concorde", "N1", "JFK"); !errors.Is(err, ErrUnknownModel) {
		t.Errorf("Expected ErrUnknownModel, got %v", err)
	}
	if fleet.Len() != 0 || company.Cash() != 10_000_000 {
		t.Errorf("Expected no change")
	}
}

func TestFleetRegistry_Projections(t *testing.T) {
	fleet, _ := newTestFleet(t, 100_000_000)
	a, _ := fleet.Purchase("e175", "N1", "JFK")
	b, _ := fleet.Purchase("e175", "N2", "JFK")
	fleet.Purchase("a320neo", "N3", "LAX")

	fleet.SetStatus(b.ID, entities.PlaneStatusMaintenance)

	if n := len(fleet.Available()); n != 2 {
		t.Errorf("Expected 2 available, got %d", n)
	}
	atJFK := fleet.AtAirport("JFK")
	if len(atJFK) != 1 || atJFK[0].ID != a.ID {
		t.Errorf("Expected only %s available at JFK, got %+v", a.ID, atJFK)
	}

	fleet.UpdateLocation(a.ID, "SFO")
	fleet.AddFlightHours(a.ID, 1.5)
	fleet.BindFlight(a.ID, "f1")
	got, _ := fleet.GetPlane(a.ID)
	if got.CurrentAirportCode != "SFO" || got.TotalFlightHours != 1.5 || got.CurrentFlightID != "f1" {
		t.Errorf("Mutators not applied: %+v", got)
	}
	fleet.ReleaseFlight(a.ID)
	if got.CurrentFlightID != "" {
		t.Errorf("Expected flight released")
	}

	// unknown ids are ignored
	fleet.SetStatus("missing", entities.PlaneStatusInFlight)
}
