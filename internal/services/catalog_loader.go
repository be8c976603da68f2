package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"infinite-experiment/skyline/internal/data"
	"infinite-experiment/skyline/internal/db/repositories"
	"infinite-experiment/skyline/internal/logging"
	"infinite-experiment/skyline/internal/models/entities"
	gormModels "infinite-experiment/skyline/internal/models/gorm"

	gormlib "gorm.io/gorm"
)

// CatalogLoader seeds the reference tables from the embedded JSON and reads
// them back in catalog order. Without a database it serves the embedded
// tables directly.
type CatalogLoader struct {
	airports *repositories.AirportRepository
	models   *repositories.PlaneModelRepository
}

func NewCatalogLoader(db *gormlib.DB) *CatalogLoader {
	if db == nil {
		return &CatalogLoader{}
	}
	return &CatalogLoader{
		airports: repositories.NewAirportRepository(db),
		models:   repositories.NewPlaneModelRepository(db),
	}
}

// Load returns the airport and plane model catalogs.
func (c *CatalogLoader) Load(ctx context.Context) ([]entities.Airport, []entities.PlaneModel, error) {
	airports, err := DecodeAirports(bytes.NewReader(data.AirportsJSON))
	if err != nil {
		return nil, nil, err
	}
	models, err := DecodePlaneModels(bytes.NewReader(data.PlanesJSON))
	if err != nil {
		return nil, nil, err
	}

	if c.airports == nil || c.models == nil {
		logging.Info("Catalogs loaded from embedded tables", "airports", len(airports), "models", len(models))
		return airports, models, nil
	}

	if err := c.airports.ReplaceAll(ctx, toAirportRows(airports)); err != nil {
		return nil, nil, fmt.Errorf("failed to store airports: %w", err)
	}
	if err := c.models.ReplaceAll(ctx, toPlaneModelRows(models)); err != nil {
		return nil, nil, fmt.Errorf("failed to store plane models: %w", err)
	}

	airportRows, err := c.airports.ListOrdered(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read airports: %w", err)
	}
	modelRows, err := c.models.ListOrdered(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read plane models: %w", err)
	}

	logging.Info("Catalogs seeded", "airports", len(airportRows), "models", len(modelRows))
	return fromAirportRows(airportRows), fromPlaneModelRows(modelRows), nil
}

// DecodeAirports parses an ordered JSON array of airports. Records without a
// code or name are skipped.
func DecodeAirports(r io.Reader) ([]entities.Airport, error) {
	var raw []entities.Airport
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, fmt.Errorf("failed to decode airports: %w", err)
	}

	out := make([]entities.Airport, 0, len(raw))
	for _, a := range raw {
		a.Code = strings.ToUpper(strings.TrimSpace(a.Code))
		a.Name = strings.TrimSpace(a.Name)
		if a.Code == "" || a.Name == "" {
			continue
		}
		out = append(out, a)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("no valid airports found")
	}
	return out, nil
}

// DecodePlaneModels parses an ordered JSON array of plane models. Models
// without an id or a positive speed are skipped.
func DecodePlaneModels(r io.Reader) ([]entities.PlaneModel, error) {
	var raw []entities.PlaneModel
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, fmt.Errorf("failed to decode plane models: %w", err)
	}

	out := make([]entities.PlaneModel, 0, len(raw))
	for _, m := range raw {
		m.ID = strings.TrimSpace(m.ID)
		if m.ID == "" || m.Speed <= 0 {
			continue
		}
		out = append(out, m)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("no valid plane models found")
	}
	return out, nil
}

func toAirportRows(airports []entities.Airport) []gormModels.Airport {
	rows := make([]gormModels.Airport, 0, len(airports))
	for i, a := range airports {
		rows = append(rows, gormModels.Airport{
			Code:             a.Code,
			Position:         i,
			Name:             a.Name,
			City:             a.City,
			Country:          a.Country,
			Latitude:         a.Lat,
			Longitude:        a.Lng,
			OpensAt:          a.OperatingHours.Open,
			ClosesAt:         a.OperatingHours.Close,
			DemandBusiness:   a.Demand.Business,
			DemandLeisure:    a.Demand.Leisure,
			DemandFirstClass: a.Demand.FirstClass,
			RunwayLength:     a.RunwayLength,
			LandingFee:       a.LandingFee,
		})
	}
	return rows
}

func fromAirportRows(rows []gormModels.Airport) []entities.Airport {
	out := make([]entities.Airport, 0, len(rows))
	for _, r := range rows {
		out = append(out, entities.Airport{
			Code:           r.Code,
			Name:           r.Name,
			City:           r.City,
			Country:        r.Country,
			Lat:            r.Latitude,
			Lng:            r.Longitude,
			OperatingHours: entities.OperatingHours{Open: r.OpensAt, Close: r.ClosesAt},
			Demand: entities.AirportDemand{
				Business:   r.DemandBusiness,
				Leisure:    r.DemandLeisure,
				FirstClass: r.DemandFirstClass,
			},
			RunwayLength: r.RunwayLength,
			LandingFee:   r.LandingFee,
		})
	}
	return out
}

func toPlaneModelRows(models []entities.PlaneModel) []gormModels.PlaneModel {
	rows := make([]gormModels.PlaneModel, 0, len(models))
	for i, m := range models {
		rows = append(rows, gormModels.PlaneModel{
			ID:                 m.ID,
			Position:           i,
			Manufacturer:       m.Manufacturer,
			Name:               m.Name,
			RangeNm:            m.Range,
			SpeedKts:           m.Speed,
			EconomySeats:       m.DefaultSeats.Economy,
			BusinessSeats:      m.DefaultSeats.Business,
			FirstClassSeats:    m.DefaultSeats.FirstClass,
			MinRunwayLength:    m.MinRunwayLength,
			PurchasePrice:      m.PurchasePrice,
			OperatingCostPerNm: m.OperatingCostPerNm,
			FuelPerHour:        m.FuelPerHour,
		})
	}
	return rows
}

func fromPlaneModelRows(rows []gormModels.PlaneModel) []entities.PlaneModel {
	out := make([]entities.PlaneModel, 0, len(rows))
	for _, r := range rows {
		out = append(out, entities.PlaneModel{
			ID:           r.ID,
			Manufacturer: r.Manufacturer,
			Name:         r.Name,
			Range:        r.RangeNm,
			Speed:        r.SpeedKts,
			DefaultSeats: entities.SeatLayout{
				Economy:    r.EconomySeats,
				Business:   r.BusinessSeats,
				FirstClass: r.FirstClassSeats,
			},
			MinRunwayLength:    r.MinRunwayLength,
			PurchasePrice:      r.PurchasePrice,
			OperatingCostPerNm: r.OperatingCostPerNm,
			FuelPerHour:        r.FuelPerHour,
		})
	}
	return out
}
