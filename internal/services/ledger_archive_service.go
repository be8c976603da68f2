package services

import (
	"context"
	"fmt"

	"infinite-experiment/skyline/internal/db/repositories"
	"infinite-experiment/skyline/internal/models/entities"
	gormModels "infinite-experiment/skyline/internal/models/gorm"

	gormlib "gorm.io/gorm"
)

const archiveLookupChunk = 500

// LedgerArchiveService persists completed days and finished flights.
type LedgerArchiveService struct {
	records *repositories.FinancialRecordRepository
	flights *repositories.FlightLogRepository
}

func NewLedgerArchiveService(db *gormlib.DB) *LedgerArchiveService {
	return &LedgerArchiveService{
		records: repositories.NewFinancialRecordRepository(db),
		flights: repositories.NewFlightLogRepository(db),
	}
}

// Archive upserts every financial record in the snapshot and inserts the
// finished flights not yet archived. It returns how many flights were new.
func (s *LedgerArchiveService) Archive(ctx context.Context, snap LedgerSnapshot) (int, error) {
	records := make([]gormModels.FinancialRecord, 0, len(snap.FinancialHistory))
	for _, r := range snap.FinancialHistory {
		records = append(records, gormModels.FinancialRecord{
			Day:      r.Date,
			Revenue:  r.Revenue,
			Expenses: r.Expenses,
			Profit:   r.Profit,
		})
	}
	if err := s.records.UpsertMany(ctx, records); err != nil {
		return 0, fmt.Errorf("failed to archive financial records: %w", err)
	}

	pending := []gormModels.FlightLog{}
	for start := 0; start < len(snap.FinishedFlights); start += archiveLookupChunk {
		end := min(start+archiveLookupChunk, len(snap.FinishedFlights))
		chunk := snap.FinishedFlights[start:end]

		ids := make([]string, 0, len(chunk))
		for _, f := range chunk {
			ids = append(ids, f.ID)
		}
		existing, err := s.flights.ExistingIDs(ctx, ids)
		if err != nil {
			return 0, fmt.Errorf("failed to look up archived flights: %w", err)
		}

		for _, f := range chunk {
			if _, done := existing[f.ID]; !done {
				pending = append(pending, toFlightLog(f))
			}
		}
	}

	if err := s.flights.UpsertMany(ctx, pending); err != nil {
		return 0, fmt.Errorf("failed to archive flights: %w", err)
	}
	return len(pending), nil
}

func toFlightLog(f entities.Flight) gormModels.FlightLog {
	return gormModels.FlightLog{
		ID:                   f.ID,
		FlightNumber:         f.FlightNumber,
		DepartureAirportCode: f.DepartureAirportCode,
		ArrivalAirportCode:   f.ArrivalAirportCode,
		PlaneID:              f.PlaneID,
		ScheduleID:           f.ScheduleID,
		Status:               string(f.Status),
		DepartureTime:        f.DepartureTime,
		ArrivalTime:          f.ArrivalTime,
		DistanceNm:           f.DistanceNm,
		EconomyPax:           f.Passengers.Economy,
		BusinessPax:          f.Passengers.Business,
		FirstClassPax:        f.Passengers.FirstClass,
		Revenue:              f.Revenue,
		Cost:                 f.Cost,
	}
}
