package services

import (
	"bufio"
	"bytes"
	"fmt"
	"io"

	"infinite-experiment/skyline/internal/logging"
	"infinite-experiment/skyline/internal/models/entities"

	"github.com/klauspost/compress/zstd"
	"github.com/vmihailenco/msgpack/v5"
)

const saveGameVersion = 1

var zstdMagic = []byte{0x28, 0xb5, 0x2f, 0xfd}

// saveGame is the complete mutable state. Reference catalogs are not part of
// it; they are reloaded from the embedded tables.
type saveGame struct {
	Version      int                   `msgpack:"version"`
	TotalMinutes float64               `msgpack:"total_minutes"`
	Fleet        []entities.OwnedPlane `msgpack:"fleet"`
	Flights      flightLedgerState     `msgpack:"flights"`
	Company      companyState          `msgpack:"company"`
}

// Save writes the simulation state to w as zstd-compressed msgpack.
func (s *Simulation) Save(w io.Writer) error {
	s.mu.Lock()
	game := saveGame{
		Version:      saveGameVersion,
		TotalMinutes: s.totalMinutes,
		Fleet:        s.fleet.List(),
		Flights:      s.flights.state(),
		Company:      s.company.state(),
	}
	s.mu.Unlock()

	zw, err := zstd.NewWriter(w)
	if err != nil {
		return fmt.Errorf("failed to create compressor: %w", err)
	}
	if err := msgpack.NewEncoder(zw).Encode(&game); err != nil {
		zw.Close()
		return fmt.Errorf("failed to encode save game: %w", err)
	}
	if err := zw.Close(); err != nil {
		return fmt.Errorf("failed to flush save game: %w", err)
	}
	return nil
}

// Load replaces the simulation state with the one read from r. Both
// compressed and plain msgpack saves are accepted. On error the current state
// is left untouched.
func (s *Simulation) Load(r io.Reader) error {
	br := bufio.NewReader(r)

	var src io.Reader = br
	if head, _ := br.Peek(len(zstdMagic)); bytes.Equal(head, zstdMagic) {
		zr, err := zstd.NewReader(br, zstd.WithDecoderConcurrency(1))
		if err != nil {
			return fmt.Errorf("failed to open save game: %w", err)
		}
		defer zr.Close()
		src = zr
	}

	var game saveGame
	if err := msgpack.NewDecoder(src).Decode(&game); err != nil {
		return fmt.Errorf("failed to decode save game: %w", err)
	}
	if game.Version != saveGameVersion {
		return fmt.Errorf("unsupported save game version %d", game.Version)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.totalMinutes = game.TotalMinutes
	s.fleet.restore(game.Fleet)
	s.flights.restore(game.Flights)
	s.company.restore(game.Company)

	logging.Info("Save game loaded",
		"total_minutes", game.TotalMinutes,
		"fleet", len(game.Fleet),
		"flights", len(game.Flights.Flights),
	)
	return nil
}
