package api

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"infinite-experiment/skyline/internal/common"
	"infinite-experiment/skyline/internal/constants"
	ctxpkg "infinite-experiment/skyline/internal/context"
	"infinite-experiment/skyline/internal/logging"
	"infinite-experiment/skyline/internal/models/dtos"
)

// saveToFile writes the game through a temp file so a failed save never
// truncates the previous one.
func (h *Handlers) saveToFile(path string) (int64, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return 0, fmt.Errorf("failed to create save directory: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), ".savegame-*")
	if err != nil {
		return 0, fmt.Errorf("failed to create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if err := h.sim().Save(tmp); err != nil {
		tmp.Close()
		return 0, err
	}
	info, err := tmp.Stat()
	if err != nil {
		tmp.Close()
		return 0, err
	}
	if err := tmp.Close(); err != nil {
		return 0, err
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return 0, fmt.Errorf("failed to move save into place: %w", err)
	}
	return info.Size(), nil
}

// SaveGame handles POST /api/v1/game/save
func (h *Handlers) SaveGame() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()
		log := logging.WithRequest(ctxpkg.GetRequestID(r.Context()), r.URL.Path)

		size, err := h.saveToFile(h.deps.SavePath)
		if err != nil {
			log.Errorw("Save failed", "path", h.deps.SavePath, "error", err)
			common.RespondError(w, initTime, err, constants.MsgSaveFailed, http.StatusInternalServerError)
			return
		}

		resp := dtos.SaveGameResponse{
			Path:         h.deps.SavePath,
			Bytes:        size,
			TotalMinutes: h.sim().TotalMinutes(),
		}
		log.Infow("Game saved", "path", resp.Path, "bytes", resp.Bytes)
		common.RespondSuccess(w, initTime, "Game saved", resp)
	}
}

// LoadGame handles POST /api/v1/game/load. The clock keeps its speed; the
// loaded state simply continues from its own time.
func (h *Handlers) LoadGame() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		f, err := os.Open(h.deps.SavePath)
		if err != nil {
			status := http.StatusInternalServerError
			if os.IsNotExist(err) {
				status = http.StatusNotFound
			}
			common.RespondError(w, initTime, err, constants.MsgLoadFailed, status)
			return
		}
		defer f.Close()

		if err := h.sim().Load(f); err != nil {
			common.RespondError(w, initTime, err, constants.MsgLoadFailed, http.StatusUnprocessableEntity)
			return
		}
		common.RespondSuccess(w, initTime, "Game loaded", h.clockResponse())
	}
}
