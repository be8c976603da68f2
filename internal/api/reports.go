package api

import (
	"net/http"
	"time"

	"infinite-experiment/skyline/internal/common"
	"infinite-experiment/skyline/internal/constants"
	ctxpkg "infinite-experiment/skyline/internal/context"
	"infinite-experiment/skyline/internal/logging"
)

// RouteReport handles GET /api/v1/reports/routes. It reads archived flights,
// so routes only show up after the archiver has run.
func (h *Handlers) RouteReport() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		reports := h.deps.Repo.Reports
		if reports == nil {
			common.RespondError(w, initTime, nil, constants.MsgReportsDisabled, http.StatusServiceUnavailable)
			return
		}

		rows, err := reports.RouteProfitability(r.Context())
		if err != nil {
			logging.WithRequest(ctxpkg.GetRequestID(r.Context()), r.URL.Path).Errorw("Route report failed", "error", err)
			common.RespondError(w, initTime, err, constants.MsgReportFailed, http.StatusInternalServerError)
			return
		}
		common.RespondSuccess(w, initTime, "Route report fetched", rows)
	}
}
