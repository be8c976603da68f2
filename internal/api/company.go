package api

import (
	"net/http"
	"strings"
	"time"

	"infinite-experiment/skyline/internal/common"
	"infinite-experiment/skyline/internal/constants"
	"infinite-experiment/skyline/internal/models/dtos"
)

func (h *Handlers) companyResponse() dtos.CompanyResponse {
	overview := h.sim().Company()
	return dtos.CompanyResponse{
		CompanyOverview:      overview,
		CashFormatted:        common.FormatCurrency(overview.Cash),
		ProfitTodayFormatted: common.FormatCurrency(overview.ProfitToday),
	}
}

// GetCompany handles GET /api/v1/company
func (h *Handlers) GetCompany() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()
		common.RespondSuccess(w, initTime, "Company fetched", h.companyResponse())
	}
}

// RenameCompany handles PUT /api/v1/company/name
func (h *Handlers) RenameCompany() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		var req dtos.RenameCompanyRequest
		if err := decodeBody(r, &req); err != nil || strings.TrimSpace(req.Name) == "" {
			common.RespondError(w, initTime, err, constants.MsgInvalidBody, http.StatusBadRequest)
			return
		}

		h.sim().SetCompanyName(req.Name)
		common.RespondSuccess(w, initTime, "Company renamed", h.companyResponse())
	}
}
