package handler

import (
	"net/http"

	"inventaris/internal/dashboard"
	"inventaris/pkg/httpapi"
	"inventaris/pkg/logger"
)

type DashboardHandler struct {
	uc     dashboard.UseCase
	logger logger.ZapLogger
}

func NewDashboardHandler(uc dashboard.UseCase, log logger.ZapLogger) *DashboardHandler {
	return &DashboardHandler{
		uc:     uc,
		logger: log,
	}
}

// Summary handles GET /dashboard.
func (h *DashboardHandler) Summary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.uc.Summary(r.Context())
	if err != nil {
		httpapi.Error(w, h.logger, err)
		return
	}
	httpapi.JSON(w, http.StatusOK, summary)
}
