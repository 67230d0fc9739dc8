package http

import (
	"net/http"

	"github.com/nexus-os/office-backend/internal/domain/dashboard"
	"github.com/nexus-os/office-backend/internal/handler/http/response"
)

type DashboardHandler interface {
	// GetTodayStats returns headcount figures for the current day
	GetTodayStats(w http.ResponseWriter, r *http.Request)
}

type dashboardHandlerImpl struct {
	dashboardService dashboard.DashboardService
}

func NewDashboardHandler(dashboardService dashboard.DashboardService) DashboardHandler {
	return &dashboardHandlerImpl{dashboardService: dashboardService}
}

// GetTodayStats handles GET /dashboard/today
func (h *dashboardHandlerImpl) GetTodayStats(w http.ResponseWriter, r *http.Request) {
	result, err := h.dashboardService.TodayStats(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
