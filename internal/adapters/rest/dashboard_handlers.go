package rest

import (
	"net/http"

	"brokerage-service/internal/contextkeys"
	"brokerage-service/internal/core/port"
	"brokerage-service/internal/core/port/usecases_port"
)

type DashboardHandler struct {
	dashboardUC usecases_port.GetDashboardUseCasePort
}

func NewDashboardHandler(dashboardUC usecases_port.GetDashboardUseCasePort) *DashboardHandler {
	return &DashboardHandler{dashboardUC: dashboardUC}
}

// Get обрабатывает GET /api/v1/dashboard
func (h *DashboardHandler) Get(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context())
	brokerID := UserIDFromRequest(r)

	counts, err := h.dashboardUC.Execute(r.Context(), brokerID)
	if err != nil {
		logger.Error("Use case failed", err, port.Fields{"handler": "GetDashboard"})
		writeDomainError(w, err)
		return
	}

	RespondWithJSON(w, http.StatusOK, DashboardResponse{
		Properties:     counts.Properties,
		Clients:        counts.Clients,
		UpcomingEvents: counts.UpcomingEvents,
		UnreadMessages: counts.UnreadMessages,
	})
}
