package rest

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"brokerage-service/internal/contextkeys"
	"brokerage-service/internal/core/port"
	"brokerage-service/internal/core/port/usecases_port"
)

type CallLogHandler struct {
	callLogsUC usecases_port.ManageCallLogsUseCasePort
}

func NewCallLogHandler(callLogsUC usecases_port.ManageCallLogsUseCasePort) *CallLogHandler {
	return &CallLogHandler{callLogsUC: callLogsUC}
}

func parseCallLogID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "logID"))
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, "Invalid call log ID format")
		return uuid.Nil, false
	}
	return id, true
}

// Create обрабатывает POST /api/v1/call-logs
func (h *CallLogHandler) Create(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context())
	brokerID := UserIDFromRequest(r)

	var req CallLogRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	handlerLogger := logger.WithFields(port.Fields{
		"handler":   "CreateCallLog",
		"broker_id": brokerID.String(),
	})

	created, err := h.callLogsUC.Create(r.Context(), brokerID, req.toDomain())
	if err != nil {
		handlerLogger.Error("Use case failed", err, nil)
		writeDomainError(w, err)
		return
	}

	handlerLogger.Info("Call log created", port.Fields{"call_log_id": created.ID.String()})
	RespondWithJSON(w, http.StatusCreated, toCallLogResponse(*created))
}

// Get обрабатывает GET /api/v1/call-logs/{logID}
func (h *CallLogHandler) Get(w http.ResponseWriter, r *http.Request) {
	brokerID := UserIDFromRequest(r)

	logID, ok := parseCallLogID(w, r)
	if !ok {
		return
	}

	log, err := h.callLogsUC.Get(r.Context(), brokerID, logID)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	RespondWithJSON(w, http.StatusOK, toCallLogResponse(*log))
}

// Update обрабатывает PUT /api/v1/call-logs/{logID}
func (h *CallLogHandler) Update(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context())
	brokerID := UserIDFromRequest(r)

	logID, ok := parseCallLogID(w, r)
	if !ok {
		return
	}

	var req CallLogRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	log := req.toDomain()
	log.ID = logID

	if err := h.callLogsUC.Update(r.Context(), brokerID, log); err != nil {
		logger.Error("Use case failed", err, port.Fields{"handler": "UpdateCallLog"})
		writeDomainError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Delete обрабатывает DELETE /api/v1/call-logs/{logID}
func (h *CallLogHandler) Delete(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context())
	brokerID := UserIDFromRequest(r)

	logID, ok := parseCallLogID(w, r)
	if !ok {
		return
	}

	if err := h.callLogsUC.Delete(r.Context(), brokerID, logID); err != nil {
		logger.Error("Use case failed", err, port.Fields{"handler": "DeleteCallLog"})
		writeDomainError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// List обрабатывает GET /api/v1/call-logs
func (h *CallLogHandler) List(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context())
	brokerID := UserIDFromRequest(r)

	page := parsePageRequest(r.URL.Query())

	result, err := h.callLogsUC.List(r.Context(), brokerID, page)
	if err != nil {
		logger.Error("Use case failed", err, port.Fields{"handler": "ListCallLogs"})
		writeDomainError(w, err)
		return
	}

	response := PaginatedCallLogsResponse{
		Data:  make([]CallLogResponse, len(result.CallLogs)),
		Total: result.TotalCount,
		Page:  result.Page,
		Limit: result.PageSize,
	}
	for i, l := range result.CallLogs {
		response.Data[i] = toCallLogResponse(l)
	}
	RespondWithJSON(w, http.StatusOK, response)
}
