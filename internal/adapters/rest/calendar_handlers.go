package rest

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"brokerage-service/internal/contextkeys"
	"brokerage-service/internal/core/port"
	"brokerage-service/internal/core/port/usecases_port"
)

type CalendarHandler struct {
	calendarUC usecases_port.ManageCalendarUseCasePort
}

func NewCalendarHandler(calendarUC usecases_port.ManageCalendarUseCasePort) *CalendarHandler {
	return &CalendarHandler{calendarUC: calendarUC}
}

func parseEventID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "eventID"))
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, "Invalid event ID format")
		return uuid.Nil, false
	}
	return id, true
}

// Create обрабатывает POST /api/v1/calendar/events
func (h *CalendarHandler) Create(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context())
	brokerID := UserIDFromRequest(r)

	var req CalendarEventRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	handlerLogger := logger.WithFields(port.Fields{
		"handler":   "CreateCalendarEvent",
		"broker_id": brokerID.String(),
	})

	created, err := h.calendarUC.Create(r.Context(), brokerID, req.toDomain())
	if err != nil {
		handlerLogger.Error("Use case failed", err, nil)
		writeDomainError(w, err)
		return
	}

	handlerLogger.Info("Calendar event created", port.Fields{"event_id": created.ID.String()})
	RespondWithJSON(w, http.StatusCreated, toCalendarEventResponse(*created))
}

// Get обрабатывает GET /api/v1/calendar/events/{eventID}
func (h *CalendarHandler) Get(w http.ResponseWriter, r *http.Request) {
	brokerID := UserIDFromRequest(r)

	eventID, ok := parseEventID(w, r)
	if !ok {
		return
	}

	event, err := h.calendarUC.Get(r.Context(), brokerID, eventID)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	RespondWithJSON(w, http.StatusOK, toCalendarEventResponse(*event))
}

// Update обрабатывает PUT /api/v1/calendar/events/{eventID}
func (h *CalendarHandler) Update(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context())
	brokerID := UserIDFromRequest(r)

	eventID, ok := parseEventID(w, r)
	if !ok {
		return
	}

	var req CalendarEventRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	event := req.toDomain()
	event.ID = eventID

	if err := h.calendarUC.Update(r.Context(), brokerID, event); err != nil {
		logger.Error("Use case failed", err, port.Fields{"handler": "UpdateCalendarEvent"})
		writeDomainError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Delete обрабатывает DELETE /api/v1/calendar/events/{eventID}
func (h *CalendarHandler) Delete(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context())
	brokerID := UserIDFromRequest(r)

	eventID, ok := parseEventID(w, r)
	if !ok {
		return
	}

	if err := h.calendarUC.Delete(r.Context(), brokerID, eventID); err != nil {
		logger.Error("Use case failed", err, port.Fields{"handler": "DeleteCalendarEvent"})
		writeDomainError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// ListRange обрабатывает GET /api/v1/calendar/events?from=...&to=...
// Без параметров отдает ближайшие 30 дней.
func (h *CalendarHandler) ListRange(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context())
	brokerID := UserIDFromRequest(r)

	query := r.URL.Query()

	from := time.Now().UTC()
	if raw := query.Get("from"); raw != "" {
		parsed, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			WriteJSONError(w, http.StatusBadRequest, "Invalid 'from' timestamp, expected RFC3339")
			return
		}
		from = parsed
	}

	to := from.AddDate(0, 0, 30)
	if raw := query.Get("to"); raw != "" {
		parsed, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			WriteJSONError(w, http.StatusBadRequest, "Invalid 'to' timestamp, expected RFC3339")
			return
		}
		to = parsed
	}

	if !to.After(from) {
		WriteJSONError(w, http.StatusBadRequest, "'to' must be after 'from'")
		return
	}

	events, err := h.calendarUC.ListRange(r.Context(), brokerID, from, to)
	if err != nil {
		logger.Error("Use case failed", err, port.Fields{"handler": "ListCalendarEvents"})
		writeDomainError(w, err)
		return
	}

	response := make([]CalendarEventResponse, len(events))
	for i, e := range events {
		response[i] = toCalendarEventResponse(e)
	}
	RespondWithJSON(w, http.StatusOK, response)
}
