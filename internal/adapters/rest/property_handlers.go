package rest

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"brokerage-service/internal/contextkeys"
	"brokerage-service/internal/core/port"
	"brokerage-service/internal/core/port/usecases_port"
)

type PropertyHandler struct {
	propertiesUC usecases_port.ManagePropertiesUseCasePort
}

func NewPropertyHandler(propertiesUC usecases_port.ManagePropertiesUseCasePort) *PropertyHandler {
	return &PropertyHandler{propertiesUC: propertiesUC}
}

func parsePropertyID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "propertyID"))
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, "Invalid property ID format")
		return uuid.Nil, false
	}
	return id, true
}

// Create обрабатывает POST /api/v1/properties
func (h *PropertyHandler) Create(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context())
	brokerID := UserIDFromRequest(r)

	var req PropertyRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	handlerLogger := logger.WithFields(port.Fields{
		"handler":   "CreateProperty",
		"broker_id": brokerID.String(),
	})

	created, err := h.propertiesUC.Create(r.Context(), brokerID, req.toDomain())
	if err != nil {
		handlerLogger.Error("Use case failed", err, nil)
		writeDomainError(w, err)
		return
	}

	handlerLogger.Info("Property created", port.Fields{"property_id": created.ID.String()})
	RespondWithJSON(w, http.StatusCreated, toPropertyCard(*created))
}

// Get обрабатывает GET /api/v1/properties/{propertyID}
func (h *PropertyHandler) Get(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context())

	propertyID, ok := parsePropertyID(w, r)
	if !ok {
		return
	}

	property, err := h.propertiesUC.Get(r.Context(), propertyID)
	if err != nil {
		logger.Warn("Property lookup failed", port.Fields{"property_id": propertyID.String(), "error": err.Error()})
		writeDomainError(w, err)
		return
	}

	RespondWithJSON(w, http.StatusOK, toPropertyCard(*property))
}

// Update обрабатывает PUT /api/v1/properties/{propertyID}
func (h *PropertyHandler) Update(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context())
	brokerID := UserIDFromRequest(r)

	propertyID, ok := parsePropertyID(w, r)
	if !ok {
		return
	}

	var req PropertyRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	handlerLogger := logger.WithFields(port.Fields{
		"handler":     "UpdateProperty",
		"broker_id":   brokerID.String(),
		"property_id": propertyID.String(),
	})

	property := req.toDomain()
	property.ID = propertyID

	if err := h.propertiesUC.Update(r.Context(), brokerID, property); err != nil {
		handlerLogger.Error("Use case failed", err, nil)
		writeDomainError(w, err)
		return
	}

	handlerLogger.Info("Property updated", nil)
	w.WriteHeader(http.StatusNoContent)
}

// Delete обрабатывает DELETE /api/v1/properties/{propertyID}
func (h *PropertyHandler) Delete(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context())
	brokerID := UserIDFromRequest(r)

	propertyID, ok := parsePropertyID(w, r)
	if !ok {
		return
	}

	handlerLogger := logger.WithFields(port.Fields{
		"handler":     "DeleteProperty",
		"broker_id":   brokerID.String(),
		"property_id": propertyID.String(),
	})

	if err := h.propertiesUC.Delete(r.Context(), brokerID, propertyID); err != nil {
		handlerLogger.Error("Use case failed", err, nil)
		writeDomainError(w, err)
		return
	}

	handlerLogger.Info("Property deleted", nil)
	w.WriteHeader(http.StatusNoContent)
}

// ListMine обрабатывает GET /api/v1/properties/mine
func (h *PropertyHandler) ListMine(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context())
	brokerID := UserIDFromRequest(r)

	page := parsePageRequest(r.URL.Query())

	handlerLogger := logger.WithFields(port.Fields{
		"handler":   "ListMyProperties",
		"broker_id": brokerID.String(),
		"page":      page.Page,
	})

	result, err := h.propertiesUC.ListMine(r.Context(), brokerID, page)
	if err != nil {
		handlerLogger.Error("Use case failed", err, nil)
		writeDomainError(w, err)
		return
	}

	RespondWithJSON(w, http.StatusOK, toSearchResponse(result))
}
