package rest

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"brokerage-service/internal/contextkeys"
	"brokerage-service/internal/core/domain"
	"brokerage-service/internal/core/port"
	"brokerage-service/internal/core/port/usecases_port"
)

type ClientHandler struct {
	clientsUC usecases_port.ManageClientsUseCasePort
}

func NewClientHandler(clientsUC usecases_port.ManageClientsUseCasePort) *ClientHandler {
	return &ClientHandler{clientsUC: clientsUC}
}

func parseClientID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "clientID"))
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, "Invalid client ID format")
		return uuid.Nil, false
	}
	return id, true
}

// Create обрабатывает POST /api/v1/clients
func (h *ClientHandler) Create(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context())
	brokerID := UserIDFromRequest(r)

	var req ClientRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	handlerLogger := logger.WithFields(port.Fields{
		"handler":   "CreateClient",
		"broker_id": brokerID.String(),
	})

	created, err := h.clientsUC.Create(r.Context(), brokerID, &domain.Client{
		Name:  req.Name,
		Phone: req.Phone,
		Email: req.Email,
		Notes: req.Notes,
	})
	if err != nil {
		handlerLogger.Error("Use case failed", err, nil)
		writeDomainError(w, err)
		return
	}

	handlerLogger.Info("Client created", port.Fields{"client_id": created.ID.String()})
	RespondWithJSON(w, http.StatusCreated, toClientResponse(*created))
}

// Get обрабатывает GET /api/v1/clients/{clientID}
func (h *ClientHandler) Get(w http.ResponseWriter, r *http.Request) {
	brokerID := UserIDFromRequest(r)

	clientID, ok := parseClientID(w, r)
	if !ok {
		return
	}

	client, err := h.clientsUC.Get(r.Context(), brokerID, clientID)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	RespondWithJSON(w, http.StatusOK, toClientResponse(*client))
}

// Update обрабатывает PUT /api/v1/clients/{clientID}
func (h *ClientHandler) Update(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context())
	brokerID := UserIDFromRequest(r)

	clientID, ok := parseClientID(w, r)
	if !ok {
		return
	}

	var req ClientRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	handlerLogger := logger.WithFields(port.Fields{
		"handler":   "UpdateClient",
		"broker_id": brokerID.String(),
		"client_id": clientID.String(),
	})

	err := h.clientsUC.Update(r.Context(), brokerID, &domain.Client{
		ID:    clientID,
		Name:  req.Name,
		Phone: req.Phone,
		Email: req.Email,
		Notes: req.Notes,
	})
	if err != nil {
		handlerLogger.Error("Use case failed", err, nil)
		writeDomainError(w, err)
		return
	}

	handlerLogger.Info("Client updated", nil)
	w.WriteHeader(http.StatusNoContent)
}

// Delete обрабатывает DELETE /api/v1/clients/{clientID}
func (h *ClientHandler) Delete(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context())
	brokerID := UserIDFromRequest(r)

	clientID, ok := parseClientID(w, r)
	if !ok {
		return
	}

	if err := h.clientsUC.Delete(r.Context(), brokerID, clientID); err != nil {
		logger.Error("Use case failed", err, port.Fields{"handler": "DeleteClient"})
		writeDomainError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// List обрабатывает GET /api/v1/clients
func (h *ClientHandler) List(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context())
	brokerID := UserIDFromRequest(r)

	page := parsePageRequest(r.URL.Query())

	result, err := h.clientsUC.List(r.Context(), brokerID, page)
	if err != nil {
		logger.Error("Use case failed", err, port.Fields{"handler": "ListClients"})
		writeDomainError(w, err)
		return
	}

	response := PaginatedClientsResponse{
		Data:  make([]ClientResponse, len(result.Clients)),
		Total: result.TotalCount,
		Page:  result.Page,
		Limit: result.PageSize,
	}
	for i, c := range result.Clients {
		response.Data[i] = toClientResponse(c)
	}
	RespondWithJSON(w, http.StatusOK, response)
}
