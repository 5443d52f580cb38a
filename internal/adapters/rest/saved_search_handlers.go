package rest

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"brokerage-service/internal/contextkeys"
	"brokerage-service/internal/core/port"
	"brokerage-service/internal/core/port/usecases_port"
)

type SavedSearchHandler struct {
	saveUC   usecases_port.SaveSearchUseCasePort
	listUC   usecases_port.ListSavedSearchesUseCasePort
	applyUC  usecases_port.ApplySavedSearchUseCasePort
	deleteUC usecases_port.DeleteSavedSearchUseCasePort
}

func NewSavedSearchHandler(
	saveUC usecases_port.SaveSearchUseCasePort,
	listUC usecases_port.ListSavedSearchesUseCasePort,
	applyUC usecases_port.ApplySavedSearchUseCasePort,
	deleteUC usecases_port.DeleteSavedSearchUseCasePort) *SavedSearchHandler {
	return &SavedSearchHandler{
		saveUC:   saveUC,
		listUC:   listUC,
		applyUC:  applyUC,
		deleteUC: deleteUC,
	}
}

// Create обрабатывает POST /api/v1/saved-searches
func (h *SavedSearchHandler) Create(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context())
	userID := UserIDFromRequest(r)

	var req SaveSearchRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	handlerLogger := logger.WithFields(port.Fields{
		"handler": "CreateSavedSearch",
		"user_id": userID.String(),
	})
	handlerLogger.Debug("Processing request to save search", nil)

	saved, err := h.saveUC.Execute(r.Context(), userID, req.Name, req.Filters)
	if err != nil {
		handlerLogger.Error("Use case failed", err, nil)
		writeDomainError(w, err)
		return
	}

	handlerLogger.Info("Search saved", port.Fields{"search_id": saved.ID.String()})
	RespondWithJSON(w, http.StatusCreated, toSavedSearchResponse(*saved))
}

// List обрабатывает GET /api/v1/saved-searches
func (h *SavedSearchHandler) List(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context())
	userID := UserIDFromRequest(r)

	handlerLogger := logger.WithFields(port.Fields{
		"handler": "ListSavedSearches",
		"user_id": userID.String(),
	})

	searches, err := h.listUC.Execute(r.Context(), userID)
	if err != nil {
		handlerLogger.Error("Use case failed", err, nil)
		writeDomainError(w, err)
		return
	}

	response := make([]SavedSearchResponse, len(searches))
	for i, s := range searches {
		response[i] = toSavedSearchResponse(s)
	}
	RespondWithJSON(w, http.StatusOK, response)
}

// Apply обрабатывает POST /api/v1/saved-searches/{searchID}/apply
func (h *SavedSearchHandler) Apply(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context())
	userID := UserIDFromRequest(r)

	searchID, err := uuid.Parse(chi.URLParam(r, "searchID"))
	if err != nil {
		logger.Warn("Invalid saved search ID format", port.Fields{"error": err.Error()})
		WriteJSONError(w, http.StatusBadRequest, "Invalid saved search ID format")
		return
	}

	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	handlerLogger := logger.WithFields(port.Fields{
		"handler":   "ApplySavedSearch",
		"user_id":   userID.String(),
		"search_id": searchID.String(),
	})
	handlerLogger.Debug("Processing request to apply saved search", nil)

	result, filters, err := h.applyUC.Execute(r.Context(), userID, searchID, limit)
	if err != nil {
		handlerLogger.Error("Use case failed", err, nil)
		writeDomainError(w, err)
		return
	}

	handlerLogger.Info("Saved search applied", port.Fields{"total_found": result.TotalCount})
	RespondWithJSON(w, http.StatusOK, ApplySavedSearchResponse{
		SearchResponse: toSearchResponse(result),
		Filters:        filters,
	})
}

// Delete обрабатывает DELETE /api/v1/saved-searches/{searchID}
func (h *SavedSearchHandler) Delete(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context())
	userID := UserIDFromRequest(r)

	searchID, err := uuid.Parse(chi.URLParam(r, "searchID"))
	if err != nil {
		logger.Warn("Invalid saved search ID format", port.Fields{"error": err.Error()})
		WriteJSONError(w, http.StatusBadRequest, "Invalid saved search ID format")
		return
	}

	handlerLogger := logger.WithFields(port.Fields{
		"handler":   "DeleteSavedSearch",
		"user_id":   userID.String(),
		"search_id": searchID.String(),
	})

	if err := h.deleteUC.Execute(r.Context(), userID, searchID); err != nil {
		handlerLogger.Error("Use case failed", err, nil)
		writeDomainError(w, err)
		return
	}

	handlerLogger.Info("Saved search deleted", nil)
	w.WriteHeader(http.StatusNoContent)
}
