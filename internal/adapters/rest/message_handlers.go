package rest

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"brokerage-service/internal/contextkeys"
	"brokerage-service/internal/core/port"
	"brokerage-service/internal/core/port/usecases_port"
)

type MessageHandler struct {
	messagingUC usecases_port.MessagingUseCasePort
}

func NewMessageHandler(messagingUC usecases_port.MessagingUseCasePort) *MessageHandler {
	return &MessageHandler{messagingUC: messagingUC}
}

func parsePartnerID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "partnerID"))
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, "Invalid partner ID format")
		return uuid.Nil, false
	}
	return id, true
}

// Send обрабатывает POST /api/v1/messages
func (h *MessageHandler) Send(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context())
	userID := UserIDFromRequest(r)

	var req SendMessageRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	handlerLogger := logger.WithFields(port.Fields{
		"handler":     "SendMessage",
		"sender_id":   userID.String(),
		"receiver_id": req.ReceiverID.String(),
	})

	message, err := h.messagingUC.Send(r.Context(), userID, req.ReceiverID, req.PropertyID, req.Content)
	if err != nil {
		handlerLogger.Error("Use case failed", err, nil)
		writeDomainError(w, err)
		return
	}

	handlerLogger.Info("Message sent", port.Fields{"message_id": message.ID.String()})
	RespondWithJSON(w, http.StatusCreated, toMessageResponse(*message))
}

// Poll обрабатывает GET /api/v1/messages/{partnerID}?after=...&limit=...
// Клиент опрашивает эндпоинт периодически, передавая метку последнего
// полученного сообщения.
func (h *MessageHandler) Poll(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context())
	userID := UserIDFromRequest(r)

	partnerID, ok := parsePartnerID(w, r)
	if !ok {
		return
	}

	query := r.URL.Query()

	var after time.Time
	if raw := query.Get("after"); raw != "" {
		parsed, err := time.Parse(time.RFC3339Nano, raw)
		if err != nil {
			WriteJSONError(w, http.StatusBadRequest, "Invalid 'after' timestamp, expected RFC3339")
			return
		}
		after = parsed
	}

	limit, _ := strconv.Atoi(query.Get("limit"))

	messages, err := h.messagingUC.Poll(r.Context(), userID, partnerID, after, limit)
	if err != nil {
		logger.Error("Use case failed", err, port.Fields{"handler": "PollMessages"})
		writeDomainError(w, err)
		return
	}

	response := make([]MessageResponse, len(messages))
	for i, m := range messages {
		response[i] = toMessageResponse(m)
	}
	RespondWithJSON(w, http.StatusOK, response)
}

// Conversations обрабатывает GET /api/v1/messages
func (h *MessageHandler) Conversations(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context())
	userID := UserIDFromRequest(r)

	conversations, err := h.messagingUC.Conversations(r.Context(), userID)
	if err != nil {
		logger.Error("Use case failed", err, port.Fields{"handler": "ListConversations"})
		writeDomainError(w, err)
		return
	}

	response := make([]ConversationResponse, len(conversations))
	for i, c := range conversations {
		response[i] = ConversationResponse{
			PartnerID:   c.PartnerID.String(),
			PartnerName: c.PartnerName,
			LastMessage: c.LastMessage,
			LastSentAt:  c.LastSentAt,
			UnreadCount: c.UnreadCount,
		}
	}
	RespondWithJSON(w, http.StatusOK, response)
}

// MarkRead обрабатывает POST /api/v1/messages/{partnerID}/read
func (h *MessageHandler) MarkRead(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context())
	userID := UserIDFromRequest(r)

	partnerID, ok := parsePartnerID(w, r)
	if !ok {
		return
	}

	if err := h.messagingUC.MarkRead(r.Context(), userID, partnerID); err != nil {
		logger.Error("Use case failed", err, port.Fields{"handler": "MarkMessagesRead"})
		writeDomainError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
