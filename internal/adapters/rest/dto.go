package rest

import (
	"time"

	"github.com/google/uuid"

	"brokerage-service/internal/core/domain"
)

// --- Аутентификация ---

type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Role     string `json:"role" validate:"omitempty,oneof=individual company"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type UserResponse struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

type LoginResponse struct {
	User  UserResponse `json:"user"`
	Token string       `json:"token"`
}

// --- Поиск ---

// PropertyCardResponse - карточка объекта в выдаче поиска.
type PropertyCardResponse struct {
	ID          string     `json:"id"`
	City        string     `json:"city"`
	District    string     `json:"district,omitempty"`
	Street      string     `json:"street,omitempty"`
	HeatingType string     `json:"heating_type,omitempty"`
	FloorNumber *int       `json:"floor_number,omitempty"`
	NumRooms    *int       `json:"num_rooms,omitempty"`
	AreaM2      *float64   `json:"area_m2,omitempty"`
	Price       *float64   `json:"price,omitempty"`
	Purpose     string     `json:"purpose"`
	Type        string     `json:"type"`
	Status      string     `json:"status"`
	Description string     `json:"description,omitempty"`
	Images      []string   `json:"images,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   *time.Time `json:"updated_at,omitempty"`
}

// SearchResponse - структура ответа поиска, которую ожидает фронтенд.
type SearchResponse struct {
	Properties []PropertyCardResponse `json:"properties"`
	Count      int                    `json:"count"`
	Page       int                    `json:"page"`
	Limit      int                    `json:"limit"`
	TotalPages int                    `json:"totalPages"`
}

func toPropertyCard(p domain.Property) PropertyCardResponse {
	return PropertyCardResponse{
		ID:          p.ID.String(),
		City:        p.City,
		District:    p.District,
		Street:      p.Street,
		HeatingType: p.HeatingType,
		FloorNumber: p.FloorNumber,
		NumRooms:    p.NumRooms,
		AreaM2:      p.AreaM2,
		Price:       p.Price,
		Purpose:     p.Purpose,
		Type:        p.Type,
		Status:      p.Status,
		Description: p.Description,
		Images:      p.Images,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func toSearchResponse(page *domain.SearchResultPage) SearchResponse {
	resp := SearchResponse{
		Properties: make([]PropertyCardResponse, len(page.Properties)),
		Count:      page.TotalCount,
		Page:       page.Page,
		Limit:      page.PageSize,
		TotalPages: page.TotalPages,
	}
	for i, p := range page.Properties {
		resp.Properties[i] = toPropertyCard(p)
	}
	return resp
}

// --- Сохраненные поиски ---

type SaveSearchRequest struct {
	Name    string               `json:"name" validate:"required,max=120"`
	Filters domain.SearchFilters `json:"filters"`
}

type SavedSearchResponse struct {
	ID        string               `json:"id"`
	Name      string               `json:"name"`
	Filters   domain.SearchFilters `json:"filters"`
	CreatedAt time.Time            `json:"created_at"`
}

func toSavedSearchResponse(s domain.SavedSearch) SavedSearchResponse {
	return SavedSearchResponse{
		ID:        s.ID.String(),
		Name:      s.Name,
		Filters:   s.Filters,
		CreatedAt: s.CreatedAt,
	}
}

// ApplySavedSearchResponse - результат применения плюс фильтры снапшота,
// чтобы фронтенд мог восстановить форму поиска.
type ApplySavedSearchResponse struct {
	SearchResponse
	Filters domain.SearchFilters `json:"filters"`
}

// --- Объявления ---

type PropertyRequest struct {
	City        string   `json:"city" validate:"required"`
	District    string   `json:"district"`
	Street      string   `json:"street"`
	HouseNumber string   `json:"house_number"`
	HeatingType string   `json:"heating_type"`
	FloorNumber *int     `json:"floor_number"`
	NumRooms    *int     `json:"num_rooms" validate:"omitempty,min=0"`
	AreaM2      *float64 `json:"area_m2" validate:"omitempty,gt=0"`
	Price       *float64 `json:"price" validate:"omitempty,gt=0"`
	Purpose     string   `json:"purpose" validate:"required,oneof=sale rent"`
	Type        string   `json:"type" validate:"required,oneof=apartment house commercial"`
	Status      string   `json:"status" validate:"omitempty,oneof=active pending sold rented"`
	Description string   `json:"description"`
	Images      []string `json:"images"`
}

func (req PropertyRequest) toDomain() *domain.Property {
	return &domain.Property{
		City:        req.City,
		District:    req.District,
		Street:      req.Street,
		HouseNumber: req.HouseNumber,
		HeatingType: req.HeatingType,
		FloorNumber: req.FloorNumber,
		NumRooms:    req.NumRooms,
		AreaM2:      req.AreaM2,
		Price:       req.Price,
		Purpose:     req.Purpose,
		Type:        req.Type,
		Status:      req.Status,
		Description: req.Description,
		Images:      req.Images,
	}
}

// --- Клиенты ---

type ClientRequest struct {
	Name  string `json:"name" validate:"required,max=200"`
	Phone string `json:"phone" validate:"omitempty,max=32"`
	Email string `json:"email" validate:"omitempty,email"`
	Notes string `json:"notes"`
}

type ClientResponse struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	Phone     string     `json:"phone,omitempty"`
	Email     string     `json:"email,omitempty"`
	Notes     string     `json:"notes,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
}

func toClientResponse(c domain.Client) ClientResponse {
	return ClientResponse{
		ID:        c.ID.String(),
		Name:      c.Name,
		Phone:     c.Phone,
		Email:     c.Email,
		Notes:     c.Notes,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

type PaginatedClientsResponse struct {
	Data  []ClientResponse `json:"data"`
	Total int              `json:"total"`
	Page  int              `json:"page"`
	Limit int              `json:"limit"`
}

// --- Журнал звонков ---

type CallLogRequest struct {
	ClientID        *uuid.UUID `json:"client_id"`
	PropertyID      *uuid.UUID `json:"property_id"`
	Description     string     `json:"description" validate:"required"`
	CallTime        time.Time  `json:"call_time" validate:"required"`
	DurationMinutes *int       `json:"duration_minutes" validate:"omitempty,min=0"`
	Outcome         string     `json:"outcome"`
	ReminderAt      *time.Time `json:"reminder_at"`
}

func (req CallLogRequest) toDomain() *domain.CallLog {
	return &domain.CallLog{
		ClientID:        req.ClientID,
		PropertyID:      req.PropertyID,
		Description:     req.Description,
		CallTime:        req.CallTime,
		DurationMinutes: req.DurationMinutes,
		Outcome:         req.Outcome,
		ReminderAt:      req.ReminderAt,
	}
}

type CallLogResponse struct {
	ID              string     `json:"id"`
	ClientID        *uuid.UUID `json:"client_id,omitempty"`
	PropertyID      *uuid.UUID `json:"property_id,omitempty"`
	Description     string     `json:"description"`
	CallTime        time.Time  `json:"call_time"`
	DurationMinutes *int       `json:"duration_minutes,omitempty"`
	Outcome         string     `json:"outcome,omitempty"`
	ReminderAt      *time.Time `json:"reminder_at,omitempty"`
	ReminderSent    bool       `json:"reminder_sent"`
	CreatedAt       time.Time  `json:"created_at"`
}

func toCallLogResponse(l domain.CallLog) CallLogResponse {
	return CallLogResponse{
		ID:              l.ID.String(),
		ClientID:        l.ClientID,
		PropertyID:      l.PropertyID,
		Description:     l.Description,
		CallTime:        l.CallTime,
		DurationMinutes: l.DurationMinutes,
		Outcome:         l.Outcome,
		ReminderAt:      l.ReminderAt,
		ReminderSent:    l.ReminderSent,
		CreatedAt:       l.CreatedAt,
	}
}

type PaginatedCallLogsResponse struct {
	Data  []CallLogResponse `json:"data"`
	Total int               `json:"total"`
	Page  int               `json:"page"`
	Limit int               `json:"limit"`
}

// --- Календарь ---

type CalendarEventRequest struct {
	ClientID    *uuid.UUID `json:"client_id"`
	PropertyID  *uuid.UUID `json:"property_id"`
	EventType   string     `json:"event_type" validate:"required,oneof=appointment viewing task"`
	Title       string     `json:"title" validate:"required,max=200"`
	Description string     `json:"description"`
	StartTime   time.Time  `json:"start_time" validate:"required"`
	EndTime     time.Time  `json:"end_time" validate:"required"`
	Reminder    bool       `json:"reminder"`
}

func (req CalendarEventRequest) toDomain() *domain.CalendarEvent {
	return &domain.CalendarEvent{
		ClientID:    req.ClientID,
		PropertyID:  req.PropertyID,
		EventType:   req.EventType,
		Title:       req.Title,
		Description: req.Description,
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
		Reminder:    req.Reminder,
	}
}

type CalendarEventResponse struct {
	ID          string     `json:"id"`
	ClientID    *uuid.UUID `json:"client_id,omitempty"`
	PropertyID  *uuid.UUID `json:"property_id,omitempty"`
	EventType   string     `json:"event_type"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	StartTime   time.Time  `json:"start_time"`
	EndTime     time.Time  `json:"end_time"`
	Reminder    bool       `json:"reminder"`
	CreatedAt   time.Time  `json:"created_at"`
}

func toCalendarEventResponse(e domain.CalendarEvent) CalendarEventResponse {
	return CalendarEventResponse{
		ID:          e.ID.String(),
		ClientID:    e.ClientID,
		PropertyID:  e.PropertyID,
		EventType:   e.EventType,
		Title:       e.Title,
		Description: e.Description,
		StartTime:   e.StartTime,
		EndTime:     e.EndTime,
		Reminder:    e.Reminder,
		CreatedAt:   e.CreatedAt,
	}
}

// --- Сообщения ---

type SendMessageRequest struct {
	ReceiverID uuid.UUID  `json:"receiver_id" validate:"required"`
	PropertyID *uuid.UUID `json:"property_id"`
	Content    string     `json:"content" validate:"required,max=4000"`
}

type MessageResponse struct {
	ID         string     `json:"id"`
	SenderID   string     `json:"sender_id"`
	ReceiverID string     `json:"receiver_id"`
	PropertyID *uuid.UUID `json:"property_id,omitempty"`
	Content    string     `json:"content"`
	IsRead     bool       `json:"is_read"`
	SentAt     time.Time  `json:"sent_at"`
}

func toMessageResponse(m domain.Message) MessageResponse {
	return MessageResponse{
		ID:         m.ID.String(),
		SenderID:   m.SenderID.String(),
		ReceiverID: m.ReceiverID.String(),
		PropertyID: m.PropertyID,
		Content:    m.Content,
		IsRead:     m.IsRead,
		SentAt:     m.SentAt,
	}
}

type ConversationResponse struct {
	PartnerID   string    `json:"partner_id"`
	PartnerName string    `json:"partner_name"`
	LastMessage string    `json:"last_message"`
	LastSentAt  time.Time `json:"last_sent_at"`
	UnreadCount int       `json:"unread_count"`
}

// --- Дашборд ---

type DashboardResponse struct {
	Properties     int `json:"properties"`
	Clients        int `json:"clients"`
	UpcomingEvents int `json:"upcoming_events"`
	UnreadMessages int `json:"unread_messages"`
}

// ErrorResponse - стандартная структура для ответа с ошибкой.
type ErrorResponse struct {
	Error   string      `json:"error"`
	Details interface{} `json:"details,omitempty"`
}
