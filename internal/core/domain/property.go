package domain

import (
	"time"

	"github.com/google/uuid"
)

// Статусы и перечисления объекта недвижимости.
const (
	PropertyTypeApartment  = "apartment"
	PropertyTypeHouse      = "house"
	PropertyTypeCommercial = "commercial"

	PurposeSale = "sale"
	PurposeRent = "rent"

	PropertyStatusActive  = "active"
	PropertyStatusPending = "pending"
	PropertyStatusSold    = "sold"
	PropertyStatusRented  = "rented"
)

// Property — объявление о продаже/аренде, принадлежит брокеру.
type Property struct {
	ID       uuid.UUID
	BrokerID uuid.UUID
	AgencyID *uuid.UUID

	City        string
	District    string
	Street      string
	HouseNumber string

	HeatingType string
	FloorNumber *int
	NumRooms    *int
	AreaM2      *float64
	Price       *float64

	Purpose     string
	Type        string
	Status      string
	Description string
	Images      []string

	CreatedAt time.Time
	UpdatedAt *time.Time
}

// ValidType проверяет значение типа объекта ("" допустимо для фильтров).
func ValidType(t string) bool {
	switch t {
	case "", PropertyTypeApartment, PropertyTypeHouse, PropertyTypeCommercial:
		return true
	}
	return false
}

// ValidPurpose проверяет значение назначения сделки.
func ValidPurpose(p string) bool {
	switch p {
	case "", PurposeSale, PurposeRent:
		return true
	}
	return false
}
