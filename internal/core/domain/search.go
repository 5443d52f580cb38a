package domain

import "strings"

// Константы сортировки и пагинации. Единый дефолт на весь сервис.
const (
	SortByCreatedAt = "created_at"
	SortByPrice     = "price"
	SortByArea      = "area"

	SortOrderAsc  = "asc"
	SortOrderDesc = "desc"

	DefaultPageSize = 10
	MaxPageSize     = 100
)

// SearchFilters — плоский набор фильтров поиска объектов.
// Пустая строка / nil означают "фильтр не задан" и не порождают предиката.
type SearchFilters struct {
	PropertyType string `json:"propertyType,omitempty"`
	Purpose      string `json:"purpose,omitempty"`

	City     string `json:"city,omitempty"`
	District string `json:"district,omitempty"`

	MinPrice *float64 `json:"minPrice,omitempty"`
	MaxPrice *float64 `json:"maxPrice,omitempty"`
	MinArea  *float64 `json:"minArea,omitempty"`
	MaxArea  *float64 `json:"maxArea,omitempty"`

	Rooms       *int   `json:"rooms,omitempty"`
	Floor       *int   `json:"floor,omitempty"`
	HeatingType string `json:"heatingType,omitempty"`

	Keywords string `json:"keywords,omitempty"`

	SortBy    string `json:"sortBy,omitempty"`
	SortOrder string `json:"sortOrder,omitempty"`
}

// Normalize подставляет дефолты сортировки и отбрасывает неизвестные значения.
func (f *SearchFilters) Normalize() {
	switch f.SortBy {
	case SortByCreatedAt, SortByPrice, SortByArea:
	default:
		f.SortBy = SortByCreatedAt
	}
	switch f.SortOrder {
	case SortOrderAsc, SortOrderDesc:
	default:
		f.SortOrder = SortOrderDesc
	}
}

// Prune возвращает копию фильтров, пригодную для сохранения как снапшот:
// строковые поля обрезаются по пробелам, ставшие пустыми — исчезают при
// сериализации за счет omitempty. Prune(Prune(f)) == Prune(f).
func (f SearchFilters) Prune() SearchFilters {
	pruned := f
	pruned.PropertyType = strings.TrimSpace(f.PropertyType)
	pruned.Purpose = strings.TrimSpace(f.Purpose)
	pruned.City = strings.TrimSpace(f.City)
	pruned.District = strings.TrimSpace(f.District)
	pruned.HeatingType = strings.TrimSpace(f.HeatingType)
	pruned.Keywords = strings.TrimSpace(f.Keywords)
	return pruned
}

// IsEmpty — true, если не задан ни один содержательный фильтр.
func (f SearchFilters) IsEmpty() bool {
	return f.PropertyType == "" && f.Purpose == "" &&
		f.City == "" && f.District == "" &&
		f.MinPrice == nil && f.MaxPrice == nil &&
		f.MinArea == nil && f.MaxArea == nil &&
		f.Rooms == nil && f.Floor == nil &&
		f.HeatingType == "" && f.Keywords == ""
}

// PageRequest — запрошенное окно выдачи. Page 1-based.
type PageRequest struct {
	Page     int
	PageSize int
}

// Clamp приводит страницу и размер страницы к допустимым границам.
func (p PageRequest) Clamp() PageRequest {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.PageSize < 1 || p.PageSize > MaxPageSize {
		p.PageSize = DefaultPageSize
	}
	return p
}

// Offset вычисляет смещение для SQL LIMIT/OFFSET.
func (p PageRequest) Offset() int {
	return (p.Page - 1) * p.PageSize
}

// SearchResultPage — страница результатов поиска плюс метаданные пагинации.
type SearchResultPage struct {
	Properties []Property
	TotalCount int
	Page       int
	PageSize   int
	TotalPages int
}

// TotalPages считает ceil(totalCount/pageSize); 0 при пустом результате.
func TotalPages(totalCount, pageSize int) int {
	if totalCount <= 0 || pageSize <= 0 {
		return 0
	}
	return (totalCount + pageSize - 1) / pageSize
}
