package postgres

import (
	"fmt"
	"strings"

	"brokerage-service/internal/core/domain"
)

// Маппинг ключей сортировки на реальные колонки. Только белый список:
// все остальное сваливается в created_at.
var sortColumns = map[string]string{
	domain.SortByCreatedAt: "p.created_at",
	domain.SortByPrice:     "p.price",
	domain.SortByArea:      "p.area_m2",
}

type queryBuilder struct {
	conditions []string
	args       []interface{}
	argId      int
}

func newQueryBuilder() *queryBuilder {
	return &queryBuilder{
		argId:      1,
		conditions: make([]string, 0),
		args:       make([]interface{}, 0),
	}
}

func (qb *queryBuilder) addCondition(condition string, fieldName string, arg interface{}) {
	qb.conditions = append(qb.conditions, fmt.Sprintf(condition, fieldName, qb.argId))
	qb.args = append(qb.args, arg)
	qb.argId++
}

// AddEqualFilter — точное совпадение, пустая строка предиката не порождает.
func (qb *queryBuilder) AddEqualFilter(fieldName string, value string) {
	if value != "" {
		qb.addCondition("%s = $%d", fieldName, value)
	}
}

// AddContainsFilter — регистронезависимый поиск подстроки.
func (qb *queryBuilder) AddContainsFilter(fieldName string, value string) {
	if value != "" {
		qb.addCondition("%s ILIKE $%d", fieldName, "%"+value+"%")
	}
}

// AddFloatFilter — включительные границы диапазона, каждая дает свой предикат.
func (qb *queryBuilder) AddFloatFilter(fieldName string, min *float64, max *float64) {
	if min != nil {
		qb.addCondition("%s >= $%d", fieldName, *min)
	}
	if max != nil {
		qb.addCondition("%s <= $%d", fieldName, *max)
	}
}

func (qb *queryBuilder) AddIntEqualFilter(fieldName string, value *int) {
	if value != nil {
		qb.addCondition("%s = $%d", fieldName, *value)
	}
}

// AddTextSearchFilter строит полнотекстовый предикат из свободного текста.
// Токены соединяются через & (логическое И); если после разбиения токенов
// не осталось, предикат не добавляется вовсе.
func (qb *queryBuilder) AddTextSearchFilter(fieldName string, keywords string) {
	tsQuery := buildTSQuery(keywords)
	if tsQuery != "" {
		qb.addCondition("%s @@ to_tsquery($%d)", fieldName, tsQuery)
	}
}

// buildTSQuery — "  дом   у  озера " -> "дом & у & озера"; только пробельный
// текст дает пустую строку.
func buildTSQuery(keywords string) string {
	tokens := strings.Fields(keywords)
	return strings.Join(tokens, " & ")
}

// build создает финальную WHERE-часть запроса.
func (qb *queryBuilder) build() (string, []interface{}) {
	whereClause := ""
	if len(qb.conditions) > 0 {
		whereClause = "WHERE " + strings.Join(qb.conditions, " AND ")
	}
	return whereClause, qb.args
}

// applyFilters - главный метод, который разбирает фильтры и строит запрос.
// Чистая функция: одинаковые фильтры всегда дают одинаковый план.
func applyFilters(filters domain.SearchFilters) (string, string, []interface{}) {
	qb := newQueryBuilder()

	// Точные совпадения по перечислениям
	qb.AddEqualFilter("p.type", filters.PropertyType)
	qb.AddEqualFilter("p.purpose", filters.Purpose)
	qb.AddEqualFilter("p.heating_type", filters.HeatingType)

	// Локация — поиск подстроки без учета регистра
	qb.AddContainsFilter("p.city", filters.City)
	qb.AddContainsFilter("p.district", filters.District)

	// Диапазоны
	qb.AddFloatFilter("p.price", filters.MinPrice, filters.MaxPrice)
	qb.AddFloatFilter("p.area_m2", filters.MinArea, filters.MaxArea)

	// Числовые равенства
	qb.AddIntEqualFilter("p.num_rooms", filters.Rooms)
	qb.AddIntEqualFilter("p.floor_number", filters.Floor)

	// Полнотекстовый поиск по описанию
	qb.AddTextSearchFilter("p.fts", filters.Keywords)

	whereClause, args := qb.build()
	return whereClause, buildOrderClause(filters.SortBy, filters.SortOrder), args
}

// buildOrderClause — ровно один активный ключ сортировки.
func buildOrderClause(sortBy, sortOrder string) string {
	column, ok := sortColumns[sortBy]
	if !ok {
		column = sortColumns[domain.SortByCreatedAt]
	}

	direction := "DESC"
	if sortOrder == domain.SortOrderAsc {
		direction = "ASC"
	}

	// id как вторичный ключ делает порядок стабильным при равных значениях
	return fmt.Sprintf("ORDER BY %s %s, p.id ASC", column, direction)
}
