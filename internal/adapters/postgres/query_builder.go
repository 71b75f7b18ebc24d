package postgres_adapter

import (
	"fmt"
	"strings"
	"time"

	"github.com/AnandGandhi03/realtor-india-platform/internal/core/domain"
	"github.com/AnandGandhi03/realtor-india-platform/internal/core/port"
)

type queryBuilder struct {
	conditions []string
	args       []interface{}
	argId      int
}

func newQueryBuilder(base ...string) *queryBuilder {
	return &queryBuilder{
		argId:      1,
		conditions: base,
		args:       make([]interface{}, 0),
	}
}

func (qb *queryBuilder) addCondition(condition string, fieldName string, arg interface{}) {
	qb.conditions = append(qb.conditions, fmt.Sprintf(condition, fieldName, qb.argId))
	qb.args = append(qb.args, arg)
	qb.argId++
}

// AddFloatFilter принимает указатели на границы диапазона
func (qb *queryBuilder) AddFloatFilter(fieldName string, min *float64, max *float64) {
	if min != nil {
		qb.addCondition("%s >= $%d", fieldName, *min)
	}
	if max != nil {
		qb.addCondition("%s <= $%d", fieldName, *max)
	}
}

func (qb *queryBuilder) AddIntFilter(fieldName string, min *int, max *int) {
	if min != nil {
		qb.addCondition("%s >= $%d", fieldName, *min)
	}
	if max != nil {
		qb.addCondition("%s <= $%d", fieldName, *max)
	}
}

// build создает финальную WHERE-часть запроса
func (qb *queryBuilder) build() (string, []interface{}) {
	whereClause := ""
	if len(qb.conditions) > 0 {
		whereClause = "WHERE " + strings.Join(qb.conditions, " AND ")
	}
	return whereClause, qb.args
}

// applyFilters разбирает фильтры каталога и строит WHERE-часть.
func applyFilters(filters domain.PropertyFilters) (string, []interface{}) {
	qb := newQueryBuilder("p.status = 'active'")

	if filters.City != "" {
		qb.addCondition("%s = $%d", "p.city", filters.City)
	}
	if filters.Locality != "" {
		qb.addCondition("%s = $%d", "p.locality", filters.Locality)
	}
	if filters.PropertyType != "" {
		qb.addCondition("%s = $%d", "p.property_type", filters.PropertyType)
	}
	if filters.ListingType != "" {
		qb.addCondition("%s = $%d", "p.listing_type", filters.ListingType)
	}
	if filters.Furnishing != "" {
		qb.addCondition("%s = $%d", "p.furnishing", filters.Furnishing)
	}

	qb.AddFloatFilter("p.price", filters.PriceMin, filters.PriceMax)
	qb.AddFloatFilter("p.carpet_area", filters.AreaMin, filters.AreaMax)

	if filters.Bedrooms != nil {
		qb.addCondition("%s = $%d", "p.bedrooms", *filters.Bedrooms)
	}
	if filters.Bathrooms != nil {
		qb.addCondition("%s = $%d", "p.bathrooms", *filters.Bathrooms)
	}

	return qb.build()
}

// applyCandidateQuery строит WHERE-часть из профиля предпочтений.
// Отсутствующие поля профиля предикатов не добавляют; пустой список
// исключений пропускает предикат исключения целиком.
func applyCandidateQuery(q port.CandidateQuery) (string, []interface{}) {
	qb := newQueryBuilder("p.status = 'active'")

	if len(q.Profile.PreferredCities) > 0 {
		qb.addCondition("%s = ANY($%d)", "p.city", q.Profile.PreferredCities)
	}
	if len(q.Profile.PreferredTypes) > 0 {
		qb.addCondition("%s = ANY($%d)", "p.property_type", q.Profile.PreferredTypes)
	}

	qb.AddFloatFilter("p.price", q.Profile.BudgetMin, q.Profile.BudgetMax)

	// Фильтр по спальням односторонний: верхняя граница профиля
	// кандидатов не отсекает.
	if q.Profile.MinBedrooms != nil {
		qb.addCondition("%s >= $%d", "p.bedrooms", *q.Profile.MinBedrooms)
	}

	if len(q.ExcludeIDs) > 0 {
		qb.addCondition("NOT (%s = ANY($%d))", "p.id", q.ExcludeIDs)
	}

	return qb.build()
}

// applyCriteria строит WHERE-часть из критериев сохраненного поиска
// плюс отсечку по дате создания (для оповещений о новых объектах).
func applyCriteria(c domain.SearchCriteria, since time.Time) (string, []interface{}) {
	qb := newQueryBuilder("p.status = 'active'")

	if c.City != "" {
		qb.addCondition("%s = $%d", "p.city", c.City)
	}
	if c.Locality != "" {
		qb.addCondition("%s = $%d", "p.locality", c.Locality)
	}
	if c.PropertyType != "" {
		qb.addCondition("%s = $%d", "p.property_type", c.PropertyType)
	}
	if c.ListingType != "" {
		qb.addCondition("%s = $%d", "p.listing_type", c.ListingType)
	}

	qb.AddFloatFilter("p.price", c.MinPrice, c.MaxPrice)

	if c.Bedrooms != nil {
		qb.addCondition("%s = $%d", "p.bedrooms", *c.Bedrooms)
	}

	qb.addCondition("%s > $%d", "p.created_at", since)

	return qb.build()
}
