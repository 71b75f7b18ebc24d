package domain

import (
	"time"

	"github.com/google/uuid"
)

// Статусы объявления. Переходы между ними контролируются
// владельцем (active -> sold/rented) и администратором (pending -> active/inactive).
const (
	StatusActive   = "active"
	StatusPending  = "pending"
	StatusSold     = "sold"
	StatusRented   = "rented"
	StatusInactive = "inactive"
)

// Типы сделки
const (
	ListingSale  = "sale"
	ListingRent  = "rent"
	ListingLease = "lease"
	ListingPG    = "pg"
)

// Property - главная сущность: объявление о продаже/аренде недвижимости.
// Опциональные физические характеристики хранятся указателями,
// чтобы отличать "не указано" от нулевого значения.
type Property struct {
	ID           uuid.UUID
	Title        string
	Description  string
	PropertyType string // apartment, villa, plot, office, ...
	ListingType  string
	Status       string

	Price           float64
	MaintenanceCost *float64
	SecurityDeposit *float64

	Address  string
	Locality string
	City     string
	State    string
	Pincode  string

	Latitude  *float64
	Longitude *float64

	Bedrooms    *int
	Bathrooms   *int
	Balconies   *int
	TotalFloors *int
	FloorNumber *int
	CarpetArea  *float64
	BuiltUpArea *float64
	Furnishing  *string
	Parking     *int

	OwnerID uuid.UUID
	AgentID *uuid.UUID

	Views          int
	FavoritesCount int

	Featured      bool
	FeaturedUntil *time.Time
	Verified      bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

// ScoredProperty - объявление, обогащенное рассчитанным рейтингом похожести.
type ScoredProperty struct {
	Property   Property
	Similarity int
}

// PropertyFilters - набор фильтров для поиска по каталогу.
// nil-поля означают "фильтр не применяется".
type PropertyFilters struct {
	City         string
	Locality     string
	PropertyType string
	ListingType  string
	PriceMin     *float64
	PriceMax     *float64
	Bedrooms     *int
	Bathrooms    *int
	Furnishing   string
	AreaMin      *float64
	AreaMax      *float64
}

// PaginatedProperties - страница результатов поиска.
type PaginatedProperties struct {
	Properties   []Property
	TotalCount   int64
	CurrentPage  int
	ItemsPerPage int
}

// PropertyUpdate - изменяемые владельцем поля объявления.
// Обновляются только не-nil поля.
type PropertyUpdate struct {
	Title           *string
	Description     *string
	Price           *float64
	Status          *string
	MaintenanceCost *float64
	SecurityDeposit *float64
	Furnishing      *string
	Bedrooms        *int
	Bathrooms       *int
	CarpetArea      *float64
	BuiltUpArea     *float64
}
