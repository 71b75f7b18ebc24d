package domain

import (
	"time"

	"github.com/google/uuid"
)

// Статусы записи на просмотр
const (
	ViewingScheduled = "scheduled"
	ViewingCompleted = "completed"
	ViewingCancelled = "cancelled"
)

// Viewing - запись на очный просмотр объекта.
// Property заполняется при чтении истории активности (embed).
type Viewing struct {
	ID          uuid.UUID
	PropertyID  uuid.UUID
	UserID      uuid.UUID
	AgentID     *uuid.UUID
	ScheduledAt time.Time
	Status      string
	Notes       string
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Property *Property
}

// Favorite - объект, добавленный пользователем в избранное.
type Favorite struct {
	ID         uuid.UUID
	UserID     uuid.UUID
	PropertyID uuid.UUID
	CreatedAt  time.Time

	Property *Property
}

// SearchCriteria - закрытый набор распознаваемых ключей критериев
// сохраненного поиска. В исходных данных критерии приходят как
// нетипизированный словарь; мы приводим его к этой структуре,
// чтобы получить контроль над допустимыми ключами на этапе компиляции.
type SearchCriteria struct {
	City         string   `json:"city,omitempty"`
	Locality     string   `json:"locality,omitempty"`
	PropertyType string   `json:"property_type,omitempty"`
	ListingType  string   `json:"listing_type,omitempty"`
	MinPrice     *float64 `json:"min_price,omitempty"`
	MaxPrice     *float64 `json:"max_price,omitempty"`
	Bedrooms     *int     `json:"bedrooms,omitempty"`
}

// SavedSearch - сохраненный пользователем набор критериев поиска,
// по которому можно включить почтовые оповещения о новых объектах.
type SavedSearch struct {
	ID            uuid.UUID
	UserID        uuid.UUID
	Name          string
	Criteria      SearchCriteria
	AlertEnabled  bool
	LastCheckedAt *time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
