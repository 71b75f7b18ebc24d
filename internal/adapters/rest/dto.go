package rest

import (
	"encoding/json"
	"time"

	"github.com/AnandGandhi03/realtor-india-platform/internal/core/domain"
)

// PropertyResponse - карточка объявления в ответе API.
type PropertyResponse struct {
	ID           string `json:"id"`
	Title        string `json:"title"`
	Description  string `json:"description,omitempty"`
	PropertyType string `json:"property_type"`
	ListingType  string `json:"listing_type"`
	Status       string `json:"status"`

	Price           float64  `json:"price"`
	MaintenanceCost *float64 `json:"maintenance_cost,omitempty"`
	SecurityDeposit *float64 `json:"security_deposit,omitempty"`

	Address  string `json:"address,omitempty"`
	Locality string `json:"locality,omitempty"`
	City     string `json:"city"`
	State    string `json:"state,omitempty"`
	Pincode  string `json:"pincode,omitempty"`

	Latitude  *float64 `json:"latitude,omitempty"`
	Longitude *float64 `json:"longitude,omitempty"`

	Bedrooms    *int     `json:"bedrooms,omitempty"`
	Bathrooms   *int     `json:"bathrooms,omitempty"`
	Balconies   *int     `json:"balconies,omitempty"`
	TotalFloors *int     `json:"total_floors,omitempty"`
	FloorNumber *int     `json:"floor_number,omitempty"`
	CarpetArea  *float64 `json:"carpet_area,omitempty"`
	BuiltUpArea *float64 `json:"built_up_area,omitempty"`
	Furnishing  *string  `json:"furnishing,omitempty"`
	Parking     *int     `json:"parking,omitempty"`

	OwnerID string `json:"owner_id"`

	Views          int  `json:"views"`
	FavoritesCount int  `json:"favorites_count"`
	Featured       bool `json:"featured"`
	Verified       bool `json:"verified"`

	CreatedAt time.Time `json:"created_at"`
}

func toPropertyResponse(p domain.Property) PropertyResponse {
	return PropertyResponse{
		ID:           p.ID.String(),
		Title:        p.Title,
		Description:  p.Description,
		PropertyType: p.PropertyType,
		ListingType:  p.ListingType,
		Status:       p.Status,

		Price:           p.Price,
		MaintenanceCost: p.MaintenanceCost,
		SecurityDeposit: p.SecurityDeposit,

		Address:  p.Address,
		Locality: p.Locality,
		City:     p.City,
		State:    p.State,
		Pincode:  p.Pincode,

		Latitude:  p.Latitude,
		Longitude: p.Longitude,

		Bedrooms:    p.Bedrooms,
		Bathrooms:   p.Bathrooms,
		Balconies:   p.Balconies,
		TotalFloors: p.TotalFloors,
		FloorNumber: p.FloorNumber,
		CarpetArea:  p.CarpetArea,
		BuiltUpArea: p.BuiltUpArea,
		Furnishing:  p.Furnishing,
		Parking:     p.Parking,

		OwnerID: p.OwnerID.String(),

		Views:          p.Views,
		FavoritesCount: p.FavoritesCount,
		Featured:       p.Featured,
		Verified:       p.Verified,

		CreatedAt: p.CreatedAt,
	}
}

func toPropertyResponses(properties []domain.Property) []PropertyResponse {
	out := make([]PropertyResponse, len(properties))
	for i, p := range properties {
		out[i] = toPropertyResponse(p)
	}
	return out
}

// PaginatedPropertiesResponse - страница каталога.
type PaginatedPropertiesResponse struct {
	Data    []PropertyResponse `json:"data"`
	Total   int64              `json:"total"`
	Page    int                `json:"page"`
	PerPage int                `json:"per_page"`
}

// ScoredPropertyResponse - объявление с рейтингом похожести.
type ScoredPropertyResponse struct {
	PropertyResponse
	SimilarityScore int `json:"similarity_score"`
}

// CreatePropertyRequest - тело запроса на создание объявления.
type CreatePropertyRequest struct {
	Title        string `json:"title"`
	Description  string `json:"description"`
	PropertyType string `json:"property_type"`
	ListingType  string `json:"listing_type"`

	Price           float64  `json:"price"`
	MaintenanceCost *float64 `json:"maintenance_cost"`
	SecurityDeposit *float64 `json:"security_deposit"`

	Address  string `json:"address"`
	Locality string `json:"locality"`
	City     string `json:"city"`
	State    string `json:"state"`
	Pincode  string `json:"pincode"`

	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`

	Bedrooms    *int     `json:"bedrooms"`
	Bathrooms   *int     `json:"bathrooms"`
	Balconies   *int     `json:"balconies"`
	TotalFloors *int     `json:"total_floors"`
	FloorNumber *int     `json:"floor_number"`
	CarpetArea  *float64 `json:"carpet_area"`
	BuiltUpArea *float64 `json:"built_up_area"`
	Furnishing  *string  `json:"furnishing"`
	Parking     *int     `json:"parking"`
}

// UpdatePropertyRequest - частичное обновление; nil-поля не трогаются.
type UpdatePropertyRequest struct {
	Title           *string  `json:"title"`
	Description     *string  `json:"description"`
	Price           *float64 `json:"price"`
	Status          *string  `json:"status"`
	MaintenanceCost *float64 `json:"maintenance_cost"`
	SecurityDeposit *float64 `json:"security_deposit"`
	Furnishing      *string  `json:"furnishing"`
	Bedrooms        *int     `json:"bedrooms"`
	Bathrooms       *int     `json:"bathrooms"`
	CarpetArea      *float64 `json:"carpet_area"`
	BuiltUpArea     *float64 `json:"built_up_area"`
}

// ModeratePropertyRequest - решение администратора по объявлению.
type ModeratePropertyRequest struct {
	Approve bool `json:"approve"`
}

// AddFavoriteRequest - тело запроса для добавления в избранное.
type AddFavoriteRequest struct {
	PropertyID string `json:"property_id"`
}

// FavoriteResponse - элемент списка избранного.
type FavoriteResponse struct {
	ID       string            `json:"id"`
	AddedAt  time.Time         `json:"added_at"`
	Property *PropertyResponse `json:"property,omitempty"`
}

// PaginatedFavoritesResponse - страница избранного.
type PaginatedFavoritesResponse struct {
	Data    []FavoriteResponse `json:"data"`
	Total   int64              `json:"total"`
	Page    int                `json:"page"`
	PerPage int                `json:"per_page"`
}

// ScheduleViewingRequest - запись на просмотр.
type ScheduleViewingRequest struct {
	PropertyID  string    `json:"property_id"`
	ScheduledAt time.Time `json:"scheduled_at"`
	Notes       string    `json:"notes"`
}

// UpdateViewingStatusRequest - смена статуса просмотра.
type UpdateViewingStatusRequest struct {
	Status string `json:"status"`
}

// ViewingResponse - запись на просмотр в ответе.
type ViewingResponse struct {
	ID          string    `json:"id"`
	PropertyID  string    `json:"property_id"`
	ScheduledAt time.Time `json:"scheduled_at"`
	Status      string    `json:"status"`
	Notes       string    `json:"notes,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// CreateLeadRequest - заявка по объявлению.
type CreateLeadRequest struct {
	PropertyID string `json:"property_id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	Message    string `json:"message"`
}

// UpdateLeadStatusRequest - перевод заявки по воронке.
type UpdateLeadStatusRequest struct {
	Status string `json:"status"`
}

// LeadResponse - заявка в ответе.
type LeadResponse struct {
	ID         string    `json:"id"`
	PropertyID string    `json:"property_id"`
	Name       string    `json:"name"`
	Email      string    `json:"email,omitempty"`
	Phone      string    `json:"phone"`
	Message    string    `json:"message,omitempty"`
	Status     string    `json:"status"`
	Source     string    `json:"source"`
	CreatedAt  time.Time `json:"created_at"`
}

// SaveSearchRequest - сохранение поиска. Criteria передаются как есть
// и проверяются по контрактной схеме на стороне use case.
type SaveSearchRequest struct {
	Name         string          `json:"name"`
	Criteria     json.RawMessage `json:"criteria"`
	AlertEnabled bool            `json:"alert_enabled"`
}

// SavedSearchResponse - сохраненный поиск в ответе.
type SavedSearchResponse struct {
	ID           string                `json:"id"`
	Name         string                `json:"name"`
	Criteria     domain.SearchCriteria `json:"criteria"`
	AlertEnabled bool                  `json:"alert_enabled"`
	CreatedAt    time.Time             `json:"created_at"`
}

// CreatePaymentOrderRequest - регистрация заказа платежного шлюза.
type CreatePaymentOrderRequest struct {
	PropertyID string `json:"property_id"`
	OrderID    string `json:"order_id"`
	Plan       string `json:"plan"`
	Amount     int64  `json:"amount"`
	Currency   string `json:"currency"`
}

// VerifyPaymentRequest - подтверждение платежа подписью шлюза.
type VerifyPaymentRequest struct {
	OrderID   string `json:"order_id"`
	PaymentID string `json:"payment_id"`
	Signature string `json:"signature"`
}

// PaymentResponse - платеж в истории пользователя.
type PaymentResponse struct {
	ID          string     `json:"id"`
	PropertyID  string     `json:"property_id"`
	OrderID     string     `json:"order_id"`
	Plan        string     `json:"plan"`
	Amount      int64      `json:"amount"`
	Currency    string     `json:"currency"`
	Status      string     `json:"status"`
	CreatedAt   time.Time  `json:"created_at"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}

// ErrorResponse - стандартная структура для ответа с ошибкой.
type ErrorResponse struct {
	Error string `json:"error"`
}
