package rest

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/AnandGandhi03/realtor-india-platform/internal/contextkeys"
	"github.com/AnandGandhi03/realtor-india-platform/internal/core/domain"
	"github.com/AnandGandhi03/realtor-india-platform/internal/core/port"
	"github.com/AnandGandhi03/realtor-india-platform/internal/core/port/usecases_port"
)

// PropertiesHandler - обработчики каталога объявлений.
type PropertiesHandler struct {
	findUC     usecases_port.FindPropertiesUseCasePort
	searchUC   usecases_port.SearchPropertiesUseCasePort
	detailsUC  usecases_port.GetPropertyDetailsUseCasePort
	featuredUC usecases_port.GetFeaturedPropertiesUseCasePort
	createUC   usecases_port.CreatePropertyUseCasePort
	updateUC   usecases_port.UpdatePropertyUseCasePort
	deleteUC   usecases_port.DeletePropertyUseCasePort
	moderateUC usecases_port.ModeratePropertyUseCasePort
}

func NewPropertiesHandler(
	findUC usecases_port.FindPropertiesUseCasePort,
	searchUC usecases_port.SearchPropertiesUseCasePort,
	detailsUC usecases_port.GetPropertyDetailsUseCasePort,
	featuredUC usecases_port.GetFeaturedPropertiesUseCasePort,
	createUC usecases_port.CreatePropertyUseCasePort,
	updateUC usecases_port.UpdatePropertyUseCasePort,
	deleteUC usecases_port.DeletePropertyUseCasePort,
	moderateUC usecases_port.ModeratePropertyUseCasePort,
) *PropertiesHandler {
	return &PropertiesHandler{
		findUC:     findUC,
		searchUC:   searchUC,
		detailsUC:  detailsUC,
		featuredUC: featuredUC,
		createUC:   createUC,
		updateUC:   updateUC,
		deleteUC:   deleteUC,
		moderateUC: moderateUC,
	}
}

// FindProperties обрабатывает GET /api/v1/properties
func (h *PropertiesHandler) FindProperties(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "FindProperties"})

	filters := parseFilters(r)
	limit, offset := GetPagination(r, 20)

	logger.Info("Processing catalog request", port.Fields{"limit": limit, "offset": offset})

	page, err := h.findUC.Execute(r.Context(), filters, limit, offset)
	if err != nil {
		logger.Error("Find properties use case failed", err, nil)
		WriteJSONError(w, http.StatusInternalServerError, "Failed to find properties")
		return
	}

	RespondWithJSON(w, http.StatusOK, PaginatedPropertiesResponse{
		Data:    toPropertyResponses(page.Properties),
		Total:   page.TotalCount,
		Page:    page.CurrentPage,
		PerPage: page.ItemsPerPage,
	})
}

// SearchProperties обрабатывает GET /api/v1/properties/search?q=...
func (h *PropertiesHandler) SearchProperties(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "SearchProperties"})

	query := r.URL.Query().Get("q")
	if query == "" {
		WriteJSONError(w, http.StatusBadRequest, "Query parameter 'q' is required")
		return
	}
	limit, offset := GetPagination(r, 20)

	page, err := h.searchUC.Execute(r.Context(), query, limit, offset)
	if err != nil {
		logger.Error("Search properties use case failed", err, nil)
		WriteJSONError(w, http.StatusInternalServerError, "Failed to search properties")
		return
	}

	RespondWithJSON(w, http.StatusOK, PaginatedPropertiesResponse{
		Data:    toPropertyResponses(page.Properties),
		Total:   page.TotalCount,
		Page:    page.CurrentPage,
		PerPage: page.ItemsPerPage,
	})
}

// GetProperty обрабатывает GET /api/v1/properties/{propertyID}
func (h *PropertiesHandler) GetProperty(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "GetProperty"})

	propertyID, err := uuid.Parse(chi.URLParam(r, "propertyID"))
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, "Invalid propertyID in URL")
		return
	}

	property, err := h.detailsUC.Execute(r.Context(), propertyID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			WriteJSONError(w, http.StatusNotFound, "Property not found")
			return
		}
		logger.Error("Get property details use case failed", err, port.Fields{"property_id": propertyID})
		WriteJSONError(w, http.StatusInternalServerError, "Failed to get property")
		return
	}

	RespondWithJSON(w, http.StatusOK, toPropertyResponse(*property))
}

// GetFeatured обрабатывает GET /api/v1/properties/featured
func (h *PropertiesHandler) GetFeatured(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "GetFeatured"})

	limit, _ := GetPagination(r, 8)

	properties, err := h.featuredUC.Execute(r.Context(), limit)
	if err != nil {
		logger.Error("Get featured properties use case failed", err, nil)
		WriteJSONError(w, http.StatusInternalServerError, "Failed to get featured properties")
		return
	}

	RespondWithJSON(w, http.StatusOK, toPropertyResponses(properties))
}

// CreateProperty обрабатывает POST /api/v1/properties
func (h *PropertiesHandler) CreateProperty(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "CreateProperty"})

	userID, ok := r.Context().Value(userIDKey).(uuid.UUID)
	if !ok {
		logger.Error("Invalid or missing user ID in context", nil, nil)
		WriteJSONError(w, http.StatusUnauthorized, "Invalid user ID in context")
		return
	}

	var reqDTO CreatePropertyRequest
	if err := json.NewDecoder(r.Body).Decode(&reqDTO); err != nil {
		logger.Warn("Failed to decode request body for create property", port.Fields{"error": err.Error()})
		WriteJSONError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	property := &domain.Property{
		Title:           reqDTO.Title,
		Description:     reqDTO.Description,
		PropertyType:    reqDTO.PropertyType,
		ListingType:     reqDTO.ListingType,
		Price:           reqDTO.Price,
		MaintenanceCost: reqDTO.MaintenanceCost,
		SecurityDeposit: reqDTO.SecurityDeposit,
		Address:         reqDTO.Address,
		Locality:        reqDTO.Locality,
		City:            reqDTO.City,
		State:           reqDTO.State,
		Pincode:         reqDTO.Pincode,
		Latitude:        reqDTO.Latitude,
		Longitude:       reqDTO.Longitude,
		Bedrooms:        reqDTO.Bedrooms,
		Bathrooms:       reqDTO.Bathrooms,
		Balconies:       reqDTO.Balconies,
		TotalFloors:     reqDTO.TotalFloors,
		FloorNumber:     reqDTO.FloorNumber,
		CarpetArea:      reqDTO.CarpetArea,
		BuiltUpArea:     reqDTO.BuiltUpArea,
		Furnishing:      reqDTO.Furnishing,
		Parking:         reqDTO.Parking,
		OwnerID:         userID,
	}

	handlerLogger := logger.WithFields(port.Fields{"user_id": userID})
	handlerLogger.Info("Processing request to create property", nil)

	if err := h.createUC.Execute(r.Context(), property); err != nil {
		if errors.Is(err, domain.ErrDuplicateListing) {
			WriteJSONError(w, http.StatusConflict, "A similar active listing already exists at this location")
			return
		}
		if errors.Is(err, domain.ErrValidation) {
			WriteJSONError(w, http.StatusBadRequest, err.Error())
			return
		}
		handlerLogger.Error("Create property use case failed", err, nil)
		WriteJSONError(w, http.StatusInternalServerError, "Failed to create property")
		return
	}

	handlerLogger.Info("Property created", port.Fields{"property_id": property.ID})
	RespondWithJSON(w, http.StatusCreated, toPropertyResponse(*property))
}

// UpdateProperty обрабатывает PATCH /api/v1/properties/{propertyID}
func (h *PropertiesHandler) UpdateProperty(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "UpdateProperty"})

	userID, ok := r.Context().Value(userIDKey).(uuid.UUID)
	if !ok {
		logger.Error("Invalid or missing user ID in context", nil, nil)
		WriteJSONError(w, http.StatusUnauthorized, "Invalid user ID in context")
		return
	}

	propertyID, err := uuid.Parse(chi.URLParam(r, "propertyID"))
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, "Invalid propertyID in URL")
		return
	}

	var reqDTO UpdatePropertyRequest
	if err := json.NewDecoder(r.Body).Decode(&reqDTO); err != nil {
		logger.Warn("Failed to decode request body for update property", port.Fields{"error": err.Error()})
		WriteJSONError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	upd := domain.PropertyUpdate{
		Title:           reqDTO.Title,
		Description:     reqDTO.Description,
		Price:           reqDTO.Price,
		Status:          reqDTO.Status,
		MaintenanceCost: reqDTO.MaintenanceCost,
		SecurityDeposit: reqDTO.SecurityDeposit,
		Furnishing:      reqDTO.Furnishing,
		Bedrooms:        reqDTO.Bedrooms,
		Bathrooms:       reqDTO.Bathrooms,
		CarpetArea:      reqDTO.CarpetArea,
		BuiltUpArea:     reqDTO.BuiltUpArea,
	}

	if err := h.updateUC.Execute(r.Context(), propertyID, userID, upd); err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			WriteJSONError(w, http.StatusNotFound, "Property not found")
		case errors.Is(err, domain.ErrInvalidStatus):
			WriteJSONError(w, http.StatusBadRequest, "Invalid status transition")
		default:
			logger.Error("Update property use case failed", err, port.Fields{"property_id": propertyID})
			WriteJSONError(w, http.StatusInternalServerError, "Failed to update property")
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// DeleteProperty обрабатывает DELETE /api/v1/properties/{propertyID}
func (h *PropertiesHandler) DeleteProperty(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "DeleteProperty"})

	userID, ok := r.Context().Value(userIDKey).(uuid.UUID)
	if !ok {
		logger.Error("Invalid or missing user ID in context", nil, nil)
		WriteJSONError(w, http.StatusUnauthorized, "Invalid user ID in context")
		return
	}

	propertyID, err := uuid.Parse(chi.URLParam(r, "propertyID"))
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, "Invalid propertyID in URL")
		return
	}

	if err := h.deleteUC.Execute(r.Context(), propertyID, userID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			WriteJSONError(w, http.StatusNotFound, "Property not found")
			return
		}
		logger.Error("Delete property use case failed", err, port.Fields{"property_id": propertyID})
		WriteJSONError(w, http.StatusInternalServerError, "Failed to delete property")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// ModerateProperty обрабатывает POST /api/v1/admin/properties/{propertyID}/moderate
func (h *PropertiesHandler) ModerateProperty(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "ModerateProperty"})

	propertyID, err := uuid.Parse(chi.URLParam(r, "propertyID"))
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, "Invalid propertyID in URL")
		return
	}

	var reqDTO ModeratePropertyRequest
	if err := json.NewDecoder(r.Body).Decode(&reqDTO); err != nil {
		WriteJSONError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.moderateUC.Execute(r.Context(), propertyID, reqDTO.Approve); err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			WriteJSONError(w, http.StatusNotFound, "Property not found")
		case errors.Is(err, domain.ErrInvalidStatus):
			WriteJSONError(w, http.StatusConflict, "Property is not pending moderation")
		default:
			logger.Error("Moderate property use case failed", err, port.Fields{"property_id": propertyID})
			WriteJSONError(w, http.StatusInternalServerError, "Failed to moderate property")
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// parseFilters разбирает query-параметры каталога в доменные фильтры.
func parseFilters(r *http.Request) domain.PropertyFilters {
	q := r.URL.Query()

	filters := domain.PropertyFilters{
		City:         q.Get("city"),
		Locality:     q.Get("locality"),
		PropertyType: q.Get("property_type"),
		ListingType:  q.Get("listing_type"),
		Furnishing:   q.Get("furnishing"),
	}

	if v, err := strconv.ParseFloat(q.Get("min_price"), 64); err == nil {
		filters.PriceMin = &v
	}
	if v, err := strconv.ParseFloat(q.Get("max_price"), 64); err == nil {
		filters.PriceMax = &v
	}
	if v, err := strconv.Atoi(q.Get("bedrooms")); err == nil {
		filters.Bedrooms = &v
	}
	if v, err := strconv.Atoi(q.Get("bathrooms")); err == nil {
		filters.Bathrooms = &v
	}
	if v, err := strconv.ParseFloat(q.Get("min_area"), 64); err == nil {
		filters.AreaMin = &v
	}
	if v, err := strconv.ParseFloat(q.Get("max_area"), 64); err == nil {
		filters.AreaMax = &v
	}

	return filters
}
