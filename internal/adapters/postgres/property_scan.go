package postgres_adapter

import (
	"github.com/jackc/pgx/v5"

	"github.com/AnandGandhi03/realtor-india-platform/internal/core/domain"
)

// propertyColumns - единый список колонок для всех SELECT по объявлениям.
// Порядок должен совпадать с порядком Scan в scanProperty.
const propertyColumns = `p.id, p.title, p.description, p.property_type, p.listing_type, p.status,
	p.price, p.maintenance_cost, p.security_deposit,
	p.address, p.locality, p.city, p.state, p.pincode,
	p.latitude, p.longitude,
	p.bedrooms, p.bathrooms, p.balconies, p.total_floors, p.floor_number,
	p.carpet_area, p.built_up_area, p.furnishing, p.parking,
	p.owner_id, p.agent_id, p.views, p.favorites_count,
	p.featured, p.featured_until, p.verified,
	p.created_at, p.updated_at`

func scanProperty(row pgx.Row) (*domain.Property, error) {
	var p domain.Property
	err := row.Scan(
		&p.ID, &p.Title, &p.Description, &p.PropertyType, &p.ListingType, &p.Status,
		&p.Price, &p.MaintenanceCost, &p.SecurityDeposit,
		&p.Address, &p.Locality, &p.City, &p.State, &p.Pincode,
		&p.Latitude, &p.Longitude,
		&p.Bedrooms, &p.Bathrooms, &p.Balconies, &p.TotalFloors, &p.FloorNumber,
		&p.CarpetArea, &p.BuiltUpArea, &p.Furnishing, &p.Parking,
		&p.OwnerID, &p.AgentID, &p.Views, &p.FavoritesCount,
		&p.Featured, &p.FeaturedUntil, &p.Verified,
		&p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func collectProperties(rows pgx.Rows) ([]domain.Property, error) {
	defer rows.Close()

	properties := make([]domain.Property, 0)
	for rows.Next() {
		p, err := scanProperty(rows)
		if err != nil {
			return nil, err
		}
		properties = append(properties, *p)
	}
	return properties, rows.Err()
}
