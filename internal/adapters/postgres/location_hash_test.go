package postgres_adapter

import (
	"testing"

	"github.com/AnandGandhi03/realtor-india-platform/internal/core/domain"
)

func TestBuildLocationHashStableForSameCoordinates(t *testing.T) {
	t.Parallel()

	a := &domain.Property{
		Latitude:     floatPtr(19.1196),
		Longitude:    floatPtr(72.8464),
		PropertyType: "apartment",
		ListingType:  "rent",
	}
	// Чуть сдвинутые координаты внутри той же гео-ячейки (точность 5 ~= 4.9 км).
	b := &domain.Property{
		Latitude:     floatPtr(19.1199),
		Longitude:    floatPtr(72.8467),
		PropertyType: "apartment",
		ListingType:  "rent",
	}

	if buildLocationHash(a) != buildLocationHash(b) {
		t.Error("nearby coordinates must land in the same location hash")
	}
}

func TestBuildLocationHashDiffersByType(t *testing.T) {
	t.Parallel()

	a := &domain.Property{Latitude: floatPtr(19.1196), Longitude: floatPtr(72.8464), PropertyType: "apartment", ListingType: "rent"}
	b := &domain.Property{Latitude: floatPtr(19.1196), Longitude: floatPtr(72.8464), PropertyType: "office", ListingType: "rent"}

	if buildLocationHash(a) == buildLocationHash(b) {
		t.Error("different property types must hash differently")
	}
}

func TestBuildLocationHashAddressFallbackIsNormalized(t *testing.T) {
	t.Parallel()

	a := &domain.Property{
		City:         "Mumbai",
		Locality:     "Andheri West",
		Address:      "12 Veera Desai Road",
		PropertyType: "apartment",
		ListingType:  "sale",
	}
	b := &domain.Property{
		City:         "  MUMBAI ",
		Locality:     "andheri west",
		Address:      " 12 VEERA DESAI ROAD",
		PropertyType: "apartment",
		ListingType:  "sale",
	}

	if buildLocationHash(a) != buildLocationHash(b) {
		t.Error("address fallback must ignore case and surrounding whitespace")
	}
}

func TestBuildLocationHashDistantCoordinatesDiffer(t *testing.T) {
	t.Parallel()

	a := &domain.Property{Latitude: floatPtr(19.0760), Longitude: floatPtr(72.8777), PropertyType: "apartment", ListingType: "rent"} // Mumbai
	b := &domain.Property{Latitude: floatPtr(28.6139), Longitude: floatPtr(77.2090), PropertyType: "apartment", ListingType: "rent"} // Delhi

	if buildLocationHash(a) == buildLocationHash(b) {
		t.Error("far apart coordinates must hash differently")
	}
}
