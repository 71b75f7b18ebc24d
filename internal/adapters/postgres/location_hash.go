package postgres_adapter

import (
	"crypto/sha256"
	"fmt"
	"strings"

	"github.com/mmcloughlin/geohash"

	"github.com/AnandGandhi03/realtor-india-platform/internal/core/domain"
)

const geohashPrecision = 5

// buildLocationHash создает стабильный отпечаток локации объявления для
// выявления дублей: один владелец не может держать два активных объявления
// одного типа в одной гео-ячейке. При отсутствии координат используется
// нормализованный адрес.
func buildLocationHash(p *domain.Property) string {
	var locationPart string
	if p.Latitude != nil && p.Longitude != nil {
		locationPart = geohash.EncodeWithPrecision(*p.Latitude, *p.Longitude, geohashPrecision)
	} else {
		locationPart = normalizeAddressPart(p.City, p.Locality, p.Address)
	}

	parts := []string{
		locationPart,
		p.PropertyType,
		p.ListingType,
	}

	return calculateLocationHash(strings.Join(parts, "|"))
}

func normalizeAddressPart(fields ...string) string {
	normalized := make([]string, 0, len(fields))
	for _, f := range fields {
		normalized = append(normalized, strings.ToLower(strings.TrimSpace(f)))
	}
	return strings.Join(normalized, "|")
}

// calculateLocationHash вычисляет SHA256 хэш отпечатка.
func calculateLocationHash(payload string) string {
	h := sha256.New()
	h.Write([]byte(payload))
	return fmt.Sprintf("%x", h.Sum(nil))
}
