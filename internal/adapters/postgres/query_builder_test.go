package postgres_adapter

import (
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/AnandGandhi03/realtor-india-platform/internal/core/domain"
	"github.com/AnandGandhi03/realtor-india-platform/internal/core/port"
)

func intPtr(v int) *int           { return &v }
func floatPtr(v float64) *float64 { return &v }

func TestApplyCandidateQueryEmptyProfile(t *testing.T) {
	t.Parallel()

	where, args := applyCandidateQuery(port.CandidateQuery{})

	// Пустой профиль - только базовый предикат активности, без аргументов.
	if where != "WHERE p.status = 'active'" {
		t.Errorf("where = %q", where)
	}
	if len(args) != 0 {
		t.Errorf("args = %v, want none", args)
	}
}

func TestApplyCandidateQueryFullProfile(t *testing.T) {
	t.Parallel()

	q := port.CandidateQuery{
		Profile: domain.PreferenceProfile{
			PreferredCities: []string{"Mumbai", "Pune"},
			PreferredTypes:  []string{"apartment"},
			BudgetMin:       floatPtr(1_400_000),
			BudgetMax:       floatPtr(2_600_000),
			MinBedrooms:     intPtr(1),
			MaxBedrooms:     intPtr(3),
		},
		ExcludeIDs: []uuid.UUID{uuid.New()},
	}

	where, args := applyCandidateQuery(q)

	// MaxBedrooms в предикаты не попадает: профиль хранит верхнюю
	// границу, но кандидатов по ней не отсекаем.
	want := "WHERE p.status = 'active' AND p.city = ANY($1) AND p.property_type = ANY($2)" +
		" AND p.price >= $3 AND p.price <= $4 AND p.bedrooms >= $5" +
		" AND NOT (p.id = ANY($6))"
	if where != want {
		t.Errorf("where = %q\nwant    %q", where, want)
	}
	if len(args) != 6 {
		t.Errorf("got %d args, want 6", len(args))
	}
}

func TestApplyCandidateQuerySkipsEmptyExclusions(t *testing.T) {
	t.Parallel()

	q := port.CandidateQuery{
		Profile: domain.PreferenceProfile{PreferredCities: []string{"Pune"}},
	}

	where, _ := applyCandidateQuery(q)
	if want := "WHERE p.status = 'active' AND p.city = ANY($1)"; where != want {
		t.Errorf("where = %q, want %q", where, want)
	}
}

func TestApplyFilters(t *testing.T) {
	t.Parallel()

	filters := domain.PropertyFilters{
		City:     "Pune",
		PriceMax: floatPtr(50_000),
		Bedrooms: intPtr(2),
	}

	where, args := applyFilters(filters)
	want := "WHERE p.status = 'active' AND p.city = $1 AND p.price <= $2 AND p.bedrooms = $3"
	if where != want {
		t.Errorf("where = %q, want %q", where, want)
	}
	if len(args) != 3 {
		t.Errorf("got %d args, want 3", len(args))
	}
}

func TestApplyCriteriaAlwaysBoundsByCreatedAt(t *testing.T) {
	t.Parallel()

	since := time.Now().Add(-time.Hour)
	where, args := applyCriteria(domain.SearchCriteria{City: "Pune"}, since)

	want := "WHERE p.status = 'active' AND p.city = $1 AND p.created_at > $2"
	if where != want {
		t.Errorf("where = %q, want %q", where, want)
	}
	if len(args) != 2 {
		t.Fatalf("got %d args, want 2", len(args))
	}
	if got, ok := args[1].(time.Time); !ok || !got.Equal(since) {
		t.Errorf("last arg = %v, want since timestamp", args[1])
	}
}
