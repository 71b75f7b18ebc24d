package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/AnandGandhi03/realtor-india-platform/internal/core/domain"
)

func TestGetSimilarPropertiesRanksByScore(t *testing.T) {
	t.Parallel()

	refID := uuid.New()
	ref := domain.Property{
		ID:           refID,
		City:         "Mumbai",
		Locality:     "Andheri West",
		PropertyType: "apartment",
		Price:        1_000_000,
	}

	twin := domain.Property{ // тот же район и тип - наибольший рейтинг
		ID: uuid.New(), City: "Mumbai", Locality: "Andheri West", PropertyType: "apartment", Price: 1_050_000,
	}
	sameCity := domain.Property{
		ID: uuid.New(), City: "Mumbai", Locality: "Bandra", PropertyType: "villa", Price: 9_000_000,
	}

	catalog := &fakeCatalog{
		getByID: func(ctx context.Context, id uuid.UUID) (*domain.Property, error) {
			if id != refID {
				return nil, domain.ErrNotFound
			}
			return &ref, nil
		},
		findActiveInCity: func(ctx context.Context, city string, excludeID uuid.UUID, limit int) ([]domain.Property, error) {
			if city != "Mumbai" {
				t.Errorf("city = %q, want Mumbai", city)
			}
			if excludeID != refID {
				t.Errorf("excludeID = %s, want reference id", excludeID)
			}
			if limit != 20 {
				t.Errorf("limit = %d, want candidate pool of 20", limit)
			}
			// Нарочно отдаем менее похожий объект первым.
			return []domain.Property{sameCity, twin}, nil
		},
	}

	uc := NewGetSimilarPropertiesUseCase(catalog)
	result, err := uc.Execute(context.Background(), refID, 6)
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if len(result) != 2 {
		t.Fatalf("got %d results, want 2", len(result))
	}
	if result[0].Property.ID != twin.ID {
		t.Errorf("first result = %s, want the closest twin", result[0].Property.ID)
	}
	if result[0].Similarity <= result[1].Similarity {
		t.Errorf("results not sorted by similarity: %d then %d", result[0].Similarity, result[1].Similarity)
	}
}

func TestGetSimilarPropertiesTieBreaksByRecency(t *testing.T) {
	t.Parallel()

	refID := uuid.New()
	ref := domain.Property{ID: refID, City: "Pune", PropertyType: "apartment", Price: 1_000_000}

	older := domain.Property{ID: uuid.New(), City: "Pune", PropertyType: "apartment", Price: 1_000_000, CreatedAt: time.Now().Add(-48 * time.Hour)}
	newer := domain.Property{ID: uuid.New(), City: "Pune", PropertyType: "apartment", Price: 1_000_000, CreatedAt: time.Now()}

	catalog := &fakeCatalog{
		getByID: func(ctx context.Context, id uuid.UUID) (*domain.Property, error) {
			return &ref, nil
		},
		findActiveInCity: func(ctx context.Context, city string, excludeID uuid.UUID, limit int) ([]domain.Property, error) {
			return []domain.Property{older, newer}, nil
		},
	}

	uc := NewGetSimilarPropertiesUseCase(catalog)
	result, err := uc.Execute(context.Background(), refID, 6)
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if len(result) != 2 {
		t.Fatalf("got %d results, want 2", len(result))
	}
	if result[0].Property.ID != newer.ID {
		t.Error("expected the fresher listing first on equal similarity")
	}
}

func TestGetSimilarPropertiesTruncatesToLimit(t *testing.T) {
	t.Parallel()

	refID := uuid.New()
	catalog := &fakeCatalog{
		getByID: func(ctx context.Context, id uuid.UUID) (*domain.Property, error) {
			return &domain.Property{ID: refID, City: "Pune"}, nil
		},
		findActiveInCity: func(ctx context.Context, city string, excludeID uuid.UUID, limit int) ([]domain.Property, error) {
			out := make([]domain.Property, 10)
			for i := range out {
				out[i] = domain.Property{ID: uuid.New(), City: "Pune"}
			}
			return out, nil
		},
	}

	uc := NewGetSimilarPropertiesUseCase(catalog)
	result, err := uc.Execute(context.Background(), refID, 0) // 0 -> лимит по умолчанию
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if len(result) != 6 {
		t.Errorf("got %d results, want default limit of 6", len(result))
	}
}

func TestGetSimilarPropertiesMissingReferenceFailsOpen(t *testing.T) {
	t.Parallel()

	uc := NewGetSimilarPropertiesUseCase(&fakeCatalog{})
	result, err := uc.Execute(context.Background(), uuid.New(), 6)
	if err != nil {
		t.Fatalf("Execute() error = %v, want nil", err)
	}
	if result == nil || len(result) != 0 {
		t.Errorf("result = %v, want empty non-nil slice", result)
	}
}

func TestGetSimilarPropertiesCandidateErrorFailsOpen(t *testing.T) {
	t.Parallel()

	refID := uuid.New()
	catalog := &fakeCatalog{
		getByID: func(ctx context.Context, id uuid.UUID) (*domain.Property, error) {
			return &domain.Property{ID: refID, City: "Pune"}, nil
		},
		findActiveInCity: func(ctx context.Context, city string, excludeID uuid.UUID, limit int) ([]domain.Property, error) {
			return nil, errors.New("timeout")
		},
	}

	uc := NewGetSimilarPropertiesUseCase(catalog)
	result, err := uc.Execute(context.Background(), refID, 6)
	if err != nil {
		t.Fatalf("Execute() error = %v, want nil", err)
	}
	if len(result) != 0 {
		t.Errorf("result = %v, want empty", result)
	}
}
