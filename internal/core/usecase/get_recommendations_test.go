package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/AnandGandhi03/realtor-india-platform/internal/core/domain"
	"github.com/AnandGandhi03/realtor-india-platform/internal/core/port"
)

func TestGetRecommendationsExcludesSeenProperties(t *testing.T) {
	t.Parallel()

	userID := uuid.New()
	viewedID := uuid.New()
	favoritedID := uuid.New()

	activity := &fakeActivity{
		viewings: func(ctx context.Context, _ uuid.UUID, _ int) ([]domain.Viewing, error) {
			return []domain.Viewing{{PropertyID: viewedID, Property: &domain.Property{ID: viewedID, City: "Mumbai"}}}, nil
		},
		favorites: func(ctx context.Context, _ uuid.UUID, _ int) ([]domain.Favorite, error) {
			return []domain.Favorite{{PropertyID: favoritedID, Property: &domain.Property{ID: favoritedID, City: "Mumbai"}}}, nil
		},
	}

	var gotQuery port.CandidateQuery
	catalog := &fakeCatalog{
		findCandidates: func(ctx context.Context, q port.CandidateQuery) ([]domain.Property, error) {
			gotQuery = q
			return []domain.Property{{ID: uuid.New(), City: "Mumbai"}}, nil
		},
	}

	uc := NewGetRecommendationsUseCase(activity, catalog)
	result, err := uc.Execute(context.Background(), userID, 5)
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if len(result) != 1 {
		t.Fatalf("got %d recommendations, want 1", len(result))
	}

	if len(gotQuery.ExcludeIDs) != 2 {
		t.Fatalf("ExcludeIDs = %v, want both seen ids", gotQuery.ExcludeIDs)
	}
	if gotQuery.ExcludeIDs[0] != viewedID || gotQuery.ExcludeIDs[1] != favoritedID {
		t.Errorf("ExcludeIDs = %v, want [%s %s]", gotQuery.ExcludeIDs, viewedID, favoritedID)
	}
	if gotQuery.Limit != 5 {
		t.Errorf("Limit = %d, want 5", gotQuery.Limit)
	}
	if len(gotQuery.Profile.PreferredCities) != 1 || gotQuery.Profile.PreferredCities[0] != "Mumbai" {
		t.Errorf("Profile.PreferredCities = %v, want [Mumbai]", gotQuery.Profile.PreferredCities)
	}
}

func TestGetRecommendationsDefaultLimit(t *testing.T) {
	t.Parallel()

	catalog := &fakeCatalog{
		findCandidates: func(ctx context.Context, q port.CandidateQuery) ([]domain.Property, error) {
			if q.Limit != 10 {
				t.Errorf("Limit = %d, want default 10", q.Limit)
			}
			return nil, nil
		},
	}

	uc := NewGetRecommendationsUseCase(&fakeActivity{}, catalog)
	if _, err := uc.Execute(context.Background(), uuid.New(), 0); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
}

func TestGetRecommendationsFailsOpen(t *testing.T) {
	t.Parallel()

	boom := errors.New("connection refused")

	tests := []struct {
		name     string
		activity *fakeActivity
		catalog  *fakeCatalog
	}{
		{
			name: "viewing history unavailable",
			activity: &fakeActivity{
				viewings: func(ctx context.Context, _ uuid.UUID, _ int) ([]domain.Viewing, error) {
					return nil, boom
				},
			},
			catalog: &fakeCatalog{},
		},
		{
			name:     "candidate query fails",
			activity: &fakeActivity{},
			catalog: &fakeCatalog{
				findCandidates: func(ctx context.Context, q port.CandidateQuery) ([]domain.Property, error) {
					return nil, boom
				},
			},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			uc := NewGetRecommendationsUseCase(tt.activity, tt.catalog)
			result, err := uc.Execute(context.Background(), uuid.New(), 10)
			if err != nil {
				t.Fatalf("Execute() error = %v, want nil (fail open)", err)
			}
			if result == nil || len(result) != 0 {
				t.Errorf("result = %v, want empty non-nil slice", result)
			}
		})
	}
}

func TestGetRecommendationsDeduplicatesSeenIDs(t *testing.T) {
	t.Parallel()

	propertyID := uuid.New()
	activity := &fakeActivity{
		viewings: func(ctx context.Context, _ uuid.UUID, _ int) ([]domain.Viewing, error) {
			return []domain.Viewing{{PropertyID: propertyID}, {PropertyID: propertyID}}, nil
		},
		favorites: func(ctx context.Context, _ uuid.UUID, _ int) ([]domain.Favorite, error) {
			return []domain.Favorite{{PropertyID: propertyID}}, nil
		},
	}

	catalog := &fakeCatalog{
		findCandidates: func(ctx context.Context, q port.CandidateQuery) ([]domain.Property, error) {
			if len(q.ExcludeIDs) != 1 {
				t.Errorf("ExcludeIDs = %v, want single deduplicated id", q.ExcludeIDs)
			}
			return nil, nil
		},
	}

	uc := NewGetRecommendationsUseCase(activity, catalog)
	if _, err := uc.Execute(context.Background(), uuid.New(), 10); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
}
