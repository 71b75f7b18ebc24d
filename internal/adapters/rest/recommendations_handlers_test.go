package rest

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/AnandGandhi03/realtor-india-platform/internal/core/domain"
)

type fakeRecommendationsUC struct {
	execute func(ctx context.Context, userID uuid.UUID, limit int) ([]domain.Property, error)
}

func (f *fakeRecommendationsUC) Execute(ctx context.Context, userID uuid.UUID, limit int) ([]domain.Property, error) {
	return f.execute(ctx, userID, limit)
}

type fakeSimilarUC struct {
	execute func(ctx context.Context, propertyID uuid.UUID, limit int) ([]domain.ScoredProperty, error)
}

func (f *fakeSimilarUC) Execute(ctx context.Context, propertyID uuid.UUID, limit int) ([]domain.ScoredProperty, error) {
	return f.execute(ctx, propertyID, limit)
}

func TestGetRecommendationsHandler(t *testing.T) {
	t.Parallel()

	userID := uuid.New()
	recUC := &fakeRecommendationsUC{
		execute: func(ctx context.Context, gotUserID uuid.UUID, limit int) ([]domain.Property, error) {
			if gotUserID != userID {
				t.Errorf("userID = %s, want %s", gotUserID, userID)
			}
			if limit != 10 {
				t.Errorf("limit = %d, want default 10", limit)
			}
			return []domain.Property{{ID: uuid.New(), Title: "2BHK in Baner", City: "Pune"}}, nil
		},
	}

	handler := NewRecommendationsHandler(recUC, &fakeSimilarUC{})

	r := chi.NewRouter()
	r.With(AuthMiddleware).Get("/api/v1/recommendations", handler.GetRecommendations)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/recommendations", nil)
	req.Header.Set("X-User-ID", userID.String())
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200, body: %s", rec.Code, rec.Body.String())
	}

	var body []PropertyResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(body) != 1 || body[0].City != "Pune" {
		t.Errorf("body = %+v, want single Pune listing", body)
	}
}

func TestGetRecommendationsRequiresUser(t *testing.T) {
	t.Parallel()

	handler := NewRecommendationsHandler(&fakeRecommendationsUC{}, &fakeSimilarUC{})

	r := chi.NewRouter()
	r.With(AuthMiddleware).Get("/api/v1/recommendations", handler.GetRecommendations)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/recommendations", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", rec.Code)
	}
}

func TestGetSimilarPropertiesHandler(t *testing.T) {
	t.Parallel()

	propertyID := uuid.New()
	similarUC := &fakeSimilarUC{
		execute: func(ctx context.Context, gotID uuid.UUID, limit int) ([]domain.ScoredProperty, error) {
			if gotID != propertyID {
				t.Errorf("propertyID = %s, want %s", gotID, propertyID)
			}
			return []domain.ScoredProperty{{
				Property:   domain.Property{ID: uuid.New(), City: "Pune"},
				Similarity: 65,
			}}, nil
		},
	}

	handler := NewRecommendationsHandler(&fakeRecommendationsUC{}, similarUC)

	r := chi.NewRouter()
	r.Get("/api/v1/properties/{propertyID}/similar", handler.GetSimilarProperties)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/properties/"+propertyID.String()+"/similar", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200, body: %s", rec.Code, rec.Body.String())
	}

	var body []ScoredPropertyResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(body) != 1 || body[0].SimilarityScore != 65 {
		t.Errorf("body = %+v, want one result with score 65", body)
	}
}

func TestGetSimilarPropertiesRejectsBadID(t *testing.T) {
	t.Parallel()

	handler := NewRecommendationsHandler(&fakeRecommendationsUC{}, &fakeSimilarUC{})

	r := chi.NewRouter()
	r.Get("/api/v1/properties/{propertyID}/similar", handler.GetSimilarProperties)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/properties/not-a-uuid/similar", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}
