package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/AnandGandhi03/realtor-india-platform/internal/core/domain"
	"github.com/AnandGandhi03/realtor-india-platform/internal/core/port"
)

func TestCheckSearchAlertsPublishesAndTouches(t *testing.T) {
	t.Parallel()

	searchID := uuid.New()
	created := time.Now().Add(-72 * time.Hour)
	lastChecked := time.Now().Add(-24 * time.Hour)

	searches := &fakeSavedSearches{
		findWithAlerts: func(ctx context.Context) ([]domain.SavedSearch, error) {
			return []domain.SavedSearch{{
				ID:            searchID,
				Name:          "2BHK in Pune",
				Criteria:      domain.SearchCriteria{City: "Pune", Bedrooms: intPtr(2)},
				AlertEnabled:  true,
				CreatedAt:     created,
				LastCheckedAt: &lastChecked,
			}}, nil
		},
		touchLastChecked: func(ctx context.Context, id uuid.UUID, at time.Time) error {
			if id != searchID {
				t.Errorf("touched search = %s, want %s", id, searchID)
			}
			return nil
		},
	}

	catalog := &fakeCatalog{
		findCreatedSince: func(ctx context.Context, criteria domain.SearchCriteria, since time.Time, limit int) ([]domain.Property, error) {
			// Отсчет ведется от последней проверки, а не от создания поиска.
			if !since.Equal(lastChecked) {
				t.Errorf("since = %v, want last checked %v", since, lastChecked)
			}
			if criteria.City != "Pune" {
				t.Errorf("criteria city = %q, want Pune", criteria.City)
			}
			return []domain.Property{{ID: uuid.New(), City: "Pune"}}, nil
		},
	}

	var published []port.SavedSearchAlert
	notifications := &fakeNotifications{
		publishAlert: func(ctx context.Context, alert port.SavedSearchAlert) error {
			published = append(published, alert)
			return nil
		},
	}

	uc := NewCheckSearchAlertsUseCase(searches, catalog, notifications)
	sent, err := uc.Execute(context.Background())
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if sent != 1 {
		t.Errorf("sent = %d, want 1", sent)
	}
	if len(published) != 1 || published[0].Search.ID != searchID {
		t.Fatalf("published = %+v, want one alert for the search", published)
	}
	if len(published[0].Properties) != 1 {
		t.Errorf("alert carries %d properties, want 1", len(published[0].Properties))
	}
}

func TestCheckSearchAlertsUsesCreatedAtForFirstSweep(t *testing.T) {
	t.Parallel()

	created := time.Now().Add(-time.Hour)
	searches := &fakeSavedSearches{
		findWithAlerts: func(ctx context.Context) ([]domain.SavedSearch, error) {
			return []domain.SavedSearch{{ID: uuid.New(), CreatedAt: created, AlertEnabled: true}}, nil
		},
	}
	catalog := &fakeCatalog{
		findCreatedSince: func(ctx context.Context, criteria domain.SearchCriteria, since time.Time, limit int) ([]domain.Property, error) {
			if !since.Equal(created) {
				t.Errorf("since = %v, want search creation time %v", since, created)
			}
			return nil, nil
		},
	}

	uc := NewCheckSearchAlertsUseCase(searches, catalog, &fakeNotifications{})
	sent, err := uc.Execute(context.Background())
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	// Новых объектов нет - оповещение не шлется.
	if sent != 0 {
		t.Errorf("sent = %d, want 0", sent)
	}
}

func TestCheckSearchAlertsContinuesAfterPerSearchFailure(t *testing.T) {
	t.Parallel()

	badID := uuid.New()
	goodID := uuid.New()

	searches := &fakeSavedSearches{
		findWithAlerts: func(ctx context.Context) ([]domain.SavedSearch, error) {
			return []domain.SavedSearch{
				{ID: badID, CreatedAt: time.Now(), AlertEnabled: true, Criteria: domain.SearchCriteria{City: "Delhi"}},
				{ID: goodID, CreatedAt: time.Now(), AlertEnabled: true, Criteria: domain.SearchCriteria{City: "Pune"}},
			}, nil
		},
	}
	catalog := &fakeCatalog{
		findCreatedSince: func(ctx context.Context, criteria domain.SearchCriteria, since time.Time, limit int) ([]domain.Property, error) {
			if criteria.City == "Delhi" {
				return nil, errors.New("timeout")
			}
			return []domain.Property{{ID: uuid.New()}}, nil
		},
	}

	uc := NewCheckSearchAlertsUseCase(searches, catalog, &fakeNotifications{})
	sent, err := uc.Execute(context.Background())
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if sent != 1 {
		t.Errorf("sent = %d, want 1 (failed search skipped, sweep continues)", sent)
	}
}

func TestCheckSearchAlertsPropagatesListingFailure(t *testing.T) {
	t.Parallel()

	searches := &fakeSavedSearches{
		findWithAlerts: func(ctx context.Context) ([]domain.SavedSearch, error) {
			return nil, errors.New("connection refused")
		},
	}

	uc := NewCheckSearchAlertsUseCase(searches, &fakeCatalog{}, &fakeNotifications{})
	if _, err := uc.Execute(context.Background()); err == nil {
		t.Error("Execute() error = nil, want error when the sweep cannot even start")
	}
}
