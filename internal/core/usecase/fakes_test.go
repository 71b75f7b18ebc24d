package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/AnandGandhi03/realtor-india-platform/internal/core/domain"
	"github.com/AnandGandhi03/realtor-india-platform/internal/core/port"
)

// Фейки портов для модульных тестов use case'ов. Каждое поле-функция
// переопределяет поведение конкретного метода; непереопределенные
// методы возвращают нулевые значения.

type fakeActivity struct {
	viewings  func(ctx context.Context, userID uuid.UUID, limit int) ([]domain.Viewing, error)
	favorites func(ctx context.Context, userID uuid.UUID, limit int) ([]domain.Favorite, error)
	searches  func(ctx context.Context, userID uuid.UUID, limit int) ([]domain.SavedSearch, error)
}

func (f *fakeActivity) RecentViewings(ctx context.Context, userID uuid.UUID, limit int) ([]domain.Viewing, error) {
	if f.viewings == nil {
		return nil, nil
	}
	return f.viewings(ctx, userID, limit)
}

func (f *fakeActivity) RecentFavorites(ctx context.Context, userID uuid.UUID, limit int) ([]domain.Favorite, error) {
	if f.favorites == nil {
		return nil, nil
	}
	return f.favorites(ctx, userID, limit)
}

func (f *fakeActivity) RecentSavedSearches(ctx context.Context, userID uuid.UUID, limit int) ([]domain.SavedSearch, error) {
	if f.searches == nil {
		return nil, nil
	}
	return f.searches(ctx, userID, limit)
}

type fakeCatalog struct {
	getByID          func(ctx context.Context, id uuid.UUID) (*domain.Property, error)
	findCandidates   func(ctx context.Context, q port.CandidateQuery) ([]domain.Property, error)
	findActiveInCity func(ctx context.Context, city string, excludeID uuid.UUID, limit int) ([]domain.Property, error)
	findCreatedSince func(ctx context.Context, criteria domain.SearchCriteria, since time.Time, limit int) ([]domain.Property, error)
}

func (f *fakeCatalog) GetByID(ctx context.Context, id uuid.UUID) (*domain.Property, error) {
	if f.getByID == nil {
		return nil, domain.ErrNotFound
	}
	return f.getByID(ctx, id)
}

func (f *fakeCatalog) Find(ctx context.Context, filters domain.PropertyFilters, limit, offset int) (*domain.PaginatedProperties, error) {
	return &domain.PaginatedProperties{}, nil
}

func (f *fakeCatalog) Search(ctx context.Context, query string, limit, offset int) (*domain.PaginatedProperties, error) {
	return &domain.PaginatedProperties{}, nil
}

func (f *fakeCatalog) ListFeatured(ctx context.Context, limit int) ([]domain.Property, error) {
	return nil, nil
}

func (f *fakeCatalog) FindCandidates(ctx context.Context, q port.CandidateQuery) ([]domain.Property, error) {
	if f.findCandidates == nil {
		return nil, nil
	}
	return f.findCandidates(ctx, q)
}

func (f *fakeCatalog) FindActiveInCity(ctx context.Context, city string, excludeID uuid.UUID, limit int) ([]domain.Property, error) {
	if f.findActiveInCity == nil {
		return nil, nil
	}
	return f.findActiveInCity(ctx, city, excludeID, limit)
}

func (f *fakeCatalog) FindCreatedSince(ctx context.Context, criteria domain.SearchCriteria, since time.Time, limit int) ([]domain.Property, error) {
	if f.findCreatedSince == nil {
		return nil, nil
	}
	return f.findCreatedSince(ctx, criteria, since, limit)
}

func (f *fakeCatalog) IncrementViews(ctx context.Context, id uuid.UUID) error {
	return nil
}

type fakeStorage struct {
	setFeatured    func(ctx context.Context, id uuid.UUID, until time.Time) error
	expireFeatured func(ctx context.Context, now time.Time) (int64, error)
}

func (f *fakeStorage) Create(ctx context.Context, p *domain.Property) error { return nil }

func (f *fakeStorage) Update(ctx context.Context, id, ownerID uuid.UUID, upd domain.PropertyUpdate) error {
	return nil
}

func (f *fakeStorage) Delete(ctx context.Context, id, ownerID uuid.UUID) error { return nil }

func (f *fakeStorage) UpdateStatus(ctx context.Context, id uuid.UUID, status string) error {
	return nil
}

func (f *fakeStorage) SetFeatured(ctx context.Context, id uuid.UUID, until time.Time) error {
	if f.setFeatured == nil {
		return nil
	}
	return f.setFeatured(ctx, id, until)
}

func (f *fakeStorage) ExpireFeatured(ctx context.Context, now time.Time) (int64, error) {
	if f.expireFeatured == nil {
		return 0, nil
	}
	return f.expireFeatured(ctx, now)
}

type fakePayments struct {
	getByOrderID  func(ctx context.Context, orderID string) (*domain.Payment, error)
	markCompleted func(ctx context.Context, orderID, paymentID string, at time.Time) error
}

func (f *fakePayments) Create(ctx context.Context, p *domain.Payment) error { return nil }

func (f *fakePayments) GetByOrderID(ctx context.Context, orderID string) (*domain.Payment, error) {
	if f.getByOrderID == nil {
		return nil, domain.ErrNotFound
	}
	return f.getByOrderID(ctx, orderID)
}

func (f *fakePayments) MarkCompleted(ctx context.Context, orderID, paymentID string, at time.Time) error {
	if f.markCompleted == nil {
		return nil
	}
	return f.markCompleted(ctx, orderID, paymentID, at)
}

func (f *fakePayments) FindByUser(ctx context.Context, userID uuid.UUID) ([]domain.Payment, error) {
	return nil, nil
}

type fakeSavedSearches struct {
	findWithAlerts   func(ctx context.Context) ([]domain.SavedSearch, error)
	touchLastChecked func(ctx context.Context, id uuid.UUID, at time.Time) error
}

func (f *fakeSavedSearches) Create(ctx context.Context, s *domain.SavedSearch) error { return nil }

func (f *fakeSavedSearches) FindByUser(ctx context.Context, userID uuid.UUID) ([]domain.SavedSearch, error) {
	return nil, nil
}

func (f *fakeSavedSearches) Delete(ctx context.Context, id, userID uuid.UUID) error { return nil }

func (f *fakeSavedSearches) FindWithAlerts(ctx context.Context) ([]domain.SavedSearch, error) {
	if f.findWithAlerts == nil {
		return nil, nil
	}
	return f.findWithAlerts(ctx)
}

func (f *fakeSavedSearches) TouchLastChecked(ctx context.Context, id uuid.UUID, at time.Time) error {
	if f.touchLastChecked == nil {
		return nil
	}
	return f.touchLastChecked(ctx, id, at)
}

type fakeNotifications struct {
	publishAlert func(ctx context.Context, alert port.SavedSearchAlert) error
	publishLead  func(ctx context.Context, n port.NewLeadNotification) error
}

func (f *fakeNotifications) PublishSavedSearchAlert(ctx context.Context, alert port.SavedSearchAlert) error {
	if f.publishAlert == nil {
		return nil
	}
	return f.publishAlert(ctx, alert)
}

func (f *fakeNotifications) PublishNewLead(ctx context.Context, n port.NewLeadNotification) error {
	if f.publishLead == nil {
		return nil
	}
	return f.publishLead(ctx, n)
}

func intPtr(v int) *int           { return &v }
func floatPtr(v float64) *float64 { return &v }
