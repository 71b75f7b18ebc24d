package port

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/AnandGandhi03/realtor-india-platform/internal/core/domain"
)

// PropertyStoragePort - пишущая сторона каталога объявлений.
type PropertyStoragePort interface {
	// Create сохраняет новое объявление. Возвращает domain.ErrDuplicateListing,
	// если у того же владельца уже есть активное объявление с тем же
	// гео-хэшем локации и типом.
	Create(ctx context.Context, p *domain.Property) error

	// Update применяет не-nil поля. Возвращает domain.ErrNotFound,
	// если объявление не принадлежит ownerID.
	Update(ctx context.Context, id, ownerID uuid.UUID, upd domain.PropertyUpdate) error

	Delete(ctx context.Context, id, ownerID uuid.UUID) error

	// UpdateStatus меняет статус без проверки владельца (модерация).
	UpdateStatus(ctx context.Context, id uuid.UUID, status string) error

	// SetFeatured включает премиум-размещение до указанной даты.
	SetFeatured(ctx context.Context, id uuid.UUID, until time.Time) error

	// ExpireFeatured снимает флаг featured у всех объявлений с истекшим
	// сроком и возвращает количество затронутых строк.
	ExpireFeatured(ctx context.Context, now time.Time) (int64, error)
}
