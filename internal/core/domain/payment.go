package domain

import (
	"time"

	"github.com/google/uuid"
)

// Статусы платежа за премиум-размещение
const (
	PaymentCreated   = "created"
	PaymentCompleted = "completed"
	PaymentFailed    = "failed"
)

// Планы премиум-размещения: сколько дней объявление держится в featured.
var FeaturedPlanDays = map[string]int{
	"basic":    7,
	"standard": 30,
	"premium":  90,
}

// Payment - запись о платеже за премиум-размещение объявления.
// OrderID приходит от платежного шлюза; сам шлюз (создание заказа,
// захват средств) находится вне этого сервиса.
type Payment struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	PropertyID  uuid.UUID
	OrderID     string
	PaymentID   string
	Plan        string
	Amount      int64 // в минорных единицах (пайсах)
	Currency    string
	Status      string
	CreatedAt   time.Time
	CompletedAt *time.Time
}
