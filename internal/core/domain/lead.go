package domain

import (
	"time"

	"github.com/google/uuid"
)

// Статусы лида (воронка обработки заявки агентом/владельцем)
const (
	LeadNew       = "new"
	LeadContacted = "contacted"
	LeadQualified = "qualified"
	LeadConverted = "converted"
	LeadLost      = "lost"
)

// Lead - заявка потенциального покупателя/арендатора по объявлению.
// UserID опционален: заявку может оставить и неавторизованный посетитель.
type Lead struct {
	ID         uuid.UUID
	PropertyID uuid.UUID
	UserID     *uuid.UUID
	AgentID    *uuid.UUID
	Name       string
	Email      string
	Phone      string
	Message    string
	Status     string
	Source     string
	CreatedAt  time.Time
	UpdatedAt  time.Time

	Property *Property
}
