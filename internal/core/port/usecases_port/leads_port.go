package usecases_port

import (
	"context"

	"github.com/google/uuid"

	"github.com/AnandGandhi03/realtor-india-platform/internal/core/domain"
)

// NewLeadInput - данные заявки с формы. UserID заполняется, если
// посетитель был авторизован.
type NewLeadInput struct {
	PropertyID uuid.UUID
	UserID     *uuid.UUID
	Name       string
	Email      string
	Phone      string
	Message    string
}

type CreateLeadUseCasePort interface {
	Execute(ctx context.Context, in NewLeadInput) (*domain.Lead, error)
}

type GetLeadsUseCasePort interface {
	// kind: "sent" - заявки пользователя, "received" - заявки по его объявлениям.
	Execute(ctx context.Context, userID uuid.UUID, kind string, limit, offset int) ([]domain.Lead, error)
}

type UpdateLeadStatusUseCasePort interface {
	Execute(ctx context.Context, leadID, ownerID uuid.UUID, status string) error
}
