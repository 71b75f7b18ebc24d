package usecases_port

import (
	"context"

	"github.com/google/uuid"

	"github.com/AnandGandhi03/realtor-india-platform/internal/core/domain"
)

// GetRecommendationsUseCasePort - персональные рекомендации по истории активности.
// Любая ошибка источников данных дает пустой список, а не ошибку наружу.
type GetRecommendationsUseCasePort interface {
	Execute(ctx context.Context, userID uuid.UUID, limit int) ([]domain.Property, error)
}

// GetSimilarPropertiesUseCasePort - похожие объявления для страницы объекта.
type GetSimilarPropertiesUseCasePort interface {
	Execute(ctx context.Context, propertyID uuid.UUID, limit int) ([]domain.ScoredProperty, error)
}
