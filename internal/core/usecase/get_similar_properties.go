package usecase

import (
	"context"
	"errors"
	"sort"

	"github.com/google/uuid"

	"github.com/AnandGandhi03/realtor-india-platform/internal/contextkeys"
	"github.com/AnandGandhi03/realtor-india-platform/internal/core/domain"
	"github.com/AnandGandhi03/realtor-india-platform/internal/core/port"
)

const (
	defaultSimilarLimit  = 6
	similarCandidatePool = 20
)

// GetSimilarPropertiesUseCase находит похожие объявления для страницы объекта:
// берет до 20 активных объявлений того же города и ранжирует их по
// рейтингу похожести с опорным объявлением.
type GetSimilarPropertiesUseCase struct {
	catalog port.PropertyCatalogPort
}

func NewGetSimilarPropertiesUseCase(catalog port.PropertyCatalogPort) *GetSimilarPropertiesUseCase {
	return &GetSimilarPropertiesUseCase{catalog: catalog}
}

func (uc *GetSimilarPropertiesUseCase) Execute(ctx context.Context, propertyID uuid.UUID, limit int) ([]domain.ScoredProperty, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case":    "GetSimilarProperties",
		"property_id": propertyID,
	})

	if limit <= 0 {
		limit = defaultSimilarLimit
	}

	ref, err := uc.catalog.GetByID(ctx, propertyID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			ucLogger.Warn("Reference property not found", nil)
		} else {
			ucLogger.Error("Failed to load reference property", err, nil)
		}
		// Отсутствие опорного объекта - не ошибка, просто нечего показывать.
		return []domain.ScoredProperty{}, nil
	}

	candidates, err := uc.catalog.FindActiveInCity(ctx, ref.City, ref.ID, similarCandidatePool)
	if err != nil {
		ucLogger.Error("Candidate query failed, returning no similar properties", err, nil)
		return []domain.ScoredProperty{}, nil
	}

	scored := make([]domain.ScoredProperty, 0, len(candidates))
	for _, c := range candidates {
		scored = append(scored, domain.ScoredProperty{
			Property:   c,
			Similarity: domain.SimilarityScore(*ref, c),
		})
	}

	// При равном рейтинге свежие объявления идут первыми, чтобы порядок
	// выдачи не зависел от порядка строк в ответе хранилища.
	sort.SliceStable(scored, func(i, j int) bool {
		if scored[i].Similarity != scored[j].Similarity {
			return scored[i].Similarity > scored[j].Similarity
		}
		return scored[i].Property.CreatedAt.After(scored[j].Property.CreatedAt)
	})

	if len(scored) > limit {
		scored = scored[:limit]
	}

	ucLogger.Info("Similar properties computed", port.Fields{"count": len(scored)})
	return scored, nil
}
