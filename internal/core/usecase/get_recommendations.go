package usecase

import (
	"context"

	"github.com/google/uuid"

	"github.com/AnandGandhi03/realtor-india-platform/internal/contextkeys"
	"github.com/AnandGandhi03/realtor-india-platform/internal/core/domain"
	"github.com/AnandGandhi03/realtor-india-platform/internal/core/port"
)

const defaultRecommendationsLimit = 10

// GetRecommendationsUseCase подбирает пользователю персональные рекомендации:
// профиль предпочтений из истории активности превращается в предикаты
// запроса к каталогу, уже виденные объекты исключаются.
//
// Рекомендации - best-effort фича: любая ошибка выборки дает пустой
// список, а не ошибку наружу. Пользователь не должен увидеть 500
// из-за того, что "рекомендаций пока нет".
type GetRecommendationsUseCase struct {
	activity port.UserActivityPort
	catalog  port.PropertyCatalogPort
}

func NewGetRecommendationsUseCase(activity port.UserActivityPort, catalog port.PropertyCatalogPort) *GetRecommendationsUseCase {
	return &GetRecommendationsUseCase{
		activity: activity,
		catalog:  catalog,
	}
}

func (uc *GetRecommendationsUseCase) Execute(ctx context.Context, userID uuid.UUID, limit int) ([]domain.Property, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case": "GetRecommendations",
		"user_id":  userID,
	})

	if limit <= 0 {
		limit = defaultRecommendationsLimit
	}

	viewings, err := uc.activity.RecentViewings(ctx, userID, activityViewingsLimit)
	if err != nil {
		ucLogger.Error("Failed to load viewing history, returning no recommendations", err, nil)
		return []domain.Property{}, nil
	}

	favorites, err := uc.activity.RecentFavorites(ctx, userID, activityFavoritesLimit)
	if err != nil {
		ucLogger.Error("Failed to load favorites, returning no recommendations", err, nil)
		return []domain.Property{}, nil
	}

	searches, err := uc.activity.RecentSavedSearches(ctx, userID, activitySearchesLimit)
	if err != nil {
		ucLogger.Error("Failed to load saved searches, returning no recommendations", err, nil)
		return []domain.Property{}, nil
	}

	profile := AnalyzePreferences(viewings, favorites, searches)

	// Уже просмотренное и избранное пользователю показывать не нужно.
	exclude := collectSeenIDs(viewings, favorites)

	ucLogger.Debug("Preference profile built", port.Fields{
		"preferred_cities": profile.PreferredCities,
		"preferred_types":  profile.PreferredTypes,
		"excluded_count":   len(exclude),
	})

	candidates, err := uc.catalog.FindCandidates(ctx, port.CandidateQuery{
		Profile:    profile,
		ExcludeIDs: exclude,
		Limit:      limit,
	})
	if err != nil {
		ucLogger.Error("Candidate query failed, returning no recommendations", err, nil)
		return []domain.Property{}, nil
	}

	ucLogger.Info("Recommendations computed", port.Fields{"count": len(candidates)})
	return candidates, nil
}

// collectSeenIDs объединяет id объектов из просмотров и избранного без дублей.
func collectSeenIDs(viewings []domain.Viewing, favorites []domain.Favorite) []uuid.UUID {
	seen := make(map[uuid.UUID]struct{}, len(viewings)+len(favorites))
	ids := make([]uuid.UUID, 0, len(viewings)+len(favorites))

	add := func(id uuid.UUID) {
		if _, ok := seen[id]; ok {
			return
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}

	for _, v := range viewings {
		add(v.PropertyID)
	}
	for _, f := range favorites {
		add(f.PropertyID)
	}
	return ids
}
