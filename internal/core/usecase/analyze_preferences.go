package usecase

import (
	"math"
	"sort"

	"github.com/AnandGandhi03/realtor-india-platform/internal/core/domain"
)

// Лимиты выборки истории активности и размеров профиля.
const (
	activityViewingsLimit  = 20
	activityFavoritesLimit = 20
	activitySearchesLimit  = 5

	maxPreferredCities = 3
	maxPreferredTypes  = 2
)

// AnalyzePreferences строит неявный профиль предпочтений из истории
// просмотров, избранного и сохраненных поисков пользователя.
// Чистая функция: вся история уже выбрана вызывающей стороной.
//
// Города и типы из сохраненных поисков дописываются в конец профиля
// БЕЗ ограничения сверху - лимиты 3/2 действуют только на частотную
// часть. Это сознательно сохраненное поведение исходной системы.
func AnalyzePreferences(viewings []domain.Viewing, favorites []domain.Favorite, searches []domain.SavedSearch) domain.PreferenceProfile {
	var profile domain.PreferenceProfile

	// Объединяем объекты из просмотров и избранного в один пул.
	pool := make([]domain.Property, 0, len(viewings)+len(favorites))
	for _, v := range viewings {
		if v.Property != nil {
			pool = append(pool, *v.Property)
		}
	}
	for _, f := range favorites {
		if f.Property != nil {
			pool = append(pool, *f.Property)
		}
	}

	if len(pool) > 0 {
		cities := make([]string, 0, len(pool))
		types := make([]string, 0, len(pool))
		prices := make([]float64, 0, len(pool))
		bedrooms := make([]int, 0, len(pool))

		for _, p := range pool {
			if p.City != "" {
				cities = append(cities, p.City)
			}
			if p.PropertyType != "" {
				types = append(types, p.PropertyType)
			}
			if p.Price > 0 {
				prices = append(prices, p.Price)
			}
			if p.Bedrooms != nil && *p.Bedrooms > 0 {
				bedrooms = append(bedrooms, *p.Bedrooms)
			}
		}

		profile.PreferredCities = mostCommon(cities, maxPreferredCities)
		profile.PreferredTypes = mostCommon(types, maxPreferredTypes)

		if len(prices) > 0 {
			var sum float64
			for _, p := range prices {
				sum += p
			}
			avg := sum / float64(len(prices))
			budgetMin := math.Floor(avg * 0.7)
			budgetMax := math.Ceil(avg * 1.3)
			profile.BudgetMin = &budgetMin
			profile.BudgetMax = &budgetMax
		}

		if len(bedrooms) > 0 {
			sum := 0
			for _, b := range bedrooms {
				sum += b
			}
			avg := int(math.Round(float64(sum) / float64(len(bedrooms))))
			minBedrooms := avg - 1
			if minBedrooms < 1 {
				minBedrooms = 1
			}
			maxBedrooms := avg + 1
			profile.MinBedrooms = &minBedrooms
			profile.MaxBedrooms = &maxBedrooms
		}
	}

	// Дополняем профиль явными сигналами из сохраненных поисков.
	for _, s := range searches {
		if city := s.Criteria.City; city != "" && !containsString(profile.PreferredCities, city) {
			profile.PreferredCities = append(profile.PreferredCities, city)
		}
		if pt := s.Criteria.PropertyType; pt != "" && !containsString(profile.PreferredTypes, pt) {
			profile.PreferredTypes = append(profile.PreferredTypes, pt)
		}
	}

	return profile
}

// mostCommon возвращает до limit самых частых значений.
// При равных частотах порядок детерминирован: побеждает значение,
// встретившееся раньше (стабильная сортировка по порядку первого вхождения).
func mostCommon(values []string, limit int) []string {
	if len(values) == 0 {
		return nil
	}

	counts := make(map[string]int, len(values))
	order := make([]string, 0, len(values))
	for _, v := range values {
		if counts[v] == 0 {
			order = append(order, v)
		}
		counts[v]++
	}

	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})

	if len(order) > limit {
		order = order[:limit]
	}
	return order
}

func containsString(values []string, target string) bool {
	for _, v := range values {
		if v == target {
			return true
		}
	}
	return false
}
