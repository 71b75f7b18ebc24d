package domain

// PreferenceProfile - неявный профиль предпочтений пользователя,
// вычисляемый на лету из его истории просмотров, избранного и
// сохраненных поисков. Нигде не персистится.
//
// Пустой профиль (все поля отсутствуют) эквивалентен запросу
// "самые свежие активные объявления" без фильтров.
type PreferenceProfile struct {
	PreferredCities []string
	PreferredTypes  []string
	BudgetMin       *float64
	BudgetMax       *float64
	MinBedrooms     *int
	MaxBedrooms     *int
}

// IsEmpty сообщает, что из истории пользователя не удалось извлечь ни одного сигнала.
func (p PreferenceProfile) IsEmpty() bool {
	return len(p.PreferredCities) == 0 &&
		len(p.PreferredTypes) == 0 &&
		p.BudgetMin == nil && p.BudgetMax == nil &&
		p.MinBedrooms == nil && p.MaxBedrooms == nil
}
