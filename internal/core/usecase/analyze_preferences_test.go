package usecase

import (
	"reflect"
	"testing"

	"github.com/AnandGandhi03/realtor-india-platform/internal/core/domain"
)

func viewingOf(p domain.Property) domain.Viewing {
	return domain.Viewing{Property: &p}
}

func favoriteOf(p domain.Property) domain.Favorite {
	return domain.Favorite{Property: &p}
}

func TestAnalyzePreferencesEmptyHistory(t *testing.T) {
	t.Parallel()

	profile := AnalyzePreferences(nil, nil, nil)
	if !profile.IsEmpty() {
		t.Errorf("expected empty profile, got %+v", profile)
	}
}

func TestAnalyzePreferencesCityAndTypeCaps(t *testing.T) {
	t.Parallel()

	var viewings []domain.Viewing
	// 4 города с частотами 3, 2, 2, 1 - в профиль должны попасть три самых частых.
	for _, city := range []string{"Mumbai", "Mumbai", "Mumbai", "Pune", "Pune", "Delhi", "Delhi", "Chennai"} {
		viewings = append(viewings, viewingOf(domain.Property{City: city, PropertyType: "apartment"}))
	}
	// 3 типа: apartment уже 8 раз, добавляем villa и plot.
	viewings = append(viewings,
		viewingOf(domain.Property{City: "Mumbai", PropertyType: "villa"}),
		viewingOf(domain.Property{City: "Mumbai", PropertyType: "plot"}),
	)

	profile := AnalyzePreferences(viewings, nil, nil)

	wantCities := []string{"Mumbai", "Pune", "Delhi"}
	if !reflect.DeepEqual(profile.PreferredCities, wantCities) {
		t.Errorf("PreferredCities = %v, want %v", profile.PreferredCities, wantCities)
	}

	wantTypes := []string{"apartment", "villa"}
	if !reflect.DeepEqual(profile.PreferredTypes, wantTypes) {
		t.Errorf("PreferredTypes = %v, want %v", profile.PreferredTypes, wantTypes)
	}
}

func TestAnalyzePreferencesTieBreakIsFirstOccurrence(t *testing.T) {
	t.Parallel()

	viewings := []domain.Viewing{
		viewingOf(domain.Property{City: "Pune"}),
		viewingOf(domain.Property{City: "Delhi"}),
		viewingOf(domain.Property{City: "Delhi"}),
		viewingOf(domain.Property{City: "Pune"}),
		viewingOf(domain.Property{City: "Mumbai"}),
	}

	profile := AnalyzePreferences(viewings, nil, nil)

	// Pune и Delhi встречаются по 2 раза: Pune появился раньше.
	want := []string{"Pune", "Delhi", "Mumbai"}
	if !reflect.DeepEqual(profile.PreferredCities, want) {
		t.Errorf("PreferredCities = %v, want %v", profile.PreferredCities, want)
	}
}

func TestAnalyzePreferencesBudgetBand(t *testing.T) {
	t.Parallel()

	viewings := []domain.Viewing{
		viewingOf(domain.Property{City: "Pune", Price: 1_000_000}),
		viewingOf(domain.Property{City: "Pune", Price: 3_000_000}),
	}

	profile := AnalyzePreferences(viewings, nil, nil)

	// Среднее 2.0M: бюджетный коридор [floor(2M*0.7), ceil(2M*1.3)].
	if profile.BudgetMin == nil || *profile.BudgetMin != 1_400_000 {
		t.Errorf("BudgetMin = %v, want 1400000", profile.BudgetMin)
	}
	if profile.BudgetMax == nil || *profile.BudgetMax != 2_600_000 {
		t.Errorf("BudgetMax = %v, want 2600000", profile.BudgetMax)
	}
}

func TestAnalyzePreferencesBedroomBand(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		bedrooms []int
		wantMin  int
		wantMax  int
	}{
		{"average one keeps floor at one", []int{1, 1}, 1, 2},
		{"average rounds to nearest", []int{2, 3}, 2, 4}, // среднее 2.5 -> 3 (округление вверх)
		{"plain average", []int{3, 3, 3}, 2, 4},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var viewings []domain.Viewing
			for _, b := range tt.bedrooms {
				viewings = append(viewings, viewingOf(domain.Property{City: "Pune", Bedrooms: intPtr(b)}))
			}

			profile := AnalyzePreferences(viewings, nil, nil)
			if profile.MinBedrooms == nil || *profile.MinBedrooms != tt.wantMin {
				t.Errorf("MinBedrooms = %v, want %d", profile.MinBedrooms, tt.wantMin)
			}
			if profile.MaxBedrooms == nil || *profile.MaxBedrooms != tt.wantMax {
				t.Errorf("MaxBedrooms = %v, want %d", profile.MaxBedrooms, tt.wantMax)
			}
		})
	}
}

func TestAnalyzePreferencesFavoritesCountToo(t *testing.T) {
	t.Parallel()

	favorites := []domain.Favorite{
		favoriteOf(domain.Property{City: "Jaipur", PropertyType: "villa", Price: 500_000}),
	}

	profile := AnalyzePreferences(nil, favorites, nil)

	if len(profile.PreferredCities) != 1 || profile.PreferredCities[0] != "Jaipur" {
		t.Errorf("PreferredCities = %v, want [Jaipur]", profile.PreferredCities)
	}
	if profile.BudgetMin == nil {
		t.Error("expected budget band from favorites")
	}
}

func TestAnalyzePreferencesSavedSearchesAppendWithoutCap(t *testing.T) {
	t.Parallel()

	var viewings []domain.Viewing
	for _, city := range []string{"Mumbai", "Pune", "Delhi"} {
		viewings = append(viewings, viewingOf(domain.Property{City: city}))
	}

	searches := []domain.SavedSearch{
		{Criteria: domain.SearchCriteria{City: "Chennai", PropertyType: "office"}},
		{Criteria: domain.SearchCriteria{City: "Kolkata"}},
		{Criteria: domain.SearchCriteria{City: "Mumbai"}}, // дубль не добавляется
	}

	profile := AnalyzePreferences(viewings, nil, searches)

	// Частотная часть уже заполнила лимит из трех городов; явные критерии
	// сохраненных поисков дописываются сверх него.
	want := []string{"Mumbai", "Pune", "Delhi", "Chennai", "Kolkata"}
	if !reflect.DeepEqual(profile.PreferredCities, want) {
		t.Errorf("PreferredCities = %v, want %v", profile.PreferredCities, want)
	}

	if !reflect.DeepEqual(profile.PreferredTypes, []string{"office"}) {
		t.Errorf("PreferredTypes = %v, want [office]", profile.PreferredTypes)
	}
}

func TestAnalyzePreferencesSkipsNilProperties(t *testing.T) {
	t.Parallel()

	viewings := []domain.Viewing{{Property: nil}}
	profile := AnalyzePreferences(viewings, nil, nil)
	if !profile.IsEmpty() {
		t.Errorf("expected empty profile, got %+v", profile)
	}
}
