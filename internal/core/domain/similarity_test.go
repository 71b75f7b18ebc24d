package domain

import "testing"

func intPtr(v int) *int           { return &v }
func floatPtr(v float64) *float64 { return &v }

func baseProperty() Property {
	return Property{
		City:         "Mumbai",
		Locality:     "Andheri West",
		PropertyType: "apartment",
		Price:        1_000_000,
		Bedrooms:     intPtr(2),
		CarpetArea:   floatPtr(850),
	}
}

func TestSimilarityScore(t *testing.T) {
	t.Parallel()

	ref := baseProperty()

	tests := []struct {
		name string
		cand Property
		want int
	}{
		{
			name: "identical properties score 100",
			cand: baseProperty(),
			want: 100,
		},
		{
			name: "nothing in common scores 0",
			cand: Property{
				City:         "Delhi",
				Locality:     "Saket",
				PropertyType: "villa",
				Price:        5_000_000,
				Bedrooms:     intPtr(5),
				CarpetArea:   floatPtr(3000),
			},
			want: 0,
		},
		{
			name: "same city only",
			cand: Property{
				City:         "Mumbai",
				Locality:     "Bandra",
				PropertyType: "villa",
				Price:        5_000_000,
				Bedrooms:     intPtr(5),
				CarpetArea:   floatPtr(3000),
			},
			want: 30,
		},
		{
			name: "price within 20 percent gets the close tier",
			cand: Property{
				City:         "Delhi",
				Locality:     "Saket",
				PropertyType: "villa",
				Price:        1_100_000,
			},
			want: 15,
		},
		{
			name: "price within 40 percent gets the near tier",
			cand: Property{
				City:         "Delhi",
				Locality:     "Saket",
				PropertyType: "villa",
				Price:        1_300_000,
			},
			want: 10,
		},
		{
			name: "price at exactly 40 percent difference gets nothing",
			cand: Property{
				City:         "Delhi",
				Locality:     "Saket",
				PropertyType: "villa",
				Price:        1_400_000,
			},
			want: 0,
		},
		{
			name: "matching bedrooms",
			cand: Property{
				City:         "Delhi",
				Locality:     "Saket",
				PropertyType: "villa",
				Price:        5_000_000,
				Bedrooms:     intPtr(2),
			},
			want: 10,
		},
		{
			name: "area in the near band",
			cand: Property{
				City:         "Delhi",
				Locality:     "Saket",
				PropertyType: "villa",
				Price:        5_000_000,
				CarpetArea:   floatPtr(1100), // ~29% от 850
			},
			want: 5,
		},
		{
			name: "missing candidate bedrooms and area skip those factors",
			cand: Property{
				City:         "Mumbai",
				Locality:     "Andheri West",
				PropertyType: "apartment",
				Price:        1_000_000,
			},
			want: 80,
		},
		{
			name: "bedrooms absent on one side only does not match",
			cand: Property{
				City:         "Delhi",
				Locality:     "Saket",
				PropertyType: "villa",
				Price:        5_000_000,
				CarpetArea:   floatPtr(3000),
			},
			want: 0,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := SimilarityScore(ref, tt.cand); got != tt.want {
				t.Errorf("SimilarityScore() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestSimilarityScoreNilBedroomsBothSides(t *testing.T) {
	t.Parallel()

	// У офисов и участков спальни не заполняются; отсутствие у обоих -
	// это совпадение, и объявление должно быть похожим само на себя на 100%.
	office := Property{
		City:         "Mumbai",
		Locality:     "BKC",
		PropertyType: "office",
		Price:        12_000_000,
		CarpetArea:   floatPtr(2200),
	}

	if got := SimilarityScore(office, office); got != 100 {
		t.Errorf("SimilarityScore(office, office) = %d, want 100", got)
	}
}

func TestSimilarityScoreZeroPriceReference(t *testing.T) {
	t.Parallel()

	ref := Property{City: "Pune", Price: 0}
	cand := Property{City: "Pune", Price: 0}

	// Нулевая цена опорного объявления не должна приводить к NaN или панике.
	if got := SimilarityScore(ref, cand); got != 40 {
		t.Errorf("SimilarityScore() = %d, want 40 (city + shared nil bedrooms)", got)
	}
}

func TestSimilarityScoreZeroAreaReference(t *testing.T) {
	t.Parallel()

	ref := Property{City: "Pune", CarpetArea: floatPtr(0)}
	cand := Property{City: "Pune", CarpetArea: floatPtr(500)}

	if got := SimilarityScore(ref, cand); got != 40 {
		t.Errorf("SimilarityScore() = %d, want 40 (area factor skipped)", got)
	}
}

func TestSimilarityScoreIsAsymmetric(t *testing.T) {
	t.Parallel()

	a := Property{City: "Pune", Price: 1_000_000}
	b := Property{City: "Pune", Price: 1_300_000}

	// |1.0M - 1.3M| / 1.0M = 0.30 -> near tier.
	if got := SimilarityScore(a, b); got != 50 {
		t.Errorf("SimilarityScore(a, b) = %d, want 50", got)
	}
	// |1.3M - 1.0M| / 1.3M ~= 0.23 -> тоже near, но граница другая:
	// при 1.25M разница от a равна 0.25 (near), а от b - 0.20+ (near);
	// асимметрию демонстрирует пара с ценами 1.0M и 1.45M.
	c := Property{City: "Pune", Price: 1_450_000}
	if got := SimilarityScore(a, c); got != 40 {
		t.Errorf("SimilarityScore(a, c) = %d, want 40 (diff 0.45 from a)", got)
	}
	if got := SimilarityScore(c, a); got != 50 {
		t.Errorf("SimilarityScore(c, a) = %d, want 50 (diff ~0.31 from c)", got)
	}
}
