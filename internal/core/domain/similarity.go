package domain

import "math"

// Веса факторов похожести двух объявлений. Сумма всех максимальных
// вкладов дает ровно 100 (совпадение города, района, типа, спален
// плюс верхние ярусы близости по цене и площади).
const (
	similarityCityPoints     = 30
	similarityLocalityPoints = 20
	similarityTypePoints     = 15
	similarityBedroomPoints  = 10

	priceProximityClose = 15 // относительная разница < 0.2
	priceProximityNear  = 10 // относительная разница в [0.2, 0.4)

	areaProximityClose = 10
	areaProximityNear  = 5
)

// SimilarityScore вычисляет рейтинг похожести кандидата cand относительно
// опорного объявления ref. Результат - целое в диапазоне [0, 100].
//
// Функция чистая и детерминированная. Внимание: она НЕ симметрична -
// относительная разница по цене и площади считается от знаменателя ref,
// поэтому SimilarityScore(a, b) может отличаться от SimilarityScore(b, a).
func SimilarityScore(ref, cand Property) int {
	score := 0

	if ref.City == cand.City {
		score += similarityCityPoints
	}
	if ref.Locality == cand.Locality {
		score += similarityLocalityPoints
	}
	if ref.PropertyType == cand.PropertyType {
		score += similarityTypePoints
	}

	// Близость по цене. При нулевой цене опорного объявления относительная
	// разница не определена - фактор считается несовпавшим.
	if ref.Price != 0 {
		priceDiff := math.Abs(ref.Price-cand.Price) / ref.Price
		switch {
		case priceDiff < 0.2:
			score += priceProximityClose
		case priceDiff < 0.4:
			score += priceProximityNear
		}
	}

	// Спальни совпадают и тогда, когда они не указаны у обоих
	// (участки, офисы и прочие объекты без спален).
	switch {
	case ref.Bedrooms == nil && cand.Bedrooms == nil:
		score += similarityBedroomPoints
	case ref.Bedrooms != nil && cand.Bedrooms != nil && *ref.Bedrooms == *cand.Bedrooms:
		score += similarityBedroomPoints
	}

	// Близость по площади учитывается только когда площадь указана у обоих.
	if ref.CarpetArea != nil && cand.CarpetArea != nil && *ref.CarpetArea != 0 {
		areaDiff := math.Abs(*ref.CarpetArea-*cand.CarpetArea) / *ref.CarpetArea
		switch {
		case areaDiff < 0.2:
			score += areaProximityClose
		case areaDiff < 0.4:
			score += areaProximityNear
		}
	}

	return score
}
