package services

import (
	"errors"
	"math"
)

// BMI category labels shown on the site. Each band is closed below and open
// above, the last band is unbounded.
const (
	CategoryUnderweight = "Недостаточная масса"
	CategoryNormal      = "Норма"
	CategoryOverweight  = "Избыточная масса"
	CategoryObesityI    = "Ожирение I степени"
	CategoryObesityII   = "Ожирение II степени"
	CategoryObesityIII  = "Ожирение III степени"
)

// ErrInvalidHeight is surfaced to the client verbatim.
var ErrInvalidHeight = errors.New("Height must be greater than 0")

// CalculateBMI converts height to meters, computes weight / height² and
// rounds the result to one decimal. The category is classified on the
// unrounded value.
func CalculateBMI(heightCM, weightKG float64) (float64, string, error) {
	heightM := heightCM / 100.0
	if heightM <= 0 {
		return 0, "", ErrInvalidHeight
	}
	bmi := weightKG / (heightM * heightM)
	return math.Round(bmi*10) / 10, BMICategory(bmi), nil
}

func BMICategory(bmi float64) string {
	switch {
	case bmi < 18.5:
		return CategoryUnderweight
	case bmi < 25:
		return CategoryNormal
	case bmi < 30:
		return CategoryOverweight
	case bmi < 35:
		return CategoryObesityI
	case bmi < 40:
		return CategoryObesityII
	default:
		return CategoryObesityIII
	}
}
