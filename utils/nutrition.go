package utils

import (
	"math"

	"github.com/Yukirp/NutriEmp/models"
)

// Atwater factors: 4 kcal per gram of protein or carbs, 9 per gram of fat.
const (
	kcalPerGramProtein = 4
	kcalPerGramCarbs   = 4
	kcalPerGramFat     = 9
)

var activityFactors = map[string]float64{
	models.ActivitySedentary:  1.2,
	models.ActivityLight:      1.375,
	models.ActivityModerate:   1.55,
	models.ActivityActive:     1.725,
	models.ActivityVeryActive: 1.9,
}

// CaloriesFromMacros is the single source of truth for calorie derivation.
// Inputs are grams; no guarding, bad inputs propagate into the arithmetic.
func CaloriesFromMacros(protein, carbs, fat float64) float64 {
	return math.Round(protein*kcalPerGramProtein + carbs*kcalPerGramCarbs + fat*kcalPerGramFat)
}

// MacroTotals is an aggregate over food line items.
type MacroTotals struct {
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
}

// AggregateFoodTotals folds line items into totals, rounding at every
// accumulation step: calories to the nearest integer, macros to one
// decimal. The running rounding matches what the web client displays while
// a meal is being composed, and can drift from the stored meal calories,
// which round the raw sum once (see storage meal creation).
func AggregateFoodTotals(foods []models.MealFood) MacroTotals {
	var t MacroTotals
	for _, f := range foods {
		t.Calories = math.Round(t.Calories + CaloriesFromMacros(f.Protein, f.Carbs, f.Fat))
		t.Protein = round1(t.Protein + f.Protein)
		t.Carbs = round1(t.Carbs + f.Carbs)
		t.Fat = round1(t.Fat + f.Fat)
	}
	return t
}

// CalorieDeficit is consumed minus goal; negative means under goal.
func CalorieDeficit(consumed, goal int) int {
	return consumed - goal
}

// BMI expects weight in kilograms and height in centimeters and returns the
// index rounded to one decimal, or 0 when either input is missing.
func BMI(weightKg float64, heightCm float64) float64 {
	if weightKg == 0 || heightCm == 0 {
		return 0
	}
	h := heightCm / 100.0
	return round1(weightKg / (h * h))
}

// BMICategory labels a BMI value. Boundary values belong to the upper
// bucket.
func BMICategory(bmi float64) string {
	switch {
	case bmi < 18.5:
		return "Abaixo do peso"
	case bmi < 25:
		return "Peso normal"
	case bmi < 30:
		return "Sobrepeso"
	case bmi < 35:
		return "Obesidade Grau I"
	case bmi < 40:
		return "Obesidade Grau II"
	default:
		return "Obesidade Grau III"
	}
}

// RecommendedDailyCalories estimates total daily energy expenditure via the
// Harris-Benedict equation scaled by an activity factor. Returns 0 when
// weight, height or age is missing. A gender other than male/female leaves
// BMR at 0, so the result is 0 as well; that mirrors the product behavior
// and is pending clarification, not a bug to fix here.
func RecommendedDailyCalories(weightKg float64, heightCm float64, ageYears int, gender, activityLevel string) int {
	if weightKg == 0 || heightCm == 0 || ageYears == 0 {
		return 0
	}

	var bmr float64
	switch gender {
	case models.GenderMale:
		bmr = 88.362 + 13.397*weightKg + 4.799*heightCm - 5.677*float64(ageYears)
	case models.GenderFemale:
		bmr = 447.593 + 9.247*weightKg + 3.098*heightCm - 4.330*float64(ageYears)
	}

	factor, ok := activityFactors[activityLevel]
	if !ok {
		factor = activityFactors[models.ActivitySedentary]
	}
	return int(math.Round(bmr * factor))
}

func round1(x float64) float64 {
	return math.Round(x*10) / 10
}
