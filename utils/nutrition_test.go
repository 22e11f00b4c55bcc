package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Yukirp/NutriEmp/models"
)

func TestCaloriesFromMacros(t *testing.T) {
	assert.Equal(t, float64(165), CaloriesFromMacros(10, 20, 5))
	assert.Equal(t, float64(0), CaloriesFromMacros(0, 0, 0))
	// 2.7*4 + 28.2*4 + 0.3*9 = 126.3 -> 126
	assert.Equal(t, float64(126), CaloriesFromMacros(2.7, 28.2, 0.3))
}

func TestAggregateFoodTotals(t *testing.T) {
	foods := []models.MealFood{
		{Name: "A", Quantity: 100, Unit: "g", Protein: 10, Carbs: 20, Fat: 5},
		{Name: "B", Quantity: 100, Unit: "g", Protein: 5, Carbs: 10, Fat: 2},
	}

	got := AggregateFoodTotals(foods)
	assert.Equal(t, float64(243), got.Calories) // 165 + 78, rounded per step
	assert.Equal(t, 15.0, got.Protein)
	assert.Equal(t, 30.0, got.Carbs)
	assert.Equal(t, 7.0, got.Fat)

	assert.Equal(t, MacroTotals{}, AggregateFoodTotals(nil))
}

func TestAggregateFoodTotalsRoundsEachStep(t *testing.T) {
	foods := []models.MealFood{
		{Protein: 1.24},
		{Protein: 1.24},
	}
	// 1.24 rounds to 1.2 before the second item is added: 1.2+1.24 -> 2.4,
	// not round(2.48) = 2.5.
	assert.Equal(t, 2.4, AggregateFoodTotals(foods).Protein)
}

func TestCalorieDeficit(t *testing.T) {
	assert.Equal(t, -700, CalorieDeficit(1800, 2500))
	assert.Equal(t, 100, CalorieDeficit(2600, 2500))
	assert.Equal(t, 0, CalorieDeficit(2500, 2500))
}

func TestBMI(t *testing.T) {
	assert.Equal(t, 24.2, BMI(70, 170))
	assert.Equal(t, 32.9, BMI(95, 170))
	assert.Equal(t, float64(0), BMI(0, 170))
	assert.Equal(t, float64(0), BMI(70, 0))
}

func TestBMICategory(t *testing.T) {
	tests := []struct {
		bmi  float64
		want string
	}{
		{18.4, "Abaixo do peso"},
		{18.5, "Peso normal"},
		{24.9, "Peso normal"},
		{25, "Sobrepeso"},
		{30, "Obesidade Grau I"},
		{35, "Obesidade Grau II"},
		{40, "Obesidade Grau III"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, BMICategory(tt.bmi), "bmi %.1f", tt.bmi)
	}
}

func TestRecommendedDailyCalories(t *testing.T) {
	// Harris-Benedict male: 88.362 + 13.397*70 + 4.799*170 - 5.677*30 =
	// 1671.672, times 1.55 -> 2591.
	assert.Equal(t, 2591, RecommendedDailyCalories(70, 170, 30, models.GenderMale, models.ActivityModerate))

	// Female: 447.593 + 9.247*60 + 3.098*165 - 4.330*25 = 1405.333, times
	// 1.2 -> 1686.
	assert.Equal(t, 1686, RecommendedDailyCalories(60, 165, 25, models.GenderFemale, models.ActivitySedentary))

	// Unknown activity level falls back to the sedentary factor.
	assert.Equal(t, 2006, RecommendedDailyCalories(70, 170, 30, models.GenderMale, "extreme"))

	// Gender "other" yields BMR 0, hence 0 calories. Kept as-is.
	assert.Equal(t, 0, RecommendedDailyCalories(70, 170, 30, models.GenderOther, models.ActivityModerate))

	// Missing body metrics short-circuit to 0.
	assert.Equal(t, 0, RecommendedDailyCalories(0, 170, 30, models.GenderMale, models.ActivityModerate))
	assert.Equal(t, 0, RecommendedDailyCalories(70, 0, 30, models.GenderMale, models.ActivityModerate))
	assert.Equal(t, 0, RecommendedDailyCalories(70, 170, 0, models.GenderMale, models.ActivityModerate))
}
