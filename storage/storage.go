package storage

import (
	"context"
	"math"

	"github.com/Yukirp/NutriEmp/models"
)

// Storage is the persistence contract shared by the in-memory reference
// implementation and the Postgres-backed one. Lookups report absence as a
// nil entity with a nil error; errors are reserved for backend failures.
// No validation happens here, and foreign keys are not enforced: a meal
// referencing an unknown user is accepted silently.
type Storage interface {
	GetUser(ctx context.Context, id int) (*models.User, error)
	CreateUser(ctx context.Context, in models.InsertUser) (*models.User, error)
	UpdateUser(ctx context.Context, id int, patch models.UserPatch) (*models.User, error)

	GetMeal(ctx context.Context, id int) (*models.Meal, error)
	ListMealsByUser(ctx context.Context, userID int) ([]models.Meal, error)
	GetMealsByUserAndDate(ctx context.Context, userID int, date string) ([]models.Meal, error)
	GetMealsByUserAndDateRange(ctx context.Context, userID int, startDate, endDate string) ([]models.Meal, error)
	CreateMeal(ctx context.Context, in models.InsertMeal) (*models.Meal, error)
	UpdateMeal(ctx context.Context, id int, patch models.MealPatch) (*models.Meal, error)
	DeleteMeal(ctx context.Context, id int) (bool, error)

	GetFood(ctx context.Context, id int) (*models.Food, error)
	GetFoodByName(ctx context.Context, name string) (*models.Food, error)
	ListFoods(ctx context.Context) ([]models.Food, error)
	CreateFood(ctx context.Context, in models.InsertFood) (*models.Food, error)

	CreateContactMessage(ctx context.Context, in models.InsertContactMessage) (*models.ContactMessage, error)
}

// mealCalories derives a meal's calories by rounding the raw 4/4/9 macro
// sum over its foods once. This intentionally differs from
// utils.AggregateFoodTotals, which rounds per accumulation step; both
// policies are kept and may disagree on fractional inputs.
func mealCalories(foods []models.MealFood) float64 {
	var total float64
	for _, f := range foods {
		total += f.Protein*4 + f.Carbs*4 + f.Fat*9
	}
	return math.Round(total)
}

// foodCalories is the catalog derivation: same factors, no rounding.
func foodCalories(in models.InsertFood) float64 {
	return *in.Protein*4 + *in.Carbs*4 + *in.Fat*9
}
