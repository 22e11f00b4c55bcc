package services

import (
	"context"

	"github.com/Yukirp/NutriEmp/models"
	"github.com/Yukirp/NutriEmp/storage"
)

type MealService struct {
	store storage.Storage
}

func NewMealService(store storage.Storage) *MealService {
	return &MealService{store: store}
}

func (s *MealService) Get(ctx context.Context, id int) (*models.Meal, error) {
	return s.store.GetMeal(ctx, id)
}

func (s *MealService) Create(ctx context.Context, in models.InsertMeal) (*models.Meal, error) {
	return s.store.CreateMeal(ctx, in)
}

func (s *MealService) Update(ctx context.Context, id int, patch models.MealPatch) (*models.Meal, error) {
	return s.store.UpdateMeal(ctx, id, patch)
}

func (s *MealService) Delete(ctx context.Context, id int) (bool, error) {
	return s.store.DeleteMeal(ctx, id)
}

// ListForUser picks the narrowest query the caller asked for: an exact
// date, a date range, or everything the user has logged.
func (s *MealService) ListForUser(ctx context.Context, userID int, date, startDate, endDate string) ([]models.Meal, error) {
	switch {
	case date != "":
		return s.store.GetMealsByUserAndDate(ctx, userID, date)
	case startDate != "" && endDate != "":
		return s.store.GetMealsByUserAndDateRange(ctx, userID, startDate, endDate)
	default:
		return s.store.ListMealsByUser(ctx, userID)
	}
}
